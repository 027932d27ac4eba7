// internal/sched/virtual.go
//
// Virtual is a manually advanced Clock for tests. Advance fires due
// callbacks in scheduled order (ties in registration order), and
// callbacks may register further timers while firing.

package sched

import (
	"sync"
	"time"
)

// Virtual is a deterministic Clock driven by Advance calls.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*virtualTimer
}

type virtualTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// NewVirtual returns a Virtual clock starting at the Unix epoch.
func NewVirtual() *Virtual {
	return &Virtual{now: time.Unix(0, 0)}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) AfterFunc(d time.Duration, fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.timers = append(v.timers, &virtualTimer{at: v.now.Add(d), seq: v.seq, fn: fn})
}

// Advance moves the clock forward by d, firing every timer that comes
// due on the way. Timers fire outside the lock so their actions can
// schedule more timers.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)
	for {
		t := v.popDue(target)
		if t == nil {
			break
		}
		v.now = t.at
		v.mu.Unlock()
		t.fn()
		v.mu.Lock()
	}
	v.now = target
	v.mu.Unlock()
}

// popDue removes and returns the earliest timer at or before target,
// breaking ties by registration order. Caller holds v.mu.
func (v *Virtual) popDue(target time.Time) *virtualTimer {
	idx := -1
	for i, t := range v.timers {
		if t.at.After(target) {
			continue
		}
		if idx == -1 || t.at.Before(v.timers[idx].at) ||
			(t.at.Equal(v.timers[idx].at) && t.seq < v.timers[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := v.timers[idx]
	v.timers = append(v.timers[:idx], v.timers[idx+1:]...)
	return t
}

// Pending reports how many timers have not fired yet.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// internal/sched/clock.go
//
// Clock abstraction for timer-driven choreography. Production code uses
// the system clock; tests inject a Virtual clock and advance it by hand,
// so nothing in the test suite waits on wall time.

package sched

import "time"

// Clock schedules fire-once callbacks. Callbacks are not cancelable;
// actions that can outlive their context guard themselves against stale
// state instead.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func())
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// System returns the wall-clock implementation.
func System() Clock { return systemClock{} }

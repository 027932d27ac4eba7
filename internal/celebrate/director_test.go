package celebrate

import (
	"math/rand"
	"testing"
	"time"

	"hilo/internal/sched"
)

func newTestDirector() (*Director, *sched.Virtual) {
	v := sched.NewVirtual()
	return New(v, rand.New(rand.NewSource(7))), v
}

func count(d *Director, k Kind) int {
	n := 0
	for _, e := range d.Snapshot() {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func TestStartSpawnsOpeningBursts(t *testing.T) {
	d, v := newTestDirector()
	d.Start(80, 24)

	if d.Active() {
		t.Fatal("nothing should be live before the clock moves")
	}
	v.Advance(0)
	if !d.Active() {
		t.Fatal("the two zero-delay bursts should have fired")
	}
	if got := count(d, KindFlash); got < 2 {
		t.Fatalf("flashes = %d, want >= 2", got)
	}
}

func TestConfettiWaves(t *testing.T) {
	d, v := newTestDirector()
	d.Start(80, 24)

	// Wave one: 100 pieces at 50ms spacing; piece 50 spawns at 2.5s and
	// no piece can have expired yet (minimum fall is 3s).
	v.Advance(2500 * time.Millisecond)
	if got := count(d, KindConfetto); got < 50 {
		t.Fatalf("confetti at 2.5s = %d, want >= 50", got)
	}

	// By 5s both waves have fully spawned (wave two starts at 2s and
	// finishes just before 5s), and pieces start expiring after 3s.
	v.Advance(2500 * time.Millisecond)
	if got := count(d, KindConfetto); got == 0 {
		t.Fatal("confetti should still be falling at 5s")
	}
}

func TestTeardownClearsEverythingAtTenSeconds(t *testing.T) {
	d, v := newTestDirector()
	d.Start(80, 24)

	// Late wave-two pieces can have falls reaching past 10s; teardown
	// dominates them.
	v.Advance(10 * time.Second)
	if d.Active() {
		t.Fatalf("elements alive after teardown: %d", len(d.Snapshot()))
	}

	// Per-element removal timers pending past 10s must be no-ops.
	v.Advance(5 * time.Second)
	if d.Active() {
		t.Fatal("stale removal timers revived state")
	}
}

func TestClearMidCelebration(t *testing.T) {
	d, v := newTestDirector()
	d.Start(80, 24)
	v.Advance(time.Second)
	if !d.Active() {
		t.Fatal("expected a live celebration at 1s")
	}

	d.Clear()
	if d.Active() {
		t.Fatal("Clear left elements on the stage")
	}

	// Timers from the cleared run keep firing; none may spawn anything.
	v.Advance(10 * time.Second)
	if d.Active() {
		t.Fatal("stale timers from a cleared run spawned elements")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	d, _ := newTestDirector()
	d.Clear()
	d.Clear()
	if d.Active() {
		t.Fatal("Clear on an empty director changed state")
	}
}

func TestRestartSurvivesStaleTimers(t *testing.T) {
	d, v := newTestDirector()
	d.Start(80, 24)
	v.Advance(time.Second)
	d.Clear()

	// A second celebration must not be harmed by the first one's
	// pending removals and teardown.
	d.Start(80, 24)
	v.Advance(1500 * time.Millisecond)
	if !d.Active() {
		t.Fatal("second celebration lost elements to stale timers")
	}
}

func TestSparkColorsComeFromPalette(t *testing.T) {
	d, v := newTestDirector()
	d.Start(80, 24)
	v.Advance(3 * time.Second)

	inPalette := func(c string) bool {
		for _, p := range palette {
			if p == c {
				return true
			}
		}
		return false
	}
	for _, e := range d.Snapshot() {
		if !inPalette(e.Color) {
			t.Fatalf("element %d has color %q outside the palette", e.ID, e.Color)
		}
	}
}

// internal/celebrate/director.go
//
// CelebrationDirector: on a win, runs a fixed ~10 second choreographed
// sequence of firework bursts and confetti, then fully clears itself.
// The whole sequence is registered as one declarative schedule; every
// timer is fire-once and uncancelable, so cleanup correctness relies on
// two guards instead of cancellation:
//   - a generation counter: Clear bumps it, and any timer from an older
//     generation is a no-op when it fires;
//   - the 10 second teardown timer, which removes every remaining
//     element regardless of individual per-element timers still pending.
package celebrate

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"hilo/internal/sched"
)

const (
	sparksPerBurst = 30
	flashLifetime  = 250 * time.Millisecond
	sparkLifetime  = 900 * time.Millisecond
	teardownAfter  = 10 * time.Second

	burstDistBase   = 4.0 // minimum explosion radius, stage cells
	burstDistSpread = 6.0 // random extra radius

	confettiWaveOne    = 100
	confettiWaveTwo    = 50
	waveOneSpacing     = 50 * time.Millisecond
	waveTwoSpacing     = 60 * time.Millisecond
	waveTwoStart       = 2 * time.Second
	confettiFallMin    = 3 * time.Second
	confettiFallSpread = 4 * time.Second // fall duration in [min, min+spread)
	burstColorBias     = 0.7             // chance a spark keeps the burst color
)

// burstDelays is the firing plan for the firework bursts.
var burstDelays = []time.Duration{
	0, 0,
	300 * time.Millisecond,
	600 * time.Millisecond, 600 * time.Millisecond,
	1000 * time.Millisecond, 1000 * time.Millisecond,
	1500 * time.Millisecond,
	2000 * time.Millisecond,
}

// Director owns the set of live celebration elements.
// Timers fire on their own goroutines, so all state is mutex-guarded.
type Director struct {
	clock sched.Clock

	mu   sync.Mutex
	rng  *rand.Rand
	gen  int
	next int
	live map[int]Element
}

// New constructs a Director. The rng is used for every randomized
// parameter of the choreography; seed it for deterministic tests.
func New(clock sched.Clock, rng *rand.Rand) *Director {
	return &Director{
		clock: clock,
		rng:   rng,
		live:  make(map[int]Element),
	}
}

// Start clears any running celebration and begins a new one sized to a
// w×h stage. It returns immediately; everything after the two opening
// bursts happens on timers.
func (d *Director) Start(w, h int) {
	d.Clear()

	d.mu.Lock()
	gen := d.gen
	entries := make([]sched.Entry, 0, len(burstDelays)+confettiWaveOne+confettiWaveTwo+1)

	for _, delay := range burstDelays {
		// Burst positions are drawn up front so the plan is fixed at start.
		x := (0.15 + 0.7*d.rng.Float64()) * float64(w)
		y := (0.10 + 0.5*d.rng.Float64()) * float64(h)
		entries = append(entries, sched.Entry{Delay: delay, Action: func() { d.burst(gen, x, y) }})
	}
	for i := 0; i < confettiWaveOne; i++ {
		entries = append(entries, sched.Entry{
			Delay:  time.Duration(i) * waveOneSpacing,
			Action: func() { d.dropConfetto(gen, w, h) },
		})
	}
	for i := 0; i < confettiWaveTwo; i++ {
		entries = append(entries, sched.Entry{
			Delay:  waveTwoStart + time.Duration(i)*waveTwoSpacing,
			Action: func() { d.dropConfetto(gen, w, h) },
		})
	}
	entries = append(entries, sched.Entry{Delay: teardownAfter, Action: func() { d.teardown(gen) }})
	d.mu.Unlock()

	sched.Run(d.clock, entries)
}

// Clear removes every live element immediately and invalidates all
// pending timers from earlier Start calls. Safe to call at any time,
// including when nothing is active.
func (d *Director) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.live = make(map[int]Element)
}

// Active reports whether any celebration elements are on the stage.
func (d *Director) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live) > 0
}

// Snapshot returns a copy of the live elements for rendering.
func (d *Director) Snapshot() []Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Element, 0, len(d.live))
	for _, e := range d.live {
		out = append(out, e)
	}
	return out
}

// burst spawns one flash plus a ring of sparks around (x, y).
// Spark i of n sits at angle i/n·2π; distance and start delay are
// randomized per spark. Most sparks share the burst color, the rest
// draw from the palette.
func (d *Director) burst(gen int, x, y float64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}

	burstColor := palette[d.rng.Intn(len(palette))]
	d.addLocked(gen, Element{
		Kind:  KindFlash,
		X:     x,
		Y:     y,
		Color: burstColor,
		TTL:   flashLifetime,
	})

	type plannedSpark struct {
		delay time.Duration
		el    Element
	}
	sparks := make([]plannedSpark, 0, sparksPerBurst)
	for i := 0; i < sparksPerBurst; i++ {
		angle := float64(i) / sparksPerBurst * 2 * math.Pi
		dist := burstDistBase + d.rng.Float64()*burstDistSpread
		color := burstColor
		if d.rng.Float64() >= burstColorBias {
			color = palette[d.rng.Intn(len(palette))]
		}
		sparks = append(sparks, plannedSpark{
			delay: time.Duration(d.rng.Float64() * float64(time.Second)),
			el: Element{
				Kind:  KindSpark,
				X:     x,
				Y:     y,
				VX:    math.Cos(angle) * dist / sparkLifetime.Seconds(),
				VY:    math.Sin(angle) * dist / sparkLifetime.Seconds(),
				Color: color,
				TTL:   sparkLifetime,
			},
		})
	}
	d.mu.Unlock()

	for _, s := range sparks {
		s := s
		d.clock.AfterFunc(s.delay, func() { d.add(gen, s.el) })
	}
}

// dropConfetto spawns a single confetti piece at the top of the stage.
func (d *Director) dropConfetto(gen int, w, h int) {
	d.mu.Lock()
	fall := confettiFallMin + time.Duration(d.rng.Float64()*float64(confettiFallSpread))
	sway := (d.rng.Float64() - 0.5) * 6 // lateral drift over the fall, cells
	el := Element{
		Kind:  KindConfetto,
		X:     d.rng.Float64() * float64(w),
		Y:     0,
		VX:    sway / fall.Seconds(),
		VY:    float64(h) / fall.Seconds(),
		Color: palette[d.rng.Intn(len(palette))],
		Shape: shapes[d.rng.Intn(len(shapes))],
		Scale: 0.7 + d.rng.Float64()*0.6,
		TTL:   fall,
	}
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.addLocked(gen, el)
	d.mu.Unlock()
}

// add inserts an element and schedules its individual removal.
func (d *Director) add(gen int, el Element) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.addLocked(gen, el)
	d.mu.Unlock()
}

// addLocked is add with d.mu already held.
func (d *Director) addLocked(gen int, el Element) {
	d.next++
	id := d.next
	el.ID = id
	el.Born = d.clock.Now()
	d.live[id] = el
	d.clock.AfterFunc(el.TTL, func() { d.remove(gen, id) })
}

// remove deletes a single element. Removing something already gone
// (cleared, torn down, or from an older generation) is a no-op.
func (d *Director) remove(gen, id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	delete(d.live, id)
}

// teardown is the authoritative end of the celebration: everything
// still live at the 10 second mark goes away, whatever per-element
// timers remain pending.
func (d *Director) teardown(gen int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	d.live = make(map[int]Element)
}

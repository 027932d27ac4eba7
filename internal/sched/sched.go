// internal/sched/sched.go
//
// Declarative schedules: a choreography is a flat list of (delay, action)
// entries registered against a Clock up front, never a chain of nested
// callbacks. The full sequence is enumerable and testable.

package sched

import "time"

// Entry pairs a delay with an action.
type Entry struct {
	Delay  time.Duration
	Action func()
}

// Run registers every entry against c. Each entry fires exactly once,
// independently of the others; completion order is only guaranteed by
// the delays themselves.
func Run(c Clock, entries []Entry) {
	for _, e := range entries {
		c.AfterFunc(e.Delay, e.Action)
	}
}

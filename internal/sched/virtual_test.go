package sched

import (
	"testing"
	"time"
)

func TestVirtualFiresInScheduledOrder(t *testing.T) {
	v := NewVirtual()
	var order []string
	v.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	v.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	v.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	v.Advance(time.Second)

	if got := len(order); got != 3 {
		t.Fatalf("fired %d timers, want 3", got)
	}
	for i, want := range []string{"a", "b", "c"} {
		if order[i] != want {
			t.Fatalf("order = %v", order)
		}
	}
}

func TestVirtualTiesFireInRegistrationOrder(t *testing.T) {
	v := NewVirtual()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		v.AfterFunc(time.Second, func() { order = append(order, i) })
	}
	v.Advance(time.Second)
	for i, got := range order {
		if got != i {
			t.Fatalf("tie order = %v", order)
		}
	}
}

func TestVirtualAdvanceStopsAtTarget(t *testing.T) {
	v := NewVirtual()
	fired := false
	v.AfterFunc(2*time.Second, func() { fired = true })

	v.Advance(time.Second)
	if fired {
		t.Fatal("timer fired before due")
	}
	if v.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", v.Pending())
	}

	v.Advance(time.Second)
	if !fired {
		t.Fatal("timer did not fire at due time")
	}
}

func TestVirtualNestedSchedulingFiresWithinAdvance(t *testing.T) {
	v := NewVirtual()
	var order []string
	v.AfterFunc(100*time.Millisecond, func() {
		order = append(order, "outer")
		v.AfterFunc(100*time.Millisecond, func() { order = append(order, "inner") })
	})

	v.Advance(time.Second)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("order = %v", order)
	}
}

func TestRunRegistersEveryEntry(t *testing.T) {
	v := NewVirtual()
	count := 0
	entries := []Entry{
		{Delay: 0, Action: func() { count++ }},
		{Delay: 50 * time.Millisecond, Action: func() { count++ }},
		{Delay: 100 * time.Millisecond, Action: func() { count++ }},
	}
	Run(v, entries)
	v.Advance(200 * time.Millisecond)
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

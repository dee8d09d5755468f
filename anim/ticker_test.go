package anim

import (
	"reflect"
	"testing"
	"time"
)

func TestTickerPriorityOrder(t *testing.T) {
	tk := NewTicker()
	var order []string

	tk.Add(200, func(time.Duration) { order = append(order, "draw") })
	tk.Add(100, func(time.Duration) { order = append(order, "anim") })
	tk.Add(200, func(time.Duration) { order = append(order, "draw2") })
	tk.Add(50, func(time.Duration) { order = append(order, "first") })

	tk.Tick(0)

	want := []string{"first", "anim", "draw", "draw2"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTickerRemove(t *testing.T) {
	tk := NewTicker()
	calls := 0
	id := tk.Add(0, func(time.Duration) { calls++ })

	tk.Tick(0)
	tk.Remove(id)
	tk.Tick(time.Millisecond)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if tk.Len() != 0 {
		t.Errorf("Len = %d, want 0", tk.Len())
	}

	// Unknown and repeated removals are no-ops
	tk.Remove(id)
	tk.Remove(ListenerID(999))
}

// TestTickerMutationDuringTick verifies removal is immediate and addition is deferred
func TestTickerMutationDuringTick(t *testing.T) {
	tk := NewTicker()
	var laterCalls, addedCalls int
	var laterID ListenerID

	tk.Add(0, func(time.Duration) {
		tk.Remove(laterID)
		tk.Add(5, func(time.Duration) { addedCalls++ })
	})
	laterID = tk.Add(10, func(time.Duration) { laterCalls++ })

	tk.Tick(0)
	if laterCalls != 0 {
		t.Errorf("removed listener ran %d times", laterCalls)
	}
	if addedCalls != 0 {
		t.Errorf("listener added mid-tick ran in the same tick")
	}

	tk.Tick(time.Millisecond)
	if addedCalls != 1 {
		t.Errorf("added listener ran %d times on next tick, want 1", addedCalls)
	}
}

func TestTickerFrames(t *testing.T) {
	tk := NewTicker()
	var seen time.Duration
	tk.Add(0, func(now time.Duration) { seen = now })

	tk.Tick(10 * time.Millisecond)
	tk.Tick(26 * time.Millisecond)

	if tk.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", tk.Frames())
	}
	if seen != 26*time.Millisecond || tk.Last() != seen {
		t.Errorf("listener saw %v, Last %v", seen, tk.Last())
	}
}

package anim

import (
	"slices"
	"time"
)

// ListenerID identifies a registered frame listener
type ListenerID uint64

// Listener is invoked once per frame with the frame clock
type Listener func(now time.Duration)

type listener struct {
	id       ListenerID
	priority int
	fn       Listener
	removed  bool
}

// Ticker fans a single frame clock out to listeners in priority order
// Lower priorities run first, equal priorities run in registration order
// Not safe for concurrent use, all calls belong to the frame loop goroutine
type Ticker struct {
	listeners []*listener
	nextID    ListenerID
	frames    uint64
	last      time.Duration
}

// NewTicker creates an empty ticker
func NewTicker() *Ticker {
	return &Ticker{}
}

// Add registers fn and returns its id
// A listener added during a tick first runs on the next tick
func (t *Ticker) Add(priority int, fn Listener) ListenerID {
	t.nextID++
	l := &listener{id: t.nextID, priority: priority, fn: fn}

	// Copy-on-write keeps any in-flight Tick iterating its own snapshot
	next := make([]*listener, 0, len(t.listeners)+1)
	next = append(next, t.listeners...)
	idx, _ := slices.BinarySearchFunc(next, priority+1, func(e *listener, p int) int {
		if e.priority < p {
			return -1
		}
		return 1
	})
	next = slices.Insert(next, idx, l)
	t.listeners = next
	return l.id
}

// Remove unregisters a listener, unknown ids are ignored
// A listener removed during a tick does not run for the rest of that tick
func (t *Ticker) Remove(id ListenerID) {
	idx := slices.IndexFunc(t.listeners, func(l *listener) bool { return l.id == id })
	if idx < 0 {
		return
	}
	t.listeners[idx].removed = true

	next := make([]*listener, 0, len(t.listeners)-1)
	next = append(next, t.listeners[:idx]...)
	next = append(next, t.listeners[idx+1:]...)
	t.listeners = next
}

// Tick runs every listener once with now
func (t *Ticker) Tick(now time.Duration) {
	t.frames++
	t.last = now
	snapshot := t.listeners
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(now)
	}
}

// Len returns the number of registered listeners
func (t *Ticker) Len() int {
	return len(t.listeners)
}

// Frames returns the number of ticks run
func (t *Ticker) Frames() uint64 {
	return t.frames
}

// Last returns the clock value of the most recent tick
func (t *Ticker) Last() time.Duration {
	return t.last
}

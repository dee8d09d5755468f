// Package anim drives timed property animations and the per-frame ticker they share with the renderer
package anim

import (
	"time"

	"github.com/lixenwraith/darpan/vmath"
)

// RepeatForever loops a task until it is killed, such a task never completes
const RepeatForever = -1

// Task describes a single timed animation
// OnUpdate receives the eased progress, the owner maps it onto the property it animates
type Task struct {
	Name     string
	Delay    time.Duration
	Duration time.Duration
	Ease     EaseFunc

	// Repeat is the number of extra legs played after the first, negative is RepeatForever
	Repeat int
	// Yoyo plays every odd leg backwards
	Yoyo bool

	OnUpdate   func(v float64)
	OnComplete func()
}

// Handle tracks a scheduled task
type Handle struct {
	task    Task
	start   time.Duration
	started bool
	done    bool
	killed  bool
}

// Kill stops the task without firing OnComplete, safe to call repeatedly
func (h *Handle) Kill() {
	if h == nil {
		return
	}
	h.killed = true
}

// Active reports whether the task can still update
func (h *Handle) Active() bool {
	return h != nil && !h.done && !h.killed
}

// span is the time from start to completion
func (t *Task) span() time.Duration {
	return t.Delay + t.Duration*time.Duration(t.Repeat+1)
}

// Scheduler owns running tasks and advances them on the frame clock
// A task's clock starts at the first Advance after it was scheduled
// Not safe for concurrent use, all calls belong to the frame loop goroutine
type Scheduler struct {
	tasks []*Handle
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues a task and returns its handle
func (s *Scheduler) Schedule(t Task) *Handle {
	if t.Ease == nil {
		t.Ease = Linear
	}
	if t.Repeat < 0 {
		t.Repeat = RepeatForever
		// A zero-length leg cannot loop
		if t.Duration <= 0 {
			t.Repeat = 0
		}
	}
	h := &Handle{task: t}
	s.tasks = append(s.tasks, h)
	return h
}

// Attach registers the scheduler on a ticker and returns the listener id
func (s *Scheduler) Attach(t *Ticker, priority int) ListenerID {
	return t.Add(priority, s.Advance)
}

// Advance moves every task to now, firing updates and completions
// Tasks scheduled from inside callbacks start on the next Advance
func (s *Scheduler) Advance(now time.Duration) {
	snapshot := s.tasks
	for _, h := range snapshot {
		if !h.Active() {
			continue
		}
		s.step(h, now)
	}

	// Compact finished and killed tasks, keeping any appended during callbacks
	live := s.tasks[:0]
	for _, h := range s.tasks {
		if h.Active() {
			live = append(live, h)
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = live
}

func (s *Scheduler) step(h *Handle, now time.Duration) {
	t := &h.task
	if !h.started {
		h.started = true
		h.start = now
	}

	local := now - h.start - t.Delay
	if local < 0 {
		return
	}

	finished := t.Repeat != RepeatForever && local >= t.span()-t.Delay
	leg := t.Repeat
	legT := 1.0
	if !finished && t.Duration > 0 {
		leg = int(local / t.Duration)
		legT = vmath.Progress(float64(local-time.Duration(leg)*t.Duration), float64(t.Duration))
	}

	p := legT
	if t.Yoyo && leg%2 == 1 {
		p = 1 - legT
	}

	if t.OnUpdate != nil {
		t.OnUpdate(t.Ease(p))
	}

	// Callback may have killed this task
	if !finished || h.killed {
		return
	}
	h.done = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// CancelAll kills every task without firing completions
func (s *Scheduler) CancelAll() {
	for _, h := range s.tasks {
		h.Kill()
	}
	clear(s.tasks)
	s.tasks = s.tasks[:0]
}

// Active returns the number of tasks still running
func (s *Scheduler) Active() int {
	n := 0
	for _, h := range s.tasks {
		if h.Active() {
			n++
		}
	}
	return n
}

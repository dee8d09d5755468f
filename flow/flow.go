// Package flow simulates the PIN connection sequence that drives the hero animation
package flow

import (
	"github.com/lixenwraith/darpan/anim"
	"github.com/lixenwraith/darpan/parameter"
	"github.com/lixenwraith/darpan/vmath"
)

// State is the connection state
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateIncorrect
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateIncorrect:
		return "incorrect"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Stage is the page stage derived from the connection state
type Stage int

const (
	StagePinEntry Stage = iota
	StageFeatures
)

func (s Stage) String() string {
	if s == StageFeatures {
		return "features"
	}
	return "pinEntry"
}

// KeyKind classifies keystrokes the flow understands
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyBackspace
)

// Key is a single keystroke
type Key struct {
	Kind  KeyKind
	Digit rune
}

// Hooks are synchronous notifications for collaborators, any may be nil
type Hooks struct {
	// OnInput fires after every accepted edit with the new input
	OnInput func(input string)
	// OnMismatch fires when a completed input differs from the PIN
	OnMismatch func()
	// OnReset fires when the incorrect episode ends and input is cleared
	OnReset func()
	// OnConnecting fires when a completed input matches the PIN
	OnConnecting func()
	// OnConnected fires once, in the frame the intensity ramp completes
	OnConnected func()
}

// Transform holds the animated entry UI properties
type Transform struct {
	ShakeX  float64 // cells, horizontal shake offset of the input boxes
	OffsetY float64 // rows, vertical offset of the entry UI
	Alpha   float64 // [0, 1], entry UI opacity
}

// View is a read-only snapshot for rendering
type View struct {
	Pin       string
	Input     string
	State     State
	Stage     Stage
	Entry     Transform
	Intensity float64
}

// Flow is the connection state machine
// Not safe for concurrent use except Intensity().Load, all calls belong to the frame loop goroutine
type Flow struct {
	pin       string
	input     []rune
	state     State
	stage     Stage
	entry     Transform
	intensity *Intensity

	sched *anim.Scheduler
	hooks Hooks

	entrance *anim.Handle
	ramp     *anim.Handle
	fade     *anim.Handle
	shake    *anim.Handle

	closed bool
}

// New creates a flow for pin and schedules the entry UI entrance
func New(pin string, sched *anim.Scheduler, hooks Hooks) (*Flow, error) {
	if err := ValidatePin(pin); err != nil {
		return nil, err
	}
	f := &Flow{
		pin:       pin,
		input:     make([]rune, 0, parameter.PinLength),
		state:     StateIdle,
		stage:     StagePinEntry,
		intensity: &Intensity{},
		sched:     sched,
		hooks:     hooks,
		entry: Transform{
			OffsetY: parameter.EntranceRows,
			Alpha:   0,
		},
	}

	f.entrance = sched.Schedule(anim.Task{
		Name:     "entrance",
		Duration: parameter.EntranceDuration,
		Ease:     anim.Power3Out,
		OnUpdate: func(v float64) {
			f.entry.Alpha = v
			f.entry.OffsetY = vmath.Lerp(parameter.EntranceRows, 0, v)
		},
	})
	return f, nil
}

// Pin returns the target code
func (f *Flow) Pin() string {
	return f.pin
}

// Input returns the typed digits
func (f *Flow) Input() string {
	return string(f.input)
}

// State returns the connection state
func (f *Flow) State() State {
	return f.state
}

// Stage returns the page stage
func (f *Flow) Stage() Stage {
	return f.stage
}

// Intensity returns the shared intensity cell read by the wave field
func (f *Flow) Intensity() *Intensity {
	return f.intensity
}

// View returns a rendering snapshot
func (f *Flow) View() View {
	return View{
		Pin:       f.pin,
		Input:     string(f.input),
		State:     f.state,
		Stage:     f.stage,
		Entry:     f.entry,
		Intensity: f.intensity.Load(),
	}
}

// accepting reports whether keystrokes are processed, all others are dropped
func (f *Flow) accepting() bool {
	return !f.closed && f.state == StateIdle && f.stage == StagePinEntry
}

// HandleKey applies a keystroke and reports whether it changed the input
func (f *Flow) HandleKey(k Key) bool {
	if !f.accepting() {
		return false
	}

	switch k.Kind {
	case KeyDigit:
		if !isDigit(k.Digit) || len(f.input) >= parameter.PinLength {
			return false
		}
		f.input = append(f.input, k.Digit)
	case KeyBackspace:
		if len(f.input) == 0 {
			return false
		}
		f.input = f.input[:len(f.input)-1]
	default:
		return false
	}

	if f.hooks.OnInput != nil {
		f.hooks.OnInput(string(f.input))
	}

	// Comparison runs exactly once per completion, the state leaves idle before any further keystroke
	if len(f.input) == parameter.PinLength {
		if string(f.input) == f.pin {
			f.connect()
		} else {
			f.reject()
		}
	}
	return true
}

// connect enters the connecting episode: intensity ramp plus deferred entry fade
func (f *Flow) connect() {
	f.state = StateConnecting

	// Fade takes ownership of alpha and offset from the entrance
	f.entrance.Kill()
	fromAlpha, fromY := f.entry.Alpha, f.entry.OffsetY

	f.ramp = f.sched.Schedule(anim.Task{
		Name:     "intensity",
		Duration: parameter.IntensityDuration,
		Ease:     anim.ElasticOut(parameter.IntensityElasticAmplitude, parameter.IntensityElasticPeriod),
		// Overshoot is clipped and the value ratchets, keeping the ramp non-decreasing
		OnUpdate:   f.intensity.raise,
		OnComplete: f.complete,
	})
	f.fade = f.sched.Schedule(anim.Task{
		Name:     "fade",
		Delay:    parameter.FadeDelay,
		Duration: parameter.FadeDuration,
		Ease:     anim.Power3In,
		OnUpdate: func(v float64) {
			f.entry.Alpha = vmath.Lerp(fromAlpha, 0, v)
			f.entry.OffsetY = vmath.Lerp(fromY, -parameter.FadeLiftRows, v)
		},
	})

	if f.hooks.OnConnecting != nil {
		f.hooks.OnConnecting()
	}
}

// complete ends the connecting episode, the stage switch is terminal
func (f *Flow) complete() {
	f.intensity.raise(1)
	f.state = StateConnected
	f.stage = StageFeatures
	if f.hooks.OnConnected != nil {
		f.hooks.OnConnected()
	}
}

// reject enters the incorrect episode: shake, then clear and return to idle
func (f *Flow) reject() {
	f.state = StateIncorrect
	f.shake = f.sched.Schedule(anim.Task{
		Name:     "shake",
		Duration: parameter.ShakeLeg,
		Repeat:   parameter.ShakeRepeats,
		Yoyo:     true,
		Ease:     anim.Power2InOut,
		OnUpdate: func(v float64) {
			f.entry.ShakeX = v * parameter.ShakeDisplacement
		},
		OnComplete: func() {
			f.entry.ShakeX = 0
			f.input = f.input[:0]
			f.state = StateIdle
			if f.hooks.OnReset != nil {
				f.hooks.OnReset()
			}
		},
	})

	if f.hooks.OnMismatch != nil {
		f.hooks.OnMismatch()
	}
}

// Close cancels every animation the flow owns and drops further keystrokes, safe to call repeatedly
func (f *Flow) Close() {
	f.closed = true
	f.entrance.Kill()
	f.ramp.Kill()
	f.fade.Kill()
	f.shake.Kill()
}

// Active reports whether any owned animation is still running
func (f *Flow) Active() bool {
	return f.entrance.Active() || f.ramp.Active() || f.fade.Active() || f.shake.Active()
}

// Package hero mounts the animated wave background and the PIN connection flow on a tcell screen
package hero

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/darpan/anim"
	"github.com/lixenwraith/darpan/config"
	"github.com/lixenwraith/darpan/flow"
	"github.com/lixenwraith/darpan/input"
	"github.com/lixenwraith/darpan/noise"
	"github.com/lixenwraith/darpan/parameter"
	"github.com/lixenwraith/darpan/render"
	"github.com/lixenwraith/darpan/status"
	"github.com/lixenwraith/darpan/wave"
)

// ErrNoScreen is returned by Mount without a screen
var ErrNoScreen = errors.New("hero: no screen")

// Sound plays the connection cues, audio.SoundManager implements it
type Sound interface {
	PlayKey()
	PlayError()
	PlayConnect()
	Cleanup()
}

// Option configures a mount
type Option func(*Hero)

// WithLogger sets the structured logger, logs are discarded by default
func WithLogger(l *slog.Logger) Option {
	return func(h *Hero) {
		if l != nil {
			h.log = l
		}
	}
}

// WithSound enables audio cues
func WithSound(s Sound) Option {
	return func(h *Hero) {
		h.sound = s
	}
}

// WithStatus publishes live metrics into reg instead of a private registry
func WithStatus(reg *status.Registry) Option {
	return func(h *Hero) {
		h.status = reg
	}
}

// WithKeyTable replaces the default key bindings
func WithKeyTable(kt *input.KeyTable) Option {
	return func(h *Hero) {
		h.keys = kt
	}
}

// WithLayers replaces the default wave layers
func WithLayers(layers ...wave.Layer) Option {
	return func(h *Hero) {
		h.layers = append([]wave.Layer{}, layers...)
	}
}

// Hero is one mount of the hero view
// Everything except Unmount belongs to the goroutine calling Run, or to the caller driving Frame directly
type Hero struct {
	id     uuid.UUID
	cfg    config.Config
	screen tcell.Screen
	log    *slog.Logger
	sound  Sound
	muted  bool
	keys   *input.KeyTable

	noise  *noise.Field
	canvas *render.Canvas
	ticker *anim.Ticker
	sched  *anim.Scheduler
	flow   *flow.Flow
	field  *wave.Field
	layers []wave.Layer

	orchestrator *render.Orchestrator
	palette      palette

	schedID anim.ListenerID

	status     *status.Registry
	frames     *atomic.Int64
	keystrokes *atomic.Int64
	mismatches *atomic.Int64
	intensity  *status.AtomicFloat
	waveTime   *status.AtomicFloat
	state      *status.AtomicString
	stage      *status.AtomicString

	// reveal is the features showcase progress in [0, 1]
	reveal    float64
	indicator indicatorState

	events      chan tcell.Event
	quit        chan struct{}
	unmountOnce sync.Once
}

// Mount builds every per-mount resource and subscribes to screen events
// A wave field that cannot start is logged and the hero runs with a blank background
func Mount(screen tcell.Screen, cfg config.Config, opts ...Option) (*Hero, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := render.ParseHex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}

	h := &Hero{
		id:     uuid.New(),
		cfg:    cfg,
		screen: screen,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With("mount", h.id.String())
	if h.keys == nil {
		h.keys = input.DefaultKeyTable()
	}
	if h.status == nil {
		h.status = status.NewRegistry()
	}
	h.frames = h.status.Ints.Get(status.KeyFrames)
	h.keystrokes = h.status.Ints.Get(status.KeyKeystrokes)
	h.mismatches = h.status.Ints.Get(status.KeyMismatches)
	h.intensity = h.status.Floats.Get(status.KeyIntensity)
	h.waveTime = h.status.Floats.Get(status.KeyWaveTime)
	h.state = h.status.Strings.Get(status.KeyState)
	h.stage = h.status.Strings.Get(status.KeyStage)

	if cfg.Seed == 0 {
		h.noise = noise.NewRandom()
	} else {
		h.noise = noise.New(cfg.Seed)
	}

	pin := cfg.Pin
	if pin == "" {
		pin = flow.GeneratePin(nil)
	}

	width, height := screen.Size()
	h.canvas = render.NewCanvas(width, height, bg)
	h.palette = newPalette(h.canvas.Background())
	h.ticker = anim.NewTicker()
	h.sched = anim.NewScheduler()
	h.schedID = h.sched.Attach(h.ticker, parameter.PriorityAnimation)

	h.flow, err = flow.New(pin, h.sched, flow.Hooks{
		OnInput:      h.onInput,
		OnMismatch:   h.onMismatch,
		OnReset:      h.onReset,
		OnConnecting: h.onConnecting,
		OnConnected:  h.onConnected,
	})
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	h.publish()

	layers := h.layers
	if layers == nil {
		layers = wave.DefaultLayers()
	}
	h.field = wave.NewField(h.ticker)
	if err := h.field.Start(h.canvas, h.noise, layers, h.flow.Intensity()); err != nil {
		h.log.Warn("wave field not started", "error", err)
	}

	h.orchestrator = render.NewOrchestrator(screen)
	h.orchestrator.Register(&backgroundRenderer{canvas: h.canvas}, render.PriorityBackground)
	h.orchestrator.Register(&entryRenderer{flow: h.flow, palette: &h.palette}, render.PriorityUI)
	h.orchestrator.Register(&featuresRenderer{flow: h.flow, reveal: &h.reveal, palette: &h.palette}, render.PriorityOverlay)
	h.orchestrator.Register(&indicatorRenderer{flow: h.flow, state: &h.indicator, palette: &h.palette}, render.PriorityIndicator)

	h.events = make(chan tcell.Event, parameter.EventChannelSize)
	h.quit = make(chan struct{})
	go screen.ChannelEvents(h.events, h.quit)

	h.log.Info("hero mounted",
		"seed", h.noise.Seed(),
		"width", width,
		"height", height,
		"wave", h.field.Running(),
	)
	return h, nil
}

// ID returns the mount identifier attached to every log record
func (h *Hero) ID() uuid.UUID {
	return h.id
}

// Pin returns the host PIN shown for this mount
func (h *Hero) Pin() string {
	return h.flow.Pin()
}

// View returns the connection flow snapshot
func (h *Hero) View() flow.View {
	return h.flow.View()
}

// Status returns the live metrics registry, readable from any goroutine
func (h *Hero) Status() *status.Registry {
	return h.status
}

// Muted reports whether sound cues are silenced
func (h *Hero) Muted() bool {
	return h.muted
}

// HandleEvent applies a screen event and reports false when the user asked to quit
func (h *Hero) HandleEvent(ev tcell.Event) bool {
	intent := h.keys.Translate(ev)
	switch intent.Type {
	case input.IntentQuit:
		h.log.Info("quit requested")
		return false

	case input.IntentToggleMute:
		h.muted = !h.muted
		h.log.Info("sound toggled", "muted", h.muted)

	case input.IntentDigit:
		h.keystrokes.Add(1)
		h.flow.HandleKey(flow.Key{Kind: flow.KeyDigit, Digit: intent.Digit})

	case input.IntentBackspace:
		h.keystrokes.Add(1)
		h.flow.HandleKey(flow.Key{Kind: flow.KeyBackspace})

	case input.IntentResize:
		h.canvas.Resize(intent.Width, intent.Height)
		h.orchestrator.Resize()
		cols, rows := h.canvas.Cells()
		h.log.Debug("resized", "cols", cols, "rows", rows)
	}
	return true
}

// Frame advances animations, draws the wave field and composes the overlay
func (h *Hero) Frame(now time.Duration) {
	h.ticker.Tick(now)
	h.publish()

	width, height := h.screen.Size()
	h.orchestrator.RenderFrame(render.Context{
		Now:    h.ticker.Last(),
		Width:  width,
		Height: height,
	})
}

// Run multiplexes screen events and frame ticks until quit, cancellation or Unmount
func (h *Hero) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(h.cfg.FrameInterval())
	defer frameTicker.Stop()

	start := time.Now()
	h.Frame(0)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-h.quit:
			return nil

		case ev, ok := <-h.events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}

		case <-frameTicker.C:
			h.Frame(time.Since(start))
		}
	}
}

// Unmount stops the wave field, cancels every animation, drops the event subscription and releases audio
// Safe to call repeatedly, call after Run returned or from its goroutine
func (h *Hero) Unmount() {
	h.unmountOnce.Do(func() {
		close(h.quit)

		h.field.Stop()
		h.flow.Close()
		h.sched.CancelAll()
		h.ticker.Remove(h.schedID)

		if h.sound != nil {
			h.sound.Cleanup()
		}

		h.publish()
		h.log.Info("hero unmounted", "status", h.status)
	})
}

// publish copies flow and wave values into the status registry
func (h *Hero) publish() {
	h.frames.Store(int64(h.ticker.Frames()))
	h.intensity.Set(h.flow.Intensity().Load())
	h.state.Store(h.flow.State().String())
	h.stage.Store(h.flow.Stage().String())
	if h.field != nil {
		h.waveTime.Set(h.field.Time())
	}
}

// cue plays a sound unless audio is absent or muted
func (h *Hero) cue(play func(Sound)) {
	if h.sound == nil || h.muted {
		return
	}
	play(h.sound)
}

func (h *Hero) onInput(typed string) {
	h.log.Debug("pin input", "len", len(typed))
	h.cue(Sound.PlayKey)
}

func (h *Hero) onMismatch() {
	h.mismatches.Add(1)
	h.log.Info("pin mismatch", "state", h.flow.State().String())
	h.cue(Sound.PlayError)
}

func (h *Hero) onReset() {
	h.log.Debug("pin entry reset")
}

func (h *Hero) onConnecting() {
	h.log.Info("connecting", "state", h.flow.State().String())
	h.cue(Sound.PlayConnect)
}

func (h *Hero) onConnected() {
	h.log.Info("connected", "stage", h.flow.Stage().String())
	h.sched.Schedule(anim.Task{
		Name:     "reveal",
		Duration: parameter.RevealDuration,
		Ease:     anim.Power2InOut,
		OnUpdate: func(v float64) {
			h.reveal = v
		},
	})
	h.sched.Schedule(anim.Task{
		Name:     "indicator",
		Delay:    parameter.IndicatorDelay,
		Duration: parameter.IndicatorDuration,
		Ease:     anim.Power3Out,
		OnUpdate: func(v float64) {
			h.indicator.alpha = v
			h.indicator.lift = (1 - v) * parameter.IndicatorLiftRows
		},
	})
	h.sched.Schedule(anim.Task{
		Name:     "indicator-drift",
		Duration: parameter.IndicatorDriftLeg,
		Ease:     anim.SineInOut,
		Repeat:   anim.RepeatForever,
		Yoyo:     true,
		OnUpdate: func(v float64) {
			h.indicator.drift = v
		},
	})
}

// Package wave renders the animated noise traces behind the hero
package wave

import (
	"errors"
	"time"

	"github.com/lixenwraith/darpan/anim"
	"github.com/lixenwraith/darpan/parameter"
	"github.com/lixenwraith/darpan/render"
)

// Resource errors returned by Start, the caller keeps running with a blank background
var (
	ErrNoSurface = errors.New("wave: drawing surface unavailable")
	ErrNoNoise   = errors.New("wave: noise field unavailable")
	ErrNoLayers  = errors.New("wave: no layers configured")
)

// Surface is the pixel target the field draws on
// Size is read at the top of every frame so resizes apply to the next frame
type Surface interface {
	Size() (width, height int)
	Clear()
	Stroke(points []render.Point, style render.StrokeStyle)
}

// IntensitySource supplies the funnel blend factor in [0, 1]
type IntensitySource interface {
	Load() float64
}

// FrameTicker is the per-frame callback registry driving the field
type FrameTicker interface {
	Add(priority int, fn anim.Listener) anim.ListenerID
	Remove(id anim.ListenerID)
}

// Field draws the wave layers once per frame while started
type Field struct {
	ticker   FrameTicker
	priority int

	surface   Surface
	noise     Noise
	layers    []Layer
	intensity IntensitySource

	running    bool
	listenerID anim.ListenerID

	// time advances by a fixed step per frame, independent of wall clock
	time   float64
	step   float64
	frames uint64

	ys     []float64
	points []render.Point
}

// NewField creates a stopped field bound to a ticker
func NewField(ticker FrameTicker) *Field {
	return &Field{
		ticker:   ticker,
		priority: parameter.PriorityWave,
		step:     parameter.WaveTimeStep,
	}
}

// Start validates resources and registers the per-frame draw
// Calling Start while running restarts with the new resources
func (f *Field) Start(surface Surface, noise Noise, layers []Layer, intensity IntensitySource) error {
	if surface == nil {
		return ErrNoSurface
	}
	if noise == nil {
		return ErrNoNoise
	}
	if len(layers) == 0 {
		return ErrNoLayers
	}

	f.Stop()

	f.surface = surface
	f.noise = noise
	f.layers = append(f.layers[:0], layers...)
	f.intensity = intensity
	f.listenerID = f.ticker.Add(f.priority, func(time.Duration) { f.Step() })
	f.running = true
	return nil
}

// Stop unregisters the per-frame draw, no-op when not running
func (f *Field) Stop() {
	if !f.running {
		return
	}
	f.ticker.Remove(f.listenerID)
	f.running = false
	f.listenerID = 0
}

// Running reports whether the draw is registered
func (f *Field) Running() bool {
	return f.running
}

// Time returns the accumulated animation time
func (f *Field) Time() float64 {
	return f.time
}

// Frames returns the number of frames drawn
func (f *Field) Frames() uint64 {
	return f.frames
}

// Step draws one frame: clear, advance time, read intensity, stroke every layer
func (f *Field) Step() {
	if f.surface == nil {
		return
	}
	f.surface.Clear()
	f.time += f.step
	f.frames++

	intensity := 0.0
	if f.intensity != nil {
		intensity = f.intensity.Load()
	}

	width, height := f.surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	for i := range f.layers {
		l := &f.layers[i]
		f.ys = l.Sample(f.noise, width, height, f.time, intensity, f.ys)

		if cap(f.points) < width {
			f.points = make([]render.Point, width)
		}
		f.points = f.points[:width]
		for x, y := range f.ys {
			f.points[x] = render.Point{X: float64(x), Y: y}
		}

		f.surface.Stroke(f.points, render.StrokeStyle{
			Color: l.Color,
			Alpha: l.Alpha,
			Width: parameter.WaveLineWidth,
		})
	}
}

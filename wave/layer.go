package wave

import (
	"math"

	"github.com/lixenwraith/darpan/parameter"
	"github.com/lixenwraith/darpan/render"
	"github.com/lixenwraith/darpan/vmath"
)

// Noise is a 3D coherent noise source returning values in [-1, 1]
type Noise interface {
	Eval(x, y, z float64) float64
}

// Layer is one noise-driven trace, immutable for the life of a mount
type Layer struct {
	Amplitude float64
	Frequency float64
	Color     render.Color
	Alpha     float64
	Phase     float64 // radians, used as the noise y coordinate
	Speed     float64 // signed, scales the time coordinate
}

// DefaultLayers returns the counter-propagating pair drawn by the hero
func DefaultLayers() []Layer {
	return []Layer{
		{
			Amplitude: parameter.WaveAAmplitude,
			Frequency: parameter.WaveAFrequency,
			Color:     render.MustHex(parameter.WaveAColor),
			Alpha:     parameter.WaveAAlpha,
			Phase:     parameter.WaveAPhase,
			Speed:     parameter.WaveASpeed,
		},
		{
			Amplitude: parameter.WaveBAmplitude,
			Frequency: parameter.WaveBFrequency,
			Color:     render.MustHex(parameter.WaveBColor),
			Alpha:     parameter.WaveBAlpha,
			Phase:     parameter.WaveBPhase,
			Speed:     parameter.WaveBSpeed,
		},
	}
}

// Funnel returns the converging-stream target height at column x
// The curve sits at the vertical midpoint at both edges and lifts by FunnelDepth*height at mid-width
func Funnel(x, width, height int) float64 {
	if width <= 0 {
		return float64(height) * parameter.FunnelCenter
	}
	h := float64(height)
	lift := math.Sin(float64(x)/float64(width)*math.Pi) * h * parameter.FunnelDepth
	return h*parameter.FunnelCenter - lift
}

// Sample computes the blended trace height for every column in [0, width)
// dst is reused when it has enough capacity
func (l *Layer) Sample(n Noise, width, height int, t, intensity float64, dst []float64) []float64 {
	if width <= 0 {
		return dst[:0]
	}
	if cap(dst) < width {
		dst = make([]float64, width)
	}
	dst = dst[:width]

	intensity = vmath.Clamp01(intensity)
	baseline := float64(height) * parameter.WaveBaseline
	z := t * l.Speed
	for x := 0; x < width; x++ {
		funnelY := Funnel(x, width, height)
		if intensity == 1 {
			// Noise term vanishes entirely, skip the sample
			dst[x] = funnelY
			continue
		}
		v := n.Eval(float64(x)*l.Frequency, l.Phase, z)
		y := baseline + v*l.Amplitude
		dst[x] = vmath.Lerp(y, funnelY, intensity)
	}
	return dst
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	clickAmplitude = 0.12
	clickDecay     = 160.0 // per second

	buzzAmplitude = 0.2
	buzzAttack    = 0.02 // seconds

	sweepAmplitude = 0.1
)

// ClickGenerator generates a sine tick with an exponential decay
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click generator at freq Hz
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := clickAmplitude * math.Exp(-t*clickDecay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low harmonic-rich buzz
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz generator at freq Hz
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/buzzAttack, 1.0)
		sample *= envelope * buzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// SweepGenerator glides exponentially from one frequency to another and then ends
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from..to Hz lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		total: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for n < len(samples) && g.pos < g.total {
		p := float64(g.pos) / float64(g.total)
		freq := g.from * math.Pow(g.to/g.from, p)

		// Phase accumulation keeps the glide click free
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		envelope := math.Sin(math.Pi * p)
		sample := sweepAmplitude * envelope * math.Sin(2*math.Pi*g.phase)

		samples[n][0] = sample
		samples[n][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *SweepGenerator) Err() error {
	return nil
}

package flow

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/darpan/vmath"
)

// Intensity is the shared funnel blend cell, written by the flow and read by the wave field every frame
// Stored as float64 bits so readers on any goroutine never observe a torn value
type Intensity struct {
	bits atomic.Uint64
}

// Load returns the current intensity in [0, 1]
func (i *Intensity) Load() float64 {
	return math.Float64frombits(i.bits.Load())
}

// raise stores v clamped to [0, 1] only if it exceeds the current value
func (i *Intensity) raise(v float64) {
	v = vmath.Clamp01(v)
	for {
		old := i.bits.Load()
		if v <= math.Float64frombits(old) {
			return
		}
		if i.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

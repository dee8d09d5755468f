// Package noise provides the seeded coherent noise field sampled by the wave renderer
package noise

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// Field is a deterministic 3D coherent noise function
// The permutation table is built once at construction and never mutated, so Eval is a pure function of its inputs
type Field struct {
	seed  int64
	noise opensimplex.Noise
}

// New creates a noise field for the given seed
func New(seed int64) *Field {
	return &Field{
		seed:  seed,
		noise: opensimplex.New(seed),
	}
}

// NewRandom creates a noise field with a random seed
func NewRandom() *Field {
	return New(rand.Int64())
}

// Seed returns the seed the permutation table was built from
func (f *Field) Seed() int64 {
	return f.seed
}

// Eval samples the field, result is in [-1, 1]
func (f *Field) Eval(x, y, z float64) float64 {
	v := f.noise.Eval3(x, y, z)
	// Guard against float drift at the extremes
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

package vmath

import "math"

// Lerp performs linear interpolation between a and b
// t is in [0, 1] where 0 returns a, 1 returns b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1], NaN maps to 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Round returns v rounded half away from zero as int
func Round(v float64) int {
	return int(math.Round(v))
}

// Progress returns elapsed/total clamped to [0, 1]
// A non-positive total is treated as already complete
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(elapsed / total)
}

package anim

import "math"

// EaseFunc maps linear progress in [0, 1] to eased progress
// Every ease maps 0 to 0 and 1 to 1 exactly, intermediate values may overshoot
type EaseFunc func(t float64) float64

// pin forces exact endpoints so completed tasks land on their target value
func pin(f EaseFunc) EaseFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return f(t)
	}
}

// Linear is the identity ease
var Linear EaseFunc = pin(func(t float64) float64 { return t })

// Power2InOut is a quadratic ease in and out
var Power2InOut EaseFunc = pin(func(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
})

// Power3In is a cubic ease in
var Power3In EaseFunc = pin(func(t float64) float64 {
	return t * t * t
})

// Power3Out is a cubic ease out
var Power3Out EaseFunc = pin(func(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
})

// SineInOut is a sinusoidal ease in and out
var SineInOut EaseFunc = pin(func(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
})

// ElasticOut returns an exponentially damped oscillating ease that overshoots the target
// amplitude below 1 is raised to 1, period is in units of total progress
func ElasticOut(amplitude, period float64) EaseFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return pin(func(t float64) float64 {
		return amplitude*math.Pow(2, -10*t)*math.Sin((t-shift)*(2*math.Pi)/period) + 1
	})
}

package parameter

import "time"

// PIN
const (
	// PinLength is the number of digits in a PIN
	PinLength = 4

	// PinMin and PinMax bound generated PINs (inclusive)
	PinMin = 1000
	PinMax = 9999
)

// Connecting episode
const (
	// IntensityDuration is the length of the 0 -> 1 intensity ramp
	IntensityDuration = 2 * time.Second

	// IntensityElasticAmplitude and IntensityElasticPeriod shape the elastic out ease
	IntensityElasticAmplitude = 1.0
	IntensityElasticPeriod    = 0.4

	// FadeDelay defers the entry UI fade relative to the intensity ramp start
	FadeDelay = 500 * time.Millisecond

	// FadeDuration is the length of the entry UI fade and lift
	FadeDuration = 1200 * time.Millisecond

	// FadeLiftRows is how far the entry UI travels upward while fading
	FadeLiftRows = 6.0
)

// Incorrect episode
const (
	// ShakeLeg is the duration of a single shake leg
	ShakeLeg = 80 * time.Millisecond

	// ShakeRepeats is the number of additional legs after the first, yoyo alternates direction
	ShakeRepeats = 5

	// ShakeDisplacement is the horizontal shake offset in cells
	ShakeDisplacement = 2.0
)

// Entrance
const (
	// EntranceDuration is the length of the entry UI rise-in at mount
	EntranceDuration = 1500 * time.Millisecond

	// EntranceRows is the starting downward offset of the entry UI
	EntranceRows = 4.0
)

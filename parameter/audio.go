package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// KeyClickDuration and KeyClickFreq define the keystroke tick
	KeyClickDuration = 30 * time.Millisecond
	KeyClickFreq     = 1760.0

	// ErrorBuzzDuration and ErrorBuzzFreq define the mismatch buzz
	ErrorBuzzDuration = 150 * time.Millisecond
	ErrorBuzzFreq     = 120.0

	// ConnectSweepDuration, ConnectSweepFrom and ConnectSweepTo define the connect sweep
	ConnectSweepDuration = 1200 * time.Millisecond
	ConnectSweepFrom     = 220.0
	ConnectSweepTo       = 880.0
)

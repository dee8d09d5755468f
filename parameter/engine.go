package parameter

import "time"

// Frame Loop & Event Timing
const (
	// DefaultFPS is the target frame rate of the hero draw loop
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 1
	MaxFPS = 240

	// FrameUpdateInterval is the rendering frame interval at DefaultFPS (~60 FPS)
	FrameUpdateInterval = time.Second / DefaultFPS

	// EventChannelSize is the buffered capacity between the screen event forwarder and the run loop
	EventChannelSize = 256
)

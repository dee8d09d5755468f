package parameter

import "math"

// Wave Field Geometry
const (
	// WaveBaseline is the resting height of a trace as a fraction of surface height
	WaveBaseline = 0.55

	// FunnelCenter is the funnel's anchor height as a fraction of surface height
	FunnelCenter = 0.5

	// FunnelDepth is the peak lift of the funnel at mid-width as a fraction of surface height
	FunnelDepth = 0.25

	// WaveTimeStep is the fixed time increment applied once per frame
	WaveTimeStep = 0.01

	// WaveLineWidth is the stroke thickness in canvas dots
	WaveLineWidth = 1.5
)

// Default layers, tuned for braille canvas resolution (2x4 dots per cell)
// The pair must keep opposite phase and opposite signed speed
const (
	WaveAAmplitude = 10.0
	WaveAFrequency = 0.012
	WaveAColor     = "#3b82f6" // blue-500
	WaveAAlpha     = 0.6
	WaveAPhase     = 0.0
	WaveASpeed     = 0.3

	WaveBAmplitude = 12.0
	WaveBFrequency = 0.0096
	WaveBColor     = "#f97316" // orange-500
	WaveBAlpha     = 0.6
	WaveBPhase     = math.Pi
	WaveBSpeed     = -0.24
)

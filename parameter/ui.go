package parameter

import "time"

// Copy
const (
	Headline    = "Screen Sharing, Unplugged. Darpan for Screens."
	Subheadline = "An ultra-light, peer-to-peer screen sharing tool for the real world."
	Tagline     = "Instant, offline, and incredibly efficient."

	HostPinLabel  = "HOST PIN"
	EnterPinLabel = "ENTER PIN"
	EnterPinHint  = "type the host pin · esc to quit"

	StreamingLabel = " STREAMING ● "

	// CaretChar marks the next input box while idle
	CaretChar = '▏'
)

// Palette (hex, parsed by the canvas and overlay)
const (
	ColorBackground = "#f8fafc" // slate-50
	ColorHeadline   = "#0f172a" // slate-900
	ColorBody       = "#475569" // slate-600
	ColorLabel      = "#64748b" // slate-500
	ColorPinDigit   = "#1e3a8a" // blue-900
	ColorPinBox     = "#e2e8f0" // slate-200
	ColorInputDigit = "#ea580c" // orange-600
	ColorInputBox   = "#cbd5e1" // slate-300
	ColorIncorrect  = "#f87171" // red-400
	ColorCaret      = "#f97316" // orange-500
	ColorAccent     = "#2563eb" // blue-600
	ColorStreaming  = "#86efac" // green-300
)

// Layout
const (
	// PinBoxWidth is the cell width of a single PIN box including borders
	PinBoxWidth = 5

	// PinBoxGap is the spacing between PIN boxes
	PinBoxGap = 1

	// PanelGap is the spacing between the host and entry panels
	PanelGap = 8

	// FeatureGap is the vertical spacing between features
	FeatureGap = 1
)

// Feature is a single showcase entry rendered after connecting
type Feature struct {
	Title string
	Text  string
}

// Features rendered once the stage switches to the showcase
var Features = []Feature{
	{Title: "Purely Offline. No Cloud.", Text: "Direct P2P via Bluetooth. Your data never touches the internet."},
	{Title: "GPU-Accelerated. Zero Lag.", Text: "Hardware encoding delivers a buttery-smooth, real-time stream."},
	{Title: "Built for Groups.", Text: "Perfect for classrooms, labs, and team demos without network hassle."},
	{Title: "Secure by Design.", Text: "End-to-end AES encryption. Your stream is for your eyes only."},
}

// Overlay timing
const (
	// CaretBlink is the caret half period
	CaretBlink = 500 * time.Millisecond

	// RevealDuration is the features showcase fade-in after connecting
	RevealDuration = 1500 * time.Millisecond

	// RevealStagger is the progress offset between consecutive features
	RevealStagger = 0.15

	// StreamLineWidth is the cell length of the host to client stream line
	StreamLineWidth = 24

	// HostDeviceLabel and ClientDeviceLabel name the two ends of the stream line
	HostDeviceLabel   = "[ HOST ]"
	ClientDeviceLabel = "[ CLIENT ]"
)

// Streaming indicator
const (
	// IndicatorRow is the resting row of the pill
	IndicatorRow = 1

	// IndicatorDelay and IndicatorDuration time the slide-in after connecting
	IndicatorDelay    = 500 * time.Millisecond
	IndicatorDuration = 800 * time.Millisecond

	// IndicatorLiftRows is how far above its resting row the pill starts
	IndicatorLiftRows = 1.0

	// IndicatorDriftLeg is one leg of the endless dot drift
	IndicatorDriftLeg = 700 * time.Millisecond

	// IndicatorDriftCells is the dot's horizontal travel
	IndicatorDriftCells = 2
)

// Package input translates tcell events into the intents the hero acts on
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// PIN entry
	IntentDigit     // 0-9
	IntentBackspace // Backspace
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	case IntentDigit:
		return "digit"
	case IntentBackspace:
		return "backspace"
	default:
		return "none"
	}
}

// Intent is a parsed screen event
type Intent struct {
	Type  IntentType
	Digit rune // IntentDigit only

	// IntentResize only
	Width, Height int
}

package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc, Backspace)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings checked before digits
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape:     IntentQuit,
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyCtrlQ:      IntentQuit,
			tcell.KeyCtrlS:      IntentToggleMute,
			tcell.KeyBackspace:  IntentBackspace,
			tcell.KeyBackspace2: IntentBackspace,
		},
		Runes: map[rune]IntentType{},
	}
}

// Translate maps an event to an intent, unbound events yield IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() != tcell.KeyRune {
			return Intent{Type: kt.SpecialKeys[ev.Key()]}
		}
		r := ev.Rune()
		if t, ok := kt.Runes[r]; ok {
			return Intent{Type: t}
		}
		if r >= '0' && r <= '9' {
			return Intent{Type: IntentDigit, Digit: r}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{Type: IntentNone}
}

package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeys(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), Intent{Type: IntentDigit, Digit: '7'}},
		{"zero", tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone), Intent{Type: IntentDigit, Digit: '0'}},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), Intent{Type: IntentNone}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"ctrl-s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), Intent{Type: IntentToggleMute}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), Intent{Type: IntentBackspace}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Intent{Type: IntentBackspace}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Intent{Type: IntentNone}},
		{"resize", tcell.NewEventResize(120, 40), Intent{Type: IntentResize, Width: 120, Height: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev); got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRuneBindingsOverrideDigits(t *testing.T) {
	kt := DefaultKeyTable()
	kt.Runes['q'] = IntentQuit
	kt.Runes['0'] = IntentNone

	if got := kt.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); got.Type != IntentQuit {
		t.Errorf("q = %v, want quit", got.Type)
	}
	if got := kt.Translate(tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone)); got.Type != IntentNone {
		t.Errorf("bound 0 = %v, want none", got.Type)
	}
}

func TestIntentStrings(t *testing.T) {
	if IntentDigit.String() != "digit" || IntentType(200).String() != "none" {
		t.Error("intent names")
	}
}

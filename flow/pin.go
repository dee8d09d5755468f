package flow

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/lixenwraith/darpan/parameter"
)

// ErrInvalidPin is returned for PINs outside the 4-digit range
var ErrInvalidPin = errors.New("invalid pin")

// GeneratePin returns a random PIN in [PinMin, PinMax]
// A nil source uses the global generator
func GeneratePin(r *rand.Rand) string {
	span := parameter.PinMax - parameter.PinMin + 1
	var n int
	if r == nil {
		n = rand.IntN(span)
	} else {
		n = r.IntN(span)
	}
	return strconv.Itoa(parameter.PinMin + n)
}

// ValidatePin checks that pin is exactly PinLength digits within [PinMin, PinMax]
func ValidatePin(pin string) error {
	if len(pin) != parameter.PinLength {
		return fmt.Errorf("%w: %q must be %d digits", ErrInvalidPin, pin, parameter.PinLength)
	}
	for _, r := range pin {
		if !isDigit(r) {
			return fmt.Errorf("%w: %q contains non-digit %q", ErrInvalidPin, pin, r)
		}
	}
	n, _ := strconv.Atoi(pin)
	if n < parameter.PinMin || n > parameter.PinMax {
		return fmt.Errorf("%w: %q outside %d-%d", ErrInvalidPin, pin, parameter.PinMin, parameter.PinMax)
	}
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

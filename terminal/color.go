package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // detect from environment
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "auto"
	}
}

// ParseColorMode maps a flag value onto a mode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorModeAuto, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorModeAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode determines terminal color capability from environment
// getenv is os.Getenv outside tests
func DetectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, key := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
	} {
		if getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ApplyColorMode steers tcell's truecolor negotiation, call before tcell.NewScreen
// Auto resolves through DetectColorMode and the resolved mode is returned
func ApplyColorMode(m ColorMode) (ColorMode, error) {
	if m == ColorModeAuto {
		m = DetectColorMode(os.Getenv)
	}
	value := "disable"
	if m == ColorModeTrueColor {
		value = "enable"
	}
	if err := os.Setenv("TCELL_TRUECOLOR", value); err != nil {
		return m, fmt.Errorf("set color mode: %w", err)
	}
	return m, nil
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is the blend-space color used across the canvas and overlay
type Color = colorful.Color

// ParseHex parses a #rrggbb or #rgb color
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// MustHex parses a compile-time palette constant, panics on malformed input
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend performs alpha blending in RGB space: result = src*alpha + dst*(1-alpha)
func Blend(dst, src Color, alpha float64) Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

// ToTcell converts to a truecolor tcell color
func ToTcell(c Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

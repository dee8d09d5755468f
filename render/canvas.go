// Package render provides the braille pixel canvas the wave field draws on
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Braille cells are 2 dots wide and 4 dots tall
const (
	DotsX = 2
	DotsY = 4

	brailleBase = 0x2800
)

// brailleBits maps (dx, dy) inside a cell to its braille dot bit
var brailleBits = [DotsX][DotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Point is a canvas coordinate in dots
type Point struct {
	X, Y float64
}

// StrokeStyle describes how a path is painted
type StrokeStyle struct {
	Color Color
	Alpha float64
	Width float64
}

// Canvas is a pixel surface backed by terminal cells at braille resolution
// Every stroke blends its color once into each cell it touches
type Canvas struct {
	cols, rows int
	bg         Color

	dots   []uint8
	ink    []Color
	inked  []bool
	stamp  []uint32
	stroke uint32
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int, bg Color) *Canvas {
	c := &Canvas{bg: bg}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts cell dimensions, reallocates only if capacity insufficient, and clears
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	size := cols * rows
	if cap(c.dots) < size {
		c.dots = make([]uint8, size)
		c.ink = make([]Color, size)
		c.inked = make([]bool, size)
		c.stamp = make([]uint32, size)
	} else {
		c.dots = c.dots[:size]
		c.ink = c.ink[:size]
		c.inked = c.inked[:size]
		c.stamp = c.stamp[:size]
	}
	c.cols = cols
	c.rows = rows
	c.Clear()
}

// Size returns the pixel dimensions in dots
func (c *Canvas) Size() (width, height int) {
	return c.cols * DotsX, c.rows * DotsY
}

// Cells returns the dimensions in terminal cells
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Background returns the fill color
func (c *Canvas) Background() Color {
	return c.bg
}

// Clear erases every dot
func (c *Canvas) Clear() {
	clear(c.dots)
	clear(c.inked)
	clear(c.stamp)
	c.stroke = 0
}

// dot reports whether the dot at (x, y) is set
func (c *Canvas) dot(x, y int) bool {
	idx, bit, ok := c.locate(x, y)
	return ok && c.dots[idx]&bit != 0
}

// cellInk returns the blended stroke color of a cell and whether any stroke touched it
func (c *Canvas) cellInk(col, row int) (Color, bool) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Color{}, false
	}
	idx := row*c.cols + col
	return c.ink[idx], c.inked[idx]
}

func (c *Canvas) locate(x, y int) (idx int, bit uint8, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/DotsX, y/DotsY
	if col >= c.cols || row >= c.rows {
		return 0, 0, false
	}
	return row*c.cols + col, brailleBits[x%DotsX][y%DotsY], true
}

// plot sets a dot and blends the current stroke color into its cell once per stroke
func (c *Canvas) plot(x, y int, style *StrokeStyle) {
	idx, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	c.dots[idx] |= bit
	if c.stamp[idx] == c.stroke {
		return
	}
	c.stamp[idx] = c.stroke
	base := c.bg
	if c.inked[idx] {
		base = c.ink[idx]
	}
	c.ink[idx] = Blend(base, style.Color, style.Alpha)
	c.inked[idx] = true
}

// Stroke paints a polyline, consecutive points are joined by a vertical span at the later point's column
func (c *Canvas) Stroke(points []Point, style StrokeStyle) {
	if len(points) == 0 {
		return
	}
	c.stroke++
	thickness := max(1, int(math.Round(style.Width)))
	lo := -(thickness - 1) / 2
	hi := lo + thickness - 1

	prevY := math.NaN()
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		from, to := y, y
		if !math.IsNaN(prevY) {
			py := int(math.Round(prevY))
			from, to = min(py, y), max(py, y)
		}
		for yy := from + lo; yy <= to+hi; yy++ {
			c.plot(x, yy, &style)
		}
		prevY = p.Y
	}
}

// Flush paints the background on every cell and braille glyphs on touched cells
func (c *Canvas) Flush(screen tcell.Screen) {
	base := tcell.StyleDefault.Background(ToTcell(c.bg))
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			idx := row*c.cols + col
			if c.dots[idx] == 0 {
				screen.SetContent(col, row, ' ', nil, base)
				continue
			}
			style := base.Foreground(ToTcell(c.ink[idx]))
			screen.SetContent(col, row, rune(brailleBase+int(c.dots[idx])), nil, style)
		}
	}
}

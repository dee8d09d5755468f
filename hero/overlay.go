package hero

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/darpan/flow"
	"github.com/lixenwraith/darpan/parameter"
	"github.com/lixenwraith/darpan/render"
	"github.com/lixenwraith/darpan/vmath"
)

// Box glyphs for PIN digits
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'

	streamHead = '▶'
)

// panelWidth is the width of a row of PinLength boxes
const panelWidth = parameter.PinLength*parameter.PinBoxWidth + (parameter.PinLength-1)*parameter.PinBoxGap

// palette holds the parsed overlay colors, every style sits on the page background
type palette struct {
	bg         render.Color
	headline   render.Color
	body       render.Color
	label      render.Color
	pinDigit   render.Color
	pinBox     render.Color
	inputDigit render.Color
	inputBox   render.Color
	incorrect  render.Color
	caret      render.Color
	accent     render.Color
	streaming  render.Color
}

func newPalette(bg render.Color) palette {
	return palette{
		bg:         bg,
		headline:   render.MustHex(parameter.ColorHeadline),
		body:       render.MustHex(parameter.ColorBody),
		label:      render.MustHex(parameter.ColorLabel),
		pinDigit:   render.MustHex(parameter.ColorPinDigit),
		pinBox:     render.MustHex(parameter.ColorPinBox),
		inputDigit: render.MustHex(parameter.ColorInputDigit),
		inputBox:   render.MustHex(parameter.ColorInputBox),
		incorrect:  render.MustHex(parameter.ColorIncorrect),
		caret:      render.MustHex(parameter.ColorCaret),
		accent:     render.MustHex(parameter.ColorAccent),
		streaming:  render.MustHex(parameter.ColorStreaming),
	}
}

// style fades fg toward the background by alpha
func (p *palette) style(fg render.Color, alpha float64) tcell.Style {
	return tcell.StyleDefault.
		Background(render.ToTcell(p.bg)).
		Foreground(render.ToTcell(render.Blend(p.bg, fg, alpha)))
}

// drawText writes s starting at x, clipping to the screen, and returns the column after it
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x + runewidth.StringWidth(s)
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// fit truncates s to width cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// drawCentered writes s centered on row y and returns its starting column
func drawCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) int {
	s = fit(s, width)
	x := (width - runewidth.StringWidth(s)) / 2
	drawText(screen, x, y, s, style)
	return x
}

// backgroundRenderer flushes the wave canvas, painting the page background on every cell
type backgroundRenderer struct {
	canvas *render.Canvas
}

func (r *backgroundRenderer) Render(ctx render.Context, screen tcell.Screen) {
	r.canvas.Flush(screen)
}

// entryLayout positions the PIN entry block
type entryLayout struct {
	top          int
	wide         bool
	hostX, hostY int
	inX, inY     int
	hintY        int
}

func layoutEntry(width, height int, offsetY float64) entryLayout {
	l := entryLayout{wide: width >= 2*panelWidth+parameter.PanelGap}

	// Rows: headline, blank, subheadline, tagline, blank, panels, blank, hint
	blockH := 11
	if !l.wide {
		blockH = 16
	}
	l.top = (height-blockH)/2 + int(vmath.Round(offsetY))

	l.hostY = l.top + 5
	if l.wide {
		l.hostX = (width - (2*panelWidth + parameter.PanelGap)) / 2
		l.inX = l.hostX + panelWidth + parameter.PanelGap
		l.inY = l.hostY
	} else {
		l.hostX = (width - panelWidth) / 2
		l.inX = l.hostX
		l.inY = l.hostY + 5
	}
	l.hintY = l.inY + 5
	return l
}

// entryRenderer draws the headline and both PIN panels until the fade completes
type entryRenderer struct {
	flow    *flow.Flow
	palette *palette
}

func (r *entryRenderer) IsVisible() bool {
	return r.flow.View().Entry.Alpha > 0
}

func (r *entryRenderer) Render(ctx render.Context, screen tcell.Screen) {
	v := r.flow.View()
	alpha := vmath.Clamp01(v.Entry.Alpha)
	p := r.palette
	l := layoutEntry(ctx.Width, ctx.Height, v.Entry.OffsetY)

	drawCentered(screen, ctx.Width, l.top, parameter.Headline, p.style(p.headline, alpha).Bold(true))
	drawCentered(screen, ctx.Width, l.top+2, parameter.Subheadline, p.style(p.body, alpha))
	drawCentered(screen, ctx.Width, l.top+3, parameter.Tagline, p.style(p.body, alpha))

	labelStyle := p.style(p.label, alpha).Bold(true)

	drawText(screen, l.hostX, l.hostY, parameter.HostPinLabel, labelStyle)
	var host [parameter.PinLength]rune
	copy(host[:], []rune(v.Pin))
	drawBoxes(screen, l.hostX, l.hostY+1, host, p.style(p.pinBox, alpha), p.style(p.pinDigit, alpha).Bold(true), -1, tcell.StyleDefault)

	inX := l.inX + int(vmath.Round(v.Entry.ShakeX))
	drawText(screen, inX, l.inY, parameter.EnterPinLabel, labelStyle)

	var typed [parameter.PinLength]rune
	copy(typed[:], []rune(v.Input))
	border := p.style(p.inputBox, alpha)
	if v.State == flow.StateIncorrect {
		border = p.style(p.incorrect, alpha)
	}
	caret := -1
	if v.State == flow.StateIdle && (ctx.Now/parameter.CaretBlink)%2 == 0 {
		caret = len([]rune(v.Input))
	}
	drawBoxes(screen, inX, l.inY+1, typed, border, p.style(p.inputDigit, alpha).Bold(true), caret, p.style(p.caret, alpha))

	drawCentered(screen, ctx.Width, l.hintY, parameter.EnterPinHint, p.style(p.label, alpha))
}

// drawBoxes draws a row of three-line digit boxes, zero runes render empty
func drawBoxes(screen tcell.Screen, x, y int, digits [parameter.PinLength]rune, border, digit tcell.Style, caret int, caretStyle tcell.Style) {
	inner := parameter.PinBoxWidth - 2
	top := string(boxTopLeft) + strings.Repeat(string(boxHorizontal), inner) + string(boxTopRight)
	bottom := string(boxBottomLeft) + strings.Repeat(string(boxHorizontal), inner) + string(boxBottomRight)

	for i, d := range digits {
		bx := x + i*(parameter.PinBoxWidth+parameter.PinBoxGap)
		drawText(screen, bx, y, top, border)
		drawText(screen, bx, y+2, bottom, border)

		drawText(screen, bx, y+1, string(boxVertical), border)
		drawText(screen, bx+1, y+1, strings.Repeat(" ", inner), border)
		drawText(screen, bx+parameter.PinBoxWidth-1, y+1, string(boxVertical), border)

		if i < len(digits)-1 {
			gap := strings.Repeat(" ", parameter.PinBoxGap)
			for row := 0; row < 3; row++ {
				drawText(screen, bx+parameter.PinBoxWidth, y+row, gap, border)
			}
		}

		center := bx + parameter.PinBoxWidth/2
		switch {
		case d != 0:
			drawText(screen, center, y+1, string(d), digit)
		case i == caret:
			drawText(screen, center, y+1, string(parameter.CaretChar), caretStyle)
		}
	}
}

// featureAlpha staggers the reveal so feature i starts RevealStagger after feature i-1
func featureAlpha(progress float64, i, n int) float64 {
	span := 1 - float64(n-1)*parameter.RevealStagger
	if span <= 0 {
		return vmath.Clamp01(progress)
	}
	return vmath.Clamp01((progress - float64(i)*parameter.RevealStagger) / span)
}

// featuresRenderer draws the stream line and feature list once connected
type featuresRenderer struct {
	flow    *flow.Flow
	reveal  *float64
	palette *palette
}

func (r *featuresRenderer) IsVisible() bool {
	return r.flow.Stage() == flow.StageFeatures
}

func (r *featuresRenderer) Render(ctx render.Context, screen tcell.Screen) {
	p := r.palette
	progress := vmath.Clamp01(*r.reveal)
	n := len(parameter.Features)

	// Rows: stream line, blank, then title, text, gap per feature
	blockH := 2 + n*(2+parameter.FeatureGap) - parameter.FeatureGap
	top := (ctx.Height - blockH) / 2

	r.drawStream(screen, ctx.Width, top, progress)

	y := top + 2
	for i, f := range parameter.Features {
		a := featureAlpha(progress, i, n)
		if a > 0 {
			drawCentered(screen, ctx.Width, y, f.Title, p.style(p.headline, a).Bold(true))
			drawCentered(screen, ctx.Width, y+1, f.Text, p.style(p.body, a))
		}
		y += 2 + parameter.FeatureGap
	}
}

// drawStream draws the host and client devices joined by a line that grows with progress
func (r *featuresRenderer) drawStream(screen tcell.Screen, width, y int, progress float64) {
	p := r.palette
	hostW := runewidth.StringWidth(parameter.HostDeviceLabel)
	clientW := runewidth.StringWidth(parameter.ClientDeviceLabel)

	line := min(parameter.StreamLineWidth, width-hostW-clientW-2)
	if line < 1 {
		return
	}
	total := hostW + 1 + line + 1 + clientW
	x := (width - total) / 2

	x = drawText(screen, x, y, parameter.HostDeviceLabel, p.style(p.body, 1).Bold(true)) + 1

	drawn := int(math.Floor(progress * float64(line)))
	lineStyle := p.style(p.accent, 1)
	for i := 0; i < drawn; i++ {
		ch := boxHorizontal
		if progress >= 1 && i == line-1 {
			ch = streamHead
		}
		screen.SetContent(x+i, y, ch, nil, lineStyle)
	}
	x += line + 1

	drawText(screen, x, y, parameter.ClientDeviceLabel, p.style(p.body, progress).Bold(true))
}

// indicatorState is written by the indicator animations and read by its renderer
type indicatorState struct {
	alpha float64
	lift  float64 // rows above IndicatorRow
	drift float64 // dot travel in [0, 1]
}

// indicatorRenderer draws the STREAMING pill in the top right corner once connected
type indicatorRenderer struct {
	flow    *flow.Flow
	state   *indicatorState
	palette *palette
}

func (r *indicatorRenderer) IsVisible() bool {
	return r.flow.Stage() == flow.StageFeatures && r.state.alpha > 0
}

func (r *indicatorRenderer) Render(ctx render.Context, screen tcell.Screen) {
	p := r.palette
	s := r.state
	a := vmath.Clamp01(s.alpha)

	label := strings.TrimSuffix(parameter.StreamingLabel, "● ")
	w := runewidth.StringWidth(parameter.StreamingLabel) + parameter.IndicatorDriftCells
	x := ctx.Width - w - 2
	y := parameter.IndicatorRow - vmath.Round(s.lift)
	if x < 0 || y < 0 || y >= ctx.Height {
		return
	}

	drawText(screen, x, y, strings.Repeat(" ", w), p.style(p.accent, a))
	x = drawText(screen, x, y, label, p.style(p.accent, a).Bold(true))
	drift := vmath.Round(vmath.Clamp01(s.drift) * parameter.IndicatorDriftCells)
	drawText(screen, x+drift, y, "● ", p.style(p.streaming, a))
}

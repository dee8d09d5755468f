package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Context carries per-frame values shared by every renderer
type Context struct {
	Now           time.Duration // time since mount
	Width, Height int           // screen cells
}

// Renderer is implemented by every visual layer of the hero
type Renderer interface {
	Render(ctx Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

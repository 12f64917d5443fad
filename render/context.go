package render

import (
	"math"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// RenderContext provides frame layout for renderers, passed by value
type RenderContext struct {
	Frame uint64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Playfield area between the HUD and status rows
	View Viewport
}

// Viewport is the screen rectangle the arena is stretched into
type Viewport struct {
	X, Y          int
	Width, Height int
}

// NewViewport lays the playfield out below the HUD row and above the status row
func NewViewport(screenWidth, screenHeight int) Viewport {
	return Viewport{
		X:      0,
		Y:      parameter.TopMargin,
		Width:  max(0, screenWidth),
		Height: max(0, screenHeight-parameter.TopMargin-parameter.BottomMargin),
	}
}

// Empty reports whether the viewport has no cells
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Contains reports whether screen cell (x, y) is inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Width && y >= v.Y && y < v.Y+v.Height
}

// ArenaToScreen maps an arena point to its screen cell
// Returns visible=false for points outside the arena
func (v Viewport) ArenaToScreen(p engine.Vec) (x, y int, visible bool) {
	if v.Empty() || p.X < 0 || p.Y < 0 || p.X >= parameter.ArenaWidth || p.Y >= parameter.ArenaHeight {
		return 0, 0, false
	}
	cx := int(math.Floor(p.X / parameter.ArenaWidth * float64(v.Width)))
	cy := int(math.Floor(p.Y / parameter.ArenaHeight * float64(v.Height)))
	return v.X + cx, v.Y + cy, true
}

// ScreenToArena maps a screen cell to the arena point at its center
func (v Viewport) ScreenToArena(x, y int) (engine.Vec, bool) {
	if v.Empty() || !v.Contains(x, y) {
		return engine.Vec{}, false
	}
	return engine.Vec{
		X: (float64(x-v.X) + 0.5) * parameter.ArenaWidth / float64(v.Width),
		Y: (float64(y-v.Y) + 0.5) * parameter.ArenaHeight / float64(v.Height),
	}, true
}

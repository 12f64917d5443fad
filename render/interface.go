package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
)

// SystemRenderer draws one layer of a frame
// Renderers only read s; they never dispatch
type SystemRenderer interface {
	Render(ctx RenderContext, s engine.State, scr tcell.Screen)
}

// VisibilityToggle is optionally implemented to skip a layer for a state
type VisibilityToggle interface {
	IsVisible(s engine.State) bool
}

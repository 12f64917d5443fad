package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/render"
	"github.com/lixenwraith/sketchy-shooter/status"
)

// DebugRenderer lists the status registry in the playfield's top-left corner
type DebugRenderer struct {
	reg     *status.Registry
	enabled bool
}

func NewDebugRenderer(reg *status.Registry, enabled bool) *DebugRenderer {
	return &DebugRenderer{reg: reg, enabled: enabled}
}

func (r *DebugRenderer) IsVisible(engine.State) bool {
	return r.enabled
}

func (r *DebugRenderer) Render(ctx render.RenderContext, _ engine.State, scr tcell.Screen) {
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbTextDim)
	v := ctx.View
	for i, line := range r.reg.Lines() {
		if i >= v.Height {
			break
		}
		render.DrawText(scr, v.X+1, v.Y+i, style, line)
	}
}

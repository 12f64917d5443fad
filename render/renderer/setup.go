package renderer

import (
	"github.com/lixenwraith/sketchy-shooter/render"
	"github.com/lixenwraith/sketchy-shooter/status"
)

// RegisterAll wires the game's layers into o
func RegisterAll(o *render.RenderOrchestrator, reg *status.Registry, debug bool) {
	o.Register(NewTopDownRenderer(), render.PriorityWorld)
	o.Register(NewFirstPersonRenderer(), render.PriorityWorld)
	o.Register(NewHUDRenderer(), render.PriorityHUD)
	o.Register(NewShopRenderer(), render.PriorityShop)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(NewDebugRenderer(reg, debug), render.PriorityDebug)
}

package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
	"github.com/lixenwraith/sketchy-shooter/render"
)

const (
	glyphPlayer   = '@'
	glyphEnemy    = '◆'
	glyphBullet   = '•'
	glyphParticle = '*'
	glyphAim      = '+'
)

// TopDownRenderer draws the arena from above, stretched into the viewport
type TopDownRenderer struct{}

func NewTopDownRenderer() *TopDownRenderer {
	return &TopDownRenderer{}
}

func (r *TopDownRenderer) IsVisible(s engine.State) bool {
	return s.View == engine.ViewTopDown && s.Phase != engine.PhaseMenu
}

func (r *TopDownRenderer) Render(ctx render.RenderContext, s engine.State, scr tcell.Screen) {
	v := ctx.View
	if v.Empty() {
		return
	}

	bg := tcell.StyleDefault.Background(render.RgbBackground)
	render.FillRect(scr, v.X, v.Y, v.Width, v.Height, ' ', bg)
	r.drawEdges(v, scr)

	// Draw order: particles under bullets under enemies under the player
	for _, p := range s.Particles {
		if x, y, ok := v.ArenaToScreen(p.Pos); ok {
			alpha := float64(p.Life) / parameter.ParticleLife
			scr.SetContent(x, y, glyphParticle, nil, bg.Foreground(render.Fade(p.Color, alpha)))
		}
	}

	for _, b := range s.Bullets {
		if x, y, ok := v.ArenaToScreen(b.Pos); ok {
			scr.SetContent(x, y, glyphBullet, nil, bg.Foreground(render.RgbBullet))
		}
	}

	for _, e := range s.Enemies {
		x, y, ok := v.ArenaToScreen(e.Pos)
		if !ok {
			continue
		}
		scr.SetContent(x, y, glyphEnemy, nil, bg.Foreground(render.RgbEnemy))
		if e.Health < e.MaxHealth && y-1 >= v.Y {
			drawEnemyBar(scr, x-1, y-1, e)
		}
	}

	px, py, ok := v.ArenaToScreen(s.Player.Pos)
	if ok {
		scr.SetContent(px, py, glyphPlayer, nil, bg.Foreground(render.RgbPlayer).Bold(true))
	}
	if ax, ay, ok := v.ArenaToScreen(s.Input.Pointer); ok && (ax != px || ay != py) {
		scr.SetContent(ax, ay, glyphAim, nil, bg.Foreground(render.RgbAim))
	}
}

// drawEdges dots the arena corners so the bounds read on wide terminals
func (r *TopDownRenderer) drawEdges(v render.Viewport, scr tcell.Screen) {
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbArenaEdge)
	right, bottom := v.X+v.Width-1, v.Y+v.Height-1
	scr.SetContent(v.X, v.Y, '┌', nil, style)
	scr.SetContent(right, v.Y, '┐', nil, style)
	scr.SetContent(v.X, bottom, '└', nil, style)
	scr.SetContent(right, bottom, '┘', nil, style)
}

// drawEnemyBar draws a three-cell health bar starting at (x, y)
func drawEnemyBar(scr tcell.Screen, x, y int, e engine.Enemy) {
	ratio := float64(e.Health) / float64(max(1, e.MaxHealth))
	render.DrawBar(scr, x, y, 3, ratio, render.HealthColor(ratio), render.RgbHealthBack)
}

package renderer

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
	"github.com/lixenwraith/sketchy-shooter/render"
)

// enemyScale sets on-screen enemy height: rows = viewport height * enemyScale / distance
const enemyScale = 40.0

// FirstPersonRenderer projects the world around the origin onto screen
// columns by bearing relative to the player heading
type FirstPersonRenderer struct{}

func NewFirstPersonRenderer() *FirstPersonRenderer {
	return &FirstPersonRenderer{}
}

func (r *FirstPersonRenderer) IsVisible(s engine.State) bool {
	return s.View == engine.ViewFirstPerson && s.Phase != engine.PhaseMenu
}

func (r *FirstPersonRenderer) Render(ctx render.RenderContext, s engine.State, scr tcell.Screen) {
	v := ctx.View
	if v.Empty() {
		return
	}

	horizon := v.Y + v.Height/2
	sky := tcell.StyleDefault.Background(render.RgbBackground)
	floor := tcell.StyleDefault.Background(render.RgbFloor)
	render.FillRect(scr, v.X, v.Y, v.Width, horizon-v.Y, ' ', sky)
	render.FillRect(scr, v.X, horizon, v.Width, v.Y+v.Height-horizon, ' ', floor)
	render.FillRect(scr, v.X, horizon, v.Width, 1, '─', floor.Foreground(render.RgbHorizon))

	heading := s.Player.Heading

	// Painter's order: far enemies first
	enemies := slices.Clone(s.Enemies)
	slices.SortFunc(enemies, func(a, b engine.Enemy) int {
		da, db := a.Pos.Len(), b.Pos.Len()
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})

	for _, e := range enemies {
		col, dist, ok := project(v, heading, e.Pos)
		if !ok {
			continue
		}
		height := int(float64(v.Height) * enemyScale / math.Max(dist, 1))
		height = max(1, min(v.Height, height))
		width := max(1, height)
		top := horizon - height/2
		left := col - width/2

		depth := dist / parameter.DespawnRadius
		style := sky.Foreground(render.Shade(render.RgbEnemy, depth))
		for y := max(top, v.Y); y < min(top+height, v.Y+v.Height); y++ {
			for x := max(left, v.X); x < min(left+width, v.X+v.Width); x++ {
				scr.SetContent(x, y, '█', nil, style)
			}
		}
		if e.Health < e.MaxHealth && top-1 >= v.Y {
			drawEnemyBar(scr, col-1, top-1, e)
		}
	}

	for _, p := range s.Particles {
		if col, _, ok := project(v, heading, p.Pos); ok {
			alpha := float64(p.Life) / parameter.ParticleLife
			scr.SetContent(col, horizon-1, glyphParticle, nil, sky.Foreground(render.Fade(p.Color, alpha)))
		}
	}

	for _, b := range s.Bullets {
		if col, _, ok := project(v, heading, b.Pos); ok {
			scr.SetContent(col, horizon, glyphBullet, nil, floor.Foreground(render.RgbBullet))
		}
	}

	scr.SetContent(v.X+v.Width/2, horizon, glyphAim, nil, floor.Foreground(render.RgbAim).Bold(true))
}

// project maps a world point to a screen column by its bearing off heading
// ok is false outside the field of view
func project(v render.Viewport, heading float64, p engine.Vec) (col int, dist float64, ok bool) {
	dist = p.Len()
	center := v.X + v.Width/2
	if dist < 1 {
		return center, dist, true
	}

	rel := math.Remainder(math.Atan2(p.Y, p.X)-heading, 2*math.Pi)
	half := parameter.FirstPersonFOV / 2
	if math.Abs(rel) > half {
		return 0, dist, false
	}

	col = v.X + int((rel/half+1)/2*float64(v.Width))
	return min(col, v.X+v.Width-1), dist, true
}

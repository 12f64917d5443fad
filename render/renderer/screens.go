package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/render"
)

// OverlayRenderer draws the menu, pause and game-over screens
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) IsVisible(s engine.State) bool {
	return s.Phase != engine.PhasePlaying
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, s engine.State, scr tcell.Screen) {
	bg := tcell.StyleDefault.Background(render.RgbBackground)
	text := bg.Foreground(render.RgbText)
	dim := bg.Foreground(render.RgbTextDim)
	mid := ctx.ScreenHeight / 2

	switch s.Phase {
	case engine.PhaseMenu:
		render.FillRect(scr, 0, 0, ctx.ScreenWidth, ctx.ScreenHeight, ' ', bg)
		render.DrawCentered(scr, mid-4, bg.Foreground(render.RgbEnemy).Bold(true), "S K E T C H Y   S H O O T E R")
		render.DrawCentered(scr, mid-2, text, "Press Enter to start")
		render.DrawCentered(scr, mid, dim, hintLine)
		owned := 0
		for _, w := range s.Weapons {
			if w.Unlocked {
				owned++
			}
		}
		render.DrawCentered(scr, mid+2, dim, fmt.Sprintf("Weapons unlocked: %d/%d   View: %s", owned, len(s.Weapons), s.View))

	case engine.PhasePaused:
		box(scr, ctx, mid, 5)
		render.DrawCentered(scr, mid-1, text.Bold(true), "PAUSED")
		render.DrawCentered(scr, mid+1, dim, "Esc to resume")

	case engine.PhaseGameOver:
		box(scr, ctx, mid, 7)
		render.DrawCentered(scr, mid-2, bg.Foreground(render.RgbEnemy).Bold(true), "GAME OVER")
		render.DrawCentered(scr, mid, text, fmt.Sprintf("Score %d   Wave %d   Level %d", s.Score, s.Wave, s.Level))
		render.DrawCentered(scr, mid+2, dim, "Enter to return to the menu")
	}
}

// box clears a centered band of rows for an overlay message
func box(scr tcell.Screen, ctx render.RenderContext, mid, rows int) {
	width := min(ctx.ScreenWidth, 40)
	left := (ctx.ScreenWidth - width) / 2
	render.FillRect(scr, left, mid-rows/2, width, rows, ' ', tcell.StyleDefault.Background(render.RgbPanel))
}

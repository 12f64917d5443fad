package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
	"github.com/lixenwraith/sketchy-shooter/render"
)

const hintLine = "WASD move  Space/click fire  Tab shop  1-5 buy/equip  V view  Esc pause  q quit"

// HUDRenderer draws the stats row above the playfield and the status row below
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) IsVisible(s engine.State) bool {
	return s.Phase != engine.PhaseMenu
}

func (r *HUDRenderer) Render(ctx render.RenderContext, s engine.State, scr tcell.Screen) {
	panel := tcell.StyleDefault.Background(render.RgbPanel)
	text := panel.Foreground(render.RgbText)
	dim := panel.Foreground(render.RgbTextDim)

	render.FillRect(scr, 0, 0, ctx.ScreenWidth, parameter.TopMargin, ' ', panel)

	x := render.DrawText(scr, 1, 0, panel.Foreground(render.RgbHealthLow), "♥ ")
	ratio := float64(s.Player.Health) / float64(max(1, s.Player.MaxHealth))
	render.DrawBar(scr, x, 0, parameter.HealthBarWidth, ratio, render.HealthColor(ratio), render.RgbHealthBack)
	x += parameter.HealthBarWidth
	x = render.DrawText(scr, x, 0, text, fmt.Sprintf(" %d/%d  ", s.Player.Health, s.Player.MaxHealth))
	x = render.DrawText(scr, x, 0, panel.Foreground(render.RgbCoins), fmt.Sprintf("◎ %d  ", s.Coins))
	x = render.DrawText(scr, x, 0, text, fmt.Sprintf("Score %d  Wave %d  Lv %d  ", s.Score, s.Wave, s.Level))

	if w, ok := s.EquippedWeapon(); ok {
		x = render.DrawText(scr, x, 0, panel.Foreground(render.RarityColor(w.Rarity)), w.Name)
		x = render.DrawText(scr, x, 0, dim, fmt.Sprintf(" %ddmg %drpm  ", w.Damage, w.RoundsPerMinute()))
	}
	render.DrawText(scr, x, 0, dim, "["+s.View.String()+"]")

	bottom := ctx.ScreenHeight - parameter.BottomMargin
	if bottom < parameter.TopMargin {
		return
	}
	render.FillRect(scr, 0, bottom, ctx.ScreenWidth, parameter.BottomMargin, ' ', panel)
	if s.WavePending {
		render.DrawText(scr, 1, bottom, panel.Foreground(render.RgbCoins).Bold(true), fmt.Sprintf("Wave %d cleared!", s.Wave))
		return
	}
	render.DrawText(scr, 1, bottom, dim, hintLine)
}

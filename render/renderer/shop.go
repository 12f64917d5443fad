package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
	"github.com/lixenwraith/sketchy-shooter/render"
)

// ShopRenderer draws the weapon shop as a side panel over the playfield
type ShopRenderer struct{}

func NewShopRenderer() *ShopRenderer {
	return &ShopRenderer{}
}

func (r *ShopRenderer) IsVisible(s engine.State) bool {
	return s.ShowShop && s.Phase != engine.PhaseMenu
}

func (r *ShopRenderer) Render(ctx render.RenderContext, s engine.State, scr tcell.Screen) {
	v := ctx.View
	width := min(parameter.ShopPanelWidth, ctx.ScreenWidth)
	left := ctx.ScreenWidth - width
	if v.Empty() || width <= 2 {
		return
	}

	panel := tcell.StyleDefault.Background(render.RgbPanel)
	text := panel.Foreground(render.RgbText)
	dim := panel.Foreground(render.RgbTextDim)
	render.FillRect(scr, left, v.Y, width, v.Height, ' ', panel)

	y := v.Y
	x := render.DrawText(scr, left+1, y, text.Bold(true), "WEAPON SHOP  ")
	render.DrawText(scr, x, y, panel.Foreground(render.RgbCoins), fmt.Sprintf("◎ %d", s.Coins))
	y += 2

	for i, w := range s.Weapons {
		if y+2 >= v.Y+v.Height {
			break
		}

		x := render.DrawText(scr, left+1, y, text, fmt.Sprintf("%d ", i+1))
		x = render.DrawText(scr, x, y, panel.Foreground(render.RarityColor(w.Rarity)).Bold(true), w.Name)
		render.DrawText(scr, x+1, y, dim, w.Rarity.String())

		var tag string
		tagStyle := text
		switch {
		case s.Player.Weapon == w.ID:
			tag, tagStyle = "EQUIPPED", panel.Foreground(render.RgbHealthHigh)
		case w.Unlocked:
			tag = "owned"
		case s.Coins >= w.Cost:
			tag, tagStyle = fmt.Sprintf("buy ◎%d", w.Cost), panel.Foreground(render.RgbCoins)
		default:
			tag, tagStyle = fmt.Sprintf("◎%d", w.Cost), panel.Foreground(render.RgbHealthLow)
		}
		render.DrawText(scr, left+width-1-len([]rune(tag)), y, tagStyle, tag)

		stats := fmt.Sprintf("  DMG %d  RNG %.0f  RPM %d", w.Damage, w.Range, w.RoundsPerMinute())
		render.DrawText(scr, left+1, y+1, text, stats)
		render.DrawText(scr, left+3, y+2, dim, w.Description)
		y += 4
	}
}

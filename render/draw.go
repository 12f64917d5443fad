package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s at (x, y), clipped to the screen width
// Returns the column after the last cell written
func DrawText(scr tcell.Screen, x, y int, style tcell.Style, s string) int {
	w, h := scr.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= w {
			break
		}
		if x >= 0 {
			scr.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// DrawCentered writes s centered on row y
func DrawCentered(scr tcell.Screen, y int, style tcell.Style, s string) {
	w, _ := scr.Size()
	DrawText(scr, (w-runewidth.StringWidth(s))/2, y, style, s)
}

// FillRect paints a rectangle with r
func FillRect(scr tcell.Screen, x, y, width, height int, r rune, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			scr.SetContent(col, row, r, nil, style)
		}
	}
}

// DrawBar draws a width-cell bar filled to ratio
func DrawBar(scr tcell.Screen, x, y, width int, ratio float64, fill, empty tcell.Color) {
	filled := int(ratio*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	for i := range width {
		style := tcell.StyleDefault.Foreground(empty).Background(RgbBackground)
		r := '░'
		if i < filled {
			style = style.Foreground(fill)
			r = '█'
		}
		scr.SetContent(x+i, y, r, nil, style)
	}
}

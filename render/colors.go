package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sketchy-shooter/catalog"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(17, 24, 39)    // Slate night
	RgbArenaEdge  = tcell.NewRGBColor(55, 65, 81)    // Dim border
	RgbPlayer     = tcell.NewRGBColor(96, 165, 250)  // Sky blue
	RgbAim        = tcell.NewRGBColor(148, 163, 184) // Gray crosshair
	RgbEnemy      = tcell.NewRGBColor(220, 38, 38)   // Red
	RgbBullet     = tcell.NewRGBColor(250, 204, 21)  // Yellow
	RgbHealthHigh = tcell.NewRGBColor(34, 197, 94)   // Green
	RgbHealthLow  = tcell.NewRGBColor(239, 68, 68)   // Red
	RgbHealthBack = tcell.NewRGBColor(55, 65, 81)
	RgbCoins      = tcell.NewRGBColor(234, 179, 8) // Gold
	RgbText       = tcell.NewRGBColor(229, 231, 235)
	RgbTextDim    = tcell.NewRGBColor(107, 114, 128)
	RgbPanel      = tcell.NewRGBColor(31, 41, 55)
	RgbHorizon    = tcell.NewRGBColor(75, 85, 99)
	RgbFloor      = tcell.NewRGBColor(24, 32, 48)
)

// Rarity tints
var (
	rarityColors = map[catalog.Rarity]colorful.Color{
		catalog.Common:    mustHex("#9ca3af"),
		catalog.Rare:      mustHex("#3b82f6"),
		catalog.Epic:      mustHex("#a855f7"),
		catalog.Legendary: mustHex("#f59e0b"),
	}
	background = mustHex("#111827")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToTcell converts a colorful color to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// fromTcell converts an RGB terminal color; palette colors report ok=false
func fromTcell(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// RarityColor returns the tint for a weapon rarity
func RarityColor(r catalog.Rarity) tcell.Color {
	c, ok := rarityColors[r]
	if !ok {
		c = rarityColors[catalog.Common]
	}
	return ToTcell(c)
}

// Fade blends a hex color toward the background; alpha 1 is the full color
// Unparseable colors fall back to the default text color
func Fade(hex string, alpha float64) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RgbText
	}
	alpha = max(0, min(1, alpha))
	return ToTcell(background.BlendRgb(c, alpha))
}

// HealthColor grades from red at empty to green at full in HCL space
func HealthColor(ratio float64) tcell.Color {
	ratio = max(0, min(1, ratio))
	low, _ := fromTcell(RgbHealthLow)
	high, _ := fromTcell(RgbHealthHigh)
	return ToTcell(low.BlendHcl(high, ratio))
}

// Shade darkens a color by distance for the first-person view; depth 0 is
// nearest, 1 is the far plane
func Shade(c tcell.Color, depth float64) tcell.Color {
	base, ok := fromTcell(c)
	if !ok {
		return c
	}
	return ToTcell(base.BlendRgb(background, max(0, min(0.85, depth))))
}

package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hammering-stuff/core"
)

// Palette shared by the terminal and window front-ends
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHeader     = tcell.NewRGBColor(45, 55, 72)    // Slate header bar
	RgbHeaderText = tcell.NewRGBColor(255, 255, 255) // White
	RgbReadyText  = tcell.NewRGBColor(229, 62, 62)   // Ready to hammer red
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbObjectNormal      = tcell.NewRGBColor(139, 90, 43)   // Raw wood
	RgbObjectTransformed = tcell.NewRGBColor(255, 215, 0)   // Impact flash gold
	RgbObjectHammered    = tcell.NewRGBColor(90, 90, 100)   // Flattened gray
	RgbObjectLabel       = tcell.NewRGBColor(240, 230, 210) // Parchment
	RgbNail              = tcell.NewRGBColor(200, 200, 210) // Steel

	RgbShadow      = tcell.NewRGBColor(0, 0, 0)     // Shadow disc
	RgbShadowReady = tcell.NewRGBColor(229, 62, 62) // Shadow tint once ready

	RgbHammerHead   = tcell.NewRGBColor(160, 160, 170) // Iron
	RgbHammerHandle = tcell.NewRGBColor(150, 100, 50)  // Ash handle
	RgbMotionBlur   = tcell.NewRGBColor(90, 90, 100)   // Trail behind a fast swing

	RgbOverlayBg   = tcell.NewRGBColor(20, 20, 30)    // Completion box
	RgbOverlayText = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbMetricsText = tcell.NewRGBColor(0, 255, 255)   // Cyan
)

// ObjectColor returns the fill color for an object state
func ObjectColor(s core.ObjectState) tcell.Color {
	switch s {
	case core.StateTransformed:
		return RgbObjectTransformed
	case core.StateHammered:
		return RgbObjectHammered
	default:
		return RgbObjectNormal
	}
}

// Blend mixes b over a with weight t in [0, 1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	t = min(max(t, 0), 1)
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return int32(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// RGBA converts a palette color for image drawing with the given alpha
func RGBA(c tcell.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB()
	// Premultiplied
	scale := func(v int32) uint8 {
		return uint8(int32(alpha) * v / 255)
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: alpha}
}

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Synthwave palette anchors. Everything else is blended from these.
var (
	RgbBackground = colorful.Color{R: 0.04, G: 0.01, B: 0.08}
	RgbSkyTop     = colorful.Color{R: 0.06, G: 0.01, B: 0.14}
	RgbSkyHorizon = colorful.Color{R: 0.35, G: 0.05, B: 0.38}
	RgbSunCore    = colorful.Color{R: 1.0, G: 0.55, B: 0.15}
	RgbSunRim     = colorful.Color{R: 1.0, G: 0.2, B: 0.5}
	RgbStar       = colorful.Color{R: 0.75, G: 0.75, B: 0.9}
	RgbGridLine   = colorful.Color{R: 0.95, G: 0.25, B: 0.85}
	RgbGridFar    = colorful.Color{R: 0.3, G: 0.08, B: 0.3}
	RgbRoad       = colorful.Color{R: 0.08, G: 0.03, B: 0.12}
	RgbCar        = colorful.Color{R: 0.2, G: 0.95, B: 0.9}
	RgbCarTrim    = colorful.Color{R: 1.0, G: 0.4, B: 0.9}
	RgbText       = colorful.Color{R: 0.85, G: 0.85, B: 0.95}
	RgbTextDim    = colorful.Color{R: 0.45, G: 0.45, B: 0.6}
	RgbWarn       = colorful.Color{R: 1.0, G: 0.75, B: 0.2}
)

// Blend mixes a toward b by t in RGB space. BlendRgb clamps nothing, so
// inputs stay in gamut by construction of the palette.
func Blend(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendRgb(b, t)
}

// Dim scales a color toward the background, used for distance falloff
func Dim(c colorful.Color, keep float64) colorful.Color {
	return Blend(RgbBackground, c, keep)
}

// ToTcell converts a palette color to a terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

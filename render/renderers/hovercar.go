package renderers

import (
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/render"
	"github.com/lixenwraith/synthdrive/systems"
)

// HovercarRenderer draws the player vehicle at the bottom of the road,
// banking into lane changes while the tilt decays
type HovercarRenderer struct {
	world *engine.World
}

func NewHovercarRenderer(world *engine.World) *HovercarRenderer {
	return &HovercarRenderer{world: world}
}

// Sprite rows per tilt direction. Leaning glyphs sell the bank without
// any sub-cell rendering.
var (
	carLevel = []string{` ▄█▄ `, `▀███▀`}
	carLeft  = []string{` ▄█▀ `, `▀██▀ `}
	carRight = []string{` ▀█▄ `, ` ▀██▀`}
)

// Render implements render.SystemRenderer
func (r *HovercarRenderer) Render(ctx render.Context, buf *render.Buffer) {
	pos := systems.PlayerPosition(r.world.State)
	x, y, _, _ := ctx.Proj.Project(pos)

	sprite := carLevel
	switch tilt := r.world.State.Tilt; {
	case tilt > 0.2:
		sprite = carRight
	case tilt < -0.2:
		sprite = carLeft
	}

	for row, line := range sprite {
		sy := y + row - len(sprite) + 1
		runes := []rune(line)
		for col, glyph := range runes {
			if glyph == ' ' {
				continue
			}
			c := render.RgbCar
			if row == 0 {
				c = render.RgbCarTrim
			}
			buf.SetFg(x+col-len(runes)/2, sy, glyph, c)
		}
	}

	// Engine glow under the car
	buf.BlendBg(x, y+1, render.RgbCarTrim, 0.35)
	buf.BlendBg(x-1, y+1, render.RgbCarTrim, 0.2)
	buf.BlendBg(x+1, y+1, render.RgbCarTrim, 0.2)
}

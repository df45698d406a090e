package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/render"
)

// RevealRenderer draws active fact reveals: centered text at the
// projected position, foreground blended toward the sky as opacity
// falls so the fade reads as dissolving rather than palette stepping
type RevealRenderer struct {
	world *engine.World
}

func NewRevealRenderer(world *engine.World) *RevealRenderer {
	return &RevealRenderer{world: world}
}

// Render implements render.SystemRenderer
func (r *RevealRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for _, e := range r.world.Reveals.All() {
		reveal, ok := r.world.Reveals.Get(e)
		if !ok || reveal.Placeholder || reveal.Opacity <= 0 {
			continue
		}
		pos, ok := r.world.Positions.Get(e)
		if !ok {
			continue
		}

		x, y, _, _ := ctx.Proj.Project(pos.Pos)
		if y < 0 || y >= ctx.Height {
			continue
		}

		fg := render.Blend(render.RgbSkyHorizon, reveal.Accent, reveal.Opacity)
		text := render.Blend(render.RgbSkyHorizon, render.RgbText, reveal.Opacity)

		startX := x - runewidth.StringWidth(reveal.Text)/2
		col := startX
		for i, glyph := range reveal.Text {
			c := text
			if i == 0 {
				c = fg // category glyph carries the accent
			}
			buf.SetFg(col, y, glyph, c)
			col += runewidth.RuneWidth(glyph)
		}
	}
}

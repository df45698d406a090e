package renderers

import (
	"github.com/lixenwraith/synthdrive/constants"
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/render"
)

// CollectibleRenderer draws the live collectibles: variant glyph,
// origin accent color, sized and dimmed by distance
type CollectibleRenderer struct {
	world *engine.World
}

func NewCollectibleRenderer(world *engine.World) *CollectibleRenderer {
	return &CollectibleRenderer{world: world}
}

// Render implements render.SystemRenderer
func (r *CollectibleRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for _, e := range r.world.Collectibles.All() {
		col, ok := r.world.Collectibles.Get(e)
		if !ok {
			continue
		}
		pos, ok := r.world.Positions.Get(e)
		if !ok {
			continue
		}

		x, y, scale, visible := ctx.Proj.Project(pos.Pos)
		if !visible {
			continue
		}

		fade := render.DepthFade(pos.Pos.Z, constants.SpawnDistance)
		accent := col.Fact.Accent()
		c := render.Dim(accent, 0.25+0.75*fade)
		glyph := col.Variant.Glyph()

		buf.SetFg(x, y, glyph, c)
		if scale > 8 {
			// Near enough for a wider sprite
			buf.SetFg(x-1, y, '⟨', render.Dim(c, 0.6))
			buf.SetFg(x+1, y, '⟩', render.Dim(c, 0.6))
			buf.BlendBg(x, y, accent, 0.25*fade)
		}
	}
}

package renderers

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/render"
)

// StatusBarRenderer draws the bottom status row: score, high score,
// music state and the control hints
type StatusBarRenderer struct {
	world *engine.World
}

func NewStatusBarRenderer(world *engine.World) *StatusBarRenderer {
	return &StatusBarRenderer{world: world}
}

// Render implements render.SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.Context, buf *render.Buffer) {
	y := ctx.Height - 1
	if y < 0 {
		return
	}

	for x := 0; x < ctx.Width; x++ {
		buf.SetBg(x, y, render.RgbBackground)
		buf.SetFg(x, y, ' ', render.RgbTextDim)
	}

	state := r.world.State
	left := fmt.Sprintf(" SCORE %d  BEST %d", state.Score, state.HighScore)
	buf.WriteString(0, y, left, render.RgbText)

	music := "♪ on"
	if !state.MusicEnabled {
		music = "♪ off"
	}
	mid := music
	if ctx.Paused {
		mid = "PAUSED  " + music
	}
	buf.WriteString(ctx.Width/2-runewidth.StringWidth(mid)/2, y, mid, render.RgbWarn)

	hints := "h/l move  space pause  r refresh  m music  q quit "
	if len(hints) < ctx.Width {
		buf.WriteString(ctx.Width-len(hints), y, hints, render.RgbTextDim)
	}
}

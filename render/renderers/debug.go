package renderers

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/render"
)

// DebugRenderer draws one line of runtime numbers straight from the
// status registry. Only visible with --debug.
type DebugRenderer struct {
	enabled bool

	statTicks      *atomic.Int64
	statStepErrors *atomic.Int64
	statLive       *atomic.Int64
	statReveals    *atomic.Int64
	statSpawned    *atomic.Int64
}

func NewDebugRenderer(world *engine.World, enabled bool) *DebugRenderer {
	reg := world.Resources.Status
	return &DebugRenderer{
		enabled:        enabled,
		statTicks:      reg.Ints.Get("scheduler.ticks"),
		statStepErrors: reg.Ints.Get("scheduler.step_errors"),
		statLive:       reg.Ints.Get("collectibles.live"),
		statReveals:    reg.Ints.Get("reveals.active"),
		statSpawned:    reg.Ints.Get("collectibles.spawned"),
	}
}

// IsVisible implements render.VisibilityToggle
func (r *DebugRenderer) IsVisible() bool { return r.enabled }

// Render implements render.SystemRenderer
func (r *DebugRenderer) Render(ctx render.Context, buf *render.Buffer) {
	line := fmt.Sprintf("tick %d  live %d  reveals %d  spawned %d  step_err %d",
		r.statTicks.Load(),
		r.statLive.Load(),
		r.statReveals.Load(),
		r.statSpawned.Load(),
		r.statStepErrors.Load(),
	)
	buf.WriteString(0, 0, line, render.RgbWarn)
}

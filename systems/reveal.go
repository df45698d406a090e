package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/synthdrive/components"
	"github.com/lixenwraith/synthdrive/constants"
	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/journal"
	"github.com/lixenwraith/synthdrive/vmath"
)

// RevealSystem converts picked-up facts into short-lived in-world text
// effects. Effects age on their own tick timeline, decoupled from run
// state: they keep animating through pause and survive a run refresh.
type RevealSystem struct {
	statActive    *atomic.Int64
	statPresented *atomic.Int64
}

// NewRevealSystem creates the reveal controller
func NewRevealSystem(world *engine.World) *RevealSystem {
	reg := world.Resources.Status
	return &RevealSystem{
		statActive:    reg.Ints.Get("reveals.active"),
		statPresented: reg.Ints.Get("reveals.presented"),
	}
}

// Present creates exactly one reveal for a collected fact, positioned
// above and toward-camera from the pickup point. If text shaping fails
// the reveal becomes a blank placeholder that still occupies its
// lifecycle slot and expires normally, so nothing leaks.
func (s *RevealSystem) Present(w *engine.World, fact facts.Fact, worldPos vmath.Vec3) core.Entity {
	reveal := components.RevealComponent{
		Accent:    fact.Accent(),
		Opacity:   1.0,
		GraceLeft: constants.RevealGraceTicks,
		Phase:     components.RevealHolding,
	}

	if err := core.Guard("reveal_text", func() {
		reveal.Text = facts.DisplayText(fact, constants.RevealMaxTextCols)
	}); err != nil {
		reveal.Text = ""
		reveal.Placeholder = true
		w.Resources.Journal.Emit(journal.KindStepError, map[string]any{
			"step": "reveal_text", "error": err.Error(),
		})
	}

	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{
		Pos: vmath.Vec3{
			X: worldPos.X,
			Y: worldPos.Y + constants.RevealRiseOffset,
			Z: worldPos.Z + constants.RevealTowardCam,
		},
	})
	w.Reveals.Set(e, reveal)

	w.State.LastShown = fact.Name
	s.statPresented.Add(1)
	w.Resources.Journal.Emit(journal.KindReveal, map[string]any{"fact": fact.Name})
	return e
}

// Update ages every live reveal and removes the expired ones. Runs
// every tick, paused or not. Per-entity failures evict the entity and
// the batch continues.
func (s *RevealSystem) Update(w *engine.World, dt time.Duration) {
	for _, e := range w.Reveals.All() {
		err := core.Guard("reveal_advance", func() {
			reveal, ok := w.Reveals.Get(e)
			if !ok {
				return
			}

			if pos, ok := w.Positions.Get(e); ok {
				pos.Pos.Y += constants.RevealDriftY
				pos.Pos.Z += constants.RevealDriftZ
				w.Positions.Set(e, pos)
			}

			if Tick(&reveal) {
				w.Reveals.Set(e, reveal)
			} else {
				w.DestroyEntity(e)
			}
		})
		if err != nil {
			w.DestroyEntity(e)
			w.Resources.Journal.Emit(journal.KindEntityEvicted, map[string]any{
				"entity": uint64(e), "error": err.Error(),
			})
		}
	}
	s.statActive.Store(int64(w.Reveals.Count()))
}

// Tick advances one reveal by one tick and reports whether it is still
// alive. Holding runs the full grace period at full opacity; Fading
// decays opacity at a fixed rate; hitting zero is terminal and reported
// exactly once.
func Tick(r *components.RevealComponent) bool {
	r.Spin += constants.RevealSpinRate

	if r.GraceLeft > 0 {
		r.GraceLeft--
		if r.GraceLeft == 0 {
			r.Phase = components.RevealFading
		}
		return true
	}

	// Opacity derives from the fade tick count rather than repeated
	// subtraction, so the terminal value lands on zero without drift
	r.FadeTicks++
	r.Opacity = 1 - constants.RevealDecayRate*float64(r.FadeTicks)
	if r.Opacity <= 0 {
		r.Opacity = 0
		r.Phase = components.RevealExpired
		return false
	}
	return true
}

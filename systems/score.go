package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/journal"
)

// Chimer plays the pickup chime; satisfied by the audio service.
// A nil Chimer keeps the game silent without branching at call sites.
type Chimer interface {
	PlayPickup()
}

// ScoreKeeper counts collected facts and maintains the high-score
// relic. Listens for pickup events rather than being called by the
// collectible system directly.
type ScoreKeeper struct {
	chime Chimer

	statScore     *atomic.Int64
	statHighScore *atomic.Int64
}

func NewScoreKeeper(world *engine.World, chime Chimer) *ScoreKeeper {
	reg := world.Resources.Status
	sk := &ScoreKeeper{
		chime:         chime,
		statScore:     reg.Ints.Get("run.score"),
		statHighScore: reg.Ints.Get("run.high_score"),
	}
	sk.statHighScore.Store(int64(world.State.HighScore))
	return sk
}

// HandleEvent implements events.Handler
func (sk *ScoreKeeper) HandleEvent(w *engine.World, ev events.GameEvent) {
	state := w.State
	state.Score++
	sk.statScore.Store(int64(state.Score))

	if state.Score > state.HighScore {
		state.HighScore = state.Score
		sk.statHighScore.Store(int64(state.HighScore))
		w.Resources.Journal.Emit(journal.KindHighScore, map[string]any{
			"score": state.HighScore,
		})
	}

	if sk.chime != nil {
		sk.chime.PlayPickup()
	}
}

// EventTypes implements events.Handler
func (sk *ScoreKeeper) EventTypes() []events.EventType {
	return []events.EventType{events.EventFactCollected}
}

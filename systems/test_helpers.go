package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/synthdrive/components"
	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/status"
	"github.com/lixenwraith/synthdrive/vmath"
)

// newTestWorld builds a deterministic world: mock time, seeded RNG,
// and a static fact snapshot
func newTestWorld(snap *facts.Snapshot) (*engine.World, *engine.MockTimeProvider) {
	mock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	res := &engine.Resources{
		Facts:  &facts.StaticSource{Snap: snap},
		Status: status.NewRegistry(),
		Queue:  events.NewEventQueue(),
		Time:   mock,
		Clock:  engine.NewPausableClock(mock),
		Rand:   rand.New(rand.NewSource(7)),
	}
	return engine.NewWorld(engine.NewRunState(0, true), res), mock
}

// placeCollectible injects a collectible at an explicit position,
// bypassing the spawn policy
func placeCollectible(w *engine.World, pos vmath.Vec3, fact facts.Fact) core.Entity {
	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{Pos: pos})
	w.Collectibles.Set(e, components.CollectibleComponent{
		ID:   int(e),
		Fact: fact,
	})
	return e
}

// fixedRand returns scripted values for fact selection tests
type fixedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (f *fixedRand) Float64() float64 {
	v := f.floats[f.fi%len(f.floats)]
	f.fi++
	return v
}

func (f *fixedRand) Intn(n int) int {
	v := f.ints[f.ii%len(f.ints)]
	f.ii++
	return v % n
}

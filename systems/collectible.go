package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/synthdrive/components"
	"github.com/lixenwraith/synthdrive/constants"
	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/journal"
	"github.com/lixenwraith/synthdrive/vmath"
)

// Refetcher is optionally satisfied by the fact source; the spawn
// policy nudges it when it still sees an empty snapshot
type Refetcher interface {
	RequestRefetch()
}

// CollectibleSystem owns the live collectible set: spawn cadence,
// forward motion, out-of-range reaping and pickup detection.
type CollectibleSystem struct {
	reveals *RevealSystem

	statLive    *atomic.Int64
	statSpawned *atomic.Int64
	statReaped  *atomic.Int64
}

// NewCollectibleSystem creates the system; picked-up facts are handed
// to reveals within the same call that removes the collectible
func NewCollectibleSystem(world *engine.World, reveals *RevealSystem) *CollectibleSystem {
	reg := world.Resources.Status
	return &CollectibleSystem{
		reveals:     reveals,
		statLive:    reg.Ints.Get("collectibles.live"),
		statSpawned: reg.Ints.Get("collectibles.spawned"),
		statReaped:  reg.Ints.Get("collectibles.reaped"),
	}
}

// Update runs one gameplay tick: motion, reap, spawn policy, pickup
func (s *CollectibleSystem) Update(w *engine.World, dt time.Duration) {
	s.Advance(w, dt)
	s.ReapOutOfRange(w)
	s.TrySpawn(w)
	s.CheckPickup(w)
	s.statLive.Store(int64(w.Collectibles.Count()))
}

// Advance moves every live collectible toward the camera and updates
// its floating offset. A failing entity is evicted and the batch
// continues; one bad collectible never takes out the rest.
func (s *CollectibleSystem) Advance(w *engine.World, dt time.Duration) {
	deltaZ := constants.TravelSpeed * dt.Seconds()
	elapsed := w.Resources.Clock.Elapsed().Seconds()

	for _, e := range w.Collectibles.All() {
		err := core.Guard("collectible_advance", func() {
			col, ok := w.Collectibles.Get(e)
			if !ok {
				return
			}
			pos, ok := w.Positions.Get(e)
			if !ok {
				panic("collectible without position")
			}

			pos.Pos.Z += deltaZ
			pos.Pos.Y = constants.CollectibleY +
				constants.BobAmplitude*math.Sin(elapsed*constants.BobSpeed+col.BobPhase)
			w.Positions.Set(e, pos)
		})
		if err != nil {
			w.DestroyEntity(e)
			w.Resources.Journal.Emit(journal.KindEntityEvicted, map[string]any{
				"entity": uint64(e), "error": err.Error(),
			})
		}
	}
}

// ReapOutOfRange removes, without a reveal, any collectible that has
// drifted past the behind-camera threshold
func (s *CollectibleSystem) ReapOutOfRange(w *engine.World) {
	for _, e := range w.Collectibles.All() {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		if pos.Pos.Z > constants.ReapDistance {
			w.DestroyEntity(e)
			s.statReaped.Add(1)
		}
	}
}

// TrySpawn evaluates the cadence policy and spawns at most one
// collectible. Rate limiting is probabilistic with a forced floor: once
// the minimum interval has elapsed the per-tick draw gates the spawn,
// but past the forced margin the draw is bypassed so a run of bad luck
// never starves the lane. The live-ahead cap always holds.
func (s *CollectibleSystem) TrySpawn(w *engine.World) {
	snap := w.Resources.Facts.Snapshot()
	if snap.Empty() {
		// The provider may not have responded yet; silently no-op and
		// nudge a refetch if one is due
		if r, ok := w.Resources.Facts.(Refetcher); ok {
			r.RequestRefetch()
		}
		return
	}

	if s.liveAhead(w) >= constants.SpawnCap {
		return
	}

	now := w.Resources.Time.Now()
	sinceLast := now.Sub(w.State.LastSpawn)
	if !w.State.LastSpawn.IsZero() && sinceLast < constants.SpawnMinInterval {
		return
	}

	forced := w.State.LastSpawn.IsZero() || sinceLast >= constants.SpawnForcedAfter
	if !forced && w.Resources.Rand.Float64() >= constants.SpawnChance {
		return
	}

	s.spawn(w, now, forced)
}

// liveAhead counts collectibles still in front of the player plane
func (s *CollectibleSystem) liveAhead(w *engine.World) int {
	count := 0
	for _, e := range w.Collectibles.All() {
		if pos, ok := w.Positions.Get(e); ok && pos.Pos.Z < 0 {
			count++
		}
	}
	return count
}

// spawn creates one collectible bound to a fresh fact draw
func (s *CollectibleSystem) spawn(w *engine.World, now time.Time, forced bool) {
	rnd := w.Resources.Rand
	fact, ok := chooseFact(w.Resources.Facts.Snapshot(), rnd, w.State.LastShown)
	if !ok {
		return
	}

	w.State.SpawnSerial++
	lane := rnd.Intn(constants.LaneCount)

	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{
		Pos: vmath.Vec3{
			X: constants.LaneX(lane),
			Y: constants.CollectibleY,
			Z: -constants.SpawnDistance,
		},
	})
	w.Collectibles.Set(e, components.CollectibleComponent{
		ID:        w.State.SpawnSerial,
		Lane:      lane,
		Fact:      fact,
		Variant:   components.RandomVariant(rnd.Float64()),
		BobPhase:  float64(lane)*2.1 + float64(w.State.SpawnSerial)*0.7,
		SpawnedAt: now,
	})

	w.State.LastSpawn = now
	s.statSpawned.Add(1)

	kind := journal.KindSpawn
	if forced {
		kind = journal.KindSpawnForced
	}
	w.Resources.Journal.Emit(kind, map[string]any{
		"fact": fact.Name, "lane": lane, "origin": fact.Origin.String(),
	})
}

// chooseFact selects an origin by weight, then a uniform fact from that
// origin's list. A draw matching the previously shown fact is resampled
// once when more than one candidate exists; bounded, never a loop.
func chooseFact(snap *facts.Snapshot, rnd randSource, lastShown string) (facts.Fact, bool) {
	pool := snap.Project
	switch {
	case len(snap.Project) == 0 && len(snap.Profile) == 0:
		return facts.Fact{}, false
	case len(snap.Project) == 0:
		pool = snap.Profile
	case len(snap.Profile) == 0:
		// keep project pool
	case rnd.Float64() < constants.ProfileOriginWeight:
		pool = snap.Profile
	}

	idx := rnd.Intn(len(pool))
	if pool[idx].Name == lastShown && len(pool) > 1 {
		for attempt := 0; attempt < constants.AntiRepeatAttempts && pool[idx].Name == lastShown; attempt++ {
			idx = rnd.Intn(len(pool))
		}
		if pool[idx].Name == lastShown {
			// Resample budget spent; step to a neighbor instead of looping
			idx = (idx + 1) % len(pool)
		}
	}
	return pool[idx], true
}

// randSource is the subset of rand methods the selection needs,
// narrowed for testability
type randSource interface {
	Float64() float64
	Intn(n int) int
}

// CheckPickup detects player proximity and collects. Removal from the
// live set, the reveal, and the event emission happen inside this call,
// so a collectible can be reported picked up at most once.
func (s *CollectibleSystem) CheckPickup(w *engine.World) []core.Entity {
	player := PlayerPosition(w.State)
	var picked []core.Entity

	for _, e := range w.Collectibles.All() {
		col, ok := w.Collectibles.Get(e)
		if !ok {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}

		if vmath.V3Dist(pos.Pos, player) >= constants.CaptureRadius {
			continue
		}

		w.DestroyEntity(e)
		picked = append(picked, e)

		s.reveals.Present(w, col.Fact, pos.Pos)

		w.Resources.Journal.Emit(journal.KindPickup, map[string]any{
			"fact": col.Fact.Name, "lane": col.Lane,
		})
		w.Resources.Queue.Push(events.GameEvent{
			Type:      events.EventFactCollected,
			Payload:   &events.FactCollectedPayload{Fact: col.Fact, Position: pos.Pos},
			Timestamp: w.Resources.Time.Now(),
		})
	}
	return picked
}

// ClearAll removes every live collectible, used by run refresh.
// Reveals are untouched; they expire on their own timeline.
func (s *CollectibleSystem) ClearAll(w *engine.World) {
	for _, e := range w.Collectibles.All() {
		w.DestroyEntity(e)
	}
	s.statLive.Store(0)
}

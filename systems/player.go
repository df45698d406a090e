package systems

import (
	"time"

	"github.com/lixenwraith/synthdrive/constants"
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/vmath"
)

// PlayerSystem interpolates the hovercar toward its target lane and
// decays the cosmetic tilt. Lane changes arrive as events from the
// input controller.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Update advances lane interpolation and tilt decay by one tick
func (s *PlayerSystem) Update(w *engine.World, dt time.Duration) {
	state := w.State

	step := constants.LaneChangeSpeed * dt.Seconds() / constants.LaneWidth
	state.CurrentLane = vmath.MoveToward(state.CurrentLane, float64(state.TargetLane), step)

	// Tilt is tick-decayed state rather than a deferred timer: level
	// restores itself and is an idempotent no-op once flat
	state.Tilt *= 1 - constants.TiltDecayRate
	if state.Tilt < 0.01 && state.Tilt > -0.01 {
		state.Tilt = 0
	}
}

// HandleEvent applies lane shift requests, clamped to the lane range
func (s *PlayerSystem) HandleEvent(w *engine.World, ev events.GameEvent) {
	shift, ok := ev.Payload.(*events.LaneShiftPayload)
	if !ok {
		return
	}

	target := w.State.TargetLane + shift.Delta
	if target < 0 {
		target = 0
	}
	if target > constants.LaneCount-1 {
		target = constants.LaneCount - 1
	}
	if target != w.State.TargetLane {
		w.State.TargetLane = target
		w.State.Tilt = constants.TiltMax * float64(shift.Delta)
	}
}

// EventTypes implements events.Handler
func (s *PlayerSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventLaneShift}
}

// PlayerPosition returns the hovercar's world position: interpolated
// lane x, collectible height, the z=0 player plane
func PlayerPosition(state *engine.RunState) vmath.Vec3 {
	return vmath.Vec3{
		X: (state.CurrentLane - 1) * constants.LaneWidth,
		Y: constants.CollectibleY,
		Z: 0,
	}
}

package events

import (
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/vmath"
)

// LaneShiftPayload carries a lateral move direction
type LaneShiftPayload struct {
	Delta int // -1 left, +1 right, clamped by the consumer
}

// FactCollectedPayload carries the fact and pickup position of a
// just-collected collectible
type FactCollectedPayload struct {
	Fact     facts.Fact
	Position vmath.Vec3
}

// ResizePayload carries new terminal dimensions
type ResizePayload struct {
	Width  int
	Height int
}

package components

import "github.com/lixenwraith/synthdrive/vmath"

// PositionComponent is an entity's world-space location
type PositionComponent struct {
	Pos vmath.Vec3
}

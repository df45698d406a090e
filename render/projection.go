package render

import (
	"github.com/lixenwraith/synthdrive/vmath"
)

// Camera placement relative to the z=0 player plane. The camera sits
// behind and above the hovercar looking down the road toward -z.
const (
	camDistance = 8.0 // camera z behind the player plane
	camHeight   = 3.0
	nearPlane   = 0.8
	cellAspect  = 2.0 // terminal cells are roughly twice as tall as wide
)

// Projection maps world space to terminal cells with a single-axis
// perspective divide. Horizon sits in the upper part of the screen so
// the road dominates the frame.
type Projection struct {
	Width  int
	Height int
}

// HorizonY returns the screen row of the vanishing point
func (p Projection) HorizonY() int {
	return p.Height * 2 / 5
}

// focal is the projection strength, derived from screen height so the
// road width tracks terminal size
func (p Projection) focal() float64 {
	return float64(p.Height) * 1.1
}

// Project converts a world position to a screen cell. Returns the cell,
// a scale factor usable for distance-based sizing, and whether the point
// is in front of the near plane and inside the frame.
func (p Projection) Project(v vmath.Vec3) (int, int, float64, bool) {
	depth := camDistance - v.Z
	if depth < nearPlane {
		return 0, 0, 0, false
	}

	scale := p.focal() / depth
	x := p.Width/2 + int(v.X*scale*cellAspect/2)
	y := p.HorizonY() + int((camHeight-v.Y)*scale)

	visible := x >= 0 && x < p.Width && y >= 0 && y < p.Height
	return x, y, scale, visible
}

// DepthFade returns the distance falloff factor in [0,1] for a world z:
// 1 at the player plane, approaching 0 at spawn depth
func DepthFade(z, spawnDepth float64) float64 {
	if z >= 0 {
		return 1
	}
	f := 1 + z/spawnDepth // z negative ahead
	return vmath.Clamp(f, 0.05, 1)
}

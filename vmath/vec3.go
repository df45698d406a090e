package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector
// World convention: x lateral (lanes), y vertical (bob), z depth
// (negative ahead of the player plane, positive behind the camera)
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3DistSq is the squared distance between two points
// Preferred in proximity checks to avoid the sqrt in the hot path
func V3DistSq(a, b Vec3) float64 {
	return V3MagSq(V3Sub(a, b))
}

func V3Dist(a, b Vec3) float64 {
	return math.Sqrt(V3DistSq(a, b))
}

func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Lerp interpolates between a and b, t clamped to [0,1]
func V3Lerp(a, b Vec3, t float64) Vec3 {
	t = Clamp(t, 0, 1)
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Lerp interpolates between a and b without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveToward advances current toward target by at most step, without overshoot
// Used for frame-rate independent lane interpolation
func MoveToward(current, target, step float64) float64 {
	if step <= 0 {
		return current
	}
	delta := target - current
	if math.Abs(delta) <= step {
		return target
	}
	if delta > 0 {
		return current + step
	}
	return current - step
}

package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestV3Arithmetic covers add, sub, scale and dot
func TestV3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := V3Add(a, b); got != (Vec3{5, -3, 9}) {
		t.Errorf("V3Add: expected {5 -3 9}, got %v", got)
	}
	if got := V3Sub(a, b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("V3Sub: expected {-3 7 -3}, got %v", got)
	}
	if got := V3Scale(a, 2); got != (Vec3{2, 4, 6}) {
		t.Errorf("V3Scale: expected {2 4 6}, got %v", got)
	}
	if got := V3Dot(a, b); !almostEqual(got, 4-10+18) {
		t.Errorf("V3Dot: expected 12, got %v", got)
	}
}

// TestV3Dist verifies distance matches the Euclidean norm
func TestV3Dist(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, 4, 0}
	if got := V3Dist(a, b); !almostEqual(got, 5) {
		t.Errorf("expected distance 5, got %v", got)
	}
	if got := V3DistSq(a, b); !almostEqual(got, 25) {
		t.Errorf("expected squared distance 25, got %v", got)
	}
}

// TestV3NormalizeZero verifies the zero vector normalizes to zero, not NaN
func TestV3NormalizeZero(t *testing.T) {
	got := V3Normalize(Vec3{})
	if got != (Vec3{}) {
		t.Errorf("expected zero vector, got %v", got)
	}
}

// TestV3NormalizeUnit verifies unit magnitude after normalization
func TestV3NormalizeUnit(t *testing.T) {
	got := V3Normalize(Vec3{3, 4, 12})
	if !almostEqual(V3Mag(got), 1) {
		t.Errorf("expected magnitude 1, got %v", V3Mag(got))
	}
}

// TestV3LerpClamps verifies interpolation clamps t outside [0,1]
func TestV3LerpClamps(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 0, 0}

	if got := V3Lerp(a, b, 0.5); !almostEqual(got.X, 5) {
		t.Errorf("expected midpoint x=5, got %v", got.X)
	}
	if got := V3Lerp(a, b, 2); !almostEqual(got.X, 10) {
		t.Errorf("expected clamp to b, got %v", got)
	}
	if got := V3Lerp(a, b, -1); !almostEqual(got.X, 0) {
		t.Errorf("expected clamp to a, got %v", got)
	}
}

// TestMoveToward verifies stepwise approach without overshoot
func TestMoveToward(t *testing.T) {
	if got := MoveToward(0, 10, 3); !almostEqual(got, 3) {
		t.Errorf("expected 3, got %v", got)
	}
	if got := MoveToward(9, 10, 3); !almostEqual(got, 10) {
		t.Errorf("expected arrival at 10, got %v", got)
	}
	if got := MoveToward(10, 0, 4); !almostEqual(got, 6) {
		t.Errorf("expected 6 moving down, got %v", got)
	}
	if got := MoveToward(5, 10, 0); !almostEqual(got, 5) {
		t.Errorf("expected no motion with zero step, got %v", got)
	}
}

package render

import (
	"testing"

	"github.com/lixenwraith/synthdrive/vmath"
)

func TestProjectCenterLineStaysCentered(t *testing.T) {
	p := Projection{Width: 80, Height: 24}

	for _, z := range []float64{-100, -40, -10, 0} {
		x, _, _, _ := p.Project(vmath.Vec3{X: 0, Y: 0, Z: z})
		if x != 40 {
			t.Errorf("expected x=0 to project to column 40 at z=%v, got %d", z, x)
		}
	}
}

func TestProjectDepthOrdering(t *testing.T) {
	p := Projection{Width: 80, Height: 24}

	// Nearer ground points land lower on screen
	_, farY, farScale, _ := p.Project(vmath.Vec3{X: 0, Y: 0, Z: -100})
	_, nearY, nearScale, _ := p.Project(vmath.Vec3{X: 0, Y: 0, Z: -5})
	if nearY <= farY {
		t.Errorf("expected near point below far point, got near=%d far=%d", nearY, farY)
	}
	if nearScale <= farScale {
		t.Errorf("expected larger scale up close, got near=%v far=%v", nearScale, farScale)
	}
}

func TestProjectLateralSpread(t *testing.T) {
	p := Projection{Width: 80, Height: 24}

	lx, _, _, _ := p.Project(vmath.Vec3{X: -4, Y: 0, Z: -20})
	cx, _, _, _ := p.Project(vmath.Vec3{X: 0, Y: 0, Z: -20})
	rx, _, _, _ := p.Project(vmath.Vec3{X: 4, Y: 0, Z: -20})
	if !(lx < cx && cx < rx) {
		t.Errorf("expected left<center<right, got %d %d %d", lx, cx, rx)
	}

	// The same lateral offset narrows with distance
	lxFar, _, _, _ := p.Project(vmath.Vec3{X: -4, Y: 0, Z: -100})
	if cx-lxFar >= cx-lx {
		t.Errorf("expected far offset narrower: near spread %d, far spread %d", cx-lx, cx-lxFar)
	}
}

func TestProjectBehindCameraInvisible(t *testing.T) {
	p := Projection{Width: 80, Height: 24}

	if _, _, _, visible := p.Project(vmath.Vec3{Z: camDistance + 1}); visible {
		t.Error("expected point behind the camera to be invisible")
	}
}

func TestProjectHeightRaisesRow(t *testing.T) {
	p := Projection{Width: 80, Height: 24}

	_, groundY, _, _ := p.Project(vmath.Vec3{X: 0, Y: 0, Z: -20})
	_, floatY, _, _ := p.Project(vmath.Vec3{X: 0, Y: 2, Z: -20})
	if floatY >= groundY {
		t.Errorf("expected elevated point above ground row, got %d vs %d", floatY, groundY)
	}
}

func TestDepthFade(t *testing.T) {
	if got := DepthFade(0, 120); got != 1 {
		t.Errorf("expected full brightness at player plane, got %v", got)
	}
	if got := DepthFade(5, 120); got != 1 {
		t.Errorf("expected full brightness behind camera, got %v", got)
	}
	far := DepthFade(-110, 120)
	near := DepthFade(-10, 120)
	if far >= near {
		t.Errorf("expected fade toward distance, far=%v near=%v", far, near)
	}
	if far < 0.05 {
		t.Errorf("expected floor on fade, got %v", far)
	}
}

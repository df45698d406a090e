package renderers

import (
	"github.com/lixenwraith/synthdrive/constants"
	"github.com/lixenwraith/synthdrive/render"
	"github.com/lixenwraith/synthdrive/systems"
	"github.com/lixenwraith/synthdrive/vmath"
)

// RoadRenderer draws the perspective road: surface fill, the lane
// boundary rails converging on the vanishing point, and the scrolling
// transverse grid lines whose phase the environment system advances
type RoadRenderer struct {
	env *systems.EnvironmentSystem
}

func NewRoadRenderer(env *systems.EnvironmentSystem) *RoadRenderer {
	return &RoadRenderer{env: env}
}

// Render implements render.SystemRenderer
func (r *RoadRenderer) Render(ctx render.Context, buf *render.Buffer) {
	r.renderSurface(ctx, buf)
	r.renderRails(ctx, buf)
	r.renderCrossLines(ctx, buf)
}

// roadHalfWidth is the world half-width of the drivable surface: the
// outer lane centers plus half a lane
const roadHalfWidth = (constants.LaneCount * constants.LaneWidth) / 2.0

// renderSurface fills the road trapezoid row by row below the horizon
func (r *RoadRenderer) renderSurface(ctx render.Context, buf *render.Buffer) {
	horizon := ctx.Proj.HorizonY()

	for y := horizon; y < ctx.Height; y++ {
		// Invert the projection for this row to find the road edges:
		// sample a far z and interpolate is avoided by projecting the
		// edge line at a depth matching the row
		left, right, ok := r.edgesAtRow(ctx, y)
		if !ok {
			continue
		}
		for x := left; x <= right; x++ {
			buf.SetBg(x, y, render.RgbRoad)
		}
	}
}

// edgesAtRow finds the screen columns of the road edges for a row by
// walking depth until the projected ground row matches
func (r *RoadRenderer) edgesAtRow(ctx render.Context, row int) (int, int, bool) {
	// Ground plane y=0; the projected row grows monotonically with z,
	// so binary search the depth whose row matches
	lo, hi := -constants.SpawnDistance, constants.ReapDistance
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		_, y, _, _ := ctx.Proj.Project(vmath.Vec3{X: 0, Y: 0, Z: mid})
		if y > row {
			hi = mid
		} else {
			lo = mid
		}
	}
	z := (lo + hi) / 2
	lx, ly, _, _ := ctx.Proj.Project(vmath.Vec3{X: -roadHalfWidth, Y: 0, Z: z})
	rx, _, _, _ := ctx.Proj.Project(vmath.Vec3{X: roadHalfWidth, Y: 0, Z: z})
	if ly != row && (ly < 0 || ly >= ctx.Height) {
		return 0, 0, false
	}
	if lx < 0 {
		lx = 0
	}
	if rx >= ctx.Width {
		rx = ctx.Width - 1
	}
	return lx, rx, lx <= rx
}

// renderRails draws the longitudinal lane boundaries
func (r *RoadRenderer) renderRails(ctx render.Context, buf *render.Buffer) {
	// Lane edges: half a lane either side of each lane center
	for lane := 0; lane <= constants.LaneCount; lane++ {
		worldX := -roadHalfWidth + float64(lane)*constants.LaneWidth
		r.renderRail(ctx, buf, worldX)
	}
}

// renderRail samples one boundary line from spawn depth to the camera
func (r *RoadRenderer) renderRail(ctx render.Context, buf *render.Buffer, worldX float64) {
	prevY := -1
	for z := -constants.SpawnDistance; z <= constants.ReapDistance; z += 0.5 {
		x, y, _, visible := ctx.Proj.Project(vmath.Vec3{X: worldX, Y: 0, Z: z})
		if !visible || y == prevY {
			continue
		}
		prevY = y
		fade := render.DepthFade(z, constants.SpawnDistance)
		buf.SetFg(x, y, '│', render.Blend(render.RgbGridFar, render.RgbGridLine, fade))
	}
}

// renderCrossLines draws the scrolling transverse lines that sell the
// sense of speed. Their world z follows the environment grid phase.
func (r *RoadRenderer) renderCrossLines(ctx render.Context, buf *render.Buffer) {
	spacing := r.env.GridSpacing()
	phase := r.env.GridPhase()

	for z := -constants.SpawnDistance + phase; z <= constants.ReapDistance; z += spacing {
		lx, y, _, _ := ctx.Proj.Project(vmath.Vec3{X: -roadHalfWidth, Y: 0, Z: z})
		rx, _, _, _ := ctx.Proj.Project(vmath.Vec3{X: roadHalfWidth, Y: 0, Z: z})
		if y < ctx.Proj.HorizonY() || y >= ctx.Height {
			continue
		}
		if lx < 0 {
			lx = 0
		}
		if rx >= ctx.Width {
			rx = ctx.Width - 1
		}
		fade := render.DepthFade(z, constants.SpawnDistance)
		c := render.Blend(render.RgbGridFar, render.RgbGridLine, fade)
		for x := lx; x <= rx; x++ {
			buf.SetFg(x, y, '─', c)
		}
	}
}

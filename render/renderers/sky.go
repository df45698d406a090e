package renderers

import (
	"math"

	"github.com/lixenwraith/synthdrive/render"
	"github.com/lixenwraith/synthdrive/systems"
)

// SkyRenderer draws the backdrop above the horizon: vertical gradient,
// drifting starfield and the scanline sun at the vanishing point
type SkyRenderer struct {
	env *systems.EnvironmentSystem
}

func NewSkyRenderer(env *systems.EnvironmentSystem) *SkyRenderer {
	return &SkyRenderer{env: env}
}

// Render implements render.SystemRenderer
func (r *SkyRenderer) Render(ctx render.Context, buf *render.Buffer) {
	horizon := ctx.Proj.HorizonY()
	if horizon <= 0 {
		return
	}

	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		bg := render.Blend(render.RgbSkyTop, render.RgbSkyHorizon, t*t)
		for x := 0; x < ctx.Width; x++ {
			buf.SetBg(x, y, bg)
		}
	}

	r.renderStars(ctx, buf, horizon)
	r.renderSun(ctx, buf, horizon)
}

// renderStars scatters deterministic stars that drift slowly sideways.
// Positions come from integer hashing so the field is stable per cell
// without any stored state.
func (r *SkyRenderer) renderStars(ctx render.Context, buf *render.Buffer, horizon int) {
	drift := int(r.env.StarDrift() * float64(ctx.Width))

	for y := 0; y < horizon-1; y++ {
		for x := 0; x < ctx.Width; x++ {
			h := starHash(x+drift, y)
			if h%97 != 0 {
				continue
			}
			glyph := '·'
			if h%5 == 0 {
				glyph = '✦'
			}
			// Upper stars brighter, fading near the horizon glow
			keep := 1 - float64(y)/float64(horizon)
			buf.SetFg(x, y, glyph, render.Dim(render.RgbStar, 0.3+0.7*keep))
		}
	}
}

// renderSun draws the half-risen disc with the genre's horizontal gaps.
// The spin phase slides the gap pattern so the sun shimmers.
func (r *SkyRenderer) renderSun(ctx render.Context, buf *render.Buffer, horizon int) {
	radius := ctx.Height / 5
	if radius < 3 {
		radius = 3
	}
	cx := ctx.Width / 2
	shift := int(r.env.SunSpin() / (2 * math.Pi) * 4)

	for dy := 0; dy < radius; dy++ {
		y := horizon - 1 - dy
		if y < 0 {
			break
		}
		// Scanline gaps widen toward the bottom of the disc
		if dy < radius/2 && (dy+shift)%3 == 0 {
			continue
		}

		span := math.Sqrt(float64(radius*radius-dy*dy)) * 2 // cell aspect
		t := float64(dy) / float64(radius)
		c := render.Blend(render.RgbSunCore, render.RgbSunRim, t)
		for dx := -int(span); dx <= int(span); dx++ {
			buf.SetBg(cx+dx, y, c)
		}
	}
}

// starHash is a cheap integer scatter for stable star placement
func starHash(x, y int) int {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return int(h & 0x7fffffff)
}

package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/synthdrive/engine"
)

const (
	gridScrollSpeed = 18.0 // world units per second
	gridSpacing     = 8.0
	sunSpinSpeed    = 0.35 // radians per second
	starDriftSpeed  = 0.02
)

// EnvironmentSystem advances the decorative backdrop: the scrolling
// road grid, the rotating scanline sun and the drifting starfield. It
// runs every tick regardless of run state so the background stays alive
// behind pause and menus. Renderers read its phases.
type EnvironmentSystem struct {
	gridPhase float64 // [0, gridSpacing)
	sunSpin   float64
	starDrift float64
}

func NewEnvironmentSystem() *EnvironmentSystem {
	return &EnvironmentSystem{}
}

// Update advances all ambient phases by one tick
func (s *EnvironmentSystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	s.gridPhase = math.Mod(s.gridPhase+gridScrollSpeed*sec, gridSpacing)
	s.sunSpin = math.Mod(s.sunSpin+sunSpinSpeed*sec, 2*math.Pi)
	s.starDrift += starDriftSpeed * sec
}

// GridPhase returns the scroll offset of the road grid in [0, spacing)
func (s *EnvironmentSystem) GridPhase() float64 { return s.gridPhase }

// GridSpacing returns the distance between horizontal grid lines
func (s *EnvironmentSystem) GridSpacing() float64 { return gridSpacing }

// SunSpin returns the sun rotation phase in radians
func (s *EnvironmentSystem) SunSpin() float64 { return s.sunSpin }

// StarDrift returns the cumulative starfield drift offset
func (s *EnvironmentSystem) StarDrift() float64 { return s.starDrift }

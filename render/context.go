package render

// Context provides frame state for renderers, passed by value
type Context struct {
	// Gameplay clock seconds; frozen while paused
	Elapsed float64
	// Wall-clock seconds; keeps ambient animation alive during pause
	RealElapsed float64

	Paused bool
	Debug  bool

	Width  int
	Height int
	Proj   Projection
}

// NewContext builds the per-frame context for the given screen size
func NewContext(width, height int, elapsed, realElapsed float64, paused, debug bool) Context {
	return Context{
		Elapsed:     elapsed,
		RealElapsed: realElapsed,
		Paused:      paused,
		Debug:       debug,
		Width:       width,
		Height:      height,
		Proj:        Projection{Width: width, Height: height},
	}
}

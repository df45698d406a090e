package components

import "github.com/lucasb-eyer/go-colorful"

// RevealPhase tracks the effect's lifecycle stage.
// Holding -> Fading -> Expired, no skips, no re-entry.
type RevealPhase int

const (
	RevealHolding RevealPhase = iota
	RevealFading
	RevealExpired
)

// RevealComponent is a transient self-animating text effect bound to one
// collected fact. It drifts at near-zero velocity for readability, holds
// fully opaque for a grace period, then fades at a fixed per-tick rate.
// Reveals keep animating through pause and refresh; only expiry removes
// them.
type RevealComponent struct {
	Text        string
	Accent      colorful.Color
	Opacity     float64 // 1.0 through grace, then strictly decreasing
	GraceLeft   int     // ticks of full opacity remaining
	FadeTicks   int     // ticks spent fading; opacity derives from this
	Spin        float64 // slow self-rotation phase, cosmetic
	Phase       RevealPhase
	Placeholder bool // text shaping failed; blank but still expires
}

package components

import (
	"time"

	"github.com/lixenwraith/synthdrive/facts"
)

// Variant is the closed set of cosmetic collectible shape families.
// Per-variant animation is a pure function of (variant, elapsed time)
// dispatched by kind; no per-instance callbacks.
type Variant int

const (
	VariantCrystal Variant = iota
	VariantCassette
	VariantOrb
	VariantPyramid
	variantCount
)

// Glyph returns the base display rune for a variant
func (v Variant) Glyph() rune {
	switch v {
	case VariantCrystal:
		return '◇'
	case VariantCassette:
		return '▣'
	case VariantOrb:
		return '●'
	case VariantPyramid:
		return '▲'
	default:
		return '?'
	}
}

// RandomVariant maps a random draw in [0,1) to a variant
func RandomVariant(draw float64) Variant {
	return Variant(int(draw * float64(variantCount)))
}

// CollectibleComponent is a live on-track pickup. The bound fact is
// assigned at spawn and never reassigned; removal happens exactly once,
// by pickup or by the out-of-range reap.
type CollectibleComponent struct {
	ID        int // monotonic spawn ordinal, distinct from the entity id
	Lane      int
	Fact      facts.Fact
	Variant   Variant
	BobPhase  float64 // sinusoid phase seeded from lane and ID
	SpawnedAt time.Time
}

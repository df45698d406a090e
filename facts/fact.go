package facts

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Origin identifies where a fact came from
type Origin int

const (
	// OriginProject facts describe one public repository
	OriginProject Origin = iota
	// OriginProfile facts describe the account itself
	OriginProfile
	// OriginResume facts are the embedded fallback used when the
	// profile API is unreachable
	OriginResume
)

func (o Origin) String() string {
	switch o {
	case OriginProject:
		return "project"
	case OriginProfile:
		return "profile"
	case OriginResume:
		return "resume"
	default:
		return "unknown"
	}
}

// Fact is an immutable display-ready record of biographical or project
// information. Built once per fetch (or from the embedded fallback) and
// referenced, never owned, by the collectibles bound to it.
type Fact struct {
	Name        string
	Description string
	Details     string
	Language    string
	StarCount   int
	Origin      Origin
	Category    string
}

// Accent returns the fact's display color: one palette for profile and
// resume facts, another for project facts.
func (f Fact) Accent() colorful.Color {
	if f.Origin == OriginProject {
		return projectAccent
	}
	return profileAccent
}

var (
	// Synthwave palette anchors
	projectAccent = colorful.Color{R: 0.0, G: 0.9, B: 1.0}  // cyan
	profileAccent = colorful.Color{R: 1.0, G: 0.3, B: 0.85} // magenta
)

// categoryGlyphs maps the fixed category tag set to a display glyph.
// Unknown categories fall back to the generic marker.
var categoryGlyphs = map[string]rune{
	"go":       '◆',
	"web":      '◇',
	"game":     '▲',
	"tool":     '■',
	"data":     '●',
	"bio":      '☆',
	"work":     '★',
	"contact":  '✉',
	"language": '◈',
}

// CategoryGlyph returns the glyph for a category tag
func CategoryGlyph(category string) rune {
	if g, ok := categoryGlyphs[category]; ok {
		return g
	}
	return '✦'
}

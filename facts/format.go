package facts

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayText builds the formatted reveal string for a fact: category
// glyph prefix, name, and a short truncated description when present.
// maxCols is the display cell budget; truncation is rune-width aware so
// wide glyphs never overflow the budget.
func DisplayText(f Fact, maxCols int) string {
	var b strings.Builder
	b.WriteRune(CategoryGlyph(f.Category))
	b.WriteByte(' ')
	b.WriteString(f.Name)

	if f.Language != "" {
		fmt.Fprintf(&b, " [%s]", f.Language)
	}
	if f.StarCount > 0 {
		fmt.Fprintf(&b, " ★%d", f.StarCount)
	}
	if f.Description != "" {
		b.WriteString(" — ")
		b.WriteString(f.Description)
	}

	text := strings.Join(strings.Fields(b.String()), " ")
	if maxCols > 0 && runewidth.StringWidth(text) > maxCols {
		text = runewidth.Truncate(text, maxCols, "…")
	}
	return text
}

// CenterPad centers text within width cells, width-aware
func CenterPad(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text
}

package facts

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestDisplayTextComposesFields(t *testing.T) {
	f := Fact{
		Name:        "synthdrive",
		Description: "terminal arcade portfolio",
		Language:    "Go",
		StarCount:   42,
		Category:    "tool",
	}

	text := DisplayText(f, 0)
	for _, want := range []string{"synthdrive", "[Go]", "★42", "terminal arcade portfolio"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in %q", want, text)
		}
	}
}

func TestDisplayTextOmitsEmptyFields(t *testing.T) {
	text := DisplayText(Fact{Name: "bare"}, 0)
	if strings.Contains(text, "[") || strings.Contains(text, "★") || strings.Contains(text, "—") {
		t.Errorf("expected bare fact without decorations, got %q", text)
	}
	if !strings.Contains(text, "bare") {
		t.Errorf("expected name in %q", text)
	}
}

func TestDisplayTextTruncatesToBudget(t *testing.T) {
	f := Fact{
		Name:        "a-project-with-a-very-long-name",
		Description: strings.Repeat("words and more words ", 10),
	}

	text := DisplayText(f, 46)
	if w := runewidth.StringWidth(text); w > 46 {
		t.Errorf("expected width at most 46, got %d for %q", w, text)
	}
	if !strings.HasSuffix(text, "…") {
		t.Errorf("expected ellipsis suffix on truncated text, got %q", text)
	}
}

func TestDisplayTextCollapsesWhitespace(t *testing.T) {
	text := DisplayText(Fact{Name: "name", Description: "two  spaces\nand a newline"}, 0)
	if strings.Contains(text, "  ") || strings.Contains(text, "\n") {
		t.Errorf("expected collapsed whitespace, got %q", text)
	}
}

func TestCenterPad(t *testing.T) {
	got := CenterPad("abc", 9)
	if got != "   abc" {
		t.Errorf("expected three-space left pad, got %q", got)
	}
	if wide := CenterPad("abcdefghij", 4); wide != "abcdefghij" {
		t.Errorf("expected over-wide text unchanged, got %q", wide)
	}
}

func TestCategoryGlyphFallback(t *testing.T) {
	known := CategoryGlyph("game")
	unknown := CategoryGlyph("no-such-category")
	if unknown == 0 {
		t.Error("expected a fallback glyph for unknown categories")
	}
	if known == 0 {
		t.Error("expected a glyph for known categories")
	}
}

package systems

import (
	"testing"

	"github.com/lixenwraith/synthdrive/events"
)

type fakeChimer struct {
	plays int
}

func (f *fakeChimer) PlayPickup() { f.plays = f.plays + 1 }

// TestScoreIncrementsAndChimes verifies each pickup event counts and
// rings the chime
func TestScoreIncrementsAndChimes(t *testing.T) {
	w, _ := newTestWorld(twoFacts())
	chime := &fakeChimer{}
	sk := NewScoreKeeper(w, chime)

	for i := 0; i < 3; i++ {
		sk.HandleEvent(w, events.GameEvent{Type: events.EventFactCollected})
	}

	if w.State.Score != 3 {
		t.Errorf("expected score 3, got %d", w.State.Score)
	}
	if chime.plays != 3 {
		t.Errorf("expected 3 chimes, got %d", chime.plays)
	}
}

// TestHighScoreOnlyRises verifies the relic tracks the best run and
// never regresses below a prior best
func TestHighScoreOnlyRises(t *testing.T) {
	w, _ := newTestWorld(twoFacts())
	w.State.HighScore = 5
	sk := NewScoreKeeper(w, nil)

	for i := 0; i < 3; i++ {
		sk.HandleEvent(w, events.GameEvent{Type: events.EventFactCollected})
	}
	if w.State.HighScore != 5 {
		t.Errorf("expected high score to hold at 5, got %d", w.State.HighScore)
	}

	for i := 0; i < 4; i++ {
		sk.HandleEvent(w, events.GameEvent{Type: events.EventFactCollected})
	}
	if w.State.Score != 7 {
		t.Fatalf("expected score 7, got %d", w.State.Score)
	}
	if w.State.HighScore != 7 {
		t.Errorf("expected high score raised to 7, got %d", w.State.HighScore)
	}
}

// TestNilChimerIsSilentNoOp verifies scoring works without audio wired
func TestNilChimerIsSilentNoOp(t *testing.T) {
	w, _ := newTestWorld(twoFacts())
	sk := NewScoreKeeper(w, nil)

	sk.HandleEvent(w, events.GameEvent{Type: events.EventFactCollected})
	if w.State.Score != 1 {
		t.Errorf("expected score 1, got %d", w.State.Score)
	}
}

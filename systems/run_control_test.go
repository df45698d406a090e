package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/vmath"
)

type fakeMusic struct {
	calls []bool
}

func (f *fakeMusic) SetMusic(enabled bool) {
	f.calls = append(f.calls, enabled)
}

func event(t events.EventType) events.GameEvent {
	return events.GameEvent{Type: t}
}

// TestPauseToggleFreezesClock verifies pause flips run state and holds
// the gameplay clock; resume releases it
func TestPauseToggleFreezesClock(t *testing.T) {
	w, mock := newTestWorld(twoFacts())
	rc := NewRunControl(newCollectibleSystem(w), nil, nil, nil)

	rc.HandleEvent(w, event(events.EventPauseToggle))
	if w.State.Running {
		t.Fatal("expected run paused after toggle")
	}

	frozen := w.Resources.Clock.Now()
	mock.Advance(5 * time.Second)
	if got := w.Resources.Clock.Now(); got != frozen {
		t.Errorf("expected clock frozen while paused, advanced by %v", got.Sub(frozen))
	}

	rc.HandleEvent(w, event(events.EventPauseToggle))
	if !w.State.Running {
		t.Fatal("expected run resumed after second toggle")
	}
	mock.Advance(time.Second)
	if got := w.Resources.Clock.Now(); !got.After(frozen) {
		t.Error("expected clock moving again after resume")
	}
}

// TestRefreshClearsCollectiblesKeepsReveals verifies a refresh resets
// the run but leaves live reveals to expire on their own
func TestRefreshClearsCollectiblesKeepsReveals(t *testing.T) {
	w, _ := newTestWorld(twoFacts())
	collectibles := newCollectibleSystem(w)
	reveals := NewRevealSystem(w)
	rc := NewRunControl(collectibles, nil, nil, nil)

	placeCollectible(w, vmath.Vec3{Z: -50}, facts.Fact{Name: "A"})
	placeCollectible(w, vmath.Vec3{Z: -80}, facts.Fact{Name: "B"})
	reveals.Present(w, facts.Fact{Name: "A"}, vmath.Vec3{})

	w.State.Score = 5
	w.State.HighScore = 9
	w.State.Running = false

	rc.HandleEvent(w, event(events.EventRefreshRequest))

	if got := w.Collectibles.Count(); got != 0 {
		t.Errorf("expected collectibles cleared on refresh, got %d", got)
	}
	if got := w.Reveals.Count(); got != 1 {
		t.Errorf("expected reveal to survive refresh, got %d", got)
	}
	if w.State.Score != 0 {
		t.Errorf("expected score reset, got %d", w.State.Score)
	}
	if w.State.HighScore != 9 {
		t.Errorf("expected high score preserved, got %d", w.State.HighScore)
	}
	if !w.State.Running {
		t.Error("expected refresh to leave the run unpaused")
	}
}

// TestMusicToggleFlipsAndPersists verifies the music switch and the
// persistence hook fire together
func TestMusicToggleFlipsAndPersists(t *testing.T) {
	w, _ := newTestWorld(twoFacts())
	music := &fakeMusic{}
	var saved []bool
	rc := NewRunControl(newCollectibleSystem(w), music, nil, func(state *engine.RunState) {
		saved = append(saved, state.MusicEnabled)
	})

	rc.HandleEvent(w, event(events.EventMusicToggle))
	rc.HandleEvent(w, event(events.EventMusicToggle))

	wantCalls := []bool{false, true}
	if len(music.calls) != 2 || music.calls[0] != wantCalls[0] || music.calls[1] != wantCalls[1] {
		t.Errorf("expected music calls %v, got %v", wantCalls, music.calls)
	}
	if len(saved) != 2 || saved[0] != false || saved[1] != true {
		t.Errorf("expected saved states [false true], got %v", saved)
	}
}

// TestQuitSavesThenSignals verifies the quit sequence order
func TestQuitSavesThenSignals(t *testing.T) {
	w, _ := newTestWorld(twoFacts())

	var order []string
	rc := NewRunControl(newCollectibleSystem(w), nil,
		func() { order = append(order, "quit") },
		func(*engine.RunState) { order = append(order, "save") },
	)

	rc.HandleEvent(w, event(events.EventQuitRequest))

	if len(order) != 2 || order[0] != "save" || order[1] != "quit" {
		t.Errorf("expected save before quit, got %v", order)
	}
}

package systems

import (
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/journal"
)

// MusicSwitch toggles the background music; satisfied by the audio
// service. Nil disables music control.
type MusicSwitch interface {
	SetMusic(enabled bool)
}

// RunControl handles the run-level commands: pause, refresh, music
// toggle and quit. Refresh clears collectibles and the score but leaves
// live reveals to expire on their own.
type RunControl struct {
	collectibles *CollectibleSystem
	music        MusicSwitch
	onQuit       func()
	onStateSave  func(state *engine.RunState)
}

// NewRunControl wires run commands to their effects. onQuit signals the
// main loop; onStateSave persists the high score and music preference.
func NewRunControl(collectibles *CollectibleSystem, music MusicSwitch, onQuit func(), onStateSave func(*engine.RunState)) *RunControl {
	return &RunControl{
		collectibles: collectibles,
		music:        music,
		onQuit:       onQuit,
		onStateSave:  onStateSave,
	}
}

// HandleEvent implements events.Handler
func (rc *RunControl) HandleEvent(w *engine.World, ev events.GameEvent) {
	state := w.State

	switch ev.Type {
	case events.EventPauseToggle:
		state.Running = !state.Running
		if clock := w.Resources.Clock; clock != nil {
			if state.Running {
				clock.Resume()
			} else {
				clock.Pause()
			}
		}

	case events.EventMusicToggle:
		state.MusicEnabled = !state.MusicEnabled
		if rc.music != nil {
			rc.music.SetMusic(state.MusicEnabled)
		}
		if rc.onStateSave != nil {
			rc.onStateSave(state)
		}

	case events.EventRefreshRequest:
		rc.collectibles.ClearAll(w)
		state.ResetRun()
		if clock := w.Resources.Clock; clock != nil {
			clock.Resume()
		}
		w.Resources.Journal.Emit(journal.KindRefresh, nil)

	case events.EventQuitRequest:
		if rc.onStateSave != nil {
			rc.onStateSave(state)
		}
		if rc.onQuit != nil {
			rc.onQuit()
		}
	}
}

// EventTypes implements events.Handler
func (rc *RunControl) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPauseToggle,
		events.EventMusicToggle,
		events.EventRefreshRequest,
		events.EventQuitRequest,
	}
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/synthdrive/events"
)

// MapKey translates one terminal key event into a game event. Returns
// false for keys the game does not bind. Arrows and vi h/l both steer.
func MapKey(ev *tcell.EventKey) (events.GameEvent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return laneShift(-1), true
	case tcell.KeyRight:
		return laneShift(1), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return events.GameEvent{Type: events.EventQuitRequest}, true
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}
	return events.GameEvent{}, false
}

func mapRune(r rune) (events.GameEvent, bool) {
	switch r {
	case 'h':
		return laneShift(-1), true
	case 'l':
		return laneShift(1), true
	case ' ':
		return events.GameEvent{Type: events.EventPauseToggle}, true
	case 'r', 'R':
		return events.GameEvent{Type: events.EventRefreshRequest}, true
	case 'm', 'M':
		return events.GameEvent{Type: events.EventMusicToggle}, true
	case 'q', 'Q':
		return events.GameEvent{Type: events.EventQuitRequest}, true
	}
	return events.GameEvent{}, false
}

func laneShift(delta int) events.GameEvent {
	return events.GameEvent{
		Type:    events.EventLaneShift,
		Payload: &events.LaneShiftPayload{Delta: delta},
	}
}

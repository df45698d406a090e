package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventLaneShift signals a lateral move request
	// Trigger: input controller (arrows, h/l)
	// Consumer: player system | Payload: *LaneShiftPayload
	EventLaneShift EventType = iota

	// EventRefreshRequest signals a run reset: score and collectibles
	// cleared, reveals left to expire naturally
	// Trigger: input controller (r)
	// Consumer: run control | Payload: nil
	EventRefreshRequest

	// EventPauseToggle flips the running flag; the environment and live
	// reveals keep animating while paused
	// Trigger: input controller (space)
	// Consumer: run control | Payload: nil
	EventPauseToggle

	// EventMusicToggle flips the persisted music preference
	// Trigger: input controller (m)
	// Consumer: run control | Payload: nil
	EventMusicToggle

	// EventQuitRequest signals shutdown
	// Trigger: input controller (q, Esc, Ctrl+C)
	// Consumer: run control | Payload: nil
	EventQuitRequest

	// EventFactCollected signals a pickup; emission is atomic with the
	// collectible's removal, so it fires at most once per collectible
	// Trigger: collectible system | Payload: *FactCollectedPayload
	// Consumer: score keeper (score, chime, journal)
	EventFactCollected

	// EventResize signals a terminal geometry change
	// Trigger: input controller | Payload: *ResizePayload
	// Consumer: render step
	EventResize
)

// GameEvent is a single queued event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64
	Timestamp time.Time
}

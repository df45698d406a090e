// Package journal provides a JSONL event stream for a fullscreen
// terminal application that cannot log to stdout. Every absorbed error,
// spawn, pickup, reveal, and run-state change becomes one structured
// line, making sessions auditable after the screen is gone.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of journal event.
const (
	KindSessionStart  = "session_start"
	KindSessionEnd    = "session_end"
	KindSpawn         = "spawn"
	KindSpawnForced   = "spawn_forced"
	KindPickup        = "pickup"
	KindReveal        = "reveal"
	KindRefresh       = "refresh"
	KindHighScore     = "high_score"
	KindStepError     = "step_error"
	KindEntityEvicted = "entity_evicted"
	KindFactsLoaded   = "facts_loaded"
	KindFetchFailed   = "fetch_failed"
)

// Event is a single journal record: timestamp, session identity, the
// scheduler tick it happened on, a kind tag, and structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Session   string    `json:"session"`
	Tick      uint64    `json:"tick,omitempty"`
	Kind      string    `json:"kind"`
	Data      any       `json:"data,omitempty"`
}

// Journal writes events to a JSONL file. Safe for concurrent use; a nil
// *Journal is a valid no-op journal, so call sites never nil-check.
type Journal struct {
	file    *os.File
	enc     *json.Encoder
	session string
	mu      sync.Mutex
	tick    func() uint64
}

// Open creates a journal appending to the file at path. Each journal
// carries a fresh session UUID so interleaved runs stay separable.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	j := &Journal{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
	}
	j.Emit(KindSessionStart, nil)
	return j, nil
}

// SetTickSource installs the function used to stamp events with the
// current scheduler tick. Optional; without it ticks stay zero.
func (j *Journal) SetTickSource(fn func() uint64) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.tick = fn
}

// Emit writes one event. Calling Emit on a nil Journal is a no-op.
func (j *Journal) Emit(kind string, data any) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	var tick uint64
	if j.tick != nil {
		tick = j.tick()
	}
	// Encode errors are swallowed: journaling must never take the game down
	_ = j.enc.Encode(Event{
		Timestamp: time.Now(),
		Session:   j.session,
		Tick:      tick,
		Kind:      kind,
		Data:      data,
	})
}

// Session returns the session UUID, empty for a nil journal
func (j *Journal) Session() string {
	if j == nil {
		return ""
	}
	return j.session
}

// Close emits the session end marker and closes the file. Calling Close
// on a nil Journal is a no-op.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	j.Emit(KindSessionEnd, nil)
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.file.Close(); err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}

package engine

import (
	"time"
)

// RunState is the single-owner mutable game state, threaded explicitly
// through the scheduler and systems. HighScore and MusicEnabled persist
// between sessions; the rest resets on refresh.
type RunState struct {
	CurrentLane float64 // interpolated lateral position in lane units
	TargetLane  int
	Tilt        float64 // cosmetic roll from lane changes, decays to level

	Running      bool
	MusicEnabled bool

	Score     int
	HighScore int

	LastSpawn   time.Time
	SpawnSerial int // monotonic collectible ordinal

	// LastShown is the anti-repeat tracker: the name of the most
	// recently revealed fact, consulted to bias the next draw away
	// from immediate repetition. A UX heuristic, not an invariant.
	LastShown string
}

// NewRunState creates the startup state with persisted values applied
func NewRunState(highScore int, musicEnabled bool) *RunState {
	return &RunState{
		CurrentLane:  1,
		TargetLane:   1,
		Running:      true,
		MusicEnabled: musicEnabled,
		HighScore:    highScore,
	}
}

// ResetRun clears the per-run portion of the state. The high score,
// music preference and anti-repeat tracker survive.
func (s *RunState) ResetRun() {
	s.CurrentLane = 1
	s.TargetLane = 1
	s.Tilt = 0
	s.Running = true
	s.Score = 0
	s.LastSpawn = time.Time{}
}

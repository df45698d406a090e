package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// SaveState is everything that persists between sessions: the one
// high-score relic and the music preference. No schema versioning; two
// scalar keys with absence meaning defaults.
type SaveState struct {
	HighScore    int  `toml:"high_score"`
	MusicEnabled bool `toml:"music_enabled"`
}

// DefaultSaveState returns the values used when no save file exists
func DefaultSaveState() SaveState {
	return SaveState{HighScore: 0, MusicEnabled: true}
}

// SaveStore reads and writes state.toml under the user config dir
type SaveStore struct {
	path string
}

// NewSaveStore creates a store at the conventional location,
// $XDG_CONFIG_HOME/synthdrive/state.toml or the platform equivalent
func NewSaveStore() (*SaveStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &SaveStore{path: filepath.Join(base, "synthdrive", "state.toml")}, nil
}

// NewSaveStoreAt creates a store at an explicit path, used by tests
func NewSaveStoreAt(path string) *SaveStore {
	return &SaveStore{path: path}
}

// Load reads persisted state. A missing or corrupt file degrades to
// defaults rather than erroring: losing a high score beats refusing to
// start.
func (s *SaveStore) Load() SaveState {
	state := DefaultSaveState()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return state
	}
	if err := toml.Unmarshal(data, &state); err != nil {
		return DefaultSaveState()
	}
	return state
}

// Save writes state atomically (temp file then rename)
func (s *SaveStore) Save(state SaveState) error {
	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal save state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace save state: %w", err)
	}
	return nil
}

// Exists reports whether a save file is present
func (s *SaveStore) Exists() bool {
	_, err := os.Stat(s.path)
	return !errors.Is(err, fs.ErrNotExist)
}

package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestNilJournalIsNoOp verifies all methods tolerate a nil receiver
func TestNilJournalIsNoOp(t *testing.T) {
	var j *Journal
	j.Emit(KindPickup, map[string]any{"name": "x"})
	j.SetTickSource(func() uint64 { return 1 })
	if got := j.Session(); got != "" {
		t.Errorf("expected empty session on nil journal, got %q", got)
	}
	if err := j.Close(); err != nil {
		t.Errorf("expected nil error closing nil journal, got %v", err)
	}
}

// TestEmitWritesJSONLines verifies one parseable JSON object per line
// with session and tick stamped
func TestEmitWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")

	j, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	j.SetTickSource(func() uint64 { return 42 })
	j.Emit(KindSpawn, map[string]any{"lane": 2})
	if err := j.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer f.Close()

	var lines []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("line not valid JSON: %v", err)
		}
		lines = append(lines, ev)
	}

	// session_start, spawn, session_end
	if len(lines) != 3 {
		t.Fatalf("expected 3 events, got %d", len(lines))
	}
	if lines[0].Kind != KindSessionStart || lines[2].Kind != KindSessionEnd {
		t.Errorf("expected session markers, got %q and %q", lines[0].Kind, lines[2].Kind)
	}
	if lines[1].Kind != KindSpawn {
		t.Errorf("expected spawn event, got %q", lines[1].Kind)
	}
	if lines[1].Tick != 42 {
		t.Errorf("expected tick 42, got %d", lines[1].Tick)
	}
	if lines[1].Session == "" || lines[1].Session != lines[0].Session {
		t.Errorf("expected consistent session id, got %q and %q", lines[0].Session, lines[1].Session)
	}
}

// TestAppendAcrossOpens verifies a second session appends rather than truncates
func TestAppendAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")

	j1, err := Open(path)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	j1.Close()

	j2, err := Open(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	j2.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	count := 0
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 events across two sessions, got %d", count)
	}
}

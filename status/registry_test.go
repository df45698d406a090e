package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestGetReturnsStablePointer verifies repeated Get calls share one metric
func TestGetReturnsStablePointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("collectibles.live")
	b := reg.Ints.Get("collectibles.live")
	if a != b {
		t.Error("expected cached pointer on second Get")
	}

	a.Store(3)
	if got := b.Load(); got != 3 {
		t.Errorf("expected shared value 3, got %d", got)
	}
}

// TestRangeSortedOrder verifies deterministic iteration
func TestRangeSortedOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("scheduler.ticks")
	reg.Ints.Get("collectibles.live")
	reg.Ints.Get("reveals.active")

	var keys []string
	reg.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })

	want := []string{"collectibles.live", "reveals.active", "scheduler.ticks"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}
}

// TestConcurrentGet verifies racing registrations resolve to one pointer
func TestConcurrentGet(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	ptrs := make([]*atomic.Int64, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = reg.Ints.Get("scheduler.step_errors")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(ptrs); i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatal("expected all goroutines to receive the same pointer")
		}
	}
}

// TestAtomicFloat verifies set, get and add round-trip
func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if got := f.Get(); got != 0 {
		t.Errorf("expected zero value 0.0, got %v", got)
	}
	f.Set(1.5)
	if got := f.Add(0.25); got != 1.75 {
		t.Errorf("expected 1.75 after add, got %v", got)
	}
	if got := f.Get(); got != 1.75 {
		t.Errorf("expected stored 1.75, got %v", got)
	}
}

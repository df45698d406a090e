package engine

import (
	"testing"

	"github.com/lixenwraith/synthdrive/components"
	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/vmath"
)

// TestStoreSetGetRemove covers the basic component lifecycle
func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[components.PositionComponent]()
	e := core.Entity(1)

	if _, ok := s.Get(e); ok {
		t.Error("expected no component before Set")
	}

	s.Set(e, components.PositionComponent{Pos: vmath.Vec3{X: 4}})
	got, ok := s.Get(e)
	if !ok || got.Pos.X != 4 {
		t.Errorf("expected stored position x=4, got %v ok=%v", got, ok)
	}
	if s.Count() != 1 {
		t.Errorf("expected count 1, got %d", s.Count())
	}

	s.Remove(e)
	if s.Has(e) {
		t.Error("expected component gone after Remove")
	}
	if s.Count() != 0 {
		t.Errorf("expected count 0 after remove, got %d", s.Count())
	}
}

// TestStoreAllIsACopy verifies destroying entities while iterating the
// All slice is safe
func TestStoreAllIsACopy(t *testing.T) {
	s := NewStore[components.CollectibleComponent]()
	for i := 1; i <= 3; i++ {
		s.Set(core.Entity(i), components.CollectibleComponent{ID: i})
	}

	for _, e := range s.All() {
		s.Remove(e)
	}
	if s.Count() != 0 {
		t.Errorf("expected empty store after removal sweep, got %d", s.Count())
	}
}

// TestWorldDestroyEntityClearsAllStores verifies destruction removes
// every component of the entity
func TestWorldDestroyEntityClearsAllStores(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{})
	w.Collectibles.Set(e, components.CollectibleComponent{ID: 1})

	w.DestroyEntity(e)

	if w.HasAnyComponent(e) {
		t.Error("expected all components removed after DestroyEntity")
	}
}

// TestWorldEntityIDsMonotonic verifies IDs are never reused within a session
func TestWorldEntityIDsMonotonic(t *testing.T) {
	w := newTestWorld()
	a := w.CreateEntity()
	w.DestroyEntity(a)
	b := w.CreateEntity()
	if b <= a {
		t.Errorf("expected fresh id after destroy, got %d then %d", a, b)
	}
}

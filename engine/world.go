package engine

import (
	"sync"

	"github.com/lixenwraith/synthdrive/components"
	"github.com/lixenwraith/synthdrive/core"
)

// World owns all entity component stores plus the explicitly-passed run
// state and resources. All stores are typed for compile-time safety.
// Mutation happens only from the scheduler's synchronous tick.
type World struct {
	mu     sync.Mutex
	nextID core.Entity

	Positions    *Store[components.PositionComponent]
	Collectibles *Store[components.CollectibleComponent]
	Reveals      *Store[components.RevealComponent]

	allStores []AnyStore

	State     *RunState
	Resources *Resources
}

// NewWorld creates a world with all component stores initialized
func NewWorld(state *RunState, res *Resources) *World {
	w := &World{
		nextID:       1,
		Positions:    NewStore[components.PositionComponent](),
		Collectibles: NewStore[components.CollectibleComponent](),
		Reveals:      NewStore[components.RevealComponent](),
		State:        state,
		Resources:    res,
	}
	w.allStores = []AnyStore{
		w.Positions,
		w.Collectibles,
		w.Reveals,
	}
	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

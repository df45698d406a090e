package engine

import (
	"math/rand"

	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/journal"
	"github.com/lixenwraith/synthdrive/status"
)

// Resources is the shared collaborator set injected into systems.
// Facts snapshots are written by the provider's fetch goroutine and
// only read from tick context; everything else is tick-owned.
type Resources struct {
	Facts   facts.Source
	Status  *status.Registry
	Journal *journal.Journal
	Queue   *events.EventQueue
	Time    TimeProvider
	Clock   *PausableClock
	Rand    *rand.Rand
}

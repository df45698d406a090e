package facts

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/journal"
)

// refetchBackoff spaces out opportunistic refetches after a failed
// startup fetch
const refetchBackoff = 30 * time.Second

// Snapshot is an immutable view of both fact lists. Consumers read one
// pointer per tick; the provider swaps whole snapshots, so a list is
// never observed mid-mutation.
type Snapshot struct {
	Project []Fact
	Profile []Fact
}

// Empty reports whether no facts are available from either origin
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Project) == 0 && len(s.Profile) == 0)
}

// Source supplies fact snapshots to the spawn policy
type Source interface {
	Snapshot() *Snapshot
}

// StaticSource is a fixed snapshot, used by tests and the schema tool
type StaticSource struct {
	Snap *Snapshot
}

func (s *StaticSource) Snapshot() *Snapshot { return s.Snap }

// Provider is the fact service: it fetches profile and project facts
// once at startup, falls back to the embedded resume list on failure,
// reloads the authored facts file when it changes, and exposes the
// current state as an atomic snapshot.
//
// The visible snapshot is always rebuilt from the separately held
// remote and authored lists, so a file reload replaces earlier authored
// facts instead of stacking duplicates.
type Provider struct {
	client       *Client
	authoredPath string
	journal      *journal.Journal

	snapshot atomic.Pointer[Snapshot]

	mu            sync.Mutex // guards the source lists below
	remoteProject []Fact
	remoteProfile []Fact
	authored      []Fact

	refreshing  atomic.Bool
	lastAttempt atomic.Int64 // unix nanos of last fetch attempt

	watcher *Watcher
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewProvider creates a provider for the given account login. An empty
// login disables remote fetching (authored file and fallback only).
func NewProvider(login, authoredPath string, jrn *journal.Journal) *Provider {
	p := &Provider{
		authoredPath: authoredPath,
		journal:      jrn,
		stopCh:       make(chan struct{}),
	}
	if login != "" {
		p.client = NewClient(login)
	}
	p.snapshot.Store(&Snapshot{})
	return p
}

// Name implements services.Service
func (p *Provider) Name() string { return "facts" }

// Init implements services.Service: loads the authored file and the
// resume fallback synchronously so the first spawn never sees an empty
// snapshot unless the owner stripped the fallback too
func (p *Provider) Init(any) error {
	if p.authoredPath != "" {
		if authored, err := LoadAuthoredFile(p.authoredPath); err == nil {
			p.mu.Lock()
			p.authored = authored
			p.mu.Unlock()
			p.journal.Emit(journal.KindFactsLoaded, map[string]any{
				"source": "file", "count": len(authored),
			})
		} else {
			p.journal.Emit(journal.KindFetchFailed, map[string]any{
				"source": "file", "error": err.Error(),
			})
		}
	}

	p.rebuild()
	return nil
}

// Start implements services.Service: kicks off the one-shot remote
// fetch and the authored-file watcher
func (p *Provider) Start() error {
	if p.client != nil {
		p.triggerFetch()
	}
	if p.authoredPath != "" {
		w, err := NewWatcher(p.authoredPath, p.reloadAuthored)
		if err != nil {
			// Live reload is a convenience; run without it
			p.journal.Emit(journal.KindFetchFailed, map[string]any{
				"source": "watcher", "error": err.Error(),
			})
		} else {
			p.watcher = w
		}
	}
	return nil
}

// Stop implements services.Service
func (p *Provider) Stop() error {
	close(p.stopCh)
	if p.watcher != nil {
		p.watcher.Close()
	}
	p.wg.Wait()
	return nil
}

// Snapshot returns the current fact lists. Never nil.
func (p *Provider) Snapshot() *Snapshot {
	return p.snapshot.Load()
}

// RequestRefetch retries the remote fetch if the last attempt failed to
// produce remote facts and the backoff has elapsed. Called
// opportunistically by the spawn policy when it still sees a thin
// snapshot; cheap no-op otherwise.
func (p *Provider) RequestRefetch() {
	if p.client == nil || p.refreshing.Load() {
		return
	}
	if time.Now().UnixNano()-p.lastAttempt.Load() < int64(refetchBackoff) {
		return
	}
	p.triggerFetch()
}

func (p *Provider) triggerFetch() {
	if !p.refreshing.CompareAndSwap(false, true) {
		return // Already fetching
	}
	p.lastAttempt.Store(time.Now().UnixNano())

	p.wg.Add(1)
	core.Go(func() {
		defer p.wg.Done()
		defer p.refreshing.Store(false)

		select {
		case <-p.stopCh:
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		profile, perr := p.client.FetchProfileFacts(ctx)
		project, jerr := p.client.FetchProjectFacts(ctx)

		if perr != nil {
			p.journal.Emit(journal.KindFetchFailed, map[string]any{
				"source": "profile", "error": perr.Error(),
			})
		}
		if jerr != nil {
			p.journal.Emit(journal.KindFetchFailed, map[string]any{
				"source": "project", "error": jerr.Error(),
			})
		}
		if len(profile) == 0 && len(project) == 0 {
			return // Keep current snapshot on total failure
		}

		p.mu.Lock()
		p.remoteProject = project
		p.remoteProfile = profile
		p.mu.Unlock()
		p.rebuild()

		p.journal.Emit(journal.KindFactsLoaded, map[string]any{
			"source":  "remote",
			"project": len(project),
			"profile": len(profile),
		})
	})
}

// reloadAuthored re-reads the authored file and swaps a rebuilt snapshot
func (p *Provider) reloadAuthored() {
	authored, err := LoadAuthoredFile(p.authoredPath)
	if err != nil {
		p.journal.Emit(journal.KindFetchFailed, map[string]any{
			"source": "file", "error": err.Error(),
		})
		return
	}

	p.mu.Lock()
	p.authored = authored
	p.mu.Unlock()
	p.rebuild()

	p.journal.Emit(journal.KindFactsLoaded, map[string]any{
		"source": "file", "count": len(authored),
	})
}

// rebuild composes and installs a fresh snapshot: remote lists, the
// resume fallback when no remote profile exists, and the authored facts
// sorted into their origin's list
func (p *Provider) rebuild() {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := &Snapshot{
		Project: append([]Fact(nil), p.remoteProject...),
		Profile: append([]Fact(nil), p.remoteProfile...),
	}
	if len(next.Profile) == 0 {
		next.Profile = ResumeFacts()
	}
	for _, f := range p.authored {
		if f.Origin == OriginProject {
			next.Project = append(next.Project, f)
		} else {
			next.Profile = append(next.Profile, f)
		}
	}
	p.snapshot.Store(next)
}

package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/journal"
)

// Step is one unit of per-tick work. Steps registered Always run every
// tick, paused or not (environment, reveal aging, render); the rest are
// gated on the run state being active.
type Step struct {
	Name   string
	Always bool
	Fn     func(w *World, dt time.Duration)
}

// FrameScheduler is the single repeating driver. It dispatches queued
// events and runs the registered steps in fixed order once per tick,
// with each step isolated so a failure degrades that step's output
// without halting the tick or the loop. Effectively unkillable from
// within: whatever escapes a step is journaled and the next tick is
// still scheduled.
type FrameScheduler struct {
	world    *World
	router   *events.Router[*World]
	interval time.Duration
	steps    []Step

	mu               sync.Mutex
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks      *atomic.Int64
	statStepErrors *atomic.Int64
}

// NewFrameScheduler creates a scheduler over the world's event queue
func NewFrameScheduler(world *World, interval time.Duration) *FrameScheduler {
	reg := world.Resources.Status
	return &FrameScheduler{
		world:          world,
		router:         events.NewRouter[*World](world.Resources.Queue),
		interval:       interval,
		stopChan:       make(chan struct{}),
		statTicks:      reg.Ints.Get("scheduler.ticks"),
		statStepErrors: reg.Ints.Get("scheduler.step_errors"),
	}
}

// AddStep appends a step; per-tick execution follows registration order
func (fs *FrameScheduler) AddStep(name string, always bool, fn func(w *World, dt time.Duration)) {
	fs.steps = append(fs.steps, Step{Name: name, Always: always, Fn: fn})
}

// RegisterHandler adds an event handler, must be called before Start
func (fs *FrameScheduler) RegisterHandler(h events.Handler[*World]) {
	fs.router.Register(h)
}

// TickCount returns ticks completed since start
func (fs *FrameScheduler) TickCount() uint64 {
	return fs.tickCount.Load()
}

// Start begins the scheduler loop
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		core.Go(fs.loop)
	}
}

// Stop halts the loop; idempotent, returns after the loop exits
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		if fs.running.CompareAndSwap(true, false) {
			close(fs.stopChan)
			fs.wg.Wait()
		}
	})
}

// loop is deadline-driven over real time with drift correction: a slow
// tick shortens the following sleep, and a stall beyond two intervals
// resets the deadline instead of replaying the backlog
func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()

	now := fs.world.Resources.Time.Now()
	fs.mu.Lock()
	fs.nextTickDeadline = now.Add(fs.interval)
	fs.mu.Unlock()

	timer := time.NewTimer(fs.interval)
	defer timer.Stop()

	for {
		select {
		case <-fs.stopChan:
			return
		case <-timer.C:
		}

		fs.Tick(fs.interval)

		now = fs.world.Resources.Time.Now()

		fs.mu.Lock()
		fs.nextTickDeadline = fs.nextTickDeadline.Add(fs.interval)
		if now.Sub(fs.nextTickDeadline) > fs.interval*2 {
			fs.nextTickDeadline = now.Add(fs.interval)
		}
		sleep := fs.nextTickDeadline.Sub(now)
		fs.mu.Unlock()

		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Tick executes one full tick synchronously: event dispatch, then every
// registered step in order. Exposed so tests drive the scheduler
// deterministically without the timer loop.
func (fs *FrameScheduler) Tick(dt time.Duration) {
	jrn := fs.world.Resources.Journal

	if err := core.Guard("dispatch", func() {
		fs.router.DispatchAll(fs.world)
	}); err != nil {
		fs.statStepErrors.Add(1)
		jrn.Emit(journal.KindStepError, map[string]any{"step": "dispatch", "error": err.Error()})
	}

	running := fs.world.State.Running
	for _, step := range fs.steps {
		if !step.Always && !running {
			continue
		}
		if err := core.Guard(step.Name, func() {
			step.Fn(fs.world, dt)
		}); err != nil {
			fs.statStepErrors.Add(1)
			jrn.Emit(journal.KindStepError, map[string]any{"step": step.Name, "error": err.Error()})
		}
	}

	fs.statTicks.Store(int64(fs.tickCount.Add(1)))
}

package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/status"
)

func newTestWorld() *World {
	state := NewRunState(0, true)
	res := &Resources{
		Status: status.NewRegistry(),
		Queue:  events.NewEventQueue(),
		Time:   NewMockTimeProvider(time.Unix(0, 0)),
		Rand:   rand.New(rand.NewSource(1)),
	}
	return NewWorld(state, res)
}

// TestStepOrderIsFixed verifies registration order is execution order
func TestStepOrderIsFixed(t *testing.T) {
	world := newTestWorld()
	fs := NewFrameScheduler(world, 16*time.Millisecond)

	var order []string
	fs.AddStep("environment", true, func(*World, time.Duration) { order = append(order, "environment") })
	fs.AddStep("reveals", true, func(*World, time.Duration) { order = append(order, "reveals") })
	fs.AddStep("gameplay", false, func(*World, time.Duration) { order = append(order, "gameplay") })
	fs.AddStep("render", true, func(*World, time.Duration) { order = append(order, "render") })

	fs.Tick(16 * time.Millisecond)

	want := []string{"environment", "reveals", "gameplay", "render"}
	if len(order) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

// TestPausedSkipsGatedSteps verifies only Always steps run while the
// game is not active
func TestPausedSkipsGatedSteps(t *testing.T) {
	world := newTestWorld()
	world.State.Running = false
	fs := NewFrameScheduler(world, 16*time.Millisecond)

	var ran []string
	fs.AddStep("reveals", true, func(*World, time.Duration) { ran = append(ran, "reveals") })
	fs.AddStep("gameplay", false, func(*World, time.Duration) { ran = append(ran, "gameplay") })

	fs.Tick(16 * time.Millisecond)

	if len(ran) != 1 || ran[0] != "reveals" {
		t.Errorf("expected only reveals step while paused, got %v", ran)
	}
}

// TestStepPanicDoesNotStopTick verifies a panicking step never prevents
// later steps in the same tick, and the error is counted
func TestStepPanicDoesNotStopTick(t *testing.T) {
	world := newTestWorld()
	fs := NewFrameScheduler(world, 16*time.Millisecond)

	rendered := false
	fs.AddStep("gameplay", false, func(*World, time.Duration) { panic("bad frame") })
	fs.AddStep("render", true, func(*World, time.Duration) { rendered = true })

	fs.Tick(16 * time.Millisecond)

	if !rendered {
		t.Error("expected render step to run after gameplay panicked")
	}
	if got := world.Resources.Status.Ints.Get("scheduler.step_errors").Load(); got != 1 {
		t.Errorf("expected 1 step error recorded, got %d", got)
	}
	if fs.TickCount() != 1 {
		t.Errorf("expected tick to complete, count %d", fs.TickCount())
	}
}

// TestStepPanicDoesNotStopNextTick verifies the loop survives repeated
// failures across ticks
func TestStepPanicDoesNotStopNextTick(t *testing.T) {
	world := newTestWorld()
	fs := NewFrameScheduler(world, 16*time.Millisecond)

	count := 0
	fs.AddStep("broken", true, func(*World, time.Duration) {
		count++
		panic("always fails")
	})

	fs.Tick(16 * time.Millisecond)
	fs.Tick(16 * time.Millisecond)
	fs.Tick(16 * time.Millisecond)

	if count != 3 {
		t.Errorf("expected broken step attempted every tick, got %d", count)
	}
	if fs.TickCount() != 3 {
		t.Errorf("expected 3 completed ticks, got %d", fs.TickCount())
	}
}

// TestDispatchBeforeSteps verifies queued events are visible to the
// first step of the same tick
func TestDispatchBeforeSteps(t *testing.T) {
	world := newTestWorld()
	fs := NewFrameScheduler(world, 16*time.Millisecond)

	handled := false
	fs.RegisterHandler(&recordingHandler{fn: func() { handled = true }})

	sawHandled := false
	fs.AddStep("check", true, func(*World, time.Duration) { sawHandled = handled })

	world.Resources.Queue.Push(events.GameEvent{Type: events.EventPauseToggle})
	fs.Tick(16 * time.Millisecond)

	if !sawHandled {
		t.Error("expected event dispatched before the first step ran")
	}
}

// TestStopIdempotent verifies repeated Stop calls are safe
func TestStopIdempotent(t *testing.T) {
	world := newTestWorld()
	world.Resources.Time = NewMonotonicTimeProvider()
	fs := NewFrameScheduler(world, time.Millisecond)
	fs.AddStep("noop", true, func(*World, time.Duration) {})

	fs.Start()
	time.Sleep(10 * time.Millisecond)
	fs.Stop()
	fs.Stop()

	if fs.TickCount() == 0 {
		t.Error("expected at least one tick before stop")
	}
}

type recordingHandler struct {
	fn func()
}

func (h *recordingHandler) HandleEvent(*World, events.GameEvent) { h.fn() }
func (h *recordingHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventPauseToggle}
}

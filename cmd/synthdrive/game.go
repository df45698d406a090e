package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/synthdrive/audio"
	"github.com/lixenwraith/synthdrive/config"
	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/engine"
	"github.com/lixenwraith/synthdrive/events"
	"github.com/lixenwraith/synthdrive/facts"
	"github.com/lixenwraith/synthdrive/input"
	"github.com/lixenwraith/synthdrive/journal"
	"github.com/lixenwraith/synthdrive/render"
	"github.com/lixenwraith/synthdrive/render/renderers"
	"github.com/lixenwraith/synthdrive/services"
	"github.com/lixenwraith/synthdrive/status"
	"github.com/lixenwraith/synthdrive/systems"
)

// runGame wires the full session and blocks until quit. Construction
// order matters: the crash handler must own the screen before any
// goroutine starts, and services must be running before the first tick
// so the spawn policy never sees a half-built provider.
func runGame(cfg config.Config) error {
	// Persistence degrades to in-memory when the config dir is unusable
	store, storeErr := config.NewSaveStore()
	saved := config.DefaultSaveState()
	if storeErr == nil {
		saved = store.Load()
	}

	// A nil journal is a valid no-op sink, so a bad path never blocks play
	var jrn *journal.Journal
	if cfg.Journal != "" {
		j, err := journal.Open(cfg.Journal)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			jrn = j
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	// Every goroutine spawned through core.Go funnels panics here; the
	// terminal must be restored before anything prints
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "crash: %v\n%s\n", r, debug.Stack())
		os.Exit(1)
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	timeSrc := engine.NewMonotonicTimeProvider()
	clock := engine.NewPausableClock(timeSrc)
	queue := events.NewEventQueue()
	registry := status.NewRegistry()

	provider := facts.NewProvider(cfg.User, cfg.FactsFile, jrn)
	sound := audio.NewService(audio.Config{
		Mute:   cfg.Mute,
		Volume: cfg.Volume,
		Music:  saved.MusicEnabled,
	})

	hub := services.NewHub()
	if err := hub.Register(provider); err != nil {
		screen.Fini()
		return err
	}
	if err := hub.Register(sound); err != nil {
		screen.Fini()
		return err
	}
	if err := hub.InitAll(nil); err != nil {
		screen.Fini()
		return fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		screen.Fini()
		return fmt.Errorf("start services: %w", err)
	}

	state := engine.NewRunState(saved.HighScore, saved.MusicEnabled)
	world := engine.NewWorld(state, &engine.Resources{
		Facts:   provider,
		Status:  registry,
		Journal: jrn,
		Queue:   queue,
		Time:    timeSrc,
		Clock:   clock,
		Rand:    rand.New(rand.NewSource(seed)),
	})

	env := systems.NewEnvironmentSystem()
	reveals := systems.NewRevealSystem(world)
	collectibles := systems.NewCollectibleSystem(world, reveals)
	player := systems.NewPlayerSystem()
	score := systems.NewScoreKeeper(world, sound)

	quitCh := make(chan struct{})
	var quitOnce sync.Once
	onQuit := func() {
		quitOnce.Do(func() { close(quitCh) })
	}
	onStateSave := func(s *engine.RunState) {
		if storeErr != nil {
			return
		}
		if err := store.Save(config.SaveState{
			HighScore:    s.HighScore,
			MusicEnabled: s.MusicEnabled,
		}); err != nil {
			jrn.Emit(journal.KindStepError, map[string]any{
				"step": "save_state", "error": err.Error(),
			})
		}
	}
	control := systems.NewRunControl(collectibles, sound, onQuit, onStateSave)

	width, height := screen.Size()
	orch := render.NewOrchestrator(screen, width, height)
	orch.Register(renderers.NewSkyRenderer(env), render.PrioritySky)
	orch.Register(renderers.NewRoadRenderer(env), render.PriorityRoad)
	orch.Register(renderers.NewCollectibleRenderer(world), render.PriorityCollectibles)
	orch.Register(renderers.NewHovercarRenderer(world), render.PriorityPlayer)
	orch.Register(renderers.NewRevealRenderer(world), render.PriorityReveals)
	orch.Register(renderers.NewStatusBarRenderer(world), render.PriorityStatusBar)
	orch.Register(renderers.NewDebugRenderer(world, cfg.Debug), render.PriorityDebug)

	interval := time.Second / time.Duration(cfg.FPS)
	scheduler := engine.NewFrameScheduler(world, interval)
	jrn.SetTickSource(scheduler.TickCount)

	scheduler.RegisterHandler(player)
	scheduler.RegisterHandler(score)
	scheduler.RegisterHandler(control)
	scheduler.RegisterHandler(&resizeHandler{orch: orch})

	scheduler.AddStep("environment", true, env.Update)
	scheduler.AddStep("reveals", true, reveals.Update)
	scheduler.AddStep("player", false, player.Update)
	scheduler.AddStep("collectibles", false, collectibles.Update)

	startReal := timeSrc.Now()
	scheduler.AddStep("render", true, func(w *engine.World, dt time.Duration) {
		buf := orch.Buffer()
		ctx := render.NewContext(
			buf.Width(), buf.Height(),
			clock.Elapsed().Seconds(),
			timeSrc.Now().Sub(startReal).Seconds(),
			!w.State.Running, cfg.Debug,
		)
		orch.Frame(ctx)
	})

	scheduler.Start()
	input.NewController(screen, queue).Start()

	<-quitCh

	scheduler.Stop()
	onStateSave(state)
	hub.StopAll()
	jrn.Close()
	screen.Fini()
	return nil
}

// resizeHandler reshapes the render buffer when the terminal changes.
// Runs on the dispatch phase of the tick, so the following render step
// always sees a consistent buffer.
type resizeHandler struct {
	orch *render.Orchestrator
}

func (h *resizeHandler) HandleEvent(_ *engine.World, ev events.GameEvent) {
	if size, ok := ev.Payload.(*events.ResizePayload); ok {
		h.orch.Resize(size.Width, size.Height)
	}
}

func (h *resizeHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventResize}
}

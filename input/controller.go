package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/synthdrive/core"
	"github.com/lixenwraith/synthdrive/events"
)

// Controller polls terminal events on its own goroutine and pushes the
// bound game events onto the queue. The scheduler consumes them at the
// top of each tick, so input handling is single-threaded from the
// simulation's point of view.
type Controller struct {
	screen tcell.Screen
	queue  *events.EventQueue
}

func NewController(screen tcell.Screen, queue *events.EventQueue) *Controller {
	return &Controller{screen: screen, queue: queue}
}

// Start launches the poll loop. The loop ends when the screen is
// finalized; PollEvent then returns nil.
func (c *Controller) Start() {
	core.Go(c.loop)
}

func (c *Controller) loop() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if game, ok := MapKey(tev); ok {
				game.Timestamp = time.Now()
				c.queue.Push(game)
			}

		case *tcell.EventResize:
			w, h := tev.Size()
			c.queue.Push(events.GameEvent{
				Type:      events.EventResize,
				Payload:   &events.ResizePayload{Width: w, Height: h},
				Timestamp: time.Now(),
			})
		}
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/event"
	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/screen"
	"github.com/coreman2200/leuchtwand/internal/state"
)

const (
	// MaxIdleFrames is the number of consecutive ticks without any button
	// event after which the controller falls back to Idle.
	MaxIdleFrames = 1000

	DefaultFPS = 30
)

// Controller owns the current state, routes button events to it and drives
// the update and flush cycle.
type Controller struct {
	scr       *screen.Screen
	queue     *event.Queue
	catalog   *state.Registry
	idle      *state.Idle
	selection *state.ProgramSelection
	current   state.State

	idleFrames int
}

// NewController builds the program catalog and enters Idle. It fails when
// the glyph source cannot render every program name.
func NewController(scr *screen.Screen, buttons button.Indicators, src font.Source, theme state.Theme) (*Controller, error) {
	if scr == nil || buttons == nil || src == nil {
		return nil, fmt.Errorf("controller: screen, buttons and font are required")
	}
	bounds := scr.Bounds()

	catalog := state.NewRegistry()
	catalog.Register(state.NewTableTennis(buttons, src, bounds, theme))
	catalog.Register(state.NewAnimations(buttons))

	names := catalog.List()
	if err := font.Validate(src, append(names, "0123456789")...); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	c := &Controller{
		scr:       scr,
		queue:     event.NewQueue(),
		catalog:   catalog,
		idle:      state.NewIdle(buttons),
		selection: state.NewProgramSelection(buttons, src, bounds, theme, names),
	}
	c.current = c.idle
	c.current.OnEnter()
	return c, nil
}

// Post queues a button edge. It is safe to call from any goroutine and
// matches button.Handler.
func (c *Controller) Post(id int, pressed bool) {
	if pressed {
		c.queue.Post(event.Pressed(id))
	} else {
		c.queue.Post(event.Released(id))
	}
}

func (c *Controller) Current() state.State { return c.current }
func (c *Controller) IdleFrames() int      { return c.idleFrames }
func (c *Controller) Programs() []string   { return c.catalog.List() }

// Tick handles all queued events, paints the current state and flushes the
// frame. dt is the frame time in seconds.
func (c *Controller) Tick(dt float64) error {
	events := c.queue.Drain()
	for _, e := range events {
		a := state.HandleEvent(c.current, e)
		log.Debug().Stringer("event", e).Str("state", c.current.Name()).Stringer("action", a).Msg("event")
		if a.Kind != state.None {
			c.resolve(a)
		}
	}
	if len(events) > 0 {
		c.idleFrames = 0
	}

	state.Update(c.current, c.scr.Buffer, dt)
	err := c.scr.Flush()

	if len(events) == 0 {
		c.idleFrames++
		if c.idleFrames >= MaxIdleFrames {
			log.Info().Str("state", c.current.Name()).Msg("no input, falling back to idle")
			c.change(c.idle)
			c.idleFrames = 0
		}
	}
	return err
}

func (c *Controller) resolve(a state.Action) {
	switch a.Kind {
	case state.Back:
		if c.current == state.State(c.selection) {
			c.change(c.idle)
		} else {
			c.change(c.selection)
		}
	case state.Select:
		next, ok := c.catalog.Get(a.Program)
		if !ok {
			log.Warn().Str("program", a.Program).Msg("unknown program selected")
			return
		}
		c.change(next)
	case state.Wakeup:
		c.change(c.selection)
	}
}

// change leaves the current state and enters next, even when they are the
// same.
func (c *Controller) change(next state.State) {
	log.Debug().Str("from", c.current.Name()).Str("to", next.Name()).Msg("state change")
	c.current.OnLeave()
	c.current = next
	c.current.OnEnter()
}

// Run ticks at fps until ctx is cancelled. Frames that overrun their slot
// restart the schedule from now instead of trying to catch up.
func (c *Controller) Run(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	frame := time.Second / time.Duration(fps)
	dt := frame.Seconds()

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	next := time.Now()
	for {
		if err := c.Tick(dt); err != nil {
			log.Error().Err(err).Msg("tick")
		}

		next = next.Add(frame)
		wait := time.Until(next)
		if wait < 0 {
			next = time.Now()
			wait = 0
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}

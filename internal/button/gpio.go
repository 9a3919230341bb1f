package button

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Default BCM pin names, indexed by button id.
var (
	DefaultInputPins = []string{"GPIO17", "GPIO22", "GPIO5", "GPIO13", "GPIO26", "GPIO20"}
	DefaultLEDPins   = []string{"GPIO27", "GPIO10", "GPIO6", "GPIO19", "GPIO21", "GPIO16"}
)

const DefaultDebounce = 50 * time.Millisecond

// edgePoll bounds WaitForEdge so the watchers notice cancellation.
const edgePoll = 100 * time.Millisecond

// GPIO reads six active-low buttons with pull-ups and drives their LEDs.
type GPIO struct {
	Base

	inputs   [Count]gpio.PinIn
	leds     [Count]gpio.PinOut
	debounce time.Duration
}

// OpenGPIO looks pins up by name in the periph registry. ledNames may be
// empty when the buttons have no LEDs.
func OpenGPIO(inputNames, ledNames []string, debounce time.Duration) (*GPIO, error) {
	if len(inputNames) != Count {
		return nil, fmt.Errorf("gpio buttons: need %d input pins, got %d", Count, len(inputNames))
	}
	if len(ledNames) != 0 && len(ledNames) != Count {
		return nil, fmt.Errorf("gpio buttons: need %d led pins, got %d", Count, len(ledNames))
	}
	ins := make([]gpio.PinIn, Count)
	for i, name := range inputNames {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio buttons: no pin %q", name)
		}
		ins[i] = p
	}
	var outs []gpio.PinOut
	for _, name := range ledNames {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio buttons: no pin %q", name)
		}
		outs = append(outs, p)
	}
	return NewGPIO(ins, outs, debounce)
}

// NewGPIO configures the inputs with pull-ups and edge detection and turns
// all LEDs off.
func NewGPIO(inputs []gpio.PinIn, leds []gpio.PinOut, debounce time.Duration) (*GPIO, error) {
	if len(inputs) != Count {
		return nil, fmt.Errorf("gpio buttons: need %d inputs, got %d", Count, len(inputs))
	}
	g := &GPIO{debounce: debounce}
	for i, p := range inputs {
		if err := p.In(gpio.PullUp, gpio.BothEdges); err != nil {
			return nil, fmt.Errorf("gpio buttons: input %d: %w", i, err)
		}
		g.inputs[i] = p
	}
	for i, p := range leds {
		if i >= Count {
			break
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("gpio buttons: led %d: %w", i, err)
		}
		g.leds[i] = p
	}
	g.Apply = g.drive
	return g, nil
}

func (g *GPIO) drive(id int, on bool) {
	p := g.leds[id]
	if p == nil {
		return
	}
	if err := p.Out(gpio.Level(on)); err != nil {
		log.Warn().Err(err).Int("button", id).Msg("set indicator")
	}
}

// Run watches every input until ctx is cancelled. Edges are reported
// through the handler registered with OnEvent; a button only reports when
// its settled level differs from the last one reported.
func (g *GPIO) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := range g.inputs {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			g.watch(ctx, id)
		}(i)
	}
	wg.Wait()
}

func (g *GPIO) watch(ctx context.Context, id int) {
	p := g.inputs[id]
	pressed := p.Read() == gpio.Low
	for ctx.Err() == nil {
		if !p.WaitForEdge(edgePoll) {
			continue
		}
		if g.debounce > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(g.debounce):
			}
		}
		now := p.Read() == gpio.Low
		if now == pressed {
			continue
		}
		pressed = now
		g.Emit(id, pressed)
	}
}

// Close switches the LEDs off and stops edge detection.
func (g *GPIO) Close() error {
	g.SetAllIndicators(false)
	for _, p := range g.leds {
		if p != nil {
			_ = p.Out(gpio.Low)
		}
	}
	for i, p := range g.inputs {
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return fmt.Errorf("gpio buttons: release input %d: %w", i, err)
		}
	}
	return nil
}

package button

import (
	"fmt"
	"sync"
)

// Count is the number of buttons on the panel.
const Count = 6

// Button indices, laid out in two rows of three.
const (
	TopLeft = iota
	BottomLeft
	TopMiddle
	BottomMiddle
	TopRight
	BottomRight
)

// Handler receives button edges.
type Handler func(id int, pressed bool)

// Indicators switches the LEDs built into the buttons. States hold one to
// show which buttons currently do something.
type Indicators interface {
	SetIndicator(id int, on bool)
	SetAllIndicators(on bool)
}

// Device is an input driver: it reports button edges and owns the button LEDs.
type Device interface {
	Indicators
	OnEvent(h Handler)
	Indicator(id int) bool
}

// Base keeps the indicator state and the registered handler. Hardware
// drivers embed it and set Apply to push LED changes out.
type Base struct {
	mu      sync.Mutex
	leds    [Count]bool
	handler Handler

	// Apply is called with the new LED level whenever an indicator changes.
	Apply func(id int, on bool)
}

func checkID(id int) {
	if id < 0 || id >= Count {
		panic(fmt.Sprintf("button: index %d out of range", id))
	}
}

func (b *Base) OnEvent(h Handler) {
	b.mu.Lock()
	b.handler = h
	b.mu.Unlock()
}

// Emit forwards an edge to the registered handler.
func (b *Base) Emit(id int, pressed bool) {
	checkID(id)
	b.mu.Lock()
	h := b.handler
	b.mu.Unlock()
	if h != nil {
		h(id, pressed)
	}
}

func (b *Base) SetIndicator(id int, on bool) {
	checkID(id)
	b.mu.Lock()
	changed := b.leds[id] != on
	b.leds[id] = on
	apply := b.Apply
	b.mu.Unlock()
	if changed && apply != nil {
		apply(id, on)
	}
}

func (b *Base) SetAllIndicators(on bool) {
	for i := 0; i < Count; i++ {
		b.SetIndicator(i, on)
	}
}

func (b *Base) Indicator(id int) bool {
	checkID(id)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.leds[id]
}

// Indicators returns a snapshot of all LED states.
func (b *Base) Indicators() [Count]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.leds
}

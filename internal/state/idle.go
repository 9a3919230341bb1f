package state

import (
	"github.com/coreman2200/leuchtwand/internal/animation"
	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/geom"
)

const (
	IdleName = "Idle"

	// BlankAfter is the number of ticks after which Idle turns the wall off.
	BlankAfter = 100

	idleSpeed = -100
)

// Idle runs a slow reverse kaleidoscope and blanks the wall after
// BlankAfter ticks. Any button press wakes the wall up.
type Idle struct {
	Base
	frames int
}

func NewIdle(buttons button.Indicators) *Idle {
	return &Idle{Base: NewBase(IdleName, buttons)}
}

func (s *Idle) OnEnter() {
	s.frames = 0
	s.light()
	s.show(animation.NewKaleidoscope(idleSpeed))
}

func (s *Idle) OnFrame() {
	s.frames++
	if s.frames == BlankAfter {
		s.show(animation.NewFillColor(geom.Black))
	}
}

// Frames is the number of ticks since the state was entered.
func (s *Idle) Frames() int { return s.frames }

func (s *Idle) OnButtonPressed(int) Action { return WakeupAction }

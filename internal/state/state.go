// Package state implements the application modes of the wall. A state owns
// the animations it paints and turns button events into actions; the
// controller in package app performs every transition.
package state

import (
	"fmt"

	"github.com/coreman2200/leuchtwand/internal/animation"
	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/event"
	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/screen"
)

type ActionKind uint8

const (
	None ActionKind = iota
	Back
	Select
	Wakeup
)

func (k ActionKind) String() string {
	switch k {
	case None:
		return "none"
	case Back:
		return "back"
	case Select:
		return "select"
	case Wakeup:
		return "wakeup"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// Action is what a state asks the controller to do after an event.
// Program is only set for Select.
type Action struct {
	Kind    ActionKind
	Program string
}

var (
	NoAction     = Action{}
	BackAction   = Action{Kind: Back}
	WakeupAction = Action{Kind: Wakeup}
)

func SelectAction(program string) Action { return Action{Kind: Select, Program: program} }

func (a Action) String() string {
	if a.Kind == Select {
		return fmt.Sprintf("select(%s)", a.Program)
	}
	return a.Kind.String()
}

type State interface {
	Name() string
	// OnEnter resets the state, sets the button indicators and builds the
	// animation list.
	OnEnter()
	// OnLeave drops all animations.
	OnLeave()
	// OnFrame runs once per tick before the animations are painted.
	OnFrame()
	OnButtonPressed(id int) Action
	OnButtonReleased(id int) Action
	// Animations returns the active animations in paint order.
	Animations() []animation.Animation
}

// HandleEvent routes e to the matching button callback of s.
func HandleEvent(s State, e event.Event) Action {
	switch e.Kind {
	case event.ButtonPressed:
		return s.OnButtonPressed(e.Button)
	case event.ButtonReleased:
		return s.OnButtonReleased(e.Button)
	default:
		return NoAction
	}
}

// Update runs the state's per-tick bookkeeping and then paints its
// animations into buf, later entries over earlier ones.
func Update(s State, buf *screen.Buffer, dt float64) {
	s.OnFrame()
	for _, a := range s.Animations() {
		a.Update(buf, dt)
	}
}

// Theme holds the configurable colors used by the states.
type Theme struct {
	Glow       geom.Color
	Label      geom.Color
	Divider    geom.Color
	Background [2]geom.Color
}

func DefaultTheme() Theme {
	return Theme{
		Glow:       geom.Blue,
		Label:      geom.White,
		Divider:    geom.RGB(80, 80, 80),
		Background: [2]geom.Color{geom.RGB(0, 0, 40), geom.RGB(40, 0, 20)},
	}
}

// Base carries the animation list and the button indicators shared by all
// states. It answers every event with NoAction.
type Base struct {
	name    string
	buttons button.Indicators
	anims   []animation.Animation
}

func NewBase(name string, buttons button.Indicators) Base {
	return Base{name: name, buttons: buttons}
}

func (b *Base) Name() string { return b.name }

func (b *Base) OnEnter() { b.light() }
func (b *Base) OnLeave() { b.clear() }
func (b *Base) OnFrame() {}

func (b *Base) OnButtonPressed(int) Action  { return NoAction }
func (b *Base) OnButtonReleased(int) Action { return NoAction }

func (b *Base) Animations() []animation.Animation { return b.anims }

// light switches all indicators off and then turns on the given buttons.
func (b *Base) light(ids ...int) {
	b.buttons.SetAllIndicators(false)
	for _, id := range ids {
		b.buttons.SetIndicator(id, true)
	}
}

// show replaces the animation list.
func (b *Base) show(anims ...animation.Animation) {
	b.clear()
	for _, a := range anims {
		a.Start()
	}
	b.anims = anims
}

// replace swaps the animation at index i.
func (b *Base) replace(i int, a animation.Animation) {
	b.anims[i].Stop()
	a.Start()
	b.anims[i] = a
}

func (b *Base) clear() {
	for _, a := range b.anims {
		a.Stop()
	}
	b.anims = nil
}

package state

import "github.com/coreman2200/leuchtwand/internal/button"

const AnimationsName = "Animationen"

// Animations is the slot for free-running visual programs. It has no
// content yet and ignores all buttons.
type Animations struct {
	Base
}

func NewAnimations(buttons button.Indicators) *Animations {
	return &Animations{Base: NewBase(AnimationsName, buttons)}
}

package state

import (
	"github.com/coreman2200/leuchtwand/internal/animation"
	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/geom"
)

const SelectionName = "ProgramSelection"

// Buttons used by the selection menu.
const (
	MenuUp     = button.TopMiddle
	MenuDown   = button.BottomMiddle
	MenuSelect = button.BottomRight
	MenuBack   = button.BottomLeft
)

const (
	glowSpeed      = 2.0
	labelWait      = 1.5
	labelSpeed     = 8.0
	labelIndent    = 1
	selectionLabel = 1
)

// ProgramSelection lets the user pick a program from the catalog. The
// highlighted name scrolls over a breathing glow.
type ProgramSelection struct {
	Base
	programs []string
	selected int
	src      font.Source
	bounds   geom.BBox
	theme    Theme
}

func NewProgramSelection(buttons button.Indicators, src font.Source, bounds geom.BBox, theme Theme, programs []string) *ProgramSelection {
	return &ProgramSelection{
		Base:     NewBase(SelectionName, buttons),
		programs: programs,
		src:      src,
		bounds:   bounds,
		theme:    theme,
	}
}

func (s *ProgramSelection) OnEnter() {
	s.selected = 0
	s.light(MenuUp, MenuDown, MenuSelect, MenuBack)
	s.show(animation.NewBreathingGlow(s.theme.Glow, glowSpeed), s.label())
}

func (s *ProgramSelection) label() animation.Animation {
	y := s.bounds.Min.Y + (s.bounds.Dy()-s.src.Height())/2
	return animation.NewScrollingText(s.src, s.Program(), geom.Pt(s.bounds.Min.X+labelIndent, y), labelWait, labelSpeed, s.theme.Label)
}

// Selected is the index of the highlighted program.
func (s *ProgramSelection) Selected() int { return s.selected }

// Program is the highlighted program name, empty when the catalog is empty.
func (s *ProgramSelection) Program() string {
	if len(s.programs) == 0 {
		return ""
	}
	return s.programs[s.selected]
}

func (s *ProgramSelection) Programs() []string { return s.programs }

func (s *ProgramSelection) move(step int) {
	n := len(s.programs)
	if n == 0 {
		return
	}
	s.selected = ((s.selected+step)%n + n) % n
	if len(s.anims) > selectionLabel {
		s.replace(selectionLabel, s.label())
	}
}

func (s *ProgramSelection) OnButtonPressed(id int) Action {
	switch id {
	case MenuUp:
		s.move(-1)
	case MenuDown:
		s.move(1)
	case MenuSelect:
		if len(s.programs) > 0 {
			return SelectAction(s.Program())
		}
	case MenuBack:
		return BackAction
	}
	return NoAction
}

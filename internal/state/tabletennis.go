package state

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/leuchtwand/internal/animation"
	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/geom"
)

const TableTennisName = "Tischtennis"

// Scoreboard buttons. Player 0 sits on the left, player 1 on the right.
const (
	P0Up       = button.TopLeft
	P0Down     = button.BottomLeft
	P1Up       = button.TopRight
	P1Down     = button.BottomRight
	ScoreReset = button.BottomMiddle
)

const (
	WinScore = 11
	WinLead  = 2

	celebrationSpeed = 120
)

// slotBackground is the list index of player 0's background; player 1's
// follows it.
const slotBackground = 0

// TableTennis is a two player scoreboard. A game is won at WinScore points
// with a lead of at least WinLead; the winner's half then celebrates until
// the scores are reset.
type TableTennis struct {
	Base
	src     font.Source
	bounds  geom.BBox
	theme   Theme
	halves  [2]geom.BBox
	divider int

	scores [2]int
	over   bool
	labels [2]*animation.ScrollingText
}

func NewTableTennis(buttons button.Indicators, src font.Source, bounds geom.BBox, theme Theme) *TableTennis {
	mid := bounds.Min.X + bounds.Dx()/2
	return &TableTennis{
		Base:    NewBase(TableTennisName, buttons),
		src:     src,
		bounds:  bounds,
		theme:   theme,
		divider: mid,
		halves: [2]geom.BBox{
			geom.Rect(bounds.Min.X, bounds.Min.Y, mid, bounds.Max.Y),
			geom.Rect(mid+1, bounds.Min.Y, bounds.Max.X, bounds.Max.Y),
		},
	}
}

func (s *TableTennis) OnEnter() {
	s.scores = [2]int{}
	s.over = false
	s.light(P0Up, P0Down, P1Up, P1Down, ScoreReset)

	y := s.bounds.Min.Y + (s.bounds.Dy()-s.src.Height())/2
	for i := range s.labels {
		s.labels[i] = animation.NewScrollingText(s.src, "0", geom.Pt(0, y), 0, 0, s.theme.Label)
	}
	s.show(
		s.background(0),
		s.background(1),
		animation.NewVerticalLine(s.theme.Divider, s.divider),
		s.labels[0],
		s.labels[1],
	)
	s.refresh()
}

func (s *TableTennis) background(player int) animation.Animation {
	return animation.NewFillColor(s.theme.Background[player]).In(s.halves[player])
}

// refresh updates label text, color and alignment from the scores.
func (s *TableTennis) refresh() {
	for i, l := range s.labels {
		if l == nil {
			return
		}
		l.SetText(strconv.Itoa(s.scores[i]))
		p := l.TopLeft()
		if i == 0 {
			// right-aligned against the divider
			p.X = s.halves[0].Max.X - 1 - l.Width()
		} else {
			p.X = s.halves[1].Min.X + 1
		}
		l.MoveTo(p)

		other := s.scores[1-i]
		switch {
		case s.scores[i] > other:
			l.SetColor(geom.Green)
		case s.scores[i] < other:
			l.SetColor(geom.Red)
		default:
			l.SetColor(s.theme.Label)
		}
	}
}

func (s *TableTennis) Scores() [2]int { return s.scores }
func (s *TableTennis) GameOver() bool { return s.over }

// Label returns the score label of a player.
func (s *TableTennis) Label(player int) *animation.ScrollingText { return s.labels[player] }

// Background returns the animation painted beneath a player's score.
func (s *TableTennis) Background(player int) animation.Animation {
	return s.anims[slotBackground+player]
}

func (s *TableTennis) score(player, delta int) {
	if s.over {
		return
	}
	s.scores[player] += delta
	if s.scores[player] < 0 {
		s.scores[player] = 0
	}
	for p := range s.scores {
		if s.scores[p] >= WinScore && s.scores[p]-s.scores[1-p] >= WinLead {
			s.over = true
			log.Debug().Int("winner", p).Ints("scores", s.scores[:]).Msg("table tennis game over")
			s.replace(slotBackground+p, animation.NewKaleidoscope(celebrationSpeed).In(s.halves[p]))
		}
	}
	s.refresh()
}

func (s *TableTennis) reset() {
	s.scores = [2]int{}
	s.over = false
	s.replace(slotBackground, s.background(0))
	s.replace(slotBackground+1, s.background(1))
	s.refresh()
}

func (s *TableTennis) OnButtonPressed(id int) Action {
	switch id {
	case P0Up:
		s.score(0, 1)
	case P0Down:
		s.score(0, -1)
	case P1Up:
		s.score(1, 1)
	case P1Down:
		s.score(1, -1)
	case ScoreReset:
		if s.scores == [2]int{} {
			return BackAction
		}
		s.reset()
	}
	return NoAction
}

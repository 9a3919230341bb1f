package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/leuchtwand/internal/animation"
	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/event"
	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/screen"
)

var wall = geom.Rect(0, 0, 21, 12)

// probe records its lifecycle and paints one pixel.
type probe struct {
	started, stopped int
	updates          int
	at               geom.Point
	color            geom.Color
}

func (p *probe) Start() { p.started++ }
func (p *probe) Stop()  { p.stopped++ }
func (p *probe) Update(buf *screen.Buffer, _ float64) {
	p.updates++
	buf.Set(p.at, p.color)
}

func TestHandleEventDispatch(t *testing.T) {
	s := NewIdle(&button.Base{})
	s.OnEnter()
	assert.Equal(t, WakeupAction, HandleEvent(s, event.Pressed(3)))
	assert.Equal(t, NoAction, HandleEvent(s, event.Released(3)))
	assert.Equal(t, NoAction, HandleEvent(s, event.Event{}))
}

func TestBaseLayersAndLifecycle(t *testing.T) {
	b := NewBase("test", &button.Base{})
	under := &probe{at: geom.Pt(1, 1), color: geom.Red}
	over := &probe{at: geom.Pt(1, 1), color: geom.Green}
	b.show(under, over)
	assert.Equal(t, 1, under.started)

	buf := screen.NewBuffer(3, 3)
	Update(&b, buf, 0.1)
	assert.Equal(t, geom.Green, buf.At(geom.Pt(1, 1)))
	assert.Equal(t, 1, under.updates)

	b.OnLeave()
	assert.Empty(t, b.Animations())
	assert.Equal(t, 1, under.stopped)
	assert.Equal(t, 1, over.stopped)
}

func TestRegistryKeepsOrder(t *testing.T) {
	ind := &button.Base{}
	r := NewRegistry()
	r.Register(NewTableTennis(ind, font.Tiny(), wall, DefaultTheme()))
	r.Register(NewAnimations(ind))
	r.Register(nil)
	again := NewTableTennis(ind, font.Tiny(), wall, DefaultTheme())
	r.Register(again)

	assert.Equal(t, []string{TableTennisName, AnimationsName}, r.List())
	assert.Equal(t, 2, r.Len())
	got, ok := r.Get(TableTennisName)
	require.True(t, ok)
	assert.Same(t, again, got)
	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestIdleBlanksAfterThreshold(t *testing.T) {
	ind := &button.Base{}
	ind.SetAllIndicators(true)
	s := NewIdle(ind)
	s.OnEnter()
	assert.Equal(t, [button.Count]bool{}, ind.Indicators())

	buf := screen.NewBuffer(21, 12)
	for i := 0; i < BlankAfter-1; i++ {
		Update(s, buf, 1.0/30)
	}
	require.Len(t, s.Animations(), 1)
	assert.IsType(t, &animation.Kaleidoscope{}, s.Animations()[0])
	assert.NotEqual(t, geom.Black, buf.At(geom.Pt(0, 0)))

	Update(s, buf, 1.0/30)
	require.Len(t, s.Animations(), 1)
	assert.Equal(t, animation.NewFillColor(geom.Black), s.Animations()[0])
	for _, p := range buf.Bounds().Points() {
		assert.Equal(t, geom.Black, buf.At(p))
	}

	// stays blank
	Update(s, buf, 1.0/30)
	assert.Equal(t, animation.NewFillColor(geom.Black), s.Animations()[0])

	s.OnEnter()
	assert.Zero(t, s.Frames())
	assert.IsType(t, &animation.Kaleidoscope{}, s.Animations()[0])
}

func TestIdleWakesOnAnyPress(t *testing.T) {
	s := NewIdle(&button.Base{})
	s.OnEnter()
	buf := screen.NewBuffer(21, 12)
	for i := 0; i < 50; i++ {
		Update(s, buf, 1.0/30)
	}
	for id := 0; id < button.Count; id++ {
		assert.Equal(t, WakeupAction, s.OnButtonPressed(id))
	}
	assert.Equal(t, 50, s.Frames())
}

func newSelection(programs ...string) (*ProgramSelection, *button.Base) {
	ind := &button.Base{}
	s := NewProgramSelection(ind, font.Tiny(), wall, DefaultTheme(), programs)
	s.OnEnter()
	return s, ind
}

func TestProgramSelectionCycles(t *testing.T) {
	s, ind := newSelection("A", "B", "C")
	assert.True(t, ind.Indicator(MenuUp))
	assert.True(t, ind.Indicator(MenuDown))
	assert.True(t, ind.Indicator(MenuSelect))
	assert.True(t, ind.Indicator(MenuBack))
	assert.False(t, ind.Indicator(button.TopLeft))

	assert.Equal(t, NoAction, s.OnButtonPressed(MenuDown))
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, SelectAction("B"), s.OnButtonPressed(MenuSelect))

	s.OnButtonPressed(MenuDown)
	s.OnButtonPressed(MenuDown)
	assert.Equal(t, 0, s.Selected())

	s.OnButtonPressed(MenuUp)
	assert.Equal(t, 2, s.Selected())
	assert.Equal(t, "C", s.Program())

	assert.Equal(t, BackAction, s.OnButtonPressed(MenuBack))
	assert.Equal(t, NoAction, s.OnButtonPressed(button.TopLeft))
	assert.Equal(t, NoAction, s.OnButtonReleased(MenuSelect))
}

func TestProgramSelectionRebuildsLabel(t *testing.T) {
	s, _ := newSelection("Tischtennis", "Animationen")
	require.Len(t, s.Animations(), 2)
	assert.IsType(t, &animation.BreathingGlow{}, s.Animations()[0])

	buf := screen.NewBuffer(21, 12)
	for i := 0; i < 90; i++ {
		Update(s, buf, 1.0/30)
	}
	old := s.Animations()[1].(*animation.ScrollingText)
	assert.Equal(t, "Tischtennis", old.Text())
	assert.NotZero(t, old.Offset())

	s.OnButtonPressed(MenuDown)
	label := s.Animations()[1].(*animation.ScrollingText)
	assert.Equal(t, "Animationen", label.Text())
	assert.Zero(t, label.Offset())
}

func TestProgramSelectionResetsOnEnter(t *testing.T) {
	s, _ := newSelection("A", "B")
	s.OnButtonPressed(MenuDown)
	s.OnLeave()
	assert.Empty(t, s.Animations())
	s.OnEnter()
	assert.Equal(t, 0, s.Selected())
}

func TestProgramSelectionEmptyCatalog(t *testing.T) {
	s, _ := newSelection()
	assert.Equal(t, NoAction, s.OnButtonPressed(MenuDown))
	assert.Equal(t, NoAction, s.OnButtonPressed(MenuSelect))
	assert.Equal(t, "", s.Program())
}

func newTableTennis() (*TableTennis, *button.Base) {
	ind := &button.Base{}
	s := NewTableTennis(ind, font.Tiny(), wall, DefaultTheme())
	s.OnEnter()
	return s, ind
}

func press(s State, id, n int) {
	for i := 0; i < n; i++ {
		s.OnButtonPressed(id)
	}
}

func TestTableTennisWinAndReset(t *testing.T) {
	s, ind := newTableTennis()
	for _, id := range []int{P0Up, P0Down, P1Up, P1Down, ScoreReset} {
		assert.True(t, ind.Indicator(id))
	}
	assert.IsType(t, &animation.FillColor{}, s.Background(0))

	press(s, P0Up, 10)
	assert.False(t, s.GameOver())
	press(s, P0Up, 1)
	assert.True(t, s.GameOver())
	assert.Equal(t, [2]int{11, 0}, s.Scores())
	assert.IsType(t, &animation.Kaleidoscope{}, s.Background(0))
	assert.IsType(t, &animation.FillColor{}, s.Background(1))

	// inert while over
	press(s, P0Up, 1)
	press(s, P1Up, 1)
	press(s, P0Down, 1)
	assert.Equal(t, [2]int{11, 0}, s.Scores())

	assert.Equal(t, NoAction, s.OnButtonPressed(ScoreReset))
	assert.Equal(t, [2]int{0, 0}, s.Scores())
	assert.False(t, s.GameOver())
	assert.IsType(t, &animation.FillColor{}, s.Background(0))

	assert.Equal(t, BackAction, s.OnButtonPressed(ScoreReset))
}

func TestTableTennisNeedsLead(t *testing.T) {
	s, _ := newTableTennis()
	press(s, P0Up, 10)
	press(s, P1Up, 10)
	press(s, P0Up, 1)
	assert.False(t, s.GameOver())
	press(s, P1Up, 1)
	press(s, P1Up, 1)
	assert.False(t, s.GameOver())
	press(s, P1Up, 1)
	assert.True(t, s.GameOver())
	assert.Equal(t, [2]int{11, 13}, s.Scores())
	assert.IsType(t, &animation.Kaleidoscope{}, s.Background(1))
	assert.IsType(t, &animation.FillColor{}, s.Background(0))
}

func TestTableTennisDownStopsAtZero(t *testing.T) {
	s, _ := newTableTennis()
	press(s, P1Down, 3)
	assert.Equal(t, [2]int{0, 0}, s.Scores())
	press(s, P1Up, 2)
	press(s, P1Down, 1)
	assert.Equal(t, [2]int{0, 1}, s.Scores())
}

func TestTableTennisLabels(t *testing.T) {
	s, _ := newTableTennis()
	l0, l1 := s.Label(0), s.Label(1)
	assert.Equal(t, geom.White, labelColor(t, s, 0))
	assert.Equal(t, 6, l0.TopLeft().X)
	assert.Equal(t, 12, l1.TopLeft().X)

	press(s, P0Up, 10)
	assert.Equal(t, "10", l0.Text())
	// two digits move the left label so it still ends next to the divider
	assert.Equal(t, 2, l0.TopLeft().X)
	assert.Equal(t, 12, l1.TopLeft().X)
	assert.Equal(t, geom.Green, labelColor(t, s, 0))
	assert.Equal(t, geom.Red, labelColor(t, s, 1))
}

// labelColor renders the state and returns the color of the label's first
// lit pixel.
func labelColor(t *testing.T, s *TableTennis, player int) geom.Color {
	t.Helper()
	buf := screen.NewBuffer(21, 12)
	Update(s, buf, 0)
	l := s.Label(player)
	g := font.Tiny().Glyph(rune(l.Text()[0]))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsSet(x, y) {
				return buf.At(l.TopLeft().Add(geom.Pt(x, y)))
			}
		}
	}
	t.Fatal("label has no lit pixel")
	return geom.Black
}

func TestTableTennisLayout(t *testing.T) {
	s, _ := newTableTennis()
	buf := screen.NewBuffer(21, 12)
	Update(s, buf, 0)
	theme := DefaultTheme()
	assert.Equal(t, theme.Divider, buf.At(geom.Pt(10, 0)))
	assert.Equal(t, theme.Background[0], buf.At(geom.Pt(0, 0)))
	assert.Equal(t, theme.Background[1], buf.At(geom.Pt(20, 11)))
}

func TestAnimationsStub(t *testing.T) {
	ind := &button.Base{}
	ind.SetAllIndicators(true)
	s := NewAnimations(ind)
	s.OnEnter()
	assert.Empty(t, s.Animations())
	assert.Equal(t, [button.Count]bool{}, ind.Indicators())
	for id := 0; id < button.Count; id++ {
		assert.Equal(t, NoAction, HandleEvent(s, event.Pressed(id)))
		assert.Equal(t, NoAction, HandleEvent(s, event.Released(id)))
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "select(B)", SelectAction("B").String())
	assert.Equal(t, "back", BackAction.String())
	assert.Equal(t, "none", NoAction.String())
}

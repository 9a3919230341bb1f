package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/screen"
)

// checkerSource draws every glyph as a checkerboard of the configured width.
type checkerSource struct {
	widths map[rune]int
	height int
	calls  []rune
}

func (c *checkerSource) Glyph(r rune) *font.Bitmap {
	c.calls = append(c.calls, r)
	b := font.NewBitmap(c.GlyphWidth(r), c.height)
	for y := 0; y < c.height; y++ {
		for x := 0; x < b.Width(); x++ {
			b.Set(x, y, (x+y)%2 == 0)
		}
	}
	return b
}

func (c *checkerSource) GlyphWidth(r rune) int {
	if w, ok := c.widths[r]; ok {
		return w
	}
	return 3
}

func (c *checkerSource) TextWidth(s string) int {
	w, n := 0, 0
	for _, r := range s {
		w += c.GlyphWidth(r)
		n++
	}
	if n > 1 {
		w += n - 1
	}
	return w
}

func (c *checkerSource) Has(rune) bool { return true }
func (c *checkerSource) Height() int   { return c.height }

func TestFillColor(t *testing.T) {
	buf := screen.NewBuffer(4, 3)
	NewFillColor(geom.Red).Update(buf, 0.1)
	assert.Equal(t, geom.Red, buf.At(geom.Pt(3, 2)))

	NewFillColor(geom.Green).In(geom.Rect(2, 0, 10, 1)).Update(buf, 0.1)
	assert.Equal(t, geom.Green, buf.At(geom.Pt(2, 0)))
	assert.Equal(t, geom.Green, buf.At(geom.Pt(3, 0)))
	assert.Equal(t, geom.Red, buf.At(geom.Pt(1, 0)))
	assert.Equal(t, geom.Red, buf.At(geom.Pt(2, 1)))
}

func TestVerticalLine(t *testing.T) {
	buf := screen.NewBuffer(5, 3)
	NewVerticalLine(geom.White, 2).Update(buf, 0)
	for y := 0; y < 3; y++ {
		assert.Equal(t, geom.White, buf.At(geom.Pt(2, y)))
		assert.Equal(t, geom.Black, buf.At(geom.Pt(1, y)))
	}
	// off-buffer columns draw nothing
	assert.NotPanics(t, func() { NewVerticalLine(geom.White, 9).Update(buf, 0) })
}

func TestRainbowCycleFormula(t *testing.T) {
	buf := screen.NewBuffer(5, 5)
	r := NewRainbowCycle(30)
	r.Update(buf, 0.5)
	assert.Equal(t, 15.0, r.Position())
	assert.Equal(t, geom.HueToColor(65), buf.At(geom.Pt(2, 3)))
	assert.Equal(t, geom.HueToColor(15), buf.At(geom.Pt(0, 0)))

	// hue wraps past 360
	r.Update(buf, 11)
	assert.Equal(t, 345.0, r.Position())
	assert.Equal(t, geom.HueToColor(5), buf.At(geom.Pt(1, 1)))
}

func TestRainbowCycleRegion(t *testing.T) {
	buf := screen.NewBuffer(4, 4)
	NewRainbowCycle(0).In(geom.Rect(0, 0, 2, 2)).Update(buf, 1)
	assert.Equal(t, geom.HueToColor(0), buf.At(geom.Pt(0, 0)))
	assert.Equal(t, geom.Black, buf.At(geom.Pt(2, 2)))
}

func TestKaleidoscopeCenter(t *testing.T) {
	buf := screen.NewBuffer(3, 3)
	k := NewKaleidoscope(0)
	k.Update(buf, 1)
	// center of a 3x3 buffer is (1.5, 1.5)
	want := geom.HueToColor(math.Hypot(0.5, 0.5) * 10)
	assert.Equal(t, want, buf.At(geom.Pt(1, 1)))
	assert.Equal(t, want, buf.At(geom.Pt(2, 2)))

	reg := screen.NewBuffer(6, 2)
	NewKaleidoscope(0).In(geom.Rect(2, 0, 4, 2)).Update(reg, 1)
	// region center is (3, 1)
	assert.Equal(t, geom.HueToColor(math.Hypot(1, 1)*10), reg.At(geom.Pt(2, 0)))
	assert.Equal(t, geom.HueToColor(0), reg.At(geom.Pt(3, 1)))
	assert.Equal(t, geom.Black, reg.At(geom.Pt(0, 0)))
}

func TestKaleidoscopeReverseStaysInRange(t *testing.T) {
	buf := screen.NewBuffer(21, 12)
	k := NewKaleidoscope(-100)
	for i := 0; i < 50; i++ {
		k.Update(buf, 1.0/30)
	}
	assert.Less(t, k.Angle(), 0.0)
	for _, p := range buf.Bounds().Points() {
		assert.NotEqual(t, geom.Black, buf.At(p), "pixel %v", p)
	}
}

func TestHueAnimationsAreDeterministic(t *testing.T) {
	dts := []float64{0.033, 0.034, 0.5, 0, 0.016, 1.25}
	run := func(a Animation) (*screen.Buffer, []float64) {
		buf := screen.NewBuffer(21, 12)
		var trace []float64
		for _, dt := range dts {
			a.Update(buf, dt)
			switch v := a.(type) {
			case *RainbowCycle:
				trace = append(trace, v.Position())
			case *Kaleidoscope:
				trace = append(trace, v.Angle())
			}
		}
		return buf, trace
	}

	for _, mk := range []func() Animation{
		func() Animation { return NewRainbowCycle(40) },
		func() Animation { return NewKaleidoscope(75) },
	} {
		b1, tr1 := run(mk())
		b2, tr2 := run(mk())
		assert.Equal(t, b1, b2)
		assert.Equal(t, tr1, tr2)
		for i := 1; i < len(tr1); i++ {
			assert.GreaterOrEqual(t, tr1[i], tr1[i-1])
		}
	}
}

func TestBreathingGlow(t *testing.T) {
	buf := screen.NewBuffer(2, 2)
	g := NewBreathingGlow(geom.Color{R: 200, G: 100, B: 3}, math.Pi/2)

	// phase 0 is half brightness, truncated
	g.Update(buf, 0)
	assert.Equal(t, geom.Color{R: 100, G: 50, B: 1}, buf.At(geom.Pt(1, 1)))

	g.Update(buf, 1)
	assert.InDelta(t, 1.0, g.Brightness(), 1e-12)
	assert.Equal(t, geom.Color{R: 200, G: 100, B: 3}, buf.At(geom.Pt(0, 0)))

	g.Update(buf, 2)
	assert.InDelta(t, 0.0, g.Brightness(), 1e-12)
	assert.Equal(t, geom.Black, buf.At(geom.Pt(0, 1)))
}

func TestScrollingTextWaitCarriesOvershoot(t *testing.T) {
	src := &checkerSource{height: 2}
	buf := screen.NewBuffer(21, 12)
	s := NewScrollingText(src, "AB", geom.Pt(4, 1), 1.0, 10, geom.Red)

	s.Update(buf, 0.5)
	assert.Equal(t, 0.0, s.Offset())
	assert.Equal(t, geom.Red, buf.At(geom.Pt(4, 1)))

	// 0.25s of this tick remain after the wait
	s.Update(buf, 0.75)
	assert.Equal(t, 2.5, s.Offset())

	s.Update(buf, 0.1)
	assert.InDelta(t, 3.5, s.Offset(), 1e-9)
}

func TestScrollingTextWraps(t *testing.T) {
	src := &checkerSource{widths: map[rune]int{'W': 50}, height: 2}
	buf := screen.NewBuffer(21, 12)
	s := NewScrollingText(src, "W", geom.Pt(0, 0), 0, 1, geom.Green)
	require.Equal(t, 50, s.Width())

	s.Update(buf, 50)
	assert.Equal(t, 50.0, s.Offset())

	buf.Fill(geom.Black)
	s.Update(buf, 1)
	// start fell to -51: one wrap by textWidth + bufferWidth
	assert.Equal(t, 51.0-71.0, s.Offset())
	assert.Equal(t, geom.Green, buf.At(geom.Pt(20, 0)))
	assert.Equal(t, geom.Black, buf.At(geom.Pt(19, 0)))
}

func TestScrollingTextTransparentAndClipped(t *testing.T) {
	src := &checkerSource{height: 2}
	buf := screen.NewBuffer(6, 3)
	buf.Fill(geom.Blue)
	s := NewScrollingText(src, "AB", geom.Pt(-1, 2), 0, 0, geom.Red)
	assert.NotPanics(t, func() { s.Update(buf, 0.1) })

	// glyph A spans x -1..1 on rows 2..3; row 3 is off the buffer
	assert.Equal(t, geom.Red, buf.At(geom.Pt(1, 2)))
	assert.Equal(t, geom.Blue, buf.At(geom.Pt(0, 2)))
	// gap column stays untouched
	assert.Equal(t, geom.Blue, buf.At(geom.Pt(2, 2)))
	// glyph B starts at x=3
	assert.Equal(t, geom.Red, buf.At(geom.Pt(3, 2)))
	assert.Equal(t, geom.Blue, buf.At(geom.Pt(3, 1)))
}

func TestScrollingTextStopsAtRightEdge(t *testing.T) {
	src := &checkerSource{height: 1}
	buf := screen.NewBuffer(5, 1)
	s := NewScrollingText(src, "ABCDEF", geom.Pt(0, 0), 0, 0, geom.Red)
	s.Update(buf, 0)
	// A at 0, B at 4, C would start at 8
	assert.Equal(t, []rune{'A', 'B'}, src.calls)
}

func TestScrollingTextSetText(t *testing.T) {
	src := &checkerSource{height: 1}
	s := NewScrollingText(src, "1", geom.Pt(0, 0), 0, 0, geom.White)
	assert.Equal(t, 3, s.Width())
	s.SetText("10")
	assert.Equal(t, 7, s.Width())
	assert.Equal(t, "10", s.Text())
	s.MoveTo(geom.Pt(2, 3))
	assert.Equal(t, geom.Pt(2, 3), s.TopLeft())
}

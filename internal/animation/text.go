package animation

import (
	"math"

	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/screen"
)

// ScrollingText draws a line of text that holds still for an initial wait
// and then scrolls left forever, re-entering from the right edge. With a
// speed of zero it is a static label. Unlit glyph pixels are transparent.
type ScrollingText struct {
	lifecycle
	src     font.Source
	text    string
	width   int
	topLeft geom.Point
	color   geom.Color
	wait    float64
	speed   float64
	offset  float64
}

func NewScrollingText(src font.Source, text string, topLeft geom.Point, wait, speed float64, c geom.Color) *ScrollingText {
	return &ScrollingText{
		src:     src,
		text:    text,
		width:   src.TextWidth(text),
		topLeft: topLeft,
		color:   c,
		wait:    wait,
		speed:   speed,
	}
}

func (s *ScrollingText) Text() string        { return s.text }
func (s *ScrollingText) Width() int          { return s.width }
func (s *ScrollingText) Offset() float64     { return s.offset }
func (s *ScrollingText) TopLeft() geom.Point { return s.topLeft }

// SetText replaces the text in place; scroll position is kept.
func (s *ScrollingText) SetText(text string) {
	s.text = text
	s.width = s.src.TextWidth(text)
}

func (s *ScrollingText) SetColor(c geom.Color) { s.color = c }

func (s *ScrollingText) MoveTo(p geom.Point) { s.topLeft = p }

// start is the x coordinate of the first glyph for the current offset.
func (s *ScrollingText) start() int {
	return s.topLeft.X - int(math.Floor(s.offset))
}

func (s *ScrollingText) Update(buf *screen.Buffer, dt float64) {
	if s.wait > 0 {
		s.wait -= dt
		if s.wait > 0 {
			dt = 0
		} else {
			// the part of dt left after the wait expired scrolls
			dt = -s.wait
			s.wait = 0
		}
	}
	s.offset += s.speed * dt

	x := s.start()
	if x < -s.width {
		s.offset -= float64(s.width + buf.Width())
		x = s.start()
	}

	for _, r := range s.text {
		if x >= buf.Width() {
			break
		}
		g := s.src.Glyph(r)
		s.blit(buf, g, x)
		x += g.Width() + font.Spacing
	}
}

func (s *ScrollingText) blit(buf *screen.Buffer, g *font.Bitmap, x0 int) {
	for gy := 0; gy < g.Height(); gy++ {
		for gx := 0; gx < g.Width(); gx++ {
			if !g.IsSet(gx, gy) {
				continue
			}
			p := geom.Pt(x0+gx, s.topLeft.Y+gy)
			if buf.Contains(p) {
				buf.Set(p, s.color)
			}
		}
	}
}

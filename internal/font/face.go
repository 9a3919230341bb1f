package font

import (
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// alphaThreshold decides which antialiased pixels count as lit.
const alphaThreshold = 0x80

// FaceSource rasterizes glyphs from any x/image font face. Bitmaps are
// rendered once per rune and cached.
type FaceSource struct {
	face   xfont.Face
	ascent int
	height int
	covers func(rune) bool

	mu     sync.Mutex
	glyphs map[rune]*Bitmap
}

func NewFaceSource(face xfont.Face) *FaceSource {
	m := face.Metrics()
	return &FaceSource{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: m.Ascent.Ceil() + m.Descent.Ceil(),
		glyphs: make(map[rune]*Bitmap),
	}
}

func (s *FaceSource) Height() int { return s.height }

// WithCoverage replaces the face's own coverage report. Some faces claim
// every rune and draw a replacement glyph for the ones they lack.
func (s *FaceSource) WithCoverage(covers func(rune) bool) *FaceSource {
	s.covers = covers
	return s
}

func (s *FaceSource) Has(r rune) bool {
	if s.covers != nil {
		return s.covers(r)
	}
	_, ok := s.face.GlyphAdvance(r)
	return ok
}

func (s *FaceSource) Glyph(r rune) *Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.glyphs[r]; ok {
		return b
	}
	b := s.render(r)
	s.glyphs[r] = b
	return b
}

func (s *FaceSource) render(r rune) *Bitmap {
	if !s.Has(r) {
		r = '?'
	}
	adv, _ := s.face.GlyphAdvance(r)
	w := adv.Ceil()
	b := NewBitmap(w, s.height)
	if w == 0 {
		return b
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, s.height))
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: s.face,
		Dot:  fixed.P(0, s.ascent),
	}
	d.DrawString(string(r))
	for y := 0; y < s.height; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, dst.AlphaAt(x, y).A >= alphaThreshold)
		}
	}
	return b
}

func (s *FaceSource) GlyphWidth(r rune) int  { return s.Glyph(r).Width() }
func (s *FaceSource) TextWidth(t string) int { return textWidth(s, t) }

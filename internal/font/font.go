// Package font provides the monochrome glyph bitmaps used to render text
// on the wall.
package font

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

// Bitmap is a single glyph. All glyphs of one source share a height.
type Bitmap struct {
	w, h int
	bits []bool
}

func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{w: w, h: h, bits: make([]bool, w*h)}
}

func (b *Bitmap) Width() int  { return b.w }
func (b *Bitmap) Height() int { return b.h }

func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.bits[y*b.w+x] = on
}

// IsSet reports whether the pixel at (x, y) is lit. Coordinates outside the
// glyph are never lit.
func (b *Bitmap) IsSet(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.bits[y*b.w+x]
}

// Source maps characters to bitmaps.
type Source interface {
	// Glyph returns the bitmap for r. Sources substitute a replacement glyph
	// for characters they lack; use Has or Validate to catch those early.
	Glyph(r rune) *Bitmap
	GlyphWidth(r rune) int
	// TextWidth is the sum of all glyph widths plus one pixel between
	// neighbouring glyphs.
	TextWidth(s string) int
	Has(r rune) bool
	Height() int
}

// Spacing is the gap in pixels between two glyphs.
const Spacing = 1

func textWidth(src Source, s string) int {
	w, n := 0, 0
	for _, r := range s {
		w += src.GlyphWidth(r)
		n++
	}
	if n > 1 {
		w += (n - 1) * Spacing
	}
	return w
}

// Validate checks that every character of every text has a glyph.
func Validate(src Source, texts ...string) error {
	for _, t := range texts {
		for _, r := range t {
			if !src.Has(r) {
				return fmt.Errorf("font: no glyph for %q in %q", r, t)
			}
		}
	}
	return nil
}

// Names lists the built-in faces accepted by Load.
var Names = []string{"tiny", "basic", "gomono"}

// Load returns a glyph source. A non-empty path loads a TrueType file at the
// given point size; otherwise name selects one of the built-in faces.
func Load(name, path string, size float64) (Source, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
		return loadTTF(data, size)
	}
	switch strings.ToLower(name) {
	case "", "tiny":
		return Tiny(), nil
	case "basic":
		return NewFaceSource(basicfont.Face7x13).WithCoverage(basicCovers), nil
	case "gomono":
		return loadTTF(gomono.TTF, size)
	default:
		return nil, fmt.Errorf("font: unknown face %q (want one of %s)", name, strings.Join(Names, ", "))
	}
}

func loadTTF(data []byte, size float64) (Source, error) {
	if size <= 0 {
		size = 8
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse truetype: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	return NewFaceSource(face).WithCoverage(func(r rune) bool { return f.Index(r) != 0 }), nil
}

func basicCovers(r rune) bool {
	for _, rg := range basicfont.Face7x13.Ranges {
		if rg.Low <= r && r < rg.High {
			return true
		}
	}
	return false
}

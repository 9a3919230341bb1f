package font

import "unicode"

// tinyRows holds a five pixel high font. Lowercase letters share the
// uppercase shapes.
var tinyRows = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", ".##", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'B': {"##.", "#.#", "##.", "#.#", "##."},
	'C': {".##", "#..", "#..", "#..", ".##"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'G': {".##", "#..", "#.#", "#.#", ".##"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"..#", "..#", "..#", "#.#", ".#."},
	'K': {"#.#", "#.#", "##.", "#.#", "#.#"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#..#", "##.#", "#.##", "#..#", "#..#"},
	'O': {".#.", "#.#", "#.#", "#.#", ".#."},
	'P': {"##.", "#.#", "##.", "#..", "#.."},
	'Q': {".#.", "#.#", "#.#", "##.", ".##"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {".##", "#..", ".#.", "..#", "##."},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'U': {"#.#", "#.#", "#.#", "#.#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'W': {"#...#", "#...#", "#.#.#", "##.##", "#...#"},
	'X': {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y': {"#.#", "#.#", ".#.", ".#.", ".#."},
	'Z': {"###", "..#", ".#.", "#..", "###"},
	' ': {"..", "..", "..", "..", ".."},
	'-': {"...", "...", "###", "...", "..."},
	'.': {".", ".", ".", ".", "#"},
	':': {".", "#", ".", "#", "."},
	'!': {"#", "#", "#", ".", "#"},
	'?': {"###", "..#", ".#.", "...", ".#."},
}

// TinyHeight is the height of every glyph in the tiny font.
const TinyHeight = 5

type tiny struct {
	glyphs map[rune]*Bitmap
}

var tinyFont = buildTiny()

func buildTiny() *tiny {
	t := &tiny{glyphs: make(map[rune]*Bitmap, len(tinyRows))}
	for r, rows := range tinyRows {
		b := NewBitmap(len(rows[0]), TinyHeight)
		for y, row := range rows {
			for x, c := range row {
				b.Set(x, y, c == '#')
			}
		}
		t.glyphs[r] = b
	}
	return t
}

// Tiny returns the built-in 5 pixel font. It fits two score digits into
// half of a 21 pixel wide wall.
func Tiny() Source { return tinyFont }

func (t *tiny) lookup(r rune) (*Bitmap, bool) {
	b, ok := t.glyphs[unicode.ToUpper(r)]
	return b, ok
}

func (t *tiny) Glyph(r rune) *Bitmap {
	if b, ok := t.lookup(r); ok {
		return b
	}
	return t.glyphs['?']
}

func (t *tiny) GlyphWidth(r rune) int { return t.Glyph(r).Width() }
func (t *tiny) TextWidth(s string) int { return textWidth(t, s) }

func (t *tiny) Has(r rune) bool {
	_, ok := t.lookup(r)
	return ok
}

func (t *tiny) Height() int { return TinyHeight }

package screen

import "github.com/coreman2200/leuchtwand/internal/geom"

// Buffer is a fixed size width×height grid of colors stored row-major.
// Animations write into it, drivers read it on flush.
type Buffer struct {
	width, height int
	pix           []geom.Color
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]geom.Color, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) Bounds() geom.BBox { return geom.Rect(0, 0, b.width, b.height) }

func (b *Buffer) Contains(p geom.Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Set writes a pixel. p must lie inside the buffer.
func (b *Buffer) Set(p geom.Point, c geom.Color) {
	if !b.Contains(p) {
		panic("screen: point out of bounds")
	}
	b.pix[p.Y*b.width+p.X] = c
}

func (b *Buffer) At(p geom.Point) geom.Color {
	return b.pix[p.Y*b.width+p.X]
}

func (b *Buffer) Fill(c geom.Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// FillRect fills the part of r that lies inside the buffer.
func (b *Buffer) FillRect(r geom.BBox, c geom.Color) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.pix[y*b.width : (y+1)*b.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = c
		}
	}
}

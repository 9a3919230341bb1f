// Package animation holds the units that paint the wall over time. Each
// animation owns only its own phase state and writes into the frame buffer
// passed to Update, optionally restricted to a region.
package animation

import (
	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/screen"
)

// Animation is advanced exactly once per tick. dt is the elapsed time in
// seconds since the previous tick.
type Animation interface {
	Start()
	Stop()
	Update(buf *screen.Buffer, dt float64)
}

// lifecycle provides no-op Start and Stop.
type lifecycle struct{}

func (lifecycle) Start() {}
func (lifecycle) Stop()  {}

// area is an optional region restriction. The zero value targets the whole
// buffer.
type area struct {
	r *geom.BBox
}

func (a *area) set(r geom.BBox) { a.r = &r }

// bounds is the full target region, which may extend past the buffer.
func (a area) bounds(buf *screen.Buffer) geom.BBox {
	if a.r == nil {
		return buf.Bounds()
	}
	return *a.r
}

// points lists the target pixels that lie inside the buffer.
func (a area) points(buf *screen.Buffer) []geom.Point {
	return a.bounds(buf).Intersect(buf.Bounds()).Points()
}

// FillColor paints a solid color every tick.
type FillColor struct {
	lifecycle
	area
	Color geom.Color
}

func NewFillColor(c geom.Color) *FillColor { return &FillColor{Color: c} }

// In restricts the fill to r.
func (f *FillColor) In(r geom.BBox) *FillColor {
	f.set(r)
	return f
}

func (f *FillColor) Update(buf *screen.Buffer, _ float64) {
	buf.FillRect(f.bounds(buf), f.Color)
}

// VerticalLine paints column X over the full buffer height.
type VerticalLine struct {
	lifecycle
	Color geom.Color
	X     int
}

func NewVerticalLine(c geom.Color, x int) *VerticalLine {
	return &VerticalLine{Color: c, X: x}
}

func (v *VerticalLine) Update(buf *screen.Buffer, _ float64) {
	buf.FillRect(geom.Rect(v.X, 0, v.X+1, buf.Height()), v.Color)
}

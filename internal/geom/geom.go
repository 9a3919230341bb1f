package geom

import "math"

// Point is an integer pixel coordinate. Arithmetic is unchecked; callers
// validate against buffer bounds before writing.
type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance from p to (x, y).
func (p Point) Dist(x, y float64) float64 {
	return math.Hypot(float64(p.X)-x, float64(p.Y)-y)
}

// BBox is a half-open rectangle: Min is inside, Max is not.
type BBox struct{ Min, Max Point }

// Rect returns the box spanning [x0,x1) × [y0,y1). Swapped corners are
// normalized so that Min <= Max holds.
func Rect(x0, y0, x1, y1 int) BBox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return BBox{Min: Point{x0, y0}, Max: Point{x1, y1}}
}

func (b BBox) Dx() int { return b.Max.X - b.Min.X }
func (b BBox) Dy() int { return b.Max.Y - b.Min.Y }

func (b BBox) Empty() bool { return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y }

func (b BBox) Contains(p Point) bool {
	return b.Min.X <= p.X && p.X < b.Max.X && b.Min.Y <= p.Y && p.Y < b.Max.Y
}

// Intersect returns the largest box contained by both b and o. The result
// may be empty.
func (b BBox) Intersect(o BBox) BBox {
	if b.Min.X < o.Min.X {
		b.Min.X = o.Min.X
	}
	if b.Min.Y < o.Min.Y {
		b.Min.Y = o.Min.Y
	}
	if b.Max.X > o.Max.X {
		b.Max.X = o.Max.X
	}
	if b.Max.Y > o.Max.Y {
		b.Max.Y = o.Max.Y
	}
	if b.Empty() {
		return BBox{}
	}
	return b
}

// Points lists the interior points in row-major order.
func (b BBox) Points() []Point {
	if b.Empty() {
		return nil
	}
	out := make([]Point, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, Point{x, y})
		}
	}
	return out
}

// Center is the integer midpoint (truncated).
func (b BBox) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// CenterF is the exact midpoint of Min and Max.
func (b BBox) CenterF() (x, y float64) {
	return float64(b.Min.X+b.Max.X) / 2, float64(b.Min.Y+b.Max.Y) / 2
}

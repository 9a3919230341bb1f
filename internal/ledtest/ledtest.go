// Package ledtest produces diagnostic frames for checking strip wiring.
package ledtest

import (
	"fmt"

	"github.com/coreman2200/leuchtwand/internal/led"
)

type Kind string

const (
	None       Kind = ""
	IndexSweep Kind = "index_sweep"
	RGBTest    Kind = "rgb_channels"
	Colors     Kind = "colors"
	Rows       Kind = "rows"
)

var Kinds = []Kind{IndexSweep, RGBTest, Colors, Rows}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("ledtest: unknown pattern %q", s)
}

// colorCycle is the sequence shown by Colors; it ends dark.
var colorCycle = [][3]byte{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 255},
	{0, 0, 0},
}

type Runner struct {
	kind Kind
	step int
}

func NewRunner(kind Kind) *Runner { return &Runner{kind: kind} }
func (r *Runner) Kind() Kind      { return r.kind }
func (r *Runner) Step() int       { return r.step }

// Next fills rgb with the next frame in strip order and returns false once
// a finite pattern is complete. RGBTest and Colors repeat forever.
func (r *Runner) Next(l led.Layout, rgb []byte) bool {
	n := l.Count()
	for i := 0; i < n*3; i++ {
		rgb[i] = 0
	}

	switch r.kind {
	case IndexSweep:
		idx := r.step
		if idx >= n {
			return false
		}
		rgb[idx*3+0], rgb[idx*3+1], rgb[idx*3+2] = 255, 255, 255
	case RGBTest:
		ch := r.step % 3
		for i := 0; i < n; i++ {
			rgb[i*3+ch] = 255
		}
	case Colors:
		c := colorCycle[r.step%len(colorCycle)]
		for i := 0; i < n; i++ {
			rgb[i*3+0], rgb[i*3+1], rgb[i*3+2] = c[0], c[1], c[2]
		}
	case Rows:
		// one row at a time in wall coordinates; a wrong serpentine
		// setting shows up as a broken line
		y := r.step
		if y >= l.Height {
			return false
		}
		for x := 0; x < l.Width; x++ {
			i := l.Index(x, y) * 3
			rgb[i+1], rgb[i+2] = 255, 255
		}
	default:
		return false
	}
	r.step++
	return true
}

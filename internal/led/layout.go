package led

// Layout maps matrix coordinates to the position of the LED on the strip.
type Layout struct {
	Width, Height int
	// Serpentine strips run left to right on even rows and right to left on
	// odd rows.
	Serpentine bool
}

// Index maps x,y -> linear LED index (0..N-1)
func (l Layout) Index(x, y int) int {
	xx := x
	if l.Serpentine && y%2 == 1 {
		xx = l.Width - 1 - x
	}
	return y*l.Width + xx
}

func (l Layout) Count() int {
	return l.Width * l.Height
}

package screen

import (
	"fmt"

	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/led"
)

// Screen is the frame buffer bound to an LED driver. Set and Fill come from
// the embedded Buffer, Flush pushes the buffer to the driver in strip order.
type Screen struct {
	*Buffer

	drv     led.Driver
	layout  led.Layout
	limiter led.Limiter
	rgb     []byte
}

// New allocates a black buffer of the layout's dimensions.
func New(drv led.Driver, layout led.Layout, limiter led.Limiter) (*Screen, error) {
	if drv == nil {
		return nil, fmt.Errorf("screen: nil driver")
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("screen: invalid dimensions %dx%d", layout.Width, layout.Height)
	}
	return &Screen{
		Buffer:  NewBuffer(layout.Width, layout.Height),
		drv:     drv,
		layout:  layout,
		limiter: limiter,
		rgb:     make([]byte, layout.Count()*3),
	}, nil
}

// Flush encodes the buffer and writes it synchronously. The buffer must not
// be touched until Flush returns.
func (s *Screen) Flush() error {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.pix[y*s.width+x]
			i := s.layout.Index(x, y) * 3
			s.rgb[i], s.rgb[i+1], s.rgb[i+2] = c.R, c.G, c.B
		}
	}
	s.limiter.Apply(s.rgb)
	if err := s.drv.Write(s.rgb); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Clear blanks the strip and releases the driver.
func (s *Screen) Clear() error {
	s.Fill(geom.Black)
	err := s.Flush()
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *Screen) Close() error {
	return s.drv.Close()
}

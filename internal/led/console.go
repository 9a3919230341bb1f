package led

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"
)

// Console prints the strip as a row of ANSI colored blocks on stdout. It is
// useful on a host without an SPI port.
type Console struct {
	drawer display.Drawer
	img    *image.NRGBA
}

func NewConsole(count int) *Console {
	return &Console{
		drawer: screen.New(count),
		img:    image.NewNRGBA(image.Rect(0, 0, count, 1)),
	}
}

func (c *Console) Write(rgb []byte) error {
	if err := checkFrame(rgb, c.img.Rect.Dx()); err != nil {
		return err
	}
	for x := 0; x < c.img.Rect.Max.X; x++ {
		c.img.SetNRGBA(x, 0, color.NRGBA{R: rgb[x*3], G: rgb[x*3+1], B: rgb[x*3+2], A: 255})
	}
	return c.drawer.Draw(c.drawer.Bounds(), c.img, image.Point{})
}

func (c *Console) Close() error {
	return c.drawer.Halt()
}

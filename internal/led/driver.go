package led

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes an RGB frame to hardware. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// Close releases resources.
	Close() error
}

// InitHost loads the periph host drivers. It must run before any SPI port or
// GPIO pin is opened.
func InitHost() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}
	return nil
}

func checkFrame(rgb []byte, count int) error {
	if len(rgb) != count*3 {
		return fmt.Errorf("rgb length %d does not match count %d", len(rgb), count)
	}
	return nil
}

// Open builds the strip driver named by kind: "ws2801", "nrzled" or
// "console". dev and speed only apply to the SPI drivers, latch only to
// ws2801.
func Open(kind, dev string, count int, speed physic.Frequency, latch time.Duration) (Driver, error) {
	switch kind {
	case "ws2801":
		w, err := OpenWS2801(dev, count, speed, latch)
		if err != nil {
			return nil, err
		}
		return w, nil
	case "nrzled":
		n, err := OpenNRZ(dev, count, speed)
		if err != nil {
			return nil, err
		}
		return n, nil
	case "console":
		if count <= 0 {
			return nil, fmt.Errorf("invalid LED count: %d", count)
		}
		return NewConsole(count), nil
	default:
		return nil, fmt.Errorf("unknown led driver %q", kind)
	}
}

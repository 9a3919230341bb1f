package led

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
)

// NRZ drives WS2812-style single wire pixels by encoding the NRZ bit stream
// onto the SPI MOSI line.
type NRZ struct {
	mu    sync.Mutex
	port  spi.PortCloser
	dev   *nrzled.Dev
	count int
}

func OpenNRZ(dev string, count int, freq physic.Frequency) (*NRZ, error) {
	p, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", dev, err)
	}
	n, err := NewNRZ(p, count, freq)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return n, nil
}

func NewNRZ(p spi.PortCloser, count int, freq physic.Frequency) (*NRZ, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if freq <= 0 {
		freq = 2500 * physic.KiloHertz
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      freq,
	})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &NRZ{port: p, dev: d, count: count}, nil
}

func (n *NRZ) Write(rgb []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return fmt.Errorf("nrzled closed")
	}
	if err := checkFrame(rgb, n.count); err != nil {
		return err
	}
	if _, err := n.dev.Write(rgb); err != nil {
		return fmt.Errorf("nrzled write: %w", err)
	}
	return nil
}

func (n *NRZ) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return nil
	}
	err := n.dev.Halt()
	n.dev = nil
	if cerr := n.port.Close(); err == nil {
		err = cerr
	}
	return err
}

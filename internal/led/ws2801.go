package led

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// DefaultLatch is how long the clock line must idle before WS2801 pixels
// latch the shifted data.
const DefaultLatch = 2 * time.Millisecond

// WS2801 drives a chain of WS2801 pixels. The chip takes raw RGB bytes on a
// clocked SPI bus, so frames go out unencoded.
type WS2801 struct {
	mu    sync.Mutex
	port  spi.PortCloser
	conn  spi.Conn
	count int
	latch time.Duration
}

// OpenWS2801 opens the named spidev port ("" picks the first one) and
// connects a WS2801 chain of count pixels.
func OpenWS2801(dev string, count int, speed physic.Frequency, latch time.Duration) (*WS2801, error) {
	p, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", dev, err)
	}
	w, err := NewWS2801(p, count, speed, latch)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return w, nil
}

// NewWS2801 connects to an already opened port in SPI mode 0.
func NewWS2801(p spi.PortCloser, count int, speed physic.Frequency, latch time.Duration) (*WS2801, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if speed <= 0 {
		speed = physic.MegaHertz
	}
	if latch < 0 {
		latch = DefaultLatch
	}
	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("spi connect: %w", err)
	}
	return &WS2801{port: p, conn: c, count: count, latch: latch}, nil
}

// Write takes len(rgb)==3*count and blocks until the pixels latched.
func (w *WS2801) Write(rgb []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		return fmt.Errorf("ws2801 closed")
	}
	if err := checkFrame(rgb, w.count); err != nil {
		return err
	}
	if err := w.conn.Tx(rgb, nil); err != nil {
		return fmt.Errorf("spi write: %w", err)
	}
	if w.latch > 0 {
		time.Sleep(w.latch)
	}
	return nil
}

func (w *WS2801) String() string {
	return fmt.Sprintf("ws2801{%s, %d}", w.conn, w.count)
}

// Close blanks the chain and releases the port.
func (w *WS2801) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return nil
	}
	_ = w.conn.Tx(make([]byte, w.count*3), nil)
	w.conn = nil
	return w.port.Close()
}

// Package sim shows the wall in a terminal and reads the six buttons from
// the keyboard, for development away from the hardware.
package sim

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/led"
)

const (
	cellsPerPixel = 2
	buttonWidth   = 5
)

// panel positions of the buttons: two rows of three
var panel = [2][3]int{
	{button.TopLeft, button.TopMiddle, button.TopRight},
	{button.BottomLeft, button.BottomMiddle, button.BottomRight},
}

var (
	ledOff = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ledOn  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// Sim is both an led.Driver and a button.Device. Keys 1 to 6 tap the
// buttons; Esc or Ctrl-C asks the program to quit.
type Sim struct {
	button.Base

	screen tcell.Screen
	layout led.Layout

	mu     sync.Mutex
	closed bool
	quit   chan struct{}
	once   sync.Once
}

// New takes over the terminal.
func New(layout led.Layout) (*Sim, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return NewWithScreen(scr, layout), nil
}

// NewWithScreen uses an initialized tcell screen.
func NewWithScreen(scr tcell.Screen, layout led.Layout) *Sim {
	scr.HideCursor()
	scr.Clear()
	return &Sim{screen: scr, layout: layout, quit: make(chan struct{})}
}

// Done is closed when the user asks to quit.
func (s *Sim) Done() <-chan struct{} { return s.quit }

// Write draws a frame in strip order, followed by the button panel.
func (s *Sim) Write(rgb []byte) error {
	if len(rgb) < s.layout.Count()*3 {
		return fmt.Errorf("sim: frame has %d bytes, want %d", len(rgb), s.layout.Count()*3)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("sim: closed")
	}
	for y := 0; y < s.layout.Height; y++ {
		for x := 0; x < s.layout.Width; x++ {
			i := s.layout.Index(x, y) * 3
			c := tcell.NewRGBColor(int32(rgb[i]), int32(rgb[i+1]), int32(rgb[i+2]))
			st := tcell.StyleDefault.Foreground(c)
			for k := 0; k < cellsPerPixel; k++ {
				s.screen.SetContent(x*cellsPerPixel+k, y, '█', nil, st)
			}
		}
	}
	s.drawPanel(s.layout.Height + 1)
	s.screen.Show()
	return nil
}

func (s *Sim) drawPanel(top int) {
	leds := s.Indicators()
	for row, ids := range panel {
		for col, id := range ids {
			st := ledOff
			if leds[id] {
				st = ledOn
			}
			label := fmt.Sprintf("[%d]", id+1)
			x := col * buttonWidth
			for k, r := range label {
				s.screen.SetContent(x+k, top+row, r, nil, st)
			}
		}
	}
}

// Run forwards key presses until the screen is closed or the user quits.
func (s *Sim) Run() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				s.once.Do(func() { close(s.quit) })
				return
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() < '1'+button.Count {
				// terminals report no key-up, so every key is a full tap
				id := int(ev.Rune() - '1')
				s.Emit(id, true)
				s.Emit(id, false)
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.screen.Fini()
	log.Debug().Msg("sim screen closed")
	return nil
}

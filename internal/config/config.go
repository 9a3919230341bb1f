package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/led"
	"github.com/coreman2200/leuchtwand/internal/state"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0 or SPI0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 1000000
	LatchUs int    `yaml:"latch_us"` // WS2801 latch pause, e.g. 2000
}

type Buttons struct {
	Input      string   `yaml:"input"` // "gpio" | "none"
	Pins       []string `yaml:"pins"`
	LEDs       []string `yaml:"leds"`
	DebounceMs int      `yaml:"debounce_ms"`
}

type Power struct {
	WhiteCap float64 `yaml:"white_cap"`
	BudgetMA float64 `yaml:"budget_ma"`
	ChanMA   float64 `yaml:"chan_ma"`
}

type Font struct {
	Name string  `yaml:"name"` // tiny | basic | gomono
	Path string  `yaml:"path"` // TrueType file, overrides name
	Size float64 `yaml:"size"`
}

// Theme colors are hex strings such as "#0000ff".
type Theme struct {
	Glow       string   `yaml:"glow"`
	Label      string   `yaml:"label"`
	Divider    string   `yaml:"divider"`
	Background []string `yaml:"background"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "ws2801" | "nrzled" | "console" | "sim"
	FPS        int    `yaml:"fps"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Serpentine bool   `yaml:"serpentine"`

	SPI     SPI     `yaml:"spi,omitempty"`
	Buttons Buttons `yaml:"buttons"`
	Power   Power   `yaml:"power"`
	Font    Font    `yaml:"font"`
	Theme   Theme   `yaml:"theme"`
}

var Drivers = []string{"ws2801", "nrzled", "console", "sim"}

func Default() *Config {
	return &Config{
		Driver:     "sim",
		FPS:        30,
		Width:      21,
		Height:     12,
		Serpentine: true,
		SPI: SPI{
			Dev:     "",
			SpeedHz: 1000000,
			LatchUs: 2000,
		},
		Buttons: Buttons{
			Input:      "gpio",
			Pins:       append([]string(nil), button.DefaultInputPins...),
			LEDs:       append([]string(nil), button.DefaultLEDPins...),
			DebounceMs: 50,
		},
		Power: Power{ChanMA: 20},
		Font:  Font{Name: "tiny", Size: 8},
		Theme: Theme{
			Glow:       "#0000ff",
			Label:      "#ffffff",
			Divider:    "#505050",
			Background: []string{"#000028", "#280014"},
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	known := false
	for _, d := range Drivers {
		if c.Driver == d {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	switch c.Buttons.Input {
	case "gpio":
		if len(c.Buttons.Pins) != button.Count {
			return fmt.Errorf("buttons: need %d pins, got %d", button.Count, len(c.Buttons.Pins))
		}
		if n := len(c.Buttons.LEDs); n != 0 && n != button.Count {
			return fmt.Errorf("buttons: need %d led pins, got %d", button.Count, n)
		}
	case "none":
	default:
		return fmt.Errorf("buttons: unknown input %q", c.Buttons.Input)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// Layout is the LED strip geometry.
func (c *Config) Layout() led.Layout {
	return led.Layout{Width: c.Width, Height: c.Height, Serpentine: c.Serpentine}
}

func (c *Config) Limiter() led.Limiter {
	return led.Limiter{WhiteCap: c.Power.WhiteCap, BudgetMA: c.Power.BudgetMA, ChanMA: c.Power.ChanMA}
}

// ParseColor parses a hex color such as "#ff8000".
func ParseColor(s string) (geom.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return geom.Black, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return geom.Color{R: r, G: g, B: b}, nil
}

// Resolve converts the theme into state colors. Empty entries keep the
// default theme's color.
func (t Theme) Resolve() (state.Theme, error) {
	out := state.DefaultTheme()
	set := func(dst *geom.Color, s string) error {
		if s == "" {
			return nil
		}
		c, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("theme: %w", err)
		}
		*dst = c
		return nil
	}
	if err := set(&out.Glow, t.Glow); err != nil {
		return out, err
	}
	if err := set(&out.Label, t.Label); err != nil {
		return out, err
	}
	if err := set(&out.Divider, t.Divider); err != nil {
		return out, err
	}
	if len(t.Background) > len(out.Background) {
		return out, fmt.Errorf("theme: at most %d background colors, got %d", len(out.Background), len(t.Background))
	}
	for i, s := range t.Background {
		if err := set(&out.Background[i], s); err != nil {
			return out, err
		}
	}
	return out, nil
}

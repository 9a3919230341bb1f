package animation

import (
	"math"

	"github.com/coreman2200/leuchtwand/internal/geom"
	"github.com/coreman2200/leuchtwand/internal/screen"
)

// hueStep is the hue shift in degrees per pixel of distance.
const hueStep = 10

// RainbowCycle sweeps a diagonal rainbow across its region.
type RainbowCycle struct {
	lifecycle
	area
	speed    float64
	position float64
}

// NewRainbowCycle moves the rainbow by speed degrees per second.
func NewRainbowCycle(speed float64) *RainbowCycle { return &RainbowCycle{speed: speed} }

func (r *RainbowCycle) In(b geom.BBox) *RainbowCycle {
	r.set(b)
	return r
}

// Position is the accumulated hue offset in degrees.
func (r *RainbowCycle) Position() float64 { return r.position }

func (r *RainbowCycle) Update(buf *screen.Buffer, dt float64) {
	r.position += r.speed * dt
	for _, p := range r.points(buf) {
		buf.Set(p, geom.HueToColor(geom.Hue(r.position+float64(p.X+p.Y)*hueStep)))
	}
}

// Kaleidoscope paints rings of hue around the center of its region and
// rotates them through the color wheel.
type Kaleidoscope struct {
	lifecycle
	area
	speed float64
	angle float64
}

// NewKaleidoscope turns the hue by speed degrees per second. Negative
// speeds run the rings inward.
func NewKaleidoscope(speed float64) *Kaleidoscope { return &Kaleidoscope{speed: speed} }

func (k *Kaleidoscope) In(b geom.BBox) *Kaleidoscope {
	k.set(b)
	return k
}

func (k *Kaleidoscope) Angle() float64 { return k.angle }

func (k *Kaleidoscope) Update(buf *screen.Buffer, dt float64) {
	k.angle += k.speed * dt
	cx, cy := k.bounds(buf).CenterF()
	for _, p := range k.points(buf) {
		d := p.Dist(cx, cy)
		buf.Set(p, geom.HueToColor(geom.Hue(k.angle+d*hueStep)))
	}
}

// BreathingGlow pulses a color between black and full brightness.
type BreathingGlow struct {
	lifecycle
	area
	color geom.Color
	speed float64
	phase float64
}

// NewBreathingGlow advances the pulse by speed radians per second.
func NewBreathingGlow(c geom.Color, speed float64) *BreathingGlow {
	return &BreathingGlow{color: c, speed: speed}
}

func (g *BreathingGlow) In(b geom.BBox) *BreathingGlow {
	g.set(b)
	return g
}

func (g *BreathingGlow) Phase() float64 { return g.phase }

// Brightness is the current scale factor in [0,1].
func (g *BreathingGlow) Brightness() float64 { return (1 + math.Sin(g.phase)) / 2 }

func (g *BreathingGlow) Update(buf *screen.Buffer, dt float64) {
	g.phase += g.speed * dt
	buf.FillRect(g.bounds(buf), g.color.Scale(g.Brightness()))
}

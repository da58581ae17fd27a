package animation

import (
	"image/color"
	"time"

	"protonpack-go/x/timex"
)

// Pulse fades the whole strip up and down once per period.
type Pulse struct {
	frame
	color  color.RGBA
	period time.Duration
	start  time.Time
}

func NewPulse(px Pixels, clock timex.Clock, speed time.Duration, c color.RGBA, period time.Duration) *Pulse {
	if period <= 0 {
		period = time.Second
	}
	return &Pulse{
		frame:  newFrame(px, clock, speed),
		color:  c,
		period: period,
		start:  clock.Now(),
	}
}

func (p *Pulse) Advance() error {
	if !p.due() {
		return nil
	}
	p.px.Fill(fade(p.color, p.level(p.clock.Now())))
	return p.px.Show()
}

// level is a triangle envelope: 0 at the period edges, 1 in the middle.
func (p *Pulse) level(now time.Time) float64 {
	el := now.Sub(p.start) % p.period
	if el < 0 {
		el += p.period
	}
	phase := float64(el) / float64(p.period)
	if phase < 0.5 {
		return phase * 2
	}
	return (1 - phase) * 2
}

package animation

import (
	"image/color"
	"time"

	"protonpack-go/x/mathx"
	"protonpack-go/x/timex"
)

// Comet is a bright head trailed by a fading tail.
type Comet struct {
	frame
	color  color.RGBA
	tail   int
	bounce bool
	ring   bool
	head   int
	dir    int
}

// NewComet returns a comet moving forward from pixel 0. ring wraps the head
// around the strip end; bounce reverses it (ring wins if both are set).
func NewComet(px Pixels, clock timex.Clock, speed time.Duration, c color.RGBA, tail int, bounce, ring bool) *Comet {
	return &Comet{
		frame:  newFrame(px, clock, speed),
		color:  c,
		tail:   mathx.Clamp(tail, 1, px.Len()),
		bounce: bounce,
		ring:   ring,
		dir:    1,
	}
}

func (c *Comet) Advance() error {
	if !c.due() {
		return nil
	}
	n := c.px.Len()
	c.px.Fill(Black)
	for i := 0; i < c.tail; i++ {
		idx := c.head - i*c.dir
		if c.ring {
			idx = wrap(idx, n)
		} else if idx < 0 || idx >= n {
			continue
		}
		c.px.Set(idx, fade(c.color, float64(c.tail-i)/float64(c.tail)))
	}
	c.step(n)
	return c.px.Show()
}

func (c *Comet) step(n int) {
	c.head += c.dir
	switch {
	case c.ring:
		c.head = wrap(c.head, n)
	case c.bounce:
		if c.head >= n-1 {
			c.head, c.dir = n-1, -1
		} else if c.head <= 0 {
			c.head, c.dir = 0, 1
		}
	default:
		// Let the tail run off the end before restarting.
		if c.head >= n+c.tail {
			c.head = 0
		}
	}
}

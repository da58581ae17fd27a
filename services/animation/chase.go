package animation

import (
	"image/color"
	"time"

	"protonpack-go/x/mathx"
	"protonpack-go/x/timex"
)

// Chase moves bars of size lit pixels separated by spacing dark pixels.
type Chase struct {
	frame
	color   color.RGBA
	size    int
	spacing int
	offset  int
}

func NewChase(px Pixels, clock timex.Clock, speed time.Duration, c color.RGBA, size, spacing int) *Chase {
	return &Chase{
		frame:   newFrame(px, clock, speed),
		color:   c,
		size:    mathx.Max(size, 1),
		spacing: mathx.Max(spacing, 0),
	}
}

func (c *Chase) Advance() error {
	if !c.due() {
		return nil
	}
	span := c.size + c.spacing
	for i := 0; i < c.px.Len(); i++ {
		if wrap(i-c.offset, span) < c.size {
			c.px.Set(i, c.color)
		} else {
			c.px.Set(i, Black)
		}
	}
	c.offset = wrap(c.offset+1, span)
	return c.px.Show()
}

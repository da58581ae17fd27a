package animation

import (
	"image/color"
	"time"

	"protonpack-go/x/timex"
)

// Blink alternates the whole strip between a colour and black.
type Blink struct {
	frame
	color color.RGBA
	on    bool
}

func NewBlink(px Pixels, clock timex.Clock, speed time.Duration, c color.RGBA) *Blink {
	return &Blink{frame: newFrame(px, clock, speed), color: c}
}

func (b *Blink) Advance() error {
	if !b.due() {
		return nil
	}
	b.on = !b.on
	if b.on {
		b.px.Fill(b.color)
	} else {
		b.px.Fill(Black)
	}
	return b.px.Show()
}

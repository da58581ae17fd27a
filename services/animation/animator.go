// Package animation holds the per-zone LED patterns. Each animator owns one
// pixel surface and renders at most one frame per frame interval.
package animation

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"protonpack-go/x/mathx"
	"protonpack-go/x/timex"
)

// Pixels is the surface an animator draws on. *neostrip.Strip satisfies it.
type Pixels interface {
	Len() int
	Set(i int, c color.RGBA)
	Fill(c color.RGBA)
	Show() error
}

// Palette.
var (
	Black  = color.RGBA{0, 0, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Yellow = color.RGBA{255, 150, 0, 255}
	Amber  = color.RGBA{255, 100, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}
	White  = color.RGBA{255, 255, 255, 255}
)

// frame gates rendering on the frame interval (the animator's speed).
type frame struct {
	px    Pixels
	clock timex.Clock
	speed time.Duration
	next  time.Time
}

func newFrame(px Pixels, clock timex.Clock, speed time.Duration) frame {
	return frame{px: px, clock: clock, speed: speed}
}

// due reports whether a frame should be drawn now and schedules the next.
func (f *frame) due() bool {
	now := f.clock.Now()
	if now.Before(f.next) {
		return false
	}
	f.next = now.Add(f.speed)
	return true
}

// SetSpeed changes the frame interval; it applies from the next frame.
func (f *frame) SetSpeed(d time.Duration) { f.speed = d }
func (f *frame) Speed() time.Duration     { return f.speed }

// fade scales c towards black; t=1 is full colour.
func fade(c color.RGBA, t float64) color.RGBA {
	t = mathx.Clamp(t, 0, 1)
	from := colorful.Color{}
	to := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := from.BlendRgb(to, t).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func wrap(i, n int) int { return ((i % n) + n) % n }

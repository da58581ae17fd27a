// Package neostrip is a fixed-length RGB pixel buffer with a global
// brightness, flushed to an addressable LED backend.
package neostrip

import (
	"image/color"

	"protonpack-go/errcode"
	"protonpack-go/x/mathx"
)

// Writer is the LED backend. tinygo.org/x/drivers/ws2812.Device satisfies it.
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

var black = color.RGBA{}

type Strip struct {
	out        Writer
	pix        []color.RGBA
	scaled     []color.RGBA
	brightness float64
}

// New returns a blank strip of n pixels. brightness is clamped to [0,1]
// and fixed for the life of the strip.
func New(out Writer, n int, brightness float64) (*Strip, error) {
	if out == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: "neostrip.New"}
	}
	if n <= 0 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "neostrip.New", Msg: "no pixels"}
	}
	return &Strip{
		out:        out,
		pix:        make([]color.RGBA, n),
		scaled:     make([]color.RGBA, n),
		brightness: mathx.Clamp(brightness, 0, 1),
	}, nil
}

func (s *Strip) Len() int            { return len(s.pix) }
func (s *Strip) Brightness() float64 { return s.brightness }

// Set stores c at i; out-of-range indices are ignored.
func (s *Strip) Set(i int, c color.RGBA) {
	if i < 0 || i >= len(s.pix) {
		return
	}
	s.pix[i] = c
}

// Get returns the unscaled colour at i (black when out of range).
func (s *Strip) Get(i int) color.RGBA {
	if i < 0 || i >= len(s.pix) {
		return black
	}
	return s.pix[i]
}

func (s *Strip) Fill(c color.RGBA) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Show writes the buffer to the backend with brightness applied.
func (s *Strip) Show() error {
	for i, c := range s.pix {
		s.scaled[i] = scale(c, s.brightness)
	}
	if err := s.out.WriteColors(s.scaled); err != nil {
		return errcode.Wrap(errcode.WriteFailed, "neostrip.Show", err)
	}
	return nil
}

// Clear blanks the strip and shows it.
func (s *Strip) Clear() error {
	s.Fill(black)
	return s.Show()
}

func scale(c color.RGBA, b float64) color.RGBA {
	if b >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * b),
		G: uint8(float64(c.G) * b),
		B: uint8(float64(c.B) * b),
		A: c.A,
	}
}

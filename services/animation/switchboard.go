package animation

import "image/color"

// switchboardLayout is the static panel, indexed by pixel.
var switchboardLayout = [8]color.RGBA{
	Green, Yellow, Red, Red, Yellow, Green, Blue, Yellow,
}

// Switchboard paints the fixed panel colours while the prop is up.
type Switchboard struct {
	px Pixels
}

func NewSwitchboard(px Pixels) *Switchboard { return &Switchboard{px: px} }

// Render paints the panel when active and blanks it otherwise.
// Calling it repeatedly with the same argument gives the same output.
func (s *Switchboard) Render(active bool) error {
	s.px.Fill(Black)
	if active {
		for i, c := range switchboardLayout {
			s.px.Set(i, c)
		}
	}
	return s.px.Show()
}

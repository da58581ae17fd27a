package main

import (
	"image/color"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"protonpack-go/types"
)

const (
	labelWidth = 16
	helpRow    = 0
	firstStrip = 2
	modeRow    = firstStrip + types.NumZones + 1
	logRow     = modeRow + 1
	help       = "p: power  f: fire  q: quit"
)

// display draws every strip as a row of blocks. The control loop and the
// event pump both draw, so all screen access goes through mu.
type display struct {
	mu sync.Mutex
	s  tcell.Screen
}

func newDisplay(s tcell.Screen) *display {
	d := &display{s: s}
	d.mu.Lock()
	s.Clear()
	d.text(0, helpRow, help, tcell.StyleDefault)
	s.Show()
	d.mu.Unlock()
	d.mode(types.ModeOff)
	return d
}

// text writes str at (x, y) and blanks the rest of the row. mu held.
func (d *display) text(x, y int, str string, st tcell.Style) {
	w, _ := d.s.Size()
	for _, r := range str {
		d.s.SetContent(x, y, r, nil, st)
		x++
	}
	for ; x < w; x++ {
		d.s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// strip returns the pixel writer for zone z.
func (d *display) strip(z types.Zone) *row {
	return &row{d: d, y: firstStrip + int(z), label: z.String()}
}

func (d *display) mode(m types.Mode) {
	d.mu.Lock()
	d.text(0, modeRow, "mode: "+m.String(), tcell.StyleDefault.Bold(true))
	d.s.Show()
	d.mu.Unlock()
}

// Write shows the most recent log line; it is the logx sink while the
// screen is up.
func (d *display) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	d.mu.Lock()
	d.text(0, logRow, line, tcell.StyleDefault.Dim(true))
	d.s.Show()
	d.mu.Unlock()
	return len(p), nil
}

type row struct {
	d     *display
	y     int
	label string
}

func pixelStyle(c color.RGBA) tcell.Style {
	fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func (r *row) WriteColors(c []color.RGBA) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.text(0, r.y, r.label, tcell.StyleDefault)
	for i, px := range c {
		r.d.s.SetContent(labelWidth+i, r.y, '█', nil, pixelStyle(px))
	}
	r.d.s.Show()
	return nil
}

package main

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// toggle is a latching switch wired active-low.
type toggle struct{ on atomic.Bool }

func (t *toggle) Get() bool { return !t.on.Load() }
func (t *toggle) flip()     { t.on.Store(!t.on.Load()) }

type panel struct {
	power toggle
	fire  toggle
}

// key applies one key press and reports whether the simulator should quit.
func (p *panel) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			p.power.flip()
		case 'f', 'F', ' ':
			p.fire.flip()
		case 'q', 'Q':
			return true
		}
	}
	return false
}

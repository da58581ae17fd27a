package input

import (
	"time"

	"protonpack-go/x/timex"
)

// Pin is a raw digital input level.
type Pin interface {
	Get() bool
}

// Edge is a debounced transition of the logical value.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	default:
		return "none"
	}
}

// Debouncer turns a bouncing pin into a stable logical value. A raw change
// must hold for the whole interval before the value follows it.
type Debouncer struct {
	pin      Pin
	invert   bool // true if asserted == low
	interval time.Duration
	clock    timex.Clock

	value    bool
	raw      bool
	rawSince time.Time
	lastEdge Edge
}

// NewDebouncer samples the pin once to seed the stable value.
func NewDebouncer(pin Pin, invert bool, interval time.Duration, clock timex.Clock) *Debouncer {
	d := &Debouncer{pin: pin, invert: invert, interval: interval, clock: clock}
	d.raw = d.sample()
	d.value = d.raw
	d.rawSince = clock.Now()
	return d
}

func (d *Debouncer) sample() bool {
	lvl := d.pin.Get()
	if d.invert {
		return !lvl
	}
	return lvl
}

// Update samples the pin and returns the stable value and any edge taken
// on this call.
func (d *Debouncer) Update() (bool, Edge) {
	now := d.clock.Now()
	raw := d.sample()
	if raw != d.raw {
		d.raw = raw
		d.rawSince = now
	}
	d.lastEdge = EdgeNone
	if d.raw != d.value && now.Sub(d.rawSince) >= d.interval {
		d.value = d.raw
		if d.value {
			d.lastEdge = EdgeRising
		} else {
			d.lastEdge = EdgeFalling
		}
	}
	return d.value, d.lastEdge
}

func (d *Debouncer) Value() bool { return d.value }

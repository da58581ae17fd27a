// Package input reads the prop's two switches: the power toggle and the
// fire trigger. Both are active-low with pull-ups.
package input

import (
	"time"

	"protonpack-go/errcode"
	"protonpack-go/types"
	"protonpack-go/x/timex"
)

// DefaultDebounce matches a typical toggle switch bounce window.
const DefaultDebounce = 10 * time.Millisecond

// Reading is one debounced sample plus the edges taken on it.
type Reading struct {
	types.Inputs
	Power Edge
	Fire  Edge
}

type Reader struct {
	power *Debouncer
	fire  *Debouncer
}

// NewReader builds a reader over active-low power and fire pins.
func NewReader(power, fire Pin, debounce time.Duration, clock timex.Clock) (*Reader, error) {
	if power == nil || fire == nil || clock == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: "input.NewReader"}
	}
	return &Reader{
		power: NewDebouncer(power, true, debounce, clock),
		fire:  NewDebouncer(fire, true, debounce, clock),
	}, nil
}

// Read samples both inputs once.
func (r *Reader) Read() Reading {
	var rd Reading
	rd.PowerOn, rd.Power = r.power.Update()
	rd.FirePressed, rd.Fire = r.fire.Update()
	return rd
}

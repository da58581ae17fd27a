// Package ramp precomputes animation speed ramps.
package ramp

import (
	"time"

	"protonpack-go/errcode"
	"protonpack-go/x/mathx"
)

// Table is a monotone non-increasing sequence of frame intervals ending in
// a duplicated plateau value. It is never modified after Build.
type Table []time.Duration

// Build returns the linear entries cold..max for elapsed seconds 0..steps,
// plus one trailing max entry, so len == steps+2. Entry steps is exactly max.
func Build(cold, max time.Duration, steps int) (Table, error) {
	if steps < 1 || max <= 0 || cold < max {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "ramp.Build"}
	}
	span, n := cold-max, time.Duration(steps)
	t := make(Table, 0, steps+2)
	for i := time.Duration(0); i <= n; i++ {
		t = append(t, mathx.Max(cold-span*i/n, max))
	}
	return append(t, max), nil
}

func (t Table) Len() int { return len(t) }

// At returns the entry at i with i clamped to the table bounds.
func (t Table) At(i int) time.Duration {
	return t[mathx.ClampIndex(i, len(t))]
}

// Last is the plateau value.
func (t Table) Last() time.Duration { return t[len(t)-1] }

// Steps is the nominal ramp length in seconds.
func (t Table) Steps() int { return len(t) - 2 }

// Reversed returns a new table in reverse order, e.g. for a power-down ramp.
func (t Table) Reversed() Table {
	r := make(Table, len(t))
	for i, v := range t {
		r[len(t)-1-i] = v
	}
	return r
}

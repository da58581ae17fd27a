// Package control is the top-level driver: sample inputs, step the mode
// machine, sleep. Everything runs on the caller's goroutine.
package control

import (
	"context"
	"time"

	"protonpack-go/errcode"
	"protonpack-go/services/input"
	"protonpack-go/types"
	"protonpack-go/x/logx"
	"protonpack-go/x/timex"
)

// Source yields one debounced input sample per call.
type Source interface {
	Read() input.Reading
}

// Stepper consumes one sample per tick.
type Stepper interface {
	Step(in types.Inputs) types.Mode
	FastestFrame() time.Duration
}

type Loop struct {
	src   Source
	m     Stepper
	clock timex.Clock
	tick  time.Duration
	ticks uint64
}

// New checks the pacing constraint: the tick must be strictly shorter than
// the fastest animator frame or frames get skipped.
func New(src Source, m Stepper, clock timex.Clock, tick time.Duration) (*Loop, error) {
	if src == nil || m == nil || clock == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: "control.New"}
	}
	if tick <= 0 || tick >= m.FastestFrame() {
		return nil, &errcode.E{
			C:   errcode.InvalidParams,
			Op:  "control.New",
			Msg: "tick " + tick.String() + " not below fastest frame " + m.FastestFrame().String(),
		}
	}
	return &Loop{src: src, m: m, clock: clock, tick: tick}, nil
}

// Tick runs one iteration: one sample, one step, one sleep.
func (l *Loop) Tick() types.Mode {
	rd := l.src.Read()
	if rd.Power != input.EdgeNone {
		logx.Println("input", "power", rd.Power.String())
	}
	if rd.Fire != input.EdgeNone {
		logx.Println("input", "fire", rd.Fire.String())
	}
	mode := l.m.Step(rd.Inputs)
	l.ticks++
	l.clock.Sleep(l.tick)
	return mode
}

// Ticks is the number of completed iterations.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Run ticks until ctx is cancelled. Cancellation is only observed between
// ticks, so a running overheat cooldown always completes.
func (l *Loop) Run(ctx context.Context) error {
	logx.Println("control", "loop start, tick", l.tick.String())
	for {
		select {
		case <-ctx.Done():
			logx.Println("control", "loop stopping after", l.ticks, "ticks")
			return ctx.Err()
		default:
		}
		l.Tick()
	}
}

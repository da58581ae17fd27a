package control

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"protonpack-go/errcode"
	"protonpack-go/services/input"
	"protonpack-go/types"
	"protonpack-go/x/logx"
	"protonpack-go/x/timex"
)

func TestMain(m *testing.M) {
	logx.SetOutput(nopWriter{})
	goleak.VerifyTestMain(m)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

type script struct {
	reads []input.Reading
	n     int
	log   *[]string
}

func (s *script) Read() input.Reading {
	*s.log = append(*s.log, "read")
	rd := s.reads[s.n%len(s.reads)]
	s.n++
	return rd
}

type stepper struct {
	got     []types.Inputs
	log     *[]string
	fastest time.Duration
	block   time.Duration
	clock   *timex.Fake
	cancel  func()
	after   int
}

func (s *stepper) Step(in types.Inputs) types.Mode {
	*s.log = append(*s.log, "step")
	s.got = append(s.got, in)
	if s.block > 0 {
		s.clock.Sleep(s.block)
	}
	if s.cancel != nil && len(s.got) == s.after {
		s.cancel()
	}
	if in.PowerOn {
		return types.ModeIdle
	}
	return types.ModeOff
}

func (s *stepper) FastestFrame() time.Duration { return s.fastest }

func TestTickSamplesOnceStepsOnceSleeps(t *testing.T) {
	var log []string
	clk := timex.NewFake()
	src := &script{log: &log, reads: []input.Reading{
		{Inputs: types.Inputs{PowerOn: true}, Power: input.EdgeRising},
		{Inputs: types.Inputs{PowerOn: true, FirePressed: true}},
	}}
	m := &stepper{log: &log, fastest: 7500 * time.Microsecond}
	l, err := New(src, m, clk, 5*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	if l.Tick() != types.ModeIdle {
		t.Fatalf("mode not passed through")
	}
	l.Tick()

	want := []string{"read", "step", "read", "step"}
	if len(log) != len(want) {
		t.Fatalf("call order %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("call order %v", log)
		}
	}
	if !m.got[1].FirePressed {
		t.Fatalf("inputs not forwarded: %+v", m.got)
	}
	sl := clk.Sleeps()
	if len(sl) != 2 || sl[0] != 5*time.Millisecond {
		t.Fatalf("sleeps=%v", sl)
	}
	if l.Ticks() != 2 {
		t.Fatalf("ticks=%d", l.Ticks())
	}
}

func TestBlockingStepTakesNoSamples(t *testing.T) {
	var log []string
	clk := timex.NewFake()
	src := &script{log: &log, reads: []input.Reading{{Inputs: types.Inputs{PowerOn: true}}}}
	m := &stepper{log: &log, fastest: time.Second, block: 5 * time.Second, clock: clk}
	l, _ := New(src, m, clk, time.Millisecond)

	l.Tick()
	if len(log) != 2 || src.n != 1 {
		t.Fatalf("samples during blocking step: %v", log)
	}
}

func TestRunStopsBetweenTicks(t *testing.T) {
	var log []string
	clk := timex.NewFake()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &script{log: &log, reads: []input.Reading{{}}}
	m := &stepper{log: &log, fastest: time.Second, cancel: cancel, after: 25}
	l, _ := New(src, m, clk, time.Millisecond)

	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
	if l.Ticks() != 25 {
		t.Fatalf("ticks=%d want 25", l.Ticks())
	}
}

func TestNewEnforcesPacing(t *testing.T) {
	var log []string
	src := &script{log: &log, reads: []input.Reading{{}}}
	m := &stepper{log: &log, fastest: 7500 * time.Microsecond}
	clk := timex.NewFake()

	for _, tick := range []time.Duration{0, 7500 * time.Microsecond, 10 * time.Millisecond} {
		if _, err := New(src, m, clk, tick); errcode.Of(err) != errcode.InvalidParams {
			t.Fatalf("tick %v accepted: %v", tick, err)
		}
	}
	if _, err := New(nil, m, clk, time.Millisecond); errcode.Of(err) != errcode.HardwareAbsent {
		t.Fatalf("missing source accepted")
	}
}

// Package modes is the prop's mode state machine. One Step call is one
// control-loop tick: it consumes a debounced input sample, runs exactly one
// mode routine and returns the resulting mode.
package modes

import (
	"time"

	"protonpack-go/errcode"
	"protonpack-go/types"
	"protonpack-go/x/logx"
	"protonpack-go/x/ramp"
	"protonpack-go/x/timex"
)

// Animator renders one frame onto its zone when its frame interval is due.
type Animator interface {
	Advance() error
	SetSpeed(d time.Duration)
}

// Surface is a zone's pixel buffer.
type Surface interface {
	Clear() error
}

// Indicator is a static display gated on/off by mode.
type Indicator interface {
	Render(active bool) error
}

// Audio starts a sound by ordinal index.
type Audio interface {
	Play(index int, loop bool) error
}

// Zone binds a zone's surface to its per-mode animators. Nil animators are
// not driven.
type Zone struct {
	Surface  Surface
	Idle     Animator
	Boot     Animator
	Overheat Animator
}

// Timing holds the compiled-in timing constants.
type Timing struct {
	Ramp            ramp.Table    // cyclotron boot speeds, one entry per second
	FireSpeed       time.Duration // cyclotron frame interval while firing
	OverheatAfter   time.Duration // fire hold that triggers overheat; 0 disables
	OverheatDisplay time.Duration // overheat animation run time
	Cooldown        time.Duration // blocking pause after the overheat animation
	Tick            time.Duration // frame pacing inside the overheat sequence
	StartupSound    int
	OverheatSound   int
}

type Config struct {
	Timing
	Zones        [types.NumZones]Zone
	Switchboard  Indicator
	Audio        Audio
	Clock        timex.Clock
	OnTransition func(from, to types.Mode)
}

type bootTimer struct {
	start   time.Time
	last    time.Time
	elapsed int
}

type fireTimer struct {
	held  bool
	start time.Time
}

type Machine struct {
	cfg     Config
	mode    types.Mode
	powered bool // power reading of the previous tick
	boot    bootTimer
	fire    fireTimer
}

func New(cfg Config) (*Machine, error) {
	if cfg.Clock == nil || cfg.Audio == nil || cfg.Switchboard == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: "modes.New"}
	}
	cyc := cfg.Zones[types.ZoneCyclotron]
	switch {
	case cfg.Ramp.Len() < 3:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "modes.New", Msg: "ramp too short"}
	case cfg.Tick <= 0 || cfg.Cooldown < 0 || cfg.OverheatDisplay < 0 || cfg.OverheatAfter < 0:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "modes.New", Msg: "bad timing"}
	case cyc.Boot == nil || cyc.Idle == nil:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "modes.New", Msg: "cyclotron animators missing"}
	}
	return &Machine{cfg: cfg, mode: types.ModeOff}, nil
}

func (m *Machine) Mode() types.Mode { return m.mode }

// BootElapsed is the rounded boot time in seconds (0 outside Booting).
func (m *Machine) BootElapsed() int { return m.boot.elapsed }

// Firing reports whether the trigger is held in Idle.
func (m *Machine) Firing() bool { return m.fire.held }

// Step runs one tick. A false power reading always wins.
func (m *Machine) Step(in types.Inputs) types.Mode {
	rose := in.PowerOn && !m.powered
	m.powered = in.PowerOn

	if !in.PowerOn {
		if m.mode != types.ModeOff {
			m.enterOff()
		}
		return m.mode
	}

	switch m.mode {
	case types.ModeOff:
		m.enterBooting(rose)
		m.booting()
	case types.ModeBooting:
		m.booting()
	case types.ModeIdle:
		m.idle(in.FirePressed)
	case types.ModeOverheat:
		m.overheat()
	default:
		m.enterOff()
	}
	return m.mode
}

// FastestFrame is the shortest frame interval any animator can run at.
func (m *Machine) FastestFrame() time.Duration {
	fastest := m.cfg.Ramp.Last()
	if m.cfg.FireSpeed > 0 && m.cfg.FireSpeed < fastest {
		fastest = m.cfg.FireSpeed
	}
	type speeder interface{ Speed() time.Duration }
	for _, z := range m.cfg.Zones {
		for _, a := range []Animator{z.Idle, z.Boot, z.Overheat} {
			if s, ok := a.(speeder); ok && s.Speed() > 0 && s.Speed() < fastest {
				fastest = s.Speed()
			}
		}
	}
	return fastest
}

func (m *Machine) transition(to types.Mode) {
	from := m.mode
	m.mode = to
	logx.Println("modes", from.String(), "->", to.String())
	if m.cfg.OnTransition != nil {
		m.cfg.OnTransition(from, to)
	}
}

func (m *Machine) cyclotron() Zone { return m.cfg.Zones[types.ZoneCyclotron] }

// Animation and audio failures never change a transition; they are logged
// and dropped here.
func discard(op string, err error) {
	if err != nil {
		logx.Println("modes", op, "failed:", err.Error())
	}
}

func (m *Machine) play(index int) {
	discard("play", m.cfg.Audio.Play(index, false))
}

func advance(a Animator) {
	if a != nil {
		discard("advance", a.Advance())
	}
}

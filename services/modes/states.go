package modes

import (
	"protonpack-go/types"
	"protonpack-go/x/mathx"
)

var driven = [...]types.Zone{types.ZoneCyclotron, types.ZonePowerCell, types.ZoneSyncGenerator}

func (m *Machine) enterOff() {
	m.boot = bootTimer{}
	m.fire = fireTimer{}
	m.cyclotron().Idle.SetSpeed(m.cfg.Ramp.Last())
	for _, z := range m.cfg.Zones {
		if z.Surface != nil {
			discard("clear", z.Surface.Clear())
		}
	}
	discard("switchboard", m.cfg.Switchboard.Render(false))
	m.transition(types.ModeOff)
}

func (m *Machine) enterBooting(rose bool) {
	if rose {
		m.play(m.cfg.StartupSound)
	}
	now := m.cfg.Clock.Now()
	m.boot = bootTimer{start: now, last: now}
	m.cyclotron().Boot.SetSpeed(m.cfg.Ramp.At(0))
	m.transition(types.ModeBooting)
}

func (m *Machine) booting() {
	discard("switchboard", m.cfg.Switchboard.Render(true))
	for _, z := range driven {
		advance(m.cfg.Zones[z].Boot)
	}

	now := m.cfg.Clock.Now()
	m.boot.elapsed = mathx.RoundSeconds(now.Sub(m.boot.start))
	m.boot.last = now
	m.cyclotron().Boot.SetSpeed(m.cfg.Ramp.At(m.boot.elapsed))

	if m.boot.elapsed > m.cfg.Ramp.Steps() {
		m.enterIdle()
	}
}

func (m *Machine) enterIdle() {
	m.boot = bootTimer{}
	m.fire = fireTimer{}
	m.cyclotron().Idle.SetSpeed(m.cfg.Ramp.Last())
	m.transition(types.ModeIdle)
}

func (m *Machine) idle(firePressed bool) {
	for _, z := range driven {
		advance(m.cfg.Zones[z].Idle)
	}

	now := m.cfg.Clock.Now()
	switch {
	case firePressed && !m.fire.held:
		m.fire = fireTimer{held: true, start: now}
		if m.cfg.FireSpeed > 0 {
			m.cyclotron().Idle.SetSpeed(m.cfg.FireSpeed)
		}
	case !firePressed && m.fire.held:
		m.fire = fireTimer{}
		m.cyclotron().Idle.SetSpeed(m.cfg.Ramp.Last())
	}

	if m.fire.held && m.cfg.OverheatAfter > 0 && now.Sub(m.fire.start) > m.cfg.OverheatAfter {
		m.fire = fireTimer{}
		m.cyclotron().Idle.SetSpeed(m.cfg.Ramp.Last())
		m.transition(types.ModeOverheat)
	}
}

// overheat blocks the whole loop: it plays the warning, runs the overheat
// animators for OverheatDisplay, sleeps Cooldown and returns to Idle. No
// input is read until it returns.
func (m *Machine) overheat() {
	m.play(m.cfg.OverheatSound)

	clk := m.cfg.Clock
	cyc := m.cfg.Zones[types.ZoneCyclotron].Overheat
	pc := m.cfg.Zones[types.ZonePowerCell].Overheat
	start := clk.Now()
	for {
		advance(cyc)
		advance(pc)
		if clk.Now().Sub(start) >= m.cfg.OverheatDisplay {
			break
		}
		clk.Sleep(m.cfg.Tick)
	}

	clk.Sleep(m.cfg.Cooldown)
	m.enterIdle()
}

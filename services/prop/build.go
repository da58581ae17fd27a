// Package prop assembles the controller from a profile and a hardware set.
package prop

import (
	"protonpack-go/drivers/neostrip"
	"protonpack-go/errcode"
	"protonpack-go/services/animation"
	"protonpack-go/services/config"
	"protonpack-go/services/control"
	"protonpack-go/services/input"
	"protonpack-go/services/modes"
	"protonpack-go/types"
	"protonpack-go/x/ramp"
	"protonpack-go/x/timex"
)

// Hardware is what a platform hands over after bring-up.
type Hardware struct {
	Power  input.Pin
	Fire   input.Pin
	Strips [types.NumZones]neostrip.Writer
	Audio  modes.Audio
	Clock  timex.Clock
}

// Prop is a fully wired controller.
type Prop struct {
	Loop    *control.Loop
	Machine *modes.Machine
	Strips  [types.NumZones]*neostrip.Strip
}

// Build validates p and wires every component. onTransition may be nil.
func Build(p config.Profile, hw Hardware, onTransition func(from, to types.Mode)) (*Prop, error) {
	const op = "prop.Build"
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if hw.Clock == nil || hw.Audio == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: op, Msg: "clock or audio"}
	}

	out := &Prop{}
	for _, z := range types.Zones() {
		s := p.Strips[z]
		st, err := neostrip.New(hw.Strips[z], s.Pixels, s.Brightness)
		if err != nil {
			return nil, err
		}
		out.Strips[z] = st
	}

	table, err := ramp.Build(p.ColdSpeed, p.MaxSpeed, p.RampSteps)
	if err != nil {
		return nil, err
	}

	reader, err := input.NewReader(hw.Power, hw.Fire, p.Debounce, hw.Clock)
	if err != nil {
		return nil, err
	}

	m, err := modes.New(modes.Config{
		Timing: modes.Timing{
			Ramp:            table,
			FireSpeed:       p.FireSpeed,
			OverheatAfter:   p.OverheatAfter,
			OverheatDisplay: p.OverheatDisplay,
			Cooldown:        p.Cooldown,
			Tick:            p.Tick,
			StartupSound:    p.StartupSound,
			OverheatSound:   p.OverheatSound,
		},
		Zones:        zones(p, out.Strips, table, hw.Clock),
		Switchboard:  animation.NewSwitchboard(out.Strips[types.ZoneSwitchboard]),
		Audio:        hw.Audio,
		Clock:        hw.Clock,
		OnTransition: onTransition,
	})
	if err != nil {
		return nil, err
	}
	out.Machine = m

	loop, err := control.New(reader, m, hw.Clock, p.Tick)
	if err != nil {
		return nil, err
	}
	out.Loop = loop
	return out, nil
}

// zones binds each strip to its per-mode animators. The cyclotron uses one
// comet for both boot and idle so the ramp carries straight into idle.
func zones(p config.Profile, st [types.NumZones]*neostrip.Strip, table ramp.Table, clk timex.Clock) [types.NumZones]modes.Zone {
	cyc := st[types.ZoneCyclotron]
	cell := st[types.ZonePowerCell]
	sync := st[types.ZoneSyncGenerator]

	spin := animation.NewComet(cyc, clk, table.At(0), animation.White, 2, false, true)

	var zs [types.NumZones]modes.Zone
	zs[types.ZoneCyclotron] = modes.Zone{
		Surface:  cyc,
		Boot:     spin,
		Idle:     spin,
		Overheat: animation.NewBlink(cyc, clk, p.OverheatBlinkSpeed, animation.Red),
	}
	zs[types.ZonePowerCell] = modes.Zone{
		Surface:  cell,
		Boot:     animation.NewPulse(cell, clk, p.BootPulseSpeed, animation.Blue, p.BootPulsePeriod),
		Idle:     animation.NewComet(cell, clk, p.PowerCellIdleSpeed, animation.Blue, cell.Len(), true, false),
		Overheat: animation.NewBlink(cell, clk, p.OverheatBlinkSpeed, animation.Red),
	}
	zs[types.ZoneSyncGenerator] = modes.Zone{
		Surface: sync,
		Boot:    animation.NewPulse(sync, clk, p.BootPulseSpeed, animation.Green, p.BootPulsePeriod),
		Idle:    animation.NewChase(sync, clk, p.SyncGenIdleSpeed, animation.White, 2, 8),
	}
	zs[types.ZoneSwitchboard] = modes.Zone{Surface: st[types.ZoneSwitchboard]}
	return zs
}

// Package config holds the compiled-in prop profile. There is no runtime
// configuration: change the constants and rebuild.
package config

import (
	"time"

	"protonpack-go/errcode"
	"protonpack-go/types"
)

// Strip describes one zone's LED strip.
type Strip struct {
	Pin        int
	Pixels     int
	Brightness float64
}

// UART is a serial link to a peripheral.
type UART struct {
	TX, RX int
	Baud   uint32
}

// Pins are plain GPIO numbers; mapping to machine.Pin happens in the platform.
type Pins struct {
	Power         int
	Fire          int
	ExternalPower int
}

type Profile struct {
	Name string

	// Boot ramp and steady-state cyclotron speeds (frame intervals).
	ColdSpeed time.Duration
	MaxSpeed  time.Duration
	FireSpeed time.Duration
	RampSteps int // seconds

	// Overheat sequence.
	OverheatAfter   time.Duration // 0 disables
	OverheatDisplay time.Duration
	Cooldown        time.Duration

	// Loop pacing and input filtering.
	Tick     time.Duration
	Debounce time.Duration

	// Other zones.
	PowerCellIdleSpeed time.Duration
	SyncGenIdleSpeed   time.Duration
	BootPulseSpeed     time.Duration
	BootPulsePeriod    time.Duration
	OverheatBlinkSpeed time.Duration

	// Sound ordinals into the sorted asset listing.
	StartupSound  int
	OverheatSound int
	SoundDir      string   // host asset directory
	SoundTracks   []string // board-side track listing (MCU)

	Pins   Pins
	Strips [types.NumZones]Strip
	FX     UART
}

// Default is the proton pack as built.
func Default() Profile {
	return Profile{
		Name: "protonpack",

		ColdSpeed: 75 * time.Millisecond,
		MaxSpeed:  15 * time.Millisecond,
		FireSpeed: 7500 * time.Microsecond,
		RampSteps: 5,

		OverheatAfter:   10 * time.Second,
		OverheatDisplay: 2 * time.Second,
		Cooldown:        5 * time.Second,

		Tick:     5 * time.Millisecond,
		Debounce: 10 * time.Millisecond,

		PowerCellIdleSpeed: 30 * time.Millisecond,
		SyncGenIdleSpeed:   50 * time.Millisecond,
		BootPulseSpeed:     100 * time.Millisecond,
		BootPulsePeriod:    2 * time.Second,
		OverheatBlinkSpeed: 50 * time.Millisecond,

		StartupSound:  0,
		OverheatSound: 3,
		SoundDir:      "sounds",
		SoundTracks: []string{
			"01_startup.wav",
			"02_idle_hum.wav",
			"03_fire.wav",
			"04_overheat.wav",
			"05_shutdown.wav",
		},

		Pins: Pins{Power: 4, Fire: 11, ExternalPower: 23},
		Strips: [types.NumZones]Strip{
			types.ZoneCyclotron:     {Pin: 5, Pixels: 39, Brightness: 1},
			types.ZonePowerCell:     {Pin: 6, Pixels: 14, Brightness: 0.25},
			types.ZoneSyncGenerator: {Pin: 9, Pixels: 23, Brightness: 0.5},
			types.ZoneSwitchboard:   {Pin: 10, Pixels: 8, Brightness: 0.5},
		},
		FX: UART{TX: 0, RX: 1, Baud: 9600},
	}
}

// FastestFrame is the shortest animator frame interval in the profile.
func (p Profile) FastestFrame() time.Duration {
	f := p.MaxSpeed
	for _, d := range []time.Duration{
		p.FireSpeed, p.PowerCellIdleSpeed, p.SyncGenIdleSpeed,
		p.BootPulseSpeed, p.OverheatBlinkSpeed,
	} {
		if d > 0 && d < f {
			f = d
		}
	}
	return f
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: "config.Validate", Msg: msg}
}

// Validate rejects profiles the firmware cannot run correctly.
func (p Profile) Validate() error {
	switch {
	case p.RampSteps < 1:
		return invalid("ramp steps")
	case p.MaxSpeed <= 0 || p.ColdSpeed < p.MaxSpeed:
		return invalid("ramp speeds")
	case p.Tick <= 0 || p.Tick >= p.FastestFrame():
		return invalid("tick must be below the fastest frame")
	case p.OverheatAfter < 0 || p.OverheatDisplay < 0 || p.Cooldown < 0:
		return invalid("overheat timing")
	case p.StartupSound < 0 || p.OverheatSound < 0:
		return invalid("sound index")
	}
	for _, z := range types.Zones() {
		s := p.Strips[z]
		if s.Pixels <= 0 || s.Brightness < 0 || s.Brightness > 1 {
			return invalid(z.String() + " strip")
		}
	}
	return nil
}

package config

import (
	"testing"
	"time"

	"protonpack-go/errcode"
	"protonpack-go/types"
)

func TestDefaultProfileIsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}
	if p.FastestFrame() != 7500*time.Microsecond {
		t.Fatalf("fastest frame=%v", p.FastestFrame())
	}
	lengths := []int{39, 14, 23, 8}
	for i, z := range types.Zones() {
		if p.Strips[z].Pixels != lengths[i] {
			t.Fatalf("%s pixels=%d", z, p.Strips[z].Pixels)
		}
	}
	if p.StartupSound != 0 || p.OverheatSound != 3 {
		t.Fatalf("sound ordinals moved")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Profile)
	}{
		{"tick equals fastest frame", func(p *Profile) { p.Tick = p.FireSpeed }},
		{"tick above fastest frame", func(p *Profile) { p.Tick = 20 * time.Millisecond }},
		{"no ramp", func(p *Profile) { p.RampSteps = 0 }},
		{"inverted ramp", func(p *Profile) { p.ColdSpeed = time.Millisecond }},
		{"negative cooldown", func(p *Profile) { p.Cooldown = -time.Second }},
		{"empty strip", func(p *Profile) { p.Strips[types.ZonePowerCell].Pixels = 0 }},
		{"overbright strip", func(p *Profile) { p.Strips[types.ZoneSwitchboard].Brightness = 2 }},
		{"negative sound", func(p *Profile) { p.OverheatSound = -1 }},
	}
	for _, c := range cases {
		p := Default()
		c.mut(&p)
		if err := p.Validate(); errcode.Of(err) != errcode.InvalidParams {
			t.Fatalf("%s: err=%v", c.name, err)
		}
	}
}

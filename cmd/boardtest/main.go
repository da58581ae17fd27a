// cmd/boardtest/main.go
package main

import (
	"image/color"
	"time"

	"protonpack-go/drivers/neostrip"
	"protonpack-go/internal/platform"
	"protonpack-go/services/animation"
	"protonpack-go/services/config"
	"protonpack-go/services/input"
	"protonpack-go/services/prop"
	"protonpack-go/types"
	"protonpack-go/x/logx"
)

// ---------- Configuration ----------

const (
	colourDwell = 400 * time.Millisecond
	trackDwell  = 3 * time.Second
	switchWatch = 20 * time.Second
	samplePace  = 5 * time.Millisecond

	// Cycles: 0 = loop forever
	cyclesToRun = 1
)

var sweep = []color.RGBA{animation.Red, animation.Green, animation.Blue, animation.White}

// ---------- Steps ----------

func strips(p config.Profile, hw prop.Hardware) ([types.NumZones]*neostrip.Strip, bool) {
	var out [types.NumZones]*neostrip.Strip
	ok := true
	for _, z := range types.Zones() {
		s := p.Strips[z]
		st, err := neostrip.New(hw.Strips[z], s.Pixels, s.Brightness)
		if err != nil {
			logx.Println("boardtest", z.String(), "FAIL:", err.Error())
			ok = false
			continue
		}
		out[z] = st
	}
	return out, ok
}

func sweepStrips(st [types.NumZones]*neostrip.Strip) bool {
	ok := true
	for _, z := range types.Zones() {
		s := st[z]
		if s == nil {
			continue
		}
		logx.Println("boardtest", "strip", z.String(), "pixels=", s.Len())
		for _, c := range sweep {
			s.Fill(c)
			if err := s.Show(); err != nil {
				logx.Println("boardtest", z.String(), "FAIL:", err.Error())
				ok = false
				break
			}
			time.Sleep(colourDwell)
		}
		_ = s.Clear()
	}
	return ok
}

func playTracks(p config.Profile, hw prop.Hardware) bool {
	ok := true
	for i, name := range p.SoundTracks {
		logx.Println("boardtest", "track", i, name)
		if err := hw.Audio.Play(i, false); err != nil {
			logx.Println("boardtest", "track", i, "FAIL:", err.Error())
			ok = false
			continue
		}
		time.Sleep(trackDwell)
	}
	return ok
}

// watchSwitches echoes debounced edges so each switch can be checked by hand.
func watchSwitches(p config.Profile, hw prop.Hardware) bool {
	r, err := input.NewReader(hw.Power, hw.Fire, p.Debounce, hw.Clock)
	if err != nil {
		logx.Println("boardtest", "switches FAIL:", err.Error())
		return false
	}
	logx.Println("boardtest", "toggle power and fire now")
	deadline := hw.Clock.Now().Add(switchWatch)
	var power, fire bool
	for hw.Clock.Now().Before(deadline) {
		rd := r.Read()
		if rd.Power != input.EdgeNone {
			power = true
			logx.Println("boardtest", "power", rd.Power.String())
		}
		if rd.Fire != input.EdgeNone {
			fire = true
			logx.Println("boardtest", "fire", rd.Fire.String())
		}
		hw.Clock.Sleep(samplePace)
	}
	if !power || !fire {
		logx.Println("boardtest", "switches FAIL: power seen=", power, "fire seen=", fire)
	}
	return power && fire
}

// ---------- Main ----------

func main() {
	p := config.Default()
	hw, err := platform.Open(p)
	if err != nil {
		logx.Println("boardtest", "bring-up FAIL:", err.Error())
		return
	}

	st, ok := strips(p, hw)
	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		logx.Println("boardtest", "cycle", cycle)
		pass := ok
		pass = sweepStrips(st) && pass
		pass = playTracks(p, hw) && pass
		pass = watchSwitches(p, hw) && pass

		if sb := st[types.ZoneSwitchboard]; sb != nil {
			_ = animation.NewSwitchboard(sb).Render(pass)
		}
		if pass {
			logx.Println("boardtest", "PASS")
		} else {
			logx.Println("boardtest", "FAIL")
		}
	}
}

package prop

import (
	"image/color"
	"testing"

	"protonpack-go/errcode"
	"protonpack-go/services/config"
	"protonpack-go/types"
	"protonpack-go/x/logx"
	"protonpack-go/x/timex"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func init() { logx.SetOutput(nopWriter{}) }

// level is an active-low switch: high until pressed.
type level struct{ low bool }

func (l *level) Get() bool { return !l.low }

type frames struct {
	shows int
	last  []color.RGBA
}

func (f *frames) WriteColors(c []color.RGBA) error {
	f.shows++
	f.last = append(f.last[:0], c...)
	return nil
}

func (f *frames) lit() bool {
	for _, c := range f.last {
		if c.R|c.G|c.B != 0 {
			return true
		}
	}
	return false
}

type sounds struct{ played []int }

func (s *sounds) Play(i int, loop bool) error { s.played = append(s.played, i); return nil }

type rig struct {
	power, fire level
	strips      [types.NumZones]*frames
	audio       sounds
	clock       *timex.Fake
	seen        []types.Mode
	prop        *Prop
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{clock: timex.NewFake()}
	hw := Hardware{Power: &r.power, Fire: &r.fire, Audio: &r.audio, Clock: r.clock}
	for i := range r.strips {
		r.strips[i] = &frames{}
		hw.Strips[i] = r.strips[i]
	}
	p, err := Build(config.Default(), hw, func(_, to types.Mode) { r.seen = append(r.seen, to) })
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	r.prop = p
	return r
}

// until ticks the loop until the machine reaches want or limit ticks pass.
func (r *rig) until(t *testing.T, want types.Mode, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if r.prop.Loop.Tick() == want {
			return
		}
	}
	t.Fatalf("never reached %s, mode=%s", want, r.prop.Machine.Mode())
}

func TestBootsToIdleAndPowersDown(t *testing.T) {
	r := newRig(t)
	r.until(t, types.ModeOff, 1)

	r.power.low = true
	start := r.clock.Now()
	r.until(t, types.ModeIdle, 2000)
	if took := r.clock.Now().Sub(start); took < 5500e6 || took > 5600e6 {
		t.Fatalf("boot took %v", took)
	}
	if len(r.audio.played) != 1 || r.audio.played[0] != 0 {
		t.Fatalf("played=%v", r.audio.played)
	}
	if !r.strips[types.ZoneSwitchboard].lit() {
		t.Fatalf("switchboard dark after boot")
	}
	r.until(t, types.ModeIdle, 20)
	if !r.strips[types.ZoneCyclotron].lit() {
		t.Fatalf("cyclotron dark in idle")
	}

	r.power.low = false
	r.until(t, types.ModeOff, 10)
	for _, z := range types.Zones() {
		if r.strips[z].lit() {
			t.Fatalf("%s still lit after power off", z)
		}
	}
	want := []types.Mode{types.ModeBooting, types.ModeIdle, types.ModeOff}
	if len(r.seen) != len(want) {
		t.Fatalf("transitions=%v", r.seen)
	}
	for i := range want {
		if r.seen[i] != want[i] {
			t.Fatalf("transitions=%v", r.seen)
		}
	}
}

func TestHeldTriggerOverheats(t *testing.T) {
	r := newRig(t)
	r.power.low = true
	r.until(t, types.ModeIdle, 2000)

	r.fire.low = true
	r.until(t, types.ModeOverheat, 2200)
	r.until(t, types.ModeIdle, 1)
	if got := r.audio.played; len(got) != 2 || got[1] != 3 {
		t.Fatalf("played=%v", got)
	}
	if r.prop.Machine.Firing() {
		t.Fatalf("still firing straight after cooldown")
	}
}

func TestBuildRejects(t *testing.T) {
	var power, fire level
	hw := Hardware{Power: &power, Fire: &fire, Audio: &sounds{}, Clock: timex.NewFake()}
	for i := range hw.Strips {
		hw.Strips[i] = &frames{}
	}

	bad := config.Default()
	bad.Tick = bad.FireSpeed
	if _, err := Build(bad, hw, nil); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad pacing: err=%v", err)
	}

	noStrip := hw
	noStrip.Strips[types.ZoneSyncGenerator] = nil
	if _, err := Build(config.Default(), noStrip, nil); errcode.Of(err) != errcode.HardwareAbsent {
		t.Fatalf("missing strip: err=%v", err)
	}

	noPin := hw
	noPin.Fire = nil
	if _, err := Build(config.Default(), noPin, nil); errcode.Of(err) != errcode.HardwareAbsent {
		t.Fatalf("missing pin: err=%v", err)
	}

	noAudio := hw
	noAudio.Audio = nil
	if _, err := Build(config.Default(), noAudio, nil); errcode.Of(err) != errcode.HardwareAbsent {
		t.Fatalf("missing audio: err=%v", err)
	}
}

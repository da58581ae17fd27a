//go:build rp2040 || rp2350

package platform

import (
	"image/color"
	"machine"
	"runtime/interrupt"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"

	"protonpack-go/services/audio"
	"protonpack-go/services/audio/fxboard"
	"protonpack-go/services/config"
	"protonpack-go/services/prop"
	"protonpack-go/types"
	"protonpack-go/x/logx"
	"protonpack-go/x/timex"
)

// strip drives one ws2812 chain. The bit-banged protocol is timing
// critical, so frames go out with interrupts off.
type strip struct{ dev ws2812.Device }

func (s *strip) WriteColors(c []color.RGBA) (err error) {
	state := interrupt.Disable()
	err = s.dev.WriteColors(c)
	interrupt.Restore(state)
	return err
}

func input(n int) machine.Pin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return p
}

func output(n int) machine.Pin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return p
}

// Open brings up the board: external power, switches, strips and the
// sound board UART.
func Open(p config.Profile) (prop.Hardware, error) {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	output(p.Pins.ExternalPower).High()

	var hw prop.Hardware
	hw.Clock = timex.System{}
	hw.Power = input(p.Pins.Power)
	hw.Fire = input(p.Pins.Fire)
	for _, z := range types.Zones() {
		hw.Strips[z] = &strip{dev: ws2812.New(output(p.Strips[z].Pin))}
	}

	u := uartx.UART1
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: p.FX.Baud,
		TX:       machine.Pin(p.FX.TX),
		RX:       machine.Pin(p.FX.RX),
	}); err != nil {
		return hw, err
	}
	fx, err := fxboard.New(u, audio.New(p.SoundTracks))
	if err != nil {
		return hw, err
	}
	hw.Audio = fx
	logx.Println("platform", "rp2 up,", len(p.SoundTracks), "tracks")
	return hw, nil
}

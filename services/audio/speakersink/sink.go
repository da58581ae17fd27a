// Package speakersink plays audio on the host's sound device.
package speakersink

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"protonpack-go/errcode"
)

const resampleQuality = 4

type Sink struct {
	rate beep.SampleRate
}

// Open initialises the speaker at rate with a 100ms buffer.
func Open(rate beep.SampleRate) (*Sink, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, errcode.Wrap(errcode.HardwareAbsent, "speakersink.Open", err)
	}
	return &Sink{rate: rate}, nil
}

// Replace drops whatever is playing and starts s, resampled if needed.
func (k *Sink) Replace(s beep.Streamer, format beep.Format) error {
	if format.SampleRate != k.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, k.rate, s)
	}
	speaker.Clear()
	speaker.Play(s)
	return nil
}

func (k *Sink) Close() {
	speaker.Clear()
	speaker.Close()
}

// Command propsim runs the prop controller in a terminal. Strips are drawn
// as rows of blocks, the switches are keys and sounds play on the host's
// audio device.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"golang.org/x/sync/errgroup"

	"protonpack-go/errcode"
	"protonpack-go/services/audio"
	"protonpack-go/services/audio/speakersink"
	"protonpack-go/services/config"
	"protonpack-go/services/modes"
	"protonpack-go/services/prop"
	"protonpack-go/types"
	"protonpack-go/x/logx"
	"protonpack-go/x/timex"
)

const sampleRate = beep.SampleRate(44100)

// mute stands in when there is no sound device.
type mute struct{}

func (mute) Play(int, bool) error {
	return &errcode.E{C: errcode.HardwareAbsent, Op: "propsim.Play", Msg: "no audio device"}
}

func openAudio(root, dir string) (modes.Audio, func()) {
	fsys := os.DirFS(root)
	lib, err := audio.Scan(fsys, dir)
	if err != nil {
		logx.Println("propsim", "sounds:", err.Error())
		return mute{}, func() {}
	}
	sink, err := speakersink.Open(sampleRate)
	if err != nil {
		logx.Println("propsim", "speaker:", err.Error())
		return mute{}, func() {}
	}
	pl, err := audio.NewPlayer(lib, fsys, sink)
	if err != nil {
		sink.Close()
		return mute{}, func() {}
	}
	logx.Println("propsim", lib.Len(), "sounds in", dir)
	return pl, func() {
		_ = pl.Close()
		sink.Close()
	}
}

func run(ctx context.Context, s tcell.Screen, p config.Profile, a modes.Audio) error {
	d := newDisplay(s)
	prev := logx.SetOutput(d)
	defer logx.SetOutput(prev)

	var pn panel
	hw := prop.Hardware{Power: &pn.power, Fire: &pn.fire, Audio: a, Clock: timex.System{}}
	for _, z := range types.Zones() {
		hw.Strips[z] = d.strip(z)
	}
	pk, err := prop.Build(p, hw, func(_, to types.Mode) { d.mode(to) })
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return pk.Loop.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		for {
			switch ev := s.PollEvent().(type) {
			case nil, *tcell.EventInterrupt:
				return nil
			case *tcell.EventKey:
				if pn.key(ev) {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		// Wakes the pump if the loop stopped first.
		_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func sim(root string) int {
	p := config.Default()
	a, closeAudio := openAudio(root, p.SoundDir)
	defer closeAudio()

	s, err := tcell.NewScreen()
	if err == nil {
		err = s.Init()
	}
	if err != nil {
		logx.Println("propsim", err.Error())
		return 1
	}
	err = run(context.Background(), s, p, a)
	s.Fini()
	if err != nil {
		logx.Println("propsim", err.Error())
		return 1
	}
	return 0
}

func main() {
	root := flag.String("root", ".", "directory holding the sound folder")
	flag.Parse()
	os.Exit(sim(*root))
}

package audio

import (
	"io/fs"
	"strconv"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"protonpack-go/errcode"
)

// Sink is an audio output. Replace stops whatever is playing and starts s.
type Sink interface {
	Replace(s beep.Streamer, format beep.Format) error
}

// Player decodes WAV assets from a file system and hands them to a Sink.
type Player struct {
	lib  *Library
	fsys fs.FS
	sink Sink
	cur  beep.StreamSeekCloser
}

func NewPlayer(lib *Library, fsys fs.FS, sink Sink) (*Player, error) {
	if lib == nil || fsys == nil || sink == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: "audio.NewPlayer"}
	}
	return &Player{lib: lib, fsys: fsys, sink: sink}, nil
}

// Play starts asset index, optionally looping forever. Any failure leaves
// the current playback untouched.
func (p *Player) Play(index int, loop bool) error {
	name, ok := p.lib.Name(index)
	if !ok {
		return &errcode.E{C: errcode.NoSuchSound, Op: "audio.Play", Msg: "index " + strconv.Itoa(index)}
	}
	f, err := p.fsys.Open(name)
	if err != nil {
		return &errcode.E{C: errcode.NoSuchSound, Op: "audio.Play", Msg: name, Err: err}
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return &errcode.E{C: errcode.DecodeFailed, Op: "audio.Play", Msg: name, Err: err}
	}
	var st beep.Streamer = s
	if loop {
		st = beep.Loop(-1, s)
	}
	if err := p.sink.Replace(st, format); err != nil {
		_ = s.Close()
		return &errcode.E{C: errcode.AudioBusy, Op: "audio.Play", Msg: name, Err: err}
	}
	if p.cur != nil {
		_ = p.cur.Close()
	}
	p.cur = s
	return nil
}

// Close releases the asset that is playing, if any.
func (p *Player) Close() error {
	if p.cur == nil {
		return nil
	}
	err := p.cur.Close()
	p.cur = nil
	return err
}

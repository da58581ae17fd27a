// Package fxboard drives a serial sound board that stores the prop's
// sound files itself and plays them by track number.
package fxboard

import (
	"io"
	"strconv"

	"protonpack-go/errcode"
	"protonpack-go/services/audio"
)

// Board sends "#<n>\n" to start track n. The board numbers tracks in the
// same sorted order as the library.
type Board struct {
	w   io.Writer
	lib *audio.Library
	buf []byte
}

func New(w io.Writer, lib *audio.Library) (*Board, error) {
	if w == nil || lib == nil {
		return nil, &errcode.E{C: errcode.HardwareAbsent, Op: "fxboard.New"}
	}
	return &Board{w: w, lib: lib, buf: make([]byte, 0, 8)}, nil
}

// Play starts track index. Looping is configured on the board per file,
// so loop is ignored.
func (b *Board) Play(index int, loop bool) error {
	if _, ok := b.lib.Name(index); !ok {
		return &errcode.E{C: errcode.NoSuchSound, Op: "fxboard.Play", Msg: "index " + strconv.Itoa(index)}
	}
	b.buf = append(b.buf[:0], '#')
	b.buf = strconv.AppendInt(b.buf, int64(index), 10)
	b.buf = append(b.buf, '\n')
	if _, err := b.w.Write(b.buf); err != nil {
		return errcode.Wrap(errcode.AudioBusy, "fxboard.Play", err)
	}
	return nil
}

// Stop sends the stop command.
func (b *Board) Stop() error {
	if _, err := b.w.Write([]byte("q\n")); err != nil {
		return errcode.Wrap(errcode.AudioBusy, "fxboard.Stop", err)
	}
	return nil
}

package fxboard

import (
	"bytes"
	"errors"
	"testing"

	"protonpack-go/errcode"
	"protonpack-go/services/audio"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("tx full") }

func TestPlayWritesTrackCommand(t *testing.T) {
	var buf bytes.Buffer
	lib := audio.New([]string{"a.wav", "b.wav", "c.wav", "d.wav"})
	b, err := New(&buf, lib)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Play(0, false); err != nil {
		t.Fatal(err)
	}
	if err := b.Play(3, true); err != nil {
		t.Fatal(err)
	}
	if err := b.Stop(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "#0\n#3\nq\n" {
		t.Fatalf("wire=%q", buf.String())
	}
}

func TestPlayRejectsUnknownTrack(t *testing.T) {
	var buf bytes.Buffer
	b, _ := New(&buf, audio.New([]string{"a.wav"}))
	if err := b.Play(3, false); errcode.Of(err) != errcode.NoSuchSound {
		t.Fatalf("err=%v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("command sent for unknown track: %q", buf.String())
	}
}

func TestWriteFailureIsBusy(t *testing.T) {
	b, _ := New(failWriter{}, audio.New([]string{"a.wav"}))
	if err := b.Play(0, false); errcode.Of(err) != errcode.AudioBusy {
		t.Fatalf("err=%v", err)
	}
}

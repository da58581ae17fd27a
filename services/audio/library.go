// Package audio plays the prop's sound effects by ordinal index.
// Playback is best effort: every failure is returned as an *errcode.E and
// callers are expected to carry on without sound.
package audio

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"protonpack-go/errcode"
)

// Library is the sorted list of sound assets. Indices are stable for the
// life of the library, so adding or renaming a file shifts them.
type Library struct {
	names []string
}

// New builds a library from a compiled-in listing.
func New(names []string) *Library {
	l := &Library{names: append([]string(nil), names...)}
	sort.Strings(l.names)
	return l
}

// Scan lists the .wav files of dir in fsys, skipping hidden files.
func Scan(fsys fs.FS, dir string) (*Library, error) {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errcode.Wrap(errcode.HardwareAbsent, "audio.Scan", err)
	}
	var names []string
	for _, e := range ents {
		n := e.Name()
		if e.IsDir() || strings.HasPrefix(n, ".") || !strings.HasSuffix(strings.ToLower(n), ".wav") {
			continue
		}
		names = append(names, path.Join(dir, n))
	}
	return New(names), nil
}

func (l *Library) Len() int { return len(l.names) }

// Name returns the asset at index i.
func (l *Library) Name(i int) (string, bool) {
	if i < 0 || i >= len(l.names) {
		return "", false
	}
	return l.names[i], true
}

// Names returns a copy of the listing.
func (l *Library) Names() []string { return append([]string(nil), l.names...) }

// Package logx writes tagged console lines ("[tag] ...").
// Output defaults to the runtime console (USB CDC on the board).
package logx

import (
	"fmt"
	"io"
	"sync"
)

type console struct{}

func (console) Write(p []byte) (int, error) {
	print(string(p))
	return len(p), nil
}

var (
	mu  sync.Mutex
	out io.Writer = console{}
)

// SetOutput redirects log lines and returns the previous writer.
// A nil w restores the console.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	if w == nil {
		w = console{}
	}
	out = w
	return prev
}

// Println writes one line prefixed by "[tag] ".
func Println(tag string, a ...any) {
	line := "[" + tag + "] " + fmt.Sprintln(a...)
	mu.Lock()
	_, _ = io.WriteString(out, line)
	mu.Unlock()
}

package bsp

import (
	"fmt"
	"os"
	"sync"
)

// Logger is the line-oriented log sink the shim writes bring-up and
// lifecycle messages to.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Discard is a Logger that drops everything.
var Discard Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}

type stderrLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *stderrLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *stderrLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

func ensureLogger(log Logger) Logger {
	if log != nil {
		return log
	}
	return &stderrLogger{w: os.Stderr}
}

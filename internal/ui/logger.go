package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger prints verbose diagnostics when enabled. Output goes to stderr so
// it never interleaves with report output on stdout.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// NewLogger creates a new Logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{Enabled: enabled, W: os.Stderr}
}

// Debugf prints one dim diagnostic line. Safe to call on a nil Logger.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || !l.Enabled {
		return
	}
	fmt.Fprintln(l.W, color.New(color.Faint).Sprintf(format, args...))
}

// Package log provides the verbose diagnostic logger behind the
// --verbose flag: pipeline stages report config resolution, parse
// sizes, and per-metric values through it without touching stdout.
package log

import (
	"fmt"
	"io"
)

// Logger writes progress messages to W when Enabled is true. The zero
// value is a silent logger, so callers never need a nil check.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes one formatted line to W. It is a no-op when the
// logger is disabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

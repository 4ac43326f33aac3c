package cliutil

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI colour codes used in command summaries.
const (
	Green  = "32"
	Yellow = "33"
	Red    = "31"
	Bold   = "1"
)

// Painter wraps text in ANSI colour codes when enabled.
type Painter struct {
	enabled bool
}

// NewPainter enables colour only when w is a terminal and NO_COLOR is unset.
func NewPainter(w io.Writer) Painter {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return Painter{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return Painter{}
	}
	return Painter{enabled: term.IsTerminal(int(f.Fd()))}
}

// Enabled reports whether Paint emits escape codes.
func (p Painter) Enabled() bool { return p.enabled }

// Paint returns s wrapped in the given colour code.
func (p Painter) Paint(code, s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

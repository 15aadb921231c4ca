// Package ansi provides ANSI escape codes for the auxiliary terminal output
// (list and validate). The existence report itself is always plain text.
package ansi

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"
	Green = "\033[32m"
	Red   = "\033[31m"
	Cyan  = "\033[36m"
)

// Painter wraps text in SGR codes when enabled.
type Painter struct {
	Enabled bool
}

// For returns a Painter that is enabled when f is a terminal and NO_COLOR is unset.
func For(f *os.File) Painter {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return Painter{}
	}
	fd := f.Fd()
	return Painter{Enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Paint returns s wrapped in codes followed by Reset, or s unchanged when disabled.
func (p Painter) Paint(s string, codes ...string) string {
	if !p.Enabled || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

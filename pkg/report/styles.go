// Package report renders scan results and usage text.
package report

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styles holds color formatters for result output.
type Styles struct {
	fileName  *color.Color
	separator *color.Color
	match     *color.Color
	heading   *color.Color
	warning   *color.Color
}

// NewStyles creates the formatters. Color state is set per formatter so the
// global color.NoColor setting does not leak in either direction.
func NewStyles(enabled bool) *Styles {
	s := &Styles{
		fileName:  color.New(color.FgMagenta),
		separator: color.New(color.FgCyan),
		match:     color.New(color.Bold, color.FgRed),
		heading:   color.New(color.Bold),
		warning:   color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{s.fileName, s.separator, s.match, s.heading, s.warning} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// ColorEnabled resolves a color mode (auto, always, never) for out.
// auto enables color only on a terminal with NO_COLOR unset.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := out.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return false
		}
		return term.IsTerminal(int(f.Fd()))
	}
}

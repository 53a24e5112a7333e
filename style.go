package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sergev/brise/parser"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles decorates diagnostics written to one stream. Colour depends on
// what the stream is connected to.
type styles struct {
	errorTag lipgloss.Style
	warnTag  lipgloss.Style
	position lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		return styles{
			errorTag: r.NewStyle(),
			warnTag:  r.NewStyle(),
			position: r.NewStyle(),
		}
	}
	return styles{
		errorTag: r.NewStyle().Foreground(colorError).Bold(true),
		warnTag:  r.NewStyle().Foreground(colorWarning).Bold(true),
		position: r.NewStyle().Foreground(colorMuted),
	}
}

// diagnostics splits err into one line per reported problem.
func diagnostics(err error) []string {
	var lexErrs parser.LexErrors
	if errors.As(err, &lexErrs) {
		lines := make([]string, 0, len(lexErrs))
		for _, e := range lexErrs {
			lines = append(lines, e.Error())
		}
		return lines
	}
	return []string{err.Error()}
}

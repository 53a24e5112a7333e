package token

import "fmt"

// Position tracks a source location within a brise source file.
type Position struct {
	File   string // source path; empty when the text did not come from a file
	Line   int    // one-based line number
	Column int    // one-based column number (rune count)
}

// StartOf returns the position of the first rune of file.
func StartOf(file string) Position {
	return Position{File: file, Line: 1, Column: 1}
}

// IsValid reports whether p carries a line and column.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String renders the position the way diagnostics print it:
// "[file, line:col]", or "[line:col]" without a file.
func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("[%s, %d:%d]", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("[%d:%d]", p.Line, p.Column)
}

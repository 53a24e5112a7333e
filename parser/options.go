package parser

import (
	"log/slog"

	"github.com/sergev/brise/ast"
)

// Option configures the parse entry points.
type Option func(*options)

type options struct {
	file   string
	ids    *ast.Sequence
	logger *slog.Logger
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = ast.NewSequence(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithFile sets the file identity stamped on positions.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithSequence makes number literals take their identities from seq.
// Without it every parse numbers its literals from zero.
func WithSequence(seq *ast.Sequence) Option {
	return func(o *options) {
		o.ids = seq
	}
}

// WithLogger routes debug tracing of the lexing and parsing passes to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

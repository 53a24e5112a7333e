package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergev/brise/token"
)

// LexErrorKind enumerates lexical failures.
type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	UnterminatedString
)

// LexError is a single lexical failure.
type LexError struct {
	Kind LexErrorKind
	Char rune // offending character for UnexpectedCharacter
	Pos  token.Position
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("%s Unexpected character: %c", e.Pos, e.Char)
	case UnterminatedString:
		return fmt.Sprintf("%s Missing end of string `\"`, string started here but never ended", e.Pos)
	default:
		return fmt.Sprintf("%s lexical error", e.Pos)
	}
}

// Incomplete reports whether more input could fix the error.
func (e *LexError) Incomplete() bool {
	return e.Kind == UnterminatedString
}

// LexErrors is every lexical failure of one pass, in source order.
type LexErrors []*LexError

func (errs LexErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (errs LexErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}

// Incomplete reports whether the pass ended inside a string. An
// unterminated string swallows the rest of the input, so it can only be
// the last error.
func (errs LexErrors) Incomplete() bool {
	return len(errs) > 0 && errs[len(errs)-1].Incomplete()
}

// ExprErrorKind enumerates structural parse failures.
type ExprErrorKind int

const (
	UnclosedGrouping ExprErrorKind = iota
	ExpectedToken
	UnexpectedToken
	UnsupportedFormattedString
)

// ExprError is the first structural error met while parsing an
// expression.
type ExprError struct {
	Kind  ExprErrorKind
	Token token.Token // offending token, zero when input ran out
	Pos   token.Position
	AtEnd bool // the token sequence was exhausted
}

func (e *ExprError) Error() string {
	switch e.Kind {
	case UnclosedGrouping:
		return fmt.Sprintf("%s A grouping expression was started here but was never closed", e.Pos)
	case ExpectedToken:
		return fmt.Sprintf("%s A token was expected here", e.Pos)
	case UnexpectedToken:
		return fmt.Sprintf("%s Expected an expression, found `%s`", e.Pos, e.Token.Lexeme())
	case UnsupportedFormattedString:
		return fmt.Sprintf("%s Formatted strings are not supported in expressions", e.Pos)
	default:
		return fmt.Sprintf("%s parse error", e.Pos)
	}
}

// Incomplete reports whether the parser ran out of tokens.
func (e *ExprError) Incomplete() bool {
	return e.AtEnd
}

// FileError reports a source file that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read file: %s - %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

type incompleter interface {
	Incomplete() bool
}

// IsIncomplete reports whether err means the input stopped too early:
// an unterminated string, or tokens running out inside an expression.
func IsIncomplete(err error) bool {
	var inc incompleter
	if errors.As(err, &inc) {
		return inc.Incomplete()
	}
	return false
}

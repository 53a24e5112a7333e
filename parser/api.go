package parser

import (
	"io"

	"github.com/sergev/brise/ast"
	"github.com/sergev/brise/token"
)

// Result is one parsed expression together with the token stream it was
// built from.
type Result struct {
	Expr   ast.Expr
	Tokens []token.Token // full lexer output
	Rest   []token.Token // tokens after the expression
}

// ParseString lexes src and parses one expression from the front of the
// token stream.
func ParseString(src string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	return parseSource(src, o)
}

// ParseReader consumes brise source from an io.Reader and parses one
// expression from it.
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data), opts...)
}

// ParseFile reads the file at path and parses one expression from it.
// Positions carry path as their file identity.
func ParseFile(path string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	o.file = path
	src, err := readFile(path)
	if err != nil {
		o.logger.Debug("read source", "file", path, "error", err)
		return nil, err
	}
	return parseSource(src, o)
}

func parseSource(src string, o options) (*Result, error) {
	tokens, err := Tokenize(src, o.file)
	if err != nil {
		if errs, ok := err.(LexErrors); ok {
			o.logger.Debug("lexing failed", "file", o.file, "errors", len(errs))
		}
		return nil, err
	}
	o.logger.Debug("lexed source", "file", o.file, "tokens", len(tokens))

	p := newExprParser(tokens, o)
	expr, err := p.Parse()
	if err != nil {
		o.logger.Debug("parsing failed", "file", o.file, "consumed", p.Consumed(), "error", err)
		return nil, err
	}
	rest := p.Remaining()
	o.logger.Debug("parsed expression", "file", o.file, "consumed", p.Consumed(), "rest", len(rest))
	return &Result{
		Expr:   expr,
		Tokens: tokens,
		Rest:   rest,
	}, nil
}

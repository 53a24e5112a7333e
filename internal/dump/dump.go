// Package dump renders token streams and expression trees in the output
// formats of the brise command: s-expressions, YAML or JSON.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sergev/brise/ast"
	"github.com/sergev/brise/sexpr"
	"github.com/sergev/brise/token"
)

// Format selects an output syntax.
type Format string

const (
	Sexpr Format = "sexpr"
	YAML  Format = "yaml"
	JSON  Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Sexpr, YAML, JSON:
		return f, nil
	case "":
		return Sexpr, nil
	}
	return "", fmt.Errorf("unknown output format %q (want sexpr, yaml or json)", name)
}

// Pos is the structured form of a token.Position.
type Pos struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func posOf(p token.Position) Pos {
	return Pos{File: p.File, Line: p.Line, Column: p.Column}
}

// Token is the structured form of a token.Token.
type Token struct {
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	Pos  Pos    `json:"pos" yaml:"pos"`
}

// FromTokens converts a token stream.
func FromTokens(tokens []token.Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		t := Token{Kind: tok.Kind.String(), Pos: posOf(tok.Pos)}
		switch tok.Kind {
		case token.Identifier, token.String:
			t.Text = tok.Text
		case token.Number:
			t.Text = tok.Lexeme()
		}
		out = append(out, t)
	}
	return out
}

// Node is the structured form of an ast.Expr.
type Node struct {
	Node     string  `json:"node" yaml:"node"`
	Op       string  `json:"op,omitempty" yaml:"op,omitempty"`
	Kind     string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value    string  `json:"value,omitempty" yaml:"value,omitempty"`
	ID       *uint64 `json:"id,omitempty" yaml:"id,omitempty"`
	Pos      Pos     `json:"pos" yaml:"pos"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// FromExpr converts an expression tree. Number literal identities are
// included when ids is set. A subtree shared by several parents is
// converted once per occurrence.
func FromExpr(expr ast.Expr, ids bool) *Node {
	if expr == nil {
		return nil
	}
	n := &Node{Pos: posOf(expr.Pos())}
	switch e := expr.(type) {
	case *ast.Binary:
		n.Node = "binary"
		n.Op = e.Op.Op.String()
		n.Children = []*Node{FromExpr(e.Left, ids), FromExpr(e.Right, ids)}
	case *ast.Unary:
		n.Node = "unary"
		n.Op = e.Op.Op.String()
		n.Children = []*Node{FromExpr(e.Operand, ids)}
	case *ast.Grouping:
		n.Node = "grouping"
		n.Children = []*Node{FromExpr(e.Inner, ids)}
	case *ast.Identifier:
		n.Node = "identifier"
		n.Value = e.Name
	case *ast.Literal:
		n.Node = "literal"
		n.Kind = e.Kind.String()
		switch e.Kind {
		case ast.LitNumber:
			n.Value = e.Number.String()
			if ids {
				id := e.Number.ID
				n.ID = &id
			}
		case ast.LitString:
			n.Value = e.Text
		case ast.LitFormattedString:
			for _, part := range e.Parts {
				n.Children = append(n.Children, FromExpr(part, ids))
			}
		}
	default:
		panic(fmt.Sprintf("dump: unexpected expression %T", expr))
	}
	return n
}

// WriteTokens writes tokens to w in format f. The s-expression format
// prints one token per line.
func WriteTokens(w io.Writer, f Format, tokens []token.Token) error {
	if f == Sexpr {
		for _, tok := range tokens {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(w, f, FromTokens(tokens))
}

// WriteExpr writes expr to w in format f.
func WriteExpr(w io.Writer, f Format, expr ast.Expr, ids bool) error {
	if f == Sexpr {
		text := sexpr.Format(expr)
		if ids {
			text = sexpr.FormatWithIDs(expr)
		}
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return encode(w, f, FromExpr(expr, ids))
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown output format %q", string(f))
}

package parser

import (
	"fmt"

	"github.com/sergev/brise/ast"
	"github.com/sergev/brise/token"
)

// ExprParser builds one expression from a token sequence. It reads the
// sequence through a forward cursor and never modifies it.
type ExprParser struct {
	tokens []token.Token
	pos    int
	ids    *ast.Sequence
	start  token.Position
}

// NewExprParser returns a parser positioned at the first token.
func NewExprParser(tokens []token.Token, opts ...Option) *ExprParser {
	return newExprParser(tokens, buildOptions(opts))
}

func newExprParser(tokens []token.Token, o options) *ExprParser {
	return &ExprParser{
		tokens: tokens,
		ids:    o.ids,
		start:  token.StartOf(o.file),
	}
}

// ParseExpr parses one expression from the front of tokens and returns
// it together with the tokens it did not consume.
func ParseExpr(tokens []token.Token, opts ...Option) (ast.Expr, []token.Token, error) {
	p := NewExprParser(tokens, opts...)
	expr, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}
	return expr, p.Remaining(), nil
}

// Parse parses one expression starting at the cursor. It stops at the
// first structural error; no recovery is attempted.
func (p *ExprParser) Parse() (ast.Expr, error) {
	return p.parseOr()
}

// Remaining returns the tokens after the cursor.
func (p *ExprParser) Remaining() []token.Token {
	return p.tokens[p.pos:]
}

// Consumed reports how many tokens the parser has taken.
func (p *ExprParser) Consumed() int {
	return p.pos
}

func (p *ExprParser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *ExprParser) check(pred func(token.Kind) bool) bool {
	tok, ok := p.peek()
	return ok && pred(tok.Kind)
}

func (p *ExprParser) checkKind(kind token.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

func (p *ExprParser) advance() token.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// lastPos is where errors point once the input is exhausted.
func (p *ExprParser) lastPos() token.Position {
	if p.pos > 0 {
		return p.tokens[p.pos-1].Pos
	}
	return p.start
}

func (p *ExprParser) errorAtEnd(kind ExprErrorKind) error {
	return &ExprError{Kind: kind, Pos: p.lastPos(), AtEnd: true}
}

func (p *ExprParser) errorAt(kind ExprErrorKind, pos token.Position, tok token.Token) error {
	return &ExprError{Kind: kind, Token: tok, Pos: pos}
}

func binaryOperator(tok token.Token) ast.BinaryOperator {
	op, err := ast.BinaryOperatorFromToken(tok)
	if err != nil {
		panic(fmt.Sprintf("parser: grammar guard admitted %v", err))
	}
	return op
}

func unaryOperator(tok token.Token) ast.UnaryOperator {
	op, err := ast.UnaryOperatorFromToken(tok)
	if err != nil {
		panic(fmt.Sprintf("parser: grammar guard admitted %v", err))
	}
	return op
}

// parseOr recurses into itself for the right operand, so || groups to
// the right: a || b || c is a || (b || c).
func (p *ExprParser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.checkKind(token.OrOr) {
		opTok := p.advance()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(left, binaryOperator(opTok), right), nil
	}
	return left, nil
}

// parseAnd groups && to the right, like parseOr.
func (p *ExprParser) parseAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if p.checkKind(token.AndAnd) {
		opTok := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(left, binaryOperator(opTok), right), nil
	}
	return left, nil
}

func (p *ExprParser) parseEquality() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.Kind.IsEquality) {
		opTok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(left, binaryOperator(opTok), right)
	}
	return left, nil
}

func (p *ExprParser) parseComparison() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(token.Kind.IsComparison) {
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(left, binaryOperator(opTok), right)
	}
	return left, nil
}

func (p *ExprParser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.check(token.Kind.IsTerm) {
		opTok := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(left, binaryOperator(opTok), right)
	}
	return left, nil
}

// parseFactor applies at most one * or /. Unlike the other binary
// levels it does not fold, so a * b * c stops after a * b and leaves
// "* c" unconsumed.
func (p *ExprParser) parseFactor() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.check(token.Kind.IsFactor) {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(left, binaryOperator(opTok), right), nil
	}
	return left, nil
}

func (p *ExprParser) parseUnary() (ast.Expr, error) {
	if p.check(token.Kind.IsUnary) {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(unaryOperator(opTok), operand), nil
	}
	return p.parseCall()
}

// parseCall is where call syntax will attach; for now it is primary.
func (p *ExprParser) parseCall() (ast.Expr, error) {
	return p.parsePrimary()
}

func (p *ExprParser) parsePrimary() (ast.Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorAtEnd(ExpectedToken)
	}
	switch tok.Kind {
	case token.LeftParen:
		return p.parseGrouping()
	case token.Identifier:
		p.advance()
		return ast.NewIdentifier(tok.Text, tok.Pos), nil
	case token.Number:
		p.advance()
		return ast.NewNumber(tok.Number, p.ids.Next(), tok.Pos), nil
	case token.String:
		p.advance()
		return ast.NewString(tok.Text, tok.Pos), nil
	case token.True, token.False:
		p.advance()
		return ast.NewBool(tok.Kind == token.True, tok.Pos), nil
	case token.QuestionMark:
		p.advance()
		return ast.NewUnknown(tok.Pos), nil
	case token.FormattedString:
		return nil, p.errorAt(UnsupportedFormattedString, tok.Pos, tok)
	default:
		return nil, p.errorAt(UnexpectedToken, tok.Pos, tok)
	}
}

func (p *ExprParser) parseGrouping() (ast.Expr, error) {
	open := p.advance()
	inner, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	next, ok := p.peek()
	if !ok {
		return nil, p.errorAtEnd(UnclosedGrouping)
	}
	if next.Kind != token.RightParen {
		return nil, p.errorAt(UnclosedGrouping, open.Pos, next)
	}
	p.advance()
	return ast.NewGrouping(inner), nil
}

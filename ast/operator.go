package ast

import (
	"fmt"

	"github.com/sergev/brise/token"
)

// BinaryOp enumerates infix operators.
type BinaryOp int

const (
	OpEqualEqual BinaryOp = iota
	OpBangEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpOr
	OpAnd
)

var binaryFromKind = map[token.Kind]BinaryOp{
	token.EqualEqual:   OpEqualEqual,
	token.BangEqual:    OpBangEqual,
	token.Less:         OpLess,
	token.LessEqual:    OpLessEqual,
	token.Greater:      OpGreater,
	token.GreaterEqual: OpGreaterEqual,
	token.Plus:         OpPlus,
	token.Minus:        OpMinus,
	token.Star:         OpStar,
	token.Slash:        OpSlash,
	token.OrOr:         OpOr,
	token.AndAnd:       OpAnd,
}

func (op BinaryOp) String() string {
	switch op {
	case OpEqualEqual:
		return "=="
	case OpBangEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpStar:
		return "*"
	case OpSlash:
		return "/"
	case OpOr:
		return "||"
	case OpAnd:
		return "&&"
	default:
		return "unknown"
	}
}

// BinaryOperator is an infix operator together with its source position.
type BinaryOperator struct {
	Op  BinaryOp
	Pos token.Position
}

// UnaryOp enumerates prefix operators.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNegate
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNegate:
		return "-"
	default:
		return "unknown"
	}
}

// UnaryOperator is a prefix operator together with its source position.
type UnaryOperator struct {
	Op  UnaryOp
	Pos token.Position
}

// ConversionError reports a token that does not denote the requested
// operator class.
type ConversionError struct {
	Token  token.Token
	Target string // "binary" or "unary"
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s can't convert token %s into a %s operator", e.Token.Pos, e.Token.Kind, e.Target)
}

// BinaryOperatorFromToken converts an operator token to its typed form.
func BinaryOperatorFromToken(tok token.Token) (BinaryOperator, error) {
	op, ok := binaryFromKind[tok.Kind]
	if !ok {
		return BinaryOperator{}, &ConversionError{Token: tok, Target: "binary"}
	}
	return BinaryOperator{Op: op, Pos: tok.Pos}, nil
}

// UnaryOperatorFromToken converts ! or - to its typed form.
func UnaryOperatorFromToken(tok token.Token) (UnaryOperator, error) {
	switch tok.Kind {
	case token.Bang:
		return UnaryOperator{Op: OpNot, Pos: tok.Pos}, nil
	case token.Minus:
		return UnaryOperator{Op: OpNegate, Pos: tok.Pos}, nil
	default:
		return UnaryOperator{}, &ConversionError{Token: tok, Target: "unary"}
	}
}

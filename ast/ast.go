// Package ast declares the expression tree produced by the brise parser.
//
// Nodes are immutable once built. A subtree may be referenced from more
// than one parent; nothing in this package ever writes to a node after
// its constructor returns, so sharing needs no copying.
package ast

import "github.com/sergev/brise/token"

// Expr represents an expression.
type Expr interface {
	Pos() token.Position
	exprNode()
}

// Binary represents infix operator application.
type Binary struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

// NewBinary builds a binary node.
func NewBinary(left Expr, op BinaryOperator, right Expr) *Binary {
	return &Binary{Left: left, Op: op, Right: right}
}

// Pos reports the operator position.
func (e *Binary) Pos() token.Position { return e.Op.Pos }
func (*Binary) exprNode()             {}

// Unary represents prefix operator application.
type Unary struct {
	Op      UnaryOperator
	Operand Expr
}

// NewUnary builds a unary node.
func NewUnary(op UnaryOperator, operand Expr) *Unary {
	return &Unary{Op: op, Operand: operand}
}

func (e *Unary) Pos() token.Position { return e.Op.Pos }
func (*Unary) exprNode()             {}

// Grouping is a parenthesised expression.
type Grouping struct {
	Inner Expr
}

// NewGrouping wraps inner in a grouping node.
func NewGrouping(inner Expr) *Grouping {
	return &Grouping{Inner: inner}
}

func (e *Grouping) Pos() token.Position { return e.Inner.Pos() }
func (*Grouping) exprNode()             {}

// Identifier refers to a name.
type Identifier struct {
	Name string
	Posn token.Position
}

// NewIdentifier builds an identifier node.
func NewIdentifier(name string, pos token.Position) *Identifier {
	return &Identifier{Name: name, Posn: pos}
}

func (e *Identifier) Pos() token.Position { return e.Posn }
func (*Identifier) exprNode()             {}

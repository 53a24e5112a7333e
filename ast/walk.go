package ast

import "fmt"

// Inspect traverses the tree rooted at expr in depth-first pre-order,
// calling fn for every node. Children of a node are skipped when fn
// returns false for it.
func Inspect(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case *Binary:
		Inspect(e.Left, fn)
		Inspect(e.Right, fn)
	case *Unary:
		Inspect(e.Operand, fn)
	case *Grouping:
		Inspect(e.Inner, fn)
	case *Literal:
		for _, part := range e.Parts {
			Inspect(part, fn)
		}
	case *Identifier:
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node %T", expr))
	}
}

// Equal reports whether a and b are structurally identical, positions
// included. Number literals compare by identity, not value.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)
	case *Grouping:
		y, ok := b.(*Grouping)
		return ok && Equal(x.Inner, y.Inner)
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name && x.Posn == y.Posn
	case *Literal:
		y, ok := b.(*Literal)
		if !ok || x.Kind != y.Kind || x.Posn != y.Posn {
			return false
		}
		switch x.Kind {
		case LitNumber:
			return x.Number.Equal(y.Number)
		case LitString:
			return x.Text == y.Text
		case LitFormattedString:
			if len(x.Parts) != len(y.Parts) {
				return false
			}
			for i := range x.Parts {
				if !Equal(x.Parts[i], y.Parts[i]) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

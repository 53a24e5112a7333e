// Package sexpr renders brise expression trees as s-expressions:
// operators in prefix position, one list per node.
//
//	1 + 2 * x   =>   (+ 1 (* 2 x))
package sexpr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sergev/brise/ast"
)

// Format returns the s-expression form of expr.
func Format(expr ast.Expr) string {
	var sb strings.Builder
	write(&sb, expr, false)
	return sb.String()
}

// FormatWithIDs is Format, with every number literal suffixed by its
// identity as in 1.5#3.
func FormatWithIDs(expr ast.Expr) string {
	var sb strings.Builder
	write(&sb, expr, true)
	return sb.String()
}

// Fprint writes the s-expression form of expr followed by a newline.
func Fprint(w io.Writer, expr ast.Expr) error {
	_, err := io.WriteString(w, Format(expr)+"\n")
	return err
}

func write(sb *strings.Builder, expr ast.Expr, ids bool) {
	switch e := expr.(type) {
	case nil:
		sb.WriteString("()")
	case *ast.Binary:
		list(sb, e.Op.Op.String(), ids, e.Left, e.Right)
	case *ast.Unary:
		list(sb, e.Op.Op.String(), ids, e.Operand)
	case *ast.Grouping:
		list(sb, "group", ids, e.Inner)
	case *ast.Identifier:
		sb.WriteString(e.Name)
	case *ast.Literal:
		writeLiteral(sb, e, ids)
	default:
		fmt.Fprintf(sb, "#<%T>", expr)
	}
}

func list(sb *strings.Builder, head string, ids bool, items ...ast.Expr) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, item := range items {
		sb.WriteByte(' ')
		write(sb, item, ids)
	}
	sb.WriteByte(')')
}

func writeLiteral(sb *strings.Builder, lit *ast.Literal, ids bool) {
	switch lit.Kind {
	case ast.LitNumber:
		sb.WriteString(lit.Number.String())
		if ids {
			sb.WriteByte('#')
			sb.WriteString(strconv.FormatUint(lit.Number.ID, 10))
		}
	case ast.LitString:
		sb.WriteString(strconv.Quote(lit.Text))
	case ast.LitFormattedString:
		list(sb, "format", ids, lit.Parts...)
	case ast.LitTrue:
		sb.WriteString("true")
	case ast.LitFalse:
		sb.WriteString("false")
	case ast.LitUnknown:
		sb.WriteString("?")
	default:
		sb.WriteString("#<invalid literal>")
	}
}

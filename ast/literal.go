package ast

import (
	"strconv"

	"github.com/sergev/brise/token"
)

// Sequence hands out number-literal identities. The parser owns one per
// parse; callers pass their own to continue numbering across parses or
// to pin identities in tests. A Sequence is not safe for concurrent use.
type Sequence struct {
	next uint64
}

// NewSequence returns a sequence whose first identity is start.
func NewSequence(start uint64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the next identity.
func (s *Sequence) Next() uint64 {
	id := s.next
	s.next++
	return id
}

// NumberLiteral is a numeric constant. Two literals are the same entity
// only when their IDs match; equal values at different sites are distinct.
type NumberLiteral struct {
	Value float64
	ID    uint64
}

// Equal compares identities, ignoring values.
func (n NumberLiteral) Equal(other NumberLiteral) bool {
	return n.ID == other.ID
}

func (n NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// LiteralKind enumerates literal categories.
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitFormattedString
	LitTrue
	LitFalse
	LitUnknown
)

func (k LiteralKind) String() string {
	switch k {
	case LitNumber:
		return "number"
	case LitString:
		return "string"
	case LitFormattedString:
		return "formatted string"
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	case LitUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Literal is a constant appearing in source.
type Literal struct {
	Kind   LiteralKind
	Number NumberLiteral // LitNumber
	Text   string        // LitString
	Parts  []Expr        // LitFormattedString
	Posn   token.Position
}

func (e *Literal) Pos() token.Position { return e.Posn }
func (*Literal) exprNode()             {}

// NewNumber builds a number literal with an explicit identity.
func NewNumber(value float64, id uint64, pos token.Position) *Literal {
	return &Literal{
		Kind:   LitNumber,
		Number: NumberLiteral{Value: value, ID: id},
		Posn:   pos,
	}
}

// NewString builds a string literal.
func NewString(text string, pos token.Position) *Literal {
	return &Literal{Kind: LitString, Text: text, Posn: pos}
}

// NewFormattedString builds a formatted string literal from its parts.
func NewFormattedString(parts []Expr, pos token.Position) *Literal {
	return &Literal{Kind: LitFormattedString, Parts: parts, Posn: pos}
}

// NewBool builds true or false.
func NewBool(value bool, pos token.Position) *Literal {
	if value {
		return &Literal{Kind: LitTrue, Posn: pos}
	}
	return &Literal{Kind: LitFalse, Posn: pos}
}

// NewUnknown builds the "?" sentinel literal.
func NewUnknown(pos token.Position) *Literal {
	return &Literal{Kind: LitUnknown, Posn: pos}
}

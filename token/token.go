package token

import (
	"fmt"
	"strconv"
)

// Kind enumerates lexical categories recognised by the brise lexer.
type Kind int

const (
	Illegal Kind = iota

	LeftParen    // (
	RightParen   // )
	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]
	Comma        // ,
	Dot          // .
	Minus        // -
	Plus         // +
	Semicolon    // ;
	Slash        // /
	Star         // *
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=
	QuestionMark // ?
	Colon        // :
	RightArrow   // ->
	AndAnd       // &&
	OrOr         // ||
	BangGreater  // !>

	Identifier
	String
	FormattedString
	Number

	// Keywords
	Return
	If
	Else
	While
	Loop
	For
	Self
	Let
	True
	False
	Break
	Continue
	Fn
)

var kindNames = [...]string{
	Illegal:         "illegal",
	LeftParen:       "(",
	RightParen:      ")",
	LeftBrace:       "{",
	RightBrace:      "}",
	LeftBracket:     "[",
	RightBracket:    "]",
	Comma:           ",",
	Dot:             ".",
	Minus:           "-",
	Plus:            "+",
	Semicolon:       ";",
	Slash:           "/",
	Star:            "*",
	Bang:            "!",
	BangEqual:       "!=",
	Equal:           "=",
	EqualEqual:      "==",
	Greater:         ">",
	GreaterEqual:    ">=",
	Less:            "<",
	LessEqual:       "<=",
	QuestionMark:    "?",
	Colon:           ":",
	RightArrow:      "->",
	AndAnd:          "&&",
	OrOr:            "||",
	BangGreater:     "!>",
	Identifier:      "identifier",
	String:          "string",
	FormattedString: "formatted string",
	Number:          "number",
	Return:          "return",
	If:              "if",
	Else:            "else",
	While:           "while",
	Loop:            "loop",
	For:             "for",
	Self:            "self",
	Let:             "let",
	True:            "true",
	False:           "false",
	Break:           "break",
	Continue:        "continue",
	Fn:              "fn",
}

// String returns the source spelling of punctuation, operators and
// keywords, and a category name for literals.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var keywords = map[string]Kind{
	"if":       If,
	"else":     Else,
	"loop":     Loop,
	"while":    While,
	"for":      For,
	"fn":       Fn,
	"self":     Self,
	"let":      Let,
	"true":     True,
	"false":    False,
	"break":    Break,
	"continue": Continue,
	"return":   Return,
}

// Lookup maps an identifier to its keyword kind, or Identifier when the
// text is not reserved.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= Return && k <= Fn
}

// IsEquality reports whether k is == or !=.
func (k Kind) IsEquality() bool {
	return k == EqualEqual || k == BangEqual
}

// IsComparison reports whether k is one of < <= > >=.
func (k Kind) IsComparison() bool {
	switch k {
	case Less, LessEqual, Greater, GreaterEqual:
		return true
	}
	return false
}

// IsTerm reports whether k is + or -.
func (k Kind) IsTerm() bool {
	return k == Plus || k == Minus
}

// IsFactor reports whether k is * or /.
func (k Kind) IsFactor() bool {
	return k == Star || k == Slash
}

// IsUnary reports whether k may prefix a unary expression.
func (k Kind) IsUnary() bool {
	return k == Bang || k == Minus
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Kind   Kind
	Text   string  // identifier name or string contents
	Number float64 // value of a Number token
	Pos    Position
}

// New returns a token without payload.
func New(kind Kind, pos Position) Token {
	return Token{Kind: kind, Pos: pos}
}

// NewIdentifier returns an Identifier token.
func NewIdentifier(name string, pos Position) Token {
	return Token{Kind: Identifier, Text: name, Pos: pos}
}

// NewString returns a String token.
func NewString(text string, pos Position) Token {
	return Token{Kind: String, Text: text, Pos: pos}
}

// NewNumber returns a Number token.
func NewNumber(value float64, pos Position) Token {
	return Token{Kind: Number, Number: value, Pos: pos}
}

// Lexeme returns a source-like rendering of the token.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Identifier:
		return t.Text
	case String:
		return `"` + t.Text + `"`
	case Number:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	default:
		return t.Kind.String()
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, String, Number:
		return fmt.Sprintf("%s %s(%s)", t.Pos, t.Kind, t.Lexeme())
	default:
		return fmt.Sprintf("%s %s", t.Pos, t.Kind)
	}
}

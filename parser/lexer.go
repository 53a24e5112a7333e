package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sergev/brise/token"
)

// Tokenize scans src into tokens. file, when non-empty, becomes the file
// identity of every position. All lexical errors of the pass are
// collected; if there are any, Tokenize returns them as LexErrors and
// no tokens.
func Tokenize(src, file string) ([]token.Token, error) {
	lx := newLexer(src, file)
	lx.run()
	if len(lx.errs) > 0 {
		return nil, lx.errs
	}
	return lx.tokens, nil
}

// TokenizeFile reads the whole file at path and tokenizes it. A read
// failure is reported as *FileError.
func TokenizeFile(path string) ([]token.Token, error) {
	src, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Tokenize(src, path)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return string(data), nil
}

type lexer struct {
	src    string
	file   string
	pos    int
	line   int
	column int

	tokens []token.Token
	errs   LexErrors
}

func newLexer(src, file string) *lexer {
	return &lexer{
		src:    src,
		file:   file,
		line:   1,
		column: 1,
	}
}

type runeState struct {
	pos    int
	line   int
	column int
}

func (lx *lexer) mark() runeState {
	return runeState{
		pos:    lx.pos,
		line:   lx.line,
		column: lx.column,
	}
}

func (lx *lexer) restore(state runeState) {
	lx.pos = state.pos
	lx.line = state.line
	lx.column = state.column
}

// readRune decodes the next rune and advances line and column. It
// reports false at end of input.
func (lx *lexer) readRune() (rune, runeState, bool) {
	state := lx.mark()
	if lx.pos >= len(lx.src) {
		return 0, state, false
	}
	r, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += w
	if r == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	return r, state, true
}

func (lx *lexer) match(expected rune) bool {
	r, state, ok := lx.readRune()
	if !ok {
		return false
	}
	if r != expected {
		lx.restore(state)
		return false
	}
	return true
}

func (lx *lexer) position(state runeState) token.Position {
	return token.Position{
		File:   lx.file,
		Line:   state.line,
		Column: state.column,
	}
}

func (lx *lexer) emit(kind token.Kind, start runeState) {
	lx.tokens = append(lx.tokens, token.New(kind, lx.position(start)))
}

func (lx *lexer) fail(kind LexErrorKind, ch rune, start runeState) {
	lx.errs = append(lx.errs, &LexError{
		Kind: kind,
		Char: ch,
		Pos:  lx.position(start),
	})
}

func (lx *lexer) run() {
	for {
		r, start, ok := lx.readRune()
		if !ok {
			return
		}
		lx.scanToken(r, start)
	}
}

var singleRune = map[rune]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'[': token.LeftBracket,
	']': token.RightBracket,
	',': token.Comma,
	'.': token.Dot,
	'+': token.Plus,
	';': token.Semicolon,
	'/': token.Slash,
	'*': token.Star,
	'?': token.QuestionMark,
	':': token.Colon,
}

func (lx *lexer) scanToken(r rune, start runeState) {
	if kind, ok := singleRune[r]; ok {
		lx.emit(kind, start)
		return
	}

	switch {
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		return
	case isDigit(r):
		lx.scanNumber(r, start)
		return
	case isIdentifierStart(r):
		lx.scanIdentifier(r, start)
		return
	case r == '"':
		lx.scanString(start)
		return
	}

	switch r {
	case '!':
		if lx.match('=') {
			lx.emit(token.BangEqual, start)
		} else if lx.match('>') {
			lx.emit(token.BangGreater, start)
		} else {
			lx.emit(token.Bang, start)
		}
	case '=':
		if lx.match('=') {
			lx.emit(token.EqualEqual, start)
		} else {
			lx.emit(token.Equal, start)
		}
	case '<':
		if lx.match('=') {
			lx.emit(token.LessEqual, start)
		} else {
			lx.emit(token.Less, start)
		}
	case '>':
		if lx.match('=') {
			lx.emit(token.GreaterEqual, start)
		} else {
			lx.emit(token.Greater, start)
		}
	case '-':
		if lx.match('>') {
			lx.emit(token.RightArrow, start)
		} else {
			lx.emit(token.Minus, start)
		}
	case '&':
		if lx.match('&') {
			lx.emit(token.AndAnd, start)
		} else {
			lx.fail(UnexpectedCharacter, r, start)
		}
	case '|':
		if lx.match('|') {
			lx.emit(token.OrOr, start)
		} else {
			lx.fail(UnexpectedCharacter, r, start)
		}
	default:
		lx.fail(UnexpectedCharacter, r, start)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (lx *lexer) scanIdentifier(initial rune, start runeState) {
	var builder strings.Builder
	builder.WriteRune(initial)
	for {
		r, state, ok := lx.readRune()
		if !ok {
			break
		}
		if !isIdentifierPart(r) {
			lx.restore(state)
			break
		}
		builder.WriteRune(r)
	}
	lexeme := builder.String()
	kind := token.Lookup(lexeme)
	if kind != token.Identifier {
		lx.emit(kind, start)
		return
	}
	lx.tokens = append(lx.tokens, token.NewIdentifier(lexeme, lx.position(start)))
}

// scanNumber collects ASCII digits with at most one '.'. A second '.'
// ends the literal and is left for the next token.
func (lx *lexer) scanNumber(initial rune, start runeState) {
	var builder strings.Builder
	builder.WriteRune(initial)
	seenDot := false
	for {
		r, state, ok := lx.readRune()
		if !ok {
			break
		}
		if isDigit(r) {
			builder.WriteRune(r)
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			builder.WriteRune(r)
			continue
		}
		lx.restore(state)
		break
	}

	lexeme := builder.String()
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("lexer: digit run %q is not a float: %v", lexeme, err))
	}
	lx.tokens = append(lx.tokens, token.NewNumber(value, lx.position(start)))
}

// scanString reads up to the closing quote. Without one the rest of the
// input belongs to the unterminated string.
func (lx *lexer) scanString(start runeState) {
	var builder strings.Builder
	for {
		r, _, ok := lx.readRune()
		if !ok {
			lx.fail(UnterminatedString, '"', start)
			return
		}
		if r == '"' {
			break
		}
		builder.WriteRune(r)
	}
	lx.tokens = append(lx.tokens, token.NewString(builder.String(), lx.position(start)))
}

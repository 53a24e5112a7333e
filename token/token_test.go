package token

import "testing"

func TestPositionString(t *testing.T) {
	cases := []struct {
		pos  Position
		want string
	}{
		{Position{Line: 1, Column: 1}, "[1:1]"},
		{Position{File: "main.brs", Line: 3, Column: 14}, "[main.brs, 3:14]"},
		{StartOf("lib.brs"), "[lib.brs, 1:1]"},
	}
	for _, tc := range cases {
		if got := tc.pos.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.pos, got, tc.want)
		}
	}
	if (Position{}).IsValid() {
		t.Fatalf("zero position reported as valid")
	}
}

func TestLookupKeywords(t *testing.T) {
	want := map[string]Kind{
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
	if len(Keywords()) != len(want) {
		t.Fatalf("expected %d keywords, got %d", len(want), len(Keywords()))
	}
	for text, kind := range want {
		if got := Lookup(text); got != kind {
			t.Errorf("Lookup(%q) = %v, want %v", text, got, kind)
		}
		if !kind.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false", kind)
		}
		if kind.String() != text {
			t.Errorf("%v.String() = %q, want %q", kind, kind.String(), text)
		}
	}
	for _, text := range []string{"If", "lets", "_", "number", "fnx"} {
		if got := Lookup(text); got != Identifier {
			t.Errorf("Lookup(%q) = %v, want identifier", text, got)
		}
	}
}

func TestKindGuards(t *testing.T) {
	if !EqualEqual.IsEquality() || !BangEqual.IsEquality() || Equal.IsEquality() {
		t.Errorf("equality guard mismatch")
	}
	for _, k := range []Kind{Less, LessEqual, Greater, GreaterEqual} {
		if !k.IsComparison() {
			t.Errorf("%v should be a comparison", k)
		}
	}
	if !Minus.IsTerm() || !Minus.IsUnary() || Plus.IsUnary() {
		t.Errorf("minus/plus guard mismatch")
	}
	if !Star.IsFactor() || !Slash.IsFactor() || Plus.IsFactor() {
		t.Errorf("factor guard mismatch")
	}
	if Kind(999).String() != "unknown" {
		t.Errorf("out of range kind should render as unknown")
	}
}

func TestTokenString(t *testing.T) {
	pos := Position{Line: 2, Column: 5}
	cases := []struct {
		tok  Token
		want string
	}{
		{New(RightArrow, pos), "[2:5] ->"},
		{NewIdentifier("abc", pos), "[2:5] identifier(abc)"},
		{NewString("hi", pos), `[2:5] string("hi")`},
		{NewNumber(4.5, pos), "[2:5] number(4.5)"},
	}
	for _, tc := range cases {
		if got := tc.tok.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

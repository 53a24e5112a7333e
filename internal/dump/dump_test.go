package dump

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sergev/brise/ast"
	"github.com/sergev/brise/parser"
	"github.com/sergev/brise/token"
)

func parse(t *testing.T, src string) *parser.Result {
	t.Helper()
	res, err := parser.ParseString(src, parser.WithFile("d.brs"))
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}
	return res
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": Sexpr, "sexpr": Sexpr, "yaml": YAML, "json": JSON} {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", name, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("expected error for xml")
	}
}

func TestFromExpr(t *testing.T) {
	res := parse(t, `-x + "s"`)
	n := FromExpr(res.Expr, true)
	if n.Node != "binary" || n.Op != "+" || n.Pos != (Pos{File: "d.brs", Line: 1, Column: 4}) {
		t.Fatalf("unexpected root %+v", n)
	}
	if len(n.Children) != 2 {
		t.Fatalf("expected two children, got %d", len(n.Children))
	}
	un := n.Children[0]
	if un.Node != "unary" || un.Op != "-" || un.Children[0].Value != "x" {
		t.Fatalf("unexpected left operand %+v", un)
	}
	if s := n.Children[1]; s.Node != "literal" || s.Kind != "string" || s.Value != "s" {
		t.Fatalf("unexpected right operand %+v", s)
	}
	if FromExpr(nil, false) != nil {
		t.Fatalf("nil expression should convert to nil")
	}
}

func TestFromExprNumberIDs(t *testing.T) {
	lit := ast.NewNumber(2.5, 9, token.StartOf(""))
	if n := FromExpr(lit, false); n.ID != nil || n.Value != "2.5" {
		t.Fatalf("unexpected node %+v", n)
	}
	if n := FromExpr(lit, true); n.ID == nil || *n.ID != 9 {
		t.Fatalf("expected id 9, got %+v", n)
	}
}

func TestWriteExprSexpr(t *testing.T) {
	res := parse(t, "(a) == 1")
	var buf bytes.Buffer
	if err := WriteExpr(&buf, Sexpr, res.Expr, false); err != nil {
		t.Fatalf("WriteExpr: %v", err)
	}
	if buf.String() != "(== (group a) 1)\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	buf.Reset()
	if err := WriteExpr(&buf, Sexpr, res.Expr, true); err != nil {
		t.Fatalf("WriteExpr: %v", err)
	}
	if buf.String() != "(== (group a) 1#0)\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteExprJSON(t *testing.T) {
	res := parse(t, "!true")
	var buf bytes.Buffer
	if err := WriteExpr(&buf, JSON, res.Expr, false); err != nil {
		t.Fatalf("WriteExpr: %v", err)
	}
	var n Node
	if err := json.Unmarshal(buf.Bytes(), &n); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if n.Node != "unary" || n.Op != "!" || n.Children[0].Kind != "true" {
		t.Fatalf("unexpected node %+v", n)
	}
}

func TestWriteExprYAML(t *testing.T) {
	res := parse(t, "a || b")
	var buf bytes.Buffer
	if err := WriteExpr(&buf, YAML, res.Expr, false); err != nil {
		t.Fatalf("WriteExpr: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "node: binary\n") || !strings.Contains(buf.String(), "- node: identifier\n") {
		t.Fatalf("unexpected YAML:\n%s", buf.String())
	}
	var n Node
	if err := yaml.Unmarshal(buf.Bytes(), &n); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(n.Children) != 2 || n.Children[1].Value != "b" || n.Children[1].Pos.File != "d.brs" {
		t.Fatalf("unexpected node %+v", n)
	}
}

func TestWriteTokens(t *testing.T) {
	res := parse(t, `x 1.5 "s" ->`)

	var buf bytes.Buffer
	if err := WriteTokens(&buf, Sexpr, res.Tokens); err != nil {
		t.Fatalf("WriteTokens: %v", err)
	}
	want := "[d.brs, 1:1] identifier(x)\n" +
		"[d.brs, 1:3] number(1.5)\n" +
		"[d.brs, 1:7] string(\"s\")\n" +
		"[d.brs, 1:11] ->\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteTokens(&buf, JSON, res.Tokens); err != nil {
		t.Fatalf("WriteTokens: %v", err)
	}
	var toks []Token
	if err := json.Unmarshal(buf.Bytes(), &toks); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(toks) != 4 || toks[1].Text != "1.5" || toks[2].Text != "s" || toks[3].Kind != "->" || toks[3].Text != "" {
		t.Fatalf("unexpected tokens %+v", toks)
	}
}

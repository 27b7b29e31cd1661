package lex

import (
	"fmt"
	"testing"
)

// Each expected token is rendered as kind:value:line:col, EOF included.
var lexTestCases = []struct {
	src      string
	expected []string
}{
	{"1 + 2", []string{
		"numconst:1:1:1", "'+':+:1:3", "numconst:2:1:5", "EOF::1:6",
	}},
	{"a<<b<=c<d", []string{
		"ident:a:1:1", "'<<':<<:1:2", "ident:b:1:4", "'<=':<=:1:5",
		"ident:c:1:7", "'<':<:1:8", "ident:d:1:9", "EOF::1:10",
	}},
	{">>>=>", []string{
		"'>>':>>:1:1", "'>=':>=:1:3", "'>':>:1:5", "EOF::1:6",
	}},
	{"x->y--", []string{
		"ident:x:1:1", "'->':->:1:2", "ident:y:1:4", "'--':--:1:5", "EOF::1:7",
	}},
	{"::a::b", []string{
		"'::'::::1:1", "ident:a:1:3", "'::'::::1:4", "ident:b:1:6", "EOF::1:7",
	}},
	{"!x!=y", []string{
		"'!':!:1:1", "ident:x:1:2", "'!=':!=:1:3", "ident:y:1:5", "EOF::1:6",
	}},
	{"&&&x", []string{
		"'&&':&&:1:1", "'&':&:1:3", "ident:x:1:4", "EOF::1:5",
	}},
	{"a|||b", []string{
		"ident:a:1:1", "'||':||:1:2", "'|':|:1:4", "ident:b:1:5", "EOF::1:6",
	}},
	{"a?b:c", []string{
		"ident:a:1:1", "'?':?:1:2", "ident:b:1:3", "':':::1:4", "ident:c:1:5", "EOF::1:6",
	}},

	// Numeric constants come out as the maximal pp-number; the parser splits
	// and validates the spelling.
	{"0x1p-3f", []string{"numconst:0x1p-3f:1:1", "EOF::1:8"}},
	{"1'000ull", []string{"numconst:1'000ull:1:1", "EOF::1:9"}},
	{"0xfg", []string{"numconst:0xfg:1:1", "EOF::1:5"}},
	{"1..2e+5", []string{"numconst:1..2e+5:1:1", "EOF::1:8"}},
	{".5", []string{"numconst:.5:1:1", "EOF::1:3"}},
	{"1.e2+3", []string{"numconst:1.e2:1:1", "'+':+:1:5", "numconst:3:1:6", "EOF::1:7"}},
	{"a.5", []string{"ident:a:1:1", "numconst:.5:1:2", "EOF::1:4"}},

	// Keywords and identifiers.
	{"unsigned long foo", []string{
		"unsigned:unsigned:1:1", "long:long:1:10", "ident:foo:1:15", "EOF::1:18",
	}},
	{"this nullptr true_", []string{
		"this:this:1:1", "nullptr:nullptr:1:6", "ident:true_:1:14", "EOF::1:19",
	}},
	{"_x$1", []string{"ident:_x$1:1:1", "EOF::1:5"}},

	// Character and string literals.
	{`'a' "hi"`, []string{`charconst:'a':1:1`, `string:"hi":1:5`, "EOF::1:9"}},
	{`'\''`, []string{`charconst:'\'':1:1`, "EOF::1:5"}},
	{`"abc`, []string{`unknown:"abc:1:1`, "EOF::1:5"}},

	// Bytes outside the language.
	{"@ =", []string{"unknown:@:1:1", "unknown:=:1:3", "EOF::1:4"}},
	{"a == b", []string{"ident:a:1:1", "'==':==:1:3", "ident:b:1:6", "EOF::1:7"}},

	// Line and column tracking across newlines.
	{"a\n  b", []string{"ident:a:1:1", "ident:b:2:3", "EOF::2:4"}},
	{"", []string{"EOF::1:1"}},
}

func TestLex(t *testing.T) {
	for idx := range lexTestCases {
		tc := &lexTestCases[idx]
		toks := Lex("test", tc.src)
		for i, tok := range toks {
			tokS := fmt.Sprintf("%s:%s:%d:%d", tok.Kind, tok.Val, tok.Pos.Line, tok.Pos.Col)
			if i >= len(tc.expected) {
				t.Errorf("test %q failed - extra token %s", tc.src, tokS)
				break
			}
			if tokS != tc.expected[i] {
				t.Errorf("test %q failed - got %s expected %s", tc.src, tokS, tc.expected[i])
			}
		}
		if len(toks) < len(tc.expected) {
			t.Errorf("test %q failed - got %d tokens expected %d", tc.src, len(toks), len(tc.expected))
		}
	}
}

func TestTokenDescription(t *testing.T) {
	toks := Lex("test", "foo")
	if d := toks[0].Description(); d != "<'foo' (ident)>" {
		t.Errorf("got %s", d)
	}
	if d := toks[1].Description(); d != "<'' (EOF)>" {
		t.Errorf("got %s", d)
	}
}

func TestFilePosString(t *testing.T) {
	pos := FilePos{File: "<expr>", Off: 4, Line: 2, Col: 3}
	if s := pos.String(); s != "<expr>:2:3" {
		t.Errorf("got %s", s)
	}
}

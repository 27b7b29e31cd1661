package ast

import (
	"testing"

	"dbgexpr/symbols"
)

func TestDump(t *testing.T) {
	tbl := symbols.NewTable(symbols.DefaultWidths())
	intType := tbl.Basic(symbols.Int)

	one := &Literal{Val: tbl.IntValue(1, false, intType)}
	two := &Literal{Val: tbl.IntValue(2, false, intType)}
	x := &Identifier{Name: "x", Val: &symbols.Var{T: intType}}

	cases := []struct {
		node     Node
		expected string
	}{
		{one, "(lit int 1)"},
		{&Literal{Val: tbl.BoolValue(true)}, "(lit bool true)"},
		{&Literal{Val: tbl.Nullptr()}, "(lit nullptr)"},
		{x, "(id x)"},
		{&Identifier{Name: "this", Val: x.Val, IsRvalue: true}, "(rval this)"},
		{&Unary{Op: UnaryMinus, Operand: one}, "(- (lit int 1))"},
		{&Binary{Op: BinAdd, L: one, R: two}, "(+ (lit int 1) (lit int 2))"},
		{&Binary{Op: BinSubscript, L: x, R: one}, "([] (id x) (lit int 1))"},
		{&Ternary{Cond: one, Then: two, Else: x}, "(?: (lit int 1) (lit int 2) (id x))"},
		{&MemberOf{Kind: OfObject, Base: x, Member: "f"}, "(. (id x) f)"},
		{&MemberOf{Kind: OfPointer, Base: x, Member: "f"}, "(-> (id x) f)"},
		{&Cast{To: intType, Operand: x}, "(cast int (id x))"},
		{&Bad{}, "(bad)"},
	}
	for _, tc := range cases {
		if got := Dump(tc.node); got != tc.expected {
			t.Errorf("got %s expected %s", got, tc.expected)
		}
	}
}

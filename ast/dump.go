package ast

import (
	"fmt"
	"strings"
)

// Dump renders a tree as a parenthesized s-expression, one operator or node
// tag per group. Used by tests and for debugging parser output.
func Dump(n Node) string {
	d := &dumper{}
	n.Accept(d)
	return d.sb.String()
}

type dumper struct {
	sb strings.Builder
}

func (d *dumper) VisitLiteral(n *Literal) {
	fmt.Fprintf(&d.sb, "(lit %v)", n.Val)
}

func (d *dumper) VisitIdentifier(n *Identifier) {
	tag := "id"
	if n.IsRvalue {
		tag = "rval"
	}
	fmt.Fprintf(&d.sb, "(%s %s)", tag, n.Name)
}

func (d *dumper) VisitUnary(n *Unary) {
	fmt.Fprintf(&d.sb, "(%s ", n.Op)
	n.Operand.Accept(d)
	d.sb.WriteString(")")
}

func (d *dumper) VisitBinary(n *Binary) {
	fmt.Fprintf(&d.sb, "(%s ", n.Op)
	n.L.Accept(d)
	d.sb.WriteString(" ")
	n.R.Accept(d)
	d.sb.WriteString(")")
}

func (d *dumper) VisitTernary(n *Ternary) {
	d.sb.WriteString("(?: ")
	n.Cond.Accept(d)
	d.sb.WriteString(" ")
	n.Then.Accept(d)
	d.sb.WriteString(" ")
	n.Else.Accept(d)
	d.sb.WriteString(")")
}

func (d *dumper) VisitMemberOf(n *MemberOf) {
	op := "."
	if n.Kind == OfPointer {
		op = "->"
	}
	fmt.Fprintf(&d.sb, "(%s ", op)
	n.Base.Accept(d)
	fmt.Fprintf(&d.sb, " %s)", n.Member)
}

func (d *dumper) VisitCast(n *Cast) {
	fmt.Fprintf(&d.sb, "(cast %s ", n.To.Name())
	n.Operand.Accept(d)
	d.sb.WriteString(")")
}

func (d *dumper) VisitBad(n *Bad) {
	d.sb.WriteString("(bad)")
}

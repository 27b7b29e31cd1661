package parse

import (
	"strings"

	"dbgexpr/lex"
)

// typeDeclaration accumulates a partial type specification while parsing a
// type_id: the base typename parts ("unsigned", "long" or "ns::", "Foo<int>")
// and the trailing pointer/reference declarators.
type typeDeclaration struct {
	typenames []string
	ptrOps    []lex.TokenKind // lex.MUL or lex.AND
}

// IsValid reports whether any typename part was collected.
func (d *typeDeclaration) IsValid() bool {
	return len(d.typenames) > 0
}

// BaseName joins the typename parts with single spaces, canonicalizing the
// "short int" and "long int" aliases to "short" and "long". Only the first
// occurrence of each alias is rewritten, on whole tokens; "long long int"
// comes out as "long long". Rendering does not mutate the declaration, so
// it is idempotent.
func (d *typeDeclaration) BaseName() string {
	names := append([]string(nil), d.typenames...)
	names = dropFirstIntAfter(names, "short")
	names = dropFirstIntAfter(names, "long")
	return strings.Join(names, " ")
}

// Name is BaseName plus the declarators, separated by a single space, e.g.
// "unsigned long **" or "ns::Foo<int> *&".
func (d *typeDeclaration) Name() string {
	name := d.BaseName()
	if len(d.ptrOps) == 0 {
		return name
	}
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" ")
	for _, op := range d.ptrOps {
		if op == lex.MUL {
			sb.WriteString("*")
		} else {
			sb.WriteString("&")
		}
	}
	return sb.String()
}

// dropFirstIntAfter removes the "int" of the first adjacent (kw, "int") pair.
func dropFirstIntAfter(names []string, kw string) []string {
	for i := 0; i+1 < len(names); i++ {
		if names[i] == kw && names[i+1] == "int" {
			return append(names[:i+1], names[i+2:]...)
		}
	}
	return names
}

// Package symbols defines the resolver surface the expression parser
// borrows during a parse: type and value handles from the debugger runtime,
// and the lookup operations the parser needs to disambiguate casts and
// template arguments. A concrete in-memory Table is provided for tests and
// embedders without a live target.
package symbols

import "strings"

// Type is an opaque handle to a type in the target program.
type Type interface {
	Name() string
	IsReference() bool
}

// BasicKind enumerates the fundamental C++ types.
type BasicKind int

const (
	Void BasicKind = iota
	Bool
	Char
	SChar
	UChar
	Char16
	Char32
	WChar
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Float
	Double
	NullptrT
)

var basicKindToStr = [...]string{
	Void:      "void",
	Bool:      "bool",
	Char:      "char",
	SChar:     "signed char",
	UChar:     "unsigned char",
	Char16:    "char16_t",
	Char32:    "char32_t",
	WChar:     "wchar_t",
	Short:     "short",
	UShort:    "unsigned short",
	Int:       "int",
	UInt:      "unsigned int",
	Long:      "long",
	ULong:     "unsigned long",
	LongLong:  "long long",
	ULongLong: "unsigned long long",
	Float:     "float",
	Double:    "double",
	NullptrT:  "nullptr_t",
}

func (k BasicKind) String() string {
	if int(k) >= len(basicKindToStr) {
		return "invalid"
	}
	return basicKindToStr[k]
}

// Primitive is a fundamental scalar type with a target-specific width.
type Primitive struct {
	Kind     BasicKind
	BitWidth int
	Signed   bool
}

func (p *Primitive) Name() string      { return p.Kind.String() }
func (p *Primitive) IsReference() bool { return false }

// Tagged is a user-defined aggregate type: a class, struct, enum or a
// template instantiation known to the target by name.
type Tagged struct {
	TypeName string
}

func (t *Tagged) Name() string      { return t.TypeName }
func (t *Tagged) IsReference() bool { return false }

// Pointer is a pointer to another type.
type Pointer struct {
	To Type
}

func (p *Pointer) Name() string      { return appendDeclarator(p.To.Name(), "*") }
func (p *Pointer) IsReference() bool { return false }

// Reference is an lvalue reference to another type.
type Reference struct {
	To Type
}

func (r *Reference) Name() string      { return appendDeclarator(r.To.Name(), "&") }
func (r *Reference) IsReference() bool { return true }

// Alias is a typedef: a name bound to another type. Whether the alias is a
// reference follows the aliased type.
type Alias struct {
	AliasName string
	To        Type
}

func (a *Alias) Name() string      { return a.AliasName }
func (a *Alias) IsReference() bool { return a.To.IsReference() }

func appendDeclarator(base, op string) string {
	if strings.HasSuffix(base, "*") || strings.HasSuffix(base, "&") {
		return base + op
	}
	return base + " " + op
}

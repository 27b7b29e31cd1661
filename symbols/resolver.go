package symbols

// Resolver is the debugger-symbol lookup service. The parser borrows one for
// the duration of a parse, read-only and single-threaded, to disambiguate
// C-style casts and template arguments and to bind identifiers.
type Resolver interface {
	// ResolveType resolves a canonical base type name ("unsigned long",
	// "ns::Foo<int>") in the current evaluation frame. Returns nil when the
	// name does not denote a type.
	ResolveType(name string) Type

	// PointerTo and ReferenceTo apply declarators to a resolved type. Both
	// may fail semantically: pointers to references and references to
	// references are rejected.
	PointerTo(t Type) (Type, error)
	ReferenceTo(t Type) (Type, error)

	// Lookup binds a qualified identifier ("obj", "ns::var", "::global") to
	// a value in the current frame. Returns nil when there is no binding.
	Lookup(name string) Value

	// Basic returns the handle for a fundamental type.
	Basic(k BasicKind) Type

	// Value constructors for literals.
	IntValue(v uint64, unsigned bool, t Type) Value
	FloatValue(f float64, t Type) Value
	BoolValue(b bool) Value
	Nullptr() Value
}

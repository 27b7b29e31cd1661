package symbols

import "fmt"

// Widths are the target's integer and pointer sizes in bits.
type Widths struct {
	Int      int
	Long     int
	LongLong int
	Pointer  int
}

// DefaultWidths matches a typical 64-bit target: 32-bit int, 64-bit long.
func DefaultWidths() Widths {
	return Widths{Int: 32, Long: 64, LongLong: 64, Pointer: 64}
}

// Table is an in-memory Resolver for tests and embedders without a live
// target. Fundamental types are registered under their canonical spellings;
// user types and variables are registered by Define calls.
type Table struct {
	widths Widths
	basics map[BasicKind]Type
	types  map[string]Type
	vars   map[string]Value
}

func NewTable(w Widths) *Table {
	t := &Table{
		widths: w,
		basics: make(map[BasicKind]Type),
		types:  make(map[string]Type),
		vars:   make(map[string]Value),
	}

	prim := func(k BasicKind, bits int, signed bool) {
		t.basics[k] = &Primitive{Kind: k, BitWidth: bits, Signed: signed}
	}
	prim(Void, 0, false)
	prim(Bool, 8, false)
	prim(Char, 8, true)
	prim(SChar, 8, true)
	prim(UChar, 8, false)
	prim(Char16, 16, false)
	prim(Char32, 32, false)
	prim(WChar, 32, true)
	prim(Short, 16, true)
	prim(UShort, 16, false)
	prim(Int, w.Int, true)
	prim(UInt, w.Int, false)
	prim(Long, w.Long, true)
	prim(ULong, w.Long, false)
	prim(LongLong, w.LongLong, true)
	prim(ULongLong, w.LongLong, false)
	prim(Float, 32, true)
	prim(Double, 64, true)
	prim(NullptrT, w.Pointer, false)

	// Canonical spellings the parser's type declarations produce. The
	// parser canonicalizes "short int" and "long int" away before lookup,
	// but "signed"/"unsigned" combinations arrive as spelled.
	spellings := map[string]BasicKind{
		"void":                   Void,
		"bool":                   Bool,
		"char":                   Char,
		"signed char":            SChar,
		"unsigned char":          UChar,
		"char16_t":               Char16,
		"char32_t":               Char32,
		"wchar_t":                WChar,
		"short":                  Short,
		"signed short":           Short,
		"unsigned short":         UShort,
		"int":                    Int,
		"signed":                 Int,
		"signed int":             Int,
		"unsigned":               UInt,
		"unsigned int":           UInt,
		"long":                   Long,
		"signed long":            Long,
		"unsigned long":          ULong,
		"long long":              LongLong,
		"signed long long":       LongLong,
		"unsigned long long":     ULongLong,
		"float":                  Float,
		"double":                 Double,
		"decltype(nullptr)":      NullptrT,
	}
	for name, kind := range spellings {
		t.types[name] = t.basics[kind]
	}
	return t
}

// DefineType registers a user-defined type under its qualified name.
func (t *Table) DefineType(name string, typ Type) {
	t.types[name] = typ
}

// DefineVar registers a named object in the evaluation frame.
func (t *Table) DefineVar(name string, v Value) {
	t.vars[name] = v
}

func (t *Table) ResolveType(name string) Type {
	return t.types[name]
}

func (t *Table) Lookup(name string) Value {
	return t.vars[name]
}

func (t *Table) Basic(k BasicKind) Type {
	return t.basics[k]
}

func (t *Table) PointerTo(typ Type) (Type, error) {
	if typ.IsReference() {
		return nil, fmt.Errorf("'type name' declared as a pointer to a reference of type '%s'", typ.Name())
	}
	return &Pointer{To: typ}, nil
}

func (t *Table) ReferenceTo(typ Type) (Type, error) {
	if typ.IsReference() {
		return nil, fmt.Errorf("type name declared as a reference to a reference")
	}
	return &Reference{To: typ}, nil
}

func (t *Table) IntValue(v uint64, unsigned bool, typ Type) Value {
	return IntVal{T: typ, V: v, Signed: !unsigned}
}

func (t *Table) FloatValue(f float64, typ Type) Value {
	return FloatVal{T: typ, V: f}
}

func (t *Table) BoolValue(b bool) Value {
	return BoolVal{T: t.basics[Bool], V: b}
}

func (t *Table) Nullptr() Value {
	return NullptrVal{T: t.basics[NullptrT]}
}

package parse

// Parser for the C++ expression subset used by debugger evaluation.
//
//
// Glossary:
//
// Tentative parse
// ---------------
//
// A scoped snapshot of the token stream used to try one reading of an
// ambiguous construct. On rollback the stream position, the current
// token and any recorded error are restored, so a failed attempt
// leaves no trace.
//
// e.g.
// (foo)(bar)   // cast if "foo" names a type, call-like paren otherwise
//
// Type-id
// -------
//
// A typename with optional pointer and reference declarators, as it
// appears inside a C-style cast or a template argument.
//
// e.g.
// unsigned long, ns::Foo<int> *, char **&
//
// Nested name specifier
// ---------------------
//
// The "ns::" or "Outer<int>::" qualification prefix of a qualified
// name. Template-ids may appear as components.

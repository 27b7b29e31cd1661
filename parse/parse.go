package parse

import (
	"fmt"

	"dbgexpr/ast"
	"dbgexpr/lex"
	"dbgexpr/symbols"
)

// Options configure a Parser. The zero value is usable: diagnostics are
// attributed to "<expr>" and the target defaults to 32-bit int with 64-bit
// long and long long.
type Options struct {
	File   string
	Target Target
}

// Parser turns a C++ expression fragment into a typed AST. It consults the
// symbol resolver during tentative casts and template arguments; the
// resolver is borrowed read-only for the duration of a parse.
type Parser struct {
	res  symbols.Resolver
	opts Options

	src    string
	stream *lex.Stream
	tok    lex.Token
	err    *Error
	snaps  []*tentativeParse
}

func New(res symbols.Resolver, opts Options) *Parser {
	if opts.File == "" {
		opts.File = "<expr>"
	}
	return &Parser{res: res, opts: opts}
}

// Parse parses a single expression. On failure the returned node is the
// error sentinel and the Error carries the rendered diagnostic.
func (p *Parser) Parse(expr string) (ast.Node, *Error) {
	p.src = expr
	p.stream = lex.NewStream(lex.Lex(p.opts.File, expr))
	p.tok = p.stream.Next()
	p.err = nil
	p.snaps = nil

	node := p.parseExpression()
	p.expect(lex.EOF)

	if len(p.snaps) != 0 {
		panic("tentative parse was never released")
	}
	// Some routines record an error without changing their return value
	// (e.g. expect), so the sentinel is substituted here.
	if p.err != nil {
		err := p.err
		p.err = nil
		return &ast.Bad{}, err
	}
	return node, nil
}

func (p *Parser) consume() {
	// Stay at EOF once we are there. This happens when an error occurred
	// and the parser is bailing out.
	if p.tok.Kind == lex.EOF {
		return
	}
	p.tok = p.stream.Next()
}

func (p *Parser) expect(kind lex.TokenKind) {
	if p.tok.Kind != kind {
		p.bailOut(ErrUnknown,
			fmt.Sprintf("expected %s, got: %s", kind, p.tok.Description()),
			p.tok.Pos)
	}
}

// bailOut records the first error and forces the current token to EOF so
// every enclosing precedence loop terminates promptly. Later failures are
// suppressed.
func (p *Parser) bailOut(code ErrorCode, message string, pos lex.FilePos) {
	if p.err != nil {
		return
	}
	p.err = &Error{Code: code, Msg: formatDiagnostics(p.src, message, pos)}
	p.tok = lex.Token{Kind: lex.EOF, Pos: p.tok.Pos}
}

// Parse an expression.
//
//	expression:
//	  assignment_expression
func (p *Parser) parseExpression() ast.Node {
	return p.parseAssignmentExpression()
}

// Parse an assignment_expression. Assignment operators are not implemented;
// the rule exists as the extension point for them.
//
//	assignment_expression:
//	  conditional_expression
func (p *Parser) parseAssignmentExpression() ast.Node {
	return p.parseConditionalExpression()
}

// Parse a conditional_expression.
//
//	conditional_expression:
//	  logical_or_expression
//	  logical_or_expression "?" expression ":" assignment_expression
func (p *Parser) parseConditionalExpression() ast.Node {
	cond := p.parseLogicalOrExpression()

	if p.tok.Is(lex.QUESTION) {
		p.consume()
		then := p.parseExpression()
		p.expect(lex.COLON)
		p.consume()
		els := p.parseAssignmentExpression()
		return &ast.Ternary{Cond: cond, Then: then, Else: els}
	}
	return cond
}

// Parse a logical_or_expression.
//
//	logical_or_expression:
//	  logical_and_expression {"||" logical_and_expression}
func (p *Parser) parseLogicalOrExpression() ast.Node {
	lhs := p.parseLogicalAndExpression()

	for p.tok.Is(lex.LOR) {
		p.consume()
		rhs := p.parseLogicalAndExpression()
		lhs = &ast.Binary{Op: ast.BinLOr, L: lhs, R: rhs}
	}
	return lhs
}

// Parse a logical_and_expression.
//
//	logical_and_expression:
//	  inclusive_or_expression {"&&" inclusive_or_expression}
func (p *Parser) parseLogicalAndExpression() ast.Node {
	lhs := p.parseInclusiveOrExpression()

	for p.tok.Is(lex.LAND) {
		p.consume()
		rhs := p.parseInclusiveOrExpression()
		lhs = &ast.Binary{Op: ast.BinLAnd, L: lhs, R: rhs}
	}
	return lhs
}

// Parse an inclusive_or_expression.
//
//	inclusive_or_expression:
//	  exclusive_or_expression {"|" exclusive_or_expression}
func (p *Parser) parseInclusiveOrExpression() ast.Node {
	lhs := p.parseExclusiveOrExpression()

	for p.tok.Is(lex.OR) {
		p.consume()
		rhs := p.parseExclusiveOrExpression()
		lhs = &ast.Binary{Op: ast.BinOr, L: lhs, R: rhs}
	}
	return lhs
}

// Parse an exclusive_or_expression.
//
//	exclusive_or_expression:
//	  and_expression {"^" and_expression}
func (p *Parser) parseExclusiveOrExpression() ast.Node {
	lhs := p.parseAndExpression()

	for p.tok.Is(lex.XOR) {
		p.consume()
		rhs := p.parseAndExpression()
		lhs = &ast.Binary{Op: ast.BinXor, L: lhs, R: rhs}
	}
	return lhs
}

// Parse an and_expression.
//
//	and_expression:
//	  equality_expression {"&" equality_expression}
func (p *Parser) parseAndExpression() ast.Node {
	lhs := p.parseEqualityExpression()

	for p.tok.Is(lex.AND) {
		p.consume()
		rhs := p.parseEqualityExpression()
		lhs = &ast.Binary{Op: ast.BinAnd, L: lhs, R: rhs}
	}
	return lhs
}

// Parse an equality_expression.
//
//	equality_expression:
//	  relational_expression {"==" relational_expression}
//	  relational_expression {"!=" relational_expression}
func (p *Parser) parseEqualityExpression() ast.Node {
	lhs := p.parseRelationalExpression()

	for p.tok.IsOneOf(lex.EQL, lex.NEQ) {
		op := ast.BinEq
		if p.tok.Is(lex.NEQ) {
			op = ast.BinNeq
		}
		p.consume()
		rhs := p.parseRelationalExpression()
		lhs = &ast.Binary{Op: op, L: lhs, R: rhs}
	}
	return lhs
}

// Parse a relational_expression.
//
//	relational_expression:
//	  shift_expression {"<" shift_expression}
//	  shift_expression {">" shift_expression}
//	  shift_expression {"<=" shift_expression}
//	  shift_expression {">=" shift_expression}
func (p *Parser) parseRelationalExpression() ast.Node {
	lhs := p.parseShiftExpression()

	for p.tok.IsOneOf(lex.LSS, lex.GTR, lex.LEQ, lex.GEQ) {
		var op ast.BinaryOp
		switch p.tok.Kind {
		case lex.LSS:
			op = ast.BinLess
		case lex.GTR:
			op = ast.BinGreater
		case lex.LEQ:
			op = ast.BinLessEq
		case lex.GEQ:
			op = ast.BinGreaterEq
		}
		p.consume()
		rhs := p.parseShiftExpression()
		lhs = &ast.Binary{Op: op, L: lhs, R: rhs}
	}
	return lhs
}

// Parse a shift_expression.
//
//	shift_expression:
//	  additive_expression {"<<" additive_expression}
//	  additive_expression {">>" additive_expression}
func (p *Parser) parseShiftExpression() ast.Node {
	lhs := p.parseAdditiveExpression()

	for p.tok.IsOneOf(lex.SHL, lex.SHR) {
		op := ast.BinShl
		if p.tok.Is(lex.SHR) {
			op = ast.BinShr
		}
		p.consume()
		rhs := p.parseAdditiveExpression()
		lhs = &ast.Binary{Op: op, L: lhs, R: rhs}
	}
	return lhs
}

// Parse an additive_expression.
//
//	additive_expression:
//	  multiplicative_expression {"+" multiplicative_expression}
//	  multiplicative_expression {"-" multiplicative_expression}
func (p *Parser) parseAdditiveExpression() ast.Node {
	lhs := p.parseMultiplicativeExpression()

	for p.tok.IsOneOf(lex.ADD, lex.SUB) {
		op := ast.BinAdd
		if p.tok.Is(lex.SUB) {
			op = ast.BinSub
		}
		p.consume()
		rhs := p.parseMultiplicativeExpression()
		lhs = &ast.Binary{Op: op, L: lhs, R: rhs}
	}
	return lhs
}

// Parse a multiplicative_expression.
//
//	multiplicative_expression:
//	  cast_expression {"*" cast_expression}
//	  cast_expression {"/" cast_expression}
//	  cast_expression {"%" cast_expression}
func (p *Parser) parseMultiplicativeExpression() ast.Node {
	lhs := p.parseCastExpression()

	for p.tok.IsOneOf(lex.MUL, lex.QUO, lex.REM) {
		var op ast.BinaryOp
		switch p.tok.Kind {
		case lex.MUL:
			op = ast.BinMul
		case lex.QUO:
			op = ast.BinDiv
		case lex.REM:
			op = ast.BinRem
		}
		p.consume()
		rhs := p.parseCastExpression()
		lhs = &ast.Binary{Op: op, L: lhs, R: rhs}
	}
	return lhs
}

// Parse a cast_expression.
//
//	cast_expression:
//	  unary_expression
//	  "(" type_id ")" cast_expression
//
// "(" opens either a C-style cast or a parenthesized expression. The
// contents are speculatively parsed as a type declaration; if the resolver
// confirms the base type the cast wins, otherwise the parser rolls back and
// primary_expression re-consumes the "(". The ambiguity is resolved by
// lookup, not by context-free rules.
func (p *Parser) parseCastExpression() ast.Node {
	if p.tok.Is(lex.LPAREN) {
		tentative := p.tentative()
		p.consume()

		typeDecl := p.parseTypeId()

		typ := p.resolveTypeFromTypeDecl(&typeDecl)
		if typ != nil {
			tentative.commit()

			typ = p.resolveTypeDeclarators(typ, &typeDecl)
			if typ == nil {
				return &ast.Bad{}
			}

			p.expect(lex.RPAREN)
			p.consume()
			rhs := p.parseCastExpression()
			return &ast.Cast{To: typ, Operand: rhs}
		}
		tentative.rollback()
	}

	return p.parseUnaryExpression()
}

// Parse a unary_expression.
//
//	unary_expression:
//	  postfix_expression
//	  "++" cast_expression
//	  "--" cast_expression
//	  unary_operator cast_expression
//
//	unary_operator:
//	  "&" "*" "+" "-" "~" "!"
func (p *Parser) parseUnaryExpression() ast.Node {
	if p.tok.IsOneOf(lex.INC, lex.DEC, lex.MUL, lex.AND, lex.ADD, lex.SUB, lex.BNOT, lex.NOT) {
		var op ast.UnaryOp
		switch p.tok.Kind {
		case lex.INC:
			op = ast.UnaryPreInc
		case lex.DEC:
			op = ast.UnaryPreDec
		case lex.MUL:
			op = ast.UnaryDeref
		case lex.AND:
			op = ast.UnaryAddrOf
		case lex.ADD:
			op = ast.UnaryPlus
		case lex.SUB:
			op = ast.UnaryMinus
		case lex.BNOT:
			op = ast.UnaryBNot
		case lex.NOT:
			op = ast.UnaryLNot
		}
		p.consume()
		rhs := p.parseCastExpression()
		return &ast.Unary{Op: op, Operand: rhs}
	}
	return p.parsePostfixExpression()
}

// Parse a postfix_expression.
//
//	postfix_expression:
//	  primary_expression {"[" expression "]"}
//	  primary_expression {"." id_expression}
//	  primary_expression {"->" id_expression}
//	  primary_expression {"++"}
//	  primary_expression {"--"}
func (p *Parser) parsePostfixExpression() ast.Node {
	lhs := p.parsePrimaryExpression()

	for p.tok.IsOneOf(lex.LBRACK, lex.PERIOD, lex.ARROW, lex.INC, lex.DEC) {
		switch p.tok.Kind {
		case lex.PERIOD, lex.ARROW:
			kind := ast.OfObject
			if p.tok.Is(lex.ARROW) {
				kind = ast.OfPointer
			}
			p.consume()
			member := p.parseIdExpression()
			lhs = &ast.MemberOf{Kind: kind, Base: lhs, Member: member}

		case lex.INC, lex.DEC:
			p.bailOut(ErrNotImplemented,
				fmt.Sprintf("We don't support postfix inc/dec yet: %s", p.tok.Description()),
				p.tok.Pos)
			return &ast.Bad{}

		case lex.LBRACK:
			p.consume()
			rhs := p.parseExpression()
			p.expect(lex.RBRACK)
			p.consume()
			lhs = &ast.Binary{Op: ast.BinSubscript, L: lhs, R: rhs}
		}
	}
	return lhs
}

// Parse a primary_expression.
//
//	primary_expression:
//	  numeric_literal
//	  boolean_literal
//	  pointer_literal
//	  id_expression
//	  "this"
//	  "(" expression ")"
func (p *Parser) parsePrimaryExpression() ast.Node {
	switch {
	case p.tok.Is(lex.NUMERIC_CONSTANT):
		return p.parseNumericLiteral()

	case p.tok.IsOneOf(lex.TRUE, lex.FALSE):
		val := p.tok.Is(lex.TRUE)
		p.consume()
		return &ast.Literal{Val: p.res.BoolValue(val)}

	case p.tok.Is(lex.NULLPTR):
		p.consume()
		return &ast.Literal{Val: p.res.Nullptr()}

	case p.tok.IsOneOf(lex.COLONCOLON, lex.IDENT):
		loc := p.tok.Pos
		identifier := p.parseIdExpression()
		if identifier == "" {
			return &ast.Bad{}
		}
		val := p.res.Lookup(identifier)
		if val == nil {
			p.bailOut(ErrUndeclaredIdentifier,
				fmt.Sprintf("use of undeclared identifier '%s'", identifier), loc)
			return &ast.Bad{}
		}
		return &ast.Identifier{Name: identifier, Val: val}

	case p.tok.Is(lex.THIS):
		// "this" is a prvalue per the C++ standard.
		loc := p.tok.Pos
		p.consume()
		val := p.res.Lookup("this")
		if val == nil {
			p.bailOut(ErrUndeclaredIdentifier,
				"invalid use of 'this' outside of a non-static member function", loc)
			return &ast.Bad{}
		}
		return &ast.Identifier{Name: "this", Val: val, IsRvalue: true}

	case p.tok.Is(lex.LPAREN):
		p.consume()
		expr := p.parseExpression()
		p.expect(lex.RPAREN)
		p.consume()
		return expr
	}

	p.bailOut(ErrUnknown,
		fmt.Sprintf("Unexpected token: %s", p.tok.Description()), p.tok.Pos)
	return &ast.Bad{}
}

// Parse a type_id.
//
//	type_id:
//	  type_specifier_seq {abstract_declarator}
//
//	abstract_declarator:
//	  ptr_operator {abstract_declarator}
func (p *Parser) parseTypeId() typeDeclaration {
	var typeDecl typeDeclaration

	p.parseTypeSpecifierSeq(&typeDecl)

	for p.tok.IsOneOf(lex.MUL, lex.AND) {
		p.parsePtrOperator(&typeDecl)
	}
	return typeDecl
}

// Parse a type_specifier_seq.
//
//	type_specifier_seq:
//	  type_specifier {type_specifier_seq}
func (p *Parser) parseTypeSpecifierSeq(typeDecl *typeDeclaration) {
	for p.parseTypeSpecifier(typeDecl) {
	}
}

// Parse a type_specifier. Reports whether one was parsed at this location;
// a failed attempt consumes no tokens.
//
//	type_specifier:
//	  simple_type_specifier
//	  cv_qualifier
//
//	simple_type_specifier:
//	  {"::"} {nested_name_specifier} type_name
//	  "char" "char16_t" "char32_t" "wchar_t" "bool" "short" "int" "long"
//	  "signed" "unsigned" "float" "double" "void"
func (p *Parser) parseTypeSpecifier(typeDecl *typeDeclaration) bool {
	// CV qualifiers are parsed and discarded; they make no difference to
	// the cast.
	if p.tok.IsOneOf(lex.CONST, lex.VOLATILE) {
		p.consume()
		return true
	}

	if isSimpleTypeSpecifierKeyword(p.tok) {
		typeDecl.typenames = append(typeDecl.typenames, p.tok.Val)
		p.consume()
		return true
	}

	// The type_specifier must be a user-defined type. Try parsing a
	// simple_type_specifier: optional global scope, optional
	// nested_name_specifier, required type_name.
	tentative := p.tentative()

	globalScope := false
	if p.tok.Is(lex.COLONCOLON) {
		globalScope = true
		p.consume()
	}
	nestedNameSpecifier := p.parseNestedNameSpecifier()
	typeName := p.parseTypeName()

	if typeName == "" {
		tentative.rollback()
		return false
	}
	tentative.commit()

	prefix := ""
	if globalScope {
		prefix = "::"
	}
	typeDecl.typenames = append(typeDecl.typenames, prefix+nestedNameSpecifier+typeName)
	return true
}

// Parse a nested_name_specifier.
//
//	nested_name_specifier:
//	  type_name "::"
//	  namespace_name "::"
//	  nested_name_specifier identifier "::"
//	  nested_name_specifier simple_template_id "::"
func (p *Parser) parseNestedNameSpecifier() string {
	// The first token of a nested_name_specifier is always an identifier.
	if !p.tok.Is(lex.IDENT) {
		return ""
	}

	if p.stream.LookAhead(0).Is(lex.COLONCOLON) {
		// A plain identifier segment.
		identifier := p.tok.Val
		p.consume()
		p.expect(lex.COLONCOLON)
		p.consume()
		return identifier + "::" + p.parseNestedNameSpecifier()
	}

	if p.stream.LookAhead(0).Is(lex.LSS) {
		// This could be a simple_template_id segment or just a type_name.
		// Attempt the template-id; keep it only if "::" follows.
		tentative := p.tentative()

		typeName := p.parseTypeName()
		if typeName != "" && p.tok.Is(lex.COLONCOLON) {
			tentative.commit()
			p.consume()
			return typeName + "::" + p.parseNestedNameSpecifier()
		}
		tentative.rollback()
	}

	return ""
}

// Parse a type_name. Returns "" when no type_name starts at this location;
// a failed attempt consumes no tokens.
//
//	type_name:
//	  class_name
//	  enum_name
//	  typedef_name
//	  simple_template_id
func (p *Parser) parseTypeName() string {
	if !p.tok.Is(lex.IDENT) {
		return ""
	}

	if p.stream.LookAhead(0).Is(lex.LSS) {
		// A simple_template_id: identifier "<" template_argument_list? ">".
		tentative := p.tentative()

		templateName := p.tok.Val
		p.consume()
		p.consume()

		if p.tok.Is(lex.GTR) {
			tentative.commit()
			p.consume()
			return templateName + "<>"
		}

		args := p.parseTemplateArgumentList()
		if args != "" && p.tok.Is(lex.GTR) {
			tentative.commit()
			p.consume()
			return templateName + "<" + args + ">"
		}

		// Not a simple_template_id. A ">>" here is the right-shift token;
		// nested ids must be written with a separating space.
		tentative.rollback()
		return ""
	}

	identifier := p.tok.Val
	p.consume()
	return identifier
}

// Parse a template_argument_list. Returns "" when any argument fails.
//
//	template_argument_list:
//	  template_argument
//	  template_argument_list "," template_argument
func (p *Parser) parseTemplateArgumentList() string {
	var arguments []string

	for {
		if len(arguments) > 0 {
			p.consume()
		}
		argument := p.parseTemplateArgument()
		if argument == "" {
			return ""
		}
		arguments = append(arguments, argument)

		if !p.tok.Is(lex.COMMA) {
			break
		}
	}

	// Nested template type names carry an extra space before the closing
	// ">" so the rendered form never contains ">>".
	last := arguments[len(arguments)-1]
	if last[len(last)-1] == '>' {
		arguments[len(arguments)-1] = last + " "
	}

	out := arguments[0]
	for _, a := range arguments[1:] {
		out += ", " + a
	}
	return out
}

// Parse a template_argument. Returns "" when no valid argument starts here.
//
//	template_argument:
//	  type_id
//	  id_expression
//
// Per [temp.arg], an ambiguity between a type-id and an expression is
// resolved to a type-id, so that is attempted first. Either attempt counts
// only if the resolver confirms it and the next token can close the
// argument.
func (p *Parser) parseTemplateArgument() string {
	{
		tentative := p.tentative()

		typeDecl := p.parseTypeId()
		if typeDecl.IsValid() && p.resolveTypeFromTypeDecl(&typeDecl) != nil &&
			p.tok.IsOneOf(lex.COMMA, lex.GTR) {
			tentative.commit()
			return typeDecl.Name()
		}
		tentative.rollback()
	}

	{
		tentative := p.tentative()

		idExpression := p.parseIdExpression()
		if idExpression != "" && p.tok.IsOneOf(lex.COMMA, lex.GTR) {
			tentative.commit()
			return idExpression
		}
		tentative.rollback()
	}

	// Non-type constant arguments (Foo<1>) are not supported.
	if p.tok.IsOneOf(lex.NUMERIC_CONSTANT, lex.CHAR_CONSTANT, lex.TRUE, lex.FALSE) {
		p.bailOut(ErrInvalidExpressionSyntax,
			fmt.Sprintf("constants are not supported as template arguments: %s", p.tok.Description()),
			p.tok.Pos)
	}
	return ""
}

// Parse a ptr_operator.
//
//	ptr_operator:
//	  "*" {cv_qualifier_seq}
//	  "&"
func (p *Parser) parsePtrOperator(typeDecl *typeDeclaration) {
	if p.tok.Is(lex.MUL) {
		typeDecl.ptrOps = append(typeDecl.ptrOps, lex.MUL)
		p.consume()
		for p.tok.IsOneOf(lex.CONST, lex.VOLATILE) {
			p.consume()
		}
	} else if p.tok.Is(lex.AND) {
		typeDecl.ptrOps = append(typeDecl.ptrOps, lex.AND)
		p.consume()
	}
}

func (p *Parser) resolveTypeFromTypeDecl(typeDecl *typeDeclaration) symbols.Type {
	if !typeDecl.IsValid() {
		return nil
	}
	return p.res.ResolveType(typeDecl.BaseName())
}

// resolveTypeDeclarators applies the pointer and reference declarators to a
// resolved base type. Pointers to references and references to references
// are rejected.
func (p *Parser) resolveTypeDeclarators(typ symbols.Type, typeDecl *typeDeclaration) symbols.Type {
	for _, op := range typeDecl.ptrOps {
		if op == lex.MUL {
			if typ.IsReference() {
				p.bailOut(ErrInvalidOperandType,
					fmt.Sprintf("'type name' declared as a pointer to a reference of type '%s'", typ.Name()),
					p.tok.Pos)
				return nil
			}
			next, err := p.res.PointerTo(typ)
			if err != nil {
				p.bailOut(ErrInvalidOperandType, err.Error(), p.tok.Pos)
				return nil
			}
			typ = next
		} else {
			if typ.IsReference() {
				p.bailOut(ErrInvalidOperandType,
					"type name declared as a reference to a reference", p.tok.Pos)
				return nil
			}
			next, err := p.res.ReferenceTo(typ)
			if err != nil {
				p.bailOut(ErrInvalidOperandType, err.Error(), p.tok.Pos)
				return nil
			}
			typ = next
		}
	}
	return typ
}

// Parse an id_expression. The assembled string keeps any leading "::" and
// all "::"-joined segments, template arguments spelled literally.
//
//	id_expression:
//	  unqualified_id
//	  qualified_id
//
//	qualified_id:
//	  {"::"} {nested_name_specifier} unqualified_id
//	  {"::"} identifier
func (p *Parser) parseIdExpression() string {
	globalScope := false
	if p.tok.Is(lex.COLONCOLON) {
		globalScope = true
		p.consume()
	}

	nestedNameSpecifier := p.parseNestedNameSpecifier()

	if nestedNameSpecifier != "" {
		unqualifiedId := p.parseUnqualifiedId()
		prefix := ""
		if globalScope {
			prefix = "::"
		}
		return prefix + nestedNameSpecifier + unqualifiedId
	}

	if globalScope {
		if !p.tok.Is(lex.IDENT) {
			p.expect(lex.IDENT)
			return ""
		}
		identifier := p.tok.Val
		p.consume()
		return "::" + identifier
	}

	return p.parseUnqualifiedId()
}

// Parse an unqualified_id.
//
//	unqualified_id:
//	  identifier
func (p *Parser) parseUnqualifiedId() string {
	if !p.tok.Is(lex.IDENT) {
		p.expect(lex.IDENT)
		return ""
	}
	identifier := p.tok.Val
	p.consume()
	return identifier
}

// Parse a numeric_literal: an integer or floating constant, typed with the
// target's widths.
func (p *Parser) parseNumericLiteral() ast.Node {
	tok := p.tok
	lit, err := scanNumericLiteral(tok.Val)
	if err != nil {
		p.bailOut(ErrInvalidNumericLiteral,
			fmt.Sprintf("%s: %s", err, tok.Description()), tok.Pos)
		return &ast.Bad{}
	}
	p.consume()

	if lit.isFloat {
		kind := symbols.Double
		if lit.isFloatF {
			kind = symbols.Float
		}
		typ := p.res.Basic(kind)
		return &ast.Literal{Val: p.res.FloatValue(lit.floatValue, typ)}
	}

	kind, unsigned := pickIntegerType(lit, p.opts.Target)
	typ := p.res.Basic(kind)
	return &ast.Literal{Val: p.res.IntValue(lit.intValue, unsigned, typ)}
}

func isSimpleTypeSpecifierKeyword(tok lex.Token) bool {
	return tok.IsOneOf(
		lex.CHAR, lex.CHAR16_T, lex.CHAR32_T, lex.WCHAR_T, lex.BOOL,
		lex.SHORT, lex.INT, lex.LONG, lex.SIGNED, lex.UNSIGNED,
		lex.FLOAT, lex.DOUBLE, lex.VOID)
}

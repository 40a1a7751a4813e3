package parser

import (
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

// startsType reports whether kind can begin a type.
func startsType(kind token.Kind) bool {
	switch kind {
	case token.REF, token.LEFTBRACKET, token.FN, token.STRUCT, token.UNION, token.TYPESET,
		token.GENERIC, token.IDENT:
		return true
	}
	return kind.IsPrimitive()
}

// typ = "ref" typ
//
//	| "[" "]" typ
//	| "[" expr "]" typ
//	| "fn" "(" ( typ ( "," typ )* )? ")" typ?
//	| "struct" fields | "union" fields
//	| "typeset" members
//	| PRIMITIVE | GENERIC | named ;
func (p *Parser) typ() ast.Type {
	t := p.peek()
	switch {
	case t.Kind == token.REF:
		p.advance()
		return ast.NewPointerType(t, p.typ())
	case t.Kind == token.LEFTBRACKET:
		return p.arrayType()
	case t.Kind == token.FN:
		return p.funcType()
	case t.Kind == token.STRUCT:
		p.advance()
		fields, rbrace := p.fields("field")
		return ast.NewInlineStructType(token.Join(t.Span, rbrace.Span), fields)
	case t.Kind == token.UNION:
		p.advance()
		fields, rbrace := p.fields("field")
		return ast.NewInlineUnionType(token.Join(t.Span, rbrace.Span), fields)
	case t.Kind == token.TYPESET:
		p.advance()
		members, rbrace := p.typeSetMembers()
		return ast.NewTypeSetType(token.Join(t.Span, rbrace.Span), members)
	case t.Kind == token.GENERIC:
		return ast.NewGenericParamType(p.advance())
	case t.Kind.IsPrimitive():
		return ast.NewPrimitiveType(p.advance())
	case t.Kind == token.IDENT:
		return p.namedType()
	}

	p.expected("a type")
	return p.badType()
}

// arrayType = "[" expr? "]" typ ;
func (p *Parser) arrayType() ast.Type {
	lbrack := p.advance()
	if p.match(token.RIGHTBRACKET) {
		p.advance()
		return ast.NewSliceType(lbrack, p.typ())
	}
	old := p.enter()
	length := p.expr()
	p.leave(old)
	p.closing(lbrack)
	return ast.NewArrayType(lbrack, length, p.typ())
}

// funcType = "fn" "(" ( typ ( "," typ )* )? ")" typ? ;
func (p *Parser) funcType() ast.Type {
	fnTok := p.advance()
	lparen := p.consume(token.LEFTPAREN)
	if lparen.Kind != token.LEFTPAREN {
		return ast.NewBadType(fnTok.Span)
	}
	old := p.enter()
	params := separated(p, token.RIGHTPAREN, p.typ)
	p.leave(old)
	rparen := p.closing(lparen)

	var result ast.Type
	if startsType(p.peek().Kind) && !p.peek().NewlineBefore {
		result = p.typ()
	}
	span := token.Join(fnTok.Span, rparen.Span)
	if result != nil {
		span = token.Join(span, result.Span())
	}
	return ast.NewFuncType(span, params, result)
}

// named = IDENT ( "." IDENT )? ( "(" typ ( "," typ )* ")" )? ;
func (p *Parser) namedType() ast.Type {
	var pkg *ast.Ident
	name := p.ident()
	if p.match(token.DOT) && p.matchNth(1, token.IDENT) {
		p.advance()
		pkg, name = name, p.ident()
	}
	base := ast.NewNamedType(pkg, name)
	if _, ok := isGenericArgList(p.tokens, p.current); ok && !p.peek().NewlineBefore {
		return p.typeArgs(base)
	}
	return base
}

// typeArgs parses the parenthesized arguments of a generic instantiation.
func (p *Parser) typeArgs(base *ast.NamedType) *ast.GenericInstType {
	lparen := p.advance()
	old := p.enter()
	args := separated(p, token.RIGHTPAREN, p.typ)
	p.leave(old)
	rparen := p.closing(lparen)
	return ast.NewGenericInstType(base, args, rparen)
}

// fields = "{" ( field ( ( "," | NEWLINE ) field )* )? "}" ;
// field  = IDENT ":" typ ;
func (p *Parser) fields(what string) ([]*ast.Field, token.Token) {
	lbrace := p.consume(token.LEFTBRACE)
	if lbrace.Kind != token.LEFTBRACE {
		return nil, p.previous()
	}
	dups := p.newDuplicates(what)
	fields := []*ast.Field{}
	p.members(token.RIGHTBRACE, func() {
		name := p.ident()
		p.consume(token.COLON)
		field := ast.NewField(name, p.typ())
		dups.check(name.Name, name.Span())
		fields = append(fields, field)
	})
	return fields, p.closing(lbrace)
}

// typeSetMembers = "{" typ ( ( "," | NEWLINE ) typ )* "}" ;
func (p *Parser) typeSetMembers() ([]ast.Type, token.Token) {
	lbrace := p.consume(token.LEFTBRACE)
	if lbrace.Kind != token.LEFTBRACE {
		return nil, p.previous()
	}
	members := []ast.Type{}
	p.members(token.RIGHTBRACE, func() {
		members = append(members, p.typ())
	})
	rbrace := p.closing(lbrace)
	if len(members) == 0 {
		p.sink.Report(diag.UnexpectedToken, token.Join(lbrace.Span, rbrace.Span), "a type set needs at least one member")
	}
	return members, rbrace
}

// members runs member for each entry of a brace-delimited list whose entries
// are separated by commas or newlines. A malformed entry is skipped.
func (p *Parser) members(closing token.Kind, member func()) {
	p.scopes++
	defer func() { p.scopes-- }()
	for !p.match(closing) && !p.IsAtEnd() {
		if p.accept(token.COMMA) || p.accept(token.SEMICOLON) {
			continue
		}
		before := p.current
		member()
		if p.panicMode {
			p.skipMember(closing)
		} else if !p.match(closing) && !p.match(token.COMMA) && !p.peek().NewlineBefore {
			p.expected("`,` or a new line")
			p.skipMember(closing)
		}
		if p.current == before && !p.match(closing) && !p.match(token.COMMA) {
			p.advance()
		}
	}
}

package parser

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

// topDecl parses one top-level item. Anything but a declaration is reported
// and discarded up to the next boundary.
func (p *Parser) topDecl() ast.Decl {
	if d := p.decl(); d != nil {
		return d
	}

	t := p.peek()
	p.errorAt(diag.UnexpectedToken, t, "expected a declaration, found %s", t.Describe()).
		Help = "statements belong inside a function body"
	if span, ok := p.synchronize(); ok {
		return ast.NewBadDecl(span)
	}
	return ast.NewBadDecl(pointAt(t))
}

// decl = funcDecl | structDecl | unionDecl | enumDecl | typeDecl | typeSetDecl | importDecl | binding ;
//
// decl returns nil if the cursor does not start a declaration.
func (p *Parser) decl() ast.Decl {
	switch p.peek().Kind {
	case token.FN:
		if p.matchNth(1, token.IDENT) {
			return p.funcDecl()
		}
	case token.STRUCT:
		return p.structDecl()
	case token.UNION:
		return p.unionDecl()
	case token.ENUM:
		return p.enumDecl()
	case token.TYPE:
		return p.typeDecl()
	case token.TYPESET:
		return p.typeSetDecl()
	case token.IMPORT:
		return p.importDecl()
	case token.IDENT:
		if p.matchNth(1, token.COLONCOLON) || p.matchNth(1, token.DEFINE) || p.matchNth(1, token.COLON) {
			return p.binding()
		}
	}
	return nil
}

// binding = IDENT "::" expr
//
//	| IDENT ":=" expr
//	| IDENT ":" typ ( "=" expr )? ;
func (p *Parser) binding() ast.Decl {
	name := p.ident()
	op := p.advance()
	switch op.Kind {
	case token.COLONCOLON:
		return ast.NewConstDecl(name, p.initializer(op))
	case token.DEFINE:
		return ast.NewVarDecl(name, nil, p.initializer(op))
	}

	typ := p.typ()
	if p.match(token.ASSIGN) {
		assign := p.advance()
		return ast.NewVarDecl(name, typ, p.initializer(assign))
	}
	return ast.NewVarDecl(name, typ, nil)
}

// initializer parses the value after a binding operator, which must not be
// left empty.
func (p *Parser) initializer(op token.Token) ast.Expr {
	if p.atExprEnd() {
		p.incomplete(op, "a value")
		return p.badExpr()
	}
	return p.expr()
}

// funcDecl = "fn" IDENT genericParams? params typ? block ;
func (p *Parser) funcDecl() ast.Decl {
	fnTok := p.advance()
	name := p.ident()

	var generics []*ast.GenericParam
	if p.match(token.LEFTPAREN) && p.matchNth(1, token.GENERIC) {
		generics = p.genericParams()
	}
	params := p.params()

	var result ast.Type
	if !p.match(token.LEFTBRACE) && startsType(p.peek().Kind) {
		result = p.typ()
	}
	body := p.block()

	return ast.NewFuncDecl(token.Join(fnTok.Span, body.Span()), name, generics, params, result, body)
}

// genericParams = "(" genericParam ( "," genericParam )* ")" ;
// genericParam  = GENERIC ( ":" typ )? ;
func (p *Parser) genericParams() []*ast.GenericParam {
	lparen := p.advance()
	old := p.enter()
	dups := p.newDuplicates("generic parameter")
	generics := separated(p, token.RIGHTPAREN, func() *ast.GenericParam {
		t := p.peek()
		if t.Kind != token.GENERIC {
			p.expected("a generic parameter such as `$T`")
			return ast.NewGenericParam(pointAt(t), "_", nil)
		}
		p.advance()
		name := t.Lexeme[1:]
		dups.check(name, t.Span)
		var constraint ast.Type
		if p.accept(token.COLON) {
			constraint = p.typ()
			return ast.NewGenericParam(token.Join(t.Span, constraint.Span()), name, constraint)
		}
		return ast.NewGenericParam(t.Span, name, nil)
	})
	p.leave(old)
	p.closing(lparen)
	return generics
}

// params = "(" ( param ( "," param )* ","? )? ")" ;
// param  = IDENT ":" typ ;
func (p *Parser) params() []*ast.Param {
	lparen := p.consume(token.LEFTPAREN)
	if lparen.Kind != token.LEFTPAREN {
		return nil
	}
	old := p.enter()
	dups := p.newDuplicates("parameter")
	params := separated(p, token.RIGHTPAREN, func() *ast.Param {
		name := p.ident()
		dups.check(name.Name, name.Span())
		p.consume(token.COLON)
		return ast.NewParam(name, p.typ())
	})
	p.leave(old)
	p.closing(lparen)
	return params
}

// structDecl = "struct" IDENT genericParams? fields ;
func (p *Parser) structDecl() ast.Decl {
	structTok := p.advance()
	name := p.ident()
	generics := p.optGenericParams()
	fields, rbrace := p.fields("field")
	span := declSpan(structTok, rbrace, name, list(generics), list(fields))
	return ast.NewStructDecl(span, name, generics, fields)
}

// unionDecl = "union" IDENT genericParams? fields ;
func (p *Parser) unionDecl() ast.Decl {
	unionTok := p.advance()
	name := p.ident()
	generics := p.optGenericParams()
	fields, rbrace := p.fields("field")
	span := declSpan(unionTok, rbrace, name, list(generics), list(fields))
	return ast.NewUnionDecl(span, name, generics, fields)
}

func (p *Parser) optGenericParams() []*ast.GenericParam {
	if p.match(token.LEFTPAREN) {
		return p.genericParams()
	}
	return nil
}

// enumDecl = "enum" IDENT "{" variant ( ( "," | NEWLINE ) variant )* "}" ;
// variant  = IDENT ( "=" expr )? ;
func (p *Parser) enumDecl() ast.Decl {
	enumTok := p.advance()
	name := p.ident()
	lbrace := p.consume(token.LEFTBRACE)
	if lbrace.Kind != token.LEFTBRACE {
		return ast.NewEnumDecl(token.Join(enumTok.Span, name.Span()), name, nil)
	}

	dups := p.newDuplicates("variant")
	variants := []*ast.EnumVariant{}
	p.members(token.RIGHTBRACE, func() {
		variant := p.ident()
		dups.check(variant.Name, variant.Span())
		var value ast.Expr
		if assign := p.peek(); p.accept(token.ASSIGN) {
			value = p.initializer(assign)
		}
		variants = append(variants, ast.NewEnumVariant(variant, value))
	})
	rbrace := p.closing(lbrace)
	return ast.NewEnumDecl(token.Join(enumTok.Span, rbrace.Span), name, variants)
}

// typeDecl = "type" IDENT "=" typ ;
func (p *Parser) typeDecl() ast.Decl {
	typeTok := p.advance()
	name := p.ident()
	p.consume(token.ASSIGN)
	typ := p.typ()
	return ast.NewTypeAliasDecl(token.Join(typeTok.Span, typ.Span()), name, typ)
}

// typeSetDecl = "typeset" IDENT "{" typ ( ( "," | NEWLINE ) typ )* "}" ;
func (p *Parser) typeSetDecl() ast.Decl {
	typesetTok := p.advance()
	name := p.ident()
	members, rbrace := p.typeSetMembers()
	span := declSpan(typesetTok, rbrace, name, list(members))
	return ast.NewTypeSetDecl(span, name, members)
}

// declSpan runs from the keyword to the closing token and also covers the
// children, since a placeholder name can sit past a missing `{`.
func declSpan(kw, end token.Token, name *ast.Ident, children ...[]ast.Node) token.Span {
	span := token.Join(token.Join(kw.Span, end.Span), name.Span())
	for _, nodes := range children {
		span = token.Join(span, ast.Cover(nodes...))
	}
	return span
}

// importDecl = "import" STRING ( "as" IDENT )? ;
//
// The path is `module` or `module@constraint`, where constraint is a semantic
// version range such as `^1.2` or `>= 1.0, < 2.0`.
func (p *Parser) importDecl() ast.Decl {
	importTok := p.advance()
	if !p.match(token.STRING) {
		p.expected("an import path string")
		return ast.NewBadDecl(importTok.Span)
	}
	pathTok := p.advance()
	path := ast.NewLiteral(pathTok)

	module, version, versioned := splitImportPath(pathTok.Lexeme)
	if module == "" {
		p.sink.Report(diag.ExpectedToken, pathTok.Span, "expected a module path in %s", pathTok.Lexeme)
	}
	if versioned {
		if version == "" {
			p.sink.Report(diag.InvalidVersion, pathTok.Span, "missing version constraint after `@`")
		} else if _, err := semver.NewConstraint(version); err != nil {
			p.sink.Report(diag.InvalidVersion, pathTok.Span, "invalid version constraint %q: %v", version, err).
				Help = "use a semantic version range such as ^1.2 or ~1.4.0"
		}
	}

	var alias *ast.Ident
	if p.accept(token.AS) {
		alias = p.ident()
	}
	return ast.NewImportDecl(token.Join(importTok.Span, ast.Cover(path, alias)), path, module, version, alias)
}

func splitImportPath(lexeme string) (module, version string, versioned bool) {
	s := strings.TrimSuffix(strings.TrimPrefix(lexeme, `"`), `"`)
	i := strings.LastIndex(s, "@")
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

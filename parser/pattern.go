package parser

import (
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

// patterns = pattern ( "," pattern )* ;
func (p *Parser) patterns() []ast.Pattern {
	pats := []ast.Pattern{p.pattern()}
	for !p.panicMode && p.accept(token.COMMA) {
		pats = append(pats, p.pattern())
	}
	return pats
}

// pattern = literal ( ".." literal )?
//
//	| "_"
//	| IDENT "." IDENT
//	| "." IDENT
//	| IDENT ;
func (p *Parser) pattern() ast.Pattern {
	t := p.peek()
	switch {
	case t.Kind == token.IDENT && t.Lexeme == "_":
		return ast.NewWildcardPattern(p.advance())
	case t.Kind == token.IDENT && p.matchNth(1, token.DOT) && p.matchNth(2, token.IDENT):
		enum := p.ident()
		p.advance()
		variant := p.ident()
		return ast.NewVariantPattern(token.Join(enum.Span(), variant.Span()), enum, variant)
	case t.Kind == token.IDENT:
		return ast.NewBindingPattern(p.ident())
	case t.Kind == token.DOT && p.matchNth(1, token.IDENT):
		p.advance()
		variant := p.ident()
		return ast.NewVariantPattern(token.Join(t.Span, variant.Span()), nil, variant)
	}

	low, ok := p.literalPattern()
	if !ok {
		p.errorAt(diag.UnexpectedToken, t, "expected a pattern, found %s", t.Describe())
		return ast.NewBadPattern(pointAt(t))
	}
	if !p.accept(token.DOTDOT) {
		return ast.NewLiteralPattern(low)
	}
	high, ok := p.literalPattern()
	if !ok {
		p.expected("the upper bound of the range")
		return ast.NewBadPattern(p.spanFrom(t))
	}
	return ast.NewRangePattern(low, high)
}

// literalPattern = INT | FLOAT | CHAR | STRING | "true" | "false" | "nil" | "-" ( INT | FLOAT ) ;
func (p *Parser) literalPattern() (*ast.Literal, bool) {
	switch p.peek().Kind {
	case token.INT, token.FLOAT, token.CHAR, token.STRING, token.TRUE, token.FALSE, token.NIL:
		return ast.NewLiteral(p.advance()), true
	case token.MINUS:
		if p.matchNth(1, token.INT) || p.matchNth(1, token.FLOAT) {
			minus := p.advance()
			return ast.NewNegativeLiteral(minus, p.advance()), true
		}
	}
	return nil, false
}

// Package parser is a recursive-descent parser for Lumen.
//
// Each grammar production is a method with its EBNF rule in the comment above
// it. Errors are reported to a diag.Sink and never stop the parse: a failed
// production returns a Bad node and the statement loops resynchronize.
package parser

import (
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/lexer"
	"github.com/takoeight0821/lumen/token"
)

type Parser struct {
	file    string
	tokens  []token.Token
	current int
	sink    *diag.Sink

	// exprLev is positive inside parentheses, brackets and literal braces, zero
	// at statement level and negative in the header of if/while/for/match.
	// Newlines only terminate expressions when it is not positive.
	exprLev int
	// scopes counts the braces that are open at the cursor.
	scopes int
	// panicMode is set by the first error of a statement and suppresses
	// further reports until the statement loop resynchronizes.
	panicMode bool
}

// NewParser creates a parser over tokens, which must end with an EOF token.
func NewParser(file string, tokens []token.Token, sink *diag.Sink) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		tokens = append(tokens, token.Token{Kind: token.EOF})
	}
	return &Parser{file: file, tokens: tokens, sink: sink}
}

// Parse lexes and parses one compilation unit.
func Parse(file, source string, sink *diag.Sink) *ast.File {
	tokens := lexer.Lex(file, source, sink)
	return NewParser(file, tokens, sink).ParseFile()
}

// ParseFile parses a sequence of top-level declarations.
func (p *Parser) ParseFile() *ast.File {
	decls := []ast.Decl{}
	for !p.IsAtEnd() {
		if p.match(token.SEMICOLON) {
			p.advance()
			continue
		}
		before := p.current
		decls = append(decls, p.topDecl())
		if bad, ok := p.recoverAfter(before); ok {
			decls = append(decls, ast.NewBadDecl(bad))
		}
	}
	span := token.Join(p.tokens[0].Span, p.peek().Span)
	span.File = p.file
	return ast.NewFile(span, p.file, decls)
}

// ParseExpr parses a single expression that must span all tokens.
func (p *Parser) ParseExpr() ast.Expr {
	expr := p.expr()
	p.expectEnd()
	return expr
}

// ParseStmts parses statements up to the end of input.
func (p *Parser) ParseStmts() []ast.Stmt {
	return p.stmtsUntil(func() bool { return false })
}

func (p *Parser) expectEnd() {
	for p.match(token.SEMICOLON) {
		p.advance()
	}
	if !p.IsAtEnd() {
		p.errorAt(diag.UnexpectedToken, p.peek(), "unexpected %s after end of input", p.peek().Describe())
	}
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

// peekNth returns the token n positions ahead, clamped to EOF.
func (p Parser) peekNth(n int) token.Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kind token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p Parser) matchNth(n int, kind token.Kind) bool {
	if p.current+n >= len(p.tokens) {
		return false
	}
	if p.tokens[p.current+n].Kind == token.EOF {
		return false
	}

	return p.peekNth(n).Kind == kind
}

// accept consumes the current token if it has the given kind.
func (p *Parser) accept(kind token.Kind) bool {
	if p.match(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(kind token.Kind) token.Token {
	if p.match(kind) {
		return p.advance()
	}

	p.expected("`" + kind.String() + "`")

	return p.peek()
}

// newlineEnds reports whether the current token starts a new line in a context
// where a newline terminates the expression.
func (p Parser) newlineEnds() bool {
	return p.exprLev <= 0 && p.peek().NewlineBefore
}

// atStmtEnd reports whether nothing more of the current statement follows.
func (p Parser) atStmtEnd() bool {
	switch p.peek().Kind {
	case token.EOF, token.SEMICOLON, token.RIGHTBRACE, token.CASE, token.ELSE:
		return true
	}
	return p.peek().NewlineBefore
}

// atExprEnd reports whether the cursor cannot start an operand.
func (p Parser) atExprEnd() bool {
	switch p.peek().Kind {
	case token.EOF, token.SEMICOLON, token.RIGHTBRACE, token.RIGHTPAREN, token.RIGHTBRACKET, token.COMMA:
		return true
	}
	return p.newlineEnds()
}

// enter opens a nesting level in which newlines are insignificant and struct
// literals are always allowed. It returns the level to restore with leave.
func (p *Parser) enter() int {
	old := p.exprLev
	p.exprLev = max(p.exprLev, 0) + 1
	return old
}

func (p *Parser) leave(old int) {
	p.exprLev = old
}

// header runs parse with struct literals disabled, as in the condition of an
// if statement where `{` opens the body.
func header[T any](p *Parser, parse func() T) T {
	old := p.exprLev
	p.exprLev = -1
	defer func() { p.exprLev = old }()
	return parse()
}

// spanFrom covers start through the last consumed token.
func (p Parser) spanFrom(start token.Token) token.Span {
	if p.current == 0 {
		return start.Span
	}
	return token.Join(start.Span, p.previous().Span)
}

// pointAt returns an empty span at the start of t.
func pointAt(t token.Token) token.Span {
	return token.Span{
		File:      t.Span.File,
		StartLine: t.Span.StartLine,
		StartCol:  t.Span.StartCol,
		EndLine:   t.Span.StartLine,
		EndCol:    t.Span.StartCol,
		Offset:    t.Span.Offset,
		EndOffset: t.Span.Offset,
	}
}

// separated parses `elem ("," elem)* ","?` up to, not including, closing.
func separated[T any](p *Parser, closing token.Kind, elem func() T) []T {
	items := []T{}
	for !p.match(closing) && !p.IsAtEnd() {
		items = append(items, elem())
		if p.panicMode || !p.accept(token.COMMA) {
			break
		}
	}
	return items
}

func (p *Parser) ident() *ast.Ident {
	if p.match(token.IDENT) {
		return ast.NewIdent(p.advance())
	}
	t := p.peek()
	p.expected("an identifier")
	return ast.NewIdent(token.Token{Kind: token.IDENT, Lexeme: "_", Span: pointAt(t)})
}

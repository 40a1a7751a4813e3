package parser

import (
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

// errorAt reports a syntax error at t and enters panic mode. While in panic
// mode, and for ILLEGAL tokens the lexer already reported, nothing is recorded
// and the returned diagnostic is a detached placeholder.
func (p *Parser) errorAt(kind diag.Kind, t token.Token, format string, args ...any) *diag.Diagnostic {
	suppressed := p.panicMode || t.Kind == token.ILLEGAL
	p.panicMode = true
	if suppressed {
		return &diag.Diagnostic{}
	}
	span := t.Span
	if t.Kind == token.EOF {
		span = pointAt(t)
	}
	return p.sink.Report(kind, span, format, args...)
}

// expected reports that what was required at the cursor.
func (p *Parser) expected(what string) *diag.Diagnostic {
	t := p.peek()
	return p.errorAt(diag.ExpectedToken, t, "expected %s, found %s", what, t.Describe())
}

// incomplete reports a construct that stops before its required operand.
func (p *Parser) incomplete(after token.Token, what string) *diag.Diagnostic {
	t := p.peek()
	d := p.errorAt(diag.IncompleteExpression, t, "expected %s after `%s`, found %s", what, after.Lexeme, t.Describe())
	d.Secondary = append(d.Secondary, diag.Label{Span: after.Span, Message: "incomplete here"})
	return d
}

var closerOf = map[token.Kind]token.Kind{
	token.LEFTPAREN:   token.RIGHTPAREN,
	token.LEFTBRACKET: token.RIGHTBRACKET,
	token.LEFTBRACE:   token.RIGHTBRACE,
}

// closing consumes the bracket that closes open. A different closing bracket is
// a mismatch and is consumed in its place so the nesting stays balanced.
func (p *Parser) closing(open token.Token) token.Token {
	want := closerOf[open.Kind]
	if p.match(want) {
		return p.advance()
	}

	t := p.peek()
	switch t.Kind {
	case token.RIGHTPAREN, token.RIGHTBRACKET, token.RIGHTBRACE:
		if want == token.RIGHTBRACE || t.Kind == token.RIGHTBRACE {
			// A stray `}` belongs to an enclosing block; leave it there.
			break
		}
		d := p.errorAt(diag.MismatchedBracket, t, "mismatched `%s`: expected `%s`", t.Lexeme, want)
		d.Secondary = append(d.Secondary, diag.Label{Span: open.Span, Message: "unclosed `" + open.Lexeme + "`"})
		return p.advance()
	}

	d := p.errorAt(diag.ExpectedToken, t, "expected `%s` to close `%s`, found %s", want, open.Lexeme, t.Describe())
	d.Secondary = append(d.Secondary, diag.Label{Span: open.Span, Message: "opened here"})
	if t.Kind == token.EOF {
		return token.Token{Kind: token.EOF, Span: pointAt(t)}
	}
	return token.Token{Kind: want, Span: pointAt(t)}
}

// duplicates reports repeated names within one declaration list.
type duplicates struct {
	p    *Parser
	what string
	seen map[string]token.Span
}

func (p *Parser) newDuplicates(what string) *duplicates {
	return &duplicates{p: p, what: what, seen: map[string]token.Span{}}
}

func (d *duplicates) check(name string, span token.Span) {
	if name == "_" || name == "" {
		return
	}
	if first, ok := d.seen[name]; ok {
		diagnostic := d.p.sink.Report(diag.DuplicateName, span, "duplicate %s `%s`", d.what, name)
		diagnostic.Secondary = append(diagnostic.Secondary, diag.Label{Span: first, Message: "first declared here"})
		return
	}
	d.seen[name] = span
}

// isSyncKeyword reports whether kind starts a declaration or statement, a safe
// place to resume after an error.
func isSyncKeyword(kind token.Kind) bool {
	switch kind {
	case token.FN, token.STRUCT, token.ENUM, token.UNION, token.TYPE, token.TYPESET, token.IMPORT,
		token.IF, token.WHILE, token.FOR, token.MATCH, token.RET, token.DEFER,
		token.BREAK, token.CONTINUE, token.LABEL, token.CASE, token.ELSE:
		return true
	}
	return false
}

// atBoundary reports whether the cursor sits where a new statement may begin.
func (p Parser) atBoundary() bool {
	t := p.peek()
	switch {
	case t.Kind == token.EOF, t.Kind == token.SEMICOLON, t.NewlineBefore:
		return true
	case t.Kind == token.RIGHTBRACE && p.scopes > 0:
		return true
	case p.current > 0 && p.previous().Kind == token.SEMICOLON:
		return true
	}
	return isSyncKeyword(t.Kind)
}

// recoverAfter leaves panic mode after a statement or declaration that began at
// before. If the statement stopped mid-line, or consumed nothing, the rest of
// the line is discarded and its span returned.
func (p *Parser) recoverAfter(before int) (token.Span, bool) {
	erred := p.panicMode
	p.panicMode = false
	if p.current > before && (!erred || p.atBoundary()) {
		return token.Span{}, false
	}
	return p.synchronize()
}

// synchronize discards at least one token and then everything up to the next
// boundary: a new line, a `;`, a statement keyword, or a `}` that closes an open
// scope. It reports the span of what it discarded.
func (p *Parser) synchronize() (token.Span, bool) {
	if p.IsAtEnd() || (p.match(token.RIGHTBRACE) && p.scopes > 0) {
		return token.Span{}, false
	}
	start := p.advance()
	for !p.atBoundary() {
		p.advance()
	}
	return p.spanFrom(start), true
}

// skipMember resynchronizes inside a member list such as struct fields: it
// discards tokens up to a `,`, the closing token, or a new line.
func (p *Parser) skipMember(closing token.Kind) {
	p.panicMode = false
	for !p.IsAtEnd() && !p.match(token.COMMA) && !p.match(closing) {
		p.advance()
		if p.peek().NewlineBefore {
			break
		}
	}
}

func (p *Parser) badExpr() ast.Expr {
	return ast.NewBadExpr(pointAt(p.peek()))
}

func (p *Parser) badType() ast.Type {
	return ast.NewBadType(pointAt(p.peek()))
}

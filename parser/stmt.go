package parser

import (
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

// stmtsUntil parses statements until stop reports true or the input ends.
// Tokens discarded while recovering from an error become BadStmt nodes.
func (p *Parser) stmtsUntil(stop func() bool) []ast.Stmt {
	stmts := []ast.Stmt{}
	for !p.IsAtEnd() && !stop() {
		if p.accept(token.SEMICOLON) {
			continue
		}
		before := p.current
		stmts = append(stmts, p.stmt())
		if bad, ok := p.recoverAfter(before); ok {
			stmts = append(stmts, ast.NewBadStmt(bad))
		}
	}
	return stmts
}

// block = "{" stmt* "}" ;
func (p *Parser) block() *ast.Block {
	if !p.match(token.LEFTBRACE) {
		t := p.peek()
		p.expected("`{`")
		missing := token.Token{Kind: token.LEFTBRACE, Span: pointAt(t)}
		return ast.NewBlock(missing, nil, missing)
	}

	lbrace := p.advance()
	old := p.exprLev
	p.exprLev = 0
	p.scopes++
	stmts := p.stmtsUntil(func() bool { return p.match(token.RIGHTBRACE) })
	p.scopes--
	p.exprLev = old

	rbrace := p.closing(lbrace)
	return ast.NewBlock(lbrace, stmts, rbrace)
}

// stmt = block | ifStmt | whileStmt | forStmt | matchStmt | breakStmt | continueStmt
//
//	| retStmt | deferStmt | labeledStmt | decl | simpleStmt ;
func (p *Parser) stmt() ast.Stmt {
	switch p.peek().Kind {
	case token.LEFTBRACE:
		return p.block()
	case token.IF:
		return p.ifStmt()
	case token.WHILE:
		return p.whileStmt()
	case token.FOR:
		return p.forStmt()
	case token.MATCH:
		return p.matchStmt()
	case token.BREAK:
		breakTok := p.advance()
		label := p.jumpLabel()
		return ast.NewBreakStmt(token.Join(breakTok.Span, ast.Cover(label)), label)
	case token.CONTINUE:
		continueTok := p.advance()
		label := p.jumpLabel()
		return ast.NewContinueStmt(token.Join(continueTok.Span, ast.Cover(label)), label)
	case token.RET:
		return p.retStmt()
	case token.DEFER:
		return p.deferStmt()
	case token.LABEL:
		return p.labeledStmt()
	}

	if d := p.decl(); d != nil {
		return ast.NewDeclStmt(d)
	}
	return p.simpleStmt()
}

// simpleStmt = expr ;
//
// An assignment at the top of the expression becomes an AssignStmt.
func (p *Parser) simpleStmt() ast.Stmt {
	x := p.expr()
	if assign, ok := x.(*ast.AssignExpr); ok {
		return ast.NewAssignStmt(assign.Op, assign.Target, assign.Value)
	}
	return ast.NewExprStmt(x)
}

// condition parses the header expression after kw, which must be present.
func (p *Parser) condition(kw token.Token, what string) ast.Expr {
	if p.match(token.LEFTBRACE) || p.IsAtEnd() {
		p.incomplete(kw, what)
		return p.badExpr()
	}
	return header(p, p.expr)
}

// ifStmt = "if" expr block ( "else" ( ifStmt | block ) )? ;
func (p *Parser) ifStmt() ast.Stmt {
	ifTok := p.advance()
	cond := p.condition(ifTok, "a condition")
	then := p.block()

	var els ast.Stmt
	// `else:` starts the next match arm instead.
	if p.match(token.ELSE) && !p.matchNth(1, token.COLON) {
		p.advance()
		if p.match(token.IF) {
			els = p.ifStmt()
		} else {
			els = p.block()
		}
	}
	return ast.NewIfStmt(ifTok, cond, then, els)
}

// whileStmt = "while" expr block ;
func (p *Parser) whileStmt() ast.Stmt {
	whileTok := p.advance()
	cond := p.condition(whileTok, "a condition")
	return ast.NewWhileStmt(whileTok, cond, p.block())
}

// forStmt = "for" IDENT ( "," IDENT )? "in" expr block
//
//	| "for" block
//	| "for" expr block
//	| "for" forClause? ";" expr? ";" forClause? block ;
func (p *Parser) forStmt() ast.Stmt {
	forTok := p.advance()

	if p.match(token.IDENT) && (p.matchNth(1, token.IN) ||
		p.matchNth(1, token.COMMA) && p.matchNth(2, token.IDENT) && p.matchNth(3, token.IN)) {
		var index *ast.Ident
		value := p.ident()
		if p.accept(token.COMMA) {
			index, value = value, p.ident()
		}
		inTok := p.consume(token.IN)
		iter := p.condition(inTok, "a value to iterate over")
		return ast.NewForInStmt(forTok, index, value, iter, p.block())
	}

	if p.match(token.LEFTBRACE) {
		return ast.NewForStmt(forTok, nil, nil, nil, p.block())
	}

	old := p.exprLev
	p.exprLev = -1
	var init, post ast.Stmt
	var cond ast.Expr
	if !p.match(token.SEMICOLON) {
		init = p.forClause()
	}
	if s, ok := init.(*ast.ExprStmt); ok && p.match(token.LEFTBRACE) {
		// `for cond {`
		p.exprLev = old
		return ast.NewForStmt(forTok, nil, s.X, nil, p.block())
	}
	p.consume(token.SEMICOLON)
	if !p.match(token.SEMICOLON) {
		cond = p.expr()
	}
	p.consume(token.SEMICOLON)
	if !p.match(token.LEFTBRACE) {
		post = p.forClause()
	}
	p.exprLev = old

	return ast.NewForStmt(forTok, init, cond, post, p.block())
}

// forClause = binding | simpleStmt ;
func (p *Parser) forClause() ast.Stmt {
	if p.match(token.IDENT) && (p.matchNth(1, token.DEFINE) || p.matchNth(1, token.COLON)) {
		return ast.NewDeclStmt(p.binding())
	}
	return p.simpleStmt()
}

// matchStmt = "match" expr "{" arm+ "}" ;
// arm       = ( "case" patterns | "else" ) ":" stmt* ;
func (p *Parser) matchStmt() ast.Stmt {
	matchTok := p.advance()
	subject := p.condition(matchTok, "a value to match")
	if !p.match(token.LEFTBRACE) {
		p.expected("`{`")
		return ast.NewMatchStmt(token.Join(matchTok.Span, subject.Span()), subject, nil)
	}
	lbrace := p.advance()

	old := p.exprLev
	p.exprLev = 0
	p.scopes++
	arms := []*ast.MatchArm{}
	var catchAll token.Span
	for !p.match(token.RIGHTBRACE) && !p.IsAtEnd() {
		if p.accept(token.SEMICOLON) {
			continue
		}
		start := p.peek()
		patterns, ok := p.armHead()
		if !ok {
			p.skipArm()
			continue
		}
		if p.panicMode {
			p.panicMode = false
			if !p.atBoundary() {
				p.synchronize()
			}
		}
		body := p.stmtsUntil(p.atArmEnd)
		span := token.Join(p.spanFrom(start), ast.Cover(list(patterns)...))
		arm := ast.NewMatchArm(token.Join(span, ast.Cover(list(body)...)), patterns, body)
		catchAll = p.checkArm(catchAll, start, arm.Span())
		arms = append(arms, arm)
	}
	p.scopes--
	p.exprLev = old

	rbrace := p.closing(lbrace)
	span := token.Join(matchTok.Span, rbrace.Span)
	if len(arms) == 0 {
		p.sink.Report(diag.ExpectedToken, span, "`match` needs at least one arm")
	}
	return ast.NewMatchStmt(span, subject, arms)
}

// armHead parses `case patterns :` or `else :`.
func (p *Parser) armHead() ([]ast.Pattern, bool) {
	t := p.peek()
	switch t.Kind {
	case token.CASE:
		p.advance()
		patterns := p.patterns()
		p.consume(token.COLON)
		return patterns, true
	case token.ELSE:
		p.advance()
		p.consume(token.COLON)
		return []ast.Pattern{ast.NewWildcardPattern(t)}, true
	}

	p.errorAt(diag.UnexpectedToken, t, "expected `case` or `else`, found %s", t.Describe())
	return nil, false
}

func (p *Parser) atArmEnd() bool {
	return p.match(token.RIGHTBRACE) || p.match(token.CASE) || p.match(token.ELSE)
}

// skipArm discards a malformed arm up to the next `case`, `else` or the `}`
// closing the match.
func (p *Parser) skipArm() {
	depth := 0
	for !p.IsAtEnd() {
		switch p.peek().Kind {
		case token.LEFTBRACE:
			depth++
		case token.RIGHTBRACE:
			if depth == 0 {
				p.panicMode = false
				return
			}
			depth--
		case token.CASE, token.ELSE:
			if depth == 0 {
				p.panicMode = false
				return
			}
		}
		p.advance()
	}
	p.panicMode = false
}

// checkArm warns about an arm that follows an else arm and returns the span of
// the first else arm seen so far.
func (p *Parser) checkArm(catchAll token.Span, start token.Token, span token.Span) token.Span {
	if catchAll.IsValid() {
		d := p.sink.Warn(diag.UnreachableArm, span, "unreachable arm after `else`")
		d.Secondary = append(d.Secondary, diag.Label{Span: catchAll, Message: "`else` matches everything"})
		return catchAll
	}
	if start.Kind == token.ELSE {
		return start.Span
	}
	return catchAll
}

func (p *Parser) jumpLabel() *ast.Ident {
	if p.match(token.IDENT) && !p.peek().NewlineBefore {
		return p.ident()
	}
	return nil
}

// retStmt = "ret" expr? ;
//
// The value is absent when a newline, `;`, `}` or the end of input follows.
func (p *Parser) retStmt() ast.Stmt {
	retTok := p.advance()
	if p.atStmtEnd() {
		return ast.NewReturnStmt(retTok, nil)
	}
	return ast.NewReturnStmt(retTok, p.expr())
}

// deferStmt = "defer" stmt ;
func (p *Parser) deferStmt() ast.Stmt {
	deferTok := p.advance()
	if p.atStmtEnd() {
		p.incomplete(deferTok, "a statement")
		return ast.NewDeferStmt(deferTok, ast.NewBadStmt(pointAt(p.peek())))
	}
	return ast.NewDeferStmt(deferTok, p.stmt())
}

// labeledStmt = "label" IDENT ":" ( forStmt | whileStmt ) ;
func (p *Parser) labeledStmt() ast.Stmt {
	labelTok := p.advance()
	name := p.ident()
	p.consume(token.COLON)

	var loop ast.Stmt
	switch p.peek().Kind {
	case token.FOR:
		loop = p.forStmt()
	case token.WHILE:
		loop = p.whileStmt()
	default:
		p.expected("a `for` or `while` loop after the label")
		loop = ast.NewBadStmt(pointAt(p.peek()))
	}
	return ast.NewLabeledStmt(labelTok, name, loop)
}

// list converts a slice of nodes to []ast.Node for span computations.
func list[T ast.Node](xs []T) []ast.Node {
	nodes := make([]ast.Node, len(xs))
	for i, x := range xs {
		nodes[i] = x
	}
	return nodes
}

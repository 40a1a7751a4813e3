package parser

import (
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

// Binary operator precedence, loosest first.
const (
	precNone = iota
	precAssign
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

func precedence(kind token.Kind) int {
	switch kind {
	case token.STAR, token.SLASH, token.PERCENT:
		return precMultiplicative
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.SHL, token.SHR:
		return precShift
	case token.LT, token.LE, token.GT, token.GE:
		return precRelational
	case token.EQ, token.NEQ:
		return precEquality
	case token.AMP:
		return precBitAnd
	case token.CARET:
		return precBitXor
	case token.PIPE:
		return precBitOr
	case token.ANDAND:
		return precAnd
	case token.OROR:
		return precOr
	}
	if kind.IsAssign() {
		return precAssign
	}
	return precNone
}

// expr = binary ;
func (p *Parser) expr() ast.Expr {
	return p.binary(precAssign)
}

// binary = unary ( OP binary )* ;
//
// Operators at or above minPrec are folded by precedence climbing. Assignment
// is right-associative, every other operator left-associative.
func (p *Parser) binary(minPrec int) ast.Expr {
	left := p.unary()
	for !p.panicMode {
		op := p.peek()
		prec := precedence(op.Kind)
		if prec == precNone || prec < minPrec || p.newlineEnds() {
			break
		}
		p.advance()

		var right ast.Expr
		switch {
		case p.atExprEnd():
			p.incomplete(op, "an operand")
			right = p.badExpr()
		case prec == precAssign:
			right = p.binary(precAssign)
		default:
			right = p.binary(prec + 1)
		}

		if prec == precAssign {
			left = ast.NewAssign(op.Kind, left, right)
		} else {
			left = ast.NewBinary(op.Kind, left, right)
		}
	}
	return left
}

// unary = ( "-" | "!" | "~" ) unary | postfix ;
func (p *Parser) unary() ast.Expr {
	switch p.peek().Kind {
	case token.MINUS, token.BANG, token.TILDE:
		op := p.advance()
		if p.atExprEnd() {
			p.incomplete(op, "an operand")
			return ast.NewUnary(op, p.badExpr())
		}
		return ast.NewUnary(op, p.unary())
	}
	return p.postfix(p.primary())
}

// postfix = primary ( call | index | "." ( IDENT | "ref" | "deref" ) )* ;
//
// A `(` or `[` on a new line starts a new statement rather than continuing
// the expression.
func (p *Parser) postfix(x ast.Expr) ast.Expr {
	for !p.panicMode {
		switch p.peek().Kind {
		case token.LEFTPAREN:
			if p.newlineEnds() {
				return x
			}
			x = p.call(x)
		case token.LEFTBRACKET:
			if p.newlineEnds() {
				return x
			}
			x = p.index(x)
		case token.DOT:
			p.advance()
			switch t := p.peek(); t.Kind {
			case token.REF:
				x = ast.NewAddrOf(x, p.advance())
			case token.DEREF:
				x = ast.NewDeref(x, p.advance())
			case token.IDENT:
				x = ast.NewFieldExpr(x, p.ident())
			default:
				p.expected("a field name, `ref` or `deref` after `.`")
				return x
			}
		default:
			return x
		}
	}
	return x
}

// call = "(" ( expr ( "," expr )* ","? )? ")" ;
func (p *Parser) call(callee ast.Expr) ast.Expr {
	lparen := p.advance()
	old := p.enter()
	args := separated(p, token.RIGHTPAREN, p.expr)
	p.leave(old)
	rparen := p.closing(lparen)
	return ast.NewCall(callee, args, rparen)
}

// index = "[" expr "]" | "[" expr? ".." expr? "]" ;
func (p *Parser) index(x ast.Expr) ast.Expr {
	lbrack := p.advance()
	old := p.enter()

	var low, high ast.Expr
	switch {
	case p.match(token.RIGHTBRACKET):
		p.expected("an index")
		low = p.badExpr()
	case !p.match(token.DOTDOT):
		low = p.expr()
	}

	if !p.accept(token.DOTDOT) {
		p.leave(old)
		return ast.NewIndex(x, low, p.closing(lbrack))
	}
	if !p.match(token.RIGHTBRACKET) {
		high = p.expr()
	}
	p.leave(old)
	return ast.NewSlice(x, low, high, p.closing(lbrack))
}

// primary = literal | IDENT | structLit | "(" expr ")" | arrayLit | castExpr | condExpr | matchExpr ;
func (p *Parser) primary() ast.Expr {
	t := p.peek()
	switch t.Kind {
	case token.INT, token.FLOAT, token.CHAR, token.STRING, token.TRUE, token.FALSE, token.NIL:
		return ast.NewLiteral(p.advance())
	case token.IDENT:
		return p.identOrStructLit()
	case token.LEFTPAREN:
		lparen := p.advance()
		old := p.enter()
		x := p.expr()
		p.leave(old)
		return ast.NewParen(lparen, x, p.closing(lparen))
	case token.LEFTBRACKET:
		return p.arrayLit()
	case token.CAST:
		return p.castExpr()
	case token.IF:
		return p.condExpr()
	case token.MATCH:
		return p.matchExpr()
	case token.GENERIC:
		p.errorAt(diag.UnexpectedToken, t, "generic parameter %s cannot be used as a value", t.Lexeme)
		return p.badExpr()
	}

	if t.Kind.IsPrimitive() {
		p.errorAt(diag.UnexpectedToken, t, "type %s cannot be used as a value", t.Lexeme).
			Help = "convert with cast(" + t.Lexeme + ", value)"
		return p.badExpr()
	}
	p.errorAt(diag.UnexpectedToken, t, "expected an expression, found %s", t.Describe())
	return p.badExpr()
}

// identOrStructLit parses an identifier, or a struct literal when the
// identifier names the type of one: `Point{...}` or `Pair(int, int){...}`.
func (p *Parser) identOrStructLit() ast.Expr {
	at := p.current
	name := p.ident()
	if p.newlineEnds() {
		return name
	}

	switch p.peek().Kind {
	case token.LEFTBRACE:
		if p.structLitAllowed(at) {
			return p.structLit(ast.NewNamedType(nil, name))
		}
	case token.LEFTPAREN:
		closeAt, ok := isGenericArgList(p.tokens, p.current)
		if ok && p.tokens[closeAt+1].Kind == token.LEFTBRACE && p.structLitAllowed(at) {
			return p.structLit(p.typeArgs(ast.NewNamedType(nil, name)))
		}
	}
	return name
}

// structLitAllowed decides whether `{` after the identifier at tokens[at] opens
// a struct literal. Nested contexts always allow one and control headers never
// do; at statement level the backward scan decides.
func (p Parser) structLitAllowed(at int) bool {
	switch {
	case p.exprLev > 0:
		return true
	case p.exprLev < 0:
		return false
	}
	return isStructLiteralStart(p.tokens, at)
}

// structLit = typ "{" ( fieldInit ( ( "," | NEWLINE ) fieldInit )* )? "}" ;
// fieldInit = ( IDENT ":" )? expr ;
func (p *Parser) structLit(typ ast.Type) ast.Expr {
	lbrace := p.advance()
	old := p.enter()
	dups := p.newDuplicates("field")
	fields := []*ast.FieldInit{}
	p.members(token.RIGHTBRACE, func() {
		var name *ast.Ident
		if p.match(token.IDENT) && p.matchNth(1, token.COLON) {
			name = p.ident()
			p.advance()
			dups.check(name.Name, name.Span())
		}
		field := ast.NewFieldInit(name, p.expr())
		if len(fields) > 0 && (name == nil) != (fields[0].Name == nil) {
			p.sink.Report(diag.UnexpectedToken, field.Span(), "cannot mix named and positional fields in a struct literal")
		}
		fields = append(fields, field)
	})
	p.leave(old)
	return ast.NewStructLit(typ, fields, p.closing(lbrace))
}

// arrayLit = "[" ( expr ( "," expr )* ","? )? "]"
//
//	| "[" INT? "]" typ "{" ( expr ( ( "," | NEWLINE ) expr )* )? "}" ;
func (p *Parser) arrayLit() ast.Expr {
	lbrack := p.peek()
	typed := p.matchNth(1, token.RIGHTBRACKET) && startsType(p.peekNth(2).Kind) && !p.peekNth(2).NewlineBefore ||
		p.matchNth(1, token.INT) && p.matchNth(2, token.RIGHTBRACKET) && startsType(p.peekNth(3).Kind)
	if typed {
		typ := p.typ()
		if !p.match(token.LEFTBRACE) {
			p.expected("`{` after the array type")
			return ast.NewArrayLit(token.Join(lbrack.Span, typ.Span()), typ, nil)
		}
		lbrace := p.advance()
		old := p.enter()
		elems := []ast.Expr{}
		p.members(token.RIGHTBRACE, func() {
			elems = append(elems, p.expr())
		})
		p.leave(old)
		rbrace := p.closing(lbrace)
		return ast.NewArrayLit(token.Join(lbrack.Span, rbrace.Span), typ, elems)
	}

	p.advance()
	old := p.enter()
	elems := separated(p, token.RIGHTBRACKET, p.expr)
	p.leave(old)
	rbrack := p.closing(lbrack)
	return ast.NewArrayLit(token.Join(lbrack.Span, rbrack.Span), nil, elems)
}

// castExpr = "cast" "(" typ "," expr ")" ;
func (p *Parser) castExpr() ast.Expr {
	castTok := p.advance()
	if !p.match(token.LEFTPAREN) {
		p.expected("`(` after `cast`")
		return ast.NewBadExpr(castTok.Span)
	}
	lparen := p.advance()
	old := p.enter()
	typ := p.typ()
	p.consume(token.COMMA)
	value := p.expr()
	p.leave(old)
	rparen := p.closing(lparen)
	return ast.NewCast(token.Join(castTok.Span, rparen.Span), typ, value)
}

// condExpr = "if" expr branch "else" ( condExpr | branch ) ;
// branch   = "{" expr "}" ;
func (p *Parser) condExpr() ast.Expr {
	ifTok := p.advance()
	cond := p.condition(ifTok, "a condition")
	then := p.branch()

	var els ast.Expr
	if p.accept(token.ELSE) {
		if p.match(token.IF) {
			els = p.condExpr()
		} else {
			els = p.branch()
		}
	} else {
		p.errorAt(diag.ExpectedToken, p.peek(), "expected `else`: an `if` used as a value needs both branches")
		els = p.badExpr()
	}
	span := token.Join(token.Join(ifTok.Span, p.previous().Span), els.Span())
	return ast.NewCond(span, cond, then, els)
}

func (p *Parser) branch() ast.Expr {
	if !p.match(token.LEFTBRACE) {
		p.expected("`{`")
		return p.badExpr()
	}
	lbrace := p.advance()
	old := p.enter()
	x := p.expr()
	p.leave(old)
	if !p.match(token.RIGHTBRACE) {
		p.errorAt(diag.UnexpectedToken, p.peek(), "expected `}` after the branch value, found %s", p.peek().Describe()).
			Help = "each branch of an `if` used as a value holds a single expression"
	}
	p.closing(lbrace)
	return x
}

// matchExpr = "match" expr "{" armExpr+ "}" ;
// armExpr   = ( "case" patterns | "else" ) ":" expr ;
func (p *Parser) matchExpr() ast.Expr {
	matchTok := p.advance()
	subject := p.condition(matchTok, "a value to match")
	if !p.match(token.LEFTBRACE) {
		p.expected("`{`")
		return ast.NewMatchExpr(token.Join(matchTok.Span, subject.Span()), subject, nil)
	}
	lbrace := p.advance()

	old := p.enter()
	p.scopes++
	arms := []*ast.ArmExpr{}
	var catchAll token.Span
	for !p.match(token.RIGHTBRACE) && !p.IsAtEnd() {
		if p.accept(token.COMMA) || p.accept(token.SEMICOLON) {
			continue
		}
		start := p.peek()
		patterns, ok := p.armHead()
		if !ok {
			p.skipArm()
			continue
		}
		value := p.expr()
		span := token.Join(start.Span, ast.Cover(list(patterns)...))
		arm := ast.NewArmExpr(token.Join(span, value.Span()), patterns, value)
		catchAll = p.checkArm(catchAll, start, arm.Span())
		arms = append(arms, arm)
		if p.panicMode {
			p.skipArm()
		}
	}
	p.scopes--
	p.leave(old)

	rbrace := p.closing(lbrace)
	span := token.Join(matchTok.Span, rbrace.Span)
	if len(arms) == 0 {
		p.sink.Report(diag.ExpectedToken, span, "`match` needs at least one arm")
	}
	return ast.NewMatchExpr(span, subject, arms)
}

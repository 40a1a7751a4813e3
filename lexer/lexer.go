// Package lexer turns Lumen source text into tokens.
package lexer

import (
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

const (
	MaxIdentLength  = 100
	MaxNumberLength = 100
)

// Lex scans source and returns its tokens, always terminated by an EOF token.
// Lexical errors are reported to sink and never stop the scan.
func Lex(file, source string, sink *diag.Sink) []token.Token {
	l := lexer{
		file:   file,
		source: source,
		tokens: []token.Token{},
		sink:   sink,
		line:   1,
		col:    1,
	}

	for !l.isAtEnd() {
		l.scanToken()
	}

	l.begin()
	l.tokens = append(l.tokens, token.Token{
		Kind:          token.EOF,
		Lexeme:        "",
		Span:          l.pointSpan(),
		NewlineBefore: l.newline,
	})

	return l.tokens
}

type lexer struct {
	file   string
	source string
	tokens []token.Token
	sink   *diag.Sink

	start     int // start of current lexeme
	startLine int
	startCol  int
	current   int // current position in source
	line      int // line of source[current]
	col       int // column of source[current]
	lastLine  int // line of the last consumed byte
	lastCol   int // column of the last consumed byte

	newline bool // a newline was seen since the last token
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	l.lastLine, l.lastCol = l.line, l.col
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) begin() {
	l.start = l.current
	l.startLine, l.startCol = l.line, l.col
}

// span covers the current lexeme.
func (l lexer) span() token.Span {
	if l.current == l.start {
		return l.pointSpan()
	}
	return token.Span{
		File:      l.file,
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.lastLine,
		EndCol:    l.lastCol,
		Offset:    l.start,
		EndOffset: l.current,
	}
}

// pointSpan is an empty span at the start of the current lexeme.
func (l lexer) pointSpan() token.Span {
	return token.Span{
		File:      l.file,
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.startLine,
		EndCol:    l.startCol,
		Offset:    l.start,
		EndOffset: l.start,
	}
}

// charSpan covers the single byte at offset off, which must be on the current line.
func (l lexer) charSpan(off int) token.Span {
	col := l.startCol + (off - l.start)
	return token.Span{
		File:      l.file,
		StartLine: l.startLine,
		StartCol:  col,
		EndLine:   l.startLine,
		EndCol:    col,
		Offset:    off,
		EndOffset: off + 1,
	}
}

func (l *lexer) addToken(kind token.Kind) {
	l.tokens = append(l.tokens, token.Token{
		Kind:          kind,
		Lexeme:        l.source[l.start:l.current],
		Span:          l.span(),
		NewlineBefore: l.newline,
	})
	l.newline = false
}

func (l *lexer) report(kind diag.Kind, span token.Span, format string, args ...any) *diag.Diagnostic {
	return l.sink.Report(kind, span, format, args...)
}

func (l *lexer) scanToken() {
	l.begin()
	c := l.advance()
	switch c {
	case ' ', '\r':
		// ignore whitespace
	case '\n':
		l.newline = true
	case '\t':
		l.report(diag.InvalidCharacter, l.span(), "tab character is not allowed").Help = "indent with spaces"
	case '"':
		l.string()
	case '\'':
		l.char()
	case '$':
		l.generic()
	case '(':
		l.addToken(token.LEFTPAREN)
	case ')':
		l.addToken(token.RIGHTPAREN)
	case '{':
		l.addToken(token.LEFTBRACE)
	case '}':
		l.addToken(token.RIGHTBRACE)
	case '[':
		l.addToken(token.LEFTBRACKET)
	case ']':
		l.addToken(token.RIGHTBRACKET)
	case ',':
		l.addToken(token.COMMA)
	case ';':
		l.addToken(token.SEMICOLON)
	case '~':
		l.addToken(token.TILDE)
	case '.':
		switch {
		case l.peek() == '.':
			l.advance()
			l.addToken(token.DOTDOT)
		case isDigit(l.peek()):
			l.number()
		default:
			l.addToken(token.DOT)
		}
	case ':':
		switch l.peek() {
		case ':':
			l.advance()
			l.addToken(token.COLONCOLON)
		case '=':
			l.advance()
			l.addToken(token.DEFINE)
		default:
			l.addToken(token.COLON)
		}
	case '/':
		switch l.peek() {
		case '/':
			l.lineComment()
		case '*':
			l.blockComment()
		default:
			l.operator(token.SLASH, token.SLASHASSIGN)
		}
	case '+':
		l.operator(token.PLUS, token.PLUSASSIGN)
	case '-':
		l.operator(token.MINUS, token.MINUSASSIGN)
	case '*':
		l.operator(token.STAR, token.STARASSIGN)
	case '%':
		l.operator(token.PERCENT, token.PERCENTASSIGN)
	case '^':
		l.operator(token.CARET, token.CARETASSIGN)
	case '=':
		l.operator(token.ASSIGN, token.EQ)
	case '!':
		l.operator(token.BANG, token.NEQ)
	case '&':
		if l.peek() == '&' {
			l.advance()
			l.addToken(token.ANDAND)
			return
		}
		l.operator(token.AMP, token.AMPASSIGN)
	case '|':
		if l.peek() == '|' {
			l.advance()
			l.addToken(token.OROR)
			return
		}
		l.operator(token.PIPE, token.PIPEASSIGN)
	case '<':
		if l.peek() == '<' {
			l.advance()
			l.operator(token.SHL, token.SHLASSIGN)
			return
		}
		l.operator(token.LT, token.LE)
	case '>':
		if l.peek() == '>' {
			l.advance()
			l.operator(token.SHR, token.SHRASSIGN)
			return
		}
		l.operator(token.GT, token.GE)
	default:
		switch {
		case isDigit(c):
			l.number()
		case isAlpha(c):
			l.identifier()
		default:
			l.invalid()
		}
	}
}

// operator emits withEq when the next byte is `=`, plain otherwise.
func (l *lexer) operator(plain, withEq token.Kind) {
	if l.peek() == '=' {
		l.advance()
		l.addToken(withEq)
		return
	}
	l.addToken(plain)
}

// invalid consumes a run of bytes outside printable ASCII (or a single stray
// printable byte such as `@`) and emits one ILLEGAL token for it.
func (l *lexer) invalid() {
	first := l.source[l.start]
	if !isPrintable(first) {
		for !l.isAtEnd() && !isPrintable(l.peek()) && !isSpace(l.peek()) {
			l.advance()
		}
		l.report(diag.InvalidCharacter, l.span(), "invalid character 0x%02X: source must be ASCII", first)
	} else {
		l.report(diag.InvalidCharacter, l.span(), "unexpected character `%c`", first)
	}
	l.addToken(token.ILLEGAL)
}

func (l *lexer) lineComment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		if !l.commentByte() {
			continue
		}
		l.advance()
	}
}

func (l *lexer) blockComment() {
	l.advance() // '*'
	open := l.span()
	depth := 1
	for !l.isAtEnd() {
		switch {
		case l.peek() == '/' && l.peekNext() == '*':
			l.advance()
			l.advance()
			depth++
		case l.peek() == '*' && l.peekNext() == '/':
			l.advance()
			l.advance()
			depth--
			if depth == 0 {
				return
			}
		case l.peek() == '\n':
			l.advance()
			l.newline = true
		case !l.commentByte():
		default:
			l.advance()
		}
	}
	l.report(diag.UnterminatedComment, open, "unterminated block comment").Help = "add a matching `*/` for every `/*`"
}

// commentByte validates the byte at the cursor inside a comment. It reports and
// skips a run of invalid bytes, returning false in that case.
func (l *lexer) commentByte() bool {
	c := l.peek()
	if isPrintable(c) || c == '\r' || c == '\n' {
		return true
	}
	start, line, col := l.current, l.line, l.col
	if c == '\t' {
		l.advance()
		l.sink.Report(diag.InvalidCharacter, token.Span{
			File: l.file, StartLine: line, StartCol: col, EndLine: line, EndCol: col,
			Offset: start, EndOffset: start + 1,
		}, "tab character is not allowed").Help = "indent with spaces"
		return false
	}
	for !l.isAtEnd() && !isPrintable(l.peek()) && !isSpace(l.peek()) {
		l.advance()
	}
	l.sink.Report(diag.InvalidCharacter, token.Span{
		File: l.file, StartLine: line, StartCol: col, EndLine: l.lastLine, EndCol: l.lastCol,
		Offset: start, EndOffset: l.current,
	}, "invalid character 0x%02X: source must be ASCII", c)
	return false
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	if n := l.current - l.start; n > MaxIdentLength {
		l.report(diag.IdentifierTooLong, l.span(),
			"identifier is %d characters long, the limit is %d", n, MaxIdentLength)
	}

	l.addToken(token.Lookup(l.source[l.start:l.current]))
}

func (l *lexer) generic() {
	if !isLetter(l.peek()) {
		if isAlpha(l.peek()) || isDigit(l.peek()) {
			bad := l.current
			l.skipWord()
			l.report(diag.InvalidGenericParam, l.charSpan(bad),
				"generic parameter must start with a letter, found `%c`", l.source[bad]).Help = "write a name such as `$T`"
		} else {
			l.report(diag.InvalidGenericParam, l.span(), "`$` must be followed by a generic parameter name").Help = "write a name such as `$T`"
		}
		l.addToken(token.ILLEGAL)
		return
	}

	for isAlpha(l.peek()) {
		l.advance()
	}
	if isDigit(l.peek()) {
		bad := l.current
		l.skipWord()
		l.report(diag.InvalidGenericParam, l.charSpan(bad),
			"generic parameter names may only contain letters and underscores").Help = "remove the digits from the name"
		l.addToken(token.ILLEGAL)
		return
	}

	if n := l.current - l.start - 1; n > MaxIdentLength {
		l.report(diag.IdentifierTooLong, l.span(),
			"generic parameter name is %d characters long, the limit is %d", n, MaxIdentLength)
	}
	l.addToken(token.GENERIC)
}

func (l *lexer) skipWord() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlpha(c byte) bool {
	return isLetter(c) || c == '_'
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

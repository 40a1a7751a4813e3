package lexer

import (
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

var radixNames = map[int]string{2: "binary", 8: "octal", 10: "decimal", 16: "hexadecimal"}

// number scans an integer or float literal. The first byte (a digit or a `.`)
// has already been consumed.
func (l *lexer) number() {
	kind := token.INT
	first := l.source[l.start]

	switch {
	case first == '.':
		kind = token.FLOAT
		l.digits(10)
		l.exponent()
	case first == '0' && isRadixPrefix(l.peek()):
		radix := radixOf(l.advance())
		if l.digits(radix) == 0 {
			l.report(diag.InvalidNumber, l.span(), "%s literal has no digits", radixNames[radix])
		}
	default:
		l.digits(10)
		if l.peek() == '.' && l.peekNext() != '.' && (!isAlpha(l.peekNext()) || l.exponentAt(l.current+1)) {
			l.advance()
			kind = token.FLOAT
			l.digits(10)
		}
		if l.exponent() {
			kind = token.FLOAT
		}
	}

	if isAlpha(l.peek()) || isDigit(l.peek()) {
		bad := l.current
		l.skipWord()
		l.report(diag.InvalidNumber, l.charSpan(bad), "invalid character `%c` in number literal", l.source[bad])
	}

	text := l.source[l.start:l.current]
	if text[len(text)-1] == '_' {
		l.report(diag.InvalidNumber, l.charSpan(l.current-1), "number literal cannot end with `_`")
	}
	if len(text) > MaxNumberLength {
		l.report(diag.NumberTooLong, l.span(),
			"number literal is %d characters long, the limit is %d", len(text), MaxNumberLength)
	}

	l.addToken(kind)
}

// digits consumes digits of any radix up to 16 plus `_` separators, reporting
// each digit the radix does not allow and doubled separators. It returns the
// number of digits seen.
func (l *lexer) digits(radix int) int {
	n := 0
	reported, doubled := false, false
	for {
		c := l.peek()
		if c == '_' {
			if l.source[l.current-1] == '_' && !doubled {
				l.report(diag.InvalidNumber, l.charSpan(l.current), "consecutive `_` in number literal")
				doubled = true
			}
			l.advance()
			continue
		}
		v, ok := digitValue(c)
		if !ok || (radix != 16 && v >= 10) {
			return n
		}
		if v >= radix && !reported {
			l.report(diag.InvalidNumber, l.charSpan(l.current),
				"invalid digit `%c` in %s literal", c, radixNames[radix])
			reported = true
		}
		l.advance()
		n++
	}
}

// exponent consumes an `e` exponent if one follows.
func (l *lexer) exponent() bool {
	if !l.exponentAt(l.current) {
		return false
	}
	l.advance()
	if c := l.peek(); c == '+' || c == '-' {
		l.advance()
	}
	l.digits(10)
	return true
}

// exponentAt reports whether source[i:] starts with `e`, an optional sign and
// a digit.
func (l *lexer) exponentAt(i int) bool {
	if i >= len(l.source) || (l.source[i] != 'e' && l.source[i] != 'E') {
		return false
	}
	i++
	if i < len(l.source) && (l.source[i] == '+' || l.source[i] == '-') {
		i++
	}
	return i < len(l.source) && isDigit(l.source[i])
}

func isRadixPrefix(c byte) bool {
	switch c {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func radixOf(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	default:
		return 2
	}
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// string scans a string literal after its opening quote. An unterminated
// literal still yields a STRING token over the consumed text.
func (l *lexer) string() {
	for !l.isAtEnd() && l.peek() != '"' && l.peek() != '\n' {
		l.literalByte()
	}

	if l.isAtEnd() || l.peek() == '\n' {
		l.report(diag.UnterminatedString, l.span(), "unterminated string literal").Help = "add a closing `\"`"
		l.addToken(token.STRING)
		return
	}

	l.advance()
	l.addToken(token.STRING)
}

// char scans a character literal after its opening quote.
func (l *lexer) char() {
	n := 0
	for !l.isAtEnd() && l.peek() != '\'' && l.peek() != '\n' {
		l.literalByte()
		n++
	}

	if l.isAtEnd() || l.peek() == '\n' {
		l.report(diag.UnterminatedChar, l.span(), "unterminated character literal").Help = "add a closing `'`"
		l.addToken(token.CHAR)
		return
	}

	l.advance()
	switch {
	case n == 0:
		l.report(diag.InvalidCharLiteral, l.span(), "empty character literal")
	case n > 1:
		l.report(diag.InvalidCharLiteral, l.span(), "character literal may only contain one character").Help = "use a string literal for more than one character"
	}
	l.addToken(token.CHAR)
}

// literalByte consumes one character of a string or char literal body,
// including a complete escape sequence.
func (l *lexer) literalByte() {
	c := l.peek()
	switch {
	case c == '\\':
		l.escape()
	case c == '\t':
		off, col := l.current, l.col
		l.advance()
		l.sink.Report(diag.InvalidCharacter, token.Span{
			File: l.file, StartLine: l.line, StartCol: col, EndLine: l.line, EndCol: col,
			Offset: off, EndOffset: off + 1,
		}, "tab character is not allowed").Help = "use the `\\t` escape"
	case !isPrintable(c):
		off, col := l.current, l.col
		l.advance()
		l.sink.Report(diag.InvalidCharacter, token.Span{
			File: l.file, StartLine: l.line, StartCol: col, EndLine: l.line, EndCol: col,
			Offset: off, EndOffset: off + 1,
		}, "invalid character 0x%02X: source must be ASCII", c).Help = "use a `\\xHH` escape"
	default:
		l.advance()
	}
}

// escape consumes a backslash escape and validates it.
func (l *lexer) escape() {
	off, col := l.current, l.col
	l.advance() // '\\'
	escSpan := func() token.Span {
		return token.Span{
			File: l.file, StartLine: l.line, StartCol: col, EndLine: l.lastLine, EndCol: l.lastCol,
			Offset: off, EndOffset: l.current,
		}
	}

	c := l.peek()
	switch c {
	case 'n', 'r', 't', 'b', 'f', 'v', 'a', '\\', '\'', '"', '0':
		l.advance()
	case 'x':
		l.advance()
		value := 0
		for i := 0; i < 2; i++ {
			v, ok := digitValue(l.peek())
			if !ok {
				l.sink.Report(diag.InvalidEscape, escSpan(), "`\\x` escape needs two hexadecimal digits").Help = "write the byte as `\\xHH`"
				return
			}
			l.advance()
			value = value*16 + v
		}
		if value > 0x7F {
			l.sink.Report(diag.InvalidEscape, escSpan(), "escape `%s` is outside the ASCII range", l.source[off:l.current]).Help = "the largest allowed escape is `\\x7F`"
		}
	case 0, '\n':
		l.sink.Report(diag.InvalidEscape, escSpan(), "incomplete escape sequence")
	default:
		if isPrintable(c) {
			l.advance()
		}
		l.sink.Report(diag.InvalidEscape, escSpan(), "unknown escape sequence `%s`", l.source[off:l.current]).Help = "valid escapes are \\n \\r \\t \\b \\f \\v \\a \\\\ \\' \\\" \\0 and \\xHH"
	}
}

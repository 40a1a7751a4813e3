package parser

import (
	"github.com/takoeight0821/lumen/token"
)

// lookaround bounds how far the disambiguation scans travel from the cursor.
const lookaround = 32

// isStructLiteralStart decides whether the identifier at tokens[i], followed by
// `{`, begins a struct literal rather than an expression followed by a block.
// It scans backward along the current line: an assignment, a declaration
// operator or `ret` means a value is expected, so the braces hold fields. A
// statement boundary reached first means the braces open a block.
func isStructLiteralStart(tokens []token.Token, i int) bool {
	if i <= 0 || i >= len(tokens) || tokens[i].NewlineBefore {
		return false
	}
	for j := i - 1; j >= 0 && i-j <= lookaround; j-- {
		t := tokens[j]
		switch {
		case t.Kind.IsAssign(), t.Kind == token.DEFINE, t.Kind == token.COLONCOLON, t.Kind == token.RET:
			return true
		case t.Kind == token.SEMICOLON, t.Kind == token.LEFTBRACE, t.Kind == token.RIGHTBRACE:
			return false
		}
		if t.NewlineBefore {
			return false
		}
	}
	return false
}

// isGenericArgList reports whether the `(` at tokens[i] opens a list of type
// arguments, as in `Pair(int, string){...}`. Every token up to the matching `)`
// must be able to appear in a type. It returns the index of that `)`.
func isGenericArgList(tokens []token.Token, i int) (int, bool) {
	if i >= len(tokens) || tokens[i].Kind != token.LEFTPAREN {
		return 0, false
	}
	depth, brackets := 0, 0
	for j := i; j < len(tokens) && j-i <= lookaround; j++ {
		t := tokens[j]
		switch {
		case t.Kind == token.LEFTPAREN:
			depth++
		case t.Kind == token.RIGHTPAREN:
			depth--
			if depth == 0 {
				return j, j > i+1
			}
		case t.Kind == token.LEFTBRACKET:
			brackets++
		case t.Kind == token.RIGHTBRACKET:
			if brackets == 0 {
				return 0, false
			}
			brackets--
		case t.Kind == token.INT:
			// Only array lengths are numeric.
			if brackets == 0 {
				return 0, false
			}
		case t.Kind.IsPrimitive():
		case t.Kind == token.IDENT, t.Kind == token.GENERIC, t.Kind == token.COMMA, t.Kind == token.DOT,
			t.Kind == token.REF, t.Kind == token.FN:
		default:
			return 0, false
		}
	}
	return 0, false
}

package token_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/lumen/token"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := map[string]token.Kind{
		"fn":      token.FN,
		"typeset": token.TYPESET,
		"rawptr":  token.RAWPTR,
		"string":  token.STRINGTYPE,
		"Point":   token.IDENT,
		"_":       token.IDENT,
	}
	for word, want := range tests {
		if got := token.Lookup(word); got != want {
			t.Errorf("Lookup(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestKindClasses(t *testing.T) {
	t.Parallel()
	if !token.RET.IsKeyword() || !token.I32.IsKeyword() || token.IDENT.IsKeyword() {
		t.Errorf("IsKeyword misclassifies")
	}
	if !token.F64.IsPrimitive() || token.FN.IsPrimitive() {
		t.Errorf("IsPrimitive misclassifies")
	}
	if !token.ASSIGN.IsAssign() || !token.SHRASSIGN.IsAssign() || token.EQ.IsAssign() {
		t.Errorf("IsAssign misclassifies")
	}
	if op, ok := token.SHLASSIGN.CompoundOp(); !ok || op != token.SHL {
		t.Errorf("CompoundOp(<<=) = %v, %v", op, ok)
	}
	if _, ok := token.ASSIGN.CompoundOp(); ok {
		t.Errorf("`=` is not a compound assignment")
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()
	a := token.Span{File: "a.lm", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 3, Offset: 0, EndOffset: 3}
	b := token.Span{File: "a.lm", StartLine: 2, StartCol: 2, EndLine: 2, EndCol: 4, Offset: 6, EndOffset: 9}
	want := token.Span{File: "a.lm", StartLine: 1, StartCol: 1, EndLine: 2, EndCol: 4, Offset: 0, EndOffset: 9}

	if diff := cmp.Diff(want, token.Join(a, b)); diff != "" {
		t.Errorf("Join(a, b) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, token.Join(b, a)); diff != "" {
		t.Errorf("Join(b, a) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a, token.Join(token.Span{}, a)); diff != "" {
		t.Errorf("Join ignores an invalid span (-want +got):\n%s", diff)
	}
	if !want.Contains(a) || !want.Contains(b) || a.Contains(b) {
		t.Errorf("Contains misreports")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.EOF}, "end of file"},
		{token.Token{Kind: token.IDENT, Lexeme: "x"}, "identifier `x`"},
		{token.Token{Kind: token.INT, Lexeme: "42"}, "literal 42"},
		{token.Token{Kind: token.RIGHTBRACE, Lexeme: "}"}, "`}`"},
	}
	for _, tt := range tests {
		if got := tt.tok.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}

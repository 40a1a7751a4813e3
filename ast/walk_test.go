package ast_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/token"
)

func tok(kind token.Kind, lexeme string, offset int) token.Token {
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Span: token.Span{
			File: "a.lm", StartLine: 1, StartCol: offset + 1, EndLine: 1, EndCol: offset + len(lexeme),
			Offset: offset, EndOffset: offset + len(lexeme),
		},
	}
}

// sum builds `a + b` at offsets 0..5.
func sum() *ast.BinaryExpr {
	return ast.NewBinary(token.PLUS,
		ast.NewIdent(tok(token.IDENT, "a", 0)),
		ast.NewIdent(tok(token.IDENT, "b", 4)))
}

func TestInspectAndCount(t *testing.T) {
	t.Parallel()
	stmt := ast.NewExprStmt(sum())

	var seen []string
	ast.Inspect(stmt, func(n ast.Node) bool {
		seen = append(seen, n.String())
		return true
	})
	want := []string{"(expr (binary + a b))", "(binary + a b)", "a", "b"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("Inspect order mismatch (-want +got):\n%s", diff)
	}

	if got := ast.Count(stmt); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}

	skipped := 0
	ast.Inspect(stmt, func(n ast.Node) bool {
		skipped++
		_, isBinary := n.(*ast.BinaryExpr)
		return !isBinary
	})
	if skipped != 2 {
		t.Errorf("Inspect visited %d nodes, want 2 when pruning the binary", skipped)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()
	if err := ast.Verify(ast.NewExprStmt(sum())); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}

	// The paren claims only `(a` but holds an identifier further right.
	lparen := tok(token.LEFTPAREN, "(", 0)
	rparen := tok(token.RIGHTPAREN, ")", 1)
	broken := ast.NewParen(lparen, ast.NewIdent(tok(token.IDENT, "zz", 5)), rparen)

	err := ast.Verify(broken)
	var spanErr ast.SpanError
	if !errors.As(err, &spanErr) {
		t.Fatalf("Verify() = %v, want a SpanError", err)
	}
	if spanErr.Reason != "child outside parent" {
		t.Errorf("Reason = %q", spanErr.Reason)
	}
}

func TestOptionalRendering(t *testing.T) {
	t.Parallel()
	name := ast.NewIdent(tok(token.IDENT, "x", 0))
	v := ast.NewVarDecl(name, ast.NewPrimitiveType(tok(token.I32, "i32", 3)), nil)
	if got := v.String(); got != "(var x i32 _)" {
		t.Errorf("String() = %q", got)
	}
	if !v.ZeroInit() {
		t.Errorf("ZeroInit() = false for a declaration without a value")
	}
	if got := len(v.Children()); got != 2 {
		t.Errorf("Children() has %d nodes, want 2", got)
	}
}

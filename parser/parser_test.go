package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/driver"
	"github.com/takoeight0821/lumen/lexer"
	"github.com/takoeight0821/lumen/parser"
	"github.com/takoeight0821/lumen/utils"
)

func TestParseFromTestData(t *testing.T) {
	t.Parallel()
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)
	for _, testcase := range testcases {
		if expected, ok := testcase.Expected["parser"]; ok {
			completeParse(t, testcase.Label, testcase.Input, expected)
		} else {
			completeParse(t, testcase.Label, testcase.Input, "no expected value")
		}
	}
}

func BenchmarkFromTestData(b *testing.B) {
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)

	for _, testcase := range testcases {
		b.Run(testcase.Label, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				completeParse(b, testcase.Label, testcase.Input, testcase.Expected["parser"])
			}
		})
	}
}

type reporter interface {
	Errorf(format string, args ...interface{})
}

func completeParse(test reporter, label, input, expected string) {
	unit, err := driver.ParseLine(input)
	if err != nil {
		test.Errorf("Parse %s returned error: %v", label, err)
		return
	}

	if _, ok := test.(*testing.B); ok {
		// do nothing for benchmark
		return
	}

	var nodes []ast.Node
	if unit.Stmts != nil {
		for _, stmt := range unit.Stmts {
			nodes = append(nodes, stmt)
		}
	} else {
		for _, decl := range unit.File.Decls {
			nodes = append(nodes, decl)
		}
	}

	var b strings.Builder
	for _, node := range nodes {
		if err := ast.Verify(node); err != nil {
			test.Errorf("Parse %s has broken spans: %v", label, err)
		}
		b.WriteString(node.String())
		b.WriteString("\n")
	}
	actual := b.String()

	if diff := cmp.Diff(expected, actual); diff != "" {
		test.Errorf("Parse %s mismatch (-want +got):\n%s", label, diff)
	}
}

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Errorf("failed to find test files: %v", err)
		return
	}

	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		sink := diag.NewSink()
		file := parser.Parse(testfile, string(source), sink)
		if err := sink.Err(); err != nil {
			t.Errorf("%s returned error: %v", testfile, err)
			return
		}
		if err := ast.Verify(file); err != nil {
			t.Errorf("%s has broken spans: %v", testfile, err)
		}

		g := goldie.New(t)
		g.Assert(t, filepath.Base(testfile), []byte(file.String()+"\n"))
	}
}

func parseFile(t *testing.T, source string) (*ast.File, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	file := parser.Parse("test.lm", source, sink)
	if err := ast.Verify(file); err != nil {
		t.Errorf("Parse(%q) has broken spans: %v", source, err)
	}
	return file, sink
}

func parseStmts(t *testing.T, source string) ([]string, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	stmts := parser.NewParser("test.lm", lexer.Lex("test.lm", source, sink), sink).ParseStmts()
	out := []string{}
	for _, stmt := range stmts {
		if err := ast.Verify(stmt); err != nil {
			t.Errorf("ParseStmts(%q) has broken spans: %v", source, err)
		}
		out = append(out, stmt.String())
	}
	return out, sink
}

func TestRecovery(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		source string
		kinds  []diag.Kind
		decls  []string
	}{
		{
			name:   "missing initializer",
			source: "x := }\ny := 2",
			kinds:  []diag.Kind{diag.IncompleteExpression},
			decls:  []string{"(var x _ (bad))", "(bad)", "(var y _ 2)"},
		},
		{
			name:   "mismatched bracket",
			source: "x := f(1]",
			kinds:  []diag.Kind{diag.MismatchedBracket},
			decls:  []string{"(var x _ (call f 1))"},
		},
		{
			name:   "unclosed body",
			source: "fn f() {",
			kinds:  []diag.Kind{diag.ExpectedToken},
			decls:  []string{"(fn f () () _ (block))"},
		},
		{
			name:   "statement at top level",
			source: "foo()",
			kinds:  []diag.Kind{diag.UnexpectedToken},
			decls:  []string{"(bad)"},
		},
		{
			name:   "one error per statement",
			source: "fn f() {\n  x := 1 + * 2 )\n  y := 3\n}",
			kinds:  []diag.Kind{diag.UnexpectedToken},
			decls:  []string{"(fn f () () _ (block (var x _ (binary + 1 (bad))) (bad) (var y _ 3)))"},
		},
		{
			name:   "duplicate field",
			source: "struct P { x: i32, x: i32 }",
			kinds:  []diag.Kind{diag.DuplicateName},
			decls:  []string{"(struct P () (x i32) (x i32))"},
		},
		{
			name:   "duplicate parameter",
			source: "fn f(a: int, a: int) {}",
			kinds:  []diag.Kind{diag.DuplicateName},
			decls:  []string{"(fn f () ((a int) (a int)) _ (block))"},
		},
		{
			name:   "invalid version",
			source: `import "math@not-a-version"`,
			kinds:  []diag.Kind{diag.InvalidVersion},
			decls:  []string{`(import "math@not-a-version")`},
		},
		{
			name:   "missing version",
			source: `import "math@"`,
			kinds:  []diag.Kind{diag.InvalidVersion},
			decls:  []string{`(import "math@")`},
		},
		{
			name:   "version range",
			source: `import "math@>= 1.0, < 2.0"`,
			kinds:  []diag.Kind{},
			decls:  []string{`(import "math@>= 1.0, < 2.0")`},
		},
		{
			name:   "type used as value",
			source: "x := i32",
			kinds:  []diag.Kind{diag.UnexpectedToken},
			decls:  []string{"(var x _ (bad))", "(bad)"},
		},
		{
			name:   "if value without else",
			source: "x := if c { 1 }",
			kinds:  []diag.Kind{diag.ExpectedToken},
			decls:  []string{"(var x _ (cond c 1 (bad)))"},
		},
		{
			name:   "empty type set",
			source: "typeset Empty {}",
			kinds:  []diag.Kind{diag.UnexpectedToken},
			decls:  []string{"(typeset Empty)"},
		},
	}

	for _, tt := range tests {
		file, sink := parseFile(t, tt.source)
		if diff := cmp.Diff(tt.kinds, sink.Kinds()); diff != "" {
			t.Errorf("%s: diagnostics mismatch (-want +got):\n%s", tt.name, diff)
		}
		decls := []string{}
		for _, decl := range file.Decls {
			decls = append(decls, decl.String())
		}
		if diff := cmp.Diff(tt.decls, decls); diff != "" {
			t.Errorf("%s: declarations mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestSpansOnMalformedInput(t *testing.T) {
	t.Parallel()
	sources := []string{
		"struct 1",
		"union 1",
		"typeset 1",
		"struct P($T",
		"enum 1",
		"type = i32",
		"fn f() {\n match x {\n case\n }\n}",
		"fn f() {\n match x {\n case 1, : a()\n }\n}",
		"y := match x {\n case\n }",
	}

	for _, source := range sources {
		// parseFile checks the spans with ast.Verify.
		_, sink := parseFile(t, source)
		if !sink.HasErrors() {
			t.Errorf("Parse(%q) reported no errors", source)
		}
	}
}

func TestUnreachableArm(t *testing.T) {
	t.Parallel()
	_, sink := parseFile(t, "fn f() {\n  match x {\n  else: a()\n  case 1: b()\n  }\n}")
	if diff := cmp.Diff([]diag.Kind{diag.UnreachableArm}, sink.Kinds()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if sink.HasErrors() {
		t.Errorf("an unreachable arm is a warning, got errors: %v", sink.Err())
	}
}

func TestIncompleteExpressionPointsAtOperator(t *testing.T) {
	t.Parallel()
	_, sink := parseFile(t, "x := 1 +\ny := 2")
	diags := sink.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("want one diagnostic, got %v", diags)
	}
	d := diags[0]
	if d.Kind != diag.IncompleteExpression {
		t.Errorf("want %v, got %v", diag.IncompleteExpression, d.Kind)
	}
	if len(d.Secondary) != 1 || d.Secondary[0].Span.StartCol != 8 {
		t.Errorf("want a secondary label on `+`, got %v", d.Secondary)
	}
}

func TestNewlines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		source string
		stmts  []string
	}{
		{"a\n(b)", []string{"(expr a)", "(expr (paren b))"}},
		{"a\n[1]", []string{"(expr a)", "(expr (array-lit 1))"}},
		{"ret\nx", []string{"(ret)", "(expr x)"}},
		{"f(a,\n  b)", []string{"(expr (call f a b))"}},
		{"x := [\n  1,\n  2,\n]", []string{"(var x _ (array-lit 1 2))"}},
		{"break\nouter", []string{"(break)", "(expr outer)"}},
	}

	for _, tt := range tests {
		stmts, sink := parseStmts(t, tt.source)
		if err := sink.Err(); err != nil {
			t.Errorf("ParseStmts(%q) returned error: %v", tt.source, err)
			continue
		}
		if diff := cmp.Diff(tt.stmts, stmts); diff != "" {
			t.Errorf("ParseStmts(%q) mismatch (-want +got):\n%s", tt.source, diff)
		}
	}
}

func TestStructLiteralOrBlock(t *testing.T) {
	t.Parallel()
	tests := []struct {
		source string
		stmts  []string
	}{
		{"v = P{a: 1}", []string{"(assign = v (struct-lit P (a 1)))"}},
		{"if x { y }", []string{"(if x (block (expr y)))"}},
		{"if (P{a: 1}) == q { }", []string{"(if (binary == (paren (struct-lit P (a 1))) q) (block))"}},
		{"while ok { }", []string{"(while ok (block))"}},
		{"f(P{a: 1})", []string{"(expr (call f (struct-lit P (a 1))))"}},
		{"for ready { }", []string{"(for _ ready _ (block))"}},
		{"for { }", []string{"(for _ _ _ (block))"}},
	}

	for _, tt := range tests {
		stmts, sink := parseStmts(t, tt.source)
		if err := sink.Err(); err != nil {
			t.Errorf("ParseStmts(%q) returned error: %v", tt.source, err)
			continue
		}
		if diff := cmp.Diff(tt.stmts, stmts); diff != "" {
			t.Errorf("ParseStmts(%q) mismatch (-want +got):\n%s", tt.source, diff)
		}
	}
}

func TestParseExpr(t *testing.T) {
	t.Parallel()
	tests := []struct {
		source string
		want   string
		kinds  []diag.Kind
	}{
		{"a - b - c", "(binary - (binary - a b) c)", []diag.Kind{}},
		{"a == b & c", "(binary & (binary == a b) c)", []diag.Kind{}},
		{"a | b ^ c & d", "(binary | a (binary ^ b (binary & c d)))", []diag.Kind{}},
		{"~x % 2", "(binary % (unary ~ x) 2)", []diag.Kind{}},
		{"a b", "a", []diag.Kind{diag.UnexpectedToken}},
		{"$T", "(bad)", []diag.Kind{diag.UnexpectedToken}},
	}

	for _, tt := range tests {
		sink := diag.NewSink()
		expr := parser.NewParser("test.lm", lexer.Lex("test.lm", tt.source, sink), sink).ParseExpr()
		if diff := cmp.Diff(tt.want, expr.String()); diff != "" {
			t.Errorf("ParseExpr(%q) mismatch (-want +got):\n%s", tt.source, diff)
		}
		if diff := cmp.Diff(tt.kinds, sink.Kinds()); diff != "" {
			t.Errorf("ParseExpr(%q) diagnostics mismatch (-want +got):\n%s", tt.source, diff)
		}
	}
}

package lexer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/lexer"
	"github.com/takoeight0821/lumen/token"
	"github.com/takoeight0821/lumen/utils"
)

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
		tokens := lexer.Lex(testfile, string(source), sink)
		if err := sink.Err(); err != nil {
			t.Errorf("%s returned error: %v", testfile, err)
			return
		}

		var builder strings.Builder
		for _, tok := range tokens {
			builder.WriteString(tok.String())
			builder.WriteString("\n")
		}

		g := goldie.New(t)
		g.Assert(t, filepath.Base(testfile), []byte(builder.String()))
	}
}

// at is the position of a diagnostic, enough to check where it points.
type at struct {
	Kind diag.Kind
	Line int
	Col  int
}

type lexCase struct {
	input string
	kinds []token.Kind
	diags []at
}

func lex(input string) ([]token.Token, []at) {
	sink := diag.NewSink()
	tokens := lexer.Lex("test.lm", input, sink)
	diags := []at{}
	for _, d := range sink.Diagnostics() {
		diags = append(diags, at{d.Kind, d.Span.StartLine, d.Span.StartCol})
	}
	return tokens, diags
}

func runLexCases(t *testing.T, cases []lexCase) {
	t.Helper()
	for _, c := range cases {
		tokens, diags := lex(c.input)
		kinds := make([]token.Kind, len(tokens))
		for i, tok := range tokens {
			kinds[i] = tok.Kind
		}
		if diff := cmp.Diff(c.kinds, kinds); diff != "" {
			t.Errorf("Lex(%q) kinds mismatch (-want +got):\n%s", c.input, diff)
		}
		want := c.diags
		if want == nil {
			want = []at{}
		}
		if diff := cmp.Diff(want, diags); diff != "" {
			t.Errorf("Lex(%q) diagnostics mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestGenericParams(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{"$T", []token.Kind{token.GENERIC, token.EOF}, nil},
		{"$MY_TYPE", []token.Kind{token.GENERIC, token.EOF}, nil},
		{"$1", []token.Kind{token.ILLEGAL, token.EOF}, []at{{diag.InvalidGenericParam, 1, 2}}},
		{"$T1", []token.Kind{token.ILLEGAL, token.EOF}, []at{{diag.InvalidGenericParam, 1, 3}}},
		{"$", []token.Kind{token.ILLEGAL, token.EOF}, []at{{diag.InvalidGenericParam, 1, 1}}},
		{"$_T", []token.Kind{token.ILLEGAL, token.EOF}, []at{{diag.InvalidGenericParam, 1, 2}}},
		{"fn f($T)", []token.Kind{token.FN, token.IDENT, token.LEFTPAREN, token.GENERIC, token.RIGHTPAREN, token.EOF}, nil},
	})
}

func TestNumbers(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{"42", []token.Kind{token.INT, token.EOF}, nil},
		{"1_000", []token.Kind{token.INT, token.EOF}, nil},
		{"3.14", []token.Kind{token.FLOAT, token.EOF}, nil},
		{".5", []token.Kind{token.FLOAT, token.EOF}, nil},
		{"1e10", []token.Kind{token.FLOAT, token.EOF}, nil},
		{"2.5e-3", []token.Kind{token.FLOAT, token.EOF}, nil},
		{"0xFF", []token.Kind{token.INT, token.EOF}, nil},
		{"0o17", []token.Kind{token.INT, token.EOF}, nil},
		{"1..5", []token.Kind{token.INT, token.DOTDOT, token.INT, token.EOF}, nil},
		{"1.", []token.Kind{token.FLOAT, token.EOF}, nil},
		{"1.e5", []token.Kind{token.FLOAT, token.EOF}, nil},
		{"2.E-3", []token.Kind{token.FLOAT, token.EOF}, nil},
		{"1.ex", []token.Kind{token.INT, token.DOT, token.IDENT, token.EOF}, nil},
		{"1__2", []token.Kind{token.INT, token.EOF}, []at{{diag.InvalidNumber, 1, 3}}},
		{"0x", []token.Kind{token.INT, token.EOF}, []at{{diag.InvalidNumber, 1, 1}}},
		{"0b102", []token.Kind{token.INT, token.EOF}, []at{{diag.InvalidNumber, 1, 5}}},
		{"123abc", []token.Kind{token.INT, token.EOF}, []at{{diag.InvalidNumber, 1, 4}}},
		{"1_", []token.Kind{token.INT, token.EOF}, []at{{diag.InvalidNumber, 1, 2}}},
		{strings.Repeat("1", lexer.MaxNumberLength), []token.Kind{token.INT, token.EOF}, nil},
		{strings.Repeat("1", lexer.MaxNumberLength+1), []token.Kind{token.INT, token.EOF}, []at{{diag.NumberTooLong, 1, 1}}},
	})
}

func TestStringsAndChars(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{`"hi\n"`, []token.Kind{token.STRING, token.EOF}, nil},
		{`"\x41\0"`, []token.Kind{token.STRING, token.EOF}, nil},
		{`"abc`, []token.Kind{token.STRING, token.EOF}, []at{{diag.UnterminatedString, 1, 1}}},
		{"\"abc\nx", []token.Kind{token.STRING, token.IDENT, token.EOF}, []at{{diag.UnterminatedString, 1, 1}}},
		{`"\q"`, []token.Kind{token.STRING, token.EOF}, []at{{diag.InvalidEscape, 1, 2}}},
		{`"\x80"`, []token.Kind{token.STRING, token.EOF}, []at{{diag.InvalidEscape, 1, 2}}},
		{`"\xZ"`, []token.Kind{token.STRING, token.EOF}, []at{{diag.InvalidEscape, 1, 2}}},
		{`'a'`, []token.Kind{token.CHAR, token.EOF}, nil},
		{`'\''`, []token.Kind{token.CHAR, token.EOF}, nil},
		{`''`, []token.Kind{token.CHAR, token.EOF}, []at{{diag.InvalidCharLiteral, 1, 1}}},
		{`'ab'`, []token.Kind{token.CHAR, token.EOF}, []at{{diag.InvalidCharLiteral, 1, 1}}},
		{`'a`, []token.Kind{token.CHAR, token.EOF}, []at{{diag.UnterminatedChar, 1, 1}}},
	})
}

func TestCommentsAndWhitespace(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{"a // note\nb", []token.Kind{token.IDENT, token.IDENT, token.EOF}, nil},
		{"/* outer /* inner */ still */ x", []token.Kind{token.IDENT, token.EOF}, nil},
		{"/* open", []token.Kind{token.EOF}, []at{{diag.UnterminatedComment, 1, 1}}},
		{"\tx", []token.Kind{token.IDENT, token.EOF}, []at{{diag.InvalidCharacter, 1, 1}}},
		{"// a\tb", []token.Kind{token.EOF}, []at{{diag.InvalidCharacter, 1, 5}}},
		{"x @ y", []token.Kind{token.IDENT, token.ILLEGAL, token.IDENT, token.EOF}, []at{{diag.InvalidCharacter, 1, 3}}},
	})
}

func TestOperatorsAndKeywords(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{
			"a += b <<= c && d || !e",
			[]token.Kind{
				token.IDENT, token.PLUSASSIGN, token.IDENT, token.SHLASSIGN, token.IDENT,
				token.ANDAND, token.IDENT, token.OROR, token.BANG, token.IDENT, token.EOF,
			},
			nil,
		},
		{
			":: := : .. .",
			[]token.Kind{token.COLONCOLON, token.DEFINE, token.COLON, token.DOTDOT, token.DOT, token.EOF},
			nil,
		},
		{
			"a == b != c <= d >= e >> f",
			[]token.Kind{
				token.IDENT, token.EQ, token.IDENT, token.NEQ, token.IDENT, token.LE, token.IDENT,
				token.GE, token.IDENT, token.SHR, token.IDENT, token.EOF,
			},
			nil,
		},
		{
			"ret label typeset i32 rawptr cast deref",
			[]token.Kind{token.RET, token.LABEL, token.TYPESET, token.I32, token.RAWPTR, token.CAST, token.DEREF, token.EOF},
			nil,
		},
	})
}

func TestIdentifierLength(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{strings.Repeat("a", lexer.MaxIdentLength), []token.Kind{token.IDENT, token.EOF}, nil},
		{strings.Repeat("a", lexer.MaxIdentLength+1), []token.Kind{token.IDENT, token.EOF}, []at{{diag.IdentifierTooLong, 1, 1}}},
	})
}

func TestNewlineBefore(t *testing.T) {
	t.Parallel()
	tokens, _ := lex("a\n  b c")
	got := []bool{}
	for _, tok := range tokens {
		got = append(got, tok.NewlineBefore)
	}
	if diff := cmp.Diff([]bool{false, true, false, false}, got); diff != "" {
		t.Errorf("NewlineBefore mismatch (-want +got):\n%s", diff)
	}
}

func TestSpans(t *testing.T) {
	t.Parallel()
	tokens, _ := lex("fn add\n  x")
	want := []token.Span{
		{File: "test.lm", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2, Offset: 0, EndOffset: 2},
		{File: "test.lm", StartLine: 1, StartCol: 4, EndLine: 1, EndCol: 6, Offset: 3, EndOffset: 6},
		{File: "test.lm", StartLine: 2, StartCol: 3, EndLine: 2, EndCol: 3, Offset: 9, EndOffset: 10},
		{File: "test.lm", StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 4, Offset: 10, EndOffset: 10},
	}
	got := []token.Span{}
	for _, tok := range tokens {
		got = append(got, tok.Span)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

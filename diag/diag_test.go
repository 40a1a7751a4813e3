package diag_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/token"
)

func span(line, col int) token.Span {
	return token.Span{File: "a.lm", StartLine: line, StartCol: col, EndLine: line, EndCol: col}
}

func TestSink(t *testing.T) {
	t.Parallel()
	sink := diag.NewSink()
	if sink.HasErrors() || sink.Err() != nil {
		t.Fatalf("a new sink has no errors")
	}

	sink.Warn(diag.UnreachableArm, span(3, 1), "unreachable arm")
	if sink.HasErrors() || sink.Err() != nil {
		t.Errorf("warnings are not errors")
	}

	sink.Report(diag.ExpectedToken, span(1, 5), "expected %s", "`)`").Help = "close the call"
	if !sink.HasErrors() {
		t.Errorf("HasErrors() = false after Report")
	}
	if sink.HasLexicalErrors() {
		t.Errorf("HasLexicalErrors() = true without lexer diagnostics")
	}
	sink.Report(diag.UnterminatedString, span(4, 1), "unterminated string literal")
	if !sink.HasLexicalErrors() {
		t.Errorf("HasLexicalErrors() = false after a lexer diagnostic")
	}

	want := []diag.Kind{diag.UnreachableArm, diag.ExpectedToken, diag.UnterminatedString}
	if diff := cmp.Diff(want, sink.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}

	diags := sink.Diagnostics()
	diags[0].Message = "changed"
	if sink.Diagnostics()[0].Message != "unreachable arm" {
		t.Errorf("Diagnostics() must return a copy")
	}

	var d diag.Diagnostic
	if !errors.As(sink.Err(), &d) || d.Kind != diag.ExpectedToken {
		t.Errorf("Err() should wrap the error diagnostic, got %v", sink.Err())
	}
}

func TestDiagnosticError(t *testing.T) {
	t.Parallel()
	d := diag.Diagnostic{
		Kind:     diag.MismatchedBracket,
		Severity: diag.Error,
		Message:  "mismatched `]`: expected `)`",
		Span:     span(2, 9),
		Help:     "replace it with `)`",
		Secondary: []diag.Label{
			{Span: span(2, 4), Message: "unclosed `(`"},
		},
	}

	want := "a.lm:2:9: error: mismatched `]`: expected `)`\n\ta.lm:2:4: unclosed `(`\n\thelp: replace it with `)`"
	if diff := cmp.Diff(want, d.Error()); diff != "" {
		t.Errorf("Error() mismatch (-want +got):\n%s", diff)
	}
}

func TestKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind    diag.Kind
		name    string
		lexical bool
	}{
		{diag.UnterminatedString, "unterminated-string", true},
		{diag.InvalidCharLiteral, "invalid-char-literal", true},
		{diag.UnexpectedToken, "unexpected-token", false},
		{diag.InvalidVersion, "invalid-version", false},
		{diag.UnreachableArm, "unreachable-arm", false},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.kind.IsLexical(); got != tt.lexical {
			t.Errorf("%s.IsLexical() = %v, want %v", tt.name, got, tt.lexical)
		}
	}
}

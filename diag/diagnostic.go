// Package diag collects the diagnostics produced by the lexer and the parser.
package diag

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/lumen/token"
)

type Kind int

const (
	// Lexical.
	UnterminatedString Kind = iota
	UnterminatedChar
	InvalidCharacter
	IdentifierTooLong
	NumberTooLong
	InvalidNumber
	InvalidEscape
	InvalidGenericParam
	UnterminatedComment
	InvalidCharLiteral

	// Syntactic.
	UnexpectedToken
	ExpectedToken
	IncompleteExpression
	MismatchedBracket
	InvalidVersion

	// Structural.
	DuplicateName
	UnreachableArm
)

var kindNames = [...]string{
	UnterminatedString:   "unterminated-string",
	UnterminatedChar:     "unterminated-char",
	InvalidCharacter:     "invalid-character",
	IdentifierTooLong:    "identifier-too-long",
	NumberTooLong:        "number-too-long",
	InvalidNumber:        "invalid-number",
	InvalidEscape:        "invalid-escape",
	InvalidGenericParam:  "invalid-generic-param",
	UnterminatedComment:  "unterminated-comment",
	InvalidCharLiteral:   "invalid-char-literal",
	UnexpectedToken:      "unexpected-token",
	ExpectedToken:        "expected-token",
	IncompleteExpression: "incomplete-expression",
	MismatchedBracket:    "mismatched-bracket",
	InvalidVersion:       "invalid-version",
	DuplicateName:        "duplicate-name",
	UnreachableArm:       "unreachable-arm",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLexical reports whether the kind is produced by the lexer.
func (k Kind) IsLexical() bool {
	return k <= InvalidCharLiteral
}

type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Label attaches a message to a secondary span.
type Label struct {
	Span    token.Span
	Message string
}

type Diagnostic struct {
	Kind      Kind
	Severity  Severity
	Message   string
	Span      token.Span
	Secondary []Label
	Help      string
}

func (d Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %s", d.Span, d.Severity, d.Message)
	for _, l := range d.Secondary {
		fmt.Fprintf(&b, "\n\t%s: %s", l.Span, l.Message)
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "\n\thelp: %s", d.Help)
	}
	return b.String()
}

package diag

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/lumen/token"
)

// Sink is an ordered diagnostic collector owned by a single compilation unit.
// The zero value is ready to use. A Sink is not safe for concurrent use.
type Sink struct {
	diags []Diagnostic
}

func NewSink() *Sink {
	return &Sink{}
}

// Report appends an error diagnostic. The returned pointer refers to the stored
// entry and stays valid until the next diagnostic is added.
func (s *Sink) Report(kind Kind, span token.Span, format string, args ...any) *Diagnostic {
	s.diags = append(s.diags, Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
	return &s.diags[len(s.diags)-1]
}

// Warn appends a warning diagnostic.
func (s *Sink) Warn(kind Kind, span token.Span, format string, args ...any) *Diagnostic {
	d := s.Report(kind, span, format, args...)
	d.Severity = Warning
	return d
}

// Diagnostics returns a copy of the collected diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// HasLexicalErrors reports whether the lexer rejected part of the source.
func (s *Sink) HasLexicalErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error && d.Kind.IsLexical() {
			return true
		}
	}
	return false
}

// Err joins every error-severity diagnostic, or returns nil.
func (s *Sink) Err() error {
	var err error
	for _, d := range s.diags {
		if d.Severity == Error {
			err = errors.Join(err, d)
		}
	}
	return err
}

// Kinds lists the kind of every diagnostic in order.
func (s *Sink) Kinds() []Kind {
	kinds := make([]Kind, len(s.diags))
	for i, d := range s.diags {
		kinds[i] = d.Kind
	}
	return kinds
}

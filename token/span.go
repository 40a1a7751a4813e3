package token

import "fmt"

// Span is a source range. Lines and columns are 1-based; EndCol is the column of
// the last character. Offset and EndOffset are byte offsets, EndOffset exclusive.
type Span struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Offset    int
	EndOffset int
}

func (s Span) IsValid() bool {
	return s.StartLine > 0 && s.StartCol > 0
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.EndOffset - s.Offset
}

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Offset <= other.Offset && other.EndOffset <= s.EndOffset
}

// Join returns the smallest span covering a and b. An invalid operand is ignored.
func Join(a, b Span) Span {
	if !a.IsValid() {
		return b
	}
	if !b.IsValid() {
		return a
	}
	out := a
	if b.Offset < a.Offset {
		out.StartLine, out.StartCol, out.Offset = b.StartLine, b.StartCol, b.Offset
	}
	if b.EndOffset > a.EndOffset {
		out.EndLine, out.EndCol, out.EndOffset = b.EndLine, b.EndCol, b.EndOffset
	}
	return out
}

// Range renders line:col-line:col without the file name.
func (s Span) Range() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

func (s Span) String() string {
	if s.File != "" {
		return fmt.Sprintf("%s:%d:%d", s.File, s.StartLine, s.StartCol)
	}
	return fmt.Sprintf("%d:%d", s.StartLine, s.StartCol)
}

package ast

import (
	"github.com/takoeight0821/lumen/token"
)

type LiteralPattern struct {
	spanned
	Value *Literal
}

func NewLiteralPattern(value *Literal) *LiteralPattern {
	return &LiteralPattern{spanned{value.Span()}, value}
}

func (l *LiteralPattern) String() string   { return l.Value.String() }
func (l *LiteralPattern) Children() []Node { return children(l.Value) }

// BindingPattern binds the matched value to a new name.
type BindingPattern struct {
	spanned
	Name *Ident
}

func NewBindingPattern(name *Ident) *BindingPattern {
	return &BindingPattern{spanned{name.Span()}, name}
}

func (b *BindingPattern) String() string   { return parenthesize("bind", b.Name).String() }
func (b *BindingPattern) Children() []Node { return children(b.Name) }

// VariantPattern is `Enum.Variant`, or `.Variant` with Enum nil.
type VariantPattern struct {
	spanned
	Enum    *Ident
	Variant *Ident
}

func NewVariantPattern(span token.Span, enum, variant *Ident) *VariantPattern {
	return &VariantPattern{spanned{span}, enum, variant}
}

func (v *VariantPattern) String() string {
	if v.Enum == nil {
		return parenthesize("variant", v.Variant).String()
	}
	return parenthesize("variant", v.Enum, v.Variant).String()
}

func (v *VariantPattern) Children() []Node { return children(v.Enum, v.Variant) }

// RangePattern is the inclusive `low..high`.
type RangePattern struct {
	spanned
	Low  *Literal
	High *Literal
}

func NewRangePattern(low, high *Literal) *RangePattern {
	return &RangePattern{spanned{Cover(low, high)}, low, high}
}

func (r *RangePattern) String() string   { return parenthesize("range", r.Low, r.High).String() }
func (r *RangePattern) Children() []Node { return children(r.Low, r.High) }

// WildcardPattern is `_` or the pattern of an else arm.
type WildcardPattern struct {
	spanned
}

func NewWildcardPattern(t token.Token) *WildcardPattern {
	return &WildcardPattern{spanned{t.Span}}
}

func (w *WildcardPattern) String() string   { return "_" }
func (w *WildcardPattern) Children() []Node { return nil }

// BadPattern stands in for a pattern that failed to parse.
type BadPattern struct {
	spanned
}

func NewBadPattern(span token.Span) *BadPattern {
	return &BadPattern{spanned{span}}
}

func (b *BadPattern) String() string   { return "(bad)" }
func (b *BadPattern) Children() []Node { return nil }

func (*LiteralPattern) patternNode()  {}
func (*BindingPattern) patternNode()  {}
func (*VariantPattern) patternNode()  {}
func (*RangePattern) patternNode()    {}
func (*WildcardPattern) patternNode() {}
func (*BadPattern) patternNode()      {}

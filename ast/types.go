package ast

import (
	"github.com/takoeight0821/lumen/token"
)

type PrimitiveType struct {
	spanned
	Kind token.Kind
}

func NewPrimitiveType(t token.Token) *PrimitiveType {
	return &PrimitiveType{spanned{t.Span}, t.Kind}
}

func (p *PrimitiveType) String() string   { return p.Kind.String() }
func (p *PrimitiveType) Children() []Node { return nil }

// NamedType is a user type, optionally qualified by an import alias.
type NamedType struct {
	spanned
	Package *Ident
	Name    *Ident
}

func NewNamedType(pkg, name *Ident) *NamedType {
	return &NamedType{spanned{Cover(pkg, name)}, pkg, name}
}

func (n *NamedType) String() string {
	if n.Package != nil {
		return n.Package.Name + "." + n.Name.Name
	}
	return n.Name.Name
}

func (n *NamedType) Children() []Node { return children(n.Package, n.Name) }

// GenericParamType is a use of a generic parameter such as `$T`.
type GenericParamType struct {
	spanned
	Name string // without the sigil
}

func NewGenericParamType(t token.Token) *GenericParamType {
	return &GenericParamType{spanned{t.Span}, t.Lexeme[1:]}
}

func (g *GenericParamType) String() string   { return "$" + g.Name }
func (g *GenericParamType) Children() []Node { return nil }

// PointerType is `ref T`.
type PointerType struct {
	spanned
	Elem Type
}

func NewPointerType(ref token.Token, elem Type) *PointerType {
	return &PointerType{spanned{token.Join(ref.Span, elem.Span())}, elem}
}

func (p *PointerType) String() string   { return parenthesize("ref", p.Elem).String() }
func (p *PointerType) Children() []Node { return children(p.Elem) }

// ArrayType is `[N]T`.
type ArrayType struct {
	spanned
	Len  Expr
	Elem Type
}

func NewArrayType(lbrack token.Token, length Expr, elem Type) *ArrayType {
	return &ArrayType{spanned{token.Join(lbrack.Span, elem.Span())}, length, elem}
}

func (a *ArrayType) String() string   { return parenthesize("array", a.Len, a.Elem).String() }
func (a *ArrayType) Children() []Node { return children(a.Len, a.Elem) }

// SliceType is `[]T`.
type SliceType struct {
	spanned
	Elem Type
}

func NewSliceType(lbrack token.Token, elem Type) *SliceType {
	return &SliceType{spanned{token.Join(lbrack.Span, elem.Span())}, elem}
}

func (s *SliceType) String() string   { return parenthesize("slice", s.Elem).String() }
func (s *SliceType) Children() []Node { return children(s.Elem) }

// FuncType is `fn(T1, T2) R`; Result is nil for void.
type FuncType struct {
	spanned
	Params []Type
	Result Type
}

func NewFuncType(span token.Span, params []Type, result Type) *FuncType {
	return &FuncType{spanned{span}, params, result}
}

func (f *FuncType) String() string {
	return parenthesize("fn", group(f.Params), opt(f.Result)).String()
}

func (f *FuncType) Children() []Node { return append(list(f.Params), children(f.Result)...) }

// GenericInstType is `Name(T1, T2)`. The arguments are owned by this node.
type GenericInstType struct {
	spanned
	Base *NamedType
	Args []Type
}

func NewGenericInstType(base *NamedType, args []Type, rparen token.Token) *GenericInstType {
	return &GenericInstType{spanned{token.Join(base.Span(), rparen.Span)}, base, args}
}

func (g *GenericInstType) String() string {
	return parenthesize("inst", g.Base, concat(g.Args)).String()
}

func (g *GenericInstType) Children() []Node { return append(children(g.Base), list(g.Args)...) }

// InlineStructType is an anonymous `struct { ... }` in type position.
type InlineStructType struct {
	spanned
	Fields []*Field
}

func NewInlineStructType(span token.Span, fields []*Field) *InlineStructType {
	return &InlineStructType{spanned{span}, fields}
}

func (s *InlineStructType) String() string {
	return parenthesize("struct", concat(s.Fields)).String()
}

func (s *InlineStructType) Children() []Node { return list(s.Fields) }

// InlineUnionType is an anonymous `union { ... }` in type position.
type InlineUnionType struct {
	spanned
	Fields []*Field
}

func NewInlineUnionType(span token.Span, fields []*Field) *InlineUnionType {
	return &InlineUnionType{spanned{span}, fields}
}

func (u *InlineUnionType) String() string {
	return parenthesize("union", concat(u.Fields)).String()
}

func (u *InlineUnionType) Children() []Node { return list(u.Fields) }

// TypeSetType is an inline `typeset { T1, T2 }` constraint.
type TypeSetType struct {
	spanned
	Members []Type
}

func NewTypeSetType(span token.Span, members []Type) *TypeSetType {
	return &TypeSetType{spanned{span}, members}
}

func (t *TypeSetType) String() string {
	return parenthesize("typeset", concat(t.Members)).String()
}

func (t *TypeSetType) Children() []Node { return list(t.Members) }

// BadType stands in for a type that failed to parse.
type BadType struct {
	spanned
}

func NewBadType(span token.Span) *BadType {
	return &BadType{spanned{span}}
}

func (b *BadType) String() string   { return "(bad)" }
func (b *BadType) Children() []Node { return nil }

func (*PrimitiveType) typeNode()    {}
func (*NamedType) typeNode()        {}
func (*GenericParamType) typeNode() {}
func (*PointerType) typeNode()      {}
func (*ArrayType) typeNode()        {}
func (*SliceType) typeNode()        {}
func (*FuncType) typeNode()         {}
func (*GenericInstType) typeNode()  {}
func (*InlineStructType) typeNode() {}
func (*InlineUnionType) typeNode()  {}
func (*TypeSetType) typeNode()      {}
func (*BadType) typeNode()          {}

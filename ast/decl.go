package ast

import (
	"github.com/takoeight0821/lumen/token"
)

// GenericParam is `$T` with an optional constraint: a type-set name or an inline
// `typeset { ... }`.
type GenericParam struct {
	spanned
	Name       string // without the sigil
	Constraint Type
}

func NewGenericParam(span token.Span, name string, constraint Type) *GenericParam {
	return &GenericParam{spanned{span}, name, constraint}
}

func (g *GenericParam) String() string {
	if g.Constraint == nil {
		return "$" + g.Name
	}
	return parenthesize("$"+g.Name, g.Constraint).String()
}

func (g *GenericParam) Children() []Node { return children(g.Constraint) }

// Param is a function parameter. Parameters are immutable bindings.
type Param struct {
	spanned
	Name *Ident
	Type Type
}

func NewParam(name *Ident, typ Type) *Param {
	return &Param{spanned{Cover(name, typ)}, name, typ}
}

func (p *Param) String() string   { return parenthesize(p.Name.Name, p.Type).String() }
func (p *Param) Children() []Node { return children(p.Name, p.Type) }

// Field is a struct or union member.
type Field struct {
	spanned
	Name *Ident
	Type Type
}

func NewField(name *Ident, typ Type) *Field {
	return &Field{spanned{Cover(name, typ)}, name, typ}
}

func (f *Field) String() string   { return parenthesize(f.Name.Name, f.Type).String() }
func (f *Field) Children() []Node { return children(f.Name, f.Type) }

// FuncDecl is `fn name(generics)(params) Result { body }`; Result is nil for void.
type FuncDecl struct {
	spanned
	Name     *Ident
	Generics []*GenericParam
	Params   []*Param
	Result   Type
	Body     *Block
}

func NewFuncDecl(span token.Span, name *Ident, generics []*GenericParam, params []*Param, result Type, body *Block) *FuncDecl {
	return &FuncDecl{spanned{span}, name, generics, params, result, body}
}

func (f *FuncDecl) String() string {
	return parenthesize("fn", f.Name, group(f.Generics), group(f.Params), opt(f.Result), opt(f.Body)).String()
}

func (f *FuncDecl) Children() []Node {
	out := children(f.Name)
	out = append(out, list(f.Generics)...)
	out = append(out, list(f.Params)...)
	return append(out, children(f.Result, f.Body)...)
}

type StructDecl struct {
	spanned
	Name     *Ident
	Generics []*GenericParam
	Fields   []*Field
}

func NewStructDecl(span token.Span, name *Ident, generics []*GenericParam, fields []*Field) *StructDecl {
	return &StructDecl{spanned{span}, name, generics, fields}
}

func (s *StructDecl) String() string {
	return parenthesize("struct", s.Name, group(s.Generics), concat(s.Fields)).String()
}

func (s *StructDecl) Children() []Node {
	out := children(s.Name)
	out = append(out, list(s.Generics)...)
	return append(out, list(s.Fields)...)
}

type UnionDecl struct {
	spanned
	Name     *Ident
	Generics []*GenericParam
	Fields   []*Field
}

func NewUnionDecl(span token.Span, name *Ident, generics []*GenericParam, fields []*Field) *UnionDecl {
	return &UnionDecl{spanned{span}, name, generics, fields}
}

func (u *UnionDecl) String() string {
	return parenthesize("union", u.Name, group(u.Generics), concat(u.Fields)).String()
}

func (u *UnionDecl) Children() []Node {
	out := children(u.Name)
	out = append(out, list(u.Generics)...)
	return append(out, list(u.Fields)...)
}

type EnumDecl struct {
	spanned
	Name     *Ident
	Variants []*EnumVariant
}

func NewEnumDecl(span token.Span, name *Ident, variants []*EnumVariant) *EnumDecl {
	return &EnumDecl{spanned{span}, name, variants}
}

func (e *EnumDecl) String() string {
	return parenthesize("enum", e.Name, concat(e.Variants)).String()
}

func (e *EnumDecl) Children() []Node { return append(children(e.Name), list(e.Variants)...) }

// EnumVariant is `Name` or `Name = value`.
type EnumVariant struct {
	spanned
	Name  *Ident
	Value Expr
}

func NewEnumVariant(name *Ident, value Expr) *EnumVariant {
	return &EnumVariant{spanned{Cover(name, value)}, name, value}
}

func (v *EnumVariant) String() string {
	if v.Value == nil {
		return v.Name.Name
	}
	return parenthesize(v.Name.Name, v.Value).String()
}

func (v *EnumVariant) Children() []Node { return children(v.Name, v.Value) }

// TypeAliasDecl is `type Name = T`.
type TypeAliasDecl struct {
	spanned
	Name *Ident
	Type Type
}

func NewTypeAliasDecl(span token.Span, name *Ident, typ Type) *TypeAliasDecl {
	return &TypeAliasDecl{spanned{span}, name, typ}
}

func (t *TypeAliasDecl) String() string   { return parenthesize("type", t.Name, t.Type).String() }
func (t *TypeAliasDecl) Children() []Node { return children(t.Name, t.Type) }

// TypeSetDecl is `typeset Name { T1, T2 }`, a closed list of types usable as a
// generic constraint.
type TypeSetDecl struct {
	spanned
	Name    *Ident
	Members []Type
}

func NewTypeSetDecl(span token.Span, name *Ident, members []Type) *TypeSetDecl {
	return &TypeSetDecl{spanned{span}, name, members}
}

func (t *TypeSetDecl) String() string {
	return parenthesize("typeset", t.Name, concat(t.Members)).String()
}

func (t *TypeSetDecl) Children() []Node { return append(children(t.Name), list(t.Members)...) }

// ConstDecl is `name :: value`.
type ConstDecl struct {
	spanned
	Name  *Ident
	Value Expr
}

func NewConstDecl(name *Ident, value Expr) *ConstDecl {
	return &ConstDecl{spanned{Cover(name, value)}, name, value}
}

func (c *ConstDecl) String() string   { return parenthesize("const", c.Name, c.Value).String() }
func (c *ConstDecl) Children() []Node { return children(c.Name, c.Value) }

// VarDecl is `name := value`, `name: T = value` or `name: T`. Without a value the
// variable is zero-initialized.
type VarDecl struct {
	spanned
	Name  *Ident
	Type  Type
	Value Expr
}

func NewVarDecl(name *Ident, typ Type, value Expr) *VarDecl {
	return &VarDecl{spanned{Cover(name, typ, value)}, name, typ, value}
}

func (v *VarDecl) String() string {
	return parenthesize("var", v.Name, opt(v.Type), opt(v.Value)).String()
}

func (v *VarDecl) Children() []Node { return children(v.Name, v.Type, v.Value) }

// ZeroInit reports whether the declaration has no initializer.
func (v *VarDecl) ZeroInit() bool {
	return v.Value == nil
}

// ImportDecl is `import "path"`, optionally `as alias`. A path of the form
// "name@constraint" carries a version constraint.
type ImportDecl struct {
	spanned
	Path    *Literal
	Module  string
	Version string
	Alias   *Ident
}

func NewImportDecl(span token.Span, path *Literal, module, version string, alias *Ident) *ImportDecl {
	return &ImportDecl{spanned{span}, path, module, version, alias}
}

func (i *ImportDecl) String() string {
	elems := []Node{i.Path}
	if i.Alias != nil {
		elems = append(elems, i.Alias)
	}
	return parenthesize("import", concat(elems)).String()
}

func (i *ImportDecl) Children() []Node { return children(i.Path, i.Alias) }

func (*FuncDecl) declNode()      {}
func (*StructDecl) declNode()    {}
func (*UnionDecl) declNode()     {}
func (*EnumDecl) declNode()      {}
func (*TypeAliasDecl) declNode() {}
func (*TypeSetDecl) declNode()   {}
func (*ConstDecl) declNode()     {}
func (*VarDecl) declNode()       {}
func (*ImportDecl) declNode()    {}

// BadDecl stands in for a top-level item that failed to parse.
type BadDecl struct {
	spanned
}

func NewBadDecl(span token.Span) *BadDecl {
	return &BadDecl{spanned{span}}
}

func (b *BadDecl) String() string   { return "(bad)" }
func (b *BadDecl) Children() []Node { return nil }

func (*BadDecl) declNode() {}

package ast

import (
	"github.com/takoeight0821/lumen/token"
)

type Literal struct {
	spanned
	Kind  token.Kind // INT, FLOAT, CHAR, STRING, TRUE, FALSE or NIL
	Value string     // source text, including quotes and a leading `-` in patterns
}

func NewLiteral(t token.Token) *Literal {
	return &Literal{spanned{t.Span}, t.Kind, t.Lexeme}
}

// NewNegativeLiteral folds a `-` token into the numeric literal that follows it.
func NewNegativeLiteral(minus, lit token.Token) *Literal {
	return &Literal{spanned{token.Join(minus.Span, lit.Span)}, lit.Kind, "-" + lit.Lexeme}
}

func (l *Literal) String() string   { return l.Value }
func (l *Literal) Children() []Node { return nil }

type Ident struct {
	spanned
	Name string
}

func NewIdent(t token.Token) *Ident {
	return &Ident{spanned{t.Span}, t.Lexeme}
}

func (i *Ident) String() string   { return i.Name }
func (i *Ident) Children() []Node { return nil }

type BinaryExpr struct {
	spanned
	Op    token.Kind
	Left  Expr
	Right Expr
}

func NewBinary(op token.Kind, left, right Expr) *BinaryExpr {
	return &BinaryExpr{spanned{Cover(left, right)}, op, left, right}
}

func (b *BinaryExpr) String() string {
	return parenthesize("binary", text(b.Op.String()), b.Left, b.Right).String()
}

func (b *BinaryExpr) Children() []Node { return children(b.Left, b.Right) }

// AssignExpr is an assignment nested inside another expression, such as the
// right-hand side of `x = y = 1`.
type AssignExpr struct {
	spanned
	Op     token.Kind
	Target Expr
	Value  Expr
}

func NewAssign(op token.Kind, target, value Expr) *AssignExpr {
	return &AssignExpr{spanned{Cover(target, value)}, op, target, value}
}

func (a *AssignExpr) String() string {
	return parenthesize("assign", text(a.Op.String()), a.Target, a.Value).String()
}

func (a *AssignExpr) Children() []Node { return children(a.Target, a.Value) }

type UnaryExpr struct {
	spanned
	Op      token.Kind
	Operand Expr
}

func NewUnary(op token.Token, operand Expr) *UnaryExpr {
	return &UnaryExpr{spanned{token.Join(op.Span, operand.Span())}, op.Kind, operand}
}

func (u *UnaryExpr) String() string {
	return parenthesize("unary", text(u.Op.String()), u.Operand).String()
}

func (u *UnaryExpr) Children() []Node { return children(u.Operand) }

type CallExpr struct {
	spanned
	Callee Expr
	Args   []Expr
}

// NewCall spans from the callee to the closing parenthesis.
func NewCall(callee Expr, args []Expr, rparen token.Token) *CallExpr {
	return &CallExpr{spanned{token.Join(callee.Span(), rparen.Span)}, callee, args}
}

func (c *CallExpr) String() string {
	return parenthesize("call", c.Callee, concat(c.Args)).String()
}

func (c *CallExpr) Children() []Node { return append(children(c.Callee), list(c.Args)...) }

type IndexExpr struct {
	spanned
	X     Expr
	Index Expr
}

func NewIndex(x, index Expr, rbrack token.Token) *IndexExpr {
	return &IndexExpr{spanned{token.Join(x.Span(), rbrack.Span)}, x, index}
}

func (i *IndexExpr) String() string {
	return parenthesize("index", i.X, i.Index).String()
}

func (i *IndexExpr) Children() []Node { return children(i.X, i.Index) }

// SliceExpr is `x[low..high]`; either bound may be nil.
type SliceExpr struct {
	spanned
	X    Expr
	Low  Expr
	High Expr
}

func NewSlice(x, low, high Expr, rbrack token.Token) *SliceExpr {
	return &SliceExpr{spanned{token.Join(x.Span(), rbrack.Span)}, x, low, high}
}

func (s *SliceExpr) String() string {
	return parenthesize("slice", s.X, opt(s.Low), opt(s.High)).String()
}

func (s *SliceExpr) Children() []Node { return children(s.X, s.Low, s.High) }

type FieldExpr struct {
	spanned
	X     Expr
	Field *Ident
}

func NewFieldExpr(x Expr, field *Ident) *FieldExpr {
	return &FieldExpr{spanned{Cover(x, field)}, x, field}
}

func (f *FieldExpr) String() string {
	return parenthesize("field", f.X, f.Field).String()
}

func (f *FieldExpr) Children() []Node { return children(f.X, f.Field) }

// DerefExpr is the `p.deref` property.
type DerefExpr struct {
	spanned
	X Expr
}

func NewDeref(x Expr, prop token.Token) *DerefExpr {
	return &DerefExpr{spanned{token.Join(x.Span(), prop.Span)}, x}
}

func (d *DerefExpr) String() string   { return parenthesize("deref", d.X).String() }
func (d *DerefExpr) Children() []Node { return children(d.X) }

// AddrOfExpr is the `x.ref` property.
type AddrOfExpr struct {
	spanned
	X Expr
}

func NewAddrOf(x Expr, prop token.Token) *AddrOfExpr {
	return &AddrOfExpr{spanned{token.Join(x.Span(), prop.Span)}, x}
}

func (a *AddrOfExpr) String() string   { return parenthesize("addr", a.X).String() }
func (a *AddrOfExpr) Children() []Node { return children(a.X) }

// CastExpr is `cast(Type, value)`.
type CastExpr struct {
	spanned
	Type  Type
	Value Expr
}

func NewCast(span token.Span, typ Type, value Expr) *CastExpr {
	return &CastExpr{spanned{span}, typ, value}
}

func (c *CastExpr) String() string {
	return parenthesize("cast", c.Type, c.Value).String()
}

func (c *CastExpr) Children() []Node { return children(c.Type, c.Value) }

// CondExpr is the value form of if/else: `if c { a } else { b }`.
type CondExpr struct {
	spanned
	Cond Expr
	Then Expr
	Else Expr
}

func NewCond(span token.Span, cond, then, els Expr) *CondExpr {
	return &CondExpr{spanned{span}, cond, then, els}
}

func (c *CondExpr) String() string {
	return parenthesize("cond", c.Cond, c.Then, c.Else).String()
}

func (c *CondExpr) Children() []Node { return children(c.Cond, c.Then, c.Else) }

// MatchExpr is the value form of match; every arm yields one expression.
type MatchExpr struct {
	spanned
	Subject Expr
	Arms    []*ArmExpr
}

func NewMatchExpr(span token.Span, subject Expr, arms []*ArmExpr) *MatchExpr {
	return &MatchExpr{spanned{span}, subject, arms}
}

func (m *MatchExpr) String() string {
	return parenthesize("match", m.Subject, concat(m.Arms)).String()
}

func (m *MatchExpr) Children() []Node { return append(children(m.Subject), list(m.Arms)...) }

type ArmExpr struct {
	spanned
	Patterns []Pattern
	Value    Expr
}

func NewArmExpr(span token.Span, patterns []Pattern, value Expr) *ArmExpr {
	return &ArmExpr{spanned{span}, patterns, value}
}

func (a *ArmExpr) String() string {
	return parenthesize("arm", group(a.Patterns), a.Value).String()
}

func (a *ArmExpr) Children() []Node { return append(list(a.Patterns), children(a.Value)...) }

// StructLit is `T{a: 1, b: 2}` or the positional `T{1, 2}`.
type StructLit struct {
	spanned
	Type   Type
	Fields []*FieldInit
}

func NewStructLit(typ Type, fields []*FieldInit, rbrace token.Token) *StructLit {
	return &StructLit{spanned{token.Join(typ.Span(), rbrace.Span)}, typ, fields}
}

func (s *StructLit) String() string {
	return parenthesize("struct-lit", s.Type, concat(s.Fields)).String()
}

func (s *StructLit) Children() []Node { return append(children(s.Type), list(s.Fields)...) }

// Named reports whether the literal uses `name: value` fields.
func (s *StructLit) Named() bool {
	return len(s.Fields) > 0 && s.Fields[0].Name != nil
}

// FieldInit is one struct literal entry; Name is nil for positional entries.
type FieldInit struct {
	spanned
	Name  *Ident
	Value Expr
}

func NewFieldInit(name *Ident, value Expr) *FieldInit {
	return &FieldInit{spanned{Cover(name, value)}, name, value}
}

func (f *FieldInit) String() string {
	if f.Name == nil {
		return f.Value.String()
	}
	return parenthesize(f.Name.Name, f.Value).String()
}

func (f *FieldInit) Children() []Node { return children(f.Name, f.Value) }

// ArrayLit is `[1, 2]` (Type nil) or `[]int{1, 2}` / `[2]int{1, 2}`.
type ArrayLit struct {
	spanned
	Type  Type
	Elems []Expr
}

func NewArrayLit(span token.Span, typ Type, elems []Expr) *ArrayLit {
	return &ArrayLit{spanned{span}, typ, elems}
}

func (a *ArrayLit) String() string {
	if a.Type == nil {
		return parenthesize("array-lit", concat(a.Elems)).String()
	}
	return parenthesize("array-lit", a.Type, concat(a.Elems)).String()
}

func (a *ArrayLit) Children() []Node { return append(children(a.Type), list(a.Elems)...) }

type ParenExpr struct {
	spanned
	X Expr
}

func NewParen(lparen token.Token, x Expr, rparen token.Token) *ParenExpr {
	return &ParenExpr{spanned{token.Join(lparen.Span, rparen.Span)}, x}
}

func (p *ParenExpr) String() string   { return parenthesize("paren", p.X).String() }
func (p *ParenExpr) Children() []Node { return children(p.X) }

// BadExpr stands in for an expression that failed to parse.
type BadExpr struct {
	spanned
}

func NewBadExpr(span token.Span) *BadExpr {
	return &BadExpr{spanned{span}}
}

func (b *BadExpr) String() string   { return "(bad)" }
func (b *BadExpr) Children() []Node { return nil }

func (*Literal) exprNode()    {}
func (*Ident) exprNode()      {}
func (*BinaryExpr) exprNode() {}
func (*AssignExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*CallExpr) exprNode()   {}
func (*IndexExpr) exprNode()  {}
func (*SliceExpr) exprNode()  {}
func (*FieldExpr) exprNode()  {}
func (*DerefExpr) exprNode()  {}
func (*AddrOfExpr) exprNode() {}
func (*CastExpr) exprNode()   {}
func (*CondExpr) exprNode()   {}
func (*MatchExpr) exprNode()  {}
func (*StructLit) exprNode()  {}
func (*ArrayLit) exprNode()   {}
func (*ParenExpr) exprNode()  {}
func (*BadExpr) exprNode()    {}

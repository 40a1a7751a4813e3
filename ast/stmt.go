package ast

import (
	"github.com/takoeight0821/lumen/token"
)

type ExprStmt struct {
	spanned
	X Expr
}

func NewExprStmt(x Expr) *ExprStmt {
	return &ExprStmt{spanned{x.Span()}, x}
}

func (e *ExprStmt) String() string   { return parenthesize("expr", e.X).String() }
func (e *ExprStmt) Children() []Node { return children(e.X) }

// DeclStmt is a declaration nested in a block.
type DeclStmt struct {
	spanned
	Decl Decl
}

func NewDeclStmt(decl Decl) *DeclStmt {
	return &DeclStmt{spanned{decl.Span()}, decl}
}

func (d *DeclStmt) String() string   { return d.Decl.String() }
func (d *DeclStmt) Children() []Node { return children(d.Decl) }

type Block struct {
	spanned
	Stmts []Stmt
}

func NewBlock(lbrace token.Token, stmts []Stmt, rbrace token.Token) *Block {
	return &Block{spanned{token.Join(lbrace.Span, rbrace.Span)}, stmts}
}

func (b *Block) String() string   { return parenthesize("block", concat(b.Stmts)).String() }
func (b *Block) Children() []Node { return list(b.Stmts) }

// IfStmt has an Else that is nil, a *Block, or an *IfStmt for `else if`.
type IfStmt struct {
	spanned
	Cond Expr
	Then *Block
	Else Stmt
}

func NewIfStmt(ifTok token.Token, cond Expr, then *Block, els Stmt) *IfStmt {
	span := token.Join(ifTok.Span, then.Span())
	if els != nil {
		span = token.Join(span, els.Span())
	}
	return &IfStmt{spanned{span}, cond, then, els}
}

func (i *IfStmt) String() string {
	if i.Else == nil {
		return parenthesize("if", i.Cond, i.Then).String()
	}
	return parenthesize("if", i.Cond, i.Then, i.Else).String()
}

func (i *IfStmt) Children() []Node { return children(i.Cond, i.Then, i.Else) }

type WhileStmt struct {
	spanned
	Cond Expr
	Body *Block
}

func NewWhileStmt(whileTok token.Token, cond Expr, body *Block) *WhileStmt {
	return &WhileStmt{spanned{token.Join(whileTok.Span, body.Span())}, cond, body}
}

func (w *WhileStmt) String() string   { return parenthesize("while", w.Cond, w.Body).String() }
func (w *WhileStmt) Children() []Node { return children(w.Cond, w.Body) }

// ForStmt is the three-clause loop; any clause may be nil.
type ForStmt struct {
	spanned
	Init Stmt
	Cond Expr
	Post Stmt
	Body *Block
}

func NewForStmt(forTok token.Token, init Stmt, cond Expr, post Stmt, body *Block) *ForStmt {
	return &ForStmt{spanned{token.Join(forTok.Span, body.Span())}, init, cond, post, body}
}

func (f *ForStmt) String() string {
	return parenthesize("for", opt(f.Init), opt(f.Cond), opt(f.Post), f.Body).String()
}

func (f *ForStmt) Children() []Node { return children(f.Init, f.Cond, f.Post, f.Body) }

// ForInStmt is `for x in iter` or `for i, x in iter`.
type ForInStmt struct {
	spanned
	Index *Ident
	Value *Ident
	Iter  Expr
	Body  *Block
}

func NewForInStmt(forTok token.Token, index, value *Ident, iter Expr, body *Block) *ForInStmt {
	return &ForInStmt{spanned{token.Join(forTok.Span, body.Span())}, index, value, iter, body}
}

func (f *ForInStmt) String() string {
	if f.Index == nil {
		return parenthesize("for-in", f.Value, f.Iter, f.Body).String()
	}
	return parenthesize("for-in", f.Index, f.Value, f.Iter, f.Body).String()
}

func (f *ForInStmt) Children() []Node { return children(f.Index, f.Value, f.Iter, f.Body) }

type MatchStmt struct {
	spanned
	Subject Expr
	Arms    []*MatchArm
}

func NewMatchStmt(span token.Span, subject Expr, arms []*MatchArm) *MatchStmt {
	return &MatchStmt{spanned{span}, subject, arms}
}

func (m *MatchStmt) String() string {
	return parenthesize("match", m.Subject, concat(m.Arms)).String()
}

func (m *MatchStmt) Children() []Node { return append(children(m.Subject), list(m.Arms)...) }

// MatchArm is `case p1, p2: stmts` or `else: stmts`. An else arm holds a single
// wildcard pattern.
type MatchArm struct {
	spanned
	Patterns []Pattern
	Body     []Stmt
}

func NewMatchArm(span token.Span, patterns []Pattern, body []Stmt) *MatchArm {
	return &MatchArm{spanned{span}, patterns, body}
}

func (a *MatchArm) String() string {
	return parenthesize("case", group(a.Patterns), concat(a.Body)).String()
}

func (a *MatchArm) Children() []Node { return append(list(a.Patterns), list(a.Body)...) }

type BreakStmt struct {
	spanned
	Label *Ident
}

func NewBreakStmt(span token.Span, label *Ident) *BreakStmt {
	return &BreakStmt{spanned{span}, label}
}

func (b *BreakStmt) String() string {
	if b.Label == nil {
		return "(break)"
	}
	return parenthesize("break", b.Label).String()
}

func (b *BreakStmt) Children() []Node { return children(b.Label) }

type ContinueStmt struct {
	spanned
	Label *Ident
}

func NewContinueStmt(span token.Span, label *Ident) *ContinueStmt {
	return &ContinueStmt{spanned{span}, label}
}

func (c *ContinueStmt) String() string {
	if c.Label == nil {
		return "(continue)"
	}
	return parenthesize("continue", c.Label).String()
}

func (c *ContinueStmt) Children() []Node { return children(c.Label) }

// ReturnStmt is `ret` with an optional value.
type ReturnStmt struct {
	spanned
	Value Expr
}

func NewReturnStmt(retTok token.Token, value Expr) *ReturnStmt {
	span := retTok.Span
	if value != nil {
		span = token.Join(span, value.Span())
	}
	return &ReturnStmt{spanned{span}, value}
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "(ret)"
	}
	return parenthesize("ret", r.Value).String()
}

func (r *ReturnStmt) Children() []Node { return children(r.Value) }

// DeferStmt wraps exactly one statement. Deferred statements keep their source
// order in the tree; running them in reverse is up to later stages.
type DeferStmt struct {
	spanned
	Stmt Stmt
}

func NewDeferStmt(deferTok token.Token, stmt Stmt) *DeferStmt {
	return &DeferStmt{spanned{token.Join(deferTok.Span, stmt.Span())}, stmt}
}

func (d *DeferStmt) String() string   { return parenthesize("defer", d.Stmt).String() }
func (d *DeferStmt) Children() []Node { return children(d.Stmt) }

// AssignStmt is a statement-level assignment, plain or compound.
type AssignStmt struct {
	spanned
	Op     token.Kind
	Target Expr
	Value  Expr
}

func NewAssignStmt(op token.Kind, target, value Expr) *AssignStmt {
	return &AssignStmt{spanned{Cover(target, value)}, op, target, value}
}

func (a *AssignStmt) String() string {
	return parenthesize("assign", text(a.Op.String()), a.Target, a.Value).String()
}

func (a *AssignStmt) Children() []Node { return children(a.Target, a.Value) }

// LabeledStmt is `label name: loop`.
type LabeledStmt struct {
	spanned
	Label *Ident
	Stmt  Stmt
}

func NewLabeledStmt(labelTok token.Token, label *Ident, stmt Stmt) *LabeledStmt {
	return &LabeledStmt{spanned{token.Join(labelTok.Span, stmt.Span())}, label, stmt}
}

func (l *LabeledStmt) String() string   { return parenthesize("label", l.Label, l.Stmt).String() }
func (l *LabeledStmt) Children() []Node { return children(l.Label, l.Stmt) }

// BadStmt covers tokens discarded while recovering from a syntax error.
type BadStmt struct {
	spanned
}

func NewBadStmt(span token.Span) *BadStmt {
	return &BadStmt{spanned{span}}
}

func (b *BadStmt) String() string   { return "(bad)" }
func (b *BadStmt) Children() []Node { return nil }

func (*ExprStmt) stmtNode()     {}
func (*DeclStmt) stmtNode()     {}
func (*Block) stmtNode()        {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*ForStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()    {}
func (*MatchStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*DeferStmt) stmtNode()    {}
func (*AssignStmt) stmtNode()   {}
func (*LabeledStmt) stmtNode()  {}
func (*BadStmt) stmtNode()      {}

// Package ast defines the syntax tree produced by the parser.
//
// Every node category is a sealed interface: the unexported marker methods keep
// other packages from adding variants, so a type switch over the types in this
// package covers the whole tree. Spans are set by the constructors and are read
// through Span; nodes are never modified after construction. Later passes keep
// their results in side tables keyed by node pointer.
package ast

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/lumen/token"
)

type Node interface {
	fmt.Stringer
	Span() token.Span
	// Children returns the owned child nodes in source order.
	Children() []Node
}

type Decl interface {
	Node
	declNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

type Type interface {
	Node
	typeNode()
}

type Pattern interface {
	Node
	patternNode()
}

// spanned is embedded by every node.
type spanned struct {
	span token.Span
}

func (s spanned) Span() token.Span {
	return s.span
}

// File is the root of one compilation unit.
type File struct {
	spanned
	Name  string
	Decls []Decl
}

func NewFile(span token.Span, name string, decls []Decl) *File {
	return &File{spanned{span}, name, decls}
}

func (f *File) String() string {
	return parenthesize("file", concat(f.Decls)).String()
}

func (f *File) Children() []Node {
	return list(f.Decls)
}

// Cover returns the smallest span covering every non-nil node.
func Cover(nodes ...Node) token.Span {
	var s token.Span
	for _, n := range nodes {
		if !isNil(n) {
			s = token.Join(s, n.Span())
		}
	}
	return s
}

// text is a fmt.Stringer for literal pieces of a rendering.
type text string

func (t text) String() string {
	return string(t)
}

// opt renders n, or `_` when n is absent.
func opt(n Node) fmt.Stringer {
	if isNil(n) {
		return text("_")
	}
	return n
}

// isNil also catches nil pointers of the node types stored in optional fields.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Ident:
		return v == nil
	case *Block:
		return v == nil
	case *Literal:
		return v == nil
	case *NamedType:
		return v == nil
	}
	return false
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}

// group renders elems as one parenthesized list without a head, `()` when empty.
func group[T fmt.Stringer](elems []T) fmt.Stringer {
	return parenthesize("", concat(elems))
}

// list converts a typed node slice into []Node.
func list[T Node](elems []T) []Node {
	out := make([]Node, 0, len(elems))
	for _, e := range elems {
		out = append(out, e)
	}
	return out
}

// children collects the non-nil nodes among ns.
func children(ns ...Node) []Node {
	out := make([]Node, 0, len(ns))
	for _, n := range ns {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}

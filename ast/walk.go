package ast

import (
	"errors"
	"fmt"
)

// Inspect traverses the tree rooted at n in depth-first order. If f returns
// false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, f)
	}
}

// Fold threads err through a pre-order traversal. f receives the error
// accumulated so far and returns the new one.
func Fold(n Node, err error, f func(Node, error) error) error {
	if isNil(n) {
		return err
	}
	err = f(n, err)
	for _, c := range n.Children() {
		err = Fold(c, err, f)
	}
	return err
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// SpanError reports a child whose span escapes its parent or overlaps a sibling.
type SpanError struct {
	Parent Node
	Child  Node
	Reason string
}

func (e SpanError) Error() string {
	return fmt.Sprintf("%s: %s: parent %T [%d,%d) child %T [%d,%d)",
		e.Child.Span(), e.Reason,
		e.Parent, e.Parent.Span().Offset, e.Parent.Span().EndOffset,
		e.Child, e.Child.Span().Offset, e.Child.Span().EndOffset)
}

// Verify checks that every node's span contains the spans of its children and
// that siblings appear in source order without overlapping.
func Verify(n Node) error {
	return Fold(n, nil, func(parent Node, err error) error {
		prevEnd := -1
		for _, child := range parent.Children() {
			ps, cs := parent.Span(), child.Span()
			if !ps.Contains(cs) {
				err = errors.Join(err, SpanError{parent, child, "child outside parent"})
			}
			if cs.Offset < prevEnd {
				err = errors.Join(err, SpanError{parent, child, "child overlaps previous sibling"})
			}
			prevEnd = cs.EndOffset
		}
		return err
	})
}

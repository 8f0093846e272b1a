// Package testkit holds structural invariant checks shared by tests.
// The checks return errors instead of taking *testing.T so fuzz targets
// and benchmarks can reuse them.
package testkit

import (
	"fmt"

	"volta/internal/source"
	"volta/internal/syntax"
)

// CheckNode runs structural invariants over a subtree:
// 1) every child index below ChildCount resolves without panicking
// 2) list nodes are homogeneous: all tokens, all nodes, or a strict
// element/separator interleave with nodes at even slots
// 3) non-missing tokens within one buffer appear at nondecreasing offsets
func CheckNode(n syntax.SyntaxNode) error {
	c := checker{lastOffset: map[source.BufferID]uint32{}}
	return c.node(n)
}

// CheckRoundTrip verifies a subtree reproduces its source byte for byte.
func CheckRoundTrip(n syntax.SyntaxNode, want string) error {
	if err := CheckNode(n); err != nil {
		return err
	}
	if got := syntax.FullText(n); got != want {
		return fmt.Errorf("full text mismatch: got %q want %q", got, want)
	}
	return nil
}

type checker struct {
	// last seen token offset per buffer, for the ordering check
	lastOffset map[source.BufferID]uint32
}

func (c *checker) node(n syntax.SyntaxNode) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	count := n.ChildCount()
	if count < 0 {
		return fmt.Errorf("%v: negative child count %d", n.Kind(), count)
	}

	children, err := c.collect(n, count)
	if err != nil {
		return err
	}
	if n.Kind() == syntax.KindList {
		if err := c.listShape(children); err != nil {
			return fmt.Errorf("%v: %w", n.Kind(), err)
		}
	}

	for i, child := range children {
		if child.IsNull() {
			continue
		}
		if child.IsToken() {
			if err := c.token(child.Token()); err != nil {
				return fmt.Errorf("%v child %d: %w", n.Kind(), i, err)
			}
			continue
		}
		if err := c.node(child.Node()); err != nil {
			return fmt.Errorf("%v child %d: %w", n.Kind(), i, err)
		}
	}
	return nil
}

func (c *checker) collect(n syntax.SyntaxNode, count int) (children []syntax.TokenOrSyntax, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: Child panicked below ChildCount=%d: %v", n.Kind(), count, r)
		}
	}()
	for i := 0; i < count; i++ {
		children = append(children, n.Child(i))
	}
	return children, nil
}

func (c *checker) listShape(children []syntax.TokenOrSyntax) error {
	var tokens, nodes int
	for _, child := range children {
		if child.IsToken() {
			tokens++
		} else {
			nodes++
		}
	}
	if tokens == 0 || nodes == 0 {
		return nil
	}
	// Mixed children mean a separated list: nodes at even slots, separator
	// tokens at odd ones.
	for i, child := range children {
		if i%2 == 0 && child.IsToken() {
			return fmt.Errorf("separator token at element slot %d", i)
		}
		if i%2 == 1 && !child.IsToken() {
			return fmt.Errorf("element node at separator slot %d", i)
		}
	}
	return nil
}

func (c *checker) token(t *syntax.Token) error {
	loc := t.Location()
	if t.IsMissing() {
		if t.RawText() != "" {
			return fmt.Errorf("missing token with raw text %q", t.RawText())
		}
		return nil
	}
	if last, ok := c.lastOffset[loc.Buffer]; ok && loc.Offset < last {
		return fmt.Errorf("token %v at %d:%d behind previous offset %d",
			t.Kind(), loc.Buffer, loc.Offset, last)
	}
	c.lastOffset[loc.Buffer] = loc.Offset
	return nil
}

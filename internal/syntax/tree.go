package syntax

import (
	"volta/internal/diag"
)

// Tree is the external-facing aggregate for one parse: it owns the factory
// (and through it every arena), the root node, and the diagnostics the
// parse produced. The tree is immutable once built; readers may share it
// across goroutines freely.
type Tree struct {
	factory *Factory
	root    SyntaxNode
	diags   *diag.Bag
}

// NewTree binds a parsed root to the factory that allocated it and to the
// session's diagnostics bag. A nil bag gets an empty one so Diagnostics
// never returns through a nil receiver.
func NewTree(root SyntaxNode, factory *Factory, diags *diag.Bag) *Tree {
	if diags == nil {
		diags = diag.NewBag(0)
	}
	return &Tree{factory: factory, root: root, diags: diags}
}

// Root returns the root node of the parse.
func (t *Tree) Root() SyntaxNode { return t.root }

// Factory returns the arena owner bound to this tree.
func (t *Tree) Factory() *Factory { return t.factory }

// Diagnostics returns the diagnostics collected during the parse.
func (t *Tree) Diagnostics() []diag.Diagnostic { return t.diags.Items() }

// HasErrors reports whether the parse produced error-severity diagnostics.
func (t *Tree) HasErrors() bool { return t.diags.HasErrors() }

// Text regenerates the source without trivia.
func (t *Tree) Text() string { return Text(t.root) }

// FullText reproduces the original input byte for byte.
func (t *Tree) FullText() string { return FullText(t.root) }

package syntax

import (
	"strings"
)

// SyntaxNode is the polymorphic base of the tree. Concrete node types store
// typed child fields and expose them positionally through Child; generic
// tree walkers never need to know the concrete type.
type SyntaxNode interface {
	Kind() SyntaxKind
	// ChildCount is the number of positional children.
	ChildCount() int
	// Child returns the i-th child for 0 <= i < ChildCount.
	// Out-of-range indices panic.
	Child(i int) TokenOrSyntax
}

// TokenOrSyntax is a tagged reference to either a token or a node. It never
// owns its referent; the arena does. The zero value is a null token
// reference.
type TokenOrSyntax struct {
	token   *Token
	node    SyntaxNode
	isToken bool
}

// TokenRef wraps a token reference. A nil token yields a null reference.
func TokenRef(t *Token) TokenOrSyntax {
	return TokenOrSyntax{token: t, isToken: true}
}

// NodeRef wraps a node reference.
func NodeRef(n SyntaxNode) TokenOrSyntax {
	return TokenOrSyntax{node: n}
}

// NullToken is the explicit null token reference.
func NullToken() TokenOrSyntax {
	return TokenOrSyntax{isToken: true}
}

// IsToken reports whether the reference holds a token (possibly null).
func (ts TokenOrSyntax) IsToken() bool { return ts.isToken }

// IsNull reports whether the reference points at nothing.
func (ts TokenOrSyntax) IsNull() bool {
	if ts.isToken {
		return ts.token == nil
	}
	return ts.node == nil
}

// Token returns the referenced token; panics for node references.
func (ts TokenOrSyntax) Token() *Token {
	if !ts.isToken {
		panic("syntax: Token on a node reference")
	}
	return ts.token
}

// Node returns the referenced node; panics for token references.
func (ts TokenOrSyntax) Node() SyntaxNode {
	if ts.isToken {
		panic("syntax: Node on a token reference")
	}
	return ts.node
}

// Text regenerates the node's source text without trivia.
func Text(n SyntaxNode) string {
	var sb strings.Builder
	writeNode(&sb, n, false, false)
	return sb.String()
}

// FullText regenerates the node's source text including trivia: a
// byte-exact slice of the original input. Missing tokens contribute
// nothing.
func FullText(n SyntaxNode) string {
	var sb strings.Builder
	writeNode(&sb, n, true, false)
	return sb.String()
}

// FullTextWithMissing is FullText plus the text missing tokens would have
// occupied; meant for diagnostic visualization, not reconstruction.
func FullTextWithMissing(n SyntaxNode) string {
	var sb strings.Builder
	writeNode(&sb, n, true, true)
	return sb.String()
}

func writeNode(sb *strings.Builder, n SyntaxNode, includeTrivia, includeMissing bool) {
	if n == nil {
		return
	}
	for i, nc := 0, n.ChildCount(); i < nc; i++ {
		child := n.Child(i)
		if child.IsNull() {
			continue
		}
		if child.IsToken() {
			child.Token().writeTo(sb, includeTrivia, includeMissing)
		} else {
			writeNode(sb, child.Node(), includeTrivia, includeMissing)
		}
	}
}

// FirstToken descends leftmost children until it reaches a token: the
// cheap way to find where a node starts. Returns nil for token-free
// subtrees (e.g. empty lists).
func FirstToken(n SyntaxNode) *Token {
	if n == nil {
		return nil
	}
	for i, nc := 0, n.ChildCount(); i < nc; i++ {
		child := n.Child(i)
		if child.IsNull() {
			continue
		}
		if child.IsToken() {
			return child.Token()
		}
		if tok := FirstToken(child.Node()); tok != nil {
			return tok
		}
	}
	return nil
}

// As is the checked downcast: it returns the node as T when the dynamic
// type matches. The unchecked hot-path form is a plain type assertion,
// guarded by checking Kind first.
func As[T SyntaxNode](n SyntaxNode) (T, bool) {
	t, ok := n.(T)
	return t, ok
}

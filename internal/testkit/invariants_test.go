package testkit

import (
	"strings"
	"testing"

	"volta/internal/source"
	"volta/internal/syntax"
)

type fakeNode struct {
	kind     syntax.SyntaxKind
	children []syntax.TokenOrSyntax
}

func (n *fakeNode) Kind() syntax.SyntaxKind { return n.kind }
func (n *fakeNode) ChildCount() int         { return len(n.children) }
func (n *fakeNode) Child(i int) syntax.TokenOrSyntax {
	return n.children[i]
}

// lyingNode claims one more child than it has.
type lyingNode struct{ fakeNode }

func (n *lyingNode) ChildCount() int { return len(n.children) + 1 }

func at(off uint32) source.Location {
	return source.Location{Buffer: 1, Offset: off}
}

func TestCheckNode_WellFormed(t *testing.T) {
	f := syntax.NewFactory()
	n := &fakeNode{
		kind: syntax.KindAddExpression,
		children: []syntax.TokenOrSyntax{
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(0), "a", nil)),
			syntax.TokenRef(f.Token(syntax.TokenPlus, at(1), "+", nil)),
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(2), "b", nil)),
			syntax.NullToken(),
		},
	}
	if err := CheckNode(n); err != nil {
		t.Fatalf("CheckNode: %v", err)
	}
	if err := CheckRoundTrip(n, "a+b"); err != nil {
		t.Fatalf("CheckRoundTrip: %v", err)
	}
}

func TestCheckNode_ChildCountLies(t *testing.T) {
	f := syntax.NewFactory()
	n := &lyingNode{fakeNode{
		kind: syntax.KindIdentifierName,
		children: []syntax.TokenOrSyntax{
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(0), "x", nil)),
		},
	}}
	err := CheckNode(n)
	if err == nil || !strings.Contains(err.Error(), "Child panicked") {
		t.Fatalf("err = %v, want child panic report", err)
	}
}

func TestCheckNode_TokenOrderRegression(t *testing.T) {
	f := syntax.NewFactory()
	n := &fakeNode{
		kind: syntax.KindAddExpression,
		children: []syntax.TokenOrSyntax{
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(5), "b", nil)),
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(2), "a", nil)),
		},
	}
	err := CheckNode(n)
	if err == nil || !strings.Contains(err.Error(), "behind previous offset") {
		t.Fatalf("err = %v, want ordering violation", err)
	}
}

func TestCheckNode_SeparatedShape(t *testing.T) {
	f := syntax.NewFactory()
	elem := &fakeNode{
		kind: syntax.KindIdentifierName,
		children: []syntax.TokenOrSyntax{
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(0), "a", nil)),
		},
	}
	// A list with a token in an element slot.
	bad := &fakeNode{
		kind: syntax.KindList,
		children: []syntax.TokenOrSyntax{
			syntax.TokenRef(f.Token(syntax.TokenComma, at(1), ",", nil)),
			syntax.NodeRef(elem),
		},
	}
	err := CheckNode(bad)
	if err == nil || !strings.Contains(err.Error(), "separator token at element slot") {
		t.Fatalf("err = %v, want interleave violation", err)
	}
}

func TestCheckRoundTrip_Mismatch(t *testing.T) {
	f := syntax.NewFactory()
	n := &fakeNode{
		kind: syntax.KindIdentifierName,
		children: []syntax.TokenOrSyntax{
			syntax.TokenRef(f.Token(syntax.TokenIdentifier, at(0), "x", nil)),
		},
	}
	if err := CheckRoundTrip(n, "y"); err == nil {
		t.Fatal("mismatched source should be reported")
	}
}

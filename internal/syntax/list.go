package syntax

// SyntaxList is a homogeneous ordered sequence of node references backed by
// one arena-allocated array. It is itself a node of kind List, so generic
// walkers traverse straight through it.
type SyntaxList[T SyntaxNode] struct {
	elems []SyntaxNode
}

func (l *SyntaxList[T]) Kind() SyntaxKind { return KindList }
func (l *SyntaxList[T]) ChildCount() int  { return len(l.elems) }

func (l *SyntaxList[T]) Child(i int) TokenOrSyntax {
	return NodeRef(l.elems[i])
}

// Count equals ChildCount for plain lists.
func (l *SyntaxList[T]) Count() int { return len(l.elems) }

// At returns the i-th element with its concrete type.
func (l *SyntaxList[T]) At(i int) T {
	return l.elems[i].(T)
}

// TokenList is SyntaxList's shape specialized to token references, e.g. a
// qualifier or modifier list.
type TokenList struct {
	elems []*Token
}

func (l *TokenList) Kind() SyntaxKind { return KindList }
func (l *TokenList) ChildCount() int  { return len(l.elems) }

func (l *TokenList) Child(i int) TokenOrSyntax {
	return TokenRef(l.elems[i])
}

func (l *TokenList) Count() int { return len(l.elems) }

func (l *TokenList) At(i int) *Token {
	return l.elems[i]
}

// SeparatedSyntaxList models comma- or semicolon-delimited productions.
// The backing array interleaves elements and separator tokens: elements at
// even physical slots, separators at odd ones. Separators keep their trivia
// so reprinting stays exact; error recovery may synthesize missing
// separators to preserve the interleave.
type SeparatedSyntaxList[T SyntaxNode] struct {
	elems []TokenOrSyntax
}

func (l *SeparatedSyntaxList[T]) Kind() SyntaxKind { return KindList }
func (l *SeparatedSyntaxList[T]) ChildCount() int  { return len(l.elems) }

func (l *SeparatedSyntaxList[T]) Child(i int) TokenOrSyntax {
	return l.elems[i]
}

// Count is the number of logical elements: ceil(physical/2).
func (l *SeparatedSyntaxList[T]) Count() int {
	return (len(l.elems) + 1) / 2
}

// At returns the i-th logical element, stored at physical slot 2*i.
func (l *SeparatedSyntaxList[T]) At(i int) T {
	e := l.elems[2*i]
	if e.IsToken() {
		panic("syntax: separator token in an element slot")
	}
	return e.Node().(T)
}

// Separator returns the token after the i-th element, or nil when the list
// ends without a trailing separator.
func (l *SeparatedSyntaxList[T]) Separator(i int) *Token {
	p := 2*i + 1
	if p >= len(l.elems) {
		return nil
	}
	return l.elems[p].Token()
}

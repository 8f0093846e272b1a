package syntax

import (
	"volta/internal/arena"
	"volta/internal/bignum"
	"volta/internal/source"
)

// Factory owns the arenas behind one parse session. Every token, trivia
// array, and list backing array comes out of it; tearing the factory down
// (dropping it) releases the whole tree at once.
type Factory struct {
	tokens    *arena.Pool[Token]
	trivia    *arena.Pool[Trivia]
	nodes     *arena.Pool[SyntaxNode]
	refs      *arena.Pool[TokenOrSyntax]
	tokenPtrs *arena.Pool[*Token]
}

// NewFactory creates a factory with default chunk sizes.
func NewFactory() *Factory {
	return &Factory{
		tokens:    arena.NewPool[Token](1 << 10),
		trivia:    arena.NewPool[Trivia](1 << 10),
		nodes:     arena.NewPool[SyntaxNode](1 << 8),
		refs:      arena.NewPool[TokenOrSyntax](1 << 8),
		tokenPtrs: arena.NewPool[*Token](1 << 6),
	}
}

// TokenCount reports how many tokens the factory has allocated.
func (f *Factory) TokenCount() int { return f.tokens.Len() }

func (f *Factory) newToken(t Token, trivia []Trivia) *Token {
	t.trivia = f.trivia.NewSlice(trivia)
	return f.tokens.New(t)
}

// Token builds a plain token with no typed payload.
func (f *Factory) Token(kind TokenKind, loc source.Location, raw string, trivia []Trivia) *Token {
	return f.newToken(Token{kind: kind, loc: loc, raw: raw}, trivia)
}

// MissingToken synthesizes the zero-length token error recovery inserts
// where an expected token was absent. The location is the insertion point;
// trivia may be rehomed onto it.
func (f *Factory) MissingToken(kind TokenKind, loc source.Location, trivia []Trivia) *Token {
	return f.newToken(Token{kind: kind, loc: loc, missing: true}, trivia)
}

// TextToken builds a token whose decoded value differs from its raw bytes:
// string literals with escapes, escaped identifiers, and the like.
func (f *Factory) TextToken(kind TokenKind, loc source.Location, raw, value string, trivia []Trivia) *Token {
	return f.newToken(Token{
		kind: kind, loc: loc, raw: raw,
		payload: payloadText, text: value,
	}, trivia)
}

// DirectiveToken builds a directive name token carrying the syntax kind of
// the directive it introduces.
func (f *Factory) DirectiveToken(loc source.Location, raw string, directive SyntaxKind, trivia []Trivia) *Token {
	return f.newToken(Token{
		kind: TokenDirectiveName, loc: loc, raw: raw,
		payload: payloadSyntaxKind, nested: directive,
	}, trivia)
}

// IntegerToken builds an integer literal with its arbitrary-precision value.
func (f *Factory) IntegerToken(loc source.Location, raw string, value bignum.BigUint, trivia []Trivia) *Token {
	return f.newToken(Token{
		kind: TokenIntegerLiteral, loc: loc, raw: raw,
		payload: payloadInteger, integer: value,
	}, trivia)
}

// RealToken builds a real or time literal; unit TimeUnitNone means a plain
// real.
func (f *Factory) RealToken(loc source.Location, raw string, value float64, unit TimeUnit, trivia []Trivia) *Token {
	kind := TokenRealLiteral
	if unit != TimeUnitNone {
		kind = TokenTimeLiteral
	}
	return f.newToken(Token{
		kind: kind, loc: loc, raw: raw,
		payload: payloadReal, real: value, unit: unit,
	}, trivia)
}

// BaseToken builds the base specifier of a based integer literal ('b, 'sd,
// ...), carrying radix and signedness.
func (f *Factory) BaseToken(loc source.Location, raw string, base LiteralBase, signed bool, trivia []Trivia) *Token {
	return f.newToken(Token{
		kind: TokenIntegerBase, loc: loc, raw: raw,
		payload: payloadBase, base: base, signed: signed,
	}, trivia)
}

// UnbasedUnsizedToken builds a '0 / '1 / 'x / 'z literal carrying one
// 4-state bit.
func (f *Factory) UnbasedUnsizedToken(loc source.Location, raw string, bit Logic, trivia []Trivia) *Token {
	return f.newToken(Token{
		kind: TokenUnbasedUnsizedLiteral, loc: loc, raw: raw,
		payload: payloadLogic, logic: bit,
	}, trivia)
}

// SkippedTokensTrivia copies tokens discarded by error recovery into arena
// storage and wraps them as trivia.
func (f *Factory) SkippedTokensTrivia(tokens []*Token) Trivia {
	return NewSkippedTokensTrivia(f.tokenPtrs.NewSlice(tokens))
}

// TokenList copies elems into arena storage and returns the list node.
func (f *Factory) TokenList(elems []*Token) *TokenList {
	return &TokenList{elems: f.tokenPtrs.NewSlice(elems)}
}

// NewSyntaxList copies elems into arena storage and returns the list node.
func NewSyntaxList[T SyntaxNode](f *Factory, elems []T) *SyntaxList[T] {
	backing := make([]SyntaxNode, len(elems))
	for i, e := range elems {
		backing[i] = e
	}
	return &SyntaxList[T]{elems: f.nodes.NewSlice(backing)}
}

// NewSeparatedList copies the element/separator interleave into arena
// storage. Even physical slots must hold nodes and odd slots tokens;
// a malformed interleave is a parser bug and panics.
func NewSeparatedList[T SyntaxNode](f *Factory, elems []TokenOrSyntax) *SeparatedSyntaxList[T] {
	for i, e := range elems {
		if i%2 == 0 {
			if e.IsToken() {
				panic("syntax: separator token in an element slot")
			}
		} else if !e.IsToken() {
			panic("syntax: element node in a separator slot")
		}
	}
	return &SeparatedSyntaxList[T]{elems: f.refs.NewSlice(elems)}
}

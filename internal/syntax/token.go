package syntax

import (
	"strings"

	"fortio.org/safecast"

	"volta/internal/bignum"
	"volta/internal/source"
)

// payloadKind discriminates the typed value a token was constructed with.
type payloadKind uint8

const (
	payloadNone payloadKind = iota
	payloadText
	payloadSyntaxKind
	payloadLogic
	payloadInteger
	payloadReal
	payloadBase
)

var payloadNames = [...]string{
	payloadNone:       "none",
	payloadText:       "text",
	payloadSyntaxKind: "syntax kind",
	payloadLogic:      "logic",
	payloadInteger:    "integer",
	payloadReal:       "real",
	payloadBase:       "base",
}

// Token is one lexical unit. Tokens are created through a Factory, live in
// its arena, and never change afterwards.
type Token struct {
	kind    TokenKind
	missing bool
	payload payloadKind
	loc     source.Location
	raw     string
	trivia  []Trivia

	// payload storage; exactly one group is meaningful, per payload.
	text    string
	nested  SyntaxKind
	logic   Logic
	integer bignum.BigUint
	real    float64
	unit    TimeUnit
	base    LiteralBase
	signed  bool
}

func (t *Token) Kind() TokenKind { return t.kind }

// IsMissing reports whether error recovery synthesized the token. Missing
// tokens occupy a valid insertion point but contribute no source bytes.
func (t *Token) IsMissing() bool { return t.missing }

// Location returns the token's start in the external buffer space.
func (t *Token) Location() source.Location { return t.loc }

// RawText returns the literal source bytes, empty for missing tokens.
func (t *Token) RawText() string { return t.raw }

// Range covers [location, location+len(raw)).
func (t *Token) Range() source.Range {
	n, err := safecast.Conv[uint32](len(t.raw))
	if err != nil {
		panic("syntax: token text longer than 4 GiB")
	}
	return source.NewRange(t.loc, n)
}

// Trivia returns the ordered trivia preceding the token.
// Callers must not modify the returned slice.
func (t *Token) Trivia() []Trivia { return t.trivia }

// ValueText returns the decoded form of the token: unescaped string
// contents, directive spelling, and so on. Tokens without a text payload
// fall back to their raw text.
func (t *Token) ValueText() string {
	if t.payload == payloadText {
		return t.text
	}
	return t.raw
}

// IsOnSameLine reports whether the token continues the line of the token
// before it, i.e. none of its trivia breaks the line.
func (t *Token) IsOnSameLine() bool {
	for i := range t.trivia {
		if t.trivia[i].breaksLine() {
			return false
		}
	}
	return true
}

// Equals compares tokens structurally: same kind and same raw text,
// independent of location. Used for redefinition-style checks.
func (t *Token) Equals(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.kind == other.kind && t.raw == other.raw
}

// IntValue returns the integer-literal payload.
func (t *Token) IntValue() bignum.BigUint {
	t.checkPayload(payloadInteger)
	return t.integer
}

// RealValue returns the real-literal payload and its time unit
// (TimeUnitNone for plain reals).
func (t *Token) RealValue() (float64, TimeUnit) {
	t.checkPayload(payloadReal)
	return t.real, t.unit
}

// BitValue returns the 4-state payload of an unbased unsized literal.
func (t *Token) BitValue() Logic {
	t.checkPayload(payloadLogic)
	return t.logic
}

// Base returns the radix and signedness payload of an integer base token.
func (t *Token) Base() (LiteralBase, bool) {
	t.checkPayload(payloadBase)
	return t.base, t.signed
}

// DirectiveKind returns the nested syntax kind payload of a directive
// name token.
func (t *Token) DirectiveKind() SyntaxKind {
	t.checkPayload(payloadSyntaxKind)
	return t.nested
}

// checkPayload guards typed accessors; reading through the wrong accessor
// is a caller bug, not a recoverable condition.
func (t *Token) checkPayload(want payloadKind) {
	if t.payload != want {
		panic("syntax: token holds a " + payloadNames[t.payload] +
			" payload, accessed as " + payloadNames[want])
	}
}

// writeTo appends the token's text to sb. Missing tokens and their trivia
// are dropped unless includeMissing is set.
func (t *Token) writeTo(sb *strings.Builder, includeTrivia, includeMissing bool) {
	if t.missing && !includeMissing {
		return
	}
	if includeTrivia {
		for i := range t.trivia {
			t.trivia[i].writeTo(sb, includeMissing)
		}
	}
	sb.WriteString(t.raw)
}

func (t *Token) String() string {
	var sb strings.Builder
	t.writeTo(&sb, false, false)
	return sb.String()
}

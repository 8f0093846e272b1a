package syntax

import (
	"strings"

	"volta/internal/source"
)

// TriviaKind classifies non-semantic source material.
type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
	TriviaLineComment
	TriviaBlockComment
	// TriviaDisabledText is source skipped by a false `ifdef branch.
	TriviaDisabledText
	// TriviaSkippedTokens wraps tokens discarded by error recovery.
	TriviaSkippedTokens
	// TriviaDirective carries a re-lexed directive as a syntax node.
	TriviaDirective
)

var triviaKindNames = [...]string{
	TriviaWhitespace:    "Whitespace",
	TriviaEndOfLine:     "EndOfLine",
	TriviaLineComment:   "LineComment",
	TriviaBlockComment:  "BlockComment",
	TriviaDisabledText:  "DisabledText",
	TriviaSkippedTokens: "SkippedTokens",
	TriviaDirective:     "Directive",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaKindNames) {
		return triviaKindNames[k]
	}
	return "TriviaKind(?)"
}

// Trivia is one piece of non-semantic source material attached to the token
// that follows it. It takes one of three shapes, selected by Kind:
// raw text at a location (simple kinds), a syntax node (TriviaDirective),
// or a list of skipped tokens (TriviaSkippedTokens).
type Trivia struct {
	kind    TriviaKind
	loc     source.Location
	text    string
	syntax  SyntaxNode
	skipped []*Token
}

// NewTrivia builds simple raw-text trivia.
func NewTrivia(kind TriviaKind, loc source.Location, text string) Trivia {
	if kind == TriviaDirective || kind == TriviaSkippedTokens {
		panic("syntax: structured trivia kind requires a dedicated constructor")
	}
	return Trivia{kind: kind, loc: loc, text: text}
}

// NewDirectiveTrivia wraps a re-lexed directive node as trivia.
func NewDirectiveTrivia(node SyntaxNode) Trivia {
	return Trivia{kind: TriviaDirective, syntax: node}
}

// NewSkippedTokensTrivia wraps tokens that error recovery threw away so
// that the original text survives in the tree.
func NewSkippedTokensTrivia(tokens []*Token) Trivia {
	return Trivia{kind: TriviaSkippedTokens, skipped: tokens}
}

func (t Trivia) Kind() TriviaKind { return t.kind }

// RawText returns the literal source text of simple trivia.
func (t Trivia) RawText() string {
	switch t.kind {
	case TriviaDirective, TriviaSkippedTokens:
		panic("syntax: RawText on structured trivia")
	}
	return t.text
}

// Location returns the start of simple trivia in its buffer.
func (t Trivia) Location() source.Location {
	switch t.kind {
	case TriviaDirective, TriviaSkippedTokens:
		panic("syntax: Location on structured trivia")
	}
	return t.loc
}

// Syntax returns the directive node of TriviaDirective trivia.
func (t Trivia) Syntax() SyntaxNode {
	if t.kind != TriviaDirective {
		panic("syntax: Syntax on non-directive trivia")
	}
	return t.syntax
}

// SkippedTokens returns the token list of TriviaSkippedTokens trivia.
func (t Trivia) SkippedTokens() []*Token {
	if t.kind != TriviaSkippedTokens {
		panic("syntax: SkippedTokens on non-skipped trivia")
	}
	return t.skipped
}

// breaksLine reports whether the trivia spans onto a new line, which makes
// the following token start a fresh line.
func (t Trivia) breaksLine() bool {
	switch t.kind {
	case TriviaEndOfLine, TriviaDisabledText:
		return t.kind == TriviaEndOfLine || strings.ContainsRune(t.text, '\n')
	case TriviaBlockComment:
		return strings.ContainsRune(t.text, '\n')
	case TriviaDirective:
		// Directives consume their whole line.
		return true
	default:
		return false
	}
}

// writeTo appends the trivia's source text to sb.
func (t Trivia) writeTo(sb *strings.Builder, includeMissing bool) {
	switch t.kind {
	case TriviaDirective:
		writeNode(sb, t.syntax, true, includeMissing)
	case TriviaSkippedTokens:
		for _, tok := range t.skipped {
			tok.writeTo(sb, true, includeMissing)
		}
	default:
		sb.WriteString(t.text)
	}
}

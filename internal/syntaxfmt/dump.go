// Package syntaxfmt renders syntax trees as indented text for debugging
// and golden tests. Output is plain ASCII, one child per line, so diffs
// stay readable.
package syntaxfmt

import (
	"fmt"
	"io"
	"strings"

	"volta/internal/syntax"
)

// Options configures the dump.
type Options struct {
	// IncludeTrivia adds a line per piece of leading trivia.
	IncludeTrivia bool
	// IncludeMissing lists tokens synthesized by error recovery; they are
	// elided otherwise.
	IncludeMissing bool
	// MaxDepth caps recursion; 0 means unlimited. Pruned subtrees render
	// as "...".
	MaxDepth int
}

// Dump renders the subtree rooted at n.
func Dump(n syntax.SyntaxNode, opts Options) string {
	var sb strings.Builder
	d := dumper{w: &sb, opts: opts}
	d.node(n, 0)
	return sb.String()
}

// Write renders the subtree to w, for streaming large trees.
func Write(w io.Writer, n syntax.SyntaxNode, opts Options) error {
	d := dumper{w: w, opts: opts}
	d.node(n, 0)
	return d.err
}

type dumper struct {
	w    io.Writer
	opts Options
	err  error
}

func (d *dumper) line(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) node(n syntax.SyntaxNode, depth int) {
	if n == nil {
		d.line(depth, "<nil>")
		return
	}
	d.line(depth, "%v", n.Kind())
	if d.opts.MaxDepth > 0 && depth+1 >= d.opts.MaxDepth {
		if n.ChildCount() > 0 {
			d.line(depth+1, "...")
		}
		return
	}
	for i, nc := 0, n.ChildCount(); i < nc; i++ {
		child := n.Child(i)
		switch {
		case child.IsNull():
			d.line(depth+1, "<null>")
		case child.IsToken():
			d.token(child.Token(), depth+1)
		default:
			d.node(child.Node(), depth+1)
		}
	}
}

func (d *dumper) token(t *syntax.Token, depth int) {
	if d.opts.IncludeTrivia {
		for _, tr := range t.Trivia() {
			d.trivia(tr, depth)
		}
	}
	if t.IsMissing() {
		if d.opts.IncludeMissing {
			d.line(depth, "%v <missing> @%v", t.Kind(), t.Range())
		}
		return
	}
	d.line(depth, "%v %q @%v", t.Kind(), t.RawText(), t.Range())
}

func (d *dumper) trivia(tr syntax.Trivia, depth int) {
	switch tr.Kind() {
	case syntax.TriviaDirective:
		d.line(depth, "trivia %v", tr.Kind())
		d.node(tr.Syntax(), depth+1)
	case syntax.TriviaSkippedTokens:
		d.line(depth, "trivia %v", tr.Kind())
		for _, tok := range tr.SkippedTokens() {
			d.token(tok, depth+1)
		}
	default:
		d.line(depth, "trivia %v %q", tr.Kind(), tr.RawText())
	}
}

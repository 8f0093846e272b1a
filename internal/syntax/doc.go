// Package syntax defines the lossless concrete syntax tree: trivia, tokens
// with typed payloads, the SyntaxNode interface, and the arena-backed list
// containers every parsed construct is built from.
//
// Invariants:
//   - Every trivia, token, and list backing array is allocated from the
//     Factory bound to one parse session; nothing is freed individually.
//   - The tree is immutable once built and safe to share read-only.
//   - A node's ChildCount equals the number of indices Child accepts.
//   - Missing tokens have empty raw text, a valid insertion location, and
//     contribute no bytes to reconstructed text.
//   - FullText of any node reproduces its slice of the original input
//     byte for byte.
//
// Concrete grammar node types are produced by the parser, which lives
// outside this package; tests here define their own minimal node types.
package syntax

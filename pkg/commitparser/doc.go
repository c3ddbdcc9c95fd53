// Package commitparser turns a single free-text commit message into a
// structured Commit: named header fields, body, footer, notes (e.g. breaking
// change declarations) and issue references (e.g. "closes #123").
//
// Parsing is a pure, synchronous transform. A Parser holds the configuration
// and its compiled matchers; given identical input and options the result is
// always structurally identical. Nothing is retained between calls.
//
// The decomposition of the header line is fully configurable: the pattern's
// capture groups are mapped, in order, onto the names in
// Options.HeaderCorrespondence. See Fields for the resulting three-state
// semantics (captured value, declared-but-not-captured, not declared).
package commitparser

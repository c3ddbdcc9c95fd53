package changelog

import (
	"github.com/tomavic/conventional-changelog/pkg/commitparser"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Commit is the structured form of a single commit message.
type Commit = commitparser.Commit

// Note is a labeled multi-line annotation embedded in the footer.
type Note = commitparser.Note

// Reference is a structured pointer to an external issue.
type Reference = commitparser.Reference

// Fields maps header field names to their captured values.
type Fields = commitparser.Fields

// Options configures how a commit message is decomposed.
type Options = commitparser.Options

// Parser parses commit messages according to one configuration.
type Parser = commitparser.Parser

// Stream processes a sequence of raw commit messages in arrival order.
type Stream = commitparser.Stream

// StreamOption defines a functional option for configuring a Stream.
type StreamOption = commitparser.StreamOption

// --- Errors ---

var (
	// ErrEmptyMessage reports a raw message that is empty or whitespace-only.
	ErrEmptyMessage = commitparser.ErrEmptyMessage
	// ErrMissingOptions reports a parse invoked without options.
	ErrMissingOptions = commitparser.ErrMissingOptions
)

// --- Functions ---

// DefaultOptions returns the conventional-commit defaults.
func DefaultOptions() *Options {
	return commitparser.DefaultOptions()
}

// Parse parses a single commit message with opts.
func Parse(message string, opts *Options) (*Commit, error) {
	return commitparser.Parse(message, opts)
}

// NewParser creates a reusable Parser for opts.
func NewParser(opts *Options) (*Parser, error) {
	return commitparser.New(opts)
}

// NewStream creates a Stream that parses every record with opts.
func NewStream(opts *Options, streamOpts ...StreamOption) (*Stream, error) {
	return commitparser.NewStream(opts, streamOpts...)
}

// WithStrict makes a failing record abort a Stream run.
func WithStrict(strict bool) StreamOption {
	return commitparser.WithStrict(strict)
}

// WithWarningHandler registers a callback for skipped records.
func WithWarningHandler(fn func(error)) StreamOption {
	return commitparser.WithWarningHandler(fn)
}

// SplitRecords splits a raw buffer into individual commit messages.
func SplitRecords(raw, separator string) []string {
	return commitparser.SplitRecords(raw, separator)
}

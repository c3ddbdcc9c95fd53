package commitparser

import "regexp"

// Options configures how a commit message is decomposed.
// An Options value must be treated as read-only for the duration of a parse;
// sharing one across goroutines is safe as long as nobody mutates it.
type Options struct {
	// HeaderPattern is applied to the first line of the message.
	// A nil pattern means the header never matches, so every name in
	// HeaderCorrespondence resolves to a nil field.
	HeaderPattern *regexp.Regexp

	// HeaderCorrespondence maps the pattern's capture groups, in order, to
	// field names. It may be longer than the number of capture groups; the
	// excess names are simply not declared on the resulting Commit.
	HeaderCorrespondence []string

	// NoteKeywords are the titles that open a note, e.g. "BREAKING CHANGE".
	NoteKeywords []string

	// ReferenceKeywords are the action verbs that introduce an issue
	// reference sentence, e.g. "closes" or "fixes".
	ReferenceKeywords []string

	// IssuePrefixes are the markers that introduce an issue number within a
	// reference sentence, e.g. "#" or "gh-".
	IssuePrefixes []string
}

// defaultHeaderPattern matches "type(scope): subject" headers.
var defaultHeaderPattern = regexp.MustCompile(`^(\w*)(?:\(([\w\$\.\-\* ]*)\))?\: (.*)$`)

// DefaultOptions returns the conventional-commit defaults: a
// "type(scope): subject" header, "BREAKING CHANGE" notes, the usual
// close/fix/resolve action verbs and "#" issue markers.
func DefaultOptions() *Options {
	return &Options{
		HeaderPattern:        defaultHeaderPattern,
		HeaderCorrespondence: []string{"type", "scope", "subject"},
		NoteKeywords:         []string{"BREAKING CHANGE"},
		ReferenceKeywords: []string{
			"close", "closes", "closed",
			"fix", "fixes", "fixed",
			"resolve", "resolves", "resolved",
		},
		IssuePrefixes: []string{"#"},
	}
}

// Package changelog parses free-text commit messages into structured records.
//
// It is the public facade over pkg/commitparser, which does the actual work.
//
// Philosophy:
//
// A commit message is a tiny document with a grammar nobody ever wrote down:
// a header that encodes type, scope and subject, a body, and a footer where
// breaking-change notes and issue references hide. This library makes that
// grammar explicit and configurable, and the parse a pure function: same
// message plus same options always yields the same record, with no state
// kept between calls.
//
// Features:
//
//   - **Configurable header decomposition**: a pattern plus an ordered list of
//     field names, with a three-way distinction between captured, not
//     captured, and not declared.
//   - **Notes**: multi-line annotations such as "BREAKING CHANGE:", accumulated
//     until a new note, a reference line, or end of input.
//   - **References**: action-verb sentences ("closes #1, repo#2") extracted
//     from the header, body and footer alike.
//   - **Stream adapter**: ordered, failure-isolated processing of many
//     messages with a warn-or-strict error policy.
//
// Usage:
//
//	commit, err := changelog.Parse("fix(parser): handle tabs\n\ncloses #42",
//		changelog.DefaultOptions())
//	if err != nil {
//		// ...
//	}
//	typ, _ := commit.Field("type") // "fix"
package changelog

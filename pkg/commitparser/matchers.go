package commitparser

import (
	"regexp"
	"sort"
	"strings"
)

// neverMatch is an empty character class: it cannot match anything, which is
// the closest RE2 gets to a "no keywords configured" pattern.
const neverMatch = `[^\s\S]`

// Matchers holds the compiled patterns that drive note and reference
// detection. Compile them once per configuration and reuse them; they carry
// no scan position, so sharing across parses is safe.
type Matchers struct {
	// Note matches a note-opening line: optional leading whitespace or
	// markdown bullets, a note keyword, then either ":" or whitespace and
	// the trailing text, or nothing at all.
	Note *regexp.Regexp
	// Action matches any occurrence of a reference keyword on a line.
	Action *regexp.Regexp
	// Reference extracts (repository?, issue) pairs from a sentence body.
	// The full match is the substring consumed for one reference,
	// including any separator left over from the previous match.
	Reference *regexp.Regexp
}

// Compile builds the matchers for opts. Keyword matching is
// case-insensitive; captured text keeps its original casing.
func Compile(opts *Options) Matchers {
	return Matchers{
		Note: regexp.MustCompile(
			`(?i)^[\s|*]*(` + keywordAlternation(opts.NoteKeywords) + `)(?:[:\s]+(.*))?$`),
		Action: regexp.MustCompile(
			`(?i)(` + keywordAlternation(opts.ReferenceKeywords) + `)`),
		Reference: regexp.MustCompile(
			`(?i).*?\s*([\w./-]*?)(` + keywordAlternation(opts.IssuePrefixes) + `)([\w-]*\d+)`),
	}
}

// keywordAlternation joins keywords into a regexp alternation, longest
// first so that "closes" wins over "close" at the same position.
func keywordAlternation(keywords []string) string {
	if len(keywords) == 0 {
		return neverMatch
	}
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	for i, kw := range sorted {
		sorted[i] = regexp.QuoteMeta(kw)
	}
	return strings.Join(sorted, "|")
}

package commitparser

import "strings"

// scanReferences extracts every issue reference from one line, in order of
// appearance. A line is split into "sentences": each span starts at a
// reference keyword and runs up to the next keyword occurrence or the end
// of the line. A keyword only opens a sentence when it is followed by
// whitespace, but every occurrence still terminates the preceding sentence.
func scanReferences(line string, m Matchers) []Reference {
	occurrences := m.Action.FindAllStringIndex(line, -1)
	if occurrences == nil {
		return nil
	}

	var refs []Reference
	for i, occ := range occurrences {
		start, end := occ[0], occ[1]
		if end >= len(line) || !isSpace(line[end]) {
			continue
		}

		limit := len(line)
		if i+1 < len(occurrences) {
			limit = occurrences[i+1][0]
		}

		action := line[start:end]
		body := strings.TrimLeft(line[end:limit], " \t")
		refs = append(refs, extractDetails(action, body, m)...)
	}
	return refs
}

// extractDetails runs the reference-detail matcher over a sentence body.
// Matches are consecutive and non-overlapping, so the full match of the
// second and later reference picks up the separator (", " etc.) that
// followed the previous one.
func extractDetails(action, body string, m Matchers) []Reference {
	var refs []Reference
	for _, loc := range m.Reference.FindAllStringSubmatchIndex(body, -1) {
		ref := Reference{
			Action: action,
			Issue:  body[loc[6]:loc[7]],
			Raw:    body[loc[0]:loc[1]],
		}
		if loc[2] >= 0 && loc[3] > loc[2] {
			repo := body[loc[2]:loc[3]]
			ref.Repository = &repo
		}
		refs = append(refs, ref)
	}
	return refs
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

package commitparser

import "encoding/json"

// Fields maps header field names to their captured values.
// Each name from Options.HeaderCorrespondence is in one of three states:
//
//   - key present with a non-nil value: the capture group matched
//     (the value may still be the empty string)
//   - key present with a nil value: the field was declared but the group
//     did not participate in the match (or the header did not match at all)
//   - key absent: the name was beyond the pattern's capture-group count
type Fields map[string]*string

// Note is a labeled multi-line annotation embedded in the footer,
// e.g. a breaking-change declaration.
type Note struct {
	// Title is the keyword that opened the note, casing as found.
	Title string `json:"title"`
	// Text is the keyword line's trailing content plus every continuation
	// line, each terminated by a line break. The trailing content is only
	// newline-terminated when non-empty.
	Text string `json:"text"`
}

// Reference is a structured pointer to an external issue, associated with
// the action verb that introduced it.
type Reference struct {
	// Action is the verb as written in the message, casing preserved.
	Action string `json:"action"`
	// Repository optionally qualifies the issue, e.g. "repo" in "repo#77".
	Repository *string `json:"repository"`
	// Issue is the issue number, digits only.
	Issue string `json:"issue"`
	// Raw is the exact substring consumed for this match. For the second
	// and later reference within one sentence it carries the separator
	// that preceded it, e.g. ", #123".
	Raw string `json:"raw"`
}

// Commit is the structured form of a single commit message.
type Commit struct {
	// Fields holds the named header fields produced by the header pattern.
	Fields Fields
	// Header is the original first line plus a trailing line break.
	Header string
	// Body and Footer are nil when empty, otherwise newline-terminated.
	Body   *string
	Footer *string
	// Notes and References are never nil; they are empty when absent.
	Notes      []Note
	References []Reference
}

// Field returns the captured value for name. ok is false when the field was
// not captured, whether because the group did not match or because the name
// was never declared.
func (c *Commit) Field(name string) (value string, ok bool) {
	v, declared := c.Fields[name]
	if !declared || v == nil {
		return "", false
	}
	return *v, true
}

// MarshalJSON flattens Fields next to the fixed keys, so a commit serializes
// as one flat object: {"type": ..., "scope": ..., "header": ..., ...}.
// Fixed keys win over a header field of the same name.
func (c *Commit) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Fields)+5)
	for name, v := range c.Fields {
		if v == nil {
			out[name] = nil
		} else {
			out[name] = *v
		}
	}
	out["header"] = c.Header
	out["body"] = c.Body
	out["footer"] = c.Footer
	out["notes"] = c.Notes
	out["references"] = c.References
	return json.Marshal(out)
}

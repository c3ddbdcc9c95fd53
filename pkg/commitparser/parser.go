package commitparser

import "strings"

// Parser parses commit messages according to one configuration.
// It is stateless between calls and safe for concurrent use.
type Parser struct {
	opts Options
	m    Matchers
}

// New creates a Parser for opts, compiling the matchers once.
func New(opts *Options) (*Parser, error) {
	if opts == nil {
		return nil, ErrMissingOptions
	}
	return &Parser{opts: *opts, m: Compile(opts)}, nil
}

// Parse is a convenience wrapper for one-off parses.
func Parse(message string, opts *Options) (*Commit, error) {
	p, err := New(opts)
	if err != nil {
		return nil, err
	}
	return p.Parse(message)
}

// Parse decomposes a single commit message.
// It returns ErrEmptyMessage when the message is empty or whitespace-only.
func (p *Parser) Parse(message string) (*Commit, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	lines := splitLines(message)
	header := lines[0]

	commit := &Commit{
		Fields:     p.matchHeader(header),
		Header:     header + "\n",
		Notes:      []Note{},
		References: []Reference{},
	}

	// References may appear in the header too. They never remove text from
	// it; the header stays verbatim.
	commit.References = append(commit.References, scanReferences(header, p.m)...)

	seg := segmenter{m: p.m}
	for _, line := range lines[1:] {
		seg.feed(line)
	}

	commit.Body = accumulated(&seg.body)
	commit.Footer = accumulated(&seg.footer)
	commit.Notes = append(commit.Notes, seg.notes...)
	commit.References = append(commit.References, seg.refs...)

	return commit, nil
}

// matchHeader applies the header pattern and maps capture groups onto the
// correspondence names. Names beyond the pattern's group count stay
// undeclared; when the pattern does not match, every name resolves to nil.
func (p *Parser) matchHeader(header string) Fields {
	fields := make(Fields, len(p.opts.HeaderCorrespondence))

	var loc []int
	groups := 0
	if p.opts.HeaderPattern != nil {
		loc = p.opts.HeaderPattern.FindStringSubmatchIndex(header)
		groups = p.opts.HeaderPattern.NumSubexp()
	}

	for i, name := range p.opts.HeaderCorrespondence {
		if loc == nil {
			fields[name] = nil
			continue
		}
		if i+1 > groups {
			continue
		}
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 {
			fields[name] = nil
			continue
		}
		value := header[start:end]
		fields[name] = &value
	}
	return fields
}

// splitLines splits the message into its non-blank lines, preserving order.
// Blank lines are absorbed silently; they never reach body or footer.
func splitLines(message string) []string {
	var lines []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// accumulated collapses an empty accumulator to nil.
func accumulated(b *strings.Builder) *string {
	if b.Len() == 0 {
		return nil
	}
	s := b.String()
	return &s
}

// --- Segmenter ---

type segState int

const (
	stateBody segState = iota
	stateFooter
)

// segmenter classifies the lines after the header. It is a two-state
// machine (body, footer) with an insideNote flag for multi-line note
// accumulation. The footer transition is one-way: once a note or reference
// line is seen, plain lines never return to the body.
type segmenter struct {
	m          Matchers
	state      segState
	insideNote bool

	body   strings.Builder
	footer strings.Builder
	notes  []Note
	refs   []Reference
}

// feed classifies one line. The checks run in a fixed priority order:
// note opening, then references, then note continuation, then plain
// body/footer text. Only the first matching rule applies.
func (s *segmenter) feed(line string) {
	if m := s.m.Note.FindStringSubmatch(line); m != nil {
		note := Note{Title: m[1]}
		if m[2] != "" {
			note.Text = m[2] + "\n"
		}
		s.notes = append(s.notes, note)
		s.insideNote = true
		s.state = stateFooter
		s.footer.WriteString(line + "\n")
		return
	}

	if refs := scanReferences(line, s.m); len(refs) > 0 {
		s.refs = append(s.refs, refs...)
		// A reference cancels note continuation for good: later plain
		// lines belong to the footer, not to the last note.
		s.insideNote = false
		s.state = stateFooter
		s.footer.WriteString(line + "\n")
		return
	}

	if s.insideNote {
		s.notes[len(s.notes)-1].Text += line + "\n"
		s.footer.WriteString(line + "\n")
		return
	}

	if s.state == stateBody {
		s.body.WriteString(line + "\n")
		return
	}
	s.footer.WriteString(line + "\n")
}

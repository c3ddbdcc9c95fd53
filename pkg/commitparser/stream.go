package commitparser

import "strings"

// DefaultSeparator splits concatenated commit messages, e.g. the output of
// `git log --format="%B%n%n"`.
const DefaultSeparator = "\n\n\n"

// Stream processes a sequence of raw commit messages strictly in arrival
// order, one parse in flight at a time. A failing record does not affect
// the records after it: by default it is reported to the warning handler
// and skipped, while strict mode stops the run at the first failure.
type Stream struct {
	parser *Parser
	strict bool
	warn   func(error)
}

// StreamOption defines a functional option for configuring a Stream.
type StreamOption func(*Stream)

// WithStrict makes a failing record abort the whole run instead of being
// skipped with a warning.
func WithStrict(strict bool) StreamOption {
	return func(s *Stream) {
		s.strict = strict
	}
}

// WithWarningHandler registers a callback invoked with the failure of each
// skipped record. It is ignored in strict mode.
func WithWarningHandler(fn func(error)) StreamOption {
	return func(s *Stream) {
		s.warn = fn
	}
}

// NewStream creates a Stream that parses every record with opts.
func NewStream(opts *Options, streamOpts ...StreamOption) (*Stream, error) {
	parser, err := New(opts)
	if err != nil {
		return nil, err
	}
	s := &Stream{parser: parser}
	for _, o := range streamOpts {
		o(s)
	}
	return s, nil
}

// ProcessAll parses records in order and returns the successful commits,
// also in order. In strict mode it returns the commits parsed so far
// together with the first failure.
func (s *Stream) ProcessAll(records []string) ([]*Commit, error) {
	commits := make([]*Commit, 0, len(records))
	for _, record := range records {
		commit, err := s.parser.Parse(record)
		if err != nil {
			if s.strict {
				return commits, err
			}
			if s.warn != nil {
				s.warn(err)
			}
			continue
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// SplitRecords splits a raw buffer into individual commit messages on
// separator (DefaultSeparator when empty), dropping whitespace-only records.
func SplitRecords(raw, separator string) []string {
	if separator == "" {
		separator = DefaultSeparator
	}
	var records []string
	for _, record := range strings.Split(raw, separator) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}

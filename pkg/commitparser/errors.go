package commitparser

import "errors"

// Common errors.
var (
	// ErrEmptyMessage reports a raw message that is empty or whitespace-only.
	ErrEmptyMessage = errors.New("commit message is empty")
	// ErrMissingOptions reports a parse invoked without options.
	ErrMissingOptions = errors.New("parse options are required")
)

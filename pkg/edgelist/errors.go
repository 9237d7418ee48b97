package edgelist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a line that is not two integer ids
	ErrMalformedLine = errors.New("malformed edge line")
)

// ParseError reports a problem with one line of edge-list input
type ParseError struct {
	Line  int    // 1-based line number
	Text  string // Offending line, trimmed
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("edge list line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("edge list line %d %q: %v", e.Line, e.Text, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

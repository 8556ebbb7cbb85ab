package fixtures

import (
	"errors"
	"fmt"
)

// Loading a catalog is all-or-nothing: the first failing fixture aborts the
// whole load. Failures come in exactly two flavors, distinguished so harnesses
// can report "environment problem" vs "broken fixture". A fixture's own
// declared error field is neither; it is data.

// ReadError reports a filesystem failure while collecting or reading a
// fixture file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read fixture %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a fixture whose contents could not be understood:
// syntactically invalid JSON, a missing required field, or a malformed point
// or edge entry.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse fixture %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

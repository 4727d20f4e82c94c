package scale

import (
	"errors"
	"fmt"
)

// ErrEmptyDomain indicates a scale with a zero-width segment.
var ErrEmptyDomain = errors.New("empty domain")

// ErrBadDomain indicates a domain string or min/max pair that cannot form a scale.
var ErrBadDomain = errors.New("bad domain")

// ErrNumberParse indicates a domain endpoint that is not a number.
var ErrNumberParse = errors.New("unable to parse number")

// ErrBadFormat indicates a malformed scale configuration entry.
var ErrBadFormat = errors.New("bad format")

// Error describes a scale construction or parsing failure.
type Error struct {
	Kind  error  // one of the Err* sentinels
	Input string // offending input, as the user wrote it
	Err   error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scale %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("scale %s %q", e.Kind, e.Input)
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, input string, err error) *Error {
	return &Error{Kind: kind, Input: input, Err: err}
}

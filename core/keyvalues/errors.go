package keyvalues

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *ParseError through errors.Is.
var ErrMalformed = errors.New("malformed keyvalues")

// ParseError reports a line that cannot be interpreted.
// Any ParseError invalidates the whole parse; callers must not use partial results.
type ParseError struct {
	// Line is the 1-based line number inside the parsed range.
	Line int
	// Text is the raw line.
	Text string
	// Reason describes what was expected.
	Reason string
	// Err is the underlying cause, if any (e.g. a strconv error).
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("keyvalues: line %d: %s: %q", e.Line, e.Reason, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformed.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

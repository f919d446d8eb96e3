package stdinarg

import (
	"errors"
	"fmt"
)

var (
	// ErrRepeatedStdinUse is returned when standard input has already been
	// claimed by another argument in the same process.
	ErrRepeatedStdinUse = errors.New("stdinarg: stdin read from more than once")

	// ErrClosed is returned by I/O on a stream that has been closed.
	ErrClosed = errors.New("stdinarg: stream already closed")
)

// ConversionError reports that argument content could not be converted to
// the wrapper's value type.
type ConversionError struct {
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("unable to parse value: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

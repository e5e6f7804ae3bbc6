package tabular

import (
	"errors"
	"fmt"
)

// ErrMalformedTable reports input that does not look tabular.
var ErrMalformedTable = errors.New("malformed table")

// MalformedTableError describes why a table could not be parsed.
// It wraps [ErrMalformedTable].
type MalformedTableError struct {
	Reason string
	// Lines is the number of lines left when parsing gave up.
	Lines int
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("%s: %s (%d lines)", ErrMalformedTable, e.Reason, e.Lines)
}

func (e *MalformedTableError) Unwrap() error { return ErrMalformedTable }

func malformed(lines int, format string, args ...any) error {
	return &MalformedTableError{Reason: fmt.Sprintf(format, args...), Lines: lines}
}

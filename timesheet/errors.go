package timesheet

import (
	"errors"
	"fmt"
)

// ErrBadFormat is the sentinel behind every FormatError; use errors.Is to
// classify parse failures without inspecting the struct.
var ErrBadFormat = errors.New("malformed date or time")

// FormatError reports a date or clock string that does not match the wire
// contract. Collaborators validate shapes before invoking the engine, so
// seeing one of these means the caller skipped validation.
type FormatError struct {
	Kind   string // "date" or "time"
	Value  string
	Layout string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s %q: want %s", e.Kind, e.Value, e.Layout)
}

func (e *FormatError) Unwrap() error {
	return ErrBadFormat
}

// IsFormatError reports whether err stems from a malformed date/time string.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrBadFormat)
}

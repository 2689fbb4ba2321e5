package strtod

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("strtod")

// FormatError reports text that is not a number.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid number %q: %s", e.Input, e.Reason)
}

func formatError(input, reason string) error {
	return Error.Wrap(&FormatError{
		Input:  input,
		Reason: reason,
	})
}

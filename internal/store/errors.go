package store

import "fmt"

// FormatError indicates a malformed import file: unparseable JSON or a
// top-level value that is not an object. The import is aborted and no
// partial state is applied.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid document format: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid document format: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

package model

import "fmt"

// ValidationError represents a schema validation error raised at
// construction time. It is the only error surface of this package:
// cross-references between entities are not checked here.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every "does not exist or is not yours" failure.
	ErrNotFound = errors.New("record not found")

	ErrUserNotFound       = &notFoundError{resource: "User"}
	ErrCourseNotFound     = &notFoundError{resource: "Course"}
	ErrAssignmentNotFound = &notFoundError{resource: "Assignment"}

	ErrUsernameTaken = errors.New("username already exists")
)

type notFoundError struct {
	resource string
}

func (e *notFoundError) Error() string        { return e.resource + " not found" }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a missing or malformed input field. It is always
// returned before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

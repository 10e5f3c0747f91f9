package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every error caused by invalid input,
	// including duplicate additions.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate is returned when an item with the same title and author is already cataloged.
	ErrDuplicate = errors.New("item already exists")
	// ErrNotFound is returned when an item is not found.
	ErrNotFound = errors.New("item not found")
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s %s", field, reason),
	}
}

// DuplicateError is returned by Add when the identity pair is already present.
type DuplicateError struct {
	Title  string
	Author string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("item %q by %s already exists in the catalog", e.Title, e.Author)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate || target == ErrValidation
}

// NotFoundError is returned by Remove when no item matches the identity pair.
type NotFoundError struct {
	Title  string
	Author string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q by %s not found in the catalog", e.Title, e.Author)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package location

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError is returned by the validating constructors
type ValidationError struct {
	Field string
	Value any
	Rule  string // e.g. "required", "gte=-90"
}

func (e *ValidationError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %v: violates %s", e.Field, e.Value, e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a city has no directory entry.
// A place without coordinates is not an error.
type NotFoundError struct {
	City City
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found in directory", e.City.Name())
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

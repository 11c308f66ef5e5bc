// Package apperror defines the failures the finance tracker reports to
// callers: invalid input, unknown ids and blocked deletes. Anything else is
// an internal error.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with the kind of record that was missing.
func NotFound(kind string) error {
	return fmt.Errorf("%s %w", kind, ErrNotFound)
}

// ValidationError carries per-field messages for a rejected input. Field names
// use the JSON names of the request body.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Invalid builds a ValidationError with a single field message.
func Invalid(field, message string) *ValidationError {
	return NewValidationError().Add(field, message)
}

func (v *ValidationError) Add(field, message string) *ValidationError {
	v.Fields[field] = append(v.Fields[field], message)
	return v
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// OrNil returns v when it holds messages and nil otherwise, so a collected
// ValidationError can be returned directly as an error.
func (v *ValidationError) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// SortedFields lists the offending fields alphabetically.
func (v *ValidationError) SortedFields() []string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, field := range v.SortedFields() {
		parts = append(parts, field+": "+strings.Join(v.Fields[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConflictError reports an operation refused because dependent rows exist.
// Message is meant for the user.
type ConflictError struct {
	Message string
}

func Conflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (c *ConflictError) Error() string {
	return c.Message
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := errors.As(err, &v)
	return v, ok
}

func AsConflict(err error) (*ConflictError, bool) {
	var c *ConflictError
	ok := errors.As(err, &c)
	return c, ok
}

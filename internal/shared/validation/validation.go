package validation

import (
	"fmt"
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violation found for one candidate value. It is a
// client-input problem, distinct from not-found and storage errors.
type Error struct {
	Violations []Violation `json:"violations"`
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds a validation error from explicit violations.
func NewError(violations ...Violation) *Error {
	return &Error{Violations: violations}
}

// FromOzzoErrors flattens an ozzo error map into a deterministic,
// field-ordered violation list.
func FromOzzoErrors(errs ozzo.Errors) *Error {
	violations := make([]Violation, 0, len(errs))
	for field, err := range errs {
		violations = append(violations, Violation{Field: field, Message: err.Error()})
	}
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return &Error{Violations: violations}
}

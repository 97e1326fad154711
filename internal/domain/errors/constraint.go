package errors

import "net/http"

// ConstraintKind names the storage constraint that rejected a write.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintNotNull    ConstraintKind = "not_null"
)

// ConstraintViolationError carries a storage constraint failure up to the caller.
// The driver error stays on the Unwrap chain so callers can still match it directly.
type ConstraintViolationError struct {
	Kind   ConstraintKind
	Entity string
	err    error
}

// NewConstraintViolationError wraps a storage error rejected by a schema constraint.
func NewConstraintViolationError(kind ConstraintKind, entity string, err error) *ConstraintViolationError {
	return &ConstraintViolationError{Kind: kind, Entity: entity, err: err}
}

// Error implements the error interface
func (e *ConstraintViolationError) Error() string {
	return e.Entity + " violates " + string(e.Kind) + " constraint: " + e.err.Error()
}

// Unwrap returns the original storage error.
func (e *ConstraintViolationError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ConstraintViolationError) HTTPCode() int {
	if e.Kind == ConstraintUnique {
		return http.StatusConflict
	}

	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ConstraintViolationError) ErrorCode() string {
	return "CONSTRAINT_VIOLATION"
}

// Message returns the user-friendly error message
func (e *ConstraintViolationError) Message() string {
	if e.Kind == ConstraintUnique {
		return e.Entity + " already exists"
	}

	return e.Entity + " is inconsistent with existing data"
}

// Details returns the constraint kind.
func (e *ConstraintViolationError) Details() string {
	return string(e.Kind)
}

package science

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) by fetch-by-id lookups when the row is absent.
var ErrNotFound = errors.New("not found")

// ValidationError reports a required field that is null, blank or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConstraintViolation reports a write the store rejected, e.g. a dangling foreign key.
type ConstraintViolation struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	if e == nil {
		return ""
	}
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation (%s): %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConstraint(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

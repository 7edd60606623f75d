package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/missions-backend/internal/domain/science"
)

const (
	CodeNotFound   = "not_found"
	CodeValidation = "validation_failed"
	CodeConstraint = "constraint_violation"
	CodeBadRequest = "bad_request"
	CodeTooLarge   = "payload_too_large"
	CodeInternal   = "internal"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError maps a service error onto a status and code. An *Error already in
// the chain wins.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	var ce *science.ConstraintViolation
	switch {
	case errors.Is(err, science.ErrNotFound):
		return New(http.StatusNotFound, CodeNotFound, err)
	case science.IsValidation(err):
		return New(http.StatusBadRequest, CodeValidation, err)
	case errors.As(err, &ce):
		return New(http.StatusBadRequest, CodeConstraint, err)
	default:
		return New(http.StatusInternalServerError, CodeInternal, err)
	}
}

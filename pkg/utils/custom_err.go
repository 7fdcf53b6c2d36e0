package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrNotFound           = errors.New("resource not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrDatabaseError      = errors.New("database error")
	ErrPriceMismatch      = errors.New("price mismatch")
	ErrPaymentNotVerified = errors.New("payment not verified")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrMissingConfig      = errors.New("missing configuration")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpstream           = errors.New("upstream service error")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
)

// ValidationError reports a single invalid input field.
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

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DetailedError attaches a client-facing message and payload to a sentinel.
type DetailedError struct {
	Err     error
	Message string
	Details any
}

func (e *DetailedError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *DetailedError) Unwrap() error { return e.Err }

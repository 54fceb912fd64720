package model

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an Error for the HTTP boundary.
type ErrorCode string

const (
	// CodeNotFound means the requested record does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeDB means the datastore failed.
	CodeDB ErrorCode = "DB_ERROR"
	// CodeInvalidParam means the caller passed an unusable parameter.
	CodeInvalidParam ErrorCode = "INVALID_PARAM"
	// CodeValidation means user input failed validation.
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeAuth means the caller is not authenticated.
	CodeAuth ErrorCode = "UNAUTHORIZED"
)

// Error is the error type shared by repositories and usecases. Handlers map
// the code to an HTTP status.
type Error struct {
	Code   ErrorCode
	err    error
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.err)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.err
}

// NewNotFoundError returns a not-found error for the given identity.
func NewNotFoundError(err error, id interface{}) *Error {
	if id != nil {
		err = fmt.Errorf("id %v: %w", id, err)
	}
	return &Error{Code: CodeNotFound, err: err}
}

// NewDBError wraps a datastore failure.
func NewDBError(err error) *Error {
	return &Error{Code: CodeDB, err: err}
}

// NewInvalidParamError reports an unusable parameter.
func NewInvalidParamError(err error) *Error {
	return &Error{Code: CodeInvalidParam, err: err}
}

// NewValidationError carries field-level validation messages.
func NewValidationError(fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Fields: fields}
}

// NewAuthError wraps an authentication failure.
func NewAuthError(err error) *Error {
	return &Error{Code: CodeAuth, err: err}
}

// IsNotFound reports whether err is a not-found Error.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsValidation reports whether err is a validation Error.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

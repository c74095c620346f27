package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Codes used across the persistence boundary. Classification itself never
// errors; only saves, deletes and cell updates can fail.
const (
	CodeValidationFailed     = "validation_failed"
	CodeNotFound             = "not_found"
	CodeReferentialIntegrity = "referential_integrity"
	CodeUnknownField         = "unknown_field"
	CodeConflict             = "conflict"
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

func Validation(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, CodeValidationFailed, fmt.Errorf(format, args...))
}

// NotFound is returned both when a row does not exist and when it exists
// outside the caller's tenant scope, so existence never leaks across tenants.
func NotFound(entity string) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s not found", entity))
}

func ReferentialIntegrity(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeReferentialIntegrity, fmt.Errorf(format, args...))
}

func UnknownField(field string) *Error {
	return New(http.StatusBadRequest, CodeUnknownField, fmt.Errorf("unknown field %q", field))
}

func Conflict(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeConflict, fmt.Errorf(format, args...))
}

// As unwraps err to an *Error when possible, else wraps it as an internal
// server error so handlers always have a status to answer with.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "internal", err)
}

func IsCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}

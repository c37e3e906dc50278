package fieldcast

import (
	"errors"
	"fmt"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// Cause sentinels for the single "invalid parameter" error kind. They are
// reachable through errors.Is on any error returned by a cast or by
// Validator.Validate, so callers can branch on the cause without parsing
// message text.
var (
	ErrMissingField    = errors.New("parameter must be provided")
	ErrUnexpectedList  = errors.New("parameter must not be an array")
	ErrNotAnInteger    = errors.New("parameter must be an integer")
	ErrNotABoolean     = errors.New("parameter must be a boolean")
	ErrNotANumber      = errors.New("parameter must be a number")
	ErrPatternMismatch = errors.New("parameter does not match the expected pattern")
	ErrNotInEnum       = errors.New("parameter is not one of the allowed values")
	ErrInvalidISODate  = errors.New("parameter must be a valid ISO date")
	ErrNotAUUID        = errors.New("parameter must be a valid UUID")
)

// InvalidParamError is the error value surfaced by a failing cast or a
// failing Validate call. The failing field name and the violated constraint
// are embedded in the message; the underlying cause sentinel is exposed via
// Unwrap.
//
// It carries a 400-style status classification for direct use by an HTTP
// layer. The core itself never logs or presents errors.
type InvalidParamError struct {
	Field string
	msg   string
	cause error
}

// Error implements the error interface.
func (e *InvalidParamError) Error() string {
	return e.msg
}

// StatusCode classifies the error for an HTTP layer.
func (e *InvalidParamError) StatusCode() int {
	return http.StatusBadRequest
}

// Unwrap exposes the cause sentinel for errors.Is.
func (e *InvalidParamError) Unwrap() error {
	return e.cause
}

// invalidParam builds the structured error every failing cast returns.
func invalidParam(field string, cause error, format string, args ...any) error {
	return &InvalidParamError{
		Field: field,
		msg:   fmt.Sprintf(format, args...),
		cause: cause,
	}
}

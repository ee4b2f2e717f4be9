package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code categorizes a failure of the flight sun pipeline.
type Code string

const (
	CodeInvalidInput     Code = "invalid_input"
	CodeAirportNotFound  Code = "airport_not_found"
	CodeInsufficientPath Code = "insufficient_path"
	CodeInternal         Code = "internal_error"
)

// HTTPStatus maps a Code to the status the REST layer answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeAirportNotFound:
		return http.StatusNotFound
	case CodeInsufficientPath:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error type returned by every pipeline stage.
// All of them are deterministic in their input, retrying cannot succeed.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Err     error          `json:"-"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code matching the error's code.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// InvalidInput reports a missing or malformed request field.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// WrapInvalidInput is InvalidInput keeping the parse error as cause.
func WrapInvalidInput(err error, format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...), Err: err}
}

// AirportNotFound names both requested codes and the ones missing from the table.
func AirportNotFound(from, to string, missing ...string) *Error {
	return &Error{
		Code:    CodeAirportNotFound,
		Message: fmt.Sprintf("airport %s not found (route %s -> %s)", strings.Join(missing, ", "), from, to),
		Details: map[string]any{"from": from, "to": to, "missing": missing},
	}
}

// InsufficientPath is raised when a bearing is requested on fewer than two points.
func InsufficientPath(points int) *Error {
	return &Error{
		Code:    CodeInsufficientPath,
		Message: fmt.Sprintf("at least 2 path points are required, got %d", points),
	}
}

// CodeOf returns the Code carried by err, or CodeInternal for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

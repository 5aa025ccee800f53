package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the application status carried in the response envelope.
type Code int

const (
	CodeSuccess                Code = 200
	CodeUnknown                Code = 4000
	CodeNotFoundEntity         Code = 4001
	CodeEntityAlreadyExist     Code = 4002
	CodeUnsupportedInterval    Code = 4003
	CodeIllegalRequestArgument Code = 4004

	CodeUnauthorized    Code = 401
	CodeForbidden        Code = 403
	CodeMethodNotAllowed Code = 405
	CodeTooManyRequests  Code = 429
)

const (
	ReasonUnknown                = "Unknown"
	ReasonNotFoundEntity         = "NotFoundEntity"
	ReasonEntityAlreadyExist     = "EntityAlreadyExist"
	ReasonUnsupportedInterval    = "UnsupportedInterval"
	ReasonIllegalRequestArgument = "IllegalRequestArgument"
	ReasonUnauthorized           = "Unauthorized"
	ReasonForbidden              = "Forbidden"
	ReasonMethodNotAllowed       = "MethodNotAllowed"
	ReasonTooManyRequests        = "TooManyRequests"
)

// Error is an error that knows how it should be rendered to a client.
type Error struct {
	Code       Code
	Reason     string
	Message    string
	HTTPStatus int
	Details    map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, reason string, httpStatus int, message string) *Error {
	return &Error{
		Code:       code,
		Reason:     reason,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func NotFound(format string, args ...interface{}) *Error {
	return New(CodeNotFoundEntity, ReasonNotFoundEntity, http.StatusNotFound, fmt.Sprintf(format, args...))
}

func AlreadyExists(format string, args ...interface{}) *Error {
	return New(CodeEntityAlreadyExist, ReasonEntityAlreadyExist, http.StatusConflict, fmt.Sprintf(format, args...))
}

func UnsupportedInterval(interval string) *Error {
	return New(CodeUnsupportedInterval, ReasonUnsupportedInterval, http.StatusBadRequest,
		fmt.Sprintf("unsupported interval: %s", interval))
}

func IllegalArgument(format string, args ...interface{}) *Error {
	return New(CodeIllegalRequestArgument, ReasonIllegalRequestArgument, http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Validation wraps field level validation failures.
func Validation(details map[string]string) *Error {
	err := IllegalArgument("Validation failed")
	err.Details = details
	return err
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return New(CodeUnauthorized, ReasonUnauthorized, http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return New(CodeForbidden, ReasonForbidden, http.StatusForbidden, message)
}

func MethodNotAllowed(message string) *Error {
	if message == "" {
		message = "Method not allowed"
	}
	return New(CodeMethodNotAllowed, ReasonMethodNotAllowed, http.StatusMethodNotAllowed, message)
}

func TooManyRequests(message string) *Error {
	if message == "" {
		message = "Too many requests"
	}
	return New(CodeTooManyRequests, ReasonTooManyRequests, http.StatusTooManyRequests, message)
}

func Unknown(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return New(CodeUnknown, ReasonUnknown, http.StatusInternalServerError, message)
}

// From returns the *Error inside err, or an unknown error when err carries none.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unknown("")
}

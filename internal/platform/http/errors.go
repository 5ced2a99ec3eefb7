package http

import (
	"net/http"
)

const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeInternalError      = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Error is an error that knows the HTTP status, the machine-readable code
// and the client-facing message it should be rendered with. Err is for logs
// only and never reaches the client.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClientMessage is the message safe to send to the caller.
func (e *Error) ClientMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       defaultCode(statusCode),
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewUnauthorized(message string, err error) *Error {
	return New(http.StatusUnauthorized, message, err)
}

func NewServiceUnavailable(message string, err error) *Error {
	return New(http.StatusServiceUnavailable, message, err)
}

func NewInternalServerError(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

func defaultCode(statusCode int) string {
	switch statusCode {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternalError
	}
}

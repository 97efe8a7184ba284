package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeHTTPStatus ErrorType = "http_status"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeDecode     ErrorType = "decode"
	ErrorTypeWrite      ErrorType = "write"
	ErrorTypeInvalidURL ErrorType = "invalid_url"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error represents a failed fetch, download or write with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	URL     string
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// New creates an Error of the given type
func New(errorType ErrorType, url, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errorType,
		Message: fmt.Sprintf(format, args...),
		URL:     url,
	}
}

// FromStatus builds an Error for a non-success HTTP status code
func FromStatus(url string, statusCode int) *Error {
	errorType := ErrorTypeHTTPStatus
	if statusCode == http.StatusNotFound {
		errorType = ErrorTypeNotFound
	}
	return &Error{
		Type:    errorType,
		Message: http.StatusText(statusCode),
		Code:    statusCode,
		URL:     url,
	}
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeUnknown
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsSuccessStatus reports whether an HTTP status code counts as a successful response
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

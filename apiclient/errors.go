package apiclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies API client errors.
type ErrorCode int

const (
	// ErrCodeInvalidURL indicates the base URL and endpoint do not form a
	// valid absolute URL.
	ErrCodeInvalidURL ErrorCode = iota
	// ErrCodeUnsupportedContentType indicates a content type the client
	// cannot encode or decode.
	ErrCodeUnsupportedContentType
	// ErrCodeHTTP indicates a non-2xx response status.
	ErrCodeHTTP
	// ErrCodeDecode indicates a body that could not be encoded or decoded.
	ErrCodeDecode
	// ErrCodeTransport indicates a network-level failure surfaced from the
	// underlying transport.
	ErrCodeTransport
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidURL:
		return "invalid_url"
	case ErrCodeUnsupportedContentType:
		return "unsupported_content_type"
	case ErrCodeHTTP:
		return "http"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a structured API client error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 unless Code is ErrCodeHTTP).
	StatusCode int
	// ContentType is the offending content type (ErrCodeUnsupportedContentType).
	ContentType string
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("apiclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("apiclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidURLError creates an invalid-URL error.
func NewInvalidURLError(rawURL string, err error) *Error {
	return &Error{
		Code:    ErrCodeInvalidURL,
		Message: fmt.Sprintf("not an absolute URL: %q", rawURL),
		Err:     err,
	}
}

// NewUnsupportedContentTypeError creates an unsupported-content-type error.
func NewUnsupportedContentTypeError(contentType string) *Error {
	return &Error{
		Code:        ErrCodeUnsupportedContentType,
		ContentType: contentType,
		Message:     fmt.Sprintf("unsupported content type %q", contentType),
	}
}

// NewHTTPError creates an error for a non-2xx response status.
func NewHTTPError(statusCode int) *Error {
	return &Error{
		Code:       ErrCodeHTTP,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
	}
}

// NewDecodeError creates a codec error.
func NewDecodeError(err error) *Error {
	return &Error{
		Code:    ErrCodeDecode,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTransportError wraps a network failure from the transport primitive.
func NewTransportError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// IsInvalidURL checks if an error is an invalid-URL error.
func IsInvalidURL(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidURL
}

// IsUnsupportedContentType checks if an error is an unsupported-content-type error.
func IsUnsupportedContentType(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnsupportedContentType
}

// IsHTTPError checks if an error is a non-2xx status error.
func IsHTTPError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeHTTP
}

// IsDecodeError checks if an error is a codec error.
func IsDecodeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// IsTransportError checks if an error is a transport error.
func IsTransportError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// HTTPStatus extracts the status code from a non-2xx status error.
// Returns 0 for any other error.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrCodeHTTP {
		return e.StatusCode
	}
	return 0
}

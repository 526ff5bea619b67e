package crediflow

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// CodeConfiguration indicates a wiring-time problem: an entity kind with
	// no registered endpoint, or a category built without its required result
	// kind. These surface when definitions are constructed, never mid-call.
	CodeConfiguration ErrorCode = "configuration"

	// CodeInvalidArgument indicates a missing or malformed caller argument,
	// such as an absent object id on a category that requires one.
	CodeInvalidArgument ErrorCode = "invalid_argument"

	// CodeTransport indicates the outbound call never produced an HTTP
	// response. The underlying error is preserved for errors.Unwrap.
	CodeTransport ErrorCode = "transport"

	// CodeProtocol indicates a non-2xx HTTP status. The error details carry
	// the method, URL, status and raw body for diagnostics.
	CodeProtocol ErrorCode = "protocol"

	// CodeDecode indicates the response body did not match the definition's
	// declared return kind.
	CodeDecode ErrorCode = "decode"
)

// Error is the standard error type returned by this package.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any. This lets callers check
// transport failures with errors.Is, e.g. against context.DeadlineExceeded.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a new error with the given code.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates a new error that records err as its cause.
func WrapError(code ErrorCode, err error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithDetails returns a new Error with the provided map merged into details.
// For multiple details, this is more efficient than chaining WithDetail calls.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: merged,
		cause:   e.cause,
	}
}

// CodeOf extracts the ErrorCode from err. It returns an empty code when err
// is nil or was not produced by this package.
func CodeOf(err error) ErrorCode {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors.
const (
	CodeConfigError      = "CONFIG_ERROR"
	CodeInvalidConfig    = "INVALID_CONFIG"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeTimeoutError     = "TIMEOUT_ERROR"
	CodeContextCancelled = "CONTEXT_CANCELLED"
)

// =============================================================================
// DISPATCH ERROR (STRUCTURED ERROR)
// =============================================================================

// DispatchError represents a structured, non-HTTP error with context.
type DispatchError struct {
	Code      string
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]any
}

func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// Is matches by error code, allowing comparison against the sentinels below.
func (e *DispatchError) Is(target error) bool {
	t, ok := target.(*DispatchError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithContext adds context to the error.
func (e *DispatchError) WithContext(key string, value any) *DispatchError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func newDispatchError(code, message string, cause error, ctx map[string]any) *DispatchError {
	if ctx == nil {
		ctx = make(map[string]any)
	}
	return &DispatchError{
		Code:      code,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
		Context:   ctx,
	}
}

// ErrConfigError creates a config error.
func ErrConfigError(message string, cause error) *DispatchError {
	return newDispatchError(CodeConfigError, message, cause, nil)
}

// ErrInvalidConfig creates an error for a single invalid configuration key.
func ErrInvalidConfig(configKey string, cause error) *DispatchError {
	return newDispatchError(CodeInvalidConfig, "invalid configuration for key '"+configKey+"'", cause,
		map[string]any{"key": configKey})
}

// ErrValidationError creates a validation error.
func ErrValidationError(field string, cause error) *DispatchError {
	return newDispatchError(CodeValidationError, fmt.Sprintf("validation error for field '%s'", field), cause,
		map[string]any{"field": field})
}

// ErrTimeoutError creates a timeout error for a named operation.
func ErrTimeoutError(operation string, timeout time.Duration) *DispatchError {
	return newDispatchError(CodeTimeoutError, "timeout during "+operation+" after "+timeout.String(), nil,
		map[string]any{"operation": operation})
}

// ErrContextCancelled creates a cancellation error for a named operation.
func ErrContextCancelled(operation string) *DispatchError {
	return newDispatchError(CodeContextCancelled, "context cancelled during "+operation, nil,
		map[string]any{"operation": operation})
}

// =============================================================================
// HTTP ERRORS
// =============================================================================

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is compares by HTTP status code.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrorCode returns the machine readable code used in JSON error bodies,
// e.g. "BAD_REQUEST" for 400.
func (e *HTTPError) ErrorCode() string {
	text := http.StatusText(e.Code)
	if text == "" {
		return "UNKNOWN_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// ResponseBody is the JSON-friendly representation of the error.
func (e *HTTPError) ResponseBody() map[string]any {
	return map[string]any{
		"code":    e.ErrorCode(),
		"message": e.Error(),
	}
}

// WithCause returns a copy of e wrapping err.
func (e *HTTPError) WithCause(err error) *HTTPError {
	return &HTTPError{Code: e.Code, Message: e.Message, Err: err}
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *HTTPError {
	return &HTTPError{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *HTTPError {
	return &HTTPError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Message: message}
}

func MethodNotAllowed(message string) *HTTPError {
	return &HTTPError{Code: http.StatusMethodNotAllowed, Message: message}
}

func RequestTimeout(message string) *HTTPError {
	return &HTTPError{Code: http.StatusRequestTimeout, Message: message}
}

func PayloadTooLarge(message string) *HTTPError {
	return &HTTPError{Code: http.StatusRequestEntityTooLarge, Message: message}
}

func UnsupportedMediaType(message string) *HTTPError {
	return &HTTPError{Code: http.StatusUnsupportedMediaType, Message: message}
}

func InternalError(err error) *HTTPError {
	return &HTTPError{Code: http.StatusInternalServerError, Err: err}
}

func ServiceUnavailable(message string) *HTTPError {
	return &HTTPError{Code: http.StatusServiceUnavailable, Message: message}
}

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrBodyAlreadyExtracted is wrapped by rejections from a second body extractor.
	ErrBodyAlreadyExtracted = errors.New("request body already extracted")

	// ErrTimeout is returned by the timeout layer when the inner unit overruns.
	ErrTimeout = errors.New("request timed out")

	// ErrOverloaded is returned when a layer refuses work because it is at capacity.
	ErrOverloaded = errors.New("service overloaded")

	ErrConfigErrorSentinel     = &DispatchError{Code: CodeConfigError}
	ErrInvalidConfigSentinel   = &DispatchError{Code: CodeInvalidConfig}
	ErrValidationErrorSentinel = &DispatchError{Code: CodeValidationError}
	ErrTimeoutErrorSentinel    = &DispatchError{Code: CodeTimeoutError}
)

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
//
//	var httpErr *HTTPError
//	if As(err, &httpErr) {
//	    // handle HTTP error with httpErr.Code
//	}
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// StatusCode extracts the HTTP status code from err, returning 500 when err
// carries none.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// IsTimeout reports whether err is a timeout produced by this module.
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout) || Is(err, ErrTimeoutErrorSentinel)
}

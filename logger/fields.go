package logger

import (
	"go.uber.org/zap"
)

// Field constructors.
var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Time     = zap.Time
	Duration = zap.Duration
	Error    = zap.Error
	Stringer = zap.Stringer
	Any      = zap.Any
	Stack    = zap.Stack
)

// HTTPMethod creates a field for the request method.
func HTTPMethod(method string) Field {
	return zap.String("http.method", method)
}

// HTTPPath creates a field for the request path.
func HTTPPath(path string) Field {
	return zap.String("http.path", path)
}

// HTTPStatus creates a field for the response status code.
func HTTPStatus(status int) Field {
	return zap.Int("http.status", status)
}

// RequestID creates a field for the request id.
func RequestID(id string) Field {
	return zap.String("request_id", id)
}

// TraceID creates a field for the trace id.
func TraceID(id string) Field {
	return zap.String("trace_id", id)
}

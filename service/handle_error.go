package service

import (
	"context"
	"net/http"

	"github.com/xraph/dispatch/response"
)

// ErrorHandled wraps a fallible Service and maps each of its errors, from
// Ready or Call, to a response. The result is Infallible and still
// satisfies Service with an error that is always nil.
type ErrorHandled struct {
	inner Service
	f     func(error) response.IntoResponse
}

// HandleError builds an ErrorHandled unit around svc.
func HandleError(svc Service, f func(error) response.IntoResponse) *ErrorHandled {
	return &ErrorHandled{inner: svc, f: f}
}

// Ready always returns nil; readiness failures of the inner service are
// reported by Call.
func (h *ErrorHandled) Ready(context.Context) error { return nil }

// Call never fails.
func (h *ErrorHandled) Call(r *http.Request) (*response.Response, error) {
	return h.Serve(r), nil
}

// Serve runs the inner service once and maps any error through f.
func (h *ErrorHandled) Serve(r *http.Request) *response.Response {
	res, err := Oneshot(h.inner, r)
	if err != nil {
		return response.Into(h.f(err))
	}
	return response.Box(res)
}

// ServeHTTP writes the response to w.
func (h *ErrorHandled) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = response.Write(w, h.Serve(r))
}

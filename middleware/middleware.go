// Package middleware provides service layers for request logging, panic
// recovery, timeouts, request ids, metrics, tracing, body limits,
// backpressure, CORS and compression.
//
// A layer's Ready delegates to the service it wraps and its Call calls the
// inner Call directly: readiness has already been awaited by the caller, so
// layers never go through service.Oneshot on the inner service.
package middleware

import (
	"context"
	"net/http"

	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// wrap builds a service that keeps next's readiness and replaces Call.
func wrap(next service.Service, call func(r *http.Request) (*response.Response, error)) service.Service {
	return &wrapped{next: next, call: call}
}

type wrapped struct {
	next service.Service
	call func(r *http.Request) (*response.Response, error)
}

func (w *wrapped) Ready(ctx context.Context) error {
	return w.next.Ready(ctx)
}

func (w *wrapped) Call(r *http.Request) (*response.Response, error) {
	return w.call(r)
}

// Package service defines the unit every handler, router and layer is
// adapted to: something that can report readiness and turn a request into a
// response.
package service

import (
	"context"
	"net/http"

	"github.com/xraph/dispatch/response"
)

// Service handles one request at a time after reporting it is ready.
//
// Ready is called before every Call and may block until capacity is
// available. An error from either method is the unit's failure; layers turn
// it into a response further out.
type Service interface {
	Ready(ctx context.Context) error
	Call(r *http.Request) (*response.Response, error)
}

// Infallible is a unit whose failures are already responses. Only
// Infallible units can be mounted on a router.
type Infallible interface {
	Serve(r *http.Request) *response.Response
}

// Layer wraps a Service to produce another.
type Layer func(Service) Service

// Func adapts a function to a Service that is always ready.
type Func func(r *http.Request) (*response.Response, error)

// Ready always returns nil.
func (f Func) Ready(context.Context) error { return nil }

// Call calls f.
func (f Func) Call(r *http.Request) (*response.Response, error) { return f(r) }

// Stack composes layers so that the first one is outermost.
func Stack(layers ...Layer) Layer {
	return func(svc Service) Service {
		for i := len(layers) - 1; i >= 0; i-- {
			if layers[i] != nil {
				svc = layers[i](svc)
			}
		}
		return svc
	}
}

// Apply wraps svc with layers, first outermost.
func Apply(svc Service, layers ...Layer) Service {
	return Stack(layers...)(svc)
}

// Oneshot waits for svc to become ready and calls it exactly once.
func Oneshot(svc Service, r *http.Request) (*response.Response, error) {
	if err := svc.Ready(r.Context()); err != nil {
		return nil, err
	}
	res, err := svc.Call(r)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return response.Empty(), nil
	}
	return res, nil
}

// Lift exposes an Infallible unit as a Service that is always ready and
// never fails.
func Lift(unit Infallible) Service {
	if svc, ok := unit.(Service); ok {
		return svc
	}
	return lifted{unit}
}

type lifted struct{ unit Infallible }

func (l lifted) Ready(context.Context) error { return nil }

func (l lifted) Call(r *http.Request) (*response.Response, error) {
	return l.unit.Serve(r), nil
}

// ToHTTP exposes an Infallible unit as an http.Handler.
func ToHTTP(unit Infallible) http.Handler {
	return httpHandler{unit}
}

type httpHandler struct{ unit Infallible }

func (h httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = response.Write(w, h.unit.Serve(r))
}

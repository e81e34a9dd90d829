// Package handler turns application callbacks into request processing units.
//
// A callback receives the request followed by up to sixteen values, each
// produced by an extract.Extractor declared alongside it:
//
//	h := handler.Func2(
//		func(r *http.Request, id string, body CreateUser) response.IntoResponse {
//			...
//		},
//		extract.Path("id"),
//		extract.JSON[CreateUser](),
//	)
//
// Extractors run in declaration order. The first rejection becomes the
// response and neither later extractors nor the callback run. Handlers are
// immutable and safe to share across goroutines; a callback must synchronize
// any state it captures.
package handler

//go:generate go run ../internal/gen/arity -o arity.go

import (
	"context"
	"net/http"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// Handler is a callback bound to its extractors. It cannot be implemented
// outside this package; use Func, Func1..Func16 or Layer.
type Handler interface {
	// Call runs extraction and the callback. It never fails: rejections
	// and errors are already responses.
	Call(r *http.Request) *response.Response

	// Layer wraps the handler with middleware, first layer outermost.
	Layer(layers ...service.Layer) *Layered

	// IntoService adapts the handler to a service unit.
	IntoService() Unit

	sealed()
}

type handlerFunc func(r *http.Request) *response.Response

func (f handlerFunc) Call(r *http.Request) *response.Response {
	return response.Box(f(r))
}

func (f handlerFunc) Layer(layers ...service.Layer) *Layered {
	return Layer(f, layers...)
}

func (f handlerFunc) IntoService() Unit {
	return IntoService(f)
}

func (handlerFunc) sealed() {}

// Func adapts a callback that takes no extracted values.
func Func[R response.IntoResponse](fn func(*http.Request) R) Handler {
	return handlerFunc(func(r *http.Request) *response.Response {
		return response.Into(fn(r))
	})
}

// Unit is a Handler seen as a service. It is always ready and its Call
// never returns an error. The zero Unit has no handler and answers every
// request with 500.
type Unit struct {
	h Handler
}

var errNoHandler = errors.New("handler: unit has no handler")

// IntoService adapts h. It panics if h is nil.
func IntoService(h Handler) Unit {
	if h == nil {
		panic("handler: nil Handler")
	}
	return Unit{h: h}
}

// Ready always returns nil.
func (u Unit) Ready(context.Context) error { return nil }

// Call runs the handler; the error is always nil.
func (u Unit) Call(r *http.Request) (*response.Response, error) {
	return u.Serve(r), nil
}

// Serve runs the handler.
func (u Unit) Serve(r *http.Request) *response.Response {
	if u.h == nil {
		return response.FromError(errors.InternalError(errNoHandler))
	}
	return u.h.Call(r)
}

// ServeHTTP writes the handler's response to w.
func (u Unit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = response.Write(w, u.Serve(r))
}

var (
	_ service.Service    = Unit{}
	_ service.Infallible = Unit{}
	_ Handler            = handlerFunc(nil)
)

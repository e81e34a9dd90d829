// Package routing dispatches a request to a unit by HTTP method.
//
// A method router is a chain: each node holds a filter, the unit to run
// when the request method matches, and the node to fall back to when it
// does not. The chain ends at EmptyRouter, which answers 404.
//
//	r := routing.Get(list).Post(create)
//
// Nodes are values. Adding a method returns a new, larger chain and leaves
// the receiver untouched. Newer registrations sit in front, so when two
// nodes match the same method the one added last wins.
package routing

import (
	"context"
	"net/http"
	"strings"

	"github.com/xraph/dispatch/handler"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// OnMethod is one node of a method router. The zero OnMethod matches no
// method and answers 404.
type OnMethod struct {
	filter   MethodFilter
	svc      service.Infallible
	fallback service.Infallible
}

var (
	_ service.Service    = OnMethod{}
	_ service.Infallible = OnMethod{}
	_ http.Handler       = OnMethod{}
)

// NewOnMethod builds a node from any two infallible units. A nil fallback is
// EmptyRouter. It panics if svc is nil.
func NewOnMethod(filter MethodFilter, svc, fallback service.Infallible) OnMethod {
	if svc == nil {
		panic("routing: nil unit")
	}
	if fallback == nil {
		fallback = EmptyRouter{}
	}
	return OnMethod{filter: filter, svc: svc, fallback: fallback}
}

// On routes the methods in filter to h and everything else to EmptyRouter.
// It panics if h is nil.
func On(filter MethodFilter, h handler.Handler) OnMethod {
	return NewOnMethod(filter, handler.IntoService(h), EmptyRouter{})
}

// Get routes GET requests to h.
func Get(h handler.Handler) OnMethod { return On(MethodGet, h) }

// Post routes POST requests to h.
func Post(h handler.Handler) OnMethod { return On(MethodPost, h) }

// Put routes PUT requests to h.
func Put(h handler.Handler) OnMethod { return On(MethodPut, h) }

// Delete routes DELETE requests to h.
func Delete(h handler.Handler) OnMethod { return On(MethodDelete, h) }

// Patch routes PATCH requests to h.
func Patch(h handler.Handler) OnMethod { return On(MethodPatch, h) }

// Head routes HEAD requests to h.
func Head(h handler.Handler) OnMethod { return On(MethodHead, h) }

// Options routes OPTIONS requests to h.
func Options(h handler.Handler) OnMethod { return On(MethodOptions, h) }

// Trace routes TRACE requests to h.
func Trace(h handler.Handler) OnMethod { return On(MethodTrace, h) }

// Connect routes CONNECT requests to h.
func Connect(h handler.Handler) OnMethod { return On(MethodConnect, h) }

// Any routes every standard method to h.
func Any(h handler.Handler) OnMethod { return On(MethodAny, h) }

// On returns a new router that sends the methods in filter to h and
// everything else to m.
func (m OnMethod) On(filter MethodFilter, h handler.Handler) OnMethod {
	return NewOnMethod(filter, handler.IntoService(h), m)
}

// Get adds a route sending GET requests to h.
func (m OnMethod) Get(h handler.Handler) OnMethod { return m.On(MethodGet, h) }

// Post adds a route sending POST requests to h.
func (m OnMethod) Post(h handler.Handler) OnMethod { return m.On(MethodPost, h) }

// Put adds a route sending PUT requests to h.
func (m OnMethod) Put(h handler.Handler) OnMethod { return m.On(MethodPut, h) }

// Delete adds a route sending DELETE requests to h.
func (m OnMethod) Delete(h handler.Handler) OnMethod { return m.On(MethodDelete, h) }

// Patch adds a route sending PATCH requests to h.
func (m OnMethod) Patch(h handler.Handler) OnMethod { return m.On(MethodPatch, h) }

// Head adds a route sending HEAD requests to h.
func (m OnMethod) Head(h handler.Handler) OnMethod { return m.On(MethodHead, h) }

// Options adds a route sending OPTIONS requests to h.
func (m OnMethod) Options(h handler.Handler) OnMethod { return m.On(MethodOptions, h) }

// Trace adds a route sending TRACE requests to h.
func (m OnMethod) Trace(h handler.Handler) OnMethod { return m.On(MethodTrace, h) }

// Connect adds a route sending CONNECT requests to h.
func (m OnMethod) Connect(h handler.Handler) OnMethod { return m.On(MethodConnect, h) }

// Any adds a route sending every standard method to h.
func (m OnMethod) Any(h handler.Handler) OnMethod { return m.On(MethodAny, h) }

// Filter is the set of methods this node handles itself.
func (m OnMethod) Filter() MethodFilter { return m.filter }

// Allowed is the union of the filters along the chain.
func (m OnMethod) Allowed() MethodFilter {
	allowed := m.filter
	if next, ok := m.fallback.(OnMethod); ok {
		allowed |= next.Allowed()
	}
	return allowed
}

// OrMethodNotAllowed returns a copy of the chain whose terminal EmptyRouter
// is replaced by a 405 responder advertising the allowed methods.
func (m OnMethod) OrMethodNotAllowed() OnMethod {
	return m.withTerminal(MethodNotAllowed{Allow: m.Allowed()})
}

func (m OnMethod) withTerminal(terminal service.Infallible) OnMethod {
	switch next := m.fallback.(type) {
	case OnMethod:
		m.fallback = next.withTerminal(terminal)
	case EmptyRouter, nil:
		m.fallback = terminal
	}
	return m
}

// Serve dispatches r to the first node in the chain whose filter matches.
func (m OnMethod) Serve(r *http.Request) *response.Response {
	if m.filter.Matches(r.Method) {
		return response.Box(m.svc.Serve(r))
	}
	if m.fallback == nil {
		return EmptyRouter{}.Serve(r)
	}
	return response.Box(m.fallback.Serve(r))
}

// Ready always returns nil.
func (m OnMethod) Ready(context.Context) error { return nil }

// Call serves r; the error is always nil.
func (m OnMethod) Call(r *http.Request) (*response.Response, error) {
	return m.Serve(r), nil
}

// ServeHTTP writes the routed response to w.
func (m OnMethod) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = response.Write(w, m.Serve(r))
}

// EmptyRouter answers every request with an empty 404.
type EmptyRouter struct{}

// Serve returns 404.
func (EmptyRouter) Serve(*http.Request) *response.Response {
	return response.New(http.StatusNotFound, nil)
}

// Ready always returns nil.
func (EmptyRouter) Ready(context.Context) error { return nil }

// Call returns 404; the error is always nil.
func (e EmptyRouter) Call(r *http.Request) (*response.Response, error) {
	return e.Serve(r), nil
}

// ServeHTTP writes 404.
func (e EmptyRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = response.Write(w, e.Serve(r))
}

// MethodNotAllowed answers every request with 405 and an Allow header.
type MethodNotAllowed struct {
	Allow MethodFilter
}

// Serve returns 405.
func (m MethodNotAllowed) Serve(*http.Request) *response.Response {
	res := response.New(http.StatusMethodNotAllowed, nil)
	if m.Allow != 0 {
		res.Header.Set("Allow", strings.Join(m.Allow.Methods(), ", "))
	}
	return res
}

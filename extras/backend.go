// Package extras plugs third-party path routers in front of method routers.
//
// Path matching is not part of the dispatch core. A Backend maps paths to
// http.Handlers, usually routing.OnMethod values, and publishes the matched
// path parameters with extract.WithPathParams so extract.Path can read them
// whichever backend is used.
//
// Paths use ":name" for a segment parameter and "*name" for a trailing
// catch-all, and each backend translates them to its own syntax.
package extras

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/routing"
)

// Backend names accepted by NewBackend.
const (
	BackendStd        = "std"
	BackendChi        = "chi"
	BackendHTTPRouter = "httprouter"
	BackendBunRouter  = "bunrouter"
)

// Backend routes requests by path.
type Backend interface {
	// Handle registers h for every method on path. Method dispatch is left
	// to h.
	Handle(path string, h http.Handler)

	// Name identifies the backend.
	Name() string

	http.Handler
}

// NewBackend returns the backend registered under name. An empty name is
// BackendStd.
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", BackendStd:
		return NewServeMuxBackend(), nil
	case BackendChi:
		return NewChiBackend(), nil
	case BackendHTTPRouter:
		return NewHTTPRouterBackend(), nil
	case BackendBunRouter:
		return NewBunRouterBackend(), nil
	default:
		return nil, errors.ErrInvalidConfig("server.backend", fmt.Errorf("unknown router backend %q", name))
	}
}

// methods are registered on backends that need a method per route.
var methods = routing.MethodAny.Methods()

// withParams publishes params on r for extract.Path.
func withParams(r *http.Request, params map[string]string) *http.Request {
	if len(params) == 0 {
		return r
	}
	return r.WithContext(extract.WithPathParams(r.Context(), params))
}

// segment is one part of a path split on "/".
type segment struct {
	literal  string
	param    string
	catchAll bool
}

func parsePath(path string) []segment {
	parts := strings.Split(path, "/")
	segments := make([]segment, len(parts))
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			segments[i] = segment{param: part[1:]}
		case strings.HasPrefix(part, "*"):
			segments[i] = segment{param: part[1:], catchAll: true}
		default:
			segments[i] = segment{literal: part}
		}
	}
	return segments
}

// translate rewrites path with the given parameter and catch-all formats.
func translate(path string, param, catchAll func(name string) string) string {
	segments := parsePath(path)
	parts := make([]string, len(segments))
	for i, s := range segments {
		switch {
		case s.catchAll:
			parts[i] = catchAll(s.param)
		case s.param != "":
			parts[i] = param(s.param)
		default:
			parts[i] = s.literal
		}
	}
	return strings.Join(parts, "/")
}

// paramNames lists the parameters declared in path.
func paramNames(path string) []string {
	var names []string
	for _, s := range parsePath(path) {
		if s.param != "" {
			names = append(names, s.param)
		}
	}
	return names
}

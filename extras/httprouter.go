package extras

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// HTTPRouterBackend wraps julienschmidt/httprouter. Its path syntax is the
// canonical one, so paths are registered unchanged.
type HTTPRouterBackend struct {
	router *httprouter.Router
}

// NewHTTPRouterBackend creates an httprouter backend. Method mismatches are
// left to the registered handler, so httprouter's own 405 handling is off.
func NewHTTPRouterBackend() *HTTPRouterBackend {
	router := httprouter.New()
	router.HandleMethodNotAllowed = false
	router.HandleOPTIONS = false

	return &HTTPRouterBackend{router: router}
}

func (b *HTTPRouterBackend) Name() string { return BackendHTTPRouter }

// Handle registers h on path for every standard method.
func (b *HTTPRouterBackend) Handle(path string, h http.Handler) {
	handle := func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		params := make(map[string]string, len(ps))
		for _, p := range ps {
			// httprouter keeps the leading slash of catch-all values.
			params[p.Key] = strings.TrimPrefix(p.Value, "/")
		}
		h.ServeHTTP(w, withParams(r, params))
	}

	for _, method := range methods {
		b.router.Handle(method, path, handle)
	}
}

func (b *HTTPRouterBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

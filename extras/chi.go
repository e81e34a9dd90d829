package extras

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiBackend wraps go-chi/chi.
type ChiBackend struct {
	router chi.Router
}

// NewChiBackend creates a chi backend.
func NewChiBackend() *ChiBackend {
	return &ChiBackend{router: chi.NewRouter()}
}

func (b *ChiBackend) Name() string { return BackendChi }

// Handle registers h on path. ":id" becomes "{id}"; chi names its
// catch-all "*", so the parameter is republished under the declared name.
func (b *ChiBackend) Handle(path string, h http.Handler) {
	var catchAll string
	pattern := translate(path,
		func(name string) string { return "{" + name + "}" },
		func(name string) string { catchAll = name; return "*" },
	)

	b.router.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			h.ServeHTTP(w, r)
			return
		}

		params := make(map[string]string, len(rctx.URLParams.Keys))
		for i, key := range rctx.URLParams.Keys {
			if key == "*" && catchAll != "" {
				key = catchAll
			}
			params[key] = rctx.URLParams.Values[i]
		}
		h.ServeHTTP(w, withParams(r, params))
	}))
}

func (b *ChiBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

package extras

import (
	"net/http"

	"github.com/uptrace/bunrouter"
)

// BunRouterBackend wraps uptrace/bunrouter, which shares the canonical
// path syntax.
type BunRouterBackend struct {
	router *bunrouter.Router
}

// NewBunRouterBackend creates a bunrouter backend.
func NewBunRouterBackend() *BunRouterBackend {
	router := bunrouter.New(
		bunrouter.WithNotFoundHandler(func(w http.ResponseWriter, req bunrouter.Request) error {
			http.NotFound(w, req.Request)
			return nil
		}),
	)

	return &BunRouterBackend{router: router}
}

func (b *BunRouterBackend) Name() string { return BackendBunRouter }

// Handle registers h on path for every standard method.
func (b *BunRouterBackend) Handle(path string, h http.Handler) {
	handle := func(w http.ResponseWriter, req bunrouter.Request) error {
		h.ServeHTTP(w, withParams(req.Request, req.Params().Map()))
		return nil
	}

	for _, method := range methods {
		b.router.Handle(method, path, handle)
	}
}

func (b *BunRouterBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

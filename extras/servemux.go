package extras

import (
	"net/http"
	"strings"
)

// ServeMuxBackend uses the net/http ServeMux wildcard patterns.
type ServeMuxBackend struct {
	mux *http.ServeMux
}

// NewServeMuxBackend creates a ServeMux backend.
func NewServeMuxBackend() *ServeMuxBackend {
	return &ServeMuxBackend{mux: http.NewServeMux()}
}

func (b *ServeMuxBackend) Name() string { return BackendStd }

// Handle registers h on path. ":id" becomes "{id}" and "*rest" becomes
// "{rest...}". A trailing slash matches exactly, as on the other backends.
func (b *ServeMuxBackend) Handle(path string, h http.Handler) {
	pattern := translate(path,
		func(name string) string { return "{" + name + "}" },
		func(name string) string { return "{" + name + "...}" },
	)
	if strings.HasSuffix(pattern, "/") {
		pattern += "{$}"
	}
	names := paramNames(path)

	b.mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(names))
		for _, name := range names {
			params[name] = r.PathValue(name)
		}
		h.ServeHTTP(w, withParams(r, params))
	}))
}

func (b *ServeMuxBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mux.ServeHTTP(w, r)
}

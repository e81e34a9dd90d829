package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/logger"
)

// RequestIDHeader is the header carrying the request id.
const RequestIDHeader = "X-Request-ID"

type pathParamsKey struct{}

// WithPathParams attaches path parameters resolved by a router backend.
func WithPathParams(ctx context.Context, params map[string]string) context.Context {
	return context.WithValue(ctx, pathParamsKey{}, params)
}

// PathParams returns the parameters attached with WithPathParams, or nil.
func PathParams(ctx context.Context) map[string]string {
	params, _ := ctx.Value(pathParamsKey{}).(map[string]string)
	return params
}

// Method extracts the request method.
func Method() Extractor[string] {
	return Func[string](func(r *http.Request) (string, error) {
		return r.Method, nil
	})
}

// URI extracts a copy of the request URL.
func URI() Extractor[*url.URL] {
	return Func[*url.URL](func(r *http.Request) (*url.URL, error) {
		u := *r.URL
		return &u, nil
	})
}

// Headers extracts a copy of the request headers.
func Headers() Extractor[http.Header] {
	return Func[http.Header](func(r *http.Request) (http.Header, error) {
		return r.Header.Clone(), nil
	})
}

// Header extracts a required header value.
func Header(name string) Extractor[string] {
	return Func[string](func(r *http.Request) (string, error) {
		v := r.Header.Get(name)
		if v == "" {
			return "", errors.BadRequest(fmt.Sprintf("missing header %q", name))
		}
		return v, nil
	})
}

// Query extracts a required query parameter.
func Query(name string) Extractor[string] {
	return Func[string](func(r *http.Request) (string, error) {
		values := r.URL.Query()
		if !values.Has(name) {
			return "", errors.BadRequest(fmt.Sprintf("missing query parameter %q", name))
		}
		return values.Get(name), nil
	})
}

// QueryInt extracts a required integer query parameter.
func QueryInt(name string) Extractor[int] {
	raw := Query(name)
	return Func[int](func(r *http.Request) (int, error) {
		s, err := raw.Extract(r)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.BadRequest(fmt.Sprintf("query parameter %q must be an integer", name)).WithCause(err)
		}
		return n, nil
	})
}

// Path extracts a path parameter published by the router backend, falling
// back to the net/http ServeMux wildcard of the same name.
func Path(name string) Extractor[string] {
	return Func[string](func(r *http.Request) (string, error) {
		if v, ok := PathParams(r.Context())[name]; ok {
			return v, nil
		}
		if v := r.PathValue(name); v != "" {
			return v, nil
		}
		return "", errors.BadRequest(fmt.Sprintf("missing path parameter %q", name))
	})
}

// RequestID extracts the request id, preferring the one attached to the
// context by the request id layer, then the header, and generating one when
// neither is present.
func RequestID() Extractor[string] {
	return Func[string](func(r *http.Request) (string, error) {
		if id := logger.RequestIDFromContext(r.Context()); id != "" {
			return id, nil
		}
		if id := r.Header.Get(RequestIDHeader); id != "" {
			return id, nil
		}
		return uuid.NewString(), nil
	})
}

// Value extracts a typed value stored in the request context under key.
func Value[T any](key any) Extractor[T] {
	return Func[T](func(r *http.Request) (T, error) {
		v, ok := r.Context().Value(key).(T)
		if !ok {
			var zero T
			return zero, errors.InternalError(fmt.Errorf("context value %v missing or of the wrong type", key))
		}
		return v, nil
	})
}

// Optional never rejects: a rejection of e becomes a nil pointer. Whatever e
// did to the request, including taking the body, still happens.
func Optional[T any](e Extractor[T]) Extractor[*T] {
	return Func[*T](func(r *http.Request) (*T, error) {
		v, err := e.Extract(r)
		if err != nil {
			return nil, nil
		}
		return &v, nil
	})
}

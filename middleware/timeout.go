package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

type callResult struct {
	res      *response.Response
	err      error
	panicked any
}

// Timeout bounds the inner Call. When d elapses first the request context is
// cancelled and the call fails with a 504 error wrapping errors.ErrTimeout.
// A late response is discarded. A panic in the inner call is re-raised on
// the calling goroutine so an outer Recovery layer sees it.
func Timeout(d time.Duration) service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			done := make(chan callResult, 1)
			go func() {
				var out callResult
				defer func() {
					if p := recover(); p != nil {
						out = callResult{panicked: p}
					}
					done <- out
				}()
				out.res, out.err = next.Call(r.WithContext(ctx))
			}()

			select {
			case out := <-done:
				if out.panicked != nil {
					panic(out.panicked)
				}
				return out.res, out.err
			case <-ctx.Done():
				if r.Context().Err() != nil {
					return nil, r.Context().Err()
				}
				go discard(done)
				return nil, errors.NewHTTPError(http.StatusGatewayTimeout, "request timed out").WithCause(errors.ErrTimeout)
			}
		})
	}
}

func discard(done <-chan callResult) {
	out := <-done
	if out.res != nil && out.res.Body != nil {
		_ = out.res.Body.Close()
	}
}

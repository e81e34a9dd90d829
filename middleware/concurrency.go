package middleware

import (
	"context"
	"net/http"

	"golang.org/x/sync/semaphore"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// ConcurrencyLimit allows at most n calls in flight. Call holds a slot for
// its whole duration and fails with a 503 wrapping errors.ErrOverloaded when
// the request context ends before one frees up. Ready only waits until a
// slot is free and holds nothing, so outer layers may skip Call safely.
func ConcurrencyLimit(n int64) service.Layer {
	sem := semaphore.NewWeighted(n)
	return func(next service.Service) service.Service {
		return &concurrencyLimit{next: next, sem: sem}
	}
}

type concurrencyLimit struct {
	next service.Service
	sem  *semaphore.Weighted
}

func (c *concurrencyLimit) Ready(ctx context.Context) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return overloaded(err)
	}
	c.sem.Release(1)
	return c.next.Ready(ctx)
}

func (c *concurrencyLimit) Call(r *http.Request) (*response.Response, error) {
	if err := c.sem.Acquire(r.Context(), 1); err != nil {
		return nil, overloaded(err)
	}
	defer c.sem.Release(1)
	return c.next.Call(r)
}

func overloaded(cause error) error {
	return errors.ServiceUnavailable("too many requests in flight").WithCause(errors.Join(errors.ErrOverloaded, cause))
}

package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// RateLimit shares one token bucket across all requests. Ready waits for a
// token; when the request context ends first it fails with a 429 wrapping
// errors.ErrOverloaded.
func RateLimit(limit rate.Limit, burst int) service.Layer {
	limiter := rate.NewLimiter(limit, burst)
	return func(next service.Service) service.Service {
		return &rateLimited{next: next, limiter: limiter}
	}
}

type rateLimited struct {
	next    service.Service
	limiter *rate.Limiter
}

func (l *rateLimited) Ready(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return tooManyRequests(err)
	}
	return l.next.Ready(ctx)
}

func (l *rateLimited) Call(r *http.Request) (*response.Response, error) {
	return l.next.Call(r)
}

func tooManyRequests(cause error) error {
	return errors.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded").
		WithCause(errors.Join(errors.ErrOverloaded, cause))
}

// KeyFunc picks the bucket a request is charged to.
type KeyFunc func(r *http.Request) string

// ClientIP keys requests by the remote address without its port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimiter keeps one token bucket per key.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a keyed limiter. Buckets unused for idle are
// dropped.
func NewRateLimiter(limit rate.Limit, burst int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*clientBucket),
		limit:   limit,
		burst:   burst,
		idle:    idle,
		now:     time.Now,
	}
}

// Allow takes a token from key's bucket without waiting.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		rl.prune(now)
		b = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Len returns the number of live buckets.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

func (rl *RateLimiter) prune(now time.Time) {
	if rl.idle <= 0 {
		return
	}
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.idle {
			delete(rl.buckets, key)
		}
	}
}

// RateLimitPerClient rejects a request with 429 when its key's bucket is
// empty. A nil key function uses ClientIP.
func RateLimitPerClient(limiter *RateLimiter, key KeyFunc) service.Layer {
	if key == nil {
		key = ClientIP
	}
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			if !limiter.Allow(key(r)) {
				return nil, tooManyRequests(nil)
			}
			return next.Call(r)
		})
	}
}

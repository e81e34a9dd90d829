package observability

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/xraph/dispatch/handler"
	"github.com/xraph/dispatch/response"
)

// HealthStatus is the outcome of a health check.
type HealthStatus string

const (
	HealthStatusUp      HealthStatus = "up"
	HealthStatusDown    HealthStatus = "down"
	HealthStatusUnknown HealthStatus = "unknown"
)

// CheckFunc reports an unhealthy dependency by returning an error.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of one named check.
type CheckResult struct {
	Status   HealthStatus `json:"status"`
	Error    string       `json:"error,omitempty"`
	Duration string       `json:"duration"`
}

// Report aggregates every registered check.
type Report struct {
	Status    HealthStatus           `json:"status"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Health runs named checks with a shared timeout.
type Health struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	timeout time.Duration
}

// NewHealth creates a Health whose checks are bounded by timeout.
func NewHealth(timeout time.Duration) *Health {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Health{checks: make(map[string]CheckFunc), timeout: timeout}
}

// RegisterCheck adds or replaces the check called name.
func (h *Health) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Check runs all checks in name order. With no checks registered the
// service is considered up.
func (h *Health) Check(ctx context.Context) Report {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()
	sort.Strings(names)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	report := Report{Status: HealthStatusUp, Timestamp: time.Now()}
	if len(names) > 0 {
		report.Checks = make(map[string]CheckResult, len(names))
	}

	for _, name := range names {
		start := time.Now()
		err := checks[name](ctx)

		result := CheckResult{Status: HealthStatusUp, Duration: time.Since(start).String()}
		if err != nil {
			result.Status = HealthStatusDown
			result.Error = err.Error()
			report.Status = HealthStatusDown
		}
		report.Checks[name] = result
	}

	return report
}

// Handler serves the report as JSON, with 503 when any check is down.
func (h *Health) Handler() handler.Handler {
	return handler.Func(func(r *http.Request) response.IntoResponse {
		report := h.Check(r.Context())
		if report.Status == HealthStatusDown {
			return response.WithStatus(http.StatusServiceUnavailable, response.JSON(report))
		}
		return response.JSON(report)
	})
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// MetricsConfig configures request metrics.
type MetricsConfig struct {
	Namespace string
	Subsystem string

	// Registerer receives the collectors. Defaults to
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// Buckets are the latency histogram buckets in seconds. Defaults to
	// prometheus.DefBuckets.
	Buckets []float64
}

// Metrics holds the request collectors shared by every service it wraps.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics creates and registers the request collectors.
func NewMetrics(config MetricsConfig) (*Metrics, error) {
	if config.Registerer == nil {
		config.Registerer = prometheus.DefaultRegisterer
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "requests_total",
			Help:      "Requests handled, by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling requests.",
			Buckets:   config.Buckets,
		}, []string{"method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "requests_in_flight",
			Help:      "Requests currently being handled.",
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.inFlight} {
		if err := config.Registerer.Register(c); err != nil {
			return nil, errors.ErrConfigError("register request metrics", err)
		}
	}

	return m, nil
}

// Layer records every request passing through the wrapped service.
func (m *Metrics) Layer() service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			m.inFlight.Inc()
			start := time.Now()

			res, err := next.Call(r)

			m.inFlight.Dec()
			m.duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())

			status := http.StatusOK
			if err != nil {
				status = errors.StatusCode(err)
			} else if res != nil && res.StatusCode != 0 {
				status = res.StatusCode
			}
			m.requests.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()

			return res, err
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// LoggingConfig defines configuration for the logging layer.
type LoggingConfig struct {
	// IncludeHeaders logs request headers.
	IncludeHeaders bool

	// ExcludePaths are not logged.
	ExcludePaths []string

	// SensitiveHeaders are redacted when headers are logged.
	SensitiveHeaders []string
}

// DefaultLoggingConfig returns the default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		IncludeHeaders:   false,
		ExcludePaths:     []string{"/health", "/metrics"},
		SensitiveHeaders: []string{"Authorization", "Cookie", "Set-Cookie"},
	}
}

// Logging logs every request with its status and duration.
func Logging(l logger.Logger) service.Layer {
	return LoggingWithConfig(l, DefaultLoggingConfig())
}

// LoggingWithConfig logs requests with a custom configuration.
func LoggingWithConfig(l logger.Logger, config LoggingConfig) service.Layer {
	excluded := make(map[string]bool, len(config.ExcludePaths))
	for _, path := range config.ExcludePaths {
		excluded[path] = true
	}

	sensitive := make(map[string]bool, len(config.SensitiveHeaders))
	for _, h := range config.SensitiveHeaders {
		sensitive[http.CanonicalHeaderKey(h)] = true
	}

	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			if excluded[r.URL.Path] {
				return next.Call(r)
			}

			start := time.Now()
			res, err := next.Call(r)

			status := http.StatusOK
			if err != nil {
				status = errors.StatusCode(err)
			} else if res != nil && res.StatusCode != 0 {
				status = res.StatusCode
			}

			fields := []logger.Field{
				logger.HTTPMethod(r.Method),
				logger.HTTPPath(r.URL.Path),
				logger.HTTPStatus(status),
				logger.Duration("duration", time.Since(start)),
			}
			if config.IncludeHeaders {
				fields = append(fields, logger.Any("headers", redact(r.Header, sensitive)))
			}

			log := l.WithContext(r.Context())
			switch {
			case err != nil:
				log.Error("request failed", append(fields, logger.Error(err))...)
			case status >= http.StatusInternalServerError:
				log.Warn("request completed", fields...)
			default:
				log.Info("request completed", fields...)
			}

			return res, err
		})
	}
}

func redact(h http.Header, sensitive map[string]bool) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		if sensitive[k] {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}

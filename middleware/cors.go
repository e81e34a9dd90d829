package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// CORSConfig defines Cross-Origin Resource Sharing behaviour.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// DefaultCORSConfig allows any origin with the common methods and headers.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}
}

// CORS answers preflight requests itself and decorates other responses
// from allowed origins. Requests from other origins pass through without
// CORS headers; preflights from them get 403.
func CORS(config CORSConfig) service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			origin := r.Header.Get("Origin")
			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

			if origin == "" {
				return next.Call(r)
			}

			if !config.originAllowed(origin) {
				if preflight {
					return response.New(http.StatusForbidden, nil), nil
				}
				return next.Call(r)
			}

			if preflight {
				res := response.New(http.StatusNoContent, nil)
				config.setOrigin(res.Header, origin)
				res.Header.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				if len(config.AllowedHeaders) > 0 {
					res.Header.Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				}
				if config.MaxAge > 0 {
					res.Header.Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
				return res, nil
			}

			res, err := next.Call(r)
			if res != nil {
				res = response.Box(res)
				config.setOrigin(res.Header, origin)
				if len(config.ExposedHeaders) > 0 {
					res.Header.Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
				}
			}
			return res, err
		})
	}
}

func (c CORSConfig) originAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
		if prefix, ok := strings.CutPrefix(allowed, "*."); ok {
			if strings.HasSuffix(origin, "."+prefix) {
				return true
			}
		}
	}
	return false
}

func (c CORSConfig) setOrigin(h http.Header, origin string) {
	wildcard := len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*"
	if wildcard && !c.AllowCredentials {
		h.Set("Access-Control-Allow-Origin", "*")
	} else {
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
	}
	if c.AllowCredentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// RequestID ensures every request carries an id. An incoming X-Request-ID is
// kept, otherwise a UUID is generated. The id is stored in the request
// context, where logger.WithContext and extract.RequestID find it, and
// echoed on the response.
func RequestID() service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			id := r.Header.Get(extract.RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
				r.Header.Set(extract.RequestIDHeader, id)
			}

			res, err := next.Call(r.WithContext(logger.WithRequestID(r.Context(), id)))
			if res != nil {
				res = response.Box(res)
				res.Header.Set(extract.RequestIDHeader, id)
			}
			return res, err
		})
	}
}

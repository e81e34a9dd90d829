package middleware

import (
	"fmt"
	"net/http"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// BodyLimit rejects requests whose declared length exceeds limit and caps
// the body reader at limit bytes, so a body extractor that reads past it
// fails with 413.
func BodyLimit(limit int64) service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			if r.ContentLength > limit {
				return nil, errors.PayloadTooLarge(fmt.Sprintf("request body exceeds %d bytes", limit))
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(nil, r.Body, limit)
			}
			return next.Call(r)
		})
	}
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// Recovery turns a panic in the inner service into a 500 error and logs it
// with a stack trace.
func Recovery(l logger.Logger) service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (res *response.Response, err error) {
			defer func() {
				if p := recover(); p != nil {
					if l != nil {
						l.WithContext(r.Context()).Error("panic recovered",
							logger.Any("panic", p),
							logger.HTTPMethod(r.Method),
							logger.HTTPPath(r.URL.Path),
							logger.Stack("stack"),
						)
					}
					res, err = nil, errors.InternalError(fmt.Errorf("panic: %v", p))
				}
			}()

			return next.Call(r)
		})
	}
}

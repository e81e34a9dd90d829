package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/middleware"
	"github.com/xraph/dispatch/response"
)

func TestRequestID(t *testing.T) {
	var seen string
	inner := &stub{call: func(r *http.Request) (*response.Response, error) {
		seen = logger.RequestIDFromContext(r.Context())
		return response.Empty(), nil
	}}

	svc := middleware.RequestID()(inner)

	t.Run("generates", func(t *testing.T) {
		res, err := run(t, svc, newRequest(http.MethodGet, "/"))
		require.NoError(t, err)

		id := res.Header.Get(extract.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps incoming", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/")
		req.Header.Set(extract.RequestIDHeader, "req-123")

		res, err := run(t, svc, req)
		require.NoError(t, err)
		assert.Equal(t, "req-123", res.Header.Get(extract.RequestIDHeader))
		assert.Equal(t, "req-123", seen)
	})
}

func TestRequestID_VisibleToExtractor(t *testing.T) {
	var extracted string
	inner := &stub{call: func(r *http.Request) (*response.Response, error) {
		id, err := extract.RequestID().Extract(r)
		extracted = id
		return response.Empty(), err
	}}

	res, err := run(t, middleware.RequestID()(inner), newRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, res.Header.Get(extract.RequestIDHeader), extracted)
}

package middleware_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/middleware"
)

func TestCompress(t *testing.T) {
	payload := strings.Repeat("dispatch ", 100)
	svc := middleware.Compress(gzip.BestSpeed)(respond(http.StatusOK, payload))

	t.Run("gzip accepted", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/")
		req.Header.Set("Accept-Encoding", "gzip, deflate")

		res, err := run(t, svc, req)
		require.NoError(t, err)
		assert.Equal(t, "gzip", res.Header.Get("Content-Encoding"))

		zr, err := gzip.NewReader(res.Body)
		require.NoError(t, err)
		data, err := io.ReadAll(zr)
		require.NoError(t, err)
		require.NoError(t, res.Body.Close())
		assert.Equal(t, payload, string(data))
	})

	t.Run("gzip not accepted", func(t *testing.T) {
		res, err := run(t, svc, newRequest(http.MethodGet, "/"))
		require.NoError(t, err)
		assert.Empty(t, res.Header.Get("Content-Encoding"))
		assert.Equal(t, payload, bodyOf(t, res))
	})

	t.Run("invalid level passes through", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/")
		req.Header.Set("Accept-Encoding", "gzip")

		res, err := run(t, middleware.Compress(42)(respond(http.StatusOK, "raw")), req)
		require.NoError(t, err)
		assert.Equal(t, "raw", bodyOf(t, res))
	})
}

package server_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/config"
	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/handler"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/routing"
	"github.com/xraph/dispatch/server"
)

func newServer(t *testing.T, mutate func(*config.Config)) *server.Server {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}

	s, err := server.New(context.Background(), cfg,
		server.WithLogger(logger.NewNoopLogger()),
		server.WithRegistry(prometheus.NewRegistry()),
		server.WithBanner(nil),
	)
	require.NoError(t, err)
	return s
}

func do(s *server.Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func greet() handler.Handler {
	return handler.Func1(
		func(_ *http.Request, id string) response.String { return response.String("user " + id) },
		extract.Path("id"),
	)
}

func TestServer_Routes(t *testing.T) {
	for _, backend := range []string{"std", "chi", "httprouter", "bunrouter"} {
		t.Run(backend, func(t *testing.T) {
			s := newServer(t, func(c *config.Config) { c.Server.Backend = backend })
			s.Route("/users/:id", routing.Get(greet()))

			rec := do(s, http.MethodGet, "/users/7")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "user 7", rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

			rec = do(s, http.MethodPost, "/users/7")
			assert.Equal(t, http.StatusNotFound, rec.Code)

			assert.Equal(t, []string{"/health", "/users/:id"}, s.Routes())
		})
	}
}

func TestServer_Health(t *testing.T) {
	s := newServer(t, nil)

	rec := do(s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	s.Health().RegisterCheck("db", func(context.Context) error { return fmt.Errorf("unreachable") })
	rec = do(s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	s := newServer(t, nil)
	s.Route("/ping", routing.Get(handler.Func(func(*http.Request) response.String { return "pong" })))

	require.Equal(t, http.StatusOK, do(s, http.MethodGet, "/ping").Code)

	rec := do(s, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dispatch_http_requests_total{code="200",method="GET"} 1`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Metrics.Enabled = false })

	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/metrics").Code)
}

func TestServer_Timeout(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Limits.RequestTimeout = 20 * time.Millisecond })
	s.Route("/slow", routing.Get(handler.Func(func(r *http.Request) response.StatusCode {
		<-r.Context().Done()
		return http.StatusOK
	})))

	rec := do(s, http.MethodGet, "/slow")
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "GATEWAY_TIMEOUT")
}

func TestServer_Panic(t *testing.T) {
	s := newServer(t, nil)
	s.Route("/panic", routing.Get(handler.Func(func(*http.Request) response.String { panic("boom") })))

	rec := do(s, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Limits.MaxBodyBytes = 4 })
	s.Route("/echo", routing.Post(handler.Func1(
		func(_ *http.Request, body string) response.String { return response.String(body) },
		extract.String(0),
	)))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Backend = "unknown"

	_, err := server.New(context.Background(), cfg, server.WithLogger(logger.NewNoopLogger()))
	assert.Error(t, err)
}

func TestServer_Serve(t *testing.T) {
	var banner bytes.Buffer
	cfg := config.Default()
	s, err := server.New(context.Background(), cfg,
		server.WithLogger(logger.NewNoopLogger()),
		server.WithRegistry(prometheus.NewRegistry()),
		server.WithBanner(&banner),
	)
	require.NoError(t, err)
	s.Route("/ping", routing.Get(handler.Func(func(*http.Request) response.String { return "pong" })))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Contains(t, banner.String(), "/ping")
}

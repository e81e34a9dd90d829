package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// stub is an inner service with scripted behaviour.
type stub struct {
	readyErr error
	call     func(r *http.Request) (*response.Response, error)
	readies  int
}

func (s *stub) Ready(context.Context) error {
	s.readies++
	return s.readyErr
}

func (s *stub) Call(r *http.Request) (*response.Response, error) {
	if s.call == nil {
		return response.String("ok").IntoResponse(), nil
	}
	return s.call(r)
}

func respond(status int, body string) *stub {
	return &stub{call: func(*http.Request) (*response.Response, error) {
		return response.WithStatus(status, response.String(body)).IntoResponse(), nil
	}}
}

func fail(err error) *stub {
	return &stub{call: func(*http.Request) (*response.Response, error) {
		return nil, err
	}}
}

func run(t *testing.T, svc service.Service, r *http.Request) (*response.Response, error) {
	t.Helper()
	return service.Oneshot(svc, r)
}

func bodyOf(t *testing.T, res *response.Response) string {
	t.Helper()
	data, err := res.ReadAll()
	require.NoError(t, err)
	return string(data)
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func observed() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

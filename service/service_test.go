package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

type recordingService struct {
	readyErr error
	callErr  error
	readies  int
	calls    int
}

func (s *recordingService) Ready(context.Context) error {
	s.readies++
	return s.readyErr
}

func (s *recordingService) Call(*http.Request) (*response.Response, error) {
	s.calls++
	if s.callErr != nil {
		return nil, s.callErr
	}
	return response.String("ok").IntoResponse(), nil
}

func tag(name string, order *[]string) service.Layer {
	return func(next service.Service) service.Service {
		return service.Func(func(r *http.Request) (*response.Response, error) {
			*order = append(*order, name)
			return service.Oneshot(next, r)
		})
	}
}

func TestStack_FirstLayerOutermost(t *testing.T) {
	var order []string
	inner := service.Func(func(*http.Request) (*response.Response, error) {
		order = append(order, "inner")
		return response.Empty(), nil
	})

	svc := service.Apply(inner, tag("a", &order), nil, tag("b", &order))
	_, err := service.Oneshot(svc, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "inner"}, order)
}

func TestOneshot(t *testing.T) {
	t.Run("ready then call once", func(t *testing.T) {
		svc := &recordingService{}
		res, err := service.Oneshot(svc, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 1, svc.readies)
		assert.Equal(t, 1, svc.calls)
	})

	t.Run("ready failure skips call", func(t *testing.T) {
		boom := errors.New("not ready")
		svc := &recordingService{readyErr: boom}
		_, err := service.Oneshot(svc, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, svc.calls)
	})

	t.Run("nil response is empty", func(t *testing.T) {
		svc := service.Func(func(*http.Request) (*response.Response, error) { return nil, nil })
		res, err := service.Oneshot(svc, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}

func TestHandleError(t *testing.T) {
	toTeapot := func(err error) response.IntoResponse {
		return response.WithStatus(http.StatusTeapot, response.String(err.Error()))
	}

	tests := []struct {
		name   string
		svc    *recordingService
		status int
		body   string
	}{
		{"success passes through", &recordingService{}, http.StatusOK, "ok"},
		{"call error mapped", &recordingService{callErr: errors.New("call failed")}, http.StatusTeapot, "call failed"},
		{"ready error mapped", &recordingService{readyErr: errors.New("busy")}, http.StatusTeapot, "busy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := service.HandleError(tt.svc, toTeapot)

			require.NoError(t, unit.Ready(context.Background()))
			res, err := unit.Call(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)

			data, err := res.ReadAll()
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, tt.body, string(data))
		})
	}
}

func TestToHTTP(t *testing.T) {
	unit := service.HandleError(&recordingService{}, func(error) response.IntoResponse { return nil })

	rec := httptest.NewRecorder()
	service.ToHTTP(unit).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestLift(t *testing.T) {
	unit := service.HandleError(&recordingService{}, nil)
	assert.Same(t, unit, service.Lift(unit))
}

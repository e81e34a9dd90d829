package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/middleware"
	"github.com/xraph/dispatch/routing"
)

func call(t *testing.T, m routing.OnMethod, method, target string, body io.Reader, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if params != nil {
		req = req.WithContext(extract.WithPathParams(req.Context(), params))
	}

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)
	return rec
}

func TestNoteRoutes_Lifecycle(t *testing.T) {
	routes := newNoteRoutes(newNoteStore(), middleware.NewRateLimiter(100, 100, 0))
	id := map[string]string{"id": "1"}

	rec := call(t, routes.collection, http.MethodPost, "/notes", strings.NewReader(`{"title":"groceries","body":"milk"}`), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created note
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "groceries", created.Title)

	rec = call(t, routes.item, http.MethodGet, "/notes/1", nil, id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"milk"`)

	rec = call(t, routes.item, http.MethodPut, "/notes/1", strings.NewReader(`{"title":"groceries","body":"eggs"}`), id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eggs"`)

	rec = call(t, routes.collection, http.MethodGet, "/notes", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []note
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	rec = call(t, routes.index, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>groceries</strong>")

	rec = call(t, routes.item, http.MethodDelete, "/notes/1", nil, id)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, routes.item, http.MethodGet, "/notes/1", nil, id)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteRoutes_Rejections(t *testing.T) {
	routes := newNoteRoutes(newNoteStore(), middleware.NewRateLimiter(100, 100, 0))

	rec := call(t, routes.collection, http.MethodPost, "/notes", strings.NewReader(`{"body":"no title"}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, routes.item, http.MethodGet, "/notes/abc", nil, map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// the id is rejected before the body is read
	rec = call(t, routes.item, http.MethodPut, "/notes/abc", strings.NewReader(`not json`), map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "integer")

	rec = call(t, routes.collection, http.MethodPatch, "/notes", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestEchoRoute(t *testing.T) {
	routes := newNoteRoutes(newNoteStore(), middleware.NewRateLimiter(100, 100, 0))

	payload, err := proto.Marshal(wrapperspb.String("hi"))
	require.NoError(t, err)

	rec := call(t, routes.echo, http.MethodPost, "/echo", bytes.NewReader(payload), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out wrapperspb.StringValue
	require.NoError(t, proto.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "echo: hi", out.GetValue())
}

func TestNoteRoutes_CreateRateLimited(t *testing.T) {
	routes := newNoteRoutes(newNoteStore(), middleware.NewRateLimiter(0, 1, 0))
	body := `{"title":"a"}`

	rec := call(t, routes.collection, http.MethodPost, "/notes", strings.NewReader(body), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, routes.collection, http.MethodPost, "/notes", strings.NewReader(body), nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "slow down")
}

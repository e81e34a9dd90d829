package response

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/proto"
	g "maragu.dev/gomponents"

	"github.com/xraph/dispatch/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Content types set by the value responses.
const (
	ContentTypeText     = "text/plain; charset=utf-8"
	ContentTypeHTML     = "text/html; charset=utf-8"
	ContentTypeJSON     = "application/json"
	ContentTypeProtobuf = "application/x-protobuf"
	ContentTypeBinary   = "application/octet-stream"
)

// String is a 200 text/plain response.
type String string

func (s String) IntoResponse() *Response {
	return withBody(http.StatusOK, ContentTypeText, io.NopCloser(strings.NewReader(string(s))))
}

// Bytes is a 200 application/octet-stream response.
type Bytes []byte

func (b Bytes) IntoResponse() *Response {
	return withBody(http.StatusOK, ContentTypeBinary, io.NopCloser(bytes.NewReader(b)))
}

// StatusCode is an empty response with the given status.
type StatusCode int

func (c StatusCode) IntoResponse() *Response {
	return New(int(c), nil)
}

// JSONBody is a 200 application/json response encoding Value.
type JSONBody[T any] struct {
	Value T
}

// JSON wraps v so it is encoded as the response body.
func JSON[T any](v T) JSONBody[T] {
	return JSONBody[T]{Value: v}
}

func (j JSONBody[T]) IntoResponse() *Response {
	data, err := json.Marshal(j.Value)
	if err != nil {
		return FromError(errors.InternalError(err))
	}
	return withBody(http.StatusOK, ContentTypeJSON, io.NopCloser(bytes.NewReader(data)))
}

// HTML renders a gomponents node as a 200 text/html response.
type HTML struct {
	Node g.Node
}

func (h HTML) IntoResponse() *Response {
	var buf bytes.Buffer
	if h.Node != nil {
		if err := h.Node.Render(&buf); err != nil {
			return FromError(errors.InternalError(err))
		}
	}
	return withBody(http.StatusOK, ContentTypeHTML, io.NopCloser(&buf))
}

// Proto encodes a protobuf message as a 200 application/x-protobuf response.
type Proto struct {
	Message proto.Message
}

func (p Proto) IntoResponse() *Response {
	data, err := proto.Marshal(p.Message)
	if err != nil {
		return FromError(errors.InternalError(err))
	}
	return withBody(http.StatusOK, ContentTypeProtobuf, io.NopCloser(bytes.NewReader(data)))
}

type withStatus struct {
	code  int
	inner IntoResponse
}

func (w withStatus) IntoResponse() *Response {
	res := Into(w.inner)
	res.StatusCode = w.code
	return res
}

// WithStatus overrides the status of inner.
func WithStatus(code int, inner IntoResponse) IntoResponse {
	return withStatus{code: code, inner: inner}
}

type withHeader struct {
	key, value string
	inner      IntoResponse
}

func (w withHeader) IntoResponse() *Response {
	res := Into(w.inner)
	res.Header.Set(w.key, w.value)
	return res
}

// WithHeader sets a header on the response produced by inner.
func WithHeader(key, value string, inner IntoResponse) IntoResponse {
	return withHeader{key: key, value: value, inner: inner}
}

// Redirect returns an empty response pointing at location.
func Redirect(status int, location string) *Response {
	res := New(status, nil)
	res.Header.Set("Location", location)
	return res
}

func withBody(status int, contentType string, body io.ReadCloser) *Response {
	res := New(status, body)
	res.Header.Set("Content-Type", contentType)
	return res
}

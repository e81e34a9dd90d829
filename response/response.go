package response

import (
	"fmt"
	"io"
	"net/http"
)

// Response is a fully formed HTTP response waiting to be written. Body is the
// single boxed body type every unit produces, whatever it was built from.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// IntoResponse is implemented by anything that can be turned into a Response.
type IntoResponse interface {
	IntoResponse() *Response
}

// New creates a response with the given status and body. A nil body is
// replaced with http.NoBody.
func New(status int, body io.ReadCloser) *Response {
	return Box(&Response{StatusCode: status, Body: body})
}

// Empty returns a 200 response with no body.
func Empty() *Response {
	return New(http.StatusOK, nil)
}

// IntoResponse returns r itself.
func (r *Response) IntoResponse() *Response {
	return r
}

// ReadAll drains and closes the body.
func (r *Response) ReadAll() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}

// Into converts v, treating a nil value or a nil result as Empty.
func Into(v IntoResponse) *Response {
	if v == nil {
		return Empty()
	}
	res := v.IntoResponse()
	if res == nil {
		return Empty()
	}
	return Box(res)
}

// Box normalizes res in place so every field is usable: status defaults to
// 200, header and body are never nil. A nil res becomes Empty().
func Box(res *Response) *Response {
	if res == nil {
		return Empty()
	}
	if res.StatusCode == 0 {
		res.StatusCode = http.StatusOK
	}
	if res.Header == nil {
		res.Header = make(http.Header)
	}
	if res.Body == nil {
		res.Body = http.NoBody
	}
	return res
}

// Write copies res onto w and closes its body.
func Write(w http.ResponseWriter, res *Response) error {
	res = Box(res)
	defer res.Body.Close()

	dst := w.Header()
	for k, vs := range res.Header {
		dst[k] = append(dst[k][:0:0], vs...)
	}

	w.WriteHeader(res.StatusCode)

	if _, err := io.Copy(w, res.Body); err != nil {
		return fmt.Errorf("write response body: %w", err)
	}
	return nil
}

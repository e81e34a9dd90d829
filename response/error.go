package response

import (
	"bytes"
	"io"
	"net/http"

	"github.com/xraph/dispatch/errors"
)

// FromError converts err into a response. Errors that know how to render
// themselves are used as is; *errors.HTTPError renders its status with a JSON
// body; everything else is a 500.
func FromError(err error) *Response {
	if err == nil {
		return Empty()
	}

	var into IntoResponse
	if errors.As(err, &into) {
		return Into(into)
	}

	var httpErr *errors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = errors.InternalError(err)
	}

	data, mErr := json.Marshal(httpErr.ResponseBody())
	if mErr != nil {
		return withBody(http.StatusInternalServerError, ContentTypeText,
			io.NopCloser(bytes.NewReader([]byte(http.StatusText(http.StatusInternalServerError)))))
	}

	return withBody(httpErr.Code, ContentTypeJSON, io.NopCloser(bytes.NewReader(data)))
}

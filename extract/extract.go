// Package extract defines how typed values are pulled out of a request
// before a handler runs, and ships the common extractors.
//
// Extractors run one after another in the order a handler declares them. They
// share the same *http.Request, so an extractor may leave state behind for
// the next one, but only one of them may consume the body: body extractors
// go through TakeBody, and a second attempt is rejected.
package extract

import (
	"io"
	"net/http"

	"github.com/xraph/dispatch/errors"
)

// Extractor produces a T from a request. A non-nil error is the rejection:
// it is converted to a response and no later extractor or handler runs.
type Extractor[T any] interface {
	Extract(r *http.Request) (T, error)
}

// Func adapts a plain function to Extractor.
type Func[T any] func(r *http.Request) (T, error)

// Extract calls f.
func (f Func[T]) Extract(r *http.Request) (T, error) {
	return f(r)
}

// takenBody marks a request whose body has been consumed by an extractor.
type takenBody struct{}

func (takenBody) Read([]byte) (int, error) { return 0, io.EOF }
func (takenBody) Close() error             { return nil }

// TakeBody hands the request body to the caller and leaves a marker behind so
// a second body extractor fails with errors.ErrBodyAlreadyExtracted.
func TakeBody(r *http.Request) (io.ReadCloser, error) {
	if _, ok := r.Body.(takenBody); ok {
		return nil, errors.InternalError(errors.ErrBodyAlreadyExtracted)
	}

	body := r.Body
	if body == nil {
		body = http.NoBody
	}
	r.Body = takenBody{}

	return body, nil
}

// BodyTaken reports whether an extractor already consumed the body of r.
func BodyTaken(r *http.Request) bool {
	_, ok := r.Body.(takenBody)
	return ok
}

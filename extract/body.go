package extract

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/proto"

	"github.com/xraph/dispatch/errors"
)

// DefaultMaxBodyBytes bounds body extractors built without an explicit limit.
const DefaultMaxBodyBytes int64 = 2 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func readBody(r *http.Request, limit int64) ([]byte, error) {
	body, err := TakeBody(r)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}

	data, err := io.ReadAll(http.MaxBytesReader(nil, body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.PayloadTooLarge(fmt.Sprintf("request body exceeds %d bytes", limit)).WithCause(err)
		}
		return nil, errors.BadRequest("failed reading request body").WithCause(err)
	}

	return data, nil
}

// Bytes extracts the raw body, rejecting bodies above limit bytes with 413.
// A limit of zero or less uses DefaultMaxBodyBytes.
func Bytes(limit int64) Extractor[[]byte] {
	return Func[[]byte](func(r *http.Request) ([]byte, error) {
		return readBody(r, limit)
	})
}

// String extracts the body as a string.
func String(limit int64) Extractor[string] {
	return Func[string](func(r *http.Request) (string, error) {
		data, err := readBody(r, limit)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}

// JSON decodes a JSON body into a T. The request must declare a JSON content
// type (application/json or any +json suffix).
func JSON[T any]() Extractor[T] {
	return Func[T](func(r *http.Request) (T, error) {
		var v T

		if !isJSON(r.Header.Get("Content-Type")) {
			return v, errors.UnsupportedMediaType("expected request with `Content-Type: application/json`")
		}

		data, err := readBody(r, DefaultMaxBodyBytes)
		if err != nil {
			return v, err
		}

		if err := json.Unmarshal(data, &v); err != nil {
			return v, errors.BadRequest("failed to parse the request body as JSON").WithCause(err)
		}

		return v, nil
	})
}

// Proto decodes a protobuf body into a new *T.
//
//	extract.Proto[wrapperspb.StringValue]()
func Proto[T any, M interface {
	*T
	proto.Message
}]() Extractor[M] {
	return Func[M](func(r *http.Request) (M, error) {
		data, err := readBody(r, DefaultMaxBodyBytes)
		if err != nil {
			return nil, err
		}

		msg := M(new(T))
		if err := proto.Unmarshal(data, msg); err != nil {
			return nil, errors.BadRequest("failed to parse the request body as protobuf").WithCause(err)
		}

		return msg, nil
	})
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

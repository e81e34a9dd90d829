package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// Compress gzips response bodies for clients that accept it. Responses that
// already carry a Content-Encoding, and bodiless responses, are left alone.
func Compress(level int) service.Layer {
	return func(next service.Service) service.Service {
		return wrap(next, func(r *http.Request) (*response.Response, error) {
			res, err := next.Call(r)
			if err != nil || res == nil {
				return res, err
			}
			res = response.Box(res)

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") ||
				res.Header.Get("Content-Encoding") != "" ||
				res.Body == http.NoBody ||
				res.StatusCode == http.StatusNoContent ||
				res.StatusCode == http.StatusNotModified {
				return res, nil
			}

			gz, gzErr := gzip.NewWriterLevel(io.Discard, level)
			if gzErr != nil {
				return res, nil
			}

			res.Header.Set("Content-Encoding", "gzip")
			res.Header.Add("Vary", "Accept-Encoding")
			res.Header.Del("Content-Length")
			res.Body = gzipBody(res.Body, gz)

			return res, nil
		})
	}
}

// gzipBody streams body through gz. Closing the returned reader stops the
// copy and closes body.
func gzipBody(body io.ReadCloser, gz *gzip.Writer) io.ReadCloser {
	pr, pw := io.Pipe()
	gz.Reset(pw)

	go func() {
		_, err := io.Copy(gz, body)
		_ = body.Close()
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	return pr
}

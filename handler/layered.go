package handler

import (
	"net/http"

	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/service"
)

// Layered is a handler wrapped in middleware. It is itself a Handler: any
// error the layers produce is folded into a response when it is called.
type Layered struct {
	svc service.Service
}

var _ Handler = (*Layered)(nil)

// Layer applies layers to h, first layer outermost.
func Layer(h Handler, layers ...service.Layer) *Layered {
	return &Layered{svc: service.Apply(IntoService(h), layers...)}
}

// Call dispatches r once through the layers. An error from the layers is
// converted with response.FromError.
func (l *Layered) Call(r *http.Request) *response.Response {
	res, err := service.Oneshot(l.svc, r)
	if err != nil {
		return response.FromError(err)
	}
	return response.Box(res)
}

// Serve is Call.
func (l *Layered) Serve(r *http.Request) *response.Response {
	return l.Call(r)
}

// ServeHTTP writes the response to w.
func (l *Layered) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = response.Write(w, l.Call(r))
}

// Layer wraps l with further layers outside the existing ones.
func (l *Layered) Layer(layers ...service.Layer) *Layered {
	return &Layered{svc: service.Apply(l.svc, layers...)}
}

// IntoService adapts l.
func (l *Layered) IntoService() Unit {
	return IntoService(l)
}

// HandleError maps every error of the layered service, including readiness
// failures, through f.
func (l *Layered) HandleError(f func(error) response.IntoResponse) *Layered {
	return &Layered{svc: service.HandleError(l.svc, f)}
}

func (*Layered) sealed() {}

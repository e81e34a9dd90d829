package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/middleware"
	"github.com/xraph/dispatch/response"
)

func newTracer() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), recorder
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestTracing(t *testing.T) {
	tp, recorder := newTracer()

	var traceID string
	inner := &stub{call: func(r *http.Request) (*response.Response, error) {
		traceID = logger.TraceIDFromContext(r.Context())
		return response.String("ok").IntoResponse(), nil
	}}

	svc := middleware.Tracing(tp, propagation.TraceContext{})(inner)
	_, err := run(t, svc, newRequest(http.MethodGet, "/traced"))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "HTTP GET", span.Name())
	assert.Equal(t, trace.SpanKindServer, span.SpanKind())
	assert.Equal(t, "/traced", attrs(span)["url.path"].AsString())
	assert.EqualValues(t, http.StatusOK, attrs(span)["http.response.status_code"].AsInt64())
	assert.Equal(t, span.SpanContext().TraceID().String(), traceID)
}

func TestTracing_ContinuesRemoteParent(t *testing.T) {
	tp, recorder := newTracer()
	prop := propagation.TraceContext{}

	parentTP, _ := newTracer()
	ctx, parent := parentTP.Tracer("client").Start(context.Background(), "client")
	defer parent.End()

	req := newRequest(http.MethodGet, "/")
	prop.Inject(ctx, propagation.HeaderCarrier(req.Header))

	_, err := run(t, middleware.Tracing(tp, prop)(respond(http.StatusOK, "ok")), req)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestTracing_Error(t *testing.T) {
	tp, recorder := newTracer()

	svc := middleware.Tracing(tp, propagation.TraceContext{})(fail(errors.ServiceUnavailable("down")))
	_, err := run(t, svc, newRequest(http.MethodPost, "/"))
	require.Error(t, err)

	span := recorder.Ended()[0]
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.EqualValues(t, http.StatusServiceUnavailable, attrs(span)["http.response.status_code"].AsInt64())
	require.NotEmpty(t, span.Events())
	assert.Equal(t, "exception", span.Events()[0].Name)
}

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/middleware"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := middleware.NewMetrics(middleware.MetricsConfig{Namespace: "test", Registerer: reg})
	require.NoError(t, err)

	layer := m.Layer()

	_, err = run(t, layer(respond(http.StatusOK, "ok")), newRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	_, err = run(t, layer(respond(http.StatusNotFound, "")), newRequest(http.MethodGet, "/missing"))
	require.NoError(t, err)
	_, err = run(t, layer(fail(errors.New("boom"))), newRequest(http.MethodPost, "/"))
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg, "test_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	totals := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "test_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			totals[labels["method"]+" "+labels["code"]] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"GET 200": 1, "GET 404": 1, "POST 500": 1}, totals)

	histograms, err := testutil.GatherAndCount(reg, "test_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, histograms)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := middleware.NewMetrics(middleware.MetricsConfig{Registerer: reg})
	require.NoError(t, err)

	_, err = middleware.NewMetrics(middleware.MetricsConfig{Registerer: reg})
	assert.Error(t, err)
}

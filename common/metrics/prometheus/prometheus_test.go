package prometheus_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/11090815/pairing/common/metrics"
	"github.com/11090815/pairing/common/metrics/prometheus"
	goprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, registry *goprometheus.Registry) string {
	server := httptest.NewServer(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCounter(t *testing.T) {
	registry := goprometheus.NewRegistry()
	provider := &prometheus.Provider{Registerer: registry}

	opts := metrics.CounterOpts{
		Namespace:  "pairing",
		Name:       "operations_total",
		Help:       "The number of curve operations executed.",
		LabelNames: []string{"curve", "op"},
	}
	counter := provider.NewCounter(opts)
	counter.With("curve", "BN254", "op", "pairing").Add(2)
	// 重复创建返回已注册的指标，不会 panic。
	provider.NewCounter(opts).With("curve", "BN254", "op", "pairing").Add(1)

	require.Panics(t, func() { counter.With("curve", "BN254").Add(1) })

	body := scrape(t, registry)
	require.Contains(t, body, "# HELP pairing_operations_total The number of curve operations executed.")
	require.Contains(t, body, `pairing_operations_total{curve="BN254",op="pairing"} 3`)
}

func TestGaugeAndHistogram(t *testing.T) {
	registry := goprometheus.NewRegistry()
	provider := &prometheus.Provider{Registerer: registry}

	gauge := provider.NewGauge(metrics.GaugeOpts{Namespace: "pairing", Name: "workers_busy", Help: "busy"})
	gauge.Add(3)
	gauge.Add(-1)

	histogram := provider.NewHistogram(metrics.HistogramOpts{
		Namespace:  "pairing",
		Name:       "operation_duration_seconds",
		Help:       "duration",
		Buckets:    []float64{0.001, 0.01},
		LabelNames: []string{"curve", "op"},
	})
	histogram.With("curve", "BLS381", "op", "fexp").Observe(0.005)

	body := scrape(t, registry)
	require.Contains(t, body, "pairing_workers_busy 2")
	require.Contains(t, body, `pairing_operation_duration_seconds_bucket{curve="BLS381",op="fexp",le="0.001"} 0`)
	require.Contains(t, body, `pairing_operation_duration_seconds_bucket{curve="BLS381",op="fexp",le="0.01"} 1`)
	require.Contains(t, body, `pairing_operation_duration_seconds_count{curve="BLS381",op="fexp"} 1`)
}

func TestConflictingRegistrationPanics(t *testing.T) {
	registry := goprometheus.NewRegistry()
	provider := &prometheus.Provider{Registerer: registry}
	provider.NewCounter(metrics.CounterOpts{Name: "dup", Help: "a", LabelNames: []string{"x"}})
	require.Panics(t, func() {
		provider.NewGauge(metrics.GaugeOpts{Name: "dup", Help: "a", LabelNames: []string{"x"}})
	})
}

package statsd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/11090815/pairing/common/metrics"
	"github.com/11090815/pairing/common/metrics/statsd"
	kitstatsd "github.com/go-kit/kit/metrics/statsd"
	"github.com/stretchr/testify/require"
)

func flush(t *testing.T, s *kitstatsd.Statsd) []string {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestCounter(t *testing.T) {
	s := kitstatsd.New("pairing.", nil)
	provider := &statsd.Provider{Statsd: s}

	ops := provider.NewCounter(metrics.CounterOpts{
		Name:         "operations_total",
		LabelNames:   []string{"curve", "op"},
		StatsdFormat: "%{#fqname}.%{curve}.%{op}",
	})
	ops.With("curve", "BN254", "op", "pairing").Add(1)
	ops.With("curve", "BN254", "op", "pairing").Add(2)

	require.Equal(t, []string{"pairing.operations_total.BN254.pairing:3.000000|c"}, flush(t, s))
	require.PanicsWithValue(t, "statsd: counter operations_total has labels, call With first", func() { ops.Add(1) })

	plain := provider.NewCounter(metrics.CounterOpts{Namespace: "bench", Name: "runs"})
	plain.Add(1)
	require.Equal(t, []string{"pairing.bench.runs:1.000000|c"}, flush(t, s))
}

func TestGauge(t *testing.T) {
	s := kitstatsd.New("", nil)
	provider := &statsd.Provider{Statsd: s}

	busy := provider.NewGauge(metrics.GaugeOpts{Namespace: "pairing", Name: "workers_busy"})
	busy.Set(4)
	require.Equal(t, []string{"pairing.workers_busy:4.000000|g"}, flush(t, s))

	labeled := provider.NewGauge(metrics.GaugeOpts{Name: "workers_busy", LabelNames: []string{"curve"}, StatsdFormat: "%{#name}.%{curve}"})
	labeled.With("curve", "BLS12383").Set(2)
	require.Equal(t, []string{"workers_busy.BLS12383:2.000000|g"}, flush(t, s))
	require.Panics(t, func() { labeled.Set(1) })
}

func TestHistogramSecondsAreReportedInMilliseconds(t *testing.T) {
	s := kitstatsd.New("", nil)
	provider := &statsd.Provider{Statsd: s}

	durations := provider.NewHistogram(metrics.HistogramOpts{
		Namespace:    "pairing",
		Name:         "operation_duration_seconds",
		LabelNames:   []string{"curve", "op"},
		StatsdFormat: "%{#fqname}.%{curve}.%{op}",
	})
	durations.With("curve", "BLS48556", "op", "fexp").Observe(0.25)
	require.Equal(t, []string{"pairing.operation_duration_seconds.BLS48556.fexp:250.000000|ms"}, flush(t, s))

	sizes := provider.NewHistogram(metrics.HistogramOpts{Name: "encoded_bytes"})
	sizes.Observe(97)
	require.Equal(t, []string{"encoded_bytes:97.000000|ms"}, flush(t, s))

	require.Panics(t, func() { durations.Observe(1) })
}

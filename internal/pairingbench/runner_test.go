package pairingbench_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/11090815/pairing/common/metrics/metricsfakes"
	"github.com/11090815/pairing/internal/pairingbench"
	"github.com/stretchr/testify/require"
)

func fakeMetrics() (*pairingbench.Metrics, *metricsfakes.Counter, *metricsfakes.Histogram, *metricsfakes.Gauge) {
	counter := &metricsfakes.Counter{}
	counter.WithReturns(counter)
	histogram := &metricsfakes.Histogram{}
	histogram.WithReturns(histogram)
	gauge := &metricsfakes.Gauge{}
	gauge.WithReturns(gauge)

	provider := &metricsfakes.Provider{}
	provider.NewCounterReturns(counter)
	provider.NewHistogramReturns(histogram)
	provider.NewGaugeReturns(gauge)
	return pairingbench.NewMetrics(provider), counter, histogram, gauge
}

func TestRunner(t *testing.T) {
	m, counter, histogram, gauge := fakeMetrics()
	bn254, err := pairingbench.Lookup("BN254")
	require.NoError(t, err)
	c25519, err := pairingbench.Lookup("C25519")
	require.NoError(t, err)

	r := &pairingbench.Runner{Iterations: 6, Workers: 3, Seed: []byte("runner"), Metrics: m}
	results, err := r.Run(context.Background(), []*pairingbench.Target{bn254, c25519}, []string{"mul", "g1mul"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "BN254", results[0].Curve)
	require.Equal(t, "mul", results[0].Op)
	require.Equal(t, "g1mul", results[1].Op)
	require.Equal(t, "C25519", results[2].Curve)
	for _, res := range results {
		require.Len(t, res.Samples, 6)
		for _, d := range res.Samples {
			require.Greater(t, d, time.Duration(0))
		}
		require.Greater(t, res.Elapsed, time.Duration(0))
	}

	require.Equal(t, 18, counter.AddCallCount())
	require.Equal(t, 1.0, counter.AddArgsForCall(0))
	require.Equal(t, 18, histogram.ObserveCallCount())
	require.Equal(t, 36, gauge.AddCallCount())
	require.Equal(t, 3, counter.WithCallCount())
	require.Equal(t, []string{"curve", "BN254", "op", "mul"}, counter.WithArgsForCall(0))
	require.Equal(t, []string{"curve", "C25519", "op", "mul"}, histogram.WithArgsForCall(2))
}

func TestRunnerCanceled(t *testing.T) {
	target, err := pairingbench.Lookup("BLS48")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &pairingbench.Runner{Iterations: 1000, Workers: 2, Seed: []byte("cancel")}
	_, err = r.Run(ctx, []*pairingbench.Target{target}, []string{"mapit"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarizeAndReport(t *testing.T) {
	samples := make([]time.Duration, 100)
	for i := range samples {
		samples[i] = time.Duration(i+1) * time.Microsecond
	}
	summaries, err := pairingbench.Summarize([]pairingbench.Result{{
		Curve:   "BN254",
		Op:      "pairing",
		Samples: samples,
		Elapsed: 100 * time.Millisecond,
	}})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	s := summaries[0]
	require.Equal(t, 100, s.N)
	require.InDelta(t, 50500, s.Mean, 0.001)
	require.InDelta(t, 50500, s.Median, 0.001)
	require.InDelta(t, 1000, s.Rate, 0.001)
	require.Greater(t, s.P99, s.P95)

	_, err = pairingbench.Summarize([]pairingbench.Result{{Curve: "BN254", Op: "mul"}})
	require.Error(t, err)

	var buf bytes.Buffer
	pairingbench.WriteReport(&buf, summaries)
	require.Contains(t, buf.String(), "Curve")
	require.Contains(t, buf.String(), "BN254")
	require.Contains(t, buf.String(), "50.5µs")
	require.Contains(t, buf.String(), "1,000")

	buf.Reset()
	pairingbench.WriteCurves(&buf, pairingbench.Targets())
	require.Contains(t, buf.String(), "GOLDILOCKS")
	require.Contains(t, buf.String(), "montgomery")
}

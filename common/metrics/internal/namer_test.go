package internal_test

import (
	"testing"

	"github.com/11090815/pairing/common/metrics"
	"github.com/11090815/pairing/common/metrics/internal"
	"github.com/stretchr/testify/require"
)

func TestNamerFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		labels []string
		want   string
	}{
		{"fqname with labels", "%{#fqname}.%{curve}.%{op}", []string{"curve", "BN254", "op", "pairing"}, "pairing.bench.operations_total.BN254.pairing"},
		{"parts", "%{#namespace}-%{#subsystem}-%{#name}", nil, "pairing-bench-operations_total"},
		{"literal prefix and suffix", "x.%{op}.y", []string{"op", "g2mul"}, "x.g2mul.y"},
		{"label value escaping", "%{curve}", []string{"curve", "a.b|c:d e"}, "a_b_c_d_e"},
		{"dangling label", "%{curve}", []string{"curve"}, "unknown"},
		{"no verbs", "static", nil, "static"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := internal.NewCounterNamer(metrics.CounterOpts{
				Namespace:    "pairing",
				Subsystem:    "bench",
				Name:         "operations_total",
				StatsdFormat: tt.format,
				LabelNames:   []string{"curve", "op"},
			})
			require.Equal(t, tt.want, n.Format(tt.labels...))
		})
	}
}

func TestNamerPanics(t *testing.T) {
	n := internal.NewHistogramNamer(metrics.HistogramOpts{
		Name:         "operation_duration_seconds",
		StatsdFormat: "%{#fqname}.%{curve}",
		LabelNames:   []string{"curve", "op"},
	})
	require.PanicsWithValue(t, "invalid label key: field", func() { n.Format("field", "FP2") })
	require.PanicsWithValue(t, "invalid label in name format: curve", func() { n.Format("op", "fexp") })
}

func TestFullyQualifiedName(t *testing.T) {
	tests := []struct {
		namespace, subsystem, want string
	}{
		{"pairing", "bench", "pairing.bench.workers_busy"},
		{"pairing", "", "pairing.workers_busy"},
		{"", "bench", "bench.workers_busy"},
		{"", "", "workers_busy"},
	}
	for _, tt := range tests {
		n := internal.NewGaugeNamer(metrics.GaugeOpts{Namespace: tt.namespace, Subsystem: tt.subsystem, Name: "workers_busy"})
		require.Equal(t, tt.want, n.FullyQualifiedName())
	}
}

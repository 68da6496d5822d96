package disabled_test

import (
	"testing"

	"github.com/11090815/pairing/common/metrics"
	"github.com/11090815/pairing/common/metrics/disabled"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	var p metrics.Provider = &disabled.Provider{}

	c := p.NewCounter(metrics.CounterOpts{})
	require.NotNil(t, c)
	c.Add(1)
	c.With("whatever").Add(2)

	g := p.NewGauge(metrics.GaugeOpts{})
	require.NotNil(t, g)
	g.Set(1)
	g.Add(1)
	g.With("whatever").Set(2)

	h := p.NewHistogram(metrics.HistogramOpts{})
	require.NotNil(t, h)
	h.Observe(1)
	h.With("whatever").Observe(2)
}

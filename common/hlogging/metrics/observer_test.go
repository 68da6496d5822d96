package metrics_test

import (
	"bytes"
	"testing"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/11090815/pairing/common/hlogging/metrics"
	"github.com/11090815/pairing/common/metrics/metricsfakes"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewObserver(t *testing.T) {
	checked, written := &metricsfakes.Counter{}, &metricsfakes.Counter{}
	provider := &metricsfakes.Provider{}
	provider.NewCounterReturnsOnCall(0, checked)
	provider.NewCounterReturnsOnCall(1, written)

	observer := metrics.NewObserver(provider)
	require.Equal(t, 2, provider.NewCounterCallCount())
	require.Equal(t, metrics.CheckedCountOpts, provider.NewCounterArgsForCall(0))
	require.Equal(t, metrics.WriteCountOpts, provider.NewCounterArgsForCall(1))
	require.Same(t, checked, observer.CheckedCounter.(*metricsfakes.Counter))
	require.Same(t, written, observer.WrittenCounter.(*metricsfakes.Counter))
}

func TestObserverCountsByLevel(t *testing.T) {
	checked, written := &metricsfakes.Counter{}, &metricsfakes.Counter{}
	checked.WithReturns(checked)
	written.WithReturns(written)
	observer := &metrics.Observer{CheckedCounter: checked, WrittenCounter: written}

	observer.Check(zapcore.Entry{Level: zapcore.DebugLevel}, nil)
	observer.WriteEntry(zapcore.Entry{Level: zapcore.WarnLevel}, nil)

	require.Equal(t, []string{"level", "debug"}, checked.WithArgsForCall(0))
	require.Equal(t, 1.0, checked.AddArgsForCall(0))
	require.Equal(t, []string{"level", "warn"}, written.WithArgsForCall(0))
	require.Equal(t, 1, written.AddCallCount())
}

func TestObserverWithLogging(t *testing.T) {
	checked, written := &metricsfakes.Counter{}, &metricsfakes.Counter{}
	checked.WithReturns(checked)
	written.WithReturns(written)

	var buf bytes.Buffer
	logging, err := hlogging.NewLogging(hlogging.Config{Format: "%{message}", LogSpec: "pairing=debug:warn", Writer: &buf})
	require.NoError(t, err)
	logging.SetObserver(&metrics.Observer{CheckedCounter: checked, WrittenCounter: written})

	logging.Logger("pairing.bls").Debug("kept")
	logging.Logger("mathlib").Debug("dropped")
	logging.Logger("mathlib").Warn("kept")

	require.Equal(t, "kept\nkept\n", buf.String())
	require.Equal(t, 2, written.AddCallCount())
	require.Equal(t, 3, checked.AddCallCount())
}

package enc_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/11090815/pairing/common/hlogging/enc"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var entry = zapcore.Entry{
	Level:      zapcore.WarnLevel,
	Time:       time.Date(2024, 3, 1, 8, 30, 15, 0, time.UTC),
	LoggerName: "pairing.bls",
	Message:    "verification failed\n",
}

func format(t *testing.T, spec string) string {
	formatters, err := enc.ParseFormat(spec)
	require.NoError(t, err)
	var buf bytes.Buffer
	for _, f := range formatters {
		f.Format(&buf, entry, nil)
	}
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"[%{module}] %{level:.4s} -> %{message}", "[pairing.bls] WARN -> verification failed"},
		{"%{time:15:04:05}", "08:30:15"},
		{"%{time}", "2024-03-01T08:30:15.000Z"},
		{"%{level:-6s}|", "WARN  |"},
		{"plain text", "plain text"},
		{"%{color}x%{color:reset}", "\x1b[33mx\x1b[0m"},
		{"%{color:bold}", "\x1b[33;1m"},
		{"%{shortfunc}", "(unknown)"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			require.Equal(t, tt.want, format(t, tt.spec))
		})
	}
}

func TestParseFormatErrors(t *testing.T) {
	_, err := enc.ParseFormat("%{color:blink}")
	require.EqualError(t, err, "invalid color option: blink, should be one of [bold | reset]")

	_, err = enc.NewFormatter("curve", "")
	require.ErrorContains(t, err, "unknown verb: curve")
}

func TestSequenceIncreases(t *testing.T) {
	f, err := enc.NewFormatter("id", "04x")
	require.NoError(t, err)
	var a, b bytes.Buffer
	f.Format(&a, entry, nil)
	f.Format(&b, entry, nil)
	require.Len(t, a.String(), 4)
	require.NotEqual(t, a.String(), b.String())
}

func TestLevelColor(t *testing.T) {
	require.Equal(t, enc.ColorCyan, enc.LevelColor(zapcore.DebugLevel))
	require.Equal(t, enc.ColorRed, enc.LevelColor(zapcore.ErrorLevel))
	require.Equal(t, enc.ColorMagenta, enc.LevelColor(zapcore.FatalLevel))
	require.Equal(t, "\x1b[0m", enc.ResetColor())
	require.Equal(t, "\x1b[0m", enc.ColorNone.Bold())
}

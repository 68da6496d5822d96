package enc_test

import (
	"testing"

	"github.com/11090815/pairing/common/hlogging/enc"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFormatEncoder(t *testing.T) {
	formatters, err := enc.ParseFormat("[%{module}] %{message}")
	require.NoError(t, err)
	encoder := enc.NewFormatEncoder(enc.NewMultiFormatter(formatters...))

	buf, err := encoder.EncodeEntry(entry, []zapcore.Field{zap.String("curve", "BN254"), zap.Int("msglen", 32)})
	require.NoError(t, err)
	require.Equal(t, "[pairing.bls] verification failed curve=BN254 msglen=32\n", buf.String())
	buf.Free()

	buf, err = encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.Equal(t, "[pairing.bls] verification failed\n", buf.String())
	buf.Free()
}

func TestFormatEncoderClone(t *testing.T) {
	formatters, err := enc.ParseFormat("%{level}")
	require.NoError(t, err)
	encoder := enc.NewFormatEncoder(formatters...)

	clone := encoder.Clone()
	clone.AddString("op", "pairing")

	buf, err := clone.EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.Equal(t, "WARN op=pairing\n", buf.String())

	buf, err = encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.Equal(t, "WARN\n", buf.String())
}

func TestMultiFormatterSwap(t *testing.T) {
	mf := enc.NewMultiFormatter()
	encoder := enc.NewFormatEncoder(mf)

	buf, err := encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.Equal(t, "\n", buf.String())

	formatters, err := enc.ParseFormat("%{module}")
	require.NoError(t, err)
	mf.SetFormatters(formatters)
	buf, err = encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.Equal(t, "pairing.bls\n", buf.String())
}

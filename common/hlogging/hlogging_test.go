package hlogging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogging(t *testing.T) {
	logging, err := hlogging.NewLogging(hlogging.Config{})
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, logging.DefaultLevel())
	require.Equal(t, hlogging.CONSOLE, logging.Encoding())

	_, err = hlogging.NewLogging(hlogging.Config{LogSpec: "::=broken=::"})
	require.Error(t, err)

	_, err = hlogging.NewLogging(hlogging.Config{Format: "%{color:blink}"})
	require.Error(t, err)
}

func TestNewLoggingWithEnvironment(t *testing.T) {
	t.Setenv(hlogging.SpecEnv, "warn")
	t.Setenv(hlogging.FormatEnv, "json")
	logging, err := hlogging.NewLogging(hlogging.Config{})
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, logging.DefaultLevel())
	require.Equal(t, hlogging.JSON, logging.Encoding())

	logging, err = hlogging.NewLogging(hlogging.Config{LogSpec: "debug", Format: "logfmt"})
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, logging.DefaultLevel())
	require.Equal(t, hlogging.LOGFMT, logging.Encoding())
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logging, err := hlogging.NewLogging(hlogging.Config{
		Format:  "%{level} [%{module}] %{message}",
		LogSpec: "pairing.bls=debug:warn",
		Writer:  &buf,
	})
	require.NoError(t, err)

	bls := logging.Logger("pairing.bls")
	bls.Debugf("created scheme on curve %s", "BLS12381")
	bls.With("curve", "BN254").Info("verified")

	rom := logging.Logger("pairing.rom")
	rom.Debug("loaded curve")
	rom.Warn("limb count ", 5)

	require.Equal(t, strings.Join([]string{
		"DEBUG [pairing.bls] created scheme on curve BLS12381",
		"INFO [pairing.bls] verified curve=BN254",
		"WARN [pairing.rom] limb count 5",
	}, "\n")+"\n", buf.String())

	require.True(t, bls.IsEnabledFor(zapcore.DebugLevel))
	require.False(t, zapcore.DebugLevel.Enabled(logging.Level("pairing.rom")))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logging, err := hlogging.NewLogging(hlogging.Config{Format: "json", Writer: &buf})
	require.NoError(t, err)

	logging.Logger("mathlib").Infow("registered curve", "id", 3, "curve", "FP256BN_AMCL")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "mathlib", entry["name"])
	require.Equal(t, "registered curve", entry["msg"])
	require.Equal(t, float64(3), entry["id"])
	require.Equal(t, "FP256BN_AMCL", entry["curve"])
}

func TestApplyAffectsExistingLoggers(t *testing.T) {
	var first, second bytes.Buffer
	logging, err := hlogging.NewLogging(hlogging.Config{Format: "%{message}", LogSpec: "error", Writer: &first})
	require.NoError(t, err)

	logger := logging.Logger("pairingbench")
	logger.Info("dropped")
	require.Empty(t, first.String())

	require.NoError(t, logging.Apply(hlogging.Config{Format: "logfmt", LogSpec: "info", Writer: &second}))
	logger.Info("kept")
	require.Empty(t, first.String())
	require.Contains(t, second.String(), "msg=kept")
	require.Contains(t, second.String(), "name=pairingbench")
}

func TestInvalidLoggerName(t *testing.T) {
	logging, err := hlogging.NewLogging(hlogging.Config{})
	require.NoError(t, err)
	require.PanicsWithValue(t, "invalid logger name: pairing..bls", func() { logging.Logger("pairing..bls") })
}

func TestGlobal(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(hlogging.Reset)

	require.NoError(t, hlogging.Apply(hlogging.Config{Format: "[%{module}] %{message}", LogSpec: "pairing=debug:error", Writer: &buf}))
	require.Equal(t, "debug", hlogging.LoggerLevel("pairing.bls"))
	require.Equal(t, "error", hlogging.LoggerLevel("mathlib"))
	require.Equal(t, "info", hlogging.DefaultLevel())

	hlogging.MustGetLogger("pairing.bls").Debug("hello")
	hlogging.MustGetLogger("mathlib").Warn("hidden")
	require.Equal(t, "[pairing.bls] hello\n", buf.String())

	require.Error(t, hlogging.ActivateSpec("=warn"))
	require.NoError(t, hlogging.ActivateSpec("warn"))
	require.Equal(t, "warn", hlogging.LoggerLevel("pairing.bls"))
}

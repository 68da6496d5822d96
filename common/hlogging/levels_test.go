package hlogging_test

import (
	"testing"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerLevelsActivateSpec(t *testing.T) {
	tests := []struct {
		spec         string
		levels       map[string]zapcore.Level
		defaultLevel zapcore.Level
	}{
		{spec: "debug", levels: map[string]zapcore.Level{"pairing": zapcore.DebugLevel}, defaultLevel: zapcore.DebugLevel},
		{spec: "WARNING", levels: map[string]zapcore.Level{}, defaultLevel: zapcore.WarnLevel},
		{spec: "", levels: map[string]zapcore.Level{"mathlib": zapcore.InfoLevel}, defaultLevel: zapcore.InfoLevel},
		{
			spec: "pairing=info:debug",
			levels: map[string]zapcore.Level{
				"pairing":      zapcore.InfoLevel,
				"pairing.bls":  zapcore.InfoLevel,
				"pairingbench": zapcore.DebugLevel,
			},
			defaultLevel: zapcore.DebugLevel,
		},
		{
			spec: "pairing.bls=info:pairing,mathlib=error:pairing.bls.verify,pairingbench.runner=debug:warn",
			levels: map[string]zapcore.Level{
				"pairing":             zapcore.ErrorLevel,
				"pairing.rom":         zapcore.ErrorLevel,
				"pairing.bls":         zapcore.InfoLevel,
				"pairing.bls.keygen":  zapcore.InfoLevel,
				"pairing.bls.verify":  zapcore.DebugLevel,
				"mathlib.fp256bn":     zapcore.ErrorLevel,
				"pairingbench":        zapcore.WarnLevel,
				"pairingbench.runner": zapcore.DebugLevel,
			},
			defaultLevel: zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ll := &hlogging.LoggerLevels{}
			require.NoError(t, ll.ActivateSpec(tt.spec))
			require.Equal(t, tt.defaultLevel, ll.DefaultLevel())
			for name, lvl := range tt.levels {
				require.Equal(t, lvl, ll.Level(name), name)
			}
		})
	}
}

func TestLoggerLevelsInvalidSpec(t *testing.T) {
	ll := &hlogging.LoggerLevels{}
	require.NoError(t, ll.ActivateSpec("pairing=debug:error"))

	for spec, msg := range map[string]string{
		"verbose":           "bad segment 'verbose'",
		"=debug":            "no logger specified in segment '=debug'",
		"pairing=loud":      "bad segment 'pairing=loud'",
		"pairing..bls=info": "bad logger name 'pairing..bls'",
		"a=b=c":             "bad segment 'a=b=c'",
	} {
		err := ll.ActivateSpec(spec)
		require.ErrorContains(t, err, msg, spec)
	}

	// 失败的规格不影响已有配置。
	require.Equal(t, zapcore.DebugLevel, ll.Level("pairing.bls"))
	require.Equal(t, "pairing=debug:error", ll.Spec())
}

func TestLoggerLevelsEnabled(t *testing.T) {
	ll := &hlogging.LoggerLevels{}
	require.NoError(t, ll.ActivateSpec("pairingbench=debug:error"))
	require.True(t, ll.Enabled(zapcore.DebugLevel))

	require.NoError(t, ll.ActivateSpec("mathlib=warn:pairing=error:info"))
	require.False(t, ll.Enabled(zapcore.DebugLevel))
	require.True(t, ll.Enabled(zapcore.InfoLevel))
	require.Equal(t, "mathlib=warn:pairing=error:info", ll.Spec())
}

func TestNameToLevel(t *testing.T) {
	require.Equal(t, zapcore.FatalLevel, hlogging.NameToLevel("FATAL"))
	require.Equal(t, zapcore.InfoLevel, hlogging.NameToLevel("nonsense"))
	require.True(t, hlogging.IsValidLevel("Panic"))
	require.False(t, hlogging.IsValidLevel("trace"))
}

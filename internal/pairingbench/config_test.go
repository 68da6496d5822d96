package pairingbench_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/11090815/pairing/internal/pairingbench"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := pairingbench.DefaultConfig()
	require.NoError(t, cfg.Validate())
	targets, err := cfg.Targets()
	require.NoError(t, err)
	require.Len(t, targets, 12)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairingbench.yaml")
	err := os.WriteFile(path, []byte(`
curves: [bn254, bls381]
operations: [pairing, g2mul]
iterations: 5
workers: 2
metrics:
  provider: statsd
  statsd:
    address: 127.0.0.1:9125
    writeInterval: 3s
logging:
  spec: pairingbench=debug:warn
  format: logfmt
`), 0o644)
	require.NoError(t, err)

	cfg, err := pairingbench.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"bn254", "bls381"}, cfg.Curves)
	require.Equal(t, []string{"pairing", "g2mul"}, cfg.Operations)
	require.Equal(t, 5, cfg.Iterations)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "statsd", cfg.Metrics.Provider)
	require.Equal(t, "127.0.0.1:9125", cfg.Metrics.Statsd.Address)
	require.Equal(t, 3*time.Second, cfg.Metrics.Statsd.WriteInterval)
	require.Equal(t, "udp", cfg.Metrics.Statsd.Network)
	require.Equal(t, "pairingbench", cfg.Seed)
	require.Equal(t, "logfmt", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())

	targets, err := cfg.Targets()
	require.NoError(t, err)
	require.Equal(t, "BN254", targets[0].Info.Name)
	require.Equal(t, "BLS381", targets[1].Info.Name)

	require.NoError(t, os.WriteFile(path, []byte("iterashuns: 5\n"), 0o644))
	_, err = pairingbench.LoadConfig(path)
	require.ErrorContains(t, err, "field iterashuns not found")

	_, err = pairingbench.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed reading config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*pairingbench.Config)
		errStr string
	}{
		{"iterations", func(c *pairingbench.Config) { c.Iterations = 0 }, "iterations must be positive, got 0"},
		{"workers", func(c *pairingbench.Config) { c.Workers = -1 }, "workers must be positive, got -1"},
		{"no operations", func(c *pairingbench.Config) { c.Operations = nil }, "no operations selected"},
		{"unknown operation", func(c *pairingbench.Config) { c.Operations = []string{"sqrt"} }, `unknown operation "sqrt"`},
		{"unknown curve", func(c *pairingbench.Config) { c.Curves = []string{"BN462"} }, "unknown curve"},
		{"provider", func(c *pairingbench.Config) { c.Metrics.Provider = "graphite" }, `unknown metrics provider "graphite"`},
		{"statsd address", func(c *pairingbench.Config) {
			c.Metrics.Provider = "statsd"
			c.Metrics.Statsd.Address = ""
		}, "statsd provider requires an address"},
		{"log spec", func(c *pairingbench.Config) { c.Logging.Spec = "pairingbench=loud" }, "invalid logging config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := pairingbench.DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errStr)
		})
	}

	// 选中的曲线都不支持 pairing 也可以通过，测量时跳过。
	cfg := pairingbench.DefaultConfig()
	cfg.Curves = []string{"C25519"}
	require.NoError(t, cfg.Validate())
}

package pairingbench_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/11090815/pairing/internal/pairingbench"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := pairingbench.NewCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVectorCommand(t *testing.T) {
	out, err := execute(t, "vector", "bn254", "g1mul", "--arg", "e=126F960CBB292FBFF7BF2EE9A426587326DE83FA37134F0BCA64E623D7E19556")
	require.NoError(t, err)
	require.Equal(t, "131ABA3AE9228D2CE2ACC0C72921DCA41D3130D0A06418C8BF5B2C9EF04FBA70\n"+
		"24BBFBCE4BA34B12A017ABB4A957231CD2A815B22E415231EA1A2BFE82C52349\n", out)

	out, err = execute(t, "vector", "BN254", "mul", "-n", "3", "--seed", "fixed")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "----"))
	again, err := execute(t, "vector", "BN254", "mul", "-n", "3", "--seed", "fixed")
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, err = execute(t, "vector", "BN254", "g1mul", "--arg", "e=zz")
	require.ErrorContains(t, err, "argument e")
	_, err = execute(t, "vector", "BN254", "g1mul", "--arg", "e")
	require.ErrorContains(t, err, "is not of the form key=hex")
	_, err = execute(t, "vector", "C25519", "pairing")
	require.ErrorContains(t, err, "not supported on curve C25519")
	_, err = execute(t, "vector", "BN254")
	require.Error(t, err)
}

func TestCurvesCommand(t *testing.T) {
	out, err := execute(t, "curves", "-c", "secp256k1,bls48")
	require.NoError(t, err)
	require.Contains(t, out, "SECP256K1")
	require.Contains(t, out, "BLS48")
	require.NotContains(t, out, "BN254")

	_, err = execute(t, "curves", "-c", "bn462")
	require.ErrorContains(t, err, "unknown curve [bn462]")
}

func TestSelftestCommand(t *testing.T) {
	out, err := execute(t, "selftest", "-c", "BN254,ED25519")
	require.NoError(t, err)
	require.Contains(t, out, "ok   BN254")
	require.Contains(t, out, "ok   ED25519")
}

func TestBenchCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
curves: [NIST256]
operations: [mul]
iterations: 100
metrics:
  provider: disabled
`), 0o644))

	// 命令行参数覆盖配置文件。
	out, err := execute(t, "bench", "--config", path, "-n", "4", "-o", "mul,mapit")
	require.NoError(t, err)
	require.Contains(t, out, "NIST256")
	require.Contains(t, out, "mapit")
	require.Regexp(t, `\|\s+4\s+\|`, out)

	_, err = execute(t, "bench", "--config", path, "--metrics-provider", "graphite")
	require.ErrorContains(t, err, `unknown metrics provider "graphite"`)
}

package pairingbench_test

import (
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/internal/pairingbench"
	"github.com/11090815/pairing/vars"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func newRand(label string) *amcl.RAND {
	seed := []byte("pairingbench test " + label)
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)
	return rng
}

func TestLookup(t *testing.T) {
	target, err := pairingbench.Lookup("bn254")
	require.NoError(t, err)
	require.Equal(t, "BN254", target.Info.Name)
	require.Equal(t, "BN", target.Info.Pairing)
	require.Equal(t, 12, target.Info.Embedding)
	require.Equal(t, 32, target.Info.ModBytes)

	_, err = pairingbench.Lookup("P-521")
	var uerr vars.ErrorUnknownCurve
	require.ErrorAs(t, err, &uerr)

	targets := pairingbench.Targets()
	require.Len(t, targets, 12)
	for i := 1; i < len(targets); i++ {
		require.Less(t, targets[i-1].Info.Name, targets[i].Info.Name)
	}
}

func TestOperations(t *testing.T) {
	pairingOps := []string{"ate", "fexp", "g1mul", "g2mul", "gtpow", "mapit", "mul", "pairing"}
	for _, target := range pairingbench.Targets() {
		ops := target.Operations()
		if target.Info.Pairing == "-" {
			require.Equal(t, []string{"mapit", "mul"}, ops, target.Info.Name)
			require.Equal(t, []string{"mul"}, target.VectorCommands(), target.Info.Name)
			continue
		}
		require.Equal(t, pairingOps, ops, target.Info.Name)
		require.Equal(t, []string{"g1mul", "g2mul", "mul", "pairing"}, target.VectorCommands(), target.Info.Name)
	}

	c25519, err := pairingbench.Lookup("C25519")
	require.NoError(t, err)
	_, err = c25519.Prepare("pairing")
	require.EqualError(t, err, `operation "pairing" is not supported on curve C25519`)
	_, err = c25519.Evaluate("g2mul", nil)
	require.EqualError(t, err, `vector command "g2mul" is not supported on curve C25519`)
}

func TestPrepareRuns(t *testing.T) {
	target, err := pairingbench.Lookup("BLS383")
	require.NoError(t, err)
	rng := newRand("prepare")
	for _, op := range target.Operations() {
		prepare, err := target.Prepare(op)
		require.NoError(t, err)
		f := prepare(rng)
		require.NotPanics(t, f, op)
	}
}

func TestSelfTest(t *testing.T) {
	for _, target := range pairingbench.Targets() {
		target := target
		t.Run(target.Info.Name, func(t *testing.T) {
			if testing.Short() && target.Info.Embedding > 12 {
				t.Skip("slow pairing")
			}
			require.NoError(t, target.SelfTest(newRand(target.Info.Name)))
		})
	}
}

// TestEvaluateMatchesVectors 用曲线包的向量文件检查 Evaluate 的输出。
func TestEvaluateMatchesVectors(t *testing.T) {
	for _, target := range pairingbench.Targets() {
		target := target
		path := filepath.Join("..", "..", "common", "hyperchain-amcl", "core", target.Info.Name, "testdata", "vectors")
		t.Run(target.Info.Name, func(t *testing.T) {
			if testing.Short() && target.Info.Embedding > 12 {
				t.Skip("slow pairing")
			}
			datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
				args := make(map[string][]byte)
				for _, arg := range d.CmdArgs {
					b, err := hex.DecodeString(arg.Vals[0])
					require.NoError(t, err)
					args[arg.Key] = b
				}
				out, err := target.Evaluate(d.Cmd, args)
				require.NoError(t, err)
				return out
			})
		})
	}
}

func TestVector(t *testing.T) {
	target, err := pairingbench.Lookup("BN254")
	require.NoError(t, err)

	v1, err := target.Vector("g1mul", newRand("vector"))
	require.NoError(t, err)
	v2, err := target.Vector("g1mul", newRand("vector"))
	require.NoError(t, err)
	require.Equal(t, v1, v2)

	header, body, ok := strings.Cut(v1, "\n----\n")
	require.True(t, ok)
	cmd, arg, ok := strings.Cut(header, " e=")
	require.True(t, ok)
	require.Equal(t, "g1mul", cmd)
	e, err := hex.DecodeString(arg)
	require.NoError(t, err)
	require.Len(t, e, 32)

	out, err := target.Evaluate("g1mul", map[string][]byte{"e": e})
	require.NoError(t, err)
	require.Equal(t, out, body)
	require.Len(t, strings.Split(strings.TrimSuffix(body, "\n"), "\n"), 2)

	v, err := target.Vector("pairing", newRand("pairing"))
	require.NoError(t, err)
	require.Regexp(t, `^pairing a=[0-9A-F]{64} b=[0-9A-F]{64}\n----\n`, v)

	_, err = target.Vector("hash", newRand("x"))
	require.Error(t, err)
}

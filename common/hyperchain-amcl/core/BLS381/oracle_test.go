package bls381_test

import (
	"math/big"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/hyperchain-amcl/bls"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS381"
	gnark "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func toG1(P *bls381.ECP) gnark.G1Affine {
	var out gnark.G1Affine
	if P.IsInfinity() {
		return out
	}
	out.X.SetBytes(P.GetX().Bytes())
	out.Y.SetBytes(P.GetY().Bytes())
	return out
}

func toG2(P *bls381.ECP2) gnark.G2Affine {
	var out gnark.G2Affine
	if P.IsInfinity() {
		return out
	}
	x, y := P.GetX(), P.GetY()
	out.X.A0.SetBytes(x.GetA().Bytes())
	out.X.A1.SetBytes(x.GetB().Bytes())
	out.Y.A0.SetBytes(y.GetA().Bytes())
	out.Y.A1.SetBytes(y.GetB().Bytes())
	return out
}

func fpBytes(e fp.Element) []byte {
	b := e.Bytes()
	return b[:]
}

func TestParamsAgainstGnark(t *testing.T) {
	require.Equal(t, fp.Modulus().FillBytes(make([]byte, bls381.MODBYTES)), bls381.Modulus().Bytes())
	require.Equal(t, fr.Modulus().FillBytes(make([]byte, bls381.MODBYTES)), bls381.CurveOrder().Bytes())

	_, _, g1, g2 := gnark.Generators()
	G := bls381.ECP_generator()
	require.Equal(t, fpBytes(g1.X), G.GetX().Bytes())
	require.Equal(t, fpBytes(g1.Y), G.GetY().Bytes())
	Q := toG2(bls381.ECP2_generator())
	require.True(t, Q.Equal(&g2))
}

func TestScalarMulAgainstGnark(t *testing.T) {
	seed := []byte("bls381 gnark")
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)

	_, _, g1, g2 := gnark.Generators()
	G := bls381.ECP_generator()
	Q := bls381.ECP2_generator()
	r := bls381.CurveOrder()
	for i := 0; i < 8; i++ {
		k := bls381.Randomnum(r, rng)
		kb := new(big.Int).SetBytes(k.Bytes())

		var want1 gnark.G1Affine
		want1.ScalarMultiplication(&g1, kb)
		got1 := toG1(bls381.G1mul(G, k))
		require.True(t, got1.Equal(&want1))
		require.True(t, got1.IsInSubGroup())

		var want2 gnark.G2Affine
		want2.ScalarMultiplication(&g2, kb)
		got2 := toG2(bls381.G2mul(Q, k))
		require.True(t, got2.Equal(&want2))
		require.True(t, got2.IsInSubGroup())
	}
}

// TestBLSAgainstGnark 用 gnark 的配对检查本包产生的签名：e(σ, G2) = e(H(m), PK)。
func TestBLSAgainstGnark(t *testing.T) {
	scheme, err := bls.New[bls381.Curve]()
	require.NoError(t, err)
	_, _, _, g2 := gnark.Generators()

	sk, pk, err := scheme.KeyPairGenerate([]byte("gnark cross check key material!!"))
	require.NoError(t, err)
	W, err := bls381.ECP2_fromBytesChecked(pk)
	require.NoError(t, err)
	gpk := toG2(W)

	for _, msg := range []string{"", "abc", "a much longer message that spans more than a single hash block of input"} {
		sig, err := scheme.Sign([]byte(msg), sk)
		require.NoError(t, err)
		S, err := bls381.ECP_fromBytesChecked(sig)
		require.NoError(t, err)

		var negH gnark.G1Affine
		h := toG1(scheme.HashToPoint([]byte(msg)))
		require.True(t, h.IsInSubGroup())
		negH.Neg(&h)

		ok, err := gnark.PairingCheck([]gnark.G1Affine{toG1(S), negH}, []gnark.G2Affine{g2, gpk})
		require.NoError(t, err)
		require.True(t, ok, msg)

		other := toG1(scheme.HashToPoint([]byte(msg + "!")))
		negH.Neg(&other)
		ok, err = gnark.PairingCheck([]gnark.G1Affine{toG1(S), negH}, []gnark.G2Affine{g2, gpk})
		require.NoError(t, err)
		require.False(t, ok, msg)
	}
}

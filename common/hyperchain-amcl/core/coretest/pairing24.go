package coretest

import (
	"crypto/sha256"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/vars"
	"github.com/stretchr/testify/require"
)

func runPairing24[C core.Curve](t *testing.T) {
	rng := newRand(24)
	r := core.CurveOrder[C]()
	mb := modBytes[C]()
	G := core.ECP_generator[C]()
	Q := core.ECP4_generator[C]()
	e := core.Fexp24(core.Ate24(Q, G))

	t.Run("generators", func(t *testing.T) {
		require.False(t, Q.IsInfinity())
		require.True(t, core.G1member(G))
		require.True(t, core.G2member24(Q))
		require.True(t, Q.Mul(r).IsInfinity())
	})

	t.Run("non-degenerate", func(t *testing.T) {
		require.False(t, e.IsUnity())
		require.True(t, core.GTmember24(e))
		require.False(t, core.GTmember24(core.NewFP24int[C](1)))
	})

	t.Run("bilinear", func(t *testing.T) {
		a := randScalar[C](rng)
		b := randScalar[C](rng)
		lhs := core.Fexp24(core.Ate24(core.G2mul24(Q, b), core.G1mul(G, a)))
		rhs := core.GTpow24(e, core.Modmul(a, b, r))
		require.True(t, lhs.Equals(rhs))
		require.True(t, rhs.Equals(e.Pow(core.Modmul(a, b, r))))
	})

	t.Run("G2mul matches Mul", func(t *testing.T) {
		a := randScalar[C](rng)
		require.True(t, core.G2mul24(Q, a).Equals(Q.Mul(a)))
		require.True(t, core.G2mul24(Q, r).IsInfinity())
	})

	t.Run("infinity", func(t *testing.T) {
		require.True(t, core.Fexp24(core.Ate24(Q, core.NewECP[C]())).IsUnity())
		require.True(t, core.Fexp24(core.Ate24(core.NewECP4[C](), G)).IsUnity())
	})

	t.Run("multi-pairing", func(t *testing.T) {
		a := randScalar[C](rng)
		aG := core.G1mul(G, a)
		naQ := core.G2mul24(Q, a)
		naQ.Neg()
		require.True(t, core.Fexp24(core.Ate2_24(Q, aG, naQ, G)).IsUnity())

		acc := core.Initmp24[C]()
		core.Another24(acc, Q, aG)
		core.Another24(acc, naQ, G)
		require.True(t, core.Fexp24(core.Miller24(acc)).IsUnity())

		acc = core.Initmp24[C]()
		core.Another24(acc, Q, G)
		require.True(t, core.Fexp24(core.Miller24(acc)).Equals(e))
	})

	t.Run("encoding", func(t *testing.T) {
		P := core.G2mul24(Q, randScalar[C](rng))
		b := make([]byte, 8*mb)
		P.ToBytes(b)
		R, err := core.ECP4_fromBytesChecked[C](b)
		require.NoError(t, err)
		require.True(t, R.Equals(P))

		var lerr vars.ErrorInvalidLength
		_, err = core.ECP4_fromBytesChecked[C](b[1:])
		require.ErrorAs(t, err, &lerr)

		var perr vars.ErrorInvalidPoint
		bad := append([]byte(nil), b...)
		copy(bad[mb:2*mb], core.Modulus[C]().Bytes())
		_, err = core.ECP4_fromBytesChecked[C](bad)
		require.ErrorAs(t, err, &perr)
		require.True(t, core.ECP4_fromBytes[C](bad).IsInfinity())

		bad = append([]byte(nil), b...)
		bad[len(bad)-1] ^= 1
		_, err = core.ECP4_fromBytesChecked[C](bad)
		require.ErrorAs(t, err, &perr)

		g := make([]byte, 24*mb)
		e.ToBytes(g)
		require.True(t, core.FP24_fromBytes[C](g).Equals(e))
	})

	t.Run("mapit", func(t *testing.T) {
		h := sha256.Sum256([]byte("abc"))
		P := core.ECP4_mapit[C](h[:])
		require.False(t, P.IsInfinity())
		require.True(t, core.G2member24(P))
		require.True(t, P.Mul(r).IsInfinity())
	})
}

func g2mulVector24[C core.Curve](e *core.BIG[C]) string {
	P := core.G2mul24(core.ECP4_generator[C](), e)
	b := make([]byte, 8*modBytes[C]())
	P.ToBytes(b)
	return hexLines(b, modBytes[C]())
}

func pairingVector24[C core.Curve](a, b *core.BIG[C]) string {
	G := core.G1mul(core.ECP_generator[C](), a)
	Q := core.G2mul24(core.ECP4_generator[C](), b)
	g := make([]byte, 24*modBytes[C]())
	core.Fexp24(core.Ate24(Q, G)).ToBytes(g)
	return hexLines(g, modBytes[C]())
}

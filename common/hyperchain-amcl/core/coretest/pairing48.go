package coretest

import (
	"crypto/sha256"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/vars"
	"github.com/stretchr/testify/require"
)

func runPairing48[C core.Curve](t *testing.T) {
	rng := newRand(48)
	r := core.CurveOrder[C]()
	mb := modBytes[C]()
	G := core.ECP_generator[C]()
	Q := core.ECP8_generator[C]()
	e := core.Fexp48(core.Ate48(Q, G))

	t.Run("generators", func(t *testing.T) {
		require.False(t, Q.IsInfinity())
		require.True(t, core.G1member(G))
		require.True(t, core.G2member48(Q))
		require.True(t, Q.Mul(r).IsInfinity())
	})

	t.Run("non-degenerate", func(t *testing.T) {
		require.False(t, e.IsUnity())
		require.True(t, core.GTmember48(e))
		require.False(t, core.GTmember48(core.NewFP48int[C](1)))
	})

	t.Run("bilinear", func(t *testing.T) {
		a := randScalar[C](rng)
		b := randScalar[C](rng)
		lhs := core.Fexp48(core.Ate48(core.G2mul48(Q, b), core.G1mul(G, a)))
		rhs := core.GTpow48(e, core.Modmul(a, b, r))
		require.True(t, lhs.Equals(rhs))
		require.True(t, rhs.Equals(e.Pow(core.Modmul(a, b, r))))
	})

	t.Run("G2mul matches Mul", func(t *testing.T) {
		a := randScalar[C](rng)
		require.True(t, core.G2mul48(Q, a).Equals(Q.Mul(a)))
		require.True(t, core.G2mul48(Q, r).IsInfinity())
	})

	t.Run("infinity", func(t *testing.T) {
		require.True(t, core.Fexp48(core.Ate48(Q, core.NewECP[C]())).IsUnity())
		require.True(t, core.Fexp48(core.Ate48(core.NewECP8[C](), G)).IsUnity())
	})

	t.Run("multi-pairing", func(t *testing.T) {
		a := randScalar[C](rng)
		aG := core.G1mul(G, a)
		naQ := core.G2mul48(Q, a)
		naQ.Neg()
		require.True(t, core.Fexp48(core.Ate2_48(Q, aG, naQ, G)).IsUnity())

		acc := core.Initmp48[C]()
		core.Another48(acc, Q, aG)
		core.Another48(acc, naQ, G)
		require.True(t, core.Fexp48(core.Miller48(acc)).IsUnity())

		acc = core.Initmp48[C]()
		core.Another48(acc, Q, G)
		require.True(t, core.Fexp48(core.Miller48(acc)).Equals(e))
	})

	t.Run("encoding", func(t *testing.T) {
		P := core.G2mul48(Q, randScalar[C](rng))
		b := make([]byte, 16*mb)
		P.ToBytes(b)
		R, err := core.ECP8_fromBytesChecked[C](b)
		require.NoError(t, err)
		require.True(t, R.Equals(P))

		var lerr vars.ErrorInvalidLength
		_, err = core.ECP8_fromBytesChecked[C](b[1:])
		require.ErrorAs(t, err, &lerr)

		var perr vars.ErrorInvalidPoint
		bad := append([]byte(nil), b...)
		copy(bad[mb:2*mb], core.Modulus[C]().Bytes())
		_, err = core.ECP8_fromBytesChecked[C](bad)
		require.ErrorAs(t, err, &perr)
		require.True(t, core.ECP8_fromBytes[C](bad).IsInfinity())

		bad = append([]byte(nil), b...)
		bad[len(bad)-1] ^= 1
		_, err = core.ECP8_fromBytesChecked[C](bad)
		require.ErrorAs(t, err, &perr)

		g := make([]byte, 48*mb)
		e.ToBytes(g)
		require.True(t, core.FP48_fromBytes[C](g).Equals(e))
	})

	t.Run("mapit", func(t *testing.T) {
		h := sha256.Sum256([]byte("abc"))
		P := core.ECP8_mapit[C](h[:])
		require.False(t, P.IsInfinity())
		require.True(t, core.G2member48(P))
		require.True(t, P.Mul(r).IsInfinity())
	})
}

func g2mulVector48[C core.Curve](e *core.BIG[C]) string {
	P := core.G2mul48(core.ECP8_generator[C](), e)
	b := make([]byte, 16*modBytes[C]())
	P.ToBytes(b)
	return hexLines(b, modBytes[C]())
}

func pairingVector48[C core.Curve](a, b *core.BIG[C]) string {
	G := core.G1mul(core.ECP_generator[C](), a)
	Q := core.G2mul48(core.ECP8_generator[C](), b)
	g := make([]byte, 48*modBytes[C]())
	core.Fexp48(core.Ate48(Q, G)).ToBytes(g)
	return hexLines(g, modBytes[C]())
}

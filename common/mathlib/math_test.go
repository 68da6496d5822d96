package mathlib

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurveRegistry(t *testing.T) {
	require.Len(t, Curves, 7)
	for i, c := range Curves {
		require.Equal(t, CurveID(i), c.ID())
		found, err := CurveByName(c.Name())
		require.NoError(t, err)
		require.Same(t, c, found)
	}
	_, err := CurveByName("P256_AMCL")
	require.EqualError(t, err, "unknown curve [P256_AMCL]")
	require.Equal(t, "CurveID(42)", CurveID(42).String())
}

func TestGroupLaws(t *testing.T) {
	for _, c := range Curves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			rng, err := c.Rand()
			require.NoError(t, err)

			a := c.NewRandomZr(rng)
			b := c.NewRandomZr(rng)

			// a·G + b·G = (a+b)·G
			P := c.GenG1.Mul(a)
			P.Add(c.GenG1.Mul(b))
			require.True(t, P.Equals(c.GenG1.Mul(c.ModAdd(a, b, c.GroupOrder))))
			require.True(t, P.Equals(c.GenG1.Mul2(a, c.GenG1, b)))

			P.Sub(c.GenG1.Mul(b))
			require.True(t, P.Equals(c.GenG1.Mul(a)))

			require.True(t, c.GenG1.Mul(c.GroupOrder).IsInfinity())
			require.True(t, c.NewG1().IsInfinity())

			Q := c.GenG2.Mul(a)
			Q.Add(c.GenG2.Mul(b))
			Q.Affine()
			require.True(t, Q.Equals(c.GenG2.Mul(c.ModAdd(a, b, c.GroupOrder))))
			Q.Sub(c.GenG2.Mul(b))
			Q.Affine()
			require.True(t, Q.Equals(c.GenG2.Mul(a)))

			R := c.NewG2()
			R.Clone(c.GenG2)
			require.True(t, R.Equals(c.GenG2))
			require.True(t, c.GenG2.Copy().Equals(c.GenG2))
		})
	}
}

func TestPairing(t *testing.T) {
	for _, c := range Curves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			rng, err := c.Rand()
			require.NoError(t, err)
			a := c.NewRandomZr(rng)
			b := c.NewRandomZr(rng)

			require.False(t, c.GenGt.IsUnity())

			// e(b·Q, a·P) = e(Q, P)^(ab)
			lhs := c.FExp(c.Pairing(c.GenG2.Mul(b), c.GenG1.Mul(a)))
			rhs := c.GenGt.Exp(c.ModMul(a, b, c.GroupOrder))
			require.True(t, lhs.Equals(rhs))

			// e(Q, a·P)·e(Q, -a·P) = 1
			nega := c.ModNeg(a, c.GroupOrder)
			prod := c.FExp(c.Pairing2(c.GenG2, c.GenG1.Mul(a), c.GenG2, c.GenG1.Mul(nega)))
			require.True(t, prod.IsUnity())

			inv := c.GenGt.Exp(a)
			inv.Inverse()
			inv.Mul(c.GenGt.Exp(a))
			require.True(t, inv.IsUnity())
		})
	}
}

func TestScalars(t *testing.T) {
	for _, c := range Curves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			for _, i := range []int64{0, 1, 7, -1, -12345, 1 << 40} {
				z := c.NewZrFromInt(i)
				got, err := z.Int()
				require.NoError(t, err)
				require.Equal(t, i, got)
			}

			rng, err := c.Rand()
			require.NoError(t, err)
			a := c.NewRandomZr(rng)

			inv := a.Copy()
			inv.InvModP(c.GroupOrder)
			require.True(t, c.ModMul(a, inv, c.GroupOrder).Equals(c.NewZrFromInt(1)))

			require.True(t, c.ModSub(c.ModAdd(a, c.NewZrFromInt(5), c.GroupOrder), c.NewZrFromInt(5), c.GroupOrder).Equals(a))
			require.True(t, a.PowMod(c.NewZrFromInt(2)).Equals(c.ModMul(a, a, c.GroupOrder)))

			s := c.NewZrFromBytes(a.Bytes())
			require.True(t, s.Equals(a))
			require.Equal(t, a.String(), s.String())

			h := c.HashToZr([]byte("abc"))
			require.True(t, h.Equals(c.HashToZr([]byte("abc"))))
			require.False(t, h.Equals(c.HashToZr([]byte("abd"))))
		})
	}
}

func TestEncoding(t *testing.T) {
	for _, c := range Curves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			rng, err := c.Rand()
			require.NoError(t, err)
			a := c.NewRandomZr(rng)

			P := c.GenG1.Mul(a)
			P2, err := c.NewG1FromBytes(P.Bytes())
			require.NoError(t, err)
			require.True(t, P.Equals(P2))

			Q := c.GenG2.Mul(a)
			Q2, err := c.NewG2FromBytes(Q.Bytes())
			require.NoError(t, err)
			require.True(t, Q.Equals(Q2))

			g := c.GenGt.Exp(a)
			g2, err := c.NewGtFromBytes(g.Bytes())
			require.NoError(t, err)
			require.True(t, g.Equals(g2))

			_, err = c.NewG1FromBytes(P.Bytes()[:5])
			require.ErrorContains(t, err, "failed decoding G1 element")
			_, err = c.NewG2FromBytes(Q.Bytes()[:5])
			require.Error(t, err)
			_, err = c.NewGtFromBytes(g.Bytes()[:5])
			require.Error(t, err)

			H := c.HashToG1([]byte("pseudonym"))
			require.False(t, H.IsInfinity())
			require.True(t, H.Equals(c.HashToG1([]byte("pseudonym"))))
			require.True(t, H.Mul(c.GroupOrder).IsInfinity())
		})
	}
}

// BLS12-381 在两个后端上是同一条曲线，生成元的倍点必须一致。
func TestBLS12381BackendsAgree(t *testing.T) {
	amclCurve := Curves[BLS12_381_AMCL]
	gurvyCurve := Curves[BLS12_381_GURVY]

	require.Equal(t, new(big.Int).SetBytes(amclCurve.GroupOrder.Bytes()), new(big.Int).SetBytes(gurvyCurve.GroupOrder.Bytes()))

	for _, k := range []int64{1, 2, 3, 1 << 20, -1} {
		pa := amclCurve.GenG1.Mul(amclCurve.NewZrFromInt(k)).Bytes()
		kg := gurvyCurve.ModAdd(gurvyCurve.NewZrFromInt(k), gurvyCurve.NewZrFromInt(0), gurvyCurve.GroupOrder)
		pg := gurvyCurve.GenG1.Mul(kg).Bytes()
		require.Equal(t, byte(0x04), pa[0])
		require.Equal(t, pa[1:], pg, "k = %d", k)
	}
}

func TestNewCurveRejectsNilDriver(t *testing.T) {
	require.PanicsWithError(t, "driver.Curve should not be nil", func() { NewCurve(nil, FP256BN_AMCL) })
}

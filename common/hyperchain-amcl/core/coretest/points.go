package coretest

import (
	"crypto/sha256"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/vars"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// RunPoints 检查基域曲线上的群运算、点编码和哈希到曲线。
func RunPoints[C core.Curve](t *testing.T) {
	if params[C]().CurveType() == core.MONTGOMERY {
		testMontgomery[C](t)
		return
	}
	testGroupLaw[C](t)
	testEncoding[C](t)
	testMapit[C](t)
}

func testGroupLaw[C core.Curve](t *testing.T) {
	r := core.CurveOrder[C]()
	G := core.ECP_generator[C]()
	mb := modBytes[C]()
	scalars := gen.SliceOfN(mb, gen.UInt8())

	t.Run("generator", func(t *testing.T) {
		require.False(t, G.IsInfinity())
		require.True(t, core.G1member(G))
		require.True(t, G.Mul(r).IsInfinity())
	})

	t.Run("outcome", func(t *testing.T) {
		P := core.NewECP[C]()
		P.Copy(G)
		require.Equal(t, core.Doubled, P.Add(G))

		D := core.NewECP[C]()
		D.Copy(G)
		require.Equal(t, core.Doubled, D.Dbl())
		require.True(t, D.Equals(P))

		require.Equal(t, core.Added, P.Add(G))
		require.Equal(t, core.Added, P.Sub(G))
		require.True(t, P.Equals(D))

		N := core.NewECP[C]()
		N.Copy(G)
		N.Neg()
		N.Affine()
		require.Equal(t, core.Infinity, N.Add(G))
		require.True(t, N.IsInfinity())
		require.Equal(t, "infinity", core.Infinity.String())
	})

	props := properties(10)
	props.Property("aG + bG = (a+b)G", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, r), reduced(y, r)
		A, B := G.Mul(a), G.Mul(b)
		A.Add(B)
		return A.Equals(G.Mul(core.Modadd(a, b, r)))
	}, scalars, scalars))
	props.Property("Mul2 matches two Muls", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, r), reduced(y, r)
		H := G.Mul(core.NewBIGint[C](7))
		A := G.Mul(a)
		A.Add(H.Mul(b))
		return A.Equals(G.Mul2(a, H, b))
	}, scalars, scalars))
	props.Property("G1mul matches Mul", prop.ForAll(func(x []byte) bool {
		a := reduced(x, r)
		return core.G1mul(G, a).Equals(G.Mul(a))
	}, scalars))
	props.Property("Pinmul matches Mul", prop.ForAll(func(pin int) bool {
		return G.Pinmul(int32(pin), 14).Equals(G.Mul(core.NewBIGint[C](pin)))
	}, gen.IntRange(0, 1<<14-1)))
	props.TestingRun(t)

	t.Run("muln", func(t *testing.T) {
		rng := newRand(7)
		X := make([]*core.ECP[C], 5)
		e := make([]*core.BIG[C], 5)
		S := core.NewECP[C]()
		for i := range X {
			X[i] = G.Mul(randScalar[C](rng))
			e[i] = randScalar[C](rng)
			S.Add(X[i].Mul(e[i]))
		}
		require.True(t, core.ECP_muln(X, e).Equals(S))
	})

	t.Run("multi affine", func(t *testing.T) {
		rng := newRand(8)
		P := make([]*core.ECP[C], 6)
		want := make([]*core.ECP[C], 6)
		for i := range P {
			P[i] = G.Mul(randScalar[C](rng))
			P[i].Add(G)
			want[i] = core.NewECP[C]()
			want[i].Copy(P[i])
		}
		P[3] = core.NewECP[C]()
		want[3] = core.NewECP[C]()
		core.MultiAffine(P)
		for i := range P {
			require.True(t, P[i].Equals(want[i]), "point %d", i)
			require.Zero(t, core.Comp(P[i].GetX(), want[i].GetX()))
		}
	})
}

func testEncoding[C core.Curve](t *testing.T) {
	p := params[C]()
	mb := modBytes[C]()
	G := core.ECP_generator[C]()
	P := G.Mul(randScalar[C](newRand(9)))

	for _, compress := range []bool{false, true} {
		b := make([]byte, P.EncodedLen(compress))
		P.ToBytes(b, compress)
		Q, err := core.ECP_fromBytesChecked[C](b)
		require.NoError(t, err)
		require.True(t, Q.Equals(P))
		require.True(t, core.ECP_fromBytes[C](b).Equals(P))
	}

	b := make([]byte, P.EncodedLen(false))
	P.ToBytes(b, false)

	var lerr vars.ErrorInvalidLength
	_, err := core.ECP_fromBytesChecked[C](b[:mb])
	require.ErrorAs(t, err, &lerr)

	// 多余的尾部字节
	for _, compress := range []bool{false, true} {
		n := P.EncodedLen(compress)
		long := make([]byte, n+1)
		P.ToBytes(long, compress)
		_, err = core.ECP_fromBytesChecked[C](long)
		require.ErrorAs(t, err, &lerr)
		require.Equal(t, n, lerr.Want)
		require.Equal(t, n+1, lerr.Got)
		require.True(t, core.ECP_fromBytes[C](long).IsInfinity())
	}
	_, err = core.ECP_fromBytesChecked[C](b[:mb+1])
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 1+2*mb, lerr.Want)

	var perr vars.ErrorInvalidPoint
	bad := append([]byte(nil), b...)
	bad[0] = 0x05
	_, err = core.ECP_fromBytesChecked[C](bad)
	require.ErrorAs(t, err, &perr)
	require.Equal(t, p.Name(), perr.Group)

	bad = append([]byte(nil), b...)
	copy(bad[1:mb+1], core.Modulus[C]().Bytes())
	_, err = core.ECP_fromBytesChecked[C](bad)
	require.ErrorAs(t, err, &perr)
	require.True(t, core.ECP_fromBytes[C](bad).IsInfinity())

	bad = append([]byte(nil), b...)
	bad[2*mb] ^= 1
	_, err = core.ECP_fromBytesChecked[C](bad)
	require.ErrorAs(t, err, &perr)
}

func testMapit[C core.Curve](t *testing.T) {
	r := core.CurveOrder[C]()
	for _, msg := range []string{"", "abc", "hello pairing"} {
		h := sha256.Sum256([]byte(msg))
		P := core.ECP_mapit[C](h[:])
		require.False(t, P.IsInfinity(), msg)
		require.True(t, P.Mul(r).IsInfinity(), msg)
		require.True(t, core.ECP_mapit[C](h[:]).Equals(P), msg)
	}
}

// Montgomery 曲线只有 x 坐标的阶梯乘法，点加不可用。
func testMontgomery[C core.Curve](t *testing.T) {
	r := core.CurveOrder[C]()
	G := core.ECP_generator[C]()
	mb := modBytes[C]()
	scalars := gen.SliceOfN(mb, gen.UInt8())

	require.False(t, G.IsInfinity())
	require.True(t, G.Mul(r).IsInfinity())
	require.True(t, G.Mul(core.NewBIG[C]()).IsInfinity())

	props := properties(10)
	props.Property("scalar multiplication commutes", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, r), reduced(y, r)
		return G.Mul(a).Mul(b).Equals(G.Mul(b).Mul(a))
	}, scalars, scalars))
	props.Property("encoding round trip", prop.ForAll(func(x []byte) bool {
		P := G.Mul(reduced(x, r))
		if P.IsInfinity() {
			return true
		}
		b := make([]byte, P.EncodedLen(false))
		P.ToBytes(b, false)
		Q, err := core.ECP_fromBytesChecked[C](b)
		return err == nil && Q.Equals(P)
	}, scalars))
	props.TestingRun(t)

	b := make([]byte, G.EncodedLen(false)+1)
	G.ToBytes(b, false)
	var lerr vars.ErrorInvalidLength
	_, err := core.ECP_fromBytesChecked[C](b)
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 1+mb, lerr.Want)
	require.True(t, core.ECP_fromBytes[C](b).IsInfinity())

	b = b[:G.EncodedLen(false)]
	b[0] = 0x04
	var perr vars.ErrorInvalidPoint
	_, err = core.ECP_fromBytesChecked[C](b)
	require.ErrorAs(t, err, &perr)

	unsupported := vars.ErrorUnsupportedOperation{Op: "point addition", Curve: params[C]().Name()}.Error()
	require.PanicsWithError(t, unsupported, func() { G.Mul(core.NewBIGint[C](2)).Add(G) })
	require.PanicsWithError(t, unsupported, func() { G.Mul(core.NewBIGint[C](3)).Sub(G) })
	require.PanicsWithError(t, unsupported, func() { G.Mul2(core.NewBIGint[C](2), G, core.NewBIGint[C](3)) })

	h := sha256.Sum256([]byte("abc"))
	P := core.ECP_mapit[C](h[:])
	require.False(t, P.IsInfinity())
	require.True(t, P.Mul(r).IsInfinity())
}

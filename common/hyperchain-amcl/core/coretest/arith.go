package coretest

import (
	"math/big"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/vars"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// RunArithmetic 检查大整数、基域和（配对友好曲线的）扩域运算，大整数与基域的结果以 math/big 为准。
func RunArithmetic[C core.Curve](t *testing.T) {
	p := params[C]()
	t.Run("BIG", testBIG[C])
	t.Run("FP", testFP[C])
	if p.Pairing() == core.NOT {
		return
	}
	t.Run("FP2", testFP2[C])
	t.Run("FP4", testFP4[C])
	switch p.Embedding() {
	case 12:
		t.Run("FP12", testFP12[C])
	case 24:
		t.Run("FP8", testFP8[C])
		t.Run("FP24", testFP24[C])
	case 48:
		t.Run("FP8", testFP8[C])
		t.Run("FP16", testFP16[C])
		t.Run("FP48", testFP48[C])
	}
}

func testBIG[C core.Curve](t *testing.T) {
	mb := modBytes[C]()
	r := core.CurveOrder[C]()
	ri := toInt(r)
	bytes := gen.SliceOfN(mb, gen.UInt8())

	props := properties(50)
	props.Property("Modmul matches math/big", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, r), reduced(y, r)
		want := new(big.Int).Mul(toInt(a), toInt(b))
		want.Mod(want, ri)
		return toInt(core.Modmul(a, b, r)).Cmp(want) == 0
	}, bytes, bytes))
	props.Property("Modadd and Modneg cancel", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, r), reduced(y, r)
		s := core.Modadd(a, b, r)
		d := core.Modadd(s, core.Modneg(b, r), r)
		return core.Comp(d, a) == 0
	}, bytes, bytes))
	props.Property("Invmodp is a modular inverse", prop.ForAll(func(x []byte) bool {
		a := reduced(x, r)
		if a.IsZilch() {
			return true
		}
		inv := core.NewBIGcopy(a)
		inv.Invmodp(r)
		return core.Modmul(a, inv, r).IsUnity()
	}, bytes))
	props.Property("Powmod matches math/big", prop.ForAll(func(x, y []byte) bool {
		a, e := reduced(x, r), reduced(y, r)
		want := new(big.Int).Exp(toInt(a), toInt(e), ri)
		return toInt(a.Powmod(e, r)).Cmp(want) == 0
	}, bytes, bytes))
	props.Property("DBIG division matches math/big", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, r), reduced(y, r)
		n := new(big.Int).Mul(toInt(a), toInt(b))
		d := core.DBIG_fromBytes[C](n.FillBytes(make([]byte, 2*mb)))
		q, m := new(big.Int).QuoRem(n, ri, new(big.Int))
		return toInt(core.NewDBIGcopy(d).Mod(r)).Cmp(m) == 0 && toInt(d.Div(r)).Cmp(q) == 0
	}, bytes, bytes))
	props.Property("shifts match math/big", prop.ForAll(func(x []byte, k uint) bool {
		a := reduced(x, r)
		want := new(big.Int).Rsh(toInt(a), k)
		a.Shr(k)
		return toInt(a).Cmp(want) == 0
	}, bytes, gen.UIntRange(0, 63)))
	props.Property("Jacobi matches math/big", prop.ForAll(func(x []byte) bool {
		m := core.Modulus[C]()
		a := reduced(x, m)
		return a.Jacobi(m) == big.Jacobi(toInt(a), toInt(m))
	}, bytes))
	props.TestingRun(t)

	t.Run("bytes", func(t *testing.T) {
		a := randScalar[C](newRand(1))
		b, err := core.FromBytesChecked[C](a.Bytes())
		require.NoError(t, err)
		require.Zero(t, core.Comp(a, b))

		_, err = core.FromBytesChecked[C](a.Bytes()[1:])
		var lerr vars.ErrorInvalidLength
		require.ErrorAs(t, err, &lerr)
		require.Equal(t, mb, lerr.Want)
	})

	t.Run("string", func(t *testing.T) {
		a := randScalar[C](newRand(2))
		b, err := core.FromString[C](a.ToString())
		require.NoError(t, err)
		require.Zero(t, core.Comp(a, b))
	})
}

func testFP[C core.Curve](t *testing.T) {
	mb := modBytes[C]()
	m := core.Modulus[C]()
	mi := toInt(m)
	bytes := gen.SliceOfN(mb, gen.UInt8())

	props := properties(50)
	props.Property("Mul matches math/big", prop.ForAll(func(x, y []byte) bool {
		a, b := reduced(x, m), reduced(y, m)
		f := core.NewFPbig(a)
		f.Mul(core.NewFPbig(b))
		want := new(big.Int).Mul(toInt(a), toInt(b))
		return toInt(f.Redc()).Cmp(want.Mod(want, mi)) == 0
	}, bytes, bytes))
	props.Property("Add then Sub is the identity", prop.ForAll(func(x, y []byte) bool {
		a, b := core.NewFPbig(reduced(x, m)), core.NewFPbig(reduced(y, m))
		s := core.NewFPcopy(a)
		s.Add(b)
		s.Norm()
		s.Sub(b)
		s.Norm()
		return s.Equals(a)
	}, bytes, bytes))
	props.Property("Neg adds to zero", prop.ForAll(func(x []byte) bool {
		a := core.NewFPbig(reduced(x, m))
		n := core.NewFPcopy(a)
		n.Neg()
		n.Add(a)
		n.Reduce()
		return n.IsZilch()
	}, bytes))
	props.Property("Inverse", prop.ForAll(func(x []byte) bool {
		a := core.NewFPbig(reduced(x, m))
		if a.IsZilch() {
			return true
		}
		i := core.NewFPcopy(a)
		i.Inverse()
		i.Mul(a)
		return i.IsUnity()
	}, bytes))
	props.Property("Sqrt of a square", prop.ForAll(func(x []byte) bool {
		a := core.NewFPbig(reduced(x, m))
		s := core.NewFPcopy(a)
		s.Sqr()
		w := core.NewFPcopy(s)
		if !w.Sqrt() {
			return false
		}
		w.Sqr()
		return w.Equals(s)
	}, bytes))
	props.Property("Qr agrees with Sqrt", prop.ForAll(func(x []byte) bool {
		a := core.NewFPbig(reduced(x, m))
		qr := a.Qr() == 1
		return core.NewFPcopy(a).Sqrt() == qr
	}, bytes))
	props.Property("Pow matches math/big", prop.ForAll(func(x, y []byte) bool {
		a, e := reduced(x, m), reduced(y, m)
		want := new(big.Int).Exp(toInt(a), toInt(e), mi)
		return toInt(core.NewFPbig(a).Pow(e).Redc()).Cmp(want) == 0
	}, bytes, bytes))
	props.Property("Imul matches repeated addition", prop.ForAll(func(x []byte, c int) bool {
		a := core.NewFPbig(reduced(x, m))
		want := new(big.Int).Mul(toInt(a.Redc()), big.NewInt(int64(c)))
		a.Imul(c)
		return toInt(a.Redc()).Cmp(want.Mod(want, mi)) == 0
	}, bytes, gen.IntRange(0, 1<<20)))
	props.TestingRun(t)

	t.Run("bytes", func(t *testing.T) {
		f := core.NewFPrand[C](newRand(3))
		b := make([]byte, mb)
		f.ToBytes(b)
		require.True(t, core.FP_fromBytes[C](b).Equals(f))
	})
}

// towerProps 为扩域生成随机种子，每个用例用一个种子构造若干随机元素。
func towerProps(t *testing.T, name string, n int, f func(seed int64) bool) {
	props := properties(n)
	props.Property(name, prop.ForAll(f, gen.Int64()))
	props.TestingRun(t)
}

func testFP2[C core.Curve](t *testing.T) {
	towerProps(t, "FP2 field axioms", 30, func(seed int64) bool {
		rng := newRand(seed)
		a, b, c := core.NewFP2rand[C](rng), core.NewFP2rand[C](rng), core.NewFP2rand[C](rng)
		// (a+b)c = ac+bc
		l := core.NewFP2copy(a)
		l.Add(b)
		l.Norm()
		l.Mul(c)
		r1 := core.NewFP2copy(a)
		r1.Mul(c)
		r2 := core.NewFP2copy(b)
		r2.Mul(c)
		r1.Add(r2)
		r1.Norm()
		if !l.Equals(r1) {
			return false
		}
		i := core.NewFP2copy(a)
		i.Inverse()
		i.Mul(a)
		if !i.IsUnity() {
			return false
		}
		s := core.NewFP2copy(a)
		s.Sqr()
		q := core.NewFP2copy(a)
		q.Mul(a)
		if !s.Equals(q) {
			return false
		}
		if !s.Sqrt() {
			return false
		}
		s.Sqr()
		return s.Equals(q)
	})
	towerProps(t, "MulIP and DivIP are inverse", 30, func(seed int64) bool {
		a := core.NewFP2rand[C](newRand(seed))
		b := core.NewFP2copy(a)
		b.MulIP()
		b.Norm()
		b.DivIP()
		b.Norm()
		return b.Equals(a)
	})
}

func testFP4[C core.Curve](t *testing.T) {
	towerProps(t, "FP4 field axioms", 20, func(seed int64) bool {
		rng := newRand(seed)
		a, b := core.NewFP4rand[C](rng), core.NewFP4rand[C](rng)
		ab := core.NewFP4copy(a)
		ab.Mul(b)
		ba := core.NewFP4copy(b)
		ba.Mul(a)
		if !ab.Equals(ba) {
			return false
		}
		i := core.NewFP4copy(a)
		i.Inverse()
		i.Mul(a)
		if !i.IsUnity() {
			return false
		}
		s := core.NewFP4copy(a)
		s.Sqr()
		w := core.NewFP4copy(s)
		if !w.Sqrt() {
			return false
		}
		w.Sqr()
		return w.Equals(s)
	})
	towerProps(t, "TimesI and DivI are inverse", 20, func(seed int64) bool {
		a := core.NewFP4rand[C](newRand(seed))
		b := core.NewFP4copy(a)
		b.TimesI()
		b.DivI()
		return b.Equals(a)
	})
}

func testFP8[C core.Curve](t *testing.T) {
	towerProps(t, "FP8 field axioms", 10, func(seed int64) bool {
		rng := newRand(seed)
		a, b := core.NewFP8rand[C](rng), core.NewFP8rand[C](rng)
		ab := core.NewFP8copy(a)
		ab.Mul(b)
		ba := core.NewFP8copy(b)
		ba.Mul(a)
		if !ab.Equals(ba) {
			return false
		}
		i := core.NewFP8copy(a)
		i.Inverse()
		i.Mul(a)
		if !i.IsUnity() {
			return false
		}
		s := core.NewFP8copy(a)
		s.Sqr()
		w := core.NewFP8copy(s)
		if !w.Sqrt() {
			return false
		}
		w.Sqr()
		return w.Equals(s)
	})
	towerProps(t, "TimesI and DivI are inverse", 10, func(seed int64) bool {
		a := core.NewFP8rand[C](newRand(seed))
		b := core.NewFP8copy(a)
		b.TimesI()
		b.DivI()
		return b.Equals(a)
	})
}

func testFP16[C core.Curve](t *testing.T) {
	towerProps(t, "FP16 field axioms", 5, func(seed int64) bool {
		rng := newRand(seed)
		a, b := core.NewFP16rand[C](rng), core.NewFP16rand[C](rng)
		ab := core.NewFP16copy(a)
		ab.Mul(b)
		ba := core.NewFP16copy(b)
		ba.Mul(a)
		if !ab.Equals(ba) {
			return false
		}
		i := core.NewFP16copy(a)
		i.Inverse()
		i.Mul(a)
		return i.IsUnity()
	})
}

func testFP12[C core.Curve](t *testing.T) {
	f := core.FP2_frob[C]()
	towerProps(t, "FP12 inverse and Frobenius order", 10, func(seed int64) bool {
		rng := newRand(seed)
		a := core.NewFP12fp4s(core.NewFP4rand[C](rng), core.NewFP4rand[C](rng), core.NewFP4rand[C](rng))
		i := core.NewFP12copy(a)
		i.Inverse()
		i.Mul(a)
		if !i.IsUnity() {
			return false
		}
		s := core.NewFP12copy(a)
		s.Sqr()
		m := core.NewFP12copy(a)
		m.Mul(a)
		if !s.Equals(m) {
			return false
		}
		w := core.NewFP12copy(a)
		w.Frob(f, 12)
		return w.Equals(a)
	})
	t.Run("bytes", func(t *testing.T) {
		rng := newRand(4)
		a := core.NewFP12fp4s(core.NewFP4rand[C](rng), core.NewFP4rand[C](rng), core.NewFP4rand[C](rng))
		b := make([]byte, 12*modBytes[C]())
		a.ToBytes(b)
		require.True(t, core.FP12_fromBytes[C](b).Equals(a))
	})
}

func testFP24[C core.Curve](t *testing.T) {
	f := core.FP2_frob[C]()
	towerProps(t, "FP24 inverse and Frobenius order", 5, func(seed int64) bool {
		rng := newRand(seed)
		a := core.NewFP24fp8s(core.NewFP8rand[C](rng), core.NewFP8rand[C](rng), core.NewFP8rand[C](rng))
		i := core.NewFP24copy(a)
		i.Inverse()
		i.Mul(a)
		if !i.IsUnity() {
			return false
		}
		w := core.NewFP24copy(a)
		w.Frob(f, 24)
		return w.Equals(a)
	})
	t.Run("bytes", func(t *testing.T) {
		rng := newRand(5)
		a := core.NewFP24fp8s(core.NewFP8rand[C](rng), core.NewFP8rand[C](rng), core.NewFP8rand[C](rng))
		b := make([]byte, 24*modBytes[C]())
		a.ToBytes(b)
		require.True(t, core.FP24_fromBytes[C](b).Equals(a))
	})
}

func testFP48[C core.Curve](t *testing.T) {
	f := core.FP2_frob[C]()
	towerProps(t, "FP48 inverse and Frobenius order", 3, func(seed int64) bool {
		rng := newRand(seed)
		a := core.NewFP48fp16s(core.NewFP16rand[C](rng), core.NewFP16rand[C](rng), core.NewFP16rand[C](rng))
		i := core.NewFP48copy(a)
		i.Inverse()
		i.Mul(a)
		if !i.IsUnity() {
			return false
		}
		w := core.NewFP48copy(a)
		w.Frob(f, 48)
		return w.Equals(a)
	})
	t.Run("bytes", func(t *testing.T) {
		rng := newRand(6)
		a := core.NewFP48fp16s(core.NewFP16rand[C](rng), core.NewFP16rand[C](rng), core.NewFP16rand[C](rng))
		b := make([]byte, 48*modBytes[C]())
		a.ToBytes(b)
		require.True(t, core.FP48_fromBytes[C](b).Equals(a))
	})
}

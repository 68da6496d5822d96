/* Finite Field arithmetic */
/* CLINT mod p functions */

package core

import (
	"io"
	"math/bits"
)

// FP 是模 p 的剩余类。对一般模数和蒙哥马利友好模数，x 存放蒙哥马利形式 a*R mod p；
// 伪梅森和广义梅森模数直接存放 a。XES 记录 x 相对 p 的倍数上界（excess）。
type FP[C Curve] struct {
	x   BIG[C]
	XES int32
}

/* Constructors */
func NewFP[C Curve]() *FP[C] {
	F := new(FP[C])
	F.XES = 1
	return F
}

func NewFPint[C Curve](a int) *FP[C] {
	F := new(FP[C])
	if a < 0 {
		m := Modulus[C]()
		m.Inc(a)
		m.Norm()
		F.x.Copy(m)
	} else {
		F.x.w[0] = Chunk(a)
	}
	F.nres()
	return F
}

func NewFPbig[C Curve](a *BIG[C]) *FP[C] {
	F := new(FP[C])
	F.x.Copy(a)
	F.nres()
	return F
}

func NewFPcopy[C Curve](a *FP[C]) *FP[C] {
	F := new(FP[C])
	F.x.Copy(&a.x)
	F.XES = a.XES
	return F
}

func NewFPrand[C Curve](rng io.Reader) *FP[C] {
	m := Modulus[C]()
	w := Randomnum(m, rng)
	F := new(FP[C])
	F.x.Copy(w)
	F.nres()
	return F
}

func (F *FP[C]) ToString() string {
	F.Reduce()
	return F.Redc().ToString()
}

func (F *FP[C]) String() string {
	return F.ToString()
}

/* convert to Montgomery n-residue form */
func (F *FP[C]) nres() {
	p := params[C]()
	if p.rom.ModType != PSEUDO_MERSENNE && p.rom.ModType != GENERALISED_MERSENNE {
		r := NewBIGints[C](p.r2modp)
		F.x.Norm()
		d := mul(&F.x, r)
		F.x.Copy(mod(d))
		F.XES = 2
	} else {
		md := Modulus[C]()
		F.x.Mod(md)
		F.XES = 1
	}
}

/* convert back to regular form */
func (F *FP[C]) Redc() *BIG[C] {
	p := params[C]()
	if p.rom.ModType != PSEUDO_MERSENNE && p.rom.ModType != GENERALISED_MERSENNE {
		d := NewDBIGscopy(&F.x)
		return mod(d)
	}
	return NewBIGcopy(&F.x)
}

/* reduce a DBIG to a BIG using the appropriate form of the modulus */
func mod[C Curve](d *DBIG[C]) *BIG[C] {
	p := params[C]()
	switch p.rom.ModType {
	case PSEUDO_MERSENNE:
		t := d.split(p.MODBITS)
		b := NewBIGdcopy(d)

		v := t.Pmul(int(p.MConst))

		t.Add(b)
		t.Norm()

		tw := t.w[p.NLEN-1]
		t.w[p.NLEN-1] &= p.TMASK
		t.w[0] += (p.MConst * ((tw >> p.TBITS) + (v << (p.BASEBITS - p.TBITS))))

		t.Norm()
		return t
	case MONTGOMERY_FRIENDLY:
		for i := 0; i < p.NLEN; i++ {
			top, bot := muladd[C](d.w[i], p.MConst-1, d.w[i], d.w[p.NLEN+i-1])
			d.w[p.NLEN+i-1] = bot
			d.w[p.NLEN+i] += top
		}
		b := NewBIG[C]()
		for i := 0; i < p.NLEN; i++ {
			b.w[i] = d.w[p.NLEN+i]
		}
		b.Norm()
		return b
	case GENERALISED_MERSENNE: // GoldiLocks only
		t := d.split(p.MODBITS)
		b := NewBIGdcopy(d)
		b.Add(t)
		dd := NewDBIGscopy(t)
		dd.Shl(p.MODBITS / 2)

		tt := dd.split(p.MODBITS)
		lo := NewBIGdcopy(dd)
		b.Add(tt)
		b.Add(lo)
		b.Norm()
		tt.Shl(p.MODBITS / 2)
		b.Add(tt)

		carry := b.w[p.NLEN-1] >> p.TBITS
		b.w[p.NLEN-1] &= p.TMASK
		b.w[0] += carry

		ix := 224 / p.BASEBITS
		b.w[ix] += carry << (224 % p.BASEBITS)
		b.Norm()
		return b
	default:
		md := Modulus[C]()
		return monty(md, p.MConst, d)
	}
}

// find appoximation to quotient of a/m
// Out by at most 2.
// Note that MAXXES is bounded to be 2-bits less than half a word
func quo[C Curve](n *BIG[C], m *BIG[C]) int {
	p := params[C]()
	var num Chunk
	var den Chunk
	hb := uint(CHUNK) / 2
	if p.TBITS < hb {
		sh := hb - p.TBITS
		num = (n.w[p.NLEN-1] << sh) | (n.w[p.NLEN-2] >> (p.BASEBITS - sh))
		den = (m.w[p.NLEN-1] << sh) | (m.w[p.NLEN-2] >> (p.BASEBITS - sh))
	} else {
		num = n.w[p.NLEN-1]
		den = m.w[p.NLEN-1]
	}
	return int(num / (den + 1))
}

func logb2(w uint32) uint {
	return uint(bits.Len32(w))
}

// excessBits 返回满足 2^k >= xes 的最小 k，零值 FP 的 XES 按 1 处理。
func excessBits(xes int32) uint {
	if xes <= 1 {
		return 0
	}
	return logb2(uint32(xes - 1))
}

/* reduce this mod Modulus */
func (F *FP[C]) Reduce() {
	p := params[C]()
	m := Modulus[C]()
	r := Modulus[C]()
	var sb uint
	F.x.Norm()

	if F.XES > 16 {
		q := quo(&F.x, m)
		carry := r.Pmul(q)
		r.w[p.NLEN-1] += carry << p.BASEBITS
		F.x.Sub(r)
		F.x.Norm()
		sb = 2
	} else {
		sb = excessBits(F.XES)
	}

	m.Fshl(sb)
	for sb > 0 {
		sr := ssn(r, &F.x, m)
		F.x.Cmove(r, 1-sr)
		sb -= 1
	}

	F.XES = 1
}

/* test this=0? */
func (F *FP[C]) IsZilch() bool {
	W := NewFPcopy(F)
	W.Reduce()
	return W.x.IsZilch()
}

/* test this=1? */
func (F *FP[C]) IsUnity() bool {
	W := NewFPcopy(F)
	W.Reduce()
	return W.Redc().IsUnity()
}

/* copy from FP b */
func (F *FP[C]) Copy(b *FP[C]) {
	F.x.Copy(&b.x)
	F.XES = b.XES
}

/* set this=0 */
func (F *FP[C]) Zero() {
	F.x.Zero()
	F.XES = 1
}

/* set this=1 */
func (F *FP[C]) One() {
	F.x.One()
	F.nres()
}

// Sign 返回规范表示的奇偶性，用作 hash-to-curve 中的 sgn0。
func (F *FP[C]) Sign() int {
	W := NewFPcopy(F)
	W.Reduce()
	return W.Redc().Parity()
}

/* normalise this */
func (F *FP[C]) Norm() {
	F.x.Norm()
}

/* swap FPs depending on d */
func (F *FP[C]) Cswap(b *FP[C], d int) {
	c := int32(d)
	c = ^(c - 1)
	t := c & (F.XES ^ b.XES)
	F.XES ^= t
	b.XES ^= t
	F.x.Cswap(&b.x, d)
}

/* copy FPs depending on d */
func (F *FP[C]) Cmove(b *FP[C], d int) {
	F.x.Cmove(&b.x, d)
	c := int32(-d)
	F.XES ^= (F.XES ^ b.XES) & c
}

// Mul 计算 this*=b mod Modulus，b 只读。
func (F *FP[C]) Mul(b *FP[C]) {
	p := params[C]()
	if int64(F.XES)*int64(b.XES) > int64(p.FEXCESS) || Pexceed(&F.x, &b.x) {
		F.Reduce()
	}
	F.x.Norm()
	bx := b.x
	bx.Norm()
	d := mul(&F.x, &bx)
	F.x.Copy(mod(d))
	F.XES = 2
}

/* this = -this mod Modulus */
func (F *FP[C]) Neg() {
	p := params[C]()
	m := Modulus[C]()
	sb := excessBits(F.XES)

	m.Fshl(sb)
	F.x.Rsub(m)

	F.XES = (1 << sb) + 1
	if F.XES > p.FEXCESS {
		F.Reduce()
	}
}

/* this*=c mod Modulus, where c is a small int */
func (F *FP[C]) Imul(c int) {
	p := params[C]()
	s := false
	if c < 0 {
		c = -c
		s = true
	}
	F.x.Norm()
	if p.rom.ModType == PSEUDO_MERSENNE || p.rom.ModType == GENERALISED_MERSENNE {
		d := F.x.Pxmul(c)
		F.x.Copy(mod(d))
		F.XES = 2
	} else {
		if int64(F.XES)*int64(c) <= int64(p.FEXCESS) {
			F.x.Pmul(c)
			F.XES *= int32(c)
		} else {
			n := NewFPint[C](c)
			F.Mul(n)
		}
	}
	if s {
		F.Neg()
		F.Norm()
	}
}

/* this*=this mod Modulus */
func (F *FP[C]) Sqr() {
	p := params[C]()
	if int64(F.XES)*int64(F.XES) > int64(p.FEXCESS) || Sexceed(&F.x) {
		F.Reduce()
	}
	F.x.Norm()
	d := sqr(&F.x)
	F.x.Copy(mod(d))
	F.XES = 2
}

/* this+=b */
func (F *FP[C]) Add(b *FP[C]) {
	F.x.Add(&b.x)
	F.XES += b.XES
	if F.XES > params[C]().FEXCESS {
		F.Reduce()
	}
}

/* this-=b */
func (F *FP[C]) Sub(b *FP[C]) {
	n := NewFPcopy(b)
	n.Neg()
	F.Add(n)
}

/* this=b-this */
func (F *FP[C]) Rsub(b *FP[C]) {
	F.Neg()
	F.Add(b)
}

/* this/=2 mod Modulus */
func (F *FP[C]) Div2() {
	p := Modulus[C]()
	F.x.Norm()
	pr := F.x.Parity()
	w := NewBIGcopy(&F.x)
	F.x.Fshr(1)
	w.Add(p)
	w.Norm()
	w.Fshr(1)
	F.x.Cmove(w, pr)
}

// See https://eprint.iacr.org/2018/1038
// return this^(p-3)/4 or this^(p-5)/8
func (F *FP[C]) fpow() *FP[C] {
	p := params[C]()
	ac := [11]int{1, 2, 3, 6, 12, 15, 30, 60, 120, 240, 255}
	var xp []*FP[C]
	// phase 1
	xp = append(xp, NewFPcopy(F))
	xp = append(xp, NewFPcopy(F))
	xp[1].Sqr()
	xp = append(xp, NewFPcopy(xp[1]))
	xp[2].Mul(F)
	xp = append(xp, NewFPcopy(xp[2]))
	xp[3].Sqr()
	xp = append(xp, NewFPcopy(xp[3]))
	xp[4].Sqr()
	xp = append(xp, NewFPcopy(xp[4]))
	xp[5].Mul(xp[2])
	xp = append(xp, NewFPcopy(xp[5]))
	xp[6].Sqr()
	xp = append(xp, NewFPcopy(xp[6]))
	xp[7].Sqr()
	xp = append(xp, NewFPcopy(xp[7]))
	xp[8].Sqr()
	xp = append(xp, NewFPcopy(xp[8]))
	xp[9].Sqr()
	xp = append(xp, NewFPcopy(xp[9]))
	xp[10].Mul(xp[5])
	var n, c int

	n = int(p.MODBITS)
	if p.rom.ModType == GENERALISED_MERSENNE { // Goldilocks ONLY
		n /= 2
	}
	if p.MOD8 == 5 {
		n -= 3
		c = (int(p.MConst) + 5) / 8
	} else {
		n -= 2
		c = (int(p.MConst) + 3) / 4
	}

	bw := 0
	w := 1
	for w < c {
		w *= 2
		bw += 1
	}
	k := w - c

	i := 10
	key := NewFP[C]()

	if k != 0 {
		for ac[i] > k {
			i--
		}
		key.Copy(xp[i])
		k -= ac[i]
	}

	for k != 0 {
		i--
		if ac[i] > k {
			continue
		}
		key.Mul(xp[i])
		k -= ac[i]
	}
	// phase 2
	xp[1].Copy(xp[2])
	xp[2].Copy(xp[5])
	xp[3].Copy(xp[10])

	j := 3
	m := 8
	nw := n - bw
	t := NewFP[C]()
	for 2*m < nw {
		t.Copy(xp[j])
		j++
		for i = 0; i < m; i++ {
			t.Sqr()
		}
		xp[j].Copy(xp[j-1])
		xp[j].Mul(t)
		m *= 2
	}
	lo := nw - m
	r := NewFPcopy(xp[j])

	for lo != 0 {
		m /= 2
		j--
		if lo < m {
			continue
		}
		lo -= m
		t.Copy(r)
		for i = 0; i < m; i++ {
			t.Sqr()
		}
		r.Copy(t)
		r.Mul(xp[j])
	}
	// phase 3
	if bw != 0 {
		for i = 0; i < bw; i++ {
			r.Sqr()
		}
		r.Mul(key)
	}

	if p.rom.ModType == GENERALISED_MERSENNE { // Goldilocks ONLY
		key.Copy(r)
		r.Sqr()
		r.Mul(F)
		for i = 0; i < n+1; i++ {
			r.Sqr()
		}
		r.Mul(key)
	}
	return r
}

// Inverse 用费马小定理计算 1/this。伪梅森和广义梅森模数走专用加法链，其余模数计算 this^(p-2)。
// 零的逆元仍为零。
func (F *FP[C]) Inverse() {
	p := params[C]()
	if p.rom.ModType == PSEUDO_MERSENNE || p.rom.ModType == GENERALISED_MERSENNE {
		y := F.fpow()
		if p.MOD8 == 5 {
			t := NewFPcopy(F)
			t.Sqr()
			F.Mul(t)
			y.Sqr()
		}
		y.Sqr()
		y.Sqr()
		F.Mul(y)
		return
	}
	m2 := Modulus[C]()
	m2.Dec(2)
	m2.Norm()
	F.Copy(F.Pow(m2))
}

/* return TRUE if this==a */
func (F *FP[C]) Equals(a *FP[C]) bool {
	f := NewFPcopy(F)
	s := NewFPcopy(a)

	s.Reduce()
	f.Reduce()
	return Comp(&s.x, &f.x) == 0
}

/* return this^e mod Modulus, 4-bit fixed window */
func (F *FP[C]) Pow(e *BIG[C]) *FP[C] {
	p := params[C]()
	var tb [16]*FP[C]
	var w [1 + (MaxNLEN*64+3)/4]int8
	F.Norm()
	t := NewBIGcopy(e)
	t.Norm()
	nb := 1 + (t.Nbits()+3)/4
	if nb > 1+(p.NLEN*int(p.BASEBITS)+3)/4 {
		nb = 1 + (p.NLEN*int(p.BASEBITS)+3)/4
	}

	for i := 0; i < nb; i++ {
		lsbs := t.Lastbits(4)
		t.Dec(lsbs)
		t.Norm()
		w[i] = int8(lsbs)
		t.Fshr(4)
	}
	tb[0] = NewFPint[C](1)
	tb[1] = NewFPcopy(F)
	for i := 2; i < 16; i++ {
		tb[i] = NewFPcopy(tb[i-1])
		tb[i].Mul(F)
	}
	r := NewFPcopy(tb[w[nb-1]])
	for i := nb - 2; i >= 0; i-- {
		r.Sqr()
		r.Sqr()
		r.Sqr()
		r.Sqr()
		r.Mul(tb[w[i]])
	}
	r.Reduce()
	return r
}

// Sqrt 把 this 替换为它的平方根并返回 true；this 不是二次剩余时置零并返回 false。
// p = 3 mod 4 时计算 this^((p+1)/4)，p = 5 mod 8 时使用 Atkin 算法。
func (F *FP[C]) Sqrt() bool {
	p := params[C]()
	F.Reduce()
	a := NewFPcopy(F)
	var r *FP[C]
	special := p.rom.ModType == PSEUDO_MERSENNE || p.rom.ModType == GENERALISED_MERSENNE
	if p.MOD8 == 5 {
		var v *FP[C]
		i := NewFPcopy(F)
		i.Add(F)
		if special {
			v = i.fpow()
		} else {
			b := Modulus[C]()
			b.Dec(5)
			b.Norm()
			b.Shr(3)
			v = i.Pow(b)
		}
		i.Mul(v)
		i.Mul(v)
		i.Sub(NewFPint[C](1))
		r = NewFPcopy(F)
		r.Mul(v)
		r.Mul(i)
	} else {
		if special {
			r = F.fpow()
			r.Mul(F)
		} else {
			b := Modulus[C]()
			b.Inc(1)
			b.Norm()
			b.Shr(2)
			r = F.Pow(b)
		}
	}
	r.Reduce()
	c := NewFPcopy(r)
	c.Sqr()
	ok := c.Equals(a)
	F.Copy(r)
	if !ok {
		F.Zero()
	}
	return ok
}

/* return jacobi symbol (this/Modulus) */
func (F *FP[C]) Jacobi() int {
	w := F.Redc()
	p := Modulus[C]()
	return w.Jacobi(p)
}

// Qr 返回 1 表示 this 是二次剩余（含零），否则返回 0。
func (F *FP[C]) Qr() int {
	if F.IsZilch() {
		return 1
	}
	if F.Jacobi() == 1 {
		return 1
	}
	return 0
}

func (F *FP[C]) ToBytes(b []byte) {
	F.Reduce()
	F.Redc().ToBytes(b)
}

func FP_fromBytes[C Curve](b []byte) *FP[C] {
	return NewFPbig(FromBytes[C](b))
}

// curveB 返回曲线方程中的常数 B。
func curveB[C Curve]() *FP[C] {
	p := params[C]()
	if p.rom.CurveBI != 0 {
		return NewFPint[C](p.rom.CurveBI)
	}
	return NewFPbig(NewBIGints[C](p.curveB))
}

/* Fp^24 functions */
/* FP24 elements are of the form a+i.b+i^2.c */

package core

type FP24[C Curve] struct {
	a FP8[C]
	b FP8[C]
	c FP8[C]
}

/* Constructors */
func NewFP24[C Curve]() *FP24[C] {
	F := new(FP24[C])
	F.a.Copy(NewFP8[C]())
	F.b.Copy(NewFP8[C]())
	F.c.Copy(NewFP8[C]())
	return F
}

func NewFP24fp8[C Curve](d *FP8[C]) *FP24[C] {
	F := NewFP24[C]()
	F.a.Copy(d)
	return F
}

func NewFP24int[C Curve](d int) *FP24[C] {
	F := NewFP24[C]()
	F.a.Copy(NewFP8int[C](d))
	return F
}

func NewFP24fp8s[C Curve](d *FP8[C], e *FP8[C], f *FP8[C]) *FP24[C] {
	F := new(FP24[C])
	F.a.Copy(d)
	F.b.Copy(e)
	F.c.Copy(f)
	return F
}

func NewFP24copy[C Curve](x *FP24[C]) *FP24[C] {
	F := new(FP24[C])
	F.Copy(x)
	return F
}

/* reduce all components of this mod Modulus */
func (F *FP24[C]) Reduce() {
	F.a.Reduce()
	F.b.Reduce()
	F.c.Reduce()
}

/* normalise all components of this */
func (F *FP24[C]) Norm() {
	F.a.Norm()
	F.b.Norm()
	F.c.Norm()
}

/* test x==0 ? */
func (F *FP24[C]) IsZilch() bool {
	return F.a.IsZilch() && F.b.IsZilch() && F.c.IsZilch()
}

/* Conditional move */
func (F *FP24[C]) Cmove(g *FP24[C], d int) {
	F.a.Cmove(&g.a, d)
	F.b.Cmove(&g.b, d)
	F.c.Cmove(&g.c, d)
}

/* Constant time select from pre-computed table */
func (F *FP24[C]) selector(g []*FP24[C], b int32) {
	m := b >> 31
	babs := (b ^ m) - m

	babs = (babs - 1) / 2

	for i := range g {
		F.Cmove(g[i], teq(babs, int32(i)))
	}

	invF := NewFP24copy(F)
	invF.Conj()
	F.Cmove(invF, int(m&1))
}

/* test x==1 ? */
func (F *FP24[C]) IsUnity() bool {
	return F.a.IsUnity() && F.b.IsZilch() && F.c.IsZilch()
}

/* return true if x==y */
func (F *FP24[C]) Equals(x *FP24[C]) bool {
	return F.a.Equals(&x.a) && F.b.Equals(&x.b) && F.c.Equals(&x.c)
}

/* extract a from this */
func (F *FP24[C]) GetA() *FP8[C] { return NewFP8copy(&F.a) }

/* extract b */
func (F *FP24[C]) GetB() *FP8[C] { return NewFP8copy(&F.b) }

/* extract c */
func (F *FP24[C]) GetC() *FP8[C] { return NewFP8copy(&F.c) }

/* copy this=x */
func (F *FP24[C]) Copy(x *FP24[C]) {
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
	F.c.Copy(&x.c)
}

/* set this=1 */
func (F *FP24[C]) One() {
	F.a.One()
	F.b.Zero()
	F.c.Zero()
}

/* set this=0 */
func (F *FP24[C]) Zero() {
	F.a.Zero()
	F.b.Zero()
	F.c.Zero()
}

/* this=conj(this) */
func (F *FP24[C]) Conj() {
	F.a.Conj()
	F.b.Nconj()
	F.c.Conj()
}

/* Granger-Scott Unitary Squaring */
func (F *FP24[C]) Usqr() {
	A := NewFP8copy(&F.a)
	B := NewFP8copy(&F.c)
	C1 := NewFP8copy(&F.b)
	D := NewFP8[C]()

	F.a.Sqr()
	D.Copy(&F.a)
	D.Add(&F.a)
	F.a.Add(D)

	F.a.Norm()
	A.Nconj()

	A.Add(A)
	F.a.Add(A)
	B.Sqr()
	B.TimesI()

	D.Copy(B)
	D.Add(B)
	B.Add(D)
	B.Norm()

	C1.Sqr()
	D.Copy(C1)
	D.Add(C1)
	C1.Add(D)
	C1.Norm()

	F.b.Conj()
	F.b.Add(&F.b)
	F.c.Nconj()

	F.c.Add(&F.c)
	F.b.Add(B)
	F.c.Add(C1)
	F.Reduce()
}

/* Chung-Hasan SQR2 method from http://cacr.uwaterloo.ca/techreports/2006/cacr2006-24.pdf */
func (F *FP24[C]) Sqr() {
	A := NewFP8copy(&F.a)
	B := NewFP8copy(&F.b)
	C1 := NewFP8copy(&F.c)
	D := NewFP8copy(&F.a)

	A.Sqr()
	B.Mul(&F.c)
	B.Add(B)
	B.Norm()
	C1.Sqr()
	D.Mul(&F.b)
	D.Add(D)

	F.c.Add(&F.a)
	F.c.Add(&F.b)
	F.c.Norm()
	F.c.Sqr()

	F.a.Copy(A)

	A.Add(B)
	A.Norm()
	A.Add(C1)
	A.Add(D)
	A.Norm()

	A.Neg()
	B.TimesI()
	C1.TimesI()

	F.a.Add(B)

	F.b.Copy(C1)
	F.b.Add(D)
	F.c.Add(A)
	F.Norm()
}

/* FP24 full multiplication this=this*y */
func (F *FP24[C]) Mul(y *FP24[C]) {
	z0 := NewFP8copy(&F.a)
	z1 := NewFP8[C]()
	z2 := NewFP8copy(&F.b)
	z3 := NewFP8[C]()
	t0 := NewFP8copy(&F.a)
	t1 := NewFP8copy(&y.a)

	z0.Mul(&y.a)
	z2.Mul(&y.b)

	t0.Add(&F.b)
	t0.Norm()
	t1.Add(&y.b)
	t1.Norm()

	z1.Copy(t0)
	z1.Mul(t1)
	t0.Copy(&F.b)
	t0.Add(&F.c)
	t0.Norm()

	t1.Copy(&y.b)
	t1.Add(&y.c)
	t1.Norm()
	z3.Copy(t0)
	z3.Mul(t1)

	t0.Copy(z0)
	t0.Neg()
	t1.Copy(z2)
	t1.Neg()

	z1.Add(t0)
	F.b.Copy(z1)
	F.b.Add(t1)

	z3.Add(t1)
	z2.Add(t0)

	t0.Copy(&F.a)
	t0.Add(&F.c)
	t0.Norm()
	t1.Copy(&y.a)
	t1.Add(&y.c)
	t1.Norm()
	t0.Mul(t1)
	z2.Add(t0)

	t0.Copy(&F.c)
	t0.Mul(&y.c)
	t1.Copy(t0)
	t1.Neg()

	F.c.Copy(z2)
	F.c.Add(t1)
	z3.Add(t1)
	t0.TimesI()
	F.b.Add(t0)
	z3.Norm()
	z3.TimesI()
	F.a.Copy(z0)
	F.a.Add(z3)
	F.Norm()
}

// Smul 乘以 Miller 循环产生的稀疏线函数值 y。
// D 型扭曲的线函数形如 (a, (b0, 0), 0)，M 型形如 (a, 0, (0, c1))，零分量对应的乘法被跳过。
func (F *FP24[C]) Smul(y *FP24[C]) {
	if params[C]().rom.Twist == D_TYPE {
		yb := &y.b.a
		r0 := NewFP8copy(&F.a)
		r0.Mul(&y.a)
		t := NewFP8copy(&F.c)
		t.Pmul(yb)
		t.TimesI()
		r0.Add(t)

		r1 := NewFP8copy(&F.b)
		r1.Mul(&y.a)
		t.Copy(&F.a)
		t.Pmul(yb)
		r1.Add(t)

		r2 := NewFP8copy(&F.c)
		r2.Mul(&y.a)
		t.Copy(&F.b)
		t.Pmul(yb)
		r2.Add(t)

		F.a.Copy(r0)
		F.b.Copy(r1)
		F.c.Copy(r2)
	} else {
		yc := &y.c.b
		r0 := NewFP8copy(&F.a)
		r0.Mul(&y.a)
		t := NewFP8copy(&F.b)
		t.Pmul(yc)
		t.TimesI()
		t.TimesI()
		r0.Add(t)

		r1 := NewFP8copy(&F.b)
		r1.Mul(&y.a)
		t.Copy(&F.c)
		t.Pmul(yc)
		t.TimesI()
		t.TimesI()
		r1.Add(t)

		r2 := NewFP8copy(&F.c)
		r2.Mul(&y.a)
		t.Copy(&F.a)
		t.Pmul(yc)
		t.TimesI()
		r2.Add(t)

		F.a.Copy(r0)
		F.b.Copy(r1)
		F.c.Copy(r2)
	}
	F.Norm()
}

/* this=1/this */
func (F *FP24[C]) Inverse() {
	f0 := NewFP8copy(&F.a)
	f1 := NewFP8copy(&F.b)
	f2 := NewFP8copy(&F.a)
	f3 := NewFP8[C]()

	F.Norm()
	f0.Sqr()
	f1.Mul(&F.c)
	f1.TimesI()
	f0.Sub(f1)
	f0.Norm()

	f1.Copy(&F.c)
	f1.Sqr()
	f1.TimesI()
	f2.Mul(&F.b)
	f1.Sub(f2)
	f1.Norm()

	f2.Copy(&F.b)
	f2.Sqr()
	f3.Copy(&F.a)
	f3.Mul(&F.c)
	f2.Sub(f3)
	f2.Norm()

	f3.Copy(&F.b)
	f3.Mul(f2)
	f3.TimesI()
	F.a.Mul(f0)
	f3.Add(&F.a)
	F.c.Mul(f1)
	F.c.TimesI()

	f3.Add(&F.c)
	f3.Norm()
	f3.Inverse()
	F.a.Copy(f0)
	F.a.Mul(f3)
	F.b.Copy(f1)
	F.b.Mul(f3)
	F.c.Copy(f2)
	F.c.Mul(f3)
}

/* this=this^(p^n) using Frobenius, f = (1+i)^((p-7)/12) */
func (F *FP24[C]) Frob(f *FP2[C], n int) {
	f2 := NewFP2copy(f)
	f3 := NewFP2copy(f)

	f2.Sqr()
	f3.Mul(f2)
	f3.MulIP()
	f3.Norm()

	for i := 0; i < n; i++ {
		F.a.Frob(f3)
		F.b.Frob(f3)
		F.c.Frob(f3)

		F.b.Qmul(f)
		F.b.TimesI2()
		F.c.Qmul(f2)
		F.c.TimesI2()
		F.c.TimesI2()
	}
}

/* trace function */
func (F *FP24[C]) Trace() *FP8[C] {
	t := NewFP8copy(&F.a)
	t.Imul(3)
	t.Reduce()
	return t
}

/* convert from byte array to FP24 */
func FP24_fromBytes[C Curve](w []byte) *FP24[C] {
	mb := 8 * int(params[C]().MODBYTES)
	a := FP8_fromBytes[C](w[:mb])
	b := FP8_fromBytes[C](w[mb : 2*mb])
	c := FP8_fromBytes[C](w[2*mb : 3*mb])
	return NewFP24fp8s(a, b, c)
}

/* convert this to byte array */
func (F *FP24[C]) ToBytes(w []byte) {
	mb := 8 * int(params[C]().MODBYTES)
	F.a.ToBytes(w[:mb])
	F.b.ToBytes(w[mb : 2*mb])
	F.c.ToBytes(w[2*mb : 3*mb])
}

/* convert to hex string */
func (F *FP24[C]) ToString() string {
	return "[" + F.a.ToString() + "," + F.b.ToString() + "," + F.c.ToString() + "]"
}

func (F *FP24[C]) String() string {
	return F.ToString()
}

// Pow 计算 this^e，使用 3e 与 e 的差分扫描和酉平方，只适用于分圆子群中的元素。
func (F *FP24[C]) Pow(e *BIG[C]) *FP24[C] {
	e1 := NewBIGcopy(e)
	e1.Norm()
	e3 := NewBIGcopy(e1)
	e3.Pmul(3)
	e3.Norm()
	sf := NewFP24copy(F)
	sf.Norm()
	w := NewFP24copy(sf)
	if e3.IsZilch() {
		w.One()
		return w
	}
	nb := e3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		w.Usqr()
		bt := e3.Bit(i) - e1.Bit(i)
		if bt == 1 {
			w.Mul(sf)
		}
		if bt == -1 {
			sf.Conj()
			w.Mul(sf)
			sf.Conj()
		}
	}
	w.Reduce()
	return w
}

/* p=q0^u0.q1^u1...q7^u7, 2 interleaved tables of 8 */
// Bos & Costello https://eprint.iacr.org/2013/458.pdf
// Faz-Hernandez & Longa & Sanchez  https://eprint.iacr.org/2013/158.pdf
// Side channel attack secure
func Pow8[C Curve](q []*FP24[C], u []*BIG[C]) *FP24[C] {
	const groups = 2
	var g [groups][]*FP24[C]
	var w [groups][MaxNLEN*CHUNK + 1]int8
	var s [groups][MaxNLEN*CHUNK + 1]int8
	var pb [groups]int
	var t []*BIG[C]
	r := NewFP24[C]()
	p := NewFP24[C]()

	for i := 0; i < 4*groups; i++ {
		t = append(t, NewBIGcopy(u[i]))
	}

	for k := 0; k < groups; k++ {
		qk := q[4*k : 4*k+4]
		g[k] = append(g[k], NewFP24copy(qk[0]))
		g[k] = append(g[k], NewFP24copy(g[k][0]))
		g[k][1].Mul(qk[1])
		g[k] = append(g[k], NewFP24copy(g[k][0]))
		g[k][2].Mul(qk[2])
		g[k] = append(g[k], NewFP24copy(g[k][1]))
		g[k][3].Mul(qk[2])
		g[k] = append(g[k], NewFP24copy(g[k][0]))
		g[k][4].Mul(qk[3])
		g[k] = append(g[k], NewFP24copy(g[k][1]))
		g[k][5].Mul(qk[3])
		g[k] = append(g[k], NewFP24copy(g[k][2]))
		g[k][6].Mul(qk[3])
		g[k] = append(g[k], NewFP24copy(g[k][3]))
		g[k][7].Mul(qk[3])

		// Make it odd
		pb[k] = 1 - t[4*k].Parity()
		t[4*k].Inc(pb[k])
	}

	// Number of bits
	nb := 0
	for i := 0; i < 4*groups; i++ {
		t[i].Norm()
		if n := t[i].Nbits(); n > nb {
			nb = n
		}
	}
	nb++

	for k := 0; k < groups; k++ {
		// Sign pivot
		s[k][nb-1] = 1
		for i := 0; i < nb-1; i++ {
			t[4*k].Fshr(1)
			s[k][i] = 2*int8(t[4*k].Parity()) - 1
		}

		// Recoded exponent
		for i := 0; i < nb; i++ {
			w[k][i] = 0
			m := 1
			for j := 1; j < 4; j++ {
				bt := s[k][i] * int8(t[4*k+j].Parity())
				t[4*k+j].Fshr(1)
				t[4*k+j].Dec(int(bt) >> 1)
				t[4*k+j].Norm()
				w[k][i] += bt * int8(m)
				m *= 2
			}
		}
	}

	// Main loop
	p.selector(g[0], int32(2*w[0][nb-1]+1))
	for k := 1; k < groups; k++ {
		r.selector(g[k], int32(2*w[k][nb-1]+1))
		p.Mul(r)
	}
	for i := nb - 2; i >= 0; i-- {
		p.Usqr()
		for k := 0; k < groups; k++ {
			r.selector(g[k], int32(2*w[k][i]+s[k][i]))
			p.Mul(r)
		}
	}

	// apply correction
	for k := 0; k < groups; k++ {
		r.Copy(q[4*k])
		r.Conj()
		r.Mul(p)
		p.Cmove(r, pb[k])
	}

	p.Reduce()
	return p
}

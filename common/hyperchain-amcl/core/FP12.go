/* Fp^12 functions */
/* FP12 elements are of the form a+i.b+i^2.c */

package core

type FP12[C Curve] struct {
	a FP4[C]
	b FP4[C]
	c FP4[C]
}

/* Constructors */
func NewFP12[C Curve]() *FP12[C] {
	F := new(FP12[C])
	F.a.Copy(NewFP4[C]())
	F.b.Copy(NewFP4[C]())
	F.c.Copy(NewFP4[C]())
	return F
}

func NewFP12fp4[C Curve](d *FP4[C]) *FP12[C] {
	F := NewFP12[C]()
	F.a.Copy(d)
	return F
}

func NewFP12int[C Curve](d int) *FP12[C] {
	F := NewFP12[C]()
	F.a.Copy(NewFP4int[C](d))
	return F
}

func NewFP12fp4s[C Curve](d *FP4[C], e *FP4[C], f *FP4[C]) *FP12[C] {
	F := new(FP12[C])
	F.a.Copy(d)
	F.b.Copy(e)
	F.c.Copy(f)
	return F
}

func NewFP12copy[C Curve](x *FP12[C]) *FP12[C] {
	F := new(FP12[C])
	F.Copy(x)
	return F
}

/* reduce all components of this mod Modulus */
func (F *FP12[C]) Reduce() {
	F.a.Reduce()
	F.b.Reduce()
	F.c.Reduce()
}

/* normalise all components of this */
func (F *FP12[C]) Norm() {
	F.a.Norm()
	F.b.Norm()
	F.c.Norm()
}

/* test x==0 ? */
func (F *FP12[C]) IsZilch() bool {
	return F.a.IsZilch() && F.b.IsZilch() && F.c.IsZilch()
}

/* Conditional move */
func (F *FP12[C]) Cmove(g *FP12[C], d int) {
	F.a.Cmove(&g.a, d)
	F.b.Cmove(&g.b, d)
	F.c.Cmove(&g.c, d)
}

/* Constant time select from pre-computed table */
func (F *FP12[C]) selector(g []*FP12[C], b int32) {
	m := b >> 31
	babs := (b ^ m) - m

	babs = (babs - 1) / 2

	for i := range g {
		F.Cmove(g[i], teq(babs, int32(i)))
	}

	invF := NewFP12copy(F)
	invF.Conj()
	F.Cmove(invF, int(m&1))
}

/* test x==1 ? */
func (F *FP12[C]) IsUnity() bool {
	return F.a.IsUnity() && F.b.IsZilch() && F.c.IsZilch()
}

/* return true if x==y */
func (F *FP12[C]) Equals(x *FP12[C]) bool {
	return F.a.Equals(&x.a) && F.b.Equals(&x.b) && F.c.Equals(&x.c)
}

/* extract a from this */
func (F *FP12[C]) GetA() *FP4[C] { return NewFP4copy(&F.a) }

/* extract b */
func (F *FP12[C]) GetB() *FP4[C] { return NewFP4copy(&F.b) }

/* extract c */
func (F *FP12[C]) GetC() *FP4[C] { return NewFP4copy(&F.c) }

/* copy this=x */
func (F *FP12[C]) Copy(x *FP12[C]) {
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
	F.c.Copy(&x.c)
}

/* set this=1 */
func (F *FP12[C]) One() {
	F.a.One()
	F.b.Zero()
	F.c.Zero()
}

/* set this=0 */
func (F *FP12[C]) Zero() {
	F.a.Zero()
	F.b.Zero()
	F.c.Zero()
}

/* this=conj(this) */
func (F *FP12[C]) Conj() {
	F.a.Conj()
	F.b.Nconj()
	F.c.Conj()
}

/* Granger-Scott Unitary Squaring */
func (F *FP12[C]) Usqr() {
	A := NewFP4copy(&F.a)
	B := NewFP4copy(&F.c)
	C1 := NewFP4copy(&F.b)
	D := NewFP4[C]()

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
func (F *FP12[C]) Sqr() {
	A := NewFP4copy(&F.a)
	B := NewFP4copy(&F.b)
	C1 := NewFP4copy(&F.c)
	D := NewFP4copy(&F.a)

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

/* FP12 full multiplication this=this*y */
func (F *FP12[C]) Mul(y *FP12[C]) {
	z0 := NewFP4copy(&F.a)
	z1 := NewFP4[C]()
	z2 := NewFP4copy(&F.b)
	z3 := NewFP4[C]()
	t0 := NewFP4copy(&F.a)
	t1 := NewFP4copy(&y.a)

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
func (F *FP12[C]) Smul(y *FP12[C]) {
	if params[C]().rom.Twist == D_TYPE {
		yb := &y.b.a
		r0 := NewFP4copy(&F.a)
		r0.Mul(&y.a)
		t := NewFP4copy(&F.c)
		t.Pmul(yb)
		t.TimesI()
		r0.Add(t)

		r1 := NewFP4copy(&F.b)
		r1.Mul(&y.a)
		t.Copy(&F.a)
		t.Pmul(yb)
		r1.Add(t)

		r2 := NewFP4copy(&F.c)
		r2.Mul(&y.a)
		t.Copy(&F.b)
		t.Pmul(yb)
		r2.Add(t)

		F.a.Copy(r0)
		F.b.Copy(r1)
		F.c.Copy(r2)
	} else {
		yc := &y.c.b
		r0 := NewFP4copy(&F.a)
		r0.Mul(&y.a)
		t := NewFP4copy(&F.b)
		t.Pmul(yc)
		t.TimesI()
		t.TimesI()
		r0.Add(t)

		r1 := NewFP4copy(&F.b)
		r1.Mul(&y.a)
		t.Copy(&F.c)
		t.Pmul(yc)
		t.TimesI()
		t.TimesI()
		r1.Add(t)

		r2 := NewFP4copy(&F.c)
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
func (F *FP12[C]) Inverse() {
	f0 := NewFP4copy(&F.a)
	f1 := NewFP4copy(&F.b)
	f2 := NewFP4copy(&F.a)
	f3 := NewFP4[C]()

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

/* this=this^(p^n) using Frobenius, f = (1+i)^((p-1)/6) */
func (F *FP12[C]) Frob(f *FP2[C], n int) {
	f2 := NewFP2copy(f)
	f3 := NewFP2copy(f)

	f2.Sqr()
	f3.Mul(f2)

	for i := 0; i < n; i++ {
		F.a.Frob(f3)
		F.b.Frob(f3)
		F.c.Frob(f3)

		F.b.Pmul(f)
		F.c.Pmul(f2)
	}
}

/* trace function */
func (F *FP12[C]) Trace() *FP4[C] {
	t := NewFP4copy(&F.a)
	t.Imul(3)
	t.Reduce()
	return t
}

/* convert from byte array to FP12 */
func FP12_fromBytes[C Curve](w []byte) *FP12[C] {
	mb := 4 * int(params[C]().MODBYTES)
	a := FP4_fromBytes[C](w[:mb])
	b := FP4_fromBytes[C](w[mb : 2*mb])
	c := FP4_fromBytes[C](w[2*mb : 3*mb])
	return NewFP12fp4s(a, b, c)
}

/* convert this to byte array */
func (F *FP12[C]) ToBytes(w []byte) {
	mb := 4 * int(params[C]().MODBYTES)
	F.a.ToBytes(w[:mb])
	F.b.ToBytes(w[mb : 2*mb])
	F.c.ToBytes(w[2*mb : 3*mb])
}

/* convert to hex string */
func (F *FP12[C]) ToString() string {
	return "[" + F.a.ToString() + "," + F.b.ToString() + "," + F.c.ToString() + "]"
}

func (F *FP12[C]) String() string {
	return F.ToString()
}

// Pow 计算 this^e，使用 3e 与 e 的差分扫描和酉平方，只适用于分圆子群中的元素。
func (F *FP12[C]) Pow(e *BIG[C]) *FP12[C] {
	e1 := NewBIGcopy(e)
	e1.Norm()
	e3 := NewBIGcopy(e1)
	e3.Pmul(3)
	e3.Norm()
	sf := NewFP12copy(F)
	sf.Norm()
	w := NewFP12copy(sf)
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

/* p=q0^u0.q1^u1.q2^u2.q3^u3 */
// Bos & Costello https://eprint.iacr.org/2013/458.pdf
// Faz-Hernandez & Longa & Sanchez  https://eprint.iacr.org/2013/158.pdf
// Side channel attack secure
func Pow4[C Curve](q []*FP12[C], u []*BIG[C]) *FP12[C] {
	var g []*FP12[C]
	var w [MaxNLEN*CHUNK + 1]int8
	var s [MaxNLEN*CHUNK + 1]int8
	var t []*BIG[C]
	r := NewFP12[C]()
	p := NewFP12[C]()

	for i := 0; i < 4; i++ {
		t = append(t, NewBIGcopy(u[i]))
	}

	g = append(g, NewFP12copy(q[0])) // q[0]
	g = append(g, NewFP12copy(g[0]))
	g[1].Mul(q[1]) // q[0].q[1]
	g = append(g, NewFP12copy(g[0]))
	g[2].Mul(q[2]) // q[0].q[2]
	g = append(g, NewFP12copy(g[1]))
	g[3].Mul(q[2]) // q[0].q[1].q[2]
	g = append(g, NewFP12copy(g[0]))
	g[4].Mul(q[3]) // q[0].q[3]
	g = append(g, NewFP12copy(g[1]))
	g[5].Mul(q[3]) // q[0].q[1].q[3]
	g = append(g, NewFP12copy(g[2]))
	g[6].Mul(q[3]) // q[0].q[2].q[3]
	g = append(g, NewFP12copy(g[3]))
	g[7].Mul(q[3]) // q[0].q[1].q[2].q[3]

	// Make it odd
	pb := 1 - t[0].Parity()
	t[0].Inc(pb)

	// Number of bits
	nb := 0
	for i := 0; i < 4; i++ {
		t[i].Norm()
		if n := t[i].Nbits(); n > nb {
			nb = n
		}
	}
	nb++

	// Sign pivot
	s[nb-1] = 1
	for i := 0; i < nb-1; i++ {
		t[0].Fshr(1)
		s[i] = 2*int8(t[0].Parity()) - 1
	}

	// Recoded exponent
	for i := 0; i < nb; i++ {
		w[i] = 0
		k := 1
		for j := 1; j < 4; j++ {
			bt := s[i] * int8(t[j].Parity())
			t[j].Fshr(1)
			t[j].Dec(int(bt) >> 1)
			t[j].Norm()
			w[i] += bt * int8(k)
			k *= 2
		}
	}

	// Main loop
	p.selector(g, int32(2*w[nb-1]+1))
	for i := nb - 2; i >= 0; i-- {
		p.Usqr()
		r.selector(g, int32(2*w[i]+s[i]))
		p.Mul(r)
	}

	// apply correction
	r.Copy(q[0])
	r.Conj()
	r.Mul(p)
	p.Cmove(r, pb)

	p.Reduce()
	return p
}

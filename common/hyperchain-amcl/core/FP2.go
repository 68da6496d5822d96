/* Finite Field arithmetic  Fp^2 functions */

/* FP2 elements are of the form a+ib, where i is sqrt(-1) */

package core

import "io"

type FP2[C Curve] struct {
	a FP[C]
	b FP[C]
}

func NewFP2[C Curve]() *FP2[C] {
	F := new(FP2[C])
	F.a.XES = 1
	F.b.XES = 1
	return F
}

/* Constructors */
func NewFP2int[C Curve](a int) *FP2[C] {
	F := NewFP2[C]()
	F.a.Copy(NewFPint[C](a))
	return F
}

func NewFP2ints[C Curve](a int, b int) *FP2[C] {
	F := NewFP2[C]()
	F.a.Copy(NewFPint[C](a))
	F.b.Copy(NewFPint[C](b))
	return F
}

func NewFP2copy[C Curve](x *FP2[C]) *FP2[C] {
	F := new(FP2[C])
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
	return F
}

func NewFP2fps[C Curve](c *FP[C], d *FP[C]) *FP2[C] {
	F := new(FP2[C])
	F.a.Copy(c)
	F.b.Copy(d)
	return F
}

func NewFP2bigs[C Curve](c *BIG[C], d *BIG[C]) *FP2[C] {
	F := new(FP2[C])
	F.a.Copy(NewFPbig(c))
	F.b.Copy(NewFPbig(d))
	return F
}

func NewFP2fp[C Curve](c *FP[C]) *FP2[C] {
	F := NewFP2[C]()
	F.a.Copy(c)
	return F
}

func NewFP2big[C Curve](c *BIG[C]) *FP2[C] {
	F := NewFP2[C]()
	F.a.Copy(NewFPbig(c))
	return F
}

func NewFP2rand[C Curve](rng io.Reader) *FP2[C] {
	return NewFP2fps(NewFPrand[C](rng), NewFPrand[C](rng))
}

/* reduce components mod Modulus */
func (F *FP2[C]) Reduce() {
	F.a.Reduce()
	F.b.Reduce()
}

/* normalise components of w */
func (F *FP2[C]) Norm() {
	F.a.Norm()
	F.b.Norm()
}

/* test this=0 ? */
func (F *FP2[C]) IsZilch() bool {
	return F.a.IsZilch() && F.b.IsZilch()
}

func (F *FP2[C]) Cmove(g *FP2[C], d int) {
	F.a.Cmove(&g.a, d)
	F.b.Cmove(&g.b, d)
}

/* test this=1 ? */
func (F *FP2[C]) IsUnity() bool {
	return F.a.IsUnity() && F.b.IsZilch()
}

/* test this=x */
func (F *FP2[C]) Equals(x *FP2[C]) bool {
	return F.a.Equals(&x.a) && F.b.Equals(&x.b)
}

/* extract a */
func (F *FP2[C]) GetA() *BIG[C] {
	F.a.Reduce()
	return F.a.Redc()
}

/* extract b */
func (F *FP2[C]) GetB() *BIG[C] {
	F.b.Reduce()
	return F.b.Redc()
}

// Real 返回实部的副本。
func (F *FP2[C]) Real() *FP[C] { return NewFPcopy(&F.a) }

// Imag 返回虚部的副本。
func (F *FP2[C]) Imag() *FP[C] { return NewFPcopy(&F.b) }

/* copy this=x */
func (F *FP2[C]) Copy(x *FP2[C]) {
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
}

/* set this=0 */
func (F *FP2[C]) Zero() {
	F.a.Zero()
	F.b.Zero()
}

/* set this=1 */
func (F *FP2[C]) One() {
	F.a.One()
	F.b.Zero()
}

/* negate this mod Modulus */
func (F *FP2[C]) Neg() {
	m := NewFPcopy(&F.a)
	t := NewFP[C]()

	m.Add(&F.b)
	m.Neg()
	t.Copy(m)
	t.Add(&F.b)
	F.b.Copy(m)
	F.b.Add(&F.a)
	F.a.Copy(t)
}

/* set to a-ib */
func (F *FP2[C]) Conj() {
	F.b.Neg()
	F.b.Norm()
}

/* this+=a */
func (F *FP2[C]) Add(x *FP2[C]) {
	F.a.Add(&x.a)
	F.b.Add(&x.b)
}

/* this+=this */
func (F *FP2[C]) Dbl() {
	F.a.Add(&F.a)
	F.b.Add(&F.b)
}

/* this-=a */
func (F *FP2[C]) Sub(x *FP2[C]) {
	m := NewFP2copy(x)
	m.Neg()
	F.Add(m)
}

/* this=a-this */
func (F *FP2[C]) Rsub(x *FP2[C]) {
	F.Neg()
	F.Add(x)
}

/* this*=s, where s is an FP */
func (F *FP2[C]) Pmul(s *FP[C]) {
	F.a.Mul(s)
	F.b.Mul(s)
}

/* this*=i, where i is an int */
func (F *FP2[C]) Imul(c int) {
	F.a.Imul(c)
	F.b.Imul(c)
}

/* this*=this */
func (F *FP2[C]) Sqr() {
	w1 := NewFPcopy(&F.a)
	w3 := NewFPcopy(&F.a)
	mb := NewFPcopy(&F.b)
	w1.Add(&F.b)

	w3.Add(&F.a)
	w3.Norm()
	F.b.Mul(w3)

	mb.Neg()
	F.a.Add(mb)

	w1.Norm()
	F.a.Norm()

	F.a.Mul(w1)
}

/* this*=y */
/* Now using Lazy reduction */
func (F *FP2[C]) Mul(y *FP2[C]) {
	p := params[C]()
	if int64(F.a.XES+F.b.XES)*int64(y.a.XES+y.b.XES) > int64(p.FEXCESS) {
		if F.a.XES > 1 {
			F.a.Reduce()
		}
		if F.b.XES > 1 {
			F.b.Reduce()
		}
	}
	F.Norm()
	Y := *y
	Y.Norm()
	y = &Y

	pR := NewDBIG[C]()
	C1 := NewBIGcopy(&F.a.x)
	D := NewBIGcopy(&y.a.x)

	pR.ucopy(Modulus[C]())

	A := mul(&F.a.x, &y.a.x)
	B := mul(&F.b.x, &y.b.x)

	C1.Add(&F.b.x)
	C1.Norm()
	D.Add(&y.b.x)
	D.Norm()

	E := mul(C1, D)
	FF := NewDBIGcopy(A)
	FF.Add(B)
	B.Rsub(pR)

	A.Add(B)
	A.Norm()
	E.Sub(FF)
	E.Norm()

	F.a.x.Copy(mod(A))
	F.a.XES = 3
	F.b.x.Copy(mod(E))
	F.b.XES = 2
}

// Qr 返回范数 a^2+b^2 在 Fp 上的 Jacobi 符号，1 表示 this 是非零的平方元。
func (F *FP2[C]) Qr() int {
	c := NewFP2copy(F)
	c.Conj()
	c.Mul(F)
	return c.a.Jacobi()
}

// Sqrt 计算 sqrt(a+ib) = sqrt((a+sqrt(a^2+b^2))/2) + ib/(2*sqrt((a+sqrt(a^2+b^2))/2))。
// this 不是平方元时置零并返回 false。
func (F *FP2[C]) Sqrt() bool {
	if F.IsZilch() {
		return true
	}
	w1 := NewFPcopy(&F.b)
	w2 := NewFPcopy(&F.a)
	w1.Sqr()
	w2.Sqr()
	w1.Add(w2)
	w1.Norm()
	if w1.Jacobi() != 1 {
		F.Zero()
		return false
	}
	w1.Sqrt()
	w2.Copy(&F.a)
	w2.Add(w1)
	w2.Norm()
	w2.Div2()
	if w2.Jacobi() != 1 {
		w2.Copy(&F.a)
		w2.Sub(w1)
		w2.Norm()
		w2.Div2()
		if w2.Jacobi() != 1 {
			F.Zero()
			return false
		}
	}
	w2.Sqrt()
	F.a.Copy(w2)
	w2.Add(w2)
	w2.Norm()
	w2.Inverse()
	F.b.Mul(w2)
	return true
}

/* output to hex string */
func (F *FP2[C]) ToString() string {
	return "[" + F.a.ToString() + "," + F.b.ToString() + "]"
}

func (F *FP2[C]) String() string {
	return F.ToString()
}

// ToBytes 先写实部再写虚部，共 2*MODBYTES 个字节。
func (F *FP2[C]) ToBytes(bf []byte) {
	mb := int(params[C]().MODBYTES)
	F.a.ToBytes(bf[:mb])
	F.b.ToBytes(bf[mb : 2*mb])
}

func FP2_fromBytes[C Curve](bf []byte) *FP2[C] {
	mb := int(params[C]().MODBYTES)
	ta := FP_fromBytes[C](bf[:mb])
	tb := FP_fromBytes[C](bf[mb : 2*mb])
	return NewFP2fps(ta, tb)
}

/* this=1/this */
func (F *FP2[C]) Inverse() {
	F.Norm()
	w1 := NewFPcopy(&F.a)
	w2 := NewFPcopy(&F.b)

	w1.Sqr()
	w2.Sqr()
	w1.Add(w2)
	w1.Inverse()
	F.a.Mul(w1)
	w1.Neg()
	w1.Norm()
	F.b.Mul(w1)
}

/* this/=2 */
func (F *FP2[C]) Div2() {
	F.a.Div2()
	F.b.Div2()
}

/* this*=sqrt(-1) */
func (F *FP2[C]) TimesI() {
	z := NewFPcopy(&F.a)
	F.a.Copy(&F.b)
	F.a.Neg()
	F.b.Copy(z)
}

/* w*=(1+sqrt(-1)) */
/* where X^2-(1+sqrt(-1)) is irreducible for FP4 */
func (F *FP2[C]) MulIP() {
	t := NewFP2copy(F)
	F.TimesI()
	F.Add(t)
}

/* w/=(1+sqrt(-1)) */
func (F *FP2[C]) DivIP() {
	F.DivIP2()
	F.Div2()
}

/* w*=2/(1+sqrt(-1)) */
func (F *FP2[C]) DivIP2() {
	t := NewFP2[C]()
	F.Norm()
	t.a.Copy(&F.a)
	t.a.Add(&F.b)
	t.b.Copy(&F.b)
	t.b.Sub(&F.a)
	t.Norm()
	F.Copy(t)
}

/* this^e */
func (F *FP2[C]) Pow(e *BIG[C]) *FP2[C] {
	w := NewFP2copy(F)
	r := NewFP2int[C](1)
	z := NewBIGcopy(e)
	z.Norm()
	w.Norm()
	for {
		bt := z.Parity()
		z.Fshr(1)
		if bt == 1 {
			r.Mul(w)
		}
		if z.IsZilch() {
			break
		}
		w.Sqr()
	}
	r.Reduce()
	return r
}

// FP2_frob 返回 Frobenius 常数 (Fra, Frb)，只对配对友好曲线有意义。
func FP2_frob[C Curve]() *FP2[C] {
	p := params[C]()
	return NewFP2bigs(NewBIGints[C](p.fra), NewBIGints[C](p.frb))
}

/* Finite Field arithmetic  Fp^8 functions */

/* FP8 elements are of the form a+wb, where w is sqrt(j) and j is sqrt(1+sqrt(-1)) */

package core

import "io"

type FP8[C Curve] struct {
	a FP4[C]
	b FP4[C]
}

/* Constructors */
func NewFP8[C Curve]() *FP8[C] {
	F := new(FP8[C])
	F.a.Copy(NewFP4[C]())
	F.b.Copy(NewFP4[C]())
	return F
}

func NewFP8int[C Curve](a int) *FP8[C] {
	F := NewFP8[C]()
	F.a.Copy(NewFP4int[C](a))
	return F
}

func NewFP8copy[C Curve](x *FP8[C]) *FP8[C] {
	F := new(FP8[C])
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
	return F
}

func NewFP8fp4s[C Curve](c *FP4[C], d *FP4[C]) *FP8[C] {
	F := new(FP8[C])
	F.a.Copy(c)
	F.b.Copy(d)
	return F
}

func NewFP8fp4[C Curve](c *FP4[C]) *FP8[C] {
	F := NewFP8[C]()
	F.a.Copy(c)
	return F
}

func NewFP8fp[C Curve](c *FP[C]) *FP8[C] {
	F := NewFP8[C]()
	F.a.Copy(NewFP4fp(c))
	return F
}

func NewFP8rand[C Curve](rng io.Reader) *FP8[C] {
	return NewFP8fp4s(NewFP4rand[C](rng), NewFP4rand[C](rng))
}

/* reduce all components of this mod Modulus */
func (F *FP8[C]) Reduce() {
	F.a.Reduce()
	F.b.Reduce()
}

/* normalise all components of this mod Modulus */
func (F *FP8[C]) Norm() {
	F.a.Norm()
	F.b.Norm()
}

/* test this==0 ? */
func (F *FP8[C]) IsZilch() bool {
	return F.a.IsZilch() && F.b.IsZilch()
}

/* test this==1 ? */
func (F *FP8[C]) IsUnity() bool {
	return F.a.IsUnity() && F.b.IsZilch()
}

/* test is w real? That is in a+ib test b is zero */
func (F *FP8[C]) IsReal() bool {
	return F.b.IsZilch()
}

func (F *FP8[C]) Cmove(g *FP8[C], d int) {
	F.a.Cmove(&g.a, d)
	F.b.Cmove(&g.b, d)
}

/* extract real part a */
func (F *FP8[C]) Real() *FP4[C] {
	return NewFP4copy(&F.a)
}

/* extract imaginary part b */
func (F *FP8[C]) Imag() *FP4[C] {
	return NewFP4copy(&F.b)
}

/* test this=x? */
func (F *FP8[C]) Equals(x *FP8[C]) bool {
	return F.a.Equals(&x.a) && F.b.Equals(&x.b)
}

/* copy this=x */
func (F *FP8[C]) Copy(x *FP8[C]) {
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
}

/* set this=0 */
func (F *FP8[C]) Zero() {
	F.a.Zero()
	F.b.Zero()
}

/* set this=1 */
func (F *FP8[C]) One() {
	F.a.One()
	F.b.Zero()
}

/* set this=-this */
func (F *FP8[C]) Neg() {
	F.Norm()
	m := NewFP4copy(&F.a)
	t := NewFP4[C]()
	m.Add(&F.b)
	m.Neg()
	t.Copy(m)
	t.Add(&F.b)
	F.b.Copy(m)
	F.b.Add(&F.a)
	F.a.Copy(t)
	F.Norm()
}

/* this=conjugate(this) */
func (F *FP8[C]) Conj() {
	F.b.Neg()
	F.Norm()
}

/* this=-conjugate(this) */
func (F *FP8[C]) Nconj() {
	F.a.Neg()
	F.Norm()
}

/* this+=x */
func (F *FP8[C]) Add(x *FP8[C]) {
	F.a.Add(&x.a)
	F.b.Add(&x.b)
}

/* this+=this */
func (F *FP8[C]) Dbl() {
	F.a.Dbl()
	F.b.Dbl()
}

/* this-=x */
func (F *FP8[C]) Sub(x *FP8[C]) {
	m := NewFP8copy(x)
	m.Neg()
	F.Add(m)
}

/* this=x-this */
func (F *FP8[C]) Rsub(x *FP8[C]) {
	F.Neg()
	F.Add(x)
}

/* this*=s where s is FP4 */
func (F *FP8[C]) Pmul(s *FP4[C]) {
	F.a.Mul(s)
	F.b.Mul(s)
}

/* this*=s where s is FP2 */
func (F *FP8[C]) Qmul(s *FP2[C]) {
	F.a.Pmul(s)
	F.b.Pmul(s)
}

/* this*=s where s is FP */
func (F *FP8[C]) Tmul(s *FP[C]) {
	F.a.Qmul(s)
	F.b.Qmul(s)
}

/* this*=c where c is int */
func (F *FP8[C]) Imul(c int) {
	F.a.Imul(c)
	F.b.Imul(c)
}

/* this*=this */
func (F *FP8[C]) Sqr() {
	t1 := NewFP4copy(&F.a)
	t2 := NewFP4copy(&F.b)
	t3 := NewFP4copy(&F.a)

	t3.Mul(&F.b)
	t1.Add(&F.b)
	t2.TimesI()

	t2.Add(&F.a)

	t1.Norm()
	t2.Norm()

	F.a.Copy(t1)
	F.a.Mul(t2)

	t2.Copy(t3)
	t2.TimesI()
	t2.Add(t3)
	t2.Norm()
	t2.Neg()
	F.a.Add(t2)

	F.b.Copy(t3)
	F.b.Add(t3)

	F.Norm()
}

/* this*=y */
func (F *FP8[C]) Mul(y *FP8[C]) {
	t1 := NewFP4copy(&F.a)
	t2 := NewFP4copy(&F.b)
	t3 := NewFP4[C]()
	t4 := NewFP4copy(&F.b)

	t1.Mul(&y.a)
	t2.Mul(&y.b)
	t3.Copy(&y.b)
	t3.Add(&y.a)
	t4.Add(&F.a)

	t3.Norm()
	t4.Norm()

	t4.Mul(t3)

	t3.Copy(t1)
	t3.Neg()
	t4.Add(t3)
	t4.Norm()

	t3.Copy(t2)
	t3.Neg()
	F.b.Copy(t4)
	F.b.Add(t3)

	t2.TimesI()
	F.a.Copy(t2)
	F.a.Add(t1)

	F.Norm()
}

/* convert this to hex string */
func (F *FP8[C]) ToString() string {
	return "[" + F.a.ToString() + "," + F.b.ToString() + "]"
}

func (F *FP8[C]) String() string {
	return F.ToString()
}

// ToBytes 按 a、b 的顺序写出 8*MODBYTES 个字节。
func (F *FP8[C]) ToBytes(bf []byte) {
	mb := 4 * int(params[C]().MODBYTES)
	F.a.ToBytes(bf[:mb])
	F.b.ToBytes(bf[mb : 2*mb])
}

func FP8_fromBytes[C Curve](bf []byte) *FP8[C] {
	mb := 4 * int(params[C]().MODBYTES)
	ta := FP4_fromBytes[C](bf[:mb])
	tb := FP4_fromBytes[C](bf[mb : 2*mb])
	return NewFP8fp4s(ta, tb)
}

/* this=1/this */
func (F *FP8[C]) Inverse() {
	t1 := NewFP4copy(&F.a)
	t2 := NewFP4copy(&F.b)

	t1.Sqr()
	t2.Sqr()
	t2.TimesI()
	t2.Norm()
	t1.Sub(t2)
	t1.Inverse()
	F.a.Mul(t1)
	t1.Neg()
	t1.Norm()
	F.b.Mul(t1)
}

/* this*=w where w = sqrt(j) */
func (F *FP8[C]) TimesI() {
	s := NewFP4copy(&F.b)
	t := NewFP4copy(&F.a)
	s.TimesI()
	F.a.Copy(s)
	F.b.Copy(t)
	F.Norm()
}

/* this/=w */
func (F *FP8[C]) DivI() {
	s := NewFP4copy(&F.a)
	s.DivI()
	F.a.Copy(&F.b)
	F.b.Copy(s)
	F.Norm()
}

/* this*=2/w */
func (F *FP8[C]) DivI2() {
	s := NewFP4copy(&F.a)
	s.DivI2()
	F.a.Copy(&F.b)
	F.a.Dbl()
	F.b.Copy(s)
	F.Norm()
}

/* this/=2 */
func (F *FP8[C]) Div2() {
	F.a.Div2()
	F.b.Div2()
}

/* this=this^p using Frobenius, f = (1+i)^((p-3)/4) */
func (F *FP8[C]) Frob(f *FP2[C]) {
	ff := NewFP2copy(f)
	ff.Sqr()
	ff.MulIP()
	ff.Norm()
	F.a.Frob(ff)
	F.b.Frob(ff)
	F.b.Pmul(f)
	F.b.TimesI()
}

/* this*=j, componentwise */
func (F *FP8[C]) TimesI2() {
	F.a.TimesI()
	F.b.TimesI()
}

// Qr 返回 1 表示 this 是 Fp8 中的非零平方元。
func (F *FP8[C]) Qr() int {
	return F.norm().Qr()
}

/* a^2-w^2.b^2 */
func (F *FP8[C]) norm() *FP4[C] {
	t1 := NewFP4copy(&F.a)
	t2 := NewFP4copy(&F.b)
	t1.Sqr()
	t2.Sqr()
	t2.TimesI()
	t2.Norm()
	t1.Sub(t2)
	t1.Norm()
	return t1
}

// Sqrt 用 Fp4 上的开方计算平方根，this 不是平方元时置零并返回 false。
func (F *FP8[C]) Sqrt() bool {
	if F.IsZilch() {
		return true
	}
	n := F.norm()
	if !n.Sqrt() {
		F.Zero()
		return false
	}
	w := NewFP4copy(&F.a)
	w.Add(n)
	w.Norm()
	w.Div2()
	if w.Qr() != 1 {
		w.Copy(&F.a)
		w.Sub(n)
		w.Norm()
		w.Div2()
		if w.Qr() != 1 {
			F.Zero()
			return false
		}
	}
	w.Sqrt()
	F.a.Copy(w)
	w.Dbl()
	w.Norm()
	w.Inverse()
	F.b.Mul(w)
	F.Norm()
	return true
}

/* this^e */
func (F *FP8[C]) Pow(e *BIG[C]) *FP8[C] {
	w := NewFP8copy(F)
	w.Norm()
	z := NewBIGcopy(e)
	r := NewFP8int[C](1)
	z.Norm()
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

/* Finite Field arithmetic  Fp^16 functions */

/* FP16 elements are of the form a+zb, where z is sqrt(w) */

package core

import "io"

type FP16[C Curve] struct {
	a FP8[C]
	b FP8[C]
}

/* Constructors */
func NewFP16[C Curve]() *FP16[C] {
	F := new(FP16[C])
	F.a.Copy(NewFP8[C]())
	F.b.Copy(NewFP8[C]())
	return F
}

func NewFP16int[C Curve](a int) *FP16[C] {
	F := NewFP16[C]()
	F.a.Copy(NewFP8int[C](a))
	return F
}

func NewFP16copy[C Curve](x *FP16[C]) *FP16[C] {
	F := new(FP16[C])
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
	return F
}

func NewFP16fp8s[C Curve](c *FP8[C], d *FP8[C]) *FP16[C] {
	F := new(FP16[C])
	F.a.Copy(c)
	F.b.Copy(d)
	return F
}

func NewFP16fp8[C Curve](c *FP8[C]) *FP16[C] {
	F := NewFP16[C]()
	F.a.Copy(c)
	return F
}

func NewFP16fp[C Curve](c *FP[C]) *FP16[C] {
	F := NewFP16[C]()
	F.a.Copy(NewFP8fp(c))
	return F
}

func NewFP16rand[C Curve](rng io.Reader) *FP16[C] {
	return NewFP16fp8s(NewFP8rand[C](rng), NewFP8rand[C](rng))
}

/* reduce all components of this mod Modulus */
func (F *FP16[C]) Reduce() {
	F.a.Reduce()
	F.b.Reduce()
}

/* normalise all components of this mod Modulus */
func (F *FP16[C]) Norm() {
	F.a.Norm()
	F.b.Norm()
}

/* test this==0 ? */
func (F *FP16[C]) IsZilch() bool {
	return F.a.IsZilch() && F.b.IsZilch()
}

/* test this==1 ? */
func (F *FP16[C]) IsUnity() bool {
	return F.a.IsUnity() && F.b.IsZilch()
}

/* test is w real? That is in a+ib test b is zero */
func (F *FP16[C]) IsReal() bool {
	return F.b.IsZilch()
}

func (F *FP16[C]) Cmove(g *FP16[C], d int) {
	F.a.Cmove(&g.a, d)
	F.b.Cmove(&g.b, d)
}

/* extract real part a */
func (F *FP16[C]) Real() *FP8[C] {
	return NewFP8copy(&F.a)
}

/* extract imaginary part b */
func (F *FP16[C]) Imag() *FP8[C] {
	return NewFP8copy(&F.b)
}

/* test this=x? */
func (F *FP16[C]) Equals(x *FP16[C]) bool {
	return F.a.Equals(&x.a) && F.b.Equals(&x.b)
}

/* copy this=x */
func (F *FP16[C]) Copy(x *FP16[C]) {
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
}

/* set this=0 */
func (F *FP16[C]) Zero() {
	F.a.Zero()
	F.b.Zero()
}

/* set this=1 */
func (F *FP16[C]) One() {
	F.a.One()
	F.b.Zero()
}

/* set this=-this */
func (F *FP16[C]) Neg() {
	F.Norm()
	m := NewFP8copy(&F.a)
	t := NewFP8[C]()
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
func (F *FP16[C]) Conj() {
	F.b.Neg()
	F.Norm()
}

/* this=-conjugate(this) */
func (F *FP16[C]) Nconj() {
	F.a.Neg()
	F.Norm()
}

/* this+=x */
func (F *FP16[C]) Add(x *FP16[C]) {
	F.a.Add(&x.a)
	F.b.Add(&x.b)
}

/* this+=this */
func (F *FP16[C]) Dbl() {
	F.a.Dbl()
	F.b.Dbl()
}

/* this-=x */
func (F *FP16[C]) Sub(x *FP16[C]) {
	m := NewFP16copy(x)
	m.Neg()
	F.Add(m)
}

/* this=x-this */
func (F *FP16[C]) Rsub(x *FP16[C]) {
	F.Neg()
	F.Add(x)
}

/* this*=s where s is FP8 */
func (F *FP16[C]) Pmul(s *FP8[C]) {
	F.a.Mul(s)
	F.b.Mul(s)
}

/* this*=s where s is FP2 */
func (F *FP16[C]) Qmul(s *FP2[C]) {
	F.a.Qmul(s)
	F.b.Qmul(s)
}

/* this*=c where c is int */
func (F *FP16[C]) Imul(c int) {
	F.a.Imul(c)
	F.b.Imul(c)
}

/* this*=this */
func (F *FP16[C]) Sqr() {
	t1 := NewFP8copy(&F.a)
	t2 := NewFP8copy(&F.b)
	t3 := NewFP8copy(&F.a)

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
func (F *FP16[C]) Mul(y *FP16[C]) {
	t1 := NewFP8copy(&F.a)
	t2 := NewFP8copy(&F.b)
	t3 := NewFP8[C]()
	t4 := NewFP8copy(&F.b)

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
func (F *FP16[C]) ToString() string {
	return "[" + F.a.ToString() + "," + F.b.ToString() + "]"
}

func (F *FP16[C]) String() string {
	return F.ToString()
}

// ToBytes 按 a、b 的顺序写出 16*MODBYTES 个字节。
func (F *FP16[C]) ToBytes(bf []byte) {
	mb := 8 * int(params[C]().MODBYTES)
	F.a.ToBytes(bf[:mb])
	F.b.ToBytes(bf[mb : 2*mb])
}

func FP16_fromBytes[C Curve](bf []byte) *FP16[C] {
	mb := 8 * int(params[C]().MODBYTES)
	ta := FP8_fromBytes[C](bf[:mb])
	tb := FP8_fromBytes[C](bf[mb : 2*mb])
	return NewFP16fp8s(ta, tb)
}

/* this=1/this */
func (F *FP16[C]) Inverse() {
	t1 := NewFP8copy(&F.a)
	t2 := NewFP8copy(&F.b)

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

/* this*=z where z = sqrt(w) */
func (F *FP16[C]) TimesI() {
	s := NewFP8copy(&F.b)
	t := NewFP8copy(&F.a)
	s.TimesI()
	F.a.Copy(s)
	F.b.Copy(t)
	F.Norm()
}

/* this/=2 */
func (F *FP16[C]) Div2() {
	F.a.Div2()
	F.b.Div2()
}

/* this=this^p using Frobenius, f = (1+i)^((p-3)/8) */
func (F *FP16[C]) Frob(f *FP2[C]) {
	ff := NewFP2copy(f)
	ff.Sqr()
	ff.Norm()
	F.a.Frob(ff)
	F.b.Frob(ff)
	F.b.Qmul(f)
	F.b.TimesI()
}

/* this*=w, componentwise */
func (F *FP16[C]) TimesI2() {
	F.a.TimesI()
	F.b.TimesI()
}

/* this*=j, componentwise */
func (F *FP16[C]) TimesI4() {
	F.a.TimesI2()
	F.b.TimesI2()
}

/* this^e */
func (F *FP16[C]) Pow(e *BIG[C]) *FP16[C] {
	w := NewFP16copy(F)
	w.Norm()
	z := NewBIGcopy(e)
	r := NewFP16int[C](1)
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

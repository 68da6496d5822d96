/* Finite Field arithmetic  Fp^4 functions */

/* FP4 elements are of the form a+jb, where j is sqrt(1+sqrt(-1)) */

package core

import "io"

type FP4[C Curve] struct {
	a FP2[C]
	b FP2[C]
}

/* Constructors */
func NewFP4[C Curve]() *FP4[C] {
	F := new(FP4[C])
	F.a.Copy(NewFP2[C]())
	F.b.Copy(NewFP2[C]())
	return F
}

func NewFP4int[C Curve](a int) *FP4[C] {
	F := NewFP4[C]()
	F.a.Copy(NewFP2int[C](a))
	return F
}

func NewFP4copy[C Curve](x *FP4[C]) *FP4[C] {
	F := new(FP4[C])
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
	return F
}

func NewFP4fp2s[C Curve](c *FP2[C], d *FP2[C]) *FP4[C] {
	F := new(FP4[C])
	F.a.Copy(c)
	F.b.Copy(d)
	return F
}

func NewFP4fp2[C Curve](c *FP2[C]) *FP4[C] {
	F := NewFP4[C]()
	F.a.Copy(c)
	return F
}

func NewFP4fp[C Curve](c *FP[C]) *FP4[C] {
	F := NewFP4[C]()
	F.a.Copy(NewFP2fp(c))
	return F
}

func NewFP4rand[C Curve](rng io.Reader) *FP4[C] {
	return NewFP4fp2s(NewFP2rand[C](rng), NewFP2rand[C](rng))
}

/* reduce all components of this mod Modulus */
func (F *FP4[C]) Reduce() {
	F.a.Reduce()
	F.b.Reduce()
}

/* normalise all components of this mod Modulus */
func (F *FP4[C]) Norm() {
	F.a.Norm()
	F.b.Norm()
}

/* test this==0 ? */
func (F *FP4[C]) IsZilch() bool {
	return F.a.IsZilch() && F.b.IsZilch()
}

/* test this==1 ? */
func (F *FP4[C]) IsUnity() bool {
	return F.a.IsUnity() && F.b.IsZilch()
}

/* test is w real? That is in a+ib test b is zero */
func (F *FP4[C]) IsReal() bool {
	return F.b.IsZilch()
}

func (F *FP4[C]) Cmove(g *FP4[C], d int) {
	F.a.Cmove(&g.a, d)
	F.b.Cmove(&g.b, d)
}

/* extract real part a */
func (F *FP4[C]) Real() *FP2[C] {
	return NewFP2copy(&F.a)
}

/* extract imaginary part b */
func (F *FP4[C]) Imag() *FP2[C] {
	return NewFP2copy(&F.b)
}

/* test this=x? */
func (F *FP4[C]) Equals(x *FP4[C]) bool {
	return F.a.Equals(&x.a) && F.b.Equals(&x.b)
}

/* copy this=x */
func (F *FP4[C]) Copy(x *FP4[C]) {
	F.a.Copy(&x.a)
	F.b.Copy(&x.b)
}

/* set this=0 */
func (F *FP4[C]) Zero() {
	F.a.Zero()
	F.b.Zero()
}

/* set this=1 */
func (F *FP4[C]) One() {
	F.a.One()
	F.b.Zero()
}

/* set this=-this */
func (F *FP4[C]) Neg() {
	F.Norm()
	m := NewFP2copy(&F.a)
	t := NewFP2[C]()
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
func (F *FP4[C]) Conj() {
	F.b.Neg()
	F.Norm()
}

/* this=-conjugate(this) */
func (F *FP4[C]) Nconj() {
	F.a.Neg()
	F.Norm()
}

/* this+=x */
func (F *FP4[C]) Add(x *FP4[C]) {
	F.a.Add(&x.a)
	F.b.Add(&x.b)
}

/* this+=this */
func (F *FP4[C]) Dbl() {
	F.a.Dbl()
	F.b.Dbl()
}

/* this-=x */
func (F *FP4[C]) Sub(x *FP4[C]) {
	m := NewFP4copy(x)
	m.Neg()
	F.Add(m)
}

/* this=x-this */
func (F *FP4[C]) Rsub(x *FP4[C]) {
	F.Neg()
	F.Add(x)
}

/* this*=s where s is FP2 */
func (F *FP4[C]) Pmul(s *FP2[C]) {
	F.a.Mul(s)
	F.b.Mul(s)
}

/* this*=s where s is FP */
func (F *FP4[C]) Qmul(s *FP[C]) {
	F.a.Pmul(s)
	F.b.Pmul(s)
}

/* this*=c where c is int */
func (F *FP4[C]) Imul(c int) {
	F.a.Imul(c)
	F.b.Imul(c)
}

/* this*=this */
func (F *FP4[C]) Sqr() {
	t1 := NewFP2copy(&F.a)
	t2 := NewFP2copy(&F.b)
	t3 := NewFP2copy(&F.a)

	t3.Mul(&F.b)
	t1.Add(&F.b)
	t2.MulIP()

	t2.Add(&F.a)

	t1.Norm()
	t2.Norm()

	F.a.Copy(t1)
	F.a.Mul(t2)

	t2.Copy(t3)
	t2.MulIP()
	t2.Add(t3)
	t2.Norm()
	t2.Neg()
	F.a.Add(t2)

	F.b.Copy(t3)
	F.b.Add(t3)

	F.Norm()
}

/* this*=y */
func (F *FP4[C]) Mul(y *FP4[C]) {
	t1 := NewFP2copy(&F.a)
	t2 := NewFP2copy(&F.b)
	t3 := NewFP2[C]()
	t4 := NewFP2copy(&F.b)

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

	t2.MulIP()
	F.a.Copy(t2)
	F.a.Add(t1)

	F.Norm()
}

/* convert this to hex string */
func (F *FP4[C]) ToString() string {
	return "[" + F.a.ToString() + "," + F.b.ToString() + "]"
}

func (F *FP4[C]) String() string {
	return F.ToString()
}

// ToBytes 按 a、b 的顺序写出 4*MODBYTES 个字节。
func (F *FP4[C]) ToBytes(bf []byte) {
	mb := 2 * int(params[C]().MODBYTES)
	F.a.ToBytes(bf[:mb])
	F.b.ToBytes(bf[mb : 2*mb])
}

func FP4_fromBytes[C Curve](bf []byte) *FP4[C] {
	mb := 2 * int(params[C]().MODBYTES)
	ta := FP2_fromBytes[C](bf[:mb])
	tb := FP2_fromBytes[C](bf[mb : 2*mb])
	return NewFP4fp2s(ta, tb)
}

/* this=1/this */
func (F *FP4[C]) Inverse() {
	t1 := NewFP2copy(&F.a)
	t2 := NewFP2copy(&F.b)

	t1.Sqr()
	t2.Sqr()
	t2.MulIP()
	t2.Norm()
	t1.Sub(t2)
	t1.Inverse()
	F.a.Mul(t1)
	t1.Neg()
	t1.Norm()
	F.b.Mul(t1)
}

/* this*=i where i = sqrt(1+sqrt(-1)) */
func (F *FP4[C]) TimesI() {
	s := NewFP2copy(&F.b)
	t := NewFP2copy(&F.a)
	s.MulIP()
	F.a.Copy(s)
	F.b.Copy(t)
	F.Norm()
}

/* this/=j */
func (F *FP4[C]) DivI() {
	s := NewFP2copy(&F.a)
	s.DivIP()
	F.a.Copy(&F.b)
	F.b.Copy(s)
	F.Norm()
}

/* this*=2/j */
func (F *FP4[C]) DivI2() {
	s := NewFP2copy(&F.a)
	s.DivIP2()
	F.a.Copy(&F.b)
	F.a.Dbl()
	F.b.Copy(s)
	F.Norm()
}

/* this/=2 */
func (F *FP4[C]) Div2() {
	F.a.Div2()
	F.b.Div2()
}

/* this=this^p using Frobenius, f = (1+i)^((p-1)/2) */
func (F *FP4[C]) Frob(f *FP2[C]) {
	F.a.Conj()
	F.b.Conj()
	F.b.Mul(f)
}

// Qr 返回 1 表示 this 是 Fp4 中的非零平方元。
func (F *FP4[C]) Qr() int {
	return F.norm().Qr()
}

/* a^2-j^2.b^2 */
func (F *FP4[C]) norm() *FP2[C] {
	t1 := NewFP2copy(&F.a)
	t2 := NewFP2copy(&F.b)
	t1.Sqr()
	t2.Sqr()
	t2.MulIP()
	t2.Norm()
	t1.Sub(t2)
	t1.Norm()
	return t1
}

// Sqrt 用 Fp2 上的开方计算平方根，this 不是平方元时置零并返回 false。
func (F *FP4[C]) Sqrt() bool {
	if F.IsZilch() {
		return true
	}
	n := F.norm()
	if !n.Sqrt() {
		F.Zero()
		return false
	}
	w := NewFP2copy(&F.a)
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
func (F *FP4[C]) Pow(e *BIG[C]) *FP4[C] {
	w := NewFP4copy(F)
	w.Norm()
	z := NewBIGcopy(e)
	r := NewFP4int[C](1)
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

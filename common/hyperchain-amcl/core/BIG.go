package core

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/11090815/pairing/vars"
)

// BIG 是定长的大整数，由 NLEN 个 BASEBITS 位的 limb 按小端顺序组成。加减法不立即传播进位，
// 调用方需要在比较、序列化或者超出 excess 限制之前调用 Norm。
type BIG[C Curve] struct {
	w limbs
}

func NewBIG[C Curve]() *BIG[C] {
	return new(BIG[C])
}

func NewBIGint[C Curve](x int) *BIG[C] {
	b := new(BIG[C])
	b.w[0] = Chunk(x)
	return b
}

func NewBIGcopy[C Curve](x *BIG[C]) *BIG[C] {
	b := new(BIG[C])
	b.w = x.w
	return b
}

func NewBIGdcopy[C Curve](x *DBIG[C]) *BIG[C] {
	p := params[C]()
	b := new(BIG[C])
	for i := 0; i < p.NLEN; i++ {
		b.w[i] = x.w[i]
	}
	return b
}

func NewBIGints[C Curve](x limbs) *BIG[C] {
	b := new(BIG[C])
	b.w = x
	return b
}

// Modulus 返回曲线的域模数 p。
func Modulus[C Curve]() *BIG[C] { return NewBIGints[C](params[C]().modulus) }

// CurveOrder 返回素数阶子群的阶 r。
func CurveOrder[C Curve]() *BIG[C] { return NewBIGints[C](params[C]().order) }

// CurveCof 返回 G1 的余因子。
func CurveCof[C Curve]() *BIG[C] { return NewBIGints[C](params[C]().cof) }

// CurveBnx 返回配对曲线参数 x 的绝对值。
func CurveBnx[C Curve]() *BIG[C] { return NewBIGints[C](params[C]().bnx) }

func (r *BIG[C]) Get(i int) Chunk {
	return r.w[i]
}

func (r *BIG[C]) Set(i int, x Chunk) {
	r.w[i] = x
}

/* test for zero */
func (r *BIG[C]) IsZilch() bool {
	d := Chunk(0)
	for i := 0; i < params[C]().NLEN; i++ {
		d |= r.w[i]
	}
	return (1 & ((d - 1) >> params[C]().BASEBITS)) != 0
}

/* set to zero */
func (r *BIG[C]) Zero() {
	r.w = limbs{}
}

/* Test for equal to one */
func (r *BIG[C]) IsUnity() bool {
	d := Chunk(0)
	for i := 1; i < params[C]().NLEN; i++ {
		d |= r.w[i]
	}
	return (1 & ((d - 1) >> params[C]().BASEBITS) & (((r.w[0] ^ 1) - 1) >> params[C]().BASEBITS)) != 0
}

/* set to one */
func (r *BIG[C]) One() {
	r.w = limbs{}
	r.w[0] = 1
}

/* Copy from another BIG */
func (r *BIG[C]) Copy(x *BIG[C]) {
	r.w = x.w
}

/* Copy from another DBIG */
func (r *BIG[C]) dcopy(x *DBIG[C]) {
	for i := 0; i < params[C]().NLEN; i++ {
		r.w[i] = x.w[i]
	}
}

// Excess 返回顶部 limb 中超出模数位长的部分。
func Excess[C Curve](a *BIG[C]) Chunk {
	p := params[C]()
	return (a.w[p.NLEN-1] & p.OMASK) >> p.TBITS
}

// Pexceed 判断 a*b 在不预先约简的情况下是否会溢出累加器。
func Pexceed[C Curve](a, b *BIG[C]) bool {
	ea := Excess(a)
	eb := Excess(b)
	return (int64(ea)+1)*(int64(eb)+1) > int64(params[C]().FEXCESS)
}

// Sexceed 判断 a*a 在不预先约简的情况下是否会溢出累加器。
func Sexceed[C Curve](a *BIG[C]) bool {
	ea := Excess(a)
	return (int64(ea)+1)*(int64(ea)+1) > int64(params[C]().FEXCESS)
}

/* normalise BIG - force all digits < 2^BASEBITS */
func (r *BIG[C]) Norm() Chunk {
	p := params[C]()
	carry := Chunk(0)
	for i := 0; i < p.NLEN-1; i++ {
		d := r.w[i] + carry
		r.w[i] = d & p.BMASK
		carry = d >> p.BASEBITS
	}
	r.w[p.NLEN-1] = (r.w[p.NLEN-1] + carry)
	return (r.w[p.NLEN-1] >> ((8 * p.MODBYTES) % p.BASEBITS))
}

/* Conditional swap of two bigs depending on d using XOR - no branches */
func (r *BIG[C]) Cswap(b *BIG[C], d int) {
	c := Chunk(-d)
	for i := 0; i < params[C]().NLEN; i++ {
		t := c & (r.w[i] ^ b.w[i])
		r.w[i] ^= t
		b.w[i] ^= t
	}
}

/* Conditional copy of g depending on d, no branches */
func (r *BIG[C]) Cmove(g *BIG[C], d int) {
	b := Chunk(-d)
	for i := 0; i < params[C]().NLEN; i++ {
		r.w[i] ^= (r.w[i] ^ g.w[i]) & b
	}
}

/* Shift right by less than a word */
func (r *BIG[C]) Fshr(k uint) int {
	p := params[C]()
	w := r.w[0] & ((Chunk(1) << k) - 1) /* shifted out part */
	for i := 0; i < p.NLEN-1; i++ {
		r.w[i] = (r.w[i] >> k) | ((r.w[i+1] << (p.BASEBITS - k)) & p.BMASK)
	}
	r.w[p.NLEN-1] = r.w[p.NLEN-1] >> k
	return int(w)
}

/* general shift right */
func (r *BIG[C]) Shr(k uint) {
	p := params[C]()
	n := (k % p.BASEBITS)
	m := int(k / p.BASEBITS)
	if m >= p.NLEN {
		r.Zero()
		return
	}
	for i := 0; i < p.NLEN-m-1; i++ {
		r.w[i] = (r.w[m+i] >> n) | ((r.w[m+i+1] << (p.BASEBITS - n)) & p.BMASK)
	}
	r.w[p.NLEN-m-1] = r.w[p.NLEN-1] >> n
	for i := p.NLEN - m; i < p.NLEN; i++ {
		r.w[i] = 0
	}
}

/* Shift left by less than a word */
func (r *BIG[C]) Fshl(k uint) int {
	p := params[C]()
	r.w[p.NLEN-1] = (r.w[p.NLEN-1] << k) | (r.w[p.NLEN-2] >> (p.BASEBITS - k))
	for i := p.NLEN - 2; i > 0; i-- {
		r.w[i] = ((r.w[i] << k) & p.BMASK) | (r.w[i-1] >> (p.BASEBITS - k))
	}
	r.w[0] = (r.w[0] << k) & p.BMASK
	return int(r.w[p.NLEN-1] >> ((8 * p.MODBYTES) % p.BASEBITS)) /* return excess */
}

/* general shift left */
func (r *BIG[C]) Shl(k uint) {
	p := params[C]()
	n := k % p.BASEBITS
	m := int(k / p.BASEBITS)
	if m >= p.NLEN {
		r.Zero()
		return
	}
	r.w[p.NLEN-1] = (r.w[p.NLEN-1-m] << n)
	if p.NLEN >= m+2 {
		r.w[p.NLEN-1] |= (r.w[p.NLEN-m-2] >> (p.BASEBITS - n))
	}
	for i := p.NLEN - 2; i > m; i-- {
		r.w[i] = ((r.w[i-m] << n) & p.BMASK) | (r.w[i-m-1] >> (p.BASEBITS - n))
	}
	r.w[m] = (r.w[0] << n) & p.BMASK
	for i := 0; i < m; i++ {
		r.w[i] = 0
	}
}

/* return number of bits */
func (r *BIG[C]) Nbits() int {
	p := params[C]()
	t := NewBIGcopy(r)
	k := p.NLEN - 1
	t.Norm()
	for k >= 0 && t.w[k] == 0 {
		k--
	}
	if k < 0 {
		return 0
	}
	return int(p.BASEBITS)*k + bits.Len64(uint64(t.w[k]))
}

/* Convert to Hex String */
func (r *BIG[C]) ToString() string {
	s := ""
	ln := r.Nbits()
	if ln%4 == 0 {
		ln /= 4
	} else {
		ln /= 4
		ln++
	}
	mb := int(params[C]().MODBYTES * 2)
	if ln < mb {
		ln = mb
	}
	for i := ln - 1; i >= 0; i-- {
		b := NewBIGcopy(r)
		b.Shr(uint(i * 4))
		s += strconv.FormatInt(int64(b.w[0]&15), 16)
	}
	return s
}

func (r *BIG[C]) String() string {
	return r.ToString()
}

// FromString 解析 ToString 产生的十六进制串，长度不能超过 2*MODBYTES。
func FromString[C Curve](s string) (*BIG[C], error) {
	p := params[C]()
	if len(s) > int(2*p.MODBYTES) {
		return nil, vars.ErrorInvalidLength{Kind: "hex string", Want: int(2 * p.MODBYTES), Got: len(s)}
	}
	x := NewBIG[C]()
	for i := 0; i < len(s); i++ {
		v, err := strconv.ParseUint(s[i:i+1], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex digit '%c' at position [%d]", s[i], i)
		}
		x.Shl(4)
		x.w[0] += Chunk(v)
	}
	return x, nil
}

func (r *BIG[C]) Add(x *BIG[C]) {
	for i := 0; i < params[C]().NLEN; i++ {
		r.w[i] = r.w[i] + x.w[i]
	}
}

/* return this+x */
func (r *BIG[C]) Plus(x *BIG[C]) *BIG[C] {
	s := new(BIG[C])
	for i := 0; i < params[C]().NLEN; i++ {
		s.w[i] = r.w[i] + x.w[i]
	}
	s.Norm()
	return s
}

/* this+=x, where x is int */
func (r *BIG[C]) Inc(x int) {
	r.Norm()
	r.w[0] += Chunk(x)
}

/* return this-x */
func (r *BIG[C]) Minus(x *BIG[C]) *BIG[C] {
	d := new(BIG[C])
	for i := 0; i < params[C]().NLEN; i++ {
		d.w[i] = r.w[i] - x.w[i]
	}
	return d
}

/* this-=x */
func (r *BIG[C]) Sub(x *BIG[C]) {
	for i := 0; i < params[C]().NLEN; i++ {
		r.w[i] = r.w[i] - x.w[i]
	}
}

/* reverse subtract this=x-this */
func (r *BIG[C]) Rsub(x *BIG[C]) {
	for i := 0; i < params[C]().NLEN; i++ {
		r.w[i] = x.w[i] - r.w[i]
	}
}

/* this-=x, where x is int */
func (r *BIG[C]) Dec(x int) {
	r.Norm()
	r.w[0] -= Chunk(x)
}

/* this*=x, where x is small int<NEXCESS */
func (r *BIG[C]) Imul(c int) {
	for i := 0; i < params[C]().NLEN; i++ {
		r.w[i] *= Chunk(c)
	}
}

/* this*=x, where x is >NEXCESS */
func (r *BIG[C]) Pmul(c int) Chunk {
	carry := Chunk(0)
	for i := 0; i < params[C]().NLEN; i++ {
		ak := r.w[i]
		r.w[i] = 0
		carry, r.w[i] = muladd[C](ak, Chunk(c), carry, r.w[i])
	}
	return carry
}

/* this*=c and catch overflow in DBIG */
func (r *BIG[C]) Pxmul(c int) *DBIG[C] {
	p := params[C]()
	m := NewDBIG[C]()
	carry := Chunk(0)
	for j := 0; j < p.NLEN; j++ {
		carry, m.w[j] = muladd[C](r.w[j], Chunk(c), carry, m.w[j])
	}
	m.w[p.NLEN] = carry
	return m
}

/* convert this BIG to byte array */
func (r *BIG[C]) tobytearray(b []byte, n int) {
	r.Norm()
	c := NewBIGcopy(r)
	for i := int(params[C]().MODBYTES) - 1; i >= 0; i-- {
		b[i+n] = byte(c.w[0])
		c.Fshr(8)
	}
}

/* convert from byte array to BIG */
func frombytearray[C Curve](b []byte, n int) *BIG[C] {
	m := NewBIG[C]()
	for i := 0; i < int(params[C]().MODBYTES); i++ {
		m.Fshl(8)
		m.w[0] += Chunk(int(b[i+n] & 0xff))
	}
	return m
}

// ToBytes 以大端序写出 MODBYTES 个字节，b 的长度至少为 MODBYTES。
func (r *BIG[C]) ToBytes(b []byte) {
	r.tobytearray(b, 0)
}

// Bytes 返回 MODBYTES 字节的大端编码。
func (r *BIG[C]) Bytes() []byte {
	b := make([]byte, params[C]().MODBYTES)
	r.tobytearray(b, 0)
	return b
}

// FromBytes 读取大端编码，不足 MODBYTES 个字节时视为高位补零。
func FromBytes[C Curve](b []byte) *BIG[C] {
	mb := int(params[C]().MODBYTES)
	if len(b) < mb {
		t := make([]byte, mb)
		copy(t[mb-len(b):], b)
		b = t
	}
	return frombytearray[C](b, 0)
}

// FromBytesChecked 要求输入正好是 MODBYTES 个字节。
func FromBytesChecked[C Curve](b []byte) (*BIG[C], error) {
	mb := int(params[C]().MODBYTES)
	if len(b) != mb {
		return nil, vars.ErrorInvalidLength{Kind: "big number", Want: mb, Got: len(b)}
	}
	return frombytearray[C](b, 0), nil
}

// set r[i] += a*b+c and return the high part
func muladd[C Curve](a Chunk, b Chunk, c Chunk, r Chunk) (Chunk, Chunk) {
	p := params[C]()
	tp, bt := bits.Mul64(uint64(a), uint64(b))
	bot := Chunk(bt & uint64(p.BMASK))
	top := Chunk((tp << (64 - p.BASEBITS)) | (bt >> p.BASEBITS))
	bot += c
	bot += r
	carry := bot >> p.BASEBITS
	bot &= p.BMASK
	top += carry
	return top, bot
}

/* return a*b as DBIG */
func mul[C Curve](a *BIG[C], b *BIG[C]) *DBIG[C] {
	p := params[C]()
	c := NewDBIG[C]()
	carry := Chunk(0)
	for i := 0; i < p.NLEN; i++ {
		carry = 0
		for j := 0; j < p.NLEN; j++ {
			carry, c.w[i+j] = muladd[C](a.w[i], b.w[j], carry, c.w[i+j])
		}
		c.w[p.NLEN+i] = carry
	}
	return c
}

/* return a^2 as DBIG */
func sqr[C Curve](a *BIG[C]) *DBIG[C] {
	p := params[C]()
	c := NewDBIG[C]()
	carry := Chunk(0)
	for i := 0; i < p.NLEN; i++ {
		carry = 0
		for j := i + 1; j < p.NLEN; j++ {
			carry, c.w[i+j] = muladd[C](2*a.w[i], a.w[j], carry, c.w[i+j])
		}
		c.w[p.NLEN+i] = carry
	}
	for i := 0; i < p.NLEN; i++ {
		top, bot := muladd[C](a.w[i], a.w[i], 0, c.w[2*i])
		c.w[2*i] = bot
		c.w[2*i+1] += top
	}
	c.Norm()
	return c
}

/* Montgomery reduction of d with respect to md */
func monty[C Curve](md *BIG[C], mc Chunk, d *DBIG[C]) *BIG[C] {
	p := params[C]()
	carry := Chunk(0)
	m := Chunk(0)
	for i := 0; i < p.NLEN; i++ {
		if mc == 1 {
			m = d.w[i]
		} else {
			m = (mc * d.w[i]) & p.BMASK
		}
		carry = 0
		for j := 0; j < p.NLEN; j++ {
			carry, d.w[i+j] = muladd[C](m, md.w[j], carry, d.w[i+j])
		}
		d.w[p.NLEN+i] += carry
	}
	b := NewBIG[C]()
	for i := 0; i < p.NLEN; i++ {
		b.w[i] = d.w[p.NLEN+i]
	}
	b.Norm()
	return b
}

// Smul 返回 a*b 的低 NLEN 个 limb，不做模约简。
func Smul[C Curve](a *BIG[C], b *BIG[C]) *BIG[C] {
	p := params[C]()
	carry := Chunk(0)
	c := NewBIG[C]()
	for i := 0; i < p.NLEN; i++ {
		carry = 0
		for j := 0; j < p.NLEN; j++ {
			if i+j < p.NLEN {
				carry, c.w[i+j] = muladd[C](a.w[i], b.w[j], carry, c.w[i+j])
			}
		}
	}
	return c
}

/* Compare a and b, return 0 if a==b, -1 if a<b, +1 if a>b. Inputs must be normalised */
func Comp[C Curve](a *BIG[C], b *BIG[C]) int {
	p := params[C]()
	gt := Chunk(0)
	eq := Chunk(1)
	for i := p.NLEN - 1; i >= 0; i-- {
		gt |= ((b.w[i] - a.w[i]) >> p.BASEBITS) & eq
		eq &= ((b.w[i] ^ a.w[i]) - 1) >> p.BASEBITS
	}
	return int(gt + gt + eq - 1)
}

/* return parity */
func (r *BIG[C]) Parity() int {
	return int(r.w[0] % 2)
}

/* return n-th bit */
func (r *BIG[C]) Bit(n int) int {
	p := params[C]()
	return int((r.w[n/int(p.BASEBITS)] & (Chunk(1) << (uint(n) % p.BASEBITS))) >> (uint(n) % p.BASEBITS))
}

/* return last bits */
func (r *BIG[C]) Lastbits(n int) int {
	msk := (1 << uint(n)) - 1
	r.Norm()
	return (int(r.w[0])) & msk
}

/* truncate to the lowest m bits */
func (r *BIG[C]) mod2m(m uint) {
	p := params[C]()
	wd := int(m / p.BASEBITS)
	bt := m % p.BASEBITS
	msk := (Chunk(1) << bt) - 1
	r.w[wd] &= msk
	for i := wd + 1; i < p.NLEN; i++ {
		r.w[i] = 0
	}
}

/* reduce this mod m */
func (r *BIG[C]) Mod(m1 *BIG[C]) {
	p := params[C]()
	m := NewBIGcopy(m1)
	sr := NewBIG[C]()
	r.Norm()
	if Comp(r, m) < 0 {
		return
	}
	m.Fshl(1)
	k := 1
	for Comp(r, m) >= 0 {
		m.Fshl(1)
		k++
	}
	for k > 0 {
		m.Fshr(1)
		sr.Copy(r)
		sr.Sub(m)
		sr.Norm()
		r.Cmove(sr, int(1-((sr.w[p.NLEN-1]>>uint(CHUNK-1))&1)))
		k--
	}
}

/* divide this by m */
func (r *BIG[C]) Div(m1 *BIG[C]) {
	p := params[C]()
	m := NewBIGcopy(m1)
	k := 0
	r.Norm()
	sr := NewBIG[C]()
	e := NewBIGint[C](1)
	b := NewBIGcopy(r)
	r.Zero()
	for Comp(b, m) >= 0 {
		e.Fshl(1)
		m.Fshl(1)
		k++
	}
	for k > 0 {
		m.Fshr(1)
		e.Fshr(1)
		sr.Copy(b)
		sr.Sub(m)
		sr.Norm()
		d := int(1 - ((sr.w[p.NLEN-1] >> uint(CHUNK-1)) & 1))
		b.Cmove(sr, d)
		sr.Copy(r)
		sr.Add(e)
		sr.Norm()
		r.Cmove(sr, d)
		k--
	}
}

/* return a*b mod m */
func Modmul[C Curve](a1, b1, m *BIG[C]) *BIG[C] {
	a := NewBIGcopy(a1)
	b := NewBIGcopy(b1)
	a.Mod(m)
	b.Mod(m)
	d := mul(a, b)
	return d.Mod(m)
}

/* return a^2 mod m */
func Modsqr[C Curve](a1, m *BIG[C]) *BIG[C] {
	a := NewBIGcopy(a1)
	a.Mod(m)
	d := sqr(a)
	return d.Mod(m)
}

/* return -a mod m */
func Modneg[C Curve](a1, m *BIG[C]) *BIG[C] {
	a := NewBIGcopy(a1)
	a.Mod(m)
	a.Rsub(m)
	a.Norm()
	a.Mod(m)
	return a
}

/* return a+b mod m */
func Modadd[C Curve](a1, b1, m *BIG[C]) *BIG[C] {
	a := NewBIGcopy(a1)
	b := NewBIGcopy(b1)
	a.Mod(m)
	b.Mod(m)
	a.Add(b)
	a.Norm()
	a.Mod(m)
	return a
}

/* Jacobi Symbol (this/p). Returns 0, 1 or -1 */
func (r *BIG[C]) Jacobi(p *BIG[C]) int {
	m := 0
	t := NewBIGint[C](0)
	x := NewBIGint[C](0)
	n := NewBIGint[C](0)
	zilch := NewBIGint[C](0)
	one := NewBIGint[C](1)
	r.Norm()
	if p.Parity() == 0 || Comp(r, zilch) == 0 || Comp(p, one) <= 0 {
		return 0
	}
	x.Copy(r)
	n.Copy(p)
	x.Mod(p)

	for Comp(n, one) > 0 {
		if Comp(x, zilch) == 0 {
			return 0
		}
		n8 := n.Lastbits(3)
		k := 0
		for x.Parity() == 0 {
			k++
			x.Shr(1)
		}
		if k%2 == 1 {
			m += (n8*n8 - 1) / 8
		}
		m += (n8 - 1) * (x.Lastbits(2) - 1) / 4
		t.Copy(n)
		t.Mod(x)
		n.Copy(x)
		x.Copy(t)
		m %= 2
	}
	if m == 0 {
		return 1
	}
	return -1
}

// Invmodp 用二进制扩展欧几里得算法计算 1/this mod p。迭代次数依赖于数据，只用于公开数据。
func (r *BIG[C]) Invmodp(p *BIG[C]) {
	r.Mod(p)
	if r.IsZilch() {
		return
	}
	u := NewBIGcopy(r)
	v := NewBIGcopy(p)
	x1 := NewBIGint[C](1)
	x2 := NewBIGint[C](0)
	t := NewBIGint[C](0)
	one := NewBIGint[C](1)
	for Comp(u, one) != 0 && Comp(v, one) != 0 {
		for u.Parity() == 0 {
			u.Fshr(1)
			t.Copy(x1)
			t.Add(p)
			x1.Cmove(t, x1.Parity())
			x1.Norm()
			x1.Fshr(1)
		}
		for v.Parity() == 0 {
			v.Fshr(1)
			t.Copy(x2)
			t.Add(p)
			x2.Cmove(t, x2.Parity())
			x2.Norm()
			x2.Fshr(1)
		}
		if Comp(u, v) >= 0 {
			u.Sub(v)
			u.Norm()
			t.Copy(x1)
			t.Add(p)
			x1.Cmove(t, (Comp(x1, x2)>>1)&1)
			x1.Sub(x2)
			x1.Norm()
		} else {
			v.Sub(u)
			v.Norm()
			t.Copy(x2)
			t.Add(p)
			x2.Cmove(t, (Comp(x2, x1)>>1)&1)
			x2.Sub(x1)
			x2.Norm()
		}
	}
	r.Copy(x1)
	r.Cmove(x2, Comp(u, one)&1)
}

// InvmodPrime 用费马小定理计算 1/this mod q，q 必须是素数，可用于秘密数据。
func (r *BIG[C]) InvmodPrime(q *BIG[C]) {
	e := NewBIGcopy(q)
	e.Dec(2)
	e.Norm()
	r.Copy(r.Powmod(e, q))
}

/* return this^e mod m */
func (r *BIG[C]) Powmod(e1 *BIG[C], m *BIG[C]) *BIG[C] {
	e := NewBIGcopy(e1)
	r.Norm()
	e.Norm()
	a := NewBIGint[C](1)
	z := NewBIGcopy(e)
	s := NewBIGcopy(r)
	for {
		bt := z.Parity()
		z.Fshr(1)
		if bt == 1 {
			a = Modmul(a, s, m)
		}
		if z.IsZilch() {
			break
		}
		s = Modsqr(s, m)
	}
	return a
}

func readRandom(rng io.Reader, n int) []byte {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rng, buf); err != nil {
		panic(fmt.Sprintf("failed reading randomness: [%s]", err.Error()))
	}
	return buf
}

// Random 生成一个 8*MODBYTES 位的随机数。
func Random[C Curve](rng io.Reader) *BIG[C] {
	m := NewBIG[C]()
	mb := int(params[C]().MODBYTES)
	buf := readRandom(rng, mb)
	for i := 0; i < 8*mb; i++ {
		b := Chunk((buf[i/8] >> uint(i%8)) & 1)
		m.Shl(1)
		m.w[0] += b
	}
	return m
}

// Randomnum 生成 [0, q) 内的随机数，先生成 2*nbits(q) 位再取模以消除偏差。
func Randomnum[C Curve](q *BIG[C], rng io.Reader) *BIG[C] {
	d := NewDBIG[C]()
	t := NewBIGcopy(q)
	n := 2 * t.Nbits()
	buf := readRandom(rng, (n+7)/8)
	for i := 0; i < n; i++ {
		b := Chunk((buf[i/8] >> uint(i%8)) & 1)
		d.Shl(1)
		d.w[0] += b
	}
	return d.Mod(q)
}

// Randtrunc 生成 [0, q) 内的随机数并截断到 trunc 位。
func Randtrunc[C Curve](q *BIG[C], trunc int, rng io.Reader) *BIG[C] {
	m := Randomnum(q, rng)
	if q.Nbits() > trunc {
		m.mod2m(uint(trunc))
	}
	return m
}

// ssn sets r=a-m, halves m and returns 1 when the difference is negative
func ssn[C Curve](r *BIG[C], a *BIG[C], m *BIG[C]) int {
	p := params[C]()
	n := p.NLEN - 1
	m.w[0] = (m.w[0] >> 1) | ((m.w[1] << (p.BASEBITS - 1)) & p.BMASK)
	r.w[0] = a.w[0] - m.w[0]
	carry := r.w[0] >> p.BASEBITS
	r.w[0] &= p.BMASK
	for i := 1; i < n; i++ {
		m.w[i] = (m.w[i] >> 1) | ((m.w[i+1] << (p.BASEBITS - 1)) & p.BMASK)
		r.w[i] = a.w[i] - m.w[i] + carry
		carry = r.w[i] >> p.BASEBITS
		r.w[i] &= p.BMASK
	}
	m.w[n] >>= 1
	r.w[n] = a.w[n] - m.w[n] + carry
	return int((r.w[n] >> uint(CHUNK-1)) & 1)
}

/* return 1 if b==c, no branching */
func teq(b int32, c int32) int {
	x := b ^ c
	x -= 1 // if x=0, x now -1
	return int((x >> 31) & 1)
}

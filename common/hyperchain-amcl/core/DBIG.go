package core

import "strconv"

// DBIG 是 2*NLEN 个 limb 的累加器，保存 BIG 乘法和平方的结果，随后约简回 BIG。
type DBIG[C Curve] struct {
	w [MaxDNLEN]Chunk
}

func NewDBIG[C Curve]() *DBIG[C] {
	return new(DBIG[C])
}

func NewDBIGcopy[C Curve](x *DBIG[C]) *DBIG[C] {
	b := new(DBIG[C])
	b.w = x.w
	return b
}

func NewDBIGscopy[C Curve](x *BIG[C]) *DBIG[C] {
	p := params[C]()
	b := new(DBIG[C])
	for i := 0; i < p.NLEN-1; i++ {
		b.w[i] = x.w[i]
	}
	b.w[p.NLEN-1] = x.w[p.NLEN-1] & p.BMASK /* top word normalized */
	b.w[p.NLEN] = x.w[p.NLEN-1] >> p.BASEBITS
	return b
}

/* set upper half to x, lower half zero */
func (r *DBIG[C]) ucopy(x *BIG[C]) {
	p := params[C]()
	for i := 0; i < p.NLEN; i++ {
		r.w[i] = 0
	}
	for i := p.NLEN; i < p.DNLEN; i++ {
		r.w[i] = x.w[i-p.NLEN]
	}
}

/* normalise this */
func (r *DBIG[C]) Norm() {
	p := params[C]()
	carry := Chunk(0)
	for i := 0; i < p.DNLEN-1; i++ {
		d := r.w[i] + carry
		r.w[i] = d & p.BMASK
		carry = d >> p.BASEBITS
	}
	r.w[p.DNLEN-1] = (r.w[p.DNLEN-1] + carry)
}

/* split DBIG at position n, return higher half, keep lower half */
func (r *DBIG[C]) split(n uint) *BIG[C] {
	p := params[C]()
	t := NewBIG[C]()
	m := n % p.BASEBITS
	carry := r.w[p.DNLEN-1] << (p.BASEBITS - m)
	for i := p.DNLEN - 2; i >= p.NLEN-1; i-- {
		nw := (r.w[i] >> m) | carry
		carry = (r.w[i] << (p.BASEBITS - m)) & p.BMASK
		t.w[i-p.NLEN+1] = nw
	}
	r.w[p.NLEN-1] &= ((Chunk(1) << m) - 1)
	return t
}

func (r *DBIG[C]) Cmove(g *DBIG[C], d int) {
	b := Chunk(-d)
	for i := 0; i < params[C]().DNLEN; i++ {
		r.w[i] ^= (r.w[i] ^ g.w[i]) & b
	}
}

/* Compare a and b, return 0 if a==b, -1 if a<b, +1 if a>b. Inputs must be normalised */
func dcomp[C Curve](a *DBIG[C], b *DBIG[C]) int {
	p := params[C]()
	gt := Chunk(0)
	eq := Chunk(1)
	for i := p.DNLEN - 1; i >= 0; i-- {
		gt |= ((b.w[i] - a.w[i]) >> p.BASEBITS) & eq
		eq &= ((b.w[i] ^ a.w[i]) - 1) >> p.BASEBITS
	}
	return int(gt + gt + eq - 1)
}

func (r *DBIG[C]) Add(x *DBIG[C]) {
	for i := 0; i < params[C]().DNLEN; i++ {
		r.w[i] = r.w[i] + x.w[i]
	}
}

/* this-=x */
func (r *DBIG[C]) Sub(x *DBIG[C]) {
	for i := 0; i < params[C]().DNLEN; i++ {
		r.w[i] = r.w[i] - x.w[i]
	}
}

/* this-=x */
func (r *DBIG[C]) Rsub(x *DBIG[C]) {
	for i := 0; i < params[C]().DNLEN; i++ {
		r.w[i] = x.w[i] - r.w[i]
	}
}

/* general shift left */
func (r *DBIG[C]) Shl(k uint) {
	p := params[C]()
	n := k % p.BASEBITS
	m := int(k / p.BASEBITS)

	r.w[p.DNLEN-1] = (r.w[p.DNLEN-1-m] << n) | (r.w[p.DNLEN-m-2] >> (p.BASEBITS - n))
	for i := p.DNLEN - 2; i > m; i-- {
		r.w[i] = ((r.w[i-m] << n) & p.BMASK) | (r.w[i-m-1] >> (p.BASEBITS - n))
	}
	r.w[m] = (r.w[0] << n) & p.BMASK
	for i := 0; i < m; i++ {
		r.w[i] = 0
	}
}

/* general shift right */
func (r *DBIG[C]) Shr(k uint) {
	p := params[C]()
	n := (k % p.BASEBITS)
	m := int(k / p.BASEBITS)
	for i := 0; i < p.DNLEN-m-1; i++ {
		r.w[i] = (r.w[m+i] >> n) | ((r.w[m+i+1] << (p.BASEBITS - n)) & p.BMASK)
	}
	r.w[p.DNLEN-m-1] = r.w[p.DNLEN-1] >> n
	for i := p.DNLEN - m; i < p.DNLEN; i++ {
		r.w[i] = 0
	}
}

/* reduces this DBIG mod a BIG, and returns the BIG */
func (r *DBIG[C]) Mod(c *BIG[C]) *BIG[C] {
	p := params[C]()
	r.Norm()
	m := NewDBIGscopy(c)
	dr := NewDBIG[C]()

	if dcomp(r, m) < 0 {
		return NewBIGdcopy(r)
	}

	m.Shl(1)
	k := 1

	for dcomp(r, m) >= 0 {
		m.Shl(1)
		k++
	}

	for k > 0 {
		m.Shr(1)
		dr.w = r.w
		dr.Sub(m)
		dr.Norm()
		r.Cmove(dr, int(1-((dr.w[p.DNLEN-1]>>uint(CHUNK-1))&1)))
		k--
	}
	return NewBIGdcopy(r)
}

/* return this/c */
func (r *DBIG[C]) Div(c *BIG[C]) *BIG[C] {
	p := params[C]()
	k := 0
	m := NewDBIGscopy(c)
	a := NewBIGint[C](0)
	e := NewBIGint[C](1)
	sr := NewBIG[C]()
	dr := NewDBIG[C]()
	r.Norm()

	for dcomp(r, m) >= 0 {
		e.Fshl(1)
		m.Shl(1)
		k++
	}

	for k > 0 {
		m.Shr(1)
		e.Shr(1)

		dr.w = r.w
		dr.Sub(m)
		dr.Norm()
		d := int(1 - ((dr.w[p.DNLEN-1] >> uint(CHUNK-1)) & 1))
		r.Cmove(dr, d)
		sr.Copy(a)
		sr.Add(e)
		sr.Norm()
		a.Cmove(sr, d)
		k--
	}
	return a
}

/* Convert to Hex String */
func (r *DBIG[C]) ToString() string {
	s := ""
	ln := r.nbits()

	if ln%4 == 0 {
		ln /= 4
	} else {
		ln /= 4
		ln++
	}
	for i := ln - 1; i >= 0; i-- {
		b := NewDBIGcopy(r)
		b.Shr(uint(i * 4))
		s += strconv.FormatInt(int64(b.w[0]&15), 16)
	}
	if s == "" {
		s = "0"
	}
	return s
}

/* return number of bits */
func (r *DBIG[C]) nbits() int {
	p := params[C]()
	k := p.DNLEN - 1
	t := NewDBIGcopy(r)
	t.Norm()
	for k >= 0 && t.w[k] == 0 {
		k--
	}
	if k < 0 {
		return 0
	}
	bts := int(p.BASEBITS) * k
	c := t.w[k]
	for c != 0 {
		c /= 2
		bts++
	}
	return bts
}

// DBIG_fromBytes 读取 2*MODBYTES 个字节的大端编码，常用于把哈希输出约简到域上。
func DBIG_fromBytes[C Curve](b []byte) *DBIG[C] {
	m := NewDBIG[C]()
	for i := 0; i < len(b); i++ {
		m.Shl(8)
		m.w[0] += Chunk(int(b[i] & 0xff))
	}
	return m
}

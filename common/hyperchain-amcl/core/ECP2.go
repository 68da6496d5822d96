/* Elliptic Curve Point over the sextic twist, coordinates in Fp^2 */

package core

import "github.com/11090815/pairing/vars"

// ECP2 是扭曲线 y^2 = x^3 + B' 上的射影点，坐标在 Fp2 中。D 型扭曲 B' = B/(1+i)，M 型扭曲 B' = B*(1+i)。
type ECP2[C Curve] struct {
	x FP2[C]
	y FP2[C]
	z FP2[C]
}

func NewECP2[C Curve]() *ECP2[C] {
	E := new(ECP2[C])
	E.inf()
	return E
}

func NewECP2copy[C Curve](P *ECP2[C]) *ECP2[C] {
	E := new(ECP2[C])
	E.Copy(P)
	return E
}

/* Test this=O? */
func (E *ECP2[C]) IsInfinity() bool {
	return E.x.IsZilch() && E.z.IsZilch()
}

func (E *ECP2[C]) Is_infinity() bool {
	return E.IsInfinity()
}

/* copy this=P */
func (E *ECP2[C]) Copy(P *ECP2[C]) {
	E.x.Copy(&P.x)
	E.y.Copy(&P.y)
	E.z.Copy(&P.z)
}

/* set this=O */
func (E *ECP2[C]) inf() {
	E.x.Zero()
	E.y.One()
	E.z.Zero()
}

/* set this=-this */
func (E *ECP2[C]) Neg() {
	E.y.Norm()
	E.y.Neg()
	E.y.Norm()
}

/* Conditional move of Q to P dependant on d */
func (E *ECP2[C]) Cmove(Q *ECP2[C], d int) {
	E.x.Cmove(&Q.x, d)
	E.y.Cmove(&Q.y, d)
	E.z.Cmove(&Q.z, d)
}

/* Constant time select from pre-computed table */
func (E *ECP2[C]) selector(W []*ECP2[C], b int32) {
	MP := NewECP2[C]()
	m := b >> 31
	babs := (b ^ m) - m

	babs = (babs - 1) / 2

	for i := range W {
		E.Cmove(W[i], teq(babs, int32(i)))
	}

	MP.Copy(E)
	MP.Neg()
	E.Cmove(MP, int(m&1))
}

/* Test if P == Q */
func (E *ECP2[C]) Equals(Q *ECP2[C]) bool {
	a := NewFP2copy(&E.x)
	b := NewFP2copy(&Q.x)
	a.Mul(&Q.z)
	b.Mul(&E.z)
	if !a.Equals(b) {
		return false
	}
	a.Copy(&E.y)
	a.Mul(&Q.z)
	b.Copy(&Q.y)
	b.Mul(&E.z)
	return a.Equals(b)
}

/* set to Affine - (x,y,z) to (x,y) */
func (E *ECP2[C]) Affine() {
	if E.IsInfinity() {
		return
	}
	one := NewFP2int[C](1)
	if E.z.Equals(one) {
		E.x.Reduce()
		E.y.Reduce()
		return
	}
	E.z.Inverse()

	E.x.Mul(&E.z)
	E.x.Reduce()
	E.y.Mul(&E.z)
	E.y.Reduce()
	E.z.Copy(one)
}

/* extract affine x as FP2 */
func (E *ECP2[C]) GetX() *FP2[C] {
	W := NewECP2copy(E)
	W.Affine()
	return NewFP2copy(&W.x)
}

/* extract affine y as FP2 */
func (E *ECP2[C]) GetY() *FP2[C] {
	W := NewECP2copy(E)
	W.Affine()
	return NewFP2copy(&W.y)
}

// ToBytes 写出仿射坐标 x|y，共 4*MODBYTES 个字节，不带标记字节。
func (E *ECP2[C]) ToBytes(b []byte) {
	mb := 2 * int(params[C]().MODBYTES)
	W := NewECP2copy(E)
	W.Affine()
	W.x.ToBytes(b[:mb])
	W.y.ToBytes(b[mb : 2*mb])
}

// ECP2_fromBytes 解码 x|y，坐标分量不小于模数或者点不在曲线上时返回无穷远点。
func ECP2_fromBytes[C Curve](b []byte) *ECP2[C] {
	P, _ := ECP2_fromBytesChecked[C](b)
	return P
}

func ECP2_fromBytesChecked[C Curve](b []byte) (*ECP2[C], error) {
	p := params[C]()
	mb := 2 * int(p.MODBYTES)
	if len(b) != 2*mb {
		return NewECP2[C](), vars.ErrorInvalidLength{Kind: "G2 point", Want: 2 * mb, Got: len(b)}
	}
	if !coordsInRange[C](b) {
		return NewECP2[C](), vars.ErrorInvalidPoint{Group: p.rom.Name + " G2", Reason: "coordinate is not less than the field modulus"}
	}
	rx := FP2_fromBytes[C](b[:mb])
	ry := FP2_fromBytes[C](b[mb:])
	P := NewECP2fp2s(rx, ry)
	if P.IsInfinity() {
		return P, vars.ErrorInvalidPoint{Group: p.rom.Name + " G2", Reason: "(x, y) is not on the curve"}
	}
	return P, nil
}

// coordsInRange 检查字节串中每个 MODBYTES 长的分量都小于模数。
func coordsInRange[C Curve](b []byte) bool {
	mb := int(params[C]().MODBYTES)
	m := Modulus[C]()
	for i := 0; i+mb <= len(b); i += mb {
		if Comp(FromBytes[C](b[i:i+mb]), m) >= 0 {
			return false
		}
	}
	return true
}

/* convert this to hex string */
func (E *ECP2[C]) ToString() string {
	W := NewECP2copy(E)
	W.Affine()
	if W.IsInfinity() {
		return "infinity"
	}
	return "(" + W.x.ToString() + "," + W.y.ToString() + ")"
}

func (E *ECP2[C]) String() string {
	return E.ToString()
}

// RHS2 计算扭曲线方程右侧 x^3+B'。
func RHS2[C Curve](x *FP2[C]) *FP2[C] {
	r := NewFP2copy(x)
	r.Sqr()
	b := NewFP2fp(curveB[C]())
	if params[C]().rom.Twist == D_TYPE {
		b.DivIP()
	} else {
		b.Norm()
		b.MulIP()
		b.Norm()
	}
	r.Mul(x)
	r.Add(b)
	r.Reduce()
	return r
}

/* construct this from (x,y) - but set to O if not on curve */
func NewECP2fp2s[C Curve](ix *FP2[C], iy *FP2[C]) *ECP2[C] {
	E := new(ECP2[C])
	E.x.Copy(ix)
	E.y.Copy(iy)
	E.z.One()
	E.x.Norm()
	rhs := RHS2(&E.x)
	y2 := NewFP2copy(&E.y)
	y2.Sqr()
	if !y2.Equals(rhs) {
		E.inf()
	}
	return E
}

/* construct this from x - but set to O if not on curve */
func NewECP2fp2[C Curve](ix *FP2[C]) *ECP2[C] {
	E := new(ECP2[C])
	E.x.Copy(ix)
	E.y.One()
	E.z.One()
	E.x.Norm()
	rhs := RHS2(&E.x)
	if !rhs.Sqrt() {
		E.inf()
		return E
	}
	E.y.Copy(rhs)
	return E
}

// Dbl 计算 this*=2。
func (E *ECP2[C]) Dbl() Outcome {
	E.dbl()
	if E.IsInfinity() {
		return Infinity
	}
	return Doubled
}

// Add 计算 this+=Q。
func (E *ECP2[C]) Add(Q *ECP2[C]) Outcome {
	same := E.Equals(Q) && !Q.IsInfinity()
	E.add(Q)
	if E.IsInfinity() {
		return Infinity
	}
	if same {
		return Doubled
	}
	return Added
}

/* set this-=Q */
func (E *ECP2[C]) Sub(Q *ECP2[C]) Outcome {
	NQ := NewECP2copy(Q)
	NQ.Neg()
	return E.Add(NQ)
}

func (E *ECP2[C]) sub(Q *ECP2[C]) {
	NQ := NewECP2copy(Q)
	NQ.Neg()
	E.add(NQ)
}

/* Renes-Costello-Batina doubling on the twist */
func (E *ECP2[C]) dbl() {
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE
	iy := NewFP2copy(&E.y)
	if dtype {
		iy.MulIP()
		iy.Norm()
	}
	t0 := NewFP2copy(&E.y)
	t0.Sqr()
	if dtype {
		t0.MulIP()
	}
	t1 := NewFP2copy(iy)
	t1.Mul(&E.z)
	t2 := NewFP2copy(&E.z)
	t2.Sqr()

	E.z.Copy(t0)
	E.z.Add(t0)
	E.z.Norm()
	E.z.Add(&E.z)
	E.z.Add(&E.z)
	E.z.Norm()

	t2.Imul(3 * p.rom.CurveBI)
	if !dtype {
		t2.MulIP()
		t2.Norm()
	}
	x3 := NewFP2copy(t2)
	x3.Mul(&E.z)

	y3 := NewFP2copy(t0)

	y3.Add(t2)
	y3.Norm()
	E.z.Mul(t1)

	t1.Copy(t2)
	t1.Add(t2)
	t2.Add(t1)
	t2.Norm()
	t0.Sub(t2)
	t0.Norm()
	y3.Mul(t0)
	y3.Add(x3)
	t1.Copy(&E.x)
	t1.Mul(iy)
	E.x.Copy(t0)
	E.x.Norm()
	E.x.Mul(t1)
	E.x.Add(&E.x)

	E.x.Norm()
	E.y.Copy(y3)
	E.y.Norm()
}

/* Renes-Costello-Batina addition on the twist */
func (E *ECP2[C]) add(Q *ECP2[C]) {
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE
	b := 3 * p.rom.CurveBI
	t0 := NewFP2copy(&E.x)
	t0.Mul(&Q.x)
	t1 := NewFP2copy(&E.y)
	t1.Mul(&Q.y)
	t2 := NewFP2copy(&E.z)
	t2.Mul(&Q.z)
	t3 := NewFP2copy(&E.x)
	t3.Add(&E.y)
	t3.Norm()
	t4 := NewFP2copy(&Q.x)
	t4.Add(&Q.y)
	t4.Norm()
	t3.Mul(t4)
	t4.Copy(t0)
	t4.Add(t1)

	t3.Sub(t4)
	t3.Norm()
	if dtype {
		t3.MulIP()
		t3.Norm()
	}
	t4.Copy(&E.y)
	t4.Add(&E.z)
	t4.Norm()
	x3 := NewFP2copy(&Q.y)
	x3.Add(&Q.z)
	x3.Norm()

	t4.Mul(x3)
	x3.Copy(t1)
	x3.Add(t2)

	t4.Sub(x3)
	t4.Norm()
	if dtype {
		t4.MulIP()
		t4.Norm()
	}
	x3.Copy(&E.x)
	x3.Add(&E.z)
	x3.Norm()
	y3 := NewFP2copy(&Q.x)
	y3.Add(&Q.z)
	y3.Norm()
	x3.Mul(y3)
	y3.Copy(t0)
	y3.Add(t2)
	y3.Rsub(x3)
	y3.Norm()

	if dtype {
		t0.MulIP()
		t0.Norm()
		t1.MulIP()
		t1.Norm()
	}
	x3.Copy(t0)
	x3.Add(t0)
	t0.Add(x3)
	t0.Norm()
	t2.Imul(b)
	if !dtype {
		t2.MulIP()
		t2.Norm()
	}
	z3 := NewFP2copy(t1)
	z3.Add(t2)
	z3.Norm()
	t1.Sub(t2)
	t1.Norm()
	y3.Imul(b)
	if !dtype {
		y3.MulIP()
		y3.Norm()
	}
	x3.Copy(y3)
	x3.Mul(t4)
	t2.Copy(t3)
	t2.Mul(t1)
	x3.Rsub(t2)
	y3.Mul(t0)
	t1.Mul(z3)
	y3.Add(t1)
	t0.Mul(t3)
	z3.Mul(t4)
	z3.Add(t0)

	E.x.Copy(x3)
	E.x.Norm()
	E.y.Copy(y3)
	E.y.Norm()
	E.z.Copy(z3)
	E.z.Norm()
}

// ECP2_frobConstant 返回 Frobenius 常数 X：D 型扭曲为 f，M 型扭曲为 1/f，其中 f = (1+i)^((p-1)/6)。
func ECP2_frobConstant[C Curve]() *FP2[C] {
	p := params[C]()
	X := FP2_frob[C]()
	if p.rom.Twist == M_TYPE {
		X.Inverse()
		X.Norm()
	}
	return X
}

/* set this*=q, where q is Modulus, using Frobenius */
func (E *ECP2[C]) Frob(X *FP2[C]) {
	X2 := NewFP2copy(X)
	X2.Sqr()
	E.x.Conj()
	E.y.Conj()
	E.z.Conj()
	E.z.Reduce()
	E.x.Mul(X2)

	E.y.Mul(X2)
	E.y.Mul(X)
}

// Mul 计算 e*this，使用带符号的 4 位固定窗口，迭代次数由模数位长决定。
func (E *ECP2[C]) Mul(e *BIG[C]) *ECP2[C] {
	/* fixed size windows */
	mt := NewBIG[C]()
	t := NewBIG[C]()
	P := NewECP2[C]()
	Q := NewECP2[C]()
	C1 := NewECP2[C]()

	if E.IsInfinity() {
		return NewECP2[C]()
	}

	var W [8]*ECP2[C]
	var w [1 + (MaxNLEN*CHUNK+3)/4]int8

	/* precompute table */
	Q.Copy(E)
	Q.dbl()

	W[0] = NewECP2copy(E)

	for i := 1; i < 8; i++ {
		W[i] = NewECP2copy(W[i-1])
		W[i].add(Q)
	}

	/* make exponent odd - add 2P if even, P if odd */
	t.Copy(e)
	s := t.Parity()
	t.Inc(1)
	t.Norm()
	ns := t.Parity()
	mt.Copy(t)
	mt.Inc(1)
	mt.Norm()
	t.Cmove(mt, s)
	Q.Cmove(E, ns)
	C1.Copy(Q)

	nb := 1 + (scalarBits(e)+3)/4

	/* convert exponent to signed 4-bit window */
	for i := 0; i < nb; i++ {
		w[i] = int8(t.Lastbits(5) - 16)
		t.Dec(int(w[i]))
		t.Norm()
		t.Fshr(4)
	}
	w[nb] = int8(t.Lastbits(5))

	P.selector(W[:], int32(w[nb]))
	for i := nb - 1; i >= 0; i-- {
		Q.selector(W[:], int32(w[i]))
		P.dbl()
		P.dbl()
		P.dbl()
		P.dbl()
		P.add(Q)
	}
	P.sub(C1)
	P.Affine()
	return P
}

// Mul4 计算 sum u[i]*Q[i]，i = 0..3。u[i] 较短且非负，用于 GLS 分解后的 G2 标量乘法，常数时间。
func Mul4[C Curve](Q []*ECP2[C], u []*BIG[C]) *ECP2[C] {
	W := NewECP2[C]()
	P := NewECP2[C]()
	var T [8]*ECP2[C]
	var t [4]*BIG[C]
	var w [MaxNLEN*CHUNK + 1]int8
	var s [MaxNLEN*CHUNK + 1]int8

	for i := 0; i < 4; i++ {
		t[i] = NewBIGcopy(u[i])
	}

	T[0] = NewECP2copy(Q[0]) // Q[0]
	T[1] = NewECP2copy(T[0])
	T[1].add(Q[1]) // Q[0]+Q[1]
	T[2] = NewECP2copy(T[0])
	T[2].add(Q[2]) // Q[0]+Q[2]
	T[3] = NewECP2copy(T[1])
	T[3].add(Q[2]) // Q[0]+Q[1]+Q[2]
	T[4] = NewECP2copy(T[0])
	T[4].add(Q[3]) // Q[0]+Q[3]
	T[5] = NewECP2copy(T[1])
	T[5].add(Q[3]) // Q[0]+Q[1]+Q[3]
	T[6] = NewECP2copy(T[2])
	T[6].add(Q[3]) // Q[0]+Q[2]+Q[3]
	T[7] = NewECP2copy(T[3])
	T[7].add(Q[3]) // Q[0]+Q[1]+Q[2]+Q[3]

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
	P.selector(T[:], int32(2*w[nb-1]+1))
	for i := nb - 2; i >= 0; i-- {
		P.dbl()
		W.selector(T[:], int32(2*w[i]+s[i]))
		P.add(W)
	}

	// apply correction
	W.Copy(P)
	W.sub(Q[0])
	P.Cmove(W, pb)
	P.Affine()
	return P
}

// Cfp 清除扭曲线余因子。BN 曲线使用 Fuentes-Castaneda 等人的方法，BLS 曲线使用 Budroni-Pintore 方法。
func (E *ECP2[C]) Cfp() {
	p := params[C]()
	X := ECP2_frobConstant[C]()
	x := CurveBnx[C]()

	if p.rom.Pairing == BN {
		T := E.Mul(x)
		if p.rom.SignOfX == NEGATIVEX {
			T.Neg()
		}
		K := NewECP2copy(T)
		K.dbl()
		K.add(T)

		K.Frob(X)
		E.Frob(X)
		E.Frob(X)
		E.Frob(X)
		E.add(T)
		E.add(K)
		T.Frob(X)
		T.Frob(X)
		E.add(T)
		E.Affine()
		return
	}

	// xQ, x^2Q
	xQ := E.Mul(x)
	x2Q := xQ.Mul(x)
	if p.rom.SignOfX == NEGATIVEX {
		xQ.Neg()
	}
	x2Q.sub(xQ)
	x2Q.sub(E)

	xQ.sub(E)
	xQ.Frob(X)

	E.dbl()
	E.Frob(X)
	E.Frob(X)

	E.add(x2Q)
	E.add(xQ)
	E.Affine()
}

/* Hunt and Peck a BIG to a curve point */
func ECP2_hap2point[C Curve](h *BIG[C]) *ECP2[C] {
	x := NewBIGcopy(h)
	x.Mod(Modulus[C]())
	one := NewBIGint[C](1)
	var Q *ECP2[C]
	for {
		X := NewFP2bigs(one, x)
		Q = NewECP2fp2(X)
		if !Q.IsInfinity() {
			break
		}
		x.Inc(1)
		x.Norm()
	}
	return Q
}

// ECP2_mapit 把哈希值映射到 G2：先逐个尝试横坐标 1+x*i，再清除余因子。
func ECP2_mapit[C Curve](h []byte) *ECP2[C] {
	q := Modulus[C]()
	dx := DBIG_fromBytes[C](h)
	x := dx.Mod(q)

	Q := ECP2_hap2point(x)
	Q.Cfp()
	return Q
}

// ECP2_generator 返回 G2 的固定生成元。
func ECP2_generator[C Curve]() *ECP2[C] {
	p := params[C]()
	return NewECP2fp2s(
		NewFP2bigs(NewBIGints[C](p.pxs[0]), NewBIGints[C](p.pxs[1])),
		NewFP2bigs(NewBIGints[C](p.pys[0]), NewBIGints[C](p.pys[1])),
	)
}

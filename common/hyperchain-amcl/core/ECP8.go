/* Elliptic Curve Point over the sextic twist, coordinates in Fp^8 */

package core

import "github.com/11090815/pairing/vars"

// ECP8 是扭曲线 y^2 = x^3 + B' 上的射影点，坐标在 Fp8 中。D 型扭曲 B' = B/w，M 型扭曲 B' = B*w。
type ECP8[C Curve] struct {
	x FP8[C]
	y FP8[C]
	z FP8[C]
}

func NewECP8[C Curve]() *ECP8[C] {
	E := new(ECP8[C])
	E.inf()
	return E
}

func NewECP8copy[C Curve](P *ECP8[C]) *ECP8[C] {
	E := new(ECP8[C])
	E.Copy(P)
	return E
}

/* Test this=O? */
func (E *ECP8[C]) IsInfinity() bool {
	return E.x.IsZilch() && E.z.IsZilch()
}

func (E *ECP8[C]) Is_infinity() bool {
	return E.IsInfinity()
}

/* copy this=P */
func (E *ECP8[C]) Copy(P *ECP8[C]) {
	E.x.Copy(&P.x)
	E.y.Copy(&P.y)
	E.z.Copy(&P.z)
}

/* set this=O */
func (E *ECP8[C]) inf() {
	E.x.Zero()
	E.y.One()
	E.z.Zero()
}

/* set this=-this */
func (E *ECP8[C]) Neg() {
	E.y.Norm()
	E.y.Neg()
	E.y.Norm()
}

/* Conditional move of Q to P dependant on d */
func (E *ECP8[C]) Cmove(Q *ECP8[C], d int) {
	E.x.Cmove(&Q.x, d)
	E.y.Cmove(&Q.y, d)
	E.z.Cmove(&Q.z, d)
}

/* Constant time select from pre-computed table */
func (E *ECP8[C]) selector(W []*ECP8[C], b int32) {
	MP := NewECP8[C]()
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
func (E *ECP8[C]) Equals(Q *ECP8[C]) bool {
	a := NewFP8copy(&E.x)
	b := NewFP8copy(&Q.x)
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
func (E *ECP8[C]) Affine() {
	if E.IsInfinity() {
		return
	}
	one := NewFP8int[C](1)
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

/* extract affine x as FP8 */
func (E *ECP8[C]) GetX() *FP8[C] {
	W := NewECP8copy(E)
	W.Affine()
	return NewFP8copy(&W.x)
}

/* extract affine y as FP8 */
func (E *ECP8[C]) GetY() *FP8[C] {
	W := NewECP8copy(E)
	W.Affine()
	return NewFP8copy(&W.y)
}

// ToBytes 写出仿射坐标 x|y，共 16*MODBYTES 个字节，不带标记字节。
func (E *ECP8[C]) ToBytes(b []byte) {
	mb := 8 * int(params[C]().MODBYTES)
	W := NewECP8copy(E)
	W.Affine()
	W.x.ToBytes(b[:mb])
	W.y.ToBytes(b[mb : 2*mb])
}

// ECP8_fromBytes 解码 x|y，坐标分量不小于模数或者点不在曲线上时返回无穷远点。
func ECP8_fromBytes[C Curve](b []byte) *ECP8[C] {
	P, _ := ECP8_fromBytesChecked[C](b)
	return P
}

func ECP8_fromBytesChecked[C Curve](b []byte) (*ECP8[C], error) {
	p := params[C]()
	mb := 8 * int(p.MODBYTES)
	if len(b) != 2*mb {
		return NewECP8[C](), vars.ErrorInvalidLength{Kind: "G2 point", Want: 2 * mb, Got: len(b)}
	}
	if !coordsInRange[C](b) {
		return NewECP8[C](), vars.ErrorInvalidPoint{Group: p.rom.Name + " G2", Reason: "coordinate is not less than the field modulus"}
	}
	rx := FP8_fromBytes[C](b[:mb])
	ry := FP8_fromBytes[C](b[mb:])
	P := NewECP8fp8s(rx, ry)
	if P.IsInfinity() {
		return P, vars.ErrorInvalidPoint{Group: p.rom.Name + " G2", Reason: "(x, y) is not on the curve"}
	}
	return P, nil
}

/* convert this to hex string */
func (E *ECP8[C]) ToString() string {
	W := NewECP8copy(E)
	W.Affine()
	if W.IsInfinity() {
		return "infinity"
	}
	return "(" + W.x.ToString() + "," + W.y.ToString() + ")"
}

func (E *ECP8[C]) String() string {
	return E.ToString()
}

// RHS8 计算扭曲线方程右侧 x^3+B'。
func RHS8[C Curve](x *FP8[C]) *FP8[C] {
	r := NewFP8copy(x)
	r.Sqr()
	b := NewFP8fp(curveB[C]())
	if params[C]().rom.Twist == D_TYPE {
		b.DivI()
	} else {
		b.Norm()
		b.TimesI()
		b.Norm()
	}
	r.Mul(x)
	r.Add(b)
	r.Reduce()
	return r
}

/* construct this from (x,y) - but set to O if not on curve */
func NewECP8fp8s[C Curve](ix *FP8[C], iy *FP8[C]) *ECP8[C] {
	E := new(ECP8[C])
	E.x.Copy(ix)
	E.y.Copy(iy)
	E.z.One()
	E.x.Norm()
	rhs := RHS8(&E.x)
	y2 := NewFP8copy(&E.y)
	y2.Sqr()
	if !y2.Equals(rhs) {
		E.inf()
	}
	return E
}

/* construct this from x - but set to O if not on curve */
func NewECP8fp8[C Curve](ix *FP8[C]) *ECP8[C] {
	E := new(ECP8[C])
	E.x.Copy(ix)
	E.y.One()
	E.z.One()
	E.x.Norm()
	rhs := RHS8(&E.x)
	if !rhs.Sqrt() {
		E.inf()
		return E
	}
	E.y.Copy(rhs)
	return E
}

// Dbl 计算 this*=2。
func (E *ECP8[C]) Dbl() Outcome {
	E.dbl()
	if E.IsInfinity() {
		return Infinity
	}
	return Doubled
}

// Add 计算 this+=Q。
func (E *ECP8[C]) Add(Q *ECP8[C]) Outcome {
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
func (E *ECP8[C]) Sub(Q *ECP8[C]) Outcome {
	NQ := NewECP8copy(Q)
	NQ.Neg()
	return E.Add(NQ)
}

func (E *ECP8[C]) sub(Q *ECP8[C]) {
	NQ := NewECP8copy(Q)
	NQ.Neg()
	E.add(NQ)
}

/* Renes-Costello-Batina doubling on the twist */
func (E *ECP8[C]) dbl() {
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE
	iy := NewFP8copy(&E.y)
	if dtype {
		iy.TimesI()
		iy.Norm()
	}
	t0 := NewFP8copy(&E.y)
	t0.Sqr()
	if dtype {
		t0.TimesI()
	}
	t1 := NewFP8copy(iy)
	t1.Mul(&E.z)
	t2 := NewFP8copy(&E.z)
	t2.Sqr()

	E.z.Copy(t0)
	E.z.Add(t0)
	E.z.Norm()
	E.z.Add(&E.z)
	E.z.Add(&E.z)
	E.z.Norm()

	t2.Imul(3 * p.rom.CurveBI)
	if !dtype {
		t2.TimesI()
		t2.Norm()
	}
	x3 := NewFP8copy(t2)
	x3.Mul(&E.z)

	y3 := NewFP8copy(t0)

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
func (E *ECP8[C]) add(Q *ECP8[C]) {
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE
	b := 3 * p.rom.CurveBI
	t0 := NewFP8copy(&E.x)
	t0.Mul(&Q.x)
	t1 := NewFP8copy(&E.y)
	t1.Mul(&Q.y)
	t2 := NewFP8copy(&E.z)
	t2.Mul(&Q.z)
	t3 := NewFP8copy(&E.x)
	t3.Add(&E.y)
	t3.Norm()
	t4 := NewFP8copy(&Q.x)
	t4.Add(&Q.y)
	t4.Norm()
	t3.Mul(t4)
	t4.Copy(t0)
	t4.Add(t1)

	t3.Sub(t4)
	t3.Norm()
	if dtype {
		t3.TimesI()
		t3.Norm()
	}
	t4.Copy(&E.y)
	t4.Add(&E.z)
	t4.Norm()
	x3 := NewFP8copy(&Q.y)
	x3.Add(&Q.z)
	x3.Norm()

	t4.Mul(x3)
	x3.Copy(t1)
	x3.Add(t2)

	t4.Sub(x3)
	t4.Norm()
	if dtype {
		t4.TimesI()
		t4.Norm()
	}
	x3.Copy(&E.x)
	x3.Add(&E.z)
	x3.Norm()
	y3 := NewFP8copy(&Q.x)
	y3.Add(&Q.z)
	y3.Norm()
	x3.Mul(y3)
	y3.Copy(t0)
	y3.Add(t2)
	y3.Rsub(x3)
	y3.Norm()

	if dtype {
		t0.TimesI()
		t0.Norm()
		t1.TimesI()
		t1.Norm()
	}
	x3.Copy(t0)
	x3.Add(t0)
	t0.Add(x3)
	t0.Norm()
	t2.Imul(b)
	if !dtype {
		t2.TimesI()
		t2.Norm()
	}
	z3 := NewFP8copy(t1)
	z3.Add(t2)
	z3.Norm()
	t1.Sub(t2)
	t1.Norm()
	y3.Imul(b)
	if !dtype {
		y3.TimesI()
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

// ECP8_frobConstants 返回 psi 所需的三个 Fp2 常数 F[0]、F[1]、F[2]，其中 F[2] = (1+i)^((p-3)/4)。
func ECP8_frobConstants[C Curve]() [3]*FP2[C] {
	p := params[C]()
	X := FP2_frob[C]()
	F0 := NewFP2copy(X)
	F0.Sqr()
	F2 := NewFP2copy(F0)
	F2.MulIP()
	F2.Norm()
	F1 := NewFP2copy(F2)
	F1.Sqr()
	F2.Mul(F1)
	F2.MulIP()
	F2.Norm()
	F1.Copy(X)
	if p.rom.Twist == M_TYPE {
		F1.MulIP()
		F1.Inverse()
		F0.Copy(F1)
		F0.Sqr()
		F1.Mul(F0)
	} else {
		F0.MulIP()
		F0.Norm()
		F1.Mul(F0)
		F1.MulIP()
		F1.Norm()
	}
	return [3]*FP2[C]{F0, F1, F2}
}

/* Calculates Frobenius endomorphism psi^n */
func (E *ECP8[C]) Frob(F [3]*FP2[C], n int) {
	mtype := params[C]().rom.Twist == M_TYPE
	for i := 0; i < n; i++ {
		E.x.Frob(F[2])
		E.x.Qmul(F[0])
		E.x.TimesI2()

		E.y.Frob(F[2])
		E.y.Qmul(F[1])
		E.y.TimesI()
		if mtype {
			E.y.TimesI2()
		}

		E.z.Frob(F[2])
	}
}

// Mul 计算 e*this，使用带符号的 4 位固定窗口，迭代次数由模数位长决定。
func (E *ECP8[C]) Mul(e *BIG[C]) *ECP8[C] {
	/* fixed size windows */
	mt := NewBIG[C]()
	t := NewBIG[C]()
	P := NewECP8[C]()
	Q := NewECP8[C]()
	C1 := NewECP8[C]()

	if E.IsInfinity() {
		return NewECP8[C]()
	}

	var W [8]*ECP8[C]
	var w [1 + (MaxNLEN*CHUNK+3)/4]int8

	/* precompute table */
	Q.Copy(E)
	Q.dbl()

	W[0] = NewECP8copy(E)

	for i := 1; i < 8; i++ {
		W[i] = NewECP8copy(W[i-1])
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

// Mul16 计算 sum u[i]*Q[i]。每 4 个点一组建表，各组共用倍点运算，常数时间。
func Mul16[C Curve](Q []*ECP8[C], u []*BIG[C]) *ECP8[C] {
	const groups = 4
	var T [groups][]*ECP8[C]
	var w [groups][MaxNLEN*CHUNK + 1]int8
	var s [groups][MaxNLEN*CHUNK + 1]int8
	var pb [groups]int
	var t []*BIG[C]
	W := NewECP8[C]()
	P := NewECP8[C]()

	for i := 0; i < 4*groups; i++ {
		t = append(t, NewBIGcopy(u[i]))
	}

	for k := 0; k < groups; k++ {
		qk := Q[4*k : 4*k+4]
		T[k] = append(T[k], NewECP8copy(qk[0]))
		T[k] = append(T[k], NewECP8copy(T[k][0]))
		T[k][1].add(qk[1])
		T[k] = append(T[k], NewECP8copy(T[k][0]))
		T[k][2].add(qk[2])
		T[k] = append(T[k], NewECP8copy(T[k][1]))
		T[k][3].add(qk[2])
		T[k] = append(T[k], NewECP8copy(T[k][0]))
		T[k][4].add(qk[3])
		T[k] = append(T[k], NewECP8copy(T[k][1]))
		T[k][5].add(qk[3])
		T[k] = append(T[k], NewECP8copy(T[k][2]))
		T[k][6].add(qk[3])
		T[k] = append(T[k], NewECP8copy(T[k][3]))
		T[k][7].add(qk[3])

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
	P.selector(T[0], int32(2*w[0][nb-1]+1))
	for k := 1; k < groups; k++ {
		W.selector(T[k], int32(2*w[k][nb-1]+1))
		P.add(W)
	}
	for i := nb - 2; i >= 0; i-- {
		P.dbl()
		for k := 0; k < groups; k++ {
			W.selector(T[k], int32(2*w[k][i]+s[k][i]))
			P.add(W)
		}
	}

	// apply correction
	for k := 0; k < groups; k++ {
		W.Copy(P)
		W.sub(Q[4*k])
		P.Cmove(W, pb[k])
	}

	P.Affine()
	return P
}

// Cfp 用 Budroni-Pintore 方法清除扭曲线余因子：
// h*Q = x^8*Q - x^(8-1)*Q - Q + sum psi^i(x^(8-i)*Q - x^(8-i-1)*Q) + psi^8(2Q)，x<0 时奇数次幂取负。
func (E *ECP8[C]) Cfp() {
	F := ECP8_frobConstants[C]()
	x := CurveBnx[C]()

	var xQ [9]*ECP8[C]
	xQ[0] = NewECP8copy(E)
	for i := 1; i <= 8; i++ {
		xQ[i] = xQ[i-1].Mul(x)
	}
	if params[C]().rom.SignOfX == NEGATIVEX {
		for i := 1; i <= 8; i += 2 {
			xQ[i].Neg()
		}
	}

	R := NewECP8copy(xQ[8])
	R.sub(xQ[7])
	R.sub(E)
	for i := 1; i < 8; i++ {
		T := NewECP8copy(xQ[8-i])
		T.sub(xQ[8-i-1])
		T.Frob(F, i)
		R.add(T)
	}

	E.dbl()
	E.Frob(F, 8)
	E.add(R)
	E.Affine()
}

/* Hunt and Peck a BIG to a curve point */
func ECP8_hap2point[C Curve](h *BIG[C]) *ECP8[C] {
	x := NewBIGcopy(h)
	x.Mod(Modulus[C]())
	one := NewBIGint[C](1)
	var Q *ECP8[C]
	for {
		X := NewFP8fp4(NewFP4fp2(NewFP2bigs(one, x)))
		Q = NewECP8fp8(X)
		if !Q.IsInfinity() {
			break
		}
		x.Inc(1)
		x.Norm()
	}
	return Q
}

// ECP8_mapit 把哈希值映射到 G2：先逐个尝试横坐标 1+x*i，再清除余因子。
func ECP8_mapit[C Curve](h []byte) *ECP8[C] {
	q := Modulus[C]()
	dx := DBIG_fromBytes[C](h)
	x := dx.Mod(q)

	Q := ECP8_hap2point(x)
	Q.Cfp()
	return Q
}

// ECP8_generator 返回 G2 的固定生成元。
func ECP8_generator[C Curve]() *ECP8[C] {
	p := params[C]()
	fp2 := func(v []limbs, i int) *FP2[C] {
		return NewFP2bigs(NewBIGints[C](v[i]), NewBIGints[C](v[i+1]))
	}
	x := NewFP8fp4s(NewFP4fp2s(fp2(p.pxs, 0), fp2(p.pxs, 2)), NewFP4fp2s(fp2(p.pxs, 4), fp2(p.pxs, 6)))
	y := NewFP8fp4s(NewFP4fp2s(fp2(p.pys, 0), fp2(p.pys, 2)), NewFP4fp2s(fp2(p.pys, 4), fp2(p.pys, 6)))
	return NewECP8fp8s(x, y)
}

/* Elliptic Curve Point Structure */

package core

import (
	"fmt"

	"github.com/11090815/pairing/vars"
)

// Outcome 描述一次点加或倍点运算落入的几何情形。完全公式本身不需要分支，
// 结果只是告诉调用方发生了什么（例如 P+(-P) 得到无穷远点）。
type Outcome int

const (
	Added Outcome = iota
	Doubled
	Infinity
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Doubled:
		return "doubled"
	case Infinity:
		return "infinity"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ECP 是基域上的射影点 (X:Y:Z)。无穷远点没有单独的标记：Weierstrass 曲线为 (0:1:0)，
// Edwards 曲线为 (0:1:1)，Montgomery 曲线只使用 X/Z 坐标，无穷远点为 (1:0)。
type ECP[C Curve] struct {
	x FP[C]
	y FP[C]
	z FP[C]
}

/* Constructors */
func NewECP[C Curve]() *ECP[C] {
	E := new(ECP[C])
	E.inf()
	return E
}

/* set (x,y) from two BIGs */
func NewECPbigs[C Curve](ix *BIG[C], iy *BIG[C]) *ECP[C] {
	E := new(ECP[C])
	E.x.Copy(NewFPbig(ix))
	E.y.Copy(NewFPbig(iy))
	E.z.One()
	E.x.Norm()
	if !onCurve(&E.x, &E.y) {
		E.inf()
	}
	return E
}

/* set (x,y) from BIG and a bit */
func NewECPbigint[C Curve](ix *BIG[C], s int) *ECP[C] {
	E := new(ECP[C])
	E.x.Copy(NewFPbig(ix))
	E.x.Norm()
	E.z.One()
	ny := RHS(&E.x)
	if !ny.Sqrt() {
		E.inf()
		return E
	}
	if ny.Sign() != s {
		ny.Neg()
		ny.Norm()
	}
	E.y.Copy(ny)
	return E
}

/* set from x - calculate y from curve equation */
func NewECPbig[C Curve](ix *BIG[C]) *ECP[C] {
	E := new(ECP[C])
	E.x.Copy(NewFPbig(ix))
	E.x.Norm()
	E.z.One()
	rhs := RHS(&E.x)
	if params[C]().rom.CurveType == MONTGOMERY {
		E.y.Zero()
		if rhs.Qr() != 1 {
			E.inf()
		}
		return E
	}
	if !rhs.Sqrt() {
		E.inf()
		return E
	}
	E.y.Copy(rhs)
	return E
}

// onCurve 检查仿射坐标 (x, y) 是否满足曲线方程，Montgomery 曲线只检查 RHS(x) 是否为平方元。
func onCurve[C Curve](x, y *FP[C]) bool {
	rhs := RHS(x)
	if params[C]().rom.CurveType == MONTGOMERY {
		return rhs.Qr() == 1
	}
	y2 := NewFPcopy(y)
	y2.Sqr()
	return y2.Equals(rhs)
}

/* test for O point-at-infinity */
func (E *ECP[C]) IsInfinity() bool {
	switch params[C]().rom.CurveType {
	case EDWARDS:
		return E.x.IsZilch() && E.y.Equals(&E.z)
	case WEIERSTRASS:
		return E.x.IsZilch() && E.z.IsZilch()
	}
	return E.z.IsZilch()
}

// Is_infinity 与 IsInfinity 相同。
func (E *ECP[C]) Is_infinity() bool {
	return E.IsInfinity()
}

/* Conditional swap of P and Q dependant on d */
func (E *ECP[C]) Cswap(Q *ECP[C], d int) {
	E.x.Cswap(&Q.x, d)
	if params[C]().rom.CurveType != MONTGOMERY {
		E.y.Cswap(&Q.y, d)
	}
	E.z.Cswap(&Q.z, d)
}

/* Conditional move of Q to P dependant on d */
func (E *ECP[C]) Cmove(Q *ECP[C], d int) {
	E.x.Cmove(&Q.x, d)
	if params[C]().rom.CurveType != MONTGOMERY {
		E.y.Cmove(&Q.y, d)
	}
	E.z.Cmove(&Q.z, d)
}

/* this=P */
func (E *ECP[C]) Copy(P *ECP[C]) {
	E.x.Copy(&P.x)
	E.y.Copy(&P.y)
	E.z.Copy(&P.z)
}

/* this=-this */
func (E *ECP[C]) Neg() {
	switch params[C]().rom.CurveType {
	case WEIERSTRASS:
		E.y.Neg()
		E.y.Norm()
	case EDWARDS:
		E.x.Neg()
		E.x.Norm()
	}
}

/* Constant time select from pre-computed table */
func (E *ECP[C]) selector(W []*ECP[C], b int32) {
	MP := NewECP[C]()
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

/* set this=O */
func (E *ECP[C]) inf() {
	switch params[C]().rom.CurveType {
	case EDWARDS:
		E.x.Zero()
		E.y.One()
		E.z.One()
	case WEIERSTRASS:
		E.x.Zero()
		E.y.One()
		E.z.Zero()
	default:
		E.x.One()
		E.y.Zero()
		E.z.Zero()
	}
}

/* Test P == Q */
func (E *ECP[C]) Equals(Q *ECP[C]) bool {
	a := NewFPcopy(&E.x)
	b := NewFPcopy(&Q.x)
	a.Mul(&Q.z)
	b.Mul(&E.z)
	if !a.Equals(b) {
		return false
	}
	if params[C]().rom.CurveType != MONTGOMERY {
		a.Copy(&E.y)
		a.Mul(&Q.z)
		b.Copy(&Q.y)
		b.Mul(&E.z)
		if !a.Equals(b) {
			return false
		}
	}
	return true
}

// RHS 计算曲线方程右侧：Weierstrass 为 x^3+Ax+B，Edwards 为 (Ax^2-1)/(Bx^2-1)，
// Montgomery 为 x^3+Ax^2+x。
func RHS[C Curve](x *FP[C]) *FP[C] {
	p := params[C]()
	r := NewFPcopy(x)
	r.Sqr()

	switch p.rom.CurveType {
	case WEIERSTRASS:
		b := curveB[C]()
		r.Mul(x)
		if p.rom.CurveA == -3 {
			cx := NewFPcopy(x)
			cx.Imul(3)
			cx.Neg()
			cx.Norm()
			r.Add(cx)
		}
		r.Add(b)
	case EDWARDS:
		b := curveB[C]()
		one := NewFPint[C](1)
		b.Mul(r)
		b.Sub(one)
		b.Norm()
		if p.rom.CurveA == -1 {
			r.Neg()
		}
		r.Sub(one)
		r.Norm()
		b.Inverse()
		r.Mul(b)
	case MONTGOMERY:
		x3 := NewFPcopy(r)
		x3.Mul(x)
		r.Imul(p.rom.CurveA)
		r.Add(x3)
		r.Add(x)
	}
	r.Reduce()
	return r
}

// timesB 计算 f *= k*B，B 较小时用整数乘法。
func timesB[C Curve](f *FP[C], k int) {
	p := params[C]()
	if p.rom.CurveBI != 0 {
		f.Imul(k * p.rom.CurveBI)
		return
	}
	b := curveB[C]()
	if k != 1 {
		b.Imul(k)
	}
	f.Mul(b)
}

/* set to affine - from (x,y,z) to (x,y) */
func (E *ECP[C]) Affine() {
	if E.IsInfinity() {
		return
	}
	one := NewFPint[C](1)
	if E.z.Equals(one) {
		return
	}
	E.z.Inverse()
	E.x.Mul(&E.z)
	E.x.Reduce()

	if params[C]().rom.CurveType != MONTGOMERY {
		E.y.Mul(&E.z)
		E.y.Reduce()
	}
	E.z.Copy(one)
}

// MultiAffine 只做一次域求逆就把一组射影点全部转成仿射坐标（Montgomery 批量求逆）。
// 无穷远点保持不变。
func MultiAffine[C Curve](P []*ECP[C]) {
	n := len(P)
	if n == 0 {
		return
	}
	one := NewFPint[C](1)
	zs := make([]*FP[C], n)
	acc := make([]*FP[C], n)
	prod := NewFPint[C](1)
	for i, Q := range P {
		zs[i] = NewFPcopy(&Q.z)
		zs[i].Reduce()
		// z = 0 的点用 1 代替，避免整个乘积变成零
		zs[i].Cmove(one, boolInt(zs[i].IsZilch()))
		acc[i] = NewFPcopy(prod)
		prod.Mul(zs[i])
	}
	prod.Inverse()
	for i := n - 1; i >= 0; i-- {
		zi := NewFPcopy(prod)
		zi.Mul(acc[i])
		prod.Mul(zs[i])
		if P[i].IsInfinity() {
			continue
		}
		P[i].x.Mul(zi)
		P[i].x.Reduce()
		if params[C]().rom.CurveType != MONTGOMERY {
			P[i].y.Mul(zi)
			P[i].y.Reduce()
		}
		P[i].z.Copy(one)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

/* extract x as a BIG */
func (E *ECP[C]) GetX() *BIG[C] {
	W := NewECP[C]()
	W.Copy(E)
	W.Affine()
	return W.x.Redc()
}

/* extract y as a BIG */
func (E *ECP[C]) GetY() *BIG[C] {
	W := NewECP[C]()
	W.Copy(E)
	W.Affine()
	return W.y.Redc()
}

/* get sign of Y */
func (E *ECP[C]) GetS() int {
	W := NewECP[C]()
	W.Copy(E)
	W.Affine()
	return W.y.Sign()
}

// ToBytes 写出点的编码。Montgomery 曲线为 0x02|x；其余曲线未压缩时为 0x04|x|y，
// 压缩时为 0x02|x 或 0x03|x，末位标记 y 的奇偶性。
func (E *ECP[C]) ToBytes(b []byte, compress bool) {
	p := params[C]()
	mb := int(p.MODBYTES)
	W := NewECP[C]()
	W.Copy(E)
	W.Affine()
	W.x.Redc().ToBytes(b[1 : mb+1])

	if p.rom.CurveType == MONTGOMERY {
		b[0] = 0x02
		return
	}
	if compress {
		b[0] = 0x02
		if W.y.Sign() == 1 {
			b[0] = 0x03
		}
		return
	}
	b[0] = 0x04
	W.y.Redc().ToBytes(b[mb+1 : 2*mb+1])
}

// EncodedLen 返回 ToBytes 需要的字节数。
func (E *ECP[C]) EncodedLen(compress bool) int {
	p := params[C]()
	if compress || p.rom.CurveType == MONTGOMERY {
		return 1 + int(p.MODBYTES)
	}
	return 1 + 2*int(p.MODBYTES)
}

// ECP_fromBytes 解码点，任何非法输入（未知标记、坐标不小于模数、点不在曲线上）都返回无穷远点。
func ECP_fromBytes[C Curve](b []byte) *ECP[C] {
	P, _ := ecpFromBytes[C](b)
	return P
}

// ECP_fromBytesChecked 与 ECP_fromBytes 相同，但把非法输入作为错误返回。
// 编码长度必须恰好是 1+MODBYTES（压缩形式和 Montgomery 曲线）或 1+2*MODBYTES。
func ECP_fromBytesChecked[C Curve](b []byte) (*ECP[C], error) {
	return ecpFromBytes[C](b)
}

func ecpFromBytes[C Curve](b []byte) (*ECP[C], error) {
	p := params[C]()
	mb := int(p.MODBYTES)
	m := Modulus[C]()
	if len(b) < 1+mb {
		return NewECP[C](), vars.ErrorInvalidLength{Kind: "point", Want: 1 + mb, Got: len(b)}
	}
	px := FromBytes[C](b[1 : mb+1])
	if Comp(px, m) >= 0 {
		return NewECP[C](), vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: "x coordinate is not less than the field modulus"}
	}

	if p.rom.CurveType == MONTGOMERY {
		if b[0] != 0x02 {
			return NewECP[C](), vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: fmt.Sprintf("unknown tag 0x%02x", b[0])}
		}
		if len(b) != 1+mb {
			return NewECP[C](), vars.ErrorInvalidLength{Kind: "point", Want: 1 + mb, Got: len(b)}
		}
		P := NewECPbig(px)
		if P.IsInfinity() {
			return P, vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: "x is not on the curve"}
		}
		return P, nil
	}

	switch b[0] {
	case 0x04:
		if len(b) != 1+2*mb {
			return NewECP[C](), vars.ErrorInvalidLength{Kind: "point", Want: 1 + 2*mb, Got: len(b)}
		}
		py := FromBytes[C](b[mb+1 : 2*mb+1])
		if Comp(py, m) >= 0 {
			return NewECP[C](), vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: "y coordinate is not less than the field modulus"}
		}
		if !onCurve(NewFPbig(px), NewFPbig(py)) {
			return NewECP[C](), vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: "(x, y) is not on the curve"}
		}
		return NewECPbigs(px, py), nil
	case 0x02, 0x03:
		if len(b) != 1+mb {
			return NewECP[C](), vars.ErrorInvalidLength{Kind: "point", Want: 1 + mb, Got: len(b)}
		}
		P := NewECPbigint(px, int(b[0]&1))
		if P.IsInfinity() {
			return P, vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: "x is not on the curve"}
		}
		return P, nil
	}
	return NewECP[C](), vars.ErrorInvalidPoint{Group: p.rom.Name, Reason: fmt.Sprintf("unknown tag 0x%02x", b[0])}
}

/* convert to hex string */
func (E *ECP[C]) ToString() string {
	W := NewECP[C]()
	W.Copy(E)
	W.Affine()
	if W.IsInfinity() {
		return "infinity"
	}
	if params[C]().rom.CurveType == MONTGOMERY {
		return "(" + W.x.Redc().ToString() + ")"
	}
	return "(" + W.x.Redc().ToString() + "," + W.y.Redc().ToString() + ")"
}

func (E *ECP[C]) String() string {
	return E.ToString()
}

// Dbl 计算 this*=2。
func (E *ECP[C]) Dbl() Outcome {
	E.dbl()
	if E.IsInfinity() {
		return Infinity
	}
	return Doubled
}

// Add 计算 this+=Q。Q 与 this 相同时报告 Doubled，结果为无穷远点时报告 Infinity。
// Montgomery 曲线没有一般的点加，Add、Sub 和 Mul2 会以 vars.ErrorUnsupportedOperation panic，只能使用 Mul。
func (E *ECP[C]) Add(Q *ECP[C]) Outcome {
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

/* this-=Q */
func (E *ECP[C]) Sub(Q *ECP[C]) Outcome {
	NQ := NewECP[C]()
	NQ.Copy(Q)
	NQ.Neg()
	return E.Add(NQ)
}

func (E *ECP[C]) sub(Q *ECP[C]) {
	NQ := NewECP[C]()
	NQ.Copy(Q)
	NQ.Neg()
	E.add(NQ)
}

func (E *ECP[C]) dbl() {
	p := params[C]()
	switch p.rom.CurveType {
	case WEIERSTRASS:
		if p.rom.CurveA == 0 {
			E.dblA0()
		} else {
			E.dblA3()
		}
	case EDWARDS:
		C1 := NewFPcopy(&E.x)
		D := NewFPcopy(&E.y)
		H := NewFPcopy(&E.z)
		J := NewFP[C]()

		E.x.Mul(&E.y)
		E.x.Add(&E.x)
		E.x.Norm()
		C1.Sqr()
		D.Sqr()
		if p.rom.CurveA == -1 {
			C1.Neg()
		}
		E.y.Copy(C1)
		E.y.Add(D)
		E.y.Norm()

		H.Sqr()
		H.Add(H)
		E.z.Copy(&E.y)
		J.Copy(&E.y)
		J.Sub(H)
		J.Norm()
		E.x.Mul(J)
		C1.Sub(D)
		C1.Norm()
		E.y.Mul(C1)
		E.z.Mul(J)
	case MONTGOMERY:
		A := NewFPcopy(&E.x)
		B := NewFPcopy(&E.x)
		AA := NewFP[C]()
		BB := NewFP[C]()
		C1 := NewFP[C]()

		A.Add(&E.z)
		A.Norm()
		AA.Copy(A)
		AA.Sqr()
		B.Sub(&E.z)
		B.Norm()
		BB.Copy(B)
		BB.Sqr()
		C1.Copy(AA)
		C1.Sub(BB)
		C1.Norm()

		E.x.Copy(AA)
		E.x.Mul(BB)

		A.Copy(C1)
		A.Imul((p.rom.CurveA + 2) / 4)

		BB.Add(A)
		BB.Norm()
		E.z.Copy(BB)
		E.z.Mul(C1)
	}
}

/* Renes-Costello-Batina doubling, a=0 */
func (E *ECP[C]) dblA0() {
	t0 := NewFPcopy(&E.y)
	t0.Sqr()
	t1 := NewFPcopy(&E.y)
	t1.Mul(&E.z)
	t2 := NewFPcopy(&E.z)
	t2.Sqr()

	E.z.Copy(t0)
	E.z.Add(t0)
	E.z.Norm()
	E.z.Add(&E.z)
	E.z.Add(&E.z)
	E.z.Norm()
	timesB(t2, 3)

	x3 := NewFPcopy(t2)
	x3.Mul(&E.z)

	y3 := NewFPcopy(t0)
	y3.Add(t2)
	y3.Norm()
	E.z.Mul(t1)
	t1.Copy(t2)
	t1.Add(t2)
	t2.Add(t1)
	t0.Sub(t2)
	t0.Norm()
	y3.Mul(t0)
	y3.Add(x3)
	t1.Copy(&E.x)
	t1.Mul(&E.y)
	E.x.Copy(t0)
	E.x.Norm()
	E.x.Mul(t1)
	E.x.Add(&E.x)
	E.x.Norm()
	E.y.Copy(y3)
	E.y.Norm()
}

/* Renes-Costello-Batina doubling, a=-3 */
func (E *ECP[C]) dblA3() {
	t0 := NewFPcopy(&E.x)
	t1 := NewFPcopy(&E.y)
	t2 := NewFPcopy(&E.z)
	t3 := NewFPcopy(&E.x)
	z3 := NewFPcopy(&E.z)
	y3 := NewFP[C]()
	x3 := NewFP[C]()

	t0.Sqr()
	t1.Sqr()
	t2.Sqr()

	t3.Mul(&E.y)
	t3.Add(t3)
	t3.Norm()
	z3.Mul(&E.x)
	z3.Add(z3)
	z3.Norm()
	y3.Copy(t2)
	timesB(y3, 1)

	y3.Sub(z3)
	x3.Copy(y3)
	x3.Add(y3)
	x3.Norm()

	y3.Add(x3)
	x3.Copy(t1)
	x3.Sub(y3)
	x3.Norm()
	y3.Add(t1)
	y3.Norm()
	y3.Mul(x3)
	x3.Mul(t3)
	t3.Copy(t2)
	t3.Add(t2)
	t2.Add(t3)

	timesB(z3, 1)

	z3.Sub(t2)
	z3.Sub(t0)
	z3.Norm()
	t3.Copy(z3)
	t3.Add(z3)

	z3.Add(t3)
	z3.Norm()
	t3.Copy(t0)
	t3.Add(t0)
	t0.Add(t3)
	t0.Sub(t2)
	t0.Norm()

	t0.Mul(z3)
	y3.Add(t0)
	t0.Copy(&E.y)
	t0.Mul(&E.z)
	t0.Add(t0)
	t0.Norm()
	z3.Mul(t0)
	x3.Sub(z3)
	t0.Add(t0)
	t0.Norm()
	t1.Add(t1)
	t1.Norm()
	z3.Copy(t0)
	z3.Mul(t1)

	E.x.Copy(x3)
	E.x.Norm()
	E.y.Copy(y3)
	E.y.Norm()
	E.z.Copy(z3)
	E.z.Norm()
}

func (E *ECP[C]) add(Q *ECP[C]) {
	p := params[C]()
	switch p.rom.CurveType {
	case WEIERSTRASS:
		if p.rom.CurveA == 0 {
			E.addA0(Q)
		} else {
			E.addA3(Q)
		}
	case EDWARDS:
		b := curveB[C]()
		A := NewFPcopy(&E.z)
		B := NewFP[C]()
		C1 := NewFPcopy(&E.x)
		D := NewFPcopy(&E.y)
		EE := NewFP[C]()
		F := NewFP[C]()
		G := NewFP[C]()

		A.Mul(&Q.z)
		B.Copy(A)
		B.Sqr()
		C1.Mul(&Q.x)
		D.Mul(&Q.y)

		EE.Copy(C1)
		EE.Mul(D)
		EE.Mul(b)
		F.Copy(B)
		F.Sub(EE)
		G.Copy(B)
		G.Add(EE)

		if p.rom.CurveA == 1 {
			EE.Copy(D)
			EE.Sub(C1)
		}
		C1.Add(D)

		B.Copy(&E.x)
		B.Add(&E.y)
		D.Copy(&Q.x)
		D.Add(&Q.y)
		B.Norm()
		D.Norm()
		B.Mul(D)
		B.Sub(C1)
		B.Norm()
		F.Norm()
		B.Mul(F)
		E.x.Copy(A)
		E.x.Mul(B)
		G.Norm()
		if p.rom.CurveA == 1 {
			EE.Norm()
			C1.Copy(EE)
			C1.Mul(G)
		} else {
			C1.Norm()
			C1.Mul(G)
		}
		E.y.Copy(A)
		E.y.Mul(C1)
		E.z.Copy(F)
		E.z.Mul(G)
	case MONTGOMERY:
		panic(vars.ErrorUnsupportedOperation{Op: "point addition", Curve: p.rom.Name})
	}
}

/* Renes-Costello-Batina addition, a=0 */
func (E *ECP[C]) addA0(Q *ECP[C]) {
	t0 := NewFPcopy(&E.x)
	t0.Mul(&Q.x)
	t1 := NewFPcopy(&E.y)
	t1.Mul(&Q.y)
	t2 := NewFPcopy(&E.z)
	t2.Mul(&Q.z)
	t3 := NewFPcopy(&E.x)
	t3.Add(&E.y)
	t3.Norm()
	t4 := NewFPcopy(&Q.x)
	t4.Add(&Q.y)
	t4.Norm()
	t3.Mul(t4)
	t4.Copy(t0)
	t4.Add(t1)

	t3.Sub(t4)
	t3.Norm()
	t4.Copy(&E.y)
	t4.Add(&E.z)
	t4.Norm()
	x3 := NewFPcopy(&Q.y)
	x3.Add(&Q.z)
	x3.Norm()

	t4.Mul(x3)
	x3.Copy(t1)
	x3.Add(t2)

	t4.Sub(x3)
	t4.Norm()
	x3.Copy(&E.x)
	x3.Add(&E.z)
	x3.Norm()
	y3 := NewFPcopy(&Q.x)
	y3.Add(&Q.z)
	y3.Norm()
	x3.Mul(y3)
	y3.Copy(t0)
	y3.Add(t2)
	y3.Rsub(x3)
	y3.Norm()
	x3.Copy(t0)
	x3.Add(t0)
	t0.Add(x3)
	t0.Norm()
	timesB(t2, 3)

	z3 := NewFPcopy(t1)
	z3.Add(t2)
	z3.Norm()
	t1.Sub(t2)
	t1.Norm()
	timesB(y3, 3)

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

/* Renes-Costello-Batina addition, a=-3 */
func (E *ECP[C]) addA3(Q *ECP[C]) {
	t0 := NewFPcopy(&E.x)
	t1 := NewFPcopy(&E.y)
	t2 := NewFPcopy(&E.z)
	t3 := NewFPcopy(&E.x)
	t4 := NewFPcopy(&Q.x)
	z3 := NewFP[C]()
	y3 := NewFPcopy(&Q.x)
	x3 := NewFPcopy(&Q.y)

	t0.Mul(&Q.x)
	t1.Mul(&Q.y)
	t2.Mul(&Q.z)

	t3.Add(&E.y)
	t3.Norm()
	t4.Add(&Q.y)
	t4.Norm()
	t3.Mul(t4)
	t4.Copy(t0)
	t4.Add(t1)
	t3.Sub(t4)
	t3.Norm()
	t4.Copy(&E.y)
	t4.Add(&E.z)
	t4.Norm()
	x3.Add(&Q.z)
	x3.Norm()
	t4.Mul(x3)
	x3.Copy(t1)
	x3.Add(t2)

	t4.Sub(x3)
	t4.Norm()
	x3.Copy(&E.x)
	x3.Add(&E.z)
	x3.Norm()
	y3.Add(&Q.z)
	y3.Norm()

	x3.Mul(y3)
	y3.Copy(t0)
	y3.Add(t2)

	y3.Rsub(x3)
	y3.Norm()
	z3.Copy(t2)
	timesB(z3, 1)

	x3.Copy(y3)
	x3.Sub(z3)
	x3.Norm()
	z3.Copy(x3)
	z3.Add(x3)

	x3.Add(z3)
	z3.Copy(t1)
	z3.Sub(x3)
	z3.Norm()
	x3.Add(t1)
	x3.Norm()

	timesB(y3, 1)

	t1.Copy(t2)
	t1.Add(t2)
	t2.Add(t1)

	y3.Sub(t2)

	y3.Sub(t0)
	y3.Norm()
	t1.Copy(y3)
	t1.Add(y3)
	y3.Add(t1)
	y3.Norm()

	t1.Copy(t0)
	t1.Add(t0)
	t0.Add(t1)
	t0.Sub(t2)
	t0.Norm()
	t1.Copy(t4)
	t1.Mul(y3)
	t2.Copy(t0)
	t2.Mul(y3)
	y3.Copy(x3)
	y3.Mul(z3)
	y3.Add(t2)
	x3.Mul(t3)
	x3.Sub(t1)
	z3.Mul(t4)
	t1.Copy(t3)
	t1.Mul(t0)
	z3.Add(t1)
	E.x.Copy(x3)
	E.x.Norm()
	E.y.Copy(y3)
	E.y.Norm()
	E.z.Copy(z3)
	E.z.Norm()
}

/* Differential Add for Montgomery curves. this+=Q where W is this-Q and is affine. */
func (E *ECP[C]) dAdd(Q *ECP[C], W *ECP[C]) {
	A := NewFPcopy(&E.x)
	B := NewFPcopy(&E.x)
	C1 := NewFPcopy(&Q.x)
	D := NewFPcopy(&Q.x)
	DA := NewFP[C]()
	CB := NewFP[C]()

	A.Add(&E.z)
	B.Sub(&E.z)

	C1.Add(&Q.z)
	D.Sub(&Q.z)
	A.Norm()
	D.Norm()

	DA.Copy(D)
	DA.Mul(A)
	C1.Norm()
	B.Norm()

	CB.Copy(C1)
	CB.Mul(B)

	A.Copy(DA)
	A.Add(CB)
	A.Norm()
	A.Sqr()
	B.Copy(DA)
	B.Sub(CB)
	B.Norm()
	B.Sqr()

	E.x.Copy(A)
	E.z.Copy(&W.x)
	E.z.Mul(B)
}

// Pinmul 以常数时间计算 e*this，e 是 bts 位的短标量（例如 PIN 码）。
func (E *ECP[C]) Pinmul(e int32, bts int32) *ECP[C] {
	if params[C]().rom.CurveType == MONTGOMERY {
		return E.clmul(NewBIGint[C](int(e)), int(bts))
	}
	P := NewECP[C]()
	R0 := NewECP[C]()
	R1 := NewECP[C]()
	R1.Copy(E)

	for i := bts - 1; i >= 0; i-- {
		b := int((e >> uint32(i)) & 1)
		P.Copy(R1)
		P.add(R0)
		R0.Cswap(R1, b)
		R1.Copy(P)
		R0.dbl()
		R0.Cswap(R1, b)
	}
	P.Copy(R0)
	return P
}

// Mul 计算 e*this。迭代次数由模数位长决定（e 更长时取 e 的位长），与 e 的实际大小无关。
func (E *ECP[C]) Mul(e *BIG[C]) *ECP[C] {
	return E.clmul(e, scalarBits(e))
}

func scalarBits[C Curve](e *BIG[C]) int {
	max := int(params[C]().MODBITS)
	if n := e.Nbits(); n > max {
		max = n
	}
	return max
}

func (E *ECP[C]) clmul(e *BIG[C], max int) *ECP[C] {
	if e.IsZilch() || E.IsInfinity() {
		return NewECP[C]()
	}
	P := NewECP[C]()

	if params[C]().rom.CurveType == MONTGOMERY {
		/* use Ladder */
		D := NewECP[C]()
		R0 := NewECP[C]()
		R1 := NewECP[C]()
		R1.Copy(E)
		D.Copy(E)
		D.Affine()
		for i := max - 1; i >= 0; i-- {
			b := e.Bit(i)
			P.Copy(R1)
			P.dAdd(R0, D)
			R0.Cswap(R1, b)
			R1.Copy(P)
			R0.dbl()
			R0.Cswap(R1, b)
		}
		P.Copy(R0)
		return P
	}

	// fixed size windows
	mt := NewBIG[C]()
	t := NewBIG[C]()
	Q := NewECP[C]()
	C1 := NewECP[C]()

	var W [8]*ECP[C]
	var w [1 + (MaxNLEN*CHUNK+3)/4]int8

	Q.Copy(E)
	Q.dbl()

	W[0] = NewECP[C]()
	W[0].Copy(E)

	for i := 1; i < 8; i++ {
		W[i] = NewECP[C]()
		W[i].Copy(W[i-1])
		W[i].add(Q)
	}

	// make exponent odd - add 2P if even, P if odd
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

	nb := 1 + (max+3)/4

	// convert exponent to signed 4-bit window
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
	P.sub(C1) /* apply correction */
	return P
}

// ECP_muln 计算 sum e_i*X_i，使用 4 位固定窗口的桶方法。标量是公开数据时使用。
func ECP_muln[C Curve](X []*ECP[C], e []*BIG[C]) *ECP[C] {
	n := len(X)
	P := NewECP[C]()
	if n == 0 {
		return P
	}
	R := NewECP[C]()
	S := NewECP[C]()
	var B [16]*ECP[C]
	t := NewBIG[C]()
	for i := 0; i < 16; i++ {
		B[i] = NewECP[C]()
	}
	mt := NewBIGcopy(e[0])
	mt.Norm()
	for i := 1; i < n; i++ { // find biggest
		t.Copy(e[i])
		t.Norm()
		k := Comp(t, mt)
		mt.Cmove(t, (k+1)/2)
	}
	nb := (mt.Nbits() + 3) / 4
	for i := nb - 1; i >= 0; i-- {
		for j := 0; j < 16; j++ {
			B[j].inf()
		}
		for j := 0; j < n; j++ {
			mt.Copy(e[j])
			mt.Norm()
			mt.Shr(uint(i * 4))
			k := mt.Lastbits(4)
			B[k].add(X[j])
		}
		R.inf()
		S.inf()
		for j := 15; j >= 1; j-- {
			R.add(B[j])
			S.add(R)
		}
		for j := 0; j < 4; j++ {
			P.dbl()
		}
		P.add(S)
	}
	return P
}

/* Return e.this+f.Q */
func (E *ECP[C]) Mul2(e *BIG[C], Q *ECP[C], f *BIG[C]) *ECP[C] {
	te := NewBIG[C]()
	tf := NewBIG[C]()
	mt := NewBIG[C]()
	S := NewECP[C]()
	T := NewECP[C]()
	C1 := NewECP[C]()
	var W [8]*ECP[C]
	var w [1 + (MaxNLEN*CHUNK+1)/2]int8

	te.Copy(e)
	tf.Copy(f)

	// precompute table
	for i := 0; i < 8; i++ {
		W[i] = NewECP[C]()
	}
	W[1].Copy(E)
	W[1].sub(Q)
	W[2].Copy(E)
	W[2].add(Q)
	S.Copy(Q)
	S.dbl()
	W[0].Copy(W[1])
	W[0].sub(S)
	W[3].Copy(W[2])
	W[3].add(S)
	T.Copy(E)
	T.dbl()
	W[5].Copy(W[1])
	W[5].add(T)
	W[6].Copy(W[2])
	W[6].add(T)
	W[4].Copy(W[5])
	W[4].sub(S)
	W[7].Copy(W[6])
	W[7].add(S)

	// if multiplier is odd, add 2, else add 1 to multiplier, and add 2P or P to correction
	s := te.Parity()
	te.Inc(1)
	te.Norm()
	ns := te.Parity()
	mt.Copy(te)
	mt.Inc(1)
	mt.Norm()
	te.Cmove(mt, s)
	T.Cmove(E, ns)
	C1.Copy(T)

	s = tf.Parity()
	tf.Inc(1)
	tf.Norm()
	ns = tf.Parity()
	mt.Copy(tf)
	mt.Inc(1)
	mt.Norm()
	tf.Cmove(mt, s)
	S.Cmove(Q, ns)
	C1.add(S)

	mt.Copy(te)
	mt.Add(tf)
	mt.Norm()
	nb := 1 + (mt.Nbits()+1)/2

	// convert exponent to signed 2-bit window
	for i := 0; i < nb; i++ {
		a := te.Lastbits(3) - 4
		te.Dec(a)
		te.Norm()
		te.Fshr(2)
		b := tf.Lastbits(3) - 4
		tf.Dec(b)
		tf.Norm()
		tf.Fshr(2)
		w[i] = int8(4*a + b)
	}
	w[nb] = int8(4*te.Lastbits(3) + tf.Lastbits(3))
	S.selector(W[:], int32(w[nb]))
	for i := nb - 1; i >= 0; i-- {
		T.selector(W[:], int32(w[i]))
		S.dbl()
		S.dbl()
		S.add(T)
	}
	S.sub(C1) /* apply correction */
	return S
}

// Cfp 乘以余因子，把点映射到素数阶子群。
func (E *ECP[C]) Cfp() {
	c := CurveCof[C]()
	if c.IsUnity() {
		return
	}
	if c.Nbits() <= 4 && c.Get(0)&(c.Get(0)-1) == 0 {
		for k := c.Get(0); k > 1; k >>= 1 {
			E.dbl()
		}
		return
	}
	E.Copy(E.Mul(c))
}

/* Hunt and Peck a BIG to a curve point */
func ECP_hap2point[C Curve](h *BIG[C]) *ECP[C] {
	var P *ECP[C]
	x := NewBIGcopy(h)
	x.Mod(Modulus[C]())
	mont := params[C]().rom.CurveType == MONTGOMERY
	for {
		if !mont {
			P = NewECPbigint(x, 0)
		} else {
			P = NewECPbig(x)
		}
		x.Inc(1)
		x.Norm()
		if !P.IsInfinity() {
			break
		}
	}
	return P
}

// ECP_mapit 把哈希值映射为素数阶子群中的点：先把字节串约简到域上，再逐个尝试 x，最后乘以余因子。
func ECP_mapit[C Curve](h []byte) *ECP[C] {
	q := Modulus[C]()
	dx := DBIG_fromBytes[C](h)
	x := dx.Mod(q)

	P := ECP_hap2point(x)
	P.Cfp()
	return P
}

func ECP_generator[C Curve]() *ECP[C] {
	p := params[C]()
	gx := NewBIGints[C](p.gx)
	if p.rom.CurveType != MONTGOMERY {
		gy := NewBIGints[C](p.gy)
		return NewECPbigs(gx, gy)
	}
	return NewECPbig(gx)
}

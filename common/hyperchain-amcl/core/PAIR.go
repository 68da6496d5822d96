/* Optimal Ate pairing for embedding degree 12 (BN and BLS12 curves) */

package core

// line 计算 Miller 循环中过 A、B 两点（A==B 时为切线）的线函数在 Q=(Qx,Qy) 处的取值，并把 A 更新为 A+B。
// 结果是稀疏的 FP12：D 型扭曲只有 a、b 分量，M 型扭曲只有 a、c 分量。
func line[C Curve](A *ECP2[C], B *ECP2[C], Qx *FP[C], Qy *FP[C]) *FP12[C] {
	var a, b, c *FP4[C]
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE

	if A == B {
		XX := NewFP2copy(&A.x)
		YY := NewFP2copy(&A.y)
		ZZ := NewFP2copy(&A.z)
		YZ := NewFP2copy(&A.y)
		YZ.Mul(ZZ)
		XX.Sqr()
		YY.Sqr()
		ZZ.Sqr()

		YZ.Imul(4)
		YZ.Neg()
		YZ.Norm()
		YZ.Pmul(Qy)

		XX.Imul(6)
		XX.Pmul(Qx)

		ZZ.Imul(3 * p.rom.CurveBI)
		if dtype {
			ZZ.DivIP2()
		} else {
			ZZ.MulIP()
			ZZ.Add(ZZ)
			YZ.MulIP()
			YZ.Norm()
		}
		ZZ.Norm()

		YY.Add(YY)
		ZZ.Sub(YY)
		ZZ.Norm()

		a = NewFP4fp2s(YZ, ZZ)
		if dtype {
			b = NewFP4fp2(XX)
			c = NewFP4[C]()
		} else {
			b = NewFP4[C]()
			c = NewFP4fp2(XX)
			c.TimesI()
		}
		A.dbl()
	} else {
		X1 := NewFP2copy(&A.x)
		Y1 := NewFP2copy(&A.y)
		T1 := NewFP2copy(&A.z)
		T2 := NewFP2copy(&A.z)

		T1.Mul(&B.y)
		T2.Mul(&B.x)

		X1.Sub(T2)
		X1.Norm()
		Y1.Sub(T1)
		Y1.Norm()

		T1.Copy(X1)
		X1.Pmul(Qy)
		if !dtype {
			X1.MulIP()
			X1.Norm()
		}

		T1.Mul(&B.y)

		T2.Copy(Y1)
		T2.Mul(&B.x)
		T2.Sub(T1)
		T2.Norm()
		Y1.Pmul(Qx)
		Y1.Neg()
		Y1.Norm()

		a = NewFP4fp2s(X1, T2)
		if dtype {
			b = NewFP4fp2(Y1)
			c = NewFP4[C]()
		} else {
			b = NewFP4[C]()
			c = NewFP4fp2(Y1)
			c.TimesI()
		}
		A.add(B)
	}
	return NewFP12fp4s(a, b, c)
}

// lbits 返回 Miller 循环参数 3n 与 n。BLS 曲线 n = |x|，BN 曲线 n = |6x+2|。
func lbits[C Curve]() (*BIG[C], *BIG[C]) {
	p := params[C]()
	n := CurveBnx[C]()
	if p.rom.Pairing == BN {
		n.Pmul(6)
		if p.rom.SignOfX == POSITIVEX {
			n.Inc(2)
		} else {
			n.Dec(2)
		}
	}
	n.Norm()
	n3 := NewBIGcopy(n)
	n3.Pmul(3)
	n3.Norm()
	return n3, n
}

// affinePair 返回仿射化后的 P、-P 以及 Q 的坐标。
func affinePair[C Curve](P1 *ECP2[C], Q1 *ECP[C]) (*ECP2[C], *ECP2[C], *FP[C], *FP[C]) {
	P := NewECP2copy(P1)
	Q := NewECP[C]()
	Q.Copy(Q1)
	P.Affine()
	Q.Affine()
	NP := NewECP2copy(P)
	NP.Neg()
	return P, NP, NewFPcopy(&Q.x), NewFPcopy(&Q.y)
}

// bnFixup 计算 BN 曲线 Miller 循环末尾的两条附加线函数之积，A 为循环结束时的累加点。
func bnFixup[C Curve](A *ECP2[C], P *ECP2[C], Qx *FP[C], Qy *FP[C]) *FP12[C] {
	f := ECP2_frobConstant[C]()
	if params[C]().rom.SignOfX == NEGATIVEX {
		A.Neg()
	}
	K := NewECP2copy(P)
	K.Frob(f)
	lv := line(A, K, Qx, Qy)
	K.Frob(f)
	K.Neg()
	lv2 := line(A, K, Qx, Qy)
	lv.Smul(lv2)
	return lv
}

/* prepare for multi-pairing */
func Initmp[C Curve]() []*FP12[C] {
	var r []*FP12[C]
	for i := params[C]().ATEBITS - 1; i >= 0; i-- {
		r = append(r, NewFP12int[C](1))
	}
	return r
}

// Another 把 e(P1,Q1) 的 Miller 循环线函数累乘进 r，r[i] 对应第 i 位，r[0] 存放 BN 曲线的附加项。
func Another[C Curve](r []*FP12[C], P1 *ECP2[C], Q1 *ECP[C]) {
	if Q1.IsInfinity() || P1.IsInfinity() {
		return
	}
	n3, n := lbits[C]()
	P, NP, Qx, Qy := affinePair(P1, Q1)
	A := NewECP2copy(P)

	nb := n3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		lv := line(A, A, Qx, Qy)

		bt := n3.Bit(i) - n.Bit(i)
		if bt == 1 {
			lv2 := line(A, P, Qx, Qy)
			lv.Smul(lv2)
		}
		if bt == -1 {
			lv2 := line(A, NP, Qx, Qy)
			lv.Smul(lv2)
		}
		r[i].Mul(lv)
	}

	if params[C]().rom.Pairing == BN {
		r[0].Mul(bnFixup(A, P, Qx, Qy))
	}
}

/* Miller loop of the accumulated multi-pairing; r is reset to unity */
func Miller[C Curve](r []*FP12[C]) *FP12[C] {
	res := NewFP12int[C](1)
	for i := params[C]().ATEBITS - 1; i >= 1; i-- {
		res.Sqr()
		res.Mul(r[i])
		r[i].One()
	}

	if params[C]().rom.SignOfX == NEGATIVEX {
		res.Conj()
	}
	res.Mul(r[0])
	r[0].One()
	return res
}

/* Optimal R-ate pairing */
func Ate[C Curve](P1 *ECP2[C], Q1 *ECP[C]) *FP12[C] {
	if Q1.IsInfinity() || P1.IsInfinity() {
		return NewFP12int[C](1)
	}
	n3, n := lbits[C]()
	P, NP, Qx, Qy := affinePair(P1, Q1)
	A := NewECP2copy(P)
	r := NewFP12int[C](1)

	nb := n3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		r.Sqr()
		lv := line(A, A, Qx, Qy)

		bt := n3.Bit(i) - n.Bit(i)
		if bt == 1 {
			lv2 := line(A, P, Qx, Qy)
			lv.Smul(lv2)
			r.Mul(lv)
		} else if bt == -1 {
			lv2 := line(A, NP, Qx, Qy)
			lv.Smul(lv2)
			r.Mul(lv)
		} else {
			r.Smul(lv)
		}
	}

	if params[C]().rom.SignOfX == NEGATIVEX {
		r.Conj()
	}

	if params[C]().rom.Pairing == BN {
		r.Mul(bnFixup(A, P, Qx, Qy))
	}
	return r
}

/* Optimal R-ate double pairing e(P,Q).e(R,S) */
func Ate2[C Curve](P1 *ECP2[C], Q1 *ECP[C], R1 *ECP2[C], S1 *ECP[C]) *FP12[C] {
	r := Initmp[C]()
	Another(r, P1, Q1)
	Another(r, R1, S1)
	return Miller(r)
}

/* final exponentiation - keep separate for multi-pairings and to avoid thrashing stack */
func Fexp[C Curve](m *FP12[C]) *FP12[C] {
	p := params[C]()
	f := FP2_frob[C]()
	x := CurveBnx[C]()
	neg := p.rom.SignOfX == NEGATIVEX
	r := NewFP12copy(m)

	/* Easy part of final exp */
	lv := NewFP12copy(r)
	lv.Inverse()
	r.Conj()

	r.Mul(lv)
	lv.Copy(r)
	r.Frob(f, 2)
	r.Mul(lv)

	/* Hard part of final exp */
	if p.rom.Pairing == BN {
		lv.Copy(r)
		lv.Frob(f, 1)
		x0 := NewFP12copy(lv)
		x0.Frob(f, 1)
		lv.Mul(r)
		x0.Mul(lv)
		x0.Frob(f, 1)
		x1 := NewFP12copy(r)
		x1.Conj()
		x4 := r.Pow(x)
		if !neg {
			x4.Conj()
		}

		x3 := NewFP12copy(x4)
		x3.Frob(f, 1)

		x2 := x4.Pow(x)
		if !neg {
			x2.Conj()
		}

		x5 := NewFP12copy(x2)
		x5.Conj()
		lv = x2.Pow(x)
		if !neg {
			lv.Conj()
		}

		x2.Frob(f, 1)
		r.Copy(x2)
		r.Conj()

		x4.Mul(r)
		x2.Frob(f, 1)

		r.Copy(lv)
		r.Frob(f, 1)
		lv.Mul(r)

		lv.Usqr()
		lv.Mul(x4)
		lv.Mul(x5)
		r.Copy(x3)
		r.Mul(x5)
		r.Mul(lv)
		lv.Mul(x2)
		r.Usqr()
		r.Mul(lv)
		r.Usqr()
		lv.Copy(r)
		lv.Mul(x1)
		r.Mul(x0)
		lv.Usqr()
		r.Mul(lv)
		r.Reduce()
		return r
	}

	// Ghamman & Fouotsa Method
	xh := NewBIGcopy(x)
	xh.Fshr(1)

	y0 := NewFP12copy(r)
	y0.Usqr()
	y1 := y0.Pow(x)
	if neg {
		y1.Conj()
	}
	y2 := y1.Pow(xh)
	if neg {
		y2.Conj()
	}
	y3 := NewFP12copy(r)
	y3.Conj()
	y1.Mul(y3)

	y1.Conj()
	y1.Mul(y2)

	y2 = y1.Pow(x)
	if neg {
		y2.Conj()
	}

	y3 = y2.Pow(x)
	if neg {
		y3.Conj()
	}
	y1.Conj()
	y3.Mul(y1)

	y1.Conj()
	y1.Frob(f, 3)
	y2.Frob(f, 2)
	y1.Mul(y2)

	y2 = y3.Pow(x)
	if neg {
		y2.Conj()
	}

	y2.Mul(y0)
	y2.Mul(r)

	y1.Mul(y2)
	y2.Copy(y3)
	y2.Frob(f, 1)
	y1.Mul(y2)

	y1.Reduce()
	return y1
}

// glv 把 e 分解为 u[0] + u[1]*lambda (mod r)，u[0]、u[1] 约为 r 的一半长。对 12、24、48 次嵌入度的曲线都适用。
func glv[C Curve](e *BIG[C]) []*BIG[C] {
	p := params[C]()
	u := make([]*BIG[C], 2)
	q := CurveOrder[C]()
	if p.rom.Pairing == BN {
		t := NewBIGint[C](0)
		v := make([]*BIG[C], 2)
		for i := 0; i < 2; i++ {
			t.Copy(NewBIGints[C](p.w[i]))
			d := mul(t, e)
			v[i] = NewBIGcopy(d.Div(q))
			u[i] = NewBIGint[C](0)
		}
		u[0].Copy(e)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				t.Copy(NewBIGints[C](p.sb[j][i]))
				t.Copy(Modmul(v[j], t, q))
				u[i].Add(q)
				u[i].Sub(t)
				u[i].Norm()
				u[i].Mod(q)
			}
		}
		return u
	}
	// -x^(k/6) is a cube root of unity mod r
	x := CurveBnx[C]()
	x2 := NewBIGcopy(x)
	for i := 1; i < p.rom.Embedding/6; i++ {
		x2 = Smul(x2, x)
	}
	u[0] = NewBIGcopy(e)
	u[0].Mod(x2)
	u[1] = NewBIGcopy(e)
	u[1].Div(x2)
	u[1].Rsub(q)
	u[1].Norm()
	return u
}

// gs 把 e 分解为 4 个短标量 u[i]，满足 e = sum u[i]*p^i (mod r)，用于 Galbraith-Scott 方法。
func gs[C Curve](e *BIG[C]) []*BIG[C] {
	p := params[C]()
	u := make([]*BIG[C], 4)
	q := CurveOrder[C]()
	if p.rom.Pairing == BN {
		t := NewBIGint[C](0)
		v := make([]*BIG[C], 4)
		for i := 0; i < 4; i++ {
			t.Copy(NewBIGints[C](p.wb[i]))
			d := mul(t, e)
			v[i] = NewBIGcopy(d.Div(q))
			u[i] = NewBIGint[C](0)
		}
		u[0].Copy(e)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				t.Copy(NewBIGints[C](p.bb[j][i]))
				t.Copy(Modmul(v[j], t, q))
				u[i].Add(q)
				u[i].Sub(t)
				u[i].Norm()
				u[i].Mod(q)
			}
		}
		return u
	}
	return gsDigits(e, 4)
}

// gsDigits 把 e 写成 n 位以 |x| 为基的数字，x<0 时奇数位取负 (mod r)。BLS 曲线上 p = x (mod r)。
func gsDigits[C Curve](e *BIG[C], n int) []*BIG[C] {
	q := CurveOrder[C]()
	x := CurveBnx[C]()
	w := NewBIGcopy(e)
	u := make([]*BIG[C], n)
	for i := 0; i < n-1; i++ {
		u[i] = NewBIGcopy(w)
		u[i].Mod(x)
		w.Div(x)
	}
	u[n-1] = NewBIGcopy(w)
	if params[C]().rom.SignOfX == NEGATIVEX {
		for i := 1; i < n; i += 2 {
			u[i].Copy(Modneg(u[i], q))
		}
	}
	return u
}

// shorten 在 r-u 比 u 更短时用 r-u 替换 u 并返回 1，调用方据此对相应的点或元素取负。
func shorten[C Curve](u *BIG[C], q *BIG[C]) int {
	np := u.Nbits()
	t := Modneg(u, q)
	nn := t.Nbits()
	if nn < np {
		u.Copy(t)
		u.Norm()
		return 1
	}
	u.Norm()
	return 0
}

/* Multiply P by e in group G1 */
func G1mul[C Curve](P *ECP[C], e *BIG[C]) *ECP[C] {
	p := params[C]()
	if p.rom.Pairing == NOT {
		return P.Mul(e)
	}
	q := CurveOrder[C]()
	R := NewECP[C]()
	R.Copy(P)
	Q := NewECP[C]()
	Q.Copy(P)
	Q.Affine()

	cru := NewFPbig(NewBIGints[C](p.cru))
	u := glv(e)
	Q.x.Mul(cru)

	if shorten(u[0], q) == 1 {
		R.Neg()
	}
	if shorten(u[1], q) == 1 {
		Q.Neg()
	}
	return R.Mul2(u[0], Q, u[1])
}

/* Multiply P by e in group G2 */
func G2mul[C Curve](P *ECP2[C], e *BIG[C]) *ECP2[C] {
	q := CurveOrder[C]()
	f := ECP2_frobConstant[C]()
	u := gs(e)

	Q := make([]*ECP2[C], 4)
	Q[0] = NewECP2copy(P)
	for i := 1; i < 4; i++ {
		Q[i] = NewECP2copy(Q[i-1])
		Q[i].Frob(f)
	}
	for i := 0; i < 4; i++ {
		if shorten(u[i], q) == 1 {
			Q[i].Neg()
		}
	}
	return Mul4(Q, u)
}

/* f=f^e */
func GTpow[C Curve](d *FP12[C], e *BIG[C]) *FP12[C] {
	q := CurveOrder[C]()
	f := FP2_frob[C]()
	u := gs(e)

	g := make([]*FP12[C], 4)
	g[0] = NewFP12copy(d)
	for i := 1; i < 4; i++ {
		g[i] = NewFP12copy(g[i-1])
		g[i].Frob(f, 1)
	}
	for i := 0; i < 4; i++ {
		if shorten(u[i], q) == 1 {
			g[i].Conj()
		}
	}
	return Pow4(g, u)
}

/* test G1 group membership */
func G1member[C Curve](P *ECP[C]) bool {
	if P.IsInfinity() {
		return false
	}
	W := P.Mul(CurveOrder[C]())
	return W.IsInfinity()
}

/* test group membership - no longer needs to check order */
func G2member[C Curve](P *ECP2[C]) bool {
	if P.IsInfinity() {
		return false
	}
	p := params[C]()
	if p.rom.Pairing == BN {
		W := P.Mul(CurveOrder[C]())
		return W.IsInfinity()
	}
	W := P.Mul(CurveBnx[C]())
	if p.rom.SignOfX == NEGATIVEX {
		W.Neg()
	}
	T := NewECP2copy(P)
	T.Frob(ECP2_frobConstant[C]())
	return W.Equals(T)
}

/* test for full GT membership */
func GTmember[C Curve](m *FP12[C]) bool {
	if m.IsUnity() {
		return false
	}
	r := NewFP12copy(m)
	r.Conj()
	r.Mul(m)
	if !r.IsUnity() {
		return false
	}

	f := FP2_frob[C]()
	r.Copy(m)
	r.Frob(f, 4)
	w := NewFP12copy(m)
	w.Frob(f, 2)
	r.Mul(m)
	if !w.Equals(r) {
		return false
	}

	w = m.Pow(CurveOrder[C]())
	return w.IsUnity()
}

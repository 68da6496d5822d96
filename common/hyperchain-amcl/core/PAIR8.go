/* Optimal Ate pairing for embedding degree 48 (BLS48 curves) */

package core

// line8 计算 Miller 循环中过 A、B 两点（A==B 时为切线）的线函数在 Q=(Qx,Qy) 处的取值，并把 A 更新为 A+B。
// 结果是稀疏的 FP48：D 型扭曲只有 a、b 分量，M 型扭曲只有 a、c 分量。
func line8[C Curve](A *ECP8[C], B *ECP8[C], Qx *FP[C], Qy *FP[C]) *FP48[C] {
	var a, b, c *FP16[C]
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE

	if A == B {
		XX := NewFP8copy(&A.x)
		YY := NewFP8copy(&A.y)
		ZZ := NewFP8copy(&A.z)
		YZ := NewFP8copy(&A.y)
		YZ.Mul(ZZ)
		XX.Sqr()
		YY.Sqr()
		ZZ.Sqr()

		YZ.Imul(4)
		YZ.Neg()
		YZ.Norm()
		YZ.Tmul(Qy)

		XX.Imul(6)
		XX.Tmul(Qx)

		ZZ.Imul(3 * p.rom.CurveBI)
		if dtype {
			ZZ.DivI2()
		} else {
			ZZ.TimesI()
			ZZ.Add(ZZ)
			YZ.TimesI()
			YZ.Norm()
		}
		ZZ.Norm()

		YY.Add(YY)
		ZZ.Sub(YY)
		ZZ.Norm()

		a = NewFP16fp8s(YZ, ZZ)
		if dtype {
			b = NewFP16fp8(XX)
			c = NewFP16[C]()
		} else {
			b = NewFP16[C]()
			c = NewFP16fp8(XX)
			c.TimesI()
		}
		A.dbl()
	} else {
		X1 := NewFP8copy(&A.x)
		Y1 := NewFP8copy(&A.y)
		T1 := NewFP8copy(&A.z)
		T2 := NewFP8copy(&A.z)

		T1.Mul(&B.y)
		T2.Mul(&B.x)

		X1.Sub(T2)
		X1.Norm()
		Y1.Sub(T1)
		Y1.Norm()

		T1.Copy(X1)
		X1.Tmul(Qy)
		if !dtype {
			X1.TimesI()
			X1.Norm()
		}

		T1.Mul(&B.y)

		T2.Copy(Y1)
		T2.Mul(&B.x)
		T2.Sub(T1)
		T2.Norm()
		Y1.Tmul(Qx)
		Y1.Neg()
		Y1.Norm()

		a = NewFP16fp8s(X1, T2)
		if dtype {
			b = NewFP16fp8(Y1)
			c = NewFP16[C]()
		} else {
			b = NewFP16[C]()
			c = NewFP16fp8(Y1)
			c.TimesI()
		}
		A.add(B)
	}
	return NewFP48fp16s(a, b, c)
}

// affinePair8 返回仿射化后的 P、-P 以及 Q 的坐标。
func affinePair8[C Curve](P1 *ECP8[C], Q1 *ECP[C]) (*ECP8[C], *ECP8[C], *FP[C], *FP[C]) {
	P := NewECP8copy(P1)
	Q := NewECP[C]()
	Q.Copy(Q1)
	P.Affine()
	Q.Affine()
	NP := NewECP8copy(P)
	NP.Neg()
	return P, NP, NewFPcopy(&Q.x), NewFPcopy(&Q.y)
}

/* prepare for multi-pairing */
func Initmp48[C Curve]() []*FP48[C] {
	var r []*FP48[C]
	for i := params[C]().ATEBITS - 1; i >= 0; i-- {
		r = append(r, NewFP48int[C](1))
	}
	return r
}

// Another48 把 e(P1,Q1) 的 Miller 循环线函数累乘进 r，r[i] 对应第 i 位。
func Another48[C Curve](r []*FP48[C], P1 *ECP8[C], Q1 *ECP[C]) {
	if Q1.IsInfinity() || P1.IsInfinity() {
		return
	}
	n3, n := lbits[C]()
	P, NP, Qx, Qy := affinePair8(P1, Q1)
	A := NewECP8copy(P)

	nb := n3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		lv := line8(A, A, Qx, Qy)

		bt := n3.Bit(i) - n.Bit(i)
		if bt == 1 {
			lv2 := line8(A, P, Qx, Qy)
			lv.Smul(lv2)
		}
		if bt == -1 {
			lv2 := line8(A, NP, Qx, Qy)
			lv.Smul(lv2)
		}
		r[i].Mul(lv)
	}
}

/* Miller loop of the accumulated multi-pairing; r is reset to unity */
func Miller48[C Curve](r []*FP48[C]) *FP48[C] {
	res := NewFP48int[C](1)
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
func Ate48[C Curve](P1 *ECP8[C], Q1 *ECP[C]) *FP48[C] {
	if Q1.IsInfinity() || P1.IsInfinity() {
		return NewFP48int[C](1)
	}
	n3, n := lbits[C]()
	P, NP, Qx, Qy := affinePair8(P1, Q1)
	A := NewECP8copy(P)
	r := NewFP48int[C](1)

	nb := n3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		r.Sqr()
		lv := line8(A, A, Qx, Qy)

		bt := n3.Bit(i) - n.Bit(i)
		if bt == 1 {
			lv2 := line8(A, P, Qx, Qy)
			lv.Smul(lv2)
			r.Mul(lv)
		} else if bt == -1 {
			lv2 := line8(A, NP, Qx, Qy)
			lv.Smul(lv2)
			r.Mul(lv)
		} else {
			r.Smul(lv)
		}
	}

	if params[C]().rom.SignOfX == NEGATIVEX {
		r.Conj()
	}
	return r
}

/* Optimal R-ate double pairing e(P,Q).e(R,S) */
func Ate2_48[C Curve](P1 *ECP8[C], Q1 *ECP[C], R1 *ECP8[C], S1 *ECP[C]) *FP48[C] {
	r := Initmp48[C]()
	Another48(r, P1, Q1)
	Another48(r, R1, S1)
	return Miller48(r)
}

/* final exponentiation - keep separate for multi-pairings */
func Fexp48[C Curve](m *FP48[C]) *FP48[C] {
	p := params[C]()
	f := FP2_frob[C]()
	x := CurveBnx[C]()
	neg := p.rom.SignOfX == NEGATIVEX
	r := NewFP48copy(m)

	/* Easy part of final exp */
	lv := NewFP48copy(r)
	lv.Inverse()
	r.Conj()

	r.Mul(lv)
	lv.Copy(r)
	r.Frob(f, 8)
	r.Mul(lv)

	/* Hard part of final exp */
	// Ghamman & Fouotsa Method
	xh := NewBIGcopy(x)
	xh.Fshr(1)

	t7 := NewFP48copy(r)
	t7.Usqr()
	t1 := t7.Pow(x)
	t2 := t1.Pow(xh)
	if neg {
		t1.Conj()
	}
	t3 := NewFP48copy(t1)
	t3.Conj()
	t2.Mul(t3)
	t2.Mul(r)

	r.Mul(t7)

	t1 = t2.Pow(x)
	if neg {
		t1.Conj()
	}
	for j := 14; j >= 8; j-- {
		t3.Copy(t1)
		t3.Frob(f, j)
		r.Mul(t3)
		t1 = t1.Pow(x)
		if neg {
			t1.Conj()
		}
	}

	t3.Copy(t2)
	t3.Conj()
	t1.Mul(t3)
	for j := 7; j >= 1; j-- {
		t3.Copy(t1)
		t3.Frob(f, j)
		r.Mul(t3)
		t1 = t1.Pow(x)
		if neg {
			t1.Conj()
		}
	}

	r.Mul(t1)
	t2.Frob(f, 15)
	r.Mul(t2)

	r.Reduce()
	return r
}

/* Multiply P by e in group G2 */
func G2mul48[C Curve](P *ECP8[C], e *BIG[C]) *ECP8[C] {
	q := CurveOrder[C]()
	f := ECP8_frobConstants[C]()
	u := gsDigits(e, 16)

	Q := make([]*ECP8[C], 16)
	Q[0] = NewECP8copy(P)
	for i := 1; i < 16; i++ {
		Q[i] = NewECP8copy(Q[i-1])
		Q[i].Frob(f, 1)
	}
	for i := 0; i < 16; i++ {
		if shorten(u[i], q) == 1 {
			Q[i].Neg()
		}
	}
	return Mul16(Q, u)
}

/* f=f^e */
func GTpow48[C Curve](d *FP48[C], e *BIG[C]) *FP48[C] {
	q := CurveOrder[C]()
	f := FP2_frob[C]()
	u := gsDigits(e, 16)

	g := make([]*FP48[C], 16)
	g[0] = NewFP48copy(d)
	for i := 1; i < 16; i++ {
		g[i] = NewFP48copy(g[i-1])
		g[i].Frob(f, 1)
	}
	for i := 0; i < 16; i++ {
		if shorten(u[i], q) == 1 {
			g[i].Conj()
		}
	}
	return Pow16(g, u)
}

/* test group membership - no longer needs to check order */
func G2member48[C Curve](P *ECP8[C]) bool {
	if P.IsInfinity() {
		return false
	}
	p := params[C]()
	W := P.Mul(CurveBnx[C]())
	if p.rom.SignOfX == NEGATIVEX {
		W.Neg()
	}
	T := NewECP8copy(P)
	T.Frob(ECP8_frobConstants[C](), 1)
	return W.Equals(T)
}

/* test for full GT membership */
func GTmember48[C Curve](m *FP48[C]) bool {
	if m.IsUnity() {
		return false
	}
	r := NewFP48copy(m)
	r.Conj()
	r.Mul(m)
	if !r.IsUnity() {
		return false
	}

	f := FP2_frob[C]()
	r.Copy(m)
	r.Frob(f, 16)
	w := NewFP48copy(m)
	w.Frob(f, 8)
	r.Mul(m)
	if !w.Equals(r) {
		return false
	}

	w = m.Pow(CurveOrder[C]())
	return w.IsUnity()
}

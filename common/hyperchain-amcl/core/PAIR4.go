/* Optimal Ate pairing for embedding degree 24 (BLS24 curves) */

package core

// line4 计算 Miller 循环中过 A、B 两点（A==B 时为切线）的线函数在 Q=(Qx,Qy) 处的取值，并把 A 更新为 A+B。
// 结果是稀疏的 FP24：D 型扭曲只有 a、b 分量，M 型扭曲只有 a、c 分量。
func line4[C Curve](A *ECP4[C], B *ECP4[C], Qx *FP[C], Qy *FP[C]) *FP24[C] {
	var a, b, c *FP8[C]
	p := params[C]()
	dtype := p.rom.Twist == D_TYPE

	if A == B {
		XX := NewFP4copy(&A.x)
		YY := NewFP4copy(&A.y)
		ZZ := NewFP4copy(&A.z)
		YZ := NewFP4copy(&A.y)
		YZ.Mul(ZZ)
		XX.Sqr()
		YY.Sqr()
		ZZ.Sqr()

		YZ.Imul(4)
		YZ.Neg()
		YZ.Norm()
		YZ.Qmul(Qy)

		XX.Imul(6)
		XX.Qmul(Qx)

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

		a = NewFP8fp4s(YZ, ZZ)
		if dtype {
			b = NewFP8fp4(XX)
			c = NewFP8[C]()
		} else {
			b = NewFP8[C]()
			c = NewFP8fp4(XX)
			c.TimesI()
		}
		A.dbl()
	} else {
		X1 := NewFP4copy(&A.x)
		Y1 := NewFP4copy(&A.y)
		T1 := NewFP4copy(&A.z)
		T2 := NewFP4copy(&A.z)

		T1.Mul(&B.y)
		T2.Mul(&B.x)

		X1.Sub(T2)
		X1.Norm()
		Y1.Sub(T1)
		Y1.Norm()

		T1.Copy(X1)
		X1.Qmul(Qy)
		if !dtype {
			X1.TimesI()
			X1.Norm()
		}

		T1.Mul(&B.y)

		T2.Copy(Y1)
		T2.Mul(&B.x)
		T2.Sub(T1)
		T2.Norm()
		Y1.Qmul(Qx)
		Y1.Neg()
		Y1.Norm()

		a = NewFP8fp4s(X1, T2)
		if dtype {
			b = NewFP8fp4(Y1)
			c = NewFP8[C]()
		} else {
			b = NewFP8[C]()
			c = NewFP8fp4(Y1)
			c.TimesI()
		}
		A.add(B)
	}
	return NewFP24fp8s(a, b, c)
}

// affinePair4 返回仿射化后的 P、-P 以及 Q 的坐标。
func affinePair4[C Curve](P1 *ECP4[C], Q1 *ECP[C]) (*ECP4[C], *ECP4[C], *FP[C], *FP[C]) {
	P := NewECP4copy(P1)
	Q := NewECP[C]()
	Q.Copy(Q1)
	P.Affine()
	Q.Affine()
	NP := NewECP4copy(P)
	NP.Neg()
	return P, NP, NewFPcopy(&Q.x), NewFPcopy(&Q.y)
}

/* prepare for multi-pairing */
func Initmp24[C Curve]() []*FP24[C] {
	var r []*FP24[C]
	for i := params[C]().ATEBITS - 1; i >= 0; i-- {
		r = append(r, NewFP24int[C](1))
	}
	return r
}

// Another24 把 e(P1,Q1) 的 Miller 循环线函数累乘进 r，r[i] 对应第 i 位。
func Another24[C Curve](r []*FP24[C], P1 *ECP4[C], Q1 *ECP[C]) {
	if Q1.IsInfinity() || P1.IsInfinity() {
		return
	}
	n3, n := lbits[C]()
	P, NP, Qx, Qy := affinePair4(P1, Q1)
	A := NewECP4copy(P)

	nb := n3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		lv := line4(A, A, Qx, Qy)

		bt := n3.Bit(i) - n.Bit(i)
		if bt == 1 {
			lv2 := line4(A, P, Qx, Qy)
			lv.Smul(lv2)
		}
		if bt == -1 {
			lv2 := line4(A, NP, Qx, Qy)
			lv.Smul(lv2)
		}
		r[i].Mul(lv)
	}
}

/* Miller loop of the accumulated multi-pairing; r is reset to unity */
func Miller24[C Curve](r []*FP24[C]) *FP24[C] {
	res := NewFP24int[C](1)
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
func Ate24[C Curve](P1 *ECP4[C], Q1 *ECP[C]) *FP24[C] {
	if Q1.IsInfinity() || P1.IsInfinity() {
		return NewFP24int[C](1)
	}
	n3, n := lbits[C]()
	P, NP, Qx, Qy := affinePair4(P1, Q1)
	A := NewECP4copy(P)
	r := NewFP24int[C](1)

	nb := n3.Nbits()
	for i := nb - 2; i >= 1; i-- {
		r.Sqr()
		lv := line4(A, A, Qx, Qy)

		bt := n3.Bit(i) - n.Bit(i)
		if bt == 1 {
			lv2 := line4(A, P, Qx, Qy)
			lv.Smul(lv2)
			r.Mul(lv)
		} else if bt == -1 {
			lv2 := line4(A, NP, Qx, Qy)
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
func Ate2_24[C Curve](P1 *ECP4[C], Q1 *ECP[C], R1 *ECP4[C], S1 *ECP[C]) *FP24[C] {
	r := Initmp24[C]()
	Another24(r, P1, Q1)
	Another24(r, R1, S1)
	return Miller24(r)
}

/* final exponentiation - keep separate for multi-pairings */
func Fexp24[C Curve](m *FP24[C]) *FP24[C] {
	p := params[C]()
	f := FP2_frob[C]()
	x := CurveBnx[C]()
	neg := p.rom.SignOfX == NEGATIVEX
	r := NewFP24copy(m)

	/* Easy part of final exp */
	lv := NewFP24copy(r)
	lv.Inverse()
	r.Conj()

	r.Mul(lv)
	lv.Copy(r)
	r.Frob(f, 4)
	r.Mul(lv)

	/* Hard part of final exp */
	// Ghamman & Fouotsa Method
	xh := NewBIGcopy(x)
	xh.Fshr(1)

	t7 := NewFP24copy(r)
	t7.Usqr()
	t1 := t7.Pow(x)
	t2 := t1.Pow(xh)
	if neg {
		t1.Conj()
	}
	t3 := NewFP24copy(t1)
	t3.Conj()
	t2.Mul(t3)
	t2.Mul(r)

	t3 = t2.Pow(x)
	t4 := t3.Pow(x)
	t5 := t4.Pow(x)
	if neg {
		t3.Conj()
		t5.Conj()
	}

	t3.Frob(f, 6)
	t4.Frob(f, 5)
	t3.Mul(t4)

	t6 := t5.Pow(x)
	if neg {
		t6.Conj()
	}

	t5.Frob(f, 4)
	t3.Mul(t5)

	t0 := NewFP24copy(t2)
	t0.Conj()
	t6.Mul(t0)

	t5.Copy(t6)
	t5.Frob(f, 3)

	t3.Mul(t5)
	t5 = t6.Pow(x)
	t6 = t5.Pow(x)
	if neg {
		t5.Conj()
	}

	t0.Copy(t5)
	t0.Frob(f, 2)
	t3.Mul(t0)
	t0.Copy(t6)
	t0.Frob(f, 1)

	t3.Mul(t0)
	t5 = t6.Pow(x)
	if neg {
		t5.Conj()
	}

	t2.Frob(f, 7)

	t5.Mul(t7)
	t3.Mul(t2)
	t3.Mul(t5)

	r.Mul(t3)
	r.Reduce()
	return r
}

/* Multiply P by e in group G2 */
func G2mul24[C Curve](P *ECP4[C], e *BIG[C]) *ECP4[C] {
	q := CurveOrder[C]()
	f := ECP4_frobConstants[C]()
	u := gsDigits(e, 8)

	Q := make([]*ECP4[C], 8)
	Q[0] = NewECP4copy(P)
	for i := 1; i < 8; i++ {
		Q[i] = NewECP4copy(Q[i-1])
		Q[i].Frob(f, 1)
	}
	for i := 0; i < 8; i++ {
		if shorten(u[i], q) == 1 {
			Q[i].Neg()
		}
	}
	return Mul8(Q, u)
}

/* f=f^e */
func GTpow24[C Curve](d *FP24[C], e *BIG[C]) *FP24[C] {
	q := CurveOrder[C]()
	f := FP2_frob[C]()
	u := gsDigits(e, 8)

	g := make([]*FP24[C], 8)
	g[0] = NewFP24copy(d)
	for i := 1; i < 8; i++ {
		g[i] = NewFP24copy(g[i-1])
		g[i].Frob(f, 1)
	}
	for i := 0; i < 8; i++ {
		if shorten(u[i], q) == 1 {
			g[i].Conj()
		}
	}
	return Pow8(g, u)
}

/* test group membership - no longer needs to check order */
func G2member24[C Curve](P *ECP4[C]) bool {
	if P.IsInfinity() {
		return false
	}
	p := params[C]()
	W := P.Mul(CurveBnx[C]())
	if p.rom.SignOfX == NEGATIVEX {
		W.Neg()
	}
	T := NewECP4copy(P)
	T.Frob(ECP4_frobConstants[C](), 1)
	return W.Equals(T)
}

/* test for full GT membership */
func GTmember24[C Curve](m *FP24[C]) bool {
	if m.IsUnity() {
		return false
	}
	r := NewFP24copy(m)
	r.Conj()
	r.Mul(m)
	if !r.IsUnity() {
		return false
	}

	f := FP2_frob[C]()
	r.Copy(m)
	r.Frob(f, 8)
	w := NewFP24copy(m)
	w.Frob(f, 4)
	r.Mul(m)
	if !w.Equals(r) {
		return false
	}

	w = m.Pow(CurveOrder[C]())
	return w.IsUnity()
}

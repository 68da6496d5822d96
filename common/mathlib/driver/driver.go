// Package driver 定义 mathlib 的后端接口。一个后端提供一条配对友好曲线上的标量域 Zr、
// 群 G1、G2 和目标群 Gt 的实现，mathlib 在这些接口之上包装出与曲线无关的 API。
//
// 按照约定，New*FromBytes 在输入非法时 panic，由 mathlib 统一恢复成 error。
package driver

import "io"

type Curve interface {
	Name() string
	Pairing(G2, G1) Gt
	Pairing2(p2a, p2b G2, p1a, p1b G1) Gt
	FExp(Gt) Gt
	ModMul(a1, b1, m Zr) Zr
	ModNeg(a1, m Zr) Zr
	ModAdd(a, b, m Zr) Zr
	ModSub(a, b, m Zr) Zr
	GenG1() G1
	GenG2() G2
	GenGt() Gt
	GroupOrder() Zr
	FieldBytes() int
	NewG1() G1
	NewG2() G2
	NewG1FromCoords(ix, iy Zr) G1
	NewZrFromBytes(b []byte) Zr
	NewZrFromInt(i int64) Zr
	NewG1FromBytes(b []byte) G1
	NewG2FromBytes(b []byte) G2
	NewGtFromBytes(b []byte) Gt
	HashToZr(data []byte) Zr
	HashToG1(data []byte) G1
	NewRandomZr(rng io.Reader) Zr
	Rand() (io.Reader, error)
}

type Zr interface {
	Plus(Zr) Zr
	Mod(Zr)
	PowMod(Zr) Zr
	InvModP(Zr)
	Bytes() []byte
	Equals(Zr) bool
	Copy() Zr
	Clone(a Zr)
	String() string
}

type G1 interface {
	Clone(G1)
	Copy() G1
	Add(G1)
	Mul(Zr) G1
	Mul2(e Zr, Q G1, f Zr) G1
	Equals(G1) bool
	Bytes() []byte
	Sub(G1)
	IsInfinity() bool
	String() string
}

type G2 interface {
	Clone(G2)
	Copy() G2
	Mul(Zr) G2
	Add(G2)
	Sub(G2)
	Affine()
	Bytes() []byte
	String() string
	Equals(G2) bool
}

type Gt interface {
	Equals(Gt) bool
	Inverse()
	Mul(Gt)
	Exp(Zr) Gt
	IsUnity() bool
	ToString() string
	Bytes() []byte
}

// Package amcl 把 core 中嵌入度为 12 的曲线包装成 mathlib 的后端。
package amcl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/common/mathlib/driver"
	"github.com/11090815/pairing/vars"
)

/*********************************************************************/

type amclZr[C core.Curve] struct {
	*core.BIG[C]
}

func (b *amclZr[C]) Plus(a driver.Zr) driver.Zr {
	return &amclZr[C]{b.BIG.Plus(a.(*amclZr[C]).BIG)}
}

func (b *amclZr[C]) PowMod(x driver.Zr) driver.Zr {
	q := core.CurveOrder[C]()

	return &amclZr[C]{b.BIG.Powmod(x.(*amclZr[C]).BIG, q)}
}

func (b *amclZr[C]) Mod(a driver.Zr) {
	b.BIG.Mod(a.(*amclZr[C]).BIG)
}

// InvModP 的参数可能是秘密标量，所以走费马小定理而不是二进制 GCD。
func (b *amclZr[C]) InvModP(p driver.Zr) {
	b.BIG.InvmodPrime(p.(*amclZr[C]).BIG)
}

func (b *amclZr[C]) Bytes() []byte {
	return b.BIG.Bytes()
}

func (b *amclZr[C]) Equals(p driver.Zr) bool {
	return core.Comp(b.BIG, p.(*amclZr[C]).BIG) == 0
}

func (b *amclZr[C]) Copy() driver.Zr {
	return &amclZr[C]{core.NewBIGcopy(b.BIG)}
}

func (b *amclZr[C]) Clone(a driver.Zr) {
	c := a.Copy()
	b.BIG = c.(*amclZr[C]).BIG
}

func (b *amclZr[C]) String() string {
	s := strings.TrimLeft(b.BIG.ToString(), "0")
	if s == "" {
		return "0"
	}
	return s
}

/*********************************************************************/

type amclGt[C core.Curve] struct {
	*core.FP12[C]
}

func (a *amclGt[C]) Equals(b driver.Gt) bool {
	return a.FP12.Equals(b.(*amclGt[C]).FP12)
}

func (a *amclGt[C]) IsUnity() bool {
	return a.FP12.IsUnity()
}

func (a *amclGt[C]) Inverse() {
	a.FP12.Inverse()
}

func (a *amclGt[C]) Mul(b driver.Gt) {
	a.FP12.Mul(b.(*amclGt[C]).FP12)
}

func (a *amclGt[C]) Exp(x driver.Zr) driver.Gt {
	return &amclGt[C]{core.GTpow(a.FP12, x.(*amclZr[C]).BIG)}
}

func (a *amclGt[C]) ToString() string {
	return a.FP12.ToString()
}

func (a *amclGt[C]) Bytes() []byte {
	bytes := make([]byte, 12*modBytes[C]())
	a.FP12.ToBytes(bytes)
	return bytes
}

/*********************************************************************/

type amclG1[C core.Curve] struct {
	*core.ECP[C]
}

func (e *amclG1[C]) Clone(a driver.G1) {
	e.ECP.Copy(a.(*amclG1[C]).ECP)
}

func (e *amclG1[C]) Copy() driver.G1 {
	c := core.NewECP[C]()
	c.Copy(e.ECP)
	return &amclG1[C]{c}
}

func (e *amclG1[C]) Add(a driver.G1) {
	e.ECP.Add(a.(*amclG1[C]).ECP)
}

func (e *amclG1[C]) Sub(a driver.G1) {
	e.ECP.Sub(a.(*amclG1[C]).ECP)
}

func (e *amclG1[C]) Mul(a driver.Zr) driver.G1 {
	return &amclG1[C]{core.G1mul(e.ECP, a.(*amclZr[C]).BIG)}
}

func (e *amclG1[C]) Mul2(ee driver.Zr, Q driver.G1, f driver.Zr) driver.G1 {
	return &amclG1[C]{e.ECP.Mul2(ee.(*amclZr[C]).BIG, Q.(*amclG1[C]).ECP, f.(*amclZr[C]).BIG)}
}

func (e *amclG1[C]) Equals(a driver.G1) bool {
	return e.ECP.Equals(a.(*amclG1[C]).ECP)
}

func (e *amclG1[C]) IsInfinity() bool {
	return e.ECP.IsInfinity()
}

func (e *amclG1[C]) Bytes() []byte {
	b := make([]byte, 2*modBytes[C]()+1)
	e.ECP.ToBytes(b, false)
	return b
}

func (e *amclG1[C]) String() string {
	return e.ECP.ToString()
}

/*********************************************************************/

type amclG2[C core.Curve] struct {
	*core.ECP2[C]
}

func (e *amclG2[C]) Equals(a driver.G2) bool {
	return e.ECP2.Equals(a.(*amclG2[C]).ECP2)
}

func (e *amclG2[C]) Clone(a driver.G2) {
	e.ECP2.Copy(a.(*amclG2[C]).ECP2)
}

func (e *amclG2[C]) Copy() driver.G2 {
	return &amclG2[C]{core.NewECP2copy(e.ECP2)}
}

func (e *amclG2[C]) Add(a driver.G2) {
	e.ECP2.Add(a.(*amclG2[C]).ECP2)
}

func (e *amclG2[C]) Sub(a driver.G2) {
	e.ECP2.Sub(a.(*amclG2[C]).ECP2)
}

func (e *amclG2[C]) Mul(a driver.Zr) driver.G2 {
	return &amclG2[C]{core.G2mul(e.ECP2, a.(*amclZr[C]).BIG)}
}

func (e *amclG2[C]) Affine() {
	e.ECP2.Affine()
}

func (e *amclG2[C]) Bytes() []byte {
	b := make([]byte, 4*modBytes[C]())
	e.ECP2.ToBytes(b)
	return b
}

func (e *amclG2[C]) String() string {
	return e.ECP2.ToString()
}

/*********************************************************************/

// Curve 是曲线 C 上的 mathlib 后端。miracl 为真时沿用早期 MIRACL 版本的行为：
// 哈希到 G1 先哈希到 Zr 再逐个尝试 x 坐标，随机源直接使用 crypto/rand。
type Curve[C core.Curve] struct {
	miracl bool
	dst    []byte
}

// NewCurve 返回默认后端：哈希到 G1 使用 expand_message_xmd，随机源是以 crypto/rand 播种的 amcl.RAND。
func NewCurve[C core.Curve]() *Curve[C] {
	name := params[C]().Name()
	return &Curve[C]{dst: []byte("MATHLIB_" + name + "G1_XMD:SHA-256_TAI_RO_")}
}

// NewMiraclCurve 返回与 MIRACL 版 idemix 兼容的后端。
func NewMiraclCurve[C core.Curve]() *Curve[C] {
	return &Curve[C]{miracl: true}
}

func params[C core.Curve]() *core.Params {
	var c C
	return c.Params()
}

func modBytes[C core.Curve]() int {
	return params[C]().ModBytes()
}

func (*Curve[C]) Name() string {
	return params[C]().Name()
}

func (*Curve[C]) Pairing(a driver.G2, b driver.G1) driver.Gt {
	return &amclGt[C]{core.Ate(a.(*amclG2[C]).ECP2, b.(*amclG1[C]).ECP)}
}

func (*Curve[C]) Pairing2(p2a, p2b driver.G2, p1a, p1b driver.G1) driver.Gt {
	return &amclGt[C]{core.Ate2(p2a.(*amclG2[C]).ECP2, p1a.(*amclG1[C]).ECP, p2b.(*amclG2[C]).ECP2, p1b.(*amclG1[C]).ECP)}
}

func (*Curve[C]) FExp(e driver.Gt) driver.Gt {
	return &amclGt[C]{core.Fexp(e.(*amclGt[C]).FP12)}
}

func (*Curve[C]) ModMul(a1, b1, m driver.Zr) driver.Zr {
	return &amclZr[C]{core.Modmul(a1.(*amclZr[C]).BIG, b1.(*amclZr[C]).BIG, m.(*amclZr[C]).BIG)}
}

func (*Curve[C]) ModNeg(a1, m driver.Zr) driver.Zr {
	return &amclZr[C]{core.Modneg(a1.(*amclZr[C]).BIG, m.(*amclZr[C]).BIG)}
}

func (*Curve[C]) ModAdd(a, b, m driver.Zr) driver.Zr {
	return &amclZr[C]{core.Modadd(a.(*amclZr[C]).BIG, b.(*amclZr[C]).BIG, m.(*amclZr[C]).BIG)}
}

func (p *Curve[C]) ModSub(a, b, m driver.Zr) driver.Zr {
	return p.ModAdd(a, p.ModNeg(b, m), m)
}

func (*Curve[C]) GenG1() driver.G1 {
	return &amclG1[C]{core.ECP_generator[C]()}
}

func (*Curve[C]) GenG2() driver.G2 {
	return &amclG2[C]{core.ECP2_generator[C]()}
}

func (p *Curve[C]) GenGt() driver.Gt {
	return &amclGt[C]{core.Fexp(core.Ate(core.ECP2_generator[C](), core.ECP_generator[C]()))}
}

func (*Curve[C]) GroupOrder() driver.Zr {
	return &amclZr[C]{core.CurveOrder[C]()}
}

func (*Curve[C]) FieldBytes() int {
	return modBytes[C]()
}

func (*Curve[C]) NewG1() driver.G1 {
	return &amclG1[C]{core.NewECP[C]()}
}

func (*Curve[C]) NewG2() driver.G2 {
	return &amclG2[C]{core.NewECP2[C]()}
}

func (*Curve[C]) NewG1FromCoords(ix, iy driver.Zr) driver.G1 {
	return &amclG1[C]{core.NewECPbigs(ix.(*amclZr[C]).BIG, iy.(*amclZr[C]).BIG)}
}

func (*Curve[C]) NewZrFromBytes(b []byte) driver.Zr {
	return &amclZr[C]{core.FromBytes[C](b)}
}

// NewZrFromInt 把负数映射为 r - |i|。
func (*Curve[C]) NewZrFromInt(i int64) driver.Zr {
	mb := modBytes[C]()
	abs := uint64(i)
	if i < 0 {
		abs = uint64(-i)
	}
	b := make([]byte, mb)
	binary.BigEndian.PutUint64(b[mb-8:], abs)
	zr := core.FromBytes[C](b)
	if i < 0 {
		zr = core.Modneg(zr, core.CurveOrder[C]())
	}
	return &amclZr[C]{zr}
}

func (*Curve[C]) NewG1FromBytes(b []byte) driver.G1 {
	P, err := core.ECP_fromBytesChecked[C](b)
	if err != nil {
		panic(err)
	}
	return &amclG1[C]{P}
}

func (*Curve[C]) NewG2FromBytes(b []byte) driver.G2 {
	P, err := core.ECP2_fromBytesChecked[C](b)
	if err != nil {
		panic(err)
	}
	return &amclG2[C]{P}
}

func (*Curve[C]) NewGtFromBytes(b []byte) driver.Gt {
	if want := 12 * modBytes[C](); len(b) != want {
		panic(vars.ErrorInvalidLength{Kind: params[C]().Name() + " GT element", Want: want, Got: len(b)})
	}
	return &amclGt[C]{core.FP12_fromBytes[C](b)}
}

func (*Curve[C]) HashToZr(data []byte) driver.Zr {
	digest := sha256.Sum256(data)
	digestBig := core.DBIG_fromBytes[C](digest[:]).Mod(core.CurveOrder[C]())
	return &amclZr[C]{digestBig}
}

func (p *Curve[C]) HashToG1(data []byte) driver.G1 {
	if p.miracl {
		zr := p.HashToZr(data)
		P := core.ECP_hap2point(zr.(*amclZr[C]).BIG)
		P.Cfp()
		return &amclG1[C]{P}
	}

	L := (core.Modulus[C]().Nbits() + 128 + 7) / 8
	okm := amcl.XMDExpand(amcl.MC_SHA2, amcl.SHA256, 2*L, p.dst, data)
	P := core.ECP_mapit[C](okm[:L])
	P.Add(core.ECP_mapit[C](okm[L:]))
	P.Affine()
	return &amclG1[C]{P}
}

func (p *Curve[C]) Rand() (io.Reader, error) {
	if p.miracl {
		return rand.Reader, nil
	}

	seedLength := 32
	b := make([]byte, seedLength)
	_, err := rand.Read(b)
	if err != nil {
		return nil, fmt.Errorf("error getting randomness for seed: [%s]", err.Error())
	}
	rng := amcl.NewRAND()
	rng.Clean()
	rng.Seed(seedLength, b)
	return rng, nil
}

func (p *Curve[C]) NewRandomZr(rng io.Reader) driver.Zr {
	q := core.CurveOrder[C]()

	return &amclZr[C]{core.Randomnum(q, rng)}
}

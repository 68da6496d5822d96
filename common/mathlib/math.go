// Package mathlib 在多个配对后端之上提供统一的群运算 API：标量 Zr、群元素 G1、G2 与目标群 Gt。
// 每条曲线由 Curves 中的一个 Curve 表示，以 CurveID 为下标。
package mathlib

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS381"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS383"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BN254"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/FP256BN"
	"github.com/11090815/pairing/common/mathlib/driver"
	"github.com/11090815/pairing/common/mathlib/driver/amcl"
	"github.com/11090815/pairing/common/mathlib/driver/gurvy"
	"github.com/11090815/pairing/vars"
)

var logger = hlogging.MustGetLogger("mathlib")

type CurveID int

const (
	FP256BN_AMCL CurveID = iota
	BN254_AMCL
	BLS12_381_AMCL
	BLS12_383_AMCL
	BN254_GURVY
	BLS12_381_GURVY
	FP256BN_AMCL_MIRACL
)

var curveNames = map[CurveID]string{
	FP256BN_AMCL:        "FP256BN_AMCL",
	BN254_AMCL:          "BN254_AMCL",
	BLS12_381_AMCL:      "BLS12_381_AMCL",
	BLS12_383_AMCL:      "BLS12_383_AMCL",
	BN254_GURVY:         "BN254_GURVY",
	BLS12_381_GURVY:     "BLS12_381_GURVY",
	FP256BN_AMCL_MIRACL: "FP256BN_AMCL_MIRACL",
}

func (id CurveID) String() string {
	if name, ok := curveNames[id]; ok {
		return name
	}
	return fmt.Sprintf("CurveID(%d)", int(id))
}

var Curves []*Curve = []*Curve{
	NewCurve(amcl.NewCurve[fp256bn.Curve](), FP256BN_AMCL),
	NewCurve(amcl.NewCurve[bn254.Curve](), BN254_AMCL),
	NewCurve(amcl.NewCurve[bls381.Curve](), BLS12_381_AMCL),
	NewCurve(amcl.NewCurve[bls383.Curve](), BLS12_383_AMCL),
	NewCurve(gurvy.NewBn254(), BN254_GURVY),
	NewCurve(gurvy.NewBls12_381(), BLS12_381_GURVY),
	NewCurve(amcl.NewMiraclCurve[fp256bn.Curve](), FP256BN_AMCL_MIRACL),
}

// CurveByName 按 CurveID 的名字查找曲线，例如 "BN254_GURVY"。
func CurveByName(name string) (*Curve, error) {
	for _, c := range Curves {
		if c.curveID.String() == name {
			return c, nil
		}
	}
	return nil, vars.ErrorUnknownCurve{Name: name}
}

/*********************************************************************/

type Zr struct {
	zr      driver.Zr
	curveID CurveID
}

func (z *Zr) Plus(a *Zr) *Zr {
	return &Zr{zr: z.zr.Plus(a.zr), curveID: z.curveID}
}

func (z *Zr) Mod(a *Zr) {
	z.zr.Mod(a.zr)
}

func (z *Zr) PowMod(a *Zr) *Zr {
	return &Zr{zr: z.zr.PowMod(a.zr), curveID: z.curveID}
}

func (z *Zr) InvModP(a *Zr) {
	z.zr.InvModP(a.zr)
}

func (z *Zr) Bytes() []byte {
	return z.zr.Bytes()
}

func (z *Zr) Equals(a *Zr) bool {
	return z.zr.Equals(a.zr)
}

func (z *Zr) Copy() *Zr {
	return &Zr{zr: z.zr.Copy(), curveID: z.curveID}
}

func (z *Zr) Clone(a *Zr) {
	z.zr.Clone(a.zr)
}

func (z *Zr) String() string {
	return z.zr.String()
}

func (z *Zr) CurveID() CurveID {
	return z.curveID
}

// Int 把标量解释成有符号 64 位整数：r - v 较小时视为负数 -(r - v)。
func (z *Zr) Int() (int64, error) {
	c := Curves[z.curveID]
	b := z.Bytes()
	n := len(b)
	if bytes.Equal(make([]byte, n-8), b[:n-8]) && b[n-8]&0x80 == 0 {
		return int64(binary.BigEndian.Uint64(b[n-8:])), nil
	}
	neg := c.ModNeg(z, c.GroupOrder).Bytes()
	if bytes.Equal(make([]byte, n-8), neg[:n-8]) && neg[n-8]&0x80 == 0 {
		return -int64(binary.BigEndian.Uint64(neg[n-8:])), nil
	}
	return 0, fmt.Errorf("scalar %s out of int64 range", z.String())
}

/*********************************************************************/

type G1 struct {
	g1      driver.G1
	curveID CurveID
}

func (g *G1) Clone(a *G1) {
	g.g1.Clone(a.g1)
}

func (g *G1) Copy() *G1 {
	return &G1{g1: g.g1.Copy(), curveID: g.curveID}
}

func (g *G1) Add(a *G1) {
	g.g1.Add(a.g1)
}

func (g *G1) Mul(a *Zr) *G1 {
	return &G1{g1: g.g1.Mul(a.zr), curveID: g.curveID}
}

func (g *G1) Mul2(e *Zr, Q *G1, f *Zr) *G1 {
	return &G1{g1: g.g1.Mul2(e.zr, Q.g1, f.zr), curveID: g.curveID}
}

func (g *G1) Equals(a *G1) bool {
	return g.g1.Equals(a.g1)
}

func (g *G1) Bytes() []byte {
	return g.g1.Bytes()
}

func (g *G1) Sub(a *G1) {
	g.g1.Sub(a.g1)
}

func (g *G1) IsInfinity() bool {
	return g.g1.IsInfinity()
}

func (g *G1) String() string {
	return g.g1.String()
}

/*********************************************************************/

type G2 struct {
	g2      driver.G2
	curveID CurveID
}

func (g *G2) Clone(a *G2) {
	g.g2.Clone(a.g2)
}

func (g *G2) Copy() *G2 {
	return &G2{g2: g.g2.Copy(), curveID: g.curveID}
}

func (g *G2) Mul(a *Zr) *G2 {
	return &G2{g2: g.g2.Mul(a.zr), curveID: g.curveID}
}

func (g *G2) Add(a *G2) {
	g.g2.Add(a.g2)
}

func (g *G2) Sub(a *G2) {
	g.g2.Sub(a.g2)
}

func (g *G2) Affine() {
	g.g2.Affine()
}

func (g *G2) Bytes() []byte {
	return g.g2.Bytes()
}

func (g *G2) String() string {
	return g.g2.String()
}

func (g *G2) Equals(a *G2) bool {
	return g.g2.Equals(a.g2)
}

/*********************************************************************/

type Gt struct {
	gt      driver.Gt
	curveID CurveID
}

func (g *Gt) Equals(a *Gt) bool {
	return g.gt.Equals(a.gt)
}

func (g *Gt) Inverse() {
	g.gt.Inverse()
}

func (g *Gt) Mul(a *Gt) {
	g.gt.Mul(a.gt)
}

func (g *Gt) Exp(x *Zr) *Gt {
	return &Gt{gt: g.gt.Exp(x.zr), curveID: g.curveID}
}

func (g *Gt) IsUnity() bool {
	return g.gt.IsUnity()
}

func (g *Gt) String() string {
	return g.gt.ToString()
}

func (g *Gt) Bytes() []byte {
	return g.gt.Bytes()
}

/*********************************************************************/

type Curve struct {
	c          driver.Curve
	GenG1      *G1
	GenG2      *G2
	GenGt      *Gt
	GroupOrder *Zr
	FieldBytes int
	curveID    CurveID
}

// NewCurve 用后端 c 构造一条曲线，生成元和群阶在这里一次性算好。
func NewCurve(c driver.Curve, id CurveID) *Curve {
	if c == nil {
		panic(vars.ErrorShouldNotBeNil{Type: reflect.TypeOf((*driver.Curve)(nil)).Elem()})
	}
	curve := &Curve{
		c:          c,
		GenG1:      &G1{g1: c.GenG1(), curveID: id},
		GenG2:      &G2{g2: c.GenG2(), curveID: id},
		GenGt:      &Gt{gt: c.GenGt(), curveID: id},
		GroupOrder: &Zr{zr: c.GroupOrder(), curveID: id},
		FieldBytes: c.FieldBytes(),
		curveID:    id,
	}
	logger.Debugf("Registered curve %s backed by %s, field size %d bytes.", id, c.Name(), curve.FieldBytes)
	return curve
}

func (c *Curve) ID() CurveID {
	return c.curveID
}

func (c *Curve) Name() string {
	return c.curveID.String()
}

func (c *Curve) Rand() (io.Reader, error) {
	return c.c.Rand()
}

func (c *Curve) NewRandomZr(rng io.Reader) *Zr {
	return &Zr{zr: c.c.NewRandomZr(rng), curveID: c.curveID}
}

func (c *Curve) NewZrFromBytes(b []byte) *Zr {
	return &Zr{zr: c.c.NewZrFromBytes(b), curveID: c.curveID}
}

func (c *Curve) NewG1FromBytes(b []byte) (p *G1, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = vars.NewPathError(fmt.Sprintf("failed decoding G1 element [%v]", r))
			p = nil
		}
	}()

	p = &G1{g1: c.c.NewG1FromBytes(b), curveID: c.curveID}
	return
}

func (c *Curve) NewG2FromBytes(b []byte) (p *G2, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = vars.NewPathError(fmt.Sprintf("failed decoding G2 element [%v]", r))
			p = nil
		}
	}()

	p = &G2{g2: c.c.NewG2FromBytes(b), curveID: c.curveID}
	return
}

func (c *Curve) NewGtFromBytes(b []byte) (p *Gt, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = vars.NewPathError(fmt.Sprintf("failed decoding Gt element [%v]", r))
			p = nil
		}
	}()

	p = &Gt{gt: c.c.NewGtFromBytes(b), curveID: c.curveID}
	return
}

func (c *Curve) NewZrFromInt(i int64) *Zr {
	return &Zr{zr: c.c.NewZrFromInt(i), curveID: c.curveID}
}

func (c *Curve) NewG1FromCoords(ix, iy *Zr) *G1 {
	return &G1{g1: c.c.NewG1FromCoords(ix.zr, iy.zr), curveID: c.curveID}
}

func (c *Curve) NewG2() *G2 {
	return &G2{g2: c.c.NewG2(), curveID: c.curveID}
}

func (c *Curve) NewG1() *G1 {
	return &G1{g1: c.c.NewG1(), curveID: c.curveID}
}

func (c *Curve) Pairing(a *G2, b *G1) *Gt {
	return &Gt{gt: c.c.Pairing(a.g2, b.g1), curveID: c.curveID}
}

func (c *Curve) Pairing2(p *G2, q *G1, r *G2, s *G1) *Gt {
	return &Gt{gt: c.c.Pairing2(p.g2, r.g2, q.g1, s.g1), curveID: c.curveID}
}

func (c *Curve) FExp(a *Gt) *Gt {
	return &Gt{gt: c.c.FExp(a.gt), curveID: c.curveID}
}

func (c *Curve) HashToZr(data []byte) *Zr {
	return &Zr{zr: c.c.HashToZr(data), curveID: c.curveID}
}

func (c *Curve) HashToG1(data []byte) *G1 {
	return &G1{g1: c.c.HashToG1(data), curveID: c.curveID}
}

func (c *Curve) ModSub(a, b, m *Zr) *Zr {
	return &Zr{zr: c.c.ModSub(a.zr, b.zr, m.zr), curveID: c.curveID}
}

func (c *Curve) ModAdd(a, b, m *Zr) *Zr {
	return &Zr{zr: c.c.ModAdd(a.zr, b.zr, m.zr), curveID: c.curveID}
}

func (c *Curve) ModMul(a1, b1, m *Zr) *Zr {
	return &Zr{zr: c.c.ModMul(a1.zr, b1.zr, m.zr), curveID: c.curveID}
}

func (c *Curve) ModNeg(a1, m *Zr) *Zr {
	return &Zr{zr: c.c.ModNeg(a1.zr, m.zr), curveID: c.curveID}
}

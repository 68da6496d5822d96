// Package gurvy 在 gnark-crypto 之上实现 mathlib 的后端。
package gurvy

import (
	"fmt"

	"github.com/11090815/pairing/common/mathlib/driver"
	"github.com/11090815/pairing/common/mathlib/driver/common"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

/*********************************************************************/

type bn254G1 struct {
	bn254.G1Affine
}

func (g *bn254G1) Clone(a driver.G1) {
	g.Set(&a.(*bn254G1).G1Affine)
}

func (g *bn254G1) Copy() driver.G1 {
	c := &bn254G1{}
	c.Set(&g.G1Affine)
	return c
}

func (g *bn254G1) Add(a driver.G1) {
	j := bn254.G1Jac{}
	j.FromAffine(&g.G1Affine)
	j.AddMixed(&a.(*bn254G1).G1Affine)
	g.G1Affine.FromJacobian(&j)
}

func (g *bn254G1) Mul(a driver.Zr) driver.G1 {
	res := &bn254G1{}
	res.G1Affine.ScalarMultiplication(&g.G1Affine, &a.(*common.BaseZr).Int)

	return res
}

func (g *bn254G1) Mul2(e driver.Zr, Q driver.G1, f driver.Zr) driver.G1 {
	a := g.Mul(e)
	b := Q.Mul(f)
	a.Add(b)

	return a
}

func (g *bn254G1) Equals(a driver.G1) bool {
	return g.G1Affine.Equal(&a.(*bn254G1).G1Affine)
}

func (g *bn254G1) Bytes() []byte {
	raw := g.G1Affine.RawBytes()
	return raw[:]
}

func (g *bn254G1) Sub(a driver.G1) {
	j, k := bn254.G1Jac{}, bn254.G1Jac{}
	j.FromAffine(&g.G1Affine)
	k.FromAffine(&a.(*bn254G1).G1Affine)
	j.SubAssign(&k)
	g.G1Affine.FromJacobian(&j)
}

func (g *bn254G1) IsInfinity() bool {
	return g.G1Affine.IsInfinity()
}

func (g *bn254G1) String() string {
	return g.G1Affine.String()
}

/*********************************************************************/

type bn254G2 struct {
	bn254.G2Affine
}

func (g *bn254G2) Clone(a driver.G2) {
	g.Set(&a.(*bn254G2).G2Affine)
}

func (g *bn254G2) Copy() driver.G2 {
	c := &bn254G2{}
	c.Set(&g.G2Affine)
	return c
}

func (g *bn254G2) Mul(a driver.Zr) driver.G2 {
	gc := &bn254G2{}
	gc.G2Affine.ScalarMultiplication(&g.G2Affine, &a.(*common.BaseZr).Int)

	return gc
}

func (g *bn254G2) Add(a driver.G2) {
	j := bn254.G2Jac{}
	j.FromAffine(&g.G2Affine)
	j.AddMixed(&a.(*bn254G2).G2Affine)
	g.G2Affine.FromJacobian(&j)
}

func (g *bn254G2) Sub(a driver.G2) {
	j, k := bn254.G2Jac{}, bn254.G2Jac{}
	j.FromAffine(&g.G2Affine)
	k.FromAffine(&a.(*bn254G2).G2Affine)
	j.SubAssign(&k)
	g.G2Affine.FromJacobian(&j)
}

func (g *bn254G2) Affine() {
	// we're always affine
}

func (g *bn254G2) Bytes() []byte {
	raw := g.G2Affine.RawBytes()
	return raw[:]
}

func (g *bn254G2) String() string {
	return g.G2Affine.String()
}

func (g *bn254G2) Equals(a driver.G2) bool {
	return g.G2Affine.Equal(&a.(*bn254G2).G2Affine)
}

/*********************************************************************/

type bn254Gt struct {
	bn254.GT
}

func (g *bn254Gt) Exp(x driver.Zr) driver.Gt {
	res := bn254.GT{}
	return &bn254Gt{*res.Exp(g.GT, &x.(*common.BaseZr).Int)}
}

func (g *bn254Gt) Equals(a driver.Gt) bool {
	return g.GT.Equal(&a.(*bn254Gt).GT)
}

func (g *bn254Gt) Inverse() {
	g.GT.Inverse(&g.GT)
}

func (g *bn254Gt) Mul(a driver.Gt) {
	g.GT.Mul(&g.GT, &a.(*bn254Gt).GT)
}

func (g *bn254Gt) IsUnity() bool {
	unity := bn254.GT{}
	unity.SetOne()

	return unity.Equal(&g.GT)
}

func (g *bn254Gt) ToString() string {
	return g.GT.String()
}

func (g *bn254Gt) Bytes() []byte {
	raw := g.GT.Bytes()
	return raw[:]
}

/*********************************************************************/

func NewBn254() *Bn254 {
	return &Bn254{CurveBase: common.CurveBase{Modulus: *fr.Modulus()}}
}

type Bn254 struct {
	common.CurveBase
}

func (c *Bn254) Name() string {
	return "BN254"
}

func (c *Bn254) Pairing(p2 driver.G2, p1 driver.G1) driver.Gt {
	t, err := bn254.MillerLoop([]bn254.G1Affine{p1.(*bn254G1).G1Affine}, []bn254.G2Affine{p2.(*bn254G2).G2Affine})
	if err != nil {
		panic(fmt.Sprintf("pairing failed [%s]", err.Error()))
	}

	return &bn254Gt{t}
}

func (c *Bn254) Pairing2(p2a, p2b driver.G2, p1a, p1b driver.G1) driver.Gt {
	t, err := bn254.MillerLoop([]bn254.G1Affine{p1a.(*bn254G1).G1Affine, p1b.(*bn254G1).G1Affine}, []bn254.G2Affine{p2a.(*bn254G2).G2Affine, p2b.(*bn254G2).G2Affine})
	if err != nil {
		panic(fmt.Sprintf("pairing 2 failed [%s]", err.Error()))
	}

	return &bn254Gt{t}
}

func (c *Bn254) FExp(a driver.Gt) driver.Gt {
	return &bn254Gt{bn254.FinalExponentiation(&a.(*bn254Gt).GT)}
}

func (c *Bn254) GenG1() driver.G1 {
	_, _, g1, _ := bn254.Generators()
	return &bn254G1{g1}
}

func (c *Bn254) GenG2() driver.G2 {
	_, _, _, g2 := bn254.Generators()
	return &bn254G2{g2}
}

func (c *Bn254) GenGt() driver.Gt {
	return c.FExp(c.Pairing(c.GenG2(), c.GenG1()))
}

func (c *Bn254) FieldBytes() int {
	return bn254.SizeOfG1AffineCompressed
}

func (c *Bn254) NewG1() driver.G1 {
	return &bn254G1{}
}

func (c *Bn254) NewG2() driver.G2 {
	return &bn254G2{}
}

func (c *Bn254) NewG1FromCoords(ix, iy driver.Zr) driver.G1 {
	v := &bn254G1{}
	v.X.SetBigInt(&ix.(*common.BaseZr).Int)
	v.Y.SetBigInt(&iy.(*common.BaseZr).Int)
	return v
}

func (c *Bn254) NewG1FromBytes(b []byte) driver.G1 {
	v := &bn254G1{}
	_, err := v.SetBytes(b)
	if err != nil {
		panic(fmt.Sprintf("set bytes failed [%s]", err.Error()))
	}

	return v
}

func (c *Bn254) NewG2FromBytes(b []byte) driver.G2 {
	v := &bn254G2{}
	_, err := v.SetBytes(b)
	if err != nil {
		panic(fmt.Sprintf("set bytes failed [%s]", err.Error()))
	}

	return v
}

func (c *Bn254) NewGtFromBytes(b []byte) driver.Gt {
	v := &bn254Gt{}
	err := v.SetBytes(b)
	if err != nil {
		panic(fmt.Sprintf("set bytes failed [%s]", err.Error()))
	}

	return v
}

var bn254DST = []byte("MATHLIB_BN254G1_XMD:SHA-256_SVDW_RO_")

func (c *Bn254) HashToG1(data []byte) driver.G1 {
	g1, err := bn254.HashToG1(data, bn254DST)
	if err != nil {
		panic(fmt.Sprintf("HashToG1 failed [%s]", err.Error()))
	}

	return &bn254G1{g1}
}

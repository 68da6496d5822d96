package gurvy

import (
	"fmt"

	"github.com/11090815/pairing/common/mathlib/driver"
	"github.com/11090815/pairing/common/mathlib/driver/common"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

/*********************************************************************/

type bls12381G1 struct {
	bls12381.G1Affine
}

func (g *bls12381G1) Clone(a driver.G1) {
	g.Set(&a.(*bls12381G1).G1Affine)
}

func (g *bls12381G1) Copy() driver.G1 {
	c := &bls12381G1{}
	c.Set(&g.G1Affine)
	return c
}

func (g *bls12381G1) Add(a driver.G1) {
	j := bls12381.G1Jac{}
	j.FromAffine(&g.G1Affine)
	j.AddMixed(&a.(*bls12381G1).G1Affine)
	g.G1Affine.FromJacobian(&j)
}

func (g *bls12381G1) Mul(a driver.Zr) driver.G1 {
	res := &bls12381G1{}
	res.G1Affine.ScalarMultiplication(&g.G1Affine, &a.(*common.BaseZr).Int)

	return res
}

func (g *bls12381G1) Mul2(e driver.Zr, Q driver.G1, f driver.Zr) driver.G1 {
	a := g.Mul(e)
	b := Q.Mul(f)
	a.Add(b)

	return a
}

func (g *bls12381G1) Equals(a driver.G1) bool {
	return g.G1Affine.Equal(&a.(*bls12381G1).G1Affine)
}

func (g *bls12381G1) Bytes() []byte {
	raw := g.G1Affine.RawBytes()
	return raw[:]
}

func (g *bls12381G1) Sub(a driver.G1) {
	j, k := bls12381.G1Jac{}, bls12381.G1Jac{}
	j.FromAffine(&g.G1Affine)
	k.FromAffine(&a.(*bls12381G1).G1Affine)
	j.SubAssign(&k)
	g.G1Affine.FromJacobian(&j)
}

func (g *bls12381G1) IsInfinity() bool {
	return g.G1Affine.IsInfinity()
}

func (g *bls12381G1) String() string {
	return g.G1Affine.String()
}

/*********************************************************************/

type bls12381G2 struct {
	bls12381.G2Affine
}

func (g *bls12381G2) Clone(a driver.G2) {
	g.Set(&a.(*bls12381G2).G2Affine)
}

func (g *bls12381G2) Copy() driver.G2 {
	c := &bls12381G2{}
	c.Set(&g.G2Affine)
	return c
}

func (g *bls12381G2) Mul(a driver.Zr) driver.G2 {
	gc := &bls12381G2{}
	gc.G2Affine.ScalarMultiplication(&g.G2Affine, &a.(*common.BaseZr).Int)

	return gc
}

func (g *bls12381G2) Add(a driver.G2) {
	j := bls12381.G2Jac{}
	j.FromAffine(&g.G2Affine)
	j.AddMixed(&a.(*bls12381G2).G2Affine)
	g.G2Affine.FromJacobian(&j)
}

func (g *bls12381G2) Sub(a driver.G2) {
	j, k := bls12381.G2Jac{}, bls12381.G2Jac{}
	j.FromAffine(&g.G2Affine)
	k.FromAffine(&a.(*bls12381G2).G2Affine)
	j.SubAssign(&k)
	g.G2Affine.FromJacobian(&j)
}

func (g *bls12381G2) Affine() {
	// we're always affine
}

func (g *bls12381G2) Bytes() []byte {
	raw := g.G2Affine.RawBytes()
	return raw[:]
}

func (g *bls12381G2) String() string {
	return g.G2Affine.String()
}

func (g *bls12381G2) Equals(a driver.G2) bool {
	return g.G2Affine.Equal(&a.(*bls12381G2).G2Affine)
}

/*********************************************************************/

type bls12381Gt struct {
	bls12381.GT
}

func (g *bls12381Gt) Exp(x driver.Zr) driver.Gt {
	res := bls12381.GT{}
	return &bls12381Gt{*res.Exp(g.GT, &x.(*common.BaseZr).Int)}
}

func (g *bls12381Gt) Equals(a driver.Gt) bool {
	return g.GT.Equal(&a.(*bls12381Gt).GT)
}

func (g *bls12381Gt) Inverse() {
	g.GT.Inverse(&g.GT)
}

func (g *bls12381Gt) Mul(a driver.Gt) {
	g.GT.Mul(&g.GT, &a.(*bls12381Gt).GT)
}

func (g *bls12381Gt) IsUnity() bool {
	unity := bls12381.GT{}
	unity.SetOne()

	return unity.Equal(&g.GT)
}

func (g *bls12381Gt) ToString() string {
	return g.GT.String()
}

func (g *bls12381Gt) Bytes() []byte {
	raw := g.GT.Bytes()
	return raw[:]
}

/*********************************************************************/

func NewBls12_381() *Bls12_381 {
	return &Bls12_381{CurveBase: common.CurveBase{Modulus: *fr.Modulus()}}
}

type Bls12_381 struct {
	common.CurveBase
}

func (c *Bls12_381) Name() string {
	return "BLS12381"
}

func (c *Bls12_381) Pairing(p2 driver.G2, p1 driver.G1) driver.Gt {
	t, err := bls12381.MillerLoop([]bls12381.G1Affine{p1.(*bls12381G1).G1Affine}, []bls12381.G2Affine{p2.(*bls12381G2).G2Affine})
	if err != nil {
		panic(fmt.Sprintf("pairing failed [%s]", err.Error()))
	}

	return &bls12381Gt{t}
}

func (c *Bls12_381) Pairing2(p2a, p2b driver.G2, p1a, p1b driver.G1) driver.Gt {
	t, err := bls12381.MillerLoop([]bls12381.G1Affine{p1a.(*bls12381G1).G1Affine, p1b.(*bls12381G1).G1Affine}, []bls12381.G2Affine{p2a.(*bls12381G2).G2Affine, p2b.(*bls12381G2).G2Affine})
	if err != nil {
		panic(fmt.Sprintf("pairing 2 failed [%s]", err.Error()))
	}

	return &bls12381Gt{t}
}

func (c *Bls12_381) FExp(a driver.Gt) driver.Gt {
	return &bls12381Gt{bls12381.FinalExponentiation(&a.(*bls12381Gt).GT)}
}

func (c *Bls12_381) GenG1() driver.G1 {
	_, _, g1, _ := bls12381.Generators()
	return &bls12381G1{g1}
}

func (c *Bls12_381) GenG2() driver.G2 {
	_, _, _, g2 := bls12381.Generators()
	return &bls12381G2{g2}
}

func (c *Bls12_381) GenGt() driver.Gt {
	return c.FExp(c.Pairing(c.GenG2(), c.GenG1()))
}

func (c *Bls12_381) FieldBytes() int {
	return bls12381.SizeOfG1AffineCompressed
}

func (c *Bls12_381) NewG1() driver.G1 {
	return &bls12381G1{}
}

func (c *Bls12_381) NewG2() driver.G2 {
	return &bls12381G2{}
}

func (c *Bls12_381) NewG1FromCoords(ix, iy driver.Zr) driver.G1 {
	v := &bls12381G1{}
	v.X.SetBigInt(&ix.(*common.BaseZr).Int)
	v.Y.SetBigInt(&iy.(*common.BaseZr).Int)
	return v
}

func (c *Bls12_381) NewG1FromBytes(b []byte) driver.G1 {
	v := &bls12381G1{}
	_, err := v.SetBytes(b)
	if err != nil {
		panic(fmt.Sprintf("set bytes failed [%s]", err.Error()))
	}

	return v
}

func (c *Bls12_381) NewG2FromBytes(b []byte) driver.G2 {
	v := &bls12381G2{}
	_, err := v.SetBytes(b)
	if err != nil {
		panic(fmt.Sprintf("set bytes failed [%s]", err.Error()))
	}

	return v
}

func (c *Bls12_381) NewGtFromBytes(b []byte) driver.Gt {
	v := &bls12381Gt{}
	err := v.SetBytes(b)
	if err != nil {
		panic(fmt.Sprintf("set bytes failed [%s]", err.Error()))
	}

	return v
}

var bls12381DST = []byte("MATHLIB_BLS12381G1_XMD:SHA-256_SSWU_RO_")

func (c *Bls12_381) HashToG1(data []byte) driver.G1 {
	g1, err := bls12381.HashToG1(data, bls12381DST)
	if err != nil {
		panic(fmt.Sprintf("HashToG1 failed [%s]", err.Error()))
	}

	return &bls12381G1{g1}
}

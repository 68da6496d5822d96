package common

import (
	"math/big"

	"github.com/11090815/pairing/common/mathlib/driver"
)

var onebytes = []byte{
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
}
var onebig = new(big.Int).SetBytes(onebytes)

// ScalarByteSize 是 BN254 与 BLS12-381 标量域元素的编码长度。
const ScalarByteSize = 32

// BigToBytes 把 bi 编码成 ScalarByteSize 个字节，负数使用二进制补码。
func BigToBytes(bi *big.Int) []byte {
	b := bi.Bytes()

	if bi.Sign() >= 0 {
		return append(make([]byte, ScalarByteSize-len(b)), b...)
	}

	twoscomp := new(big.Int).Set(onebig)
	pos := new(big.Int).Neg(bi)
	twoscomp = twoscomp.Sub(twoscomp, pos)
	twoscomp = twoscomp.Add(twoscomp, big.NewInt(1))
	b = twoscomp.Bytes()
	return append(append([]byte{}, onebytes[:ScalarByteSize-len(b)]...), b...)
}

// BaseZr 是基于 math/big 的标量，Modulus 是所在标量域的阶。
type BaseZr struct {
	big.Int
	Modulus big.Int
}

func (b *BaseZr) Plus(a driver.Zr) driver.Zr {
	rv := &BaseZr{Modulus: b.Modulus}
	rv.Add(&b.Int, &a.(*BaseZr).Int)
	return rv
}

func (b *BaseZr) Minus(a driver.Zr) driver.Zr {
	rv := &BaseZr{Modulus: b.Modulus}
	rv.Sub(&b.Int, &a.(*BaseZr).Int)
	return rv
}

func (b *BaseZr) Mul(a driver.Zr) driver.Zr {
	rv := &BaseZr{Modulus: b.Modulus}
	rv.Int.Mul(&b.Int, &a.(*BaseZr).Int)
	rv.Int.Mod(&rv.Int, &b.Modulus)
	return rv
}

func (b *BaseZr) PowMod(x driver.Zr) driver.Zr {
	rv := &BaseZr{Modulus: b.Modulus}
	rv.Exp(&b.Int, &x.(*BaseZr).Int, &b.Modulus)
	return rv
}

func (b *BaseZr) Mod(a driver.Zr) {
	b.Int.Mod(&b.Int, &a.(*BaseZr).Int)
}

// InvModP 用费马小定理求逆，p 必须是素数。
func (b *BaseZr) InvModP(p driver.Zr) {
	m := &p.(*BaseZr).Int
	e := new(big.Int).Sub(m, big.NewInt(2))
	b.Int.Mod(&b.Int, m)
	b.Int.Exp(&b.Int, e, m)
}

func (b *BaseZr) Bytes() []byte {
	target := b.Int

	if b.Int.Sign() < 0 || b.Int.Cmp(&b.Modulus) > 0 {
		target = *new(big.Int).Set(&b.Int)
		target = *target.Mod(&target, &b.Modulus)
		if target.Sign() < 0 {
			target = *target.Add(&target, &b.Modulus)
		}
	}

	return BigToBytes(&target)
}

func (b *BaseZr) Equals(p driver.Zr) bool {
	return b.Int.Cmp(&p.(*BaseZr).Int) == 0
}

func (b *BaseZr) Copy() driver.Zr {
	rv := &BaseZr{Modulus: b.Modulus}
	rv.Set(&b.Int)
	return rv
}

func (b *BaseZr) Clone(a driver.Zr) {
	b.Int.Set(&a.(*BaseZr).Int)
}

func (b *BaseZr) String() string {
	return b.Int.Text(16)
}

func (b *BaseZr) Neg() {
	b.Int.Neg(&b.Int)
}

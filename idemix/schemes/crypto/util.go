package crypto

import (
	"fmt"
	"io"

	"github.com/11090815/pairing/common/mathlib"
	"github.com/11090815/pairing/vars"
)

// Idemix 把伪名相关的操作绑定到一条曲线上。
type Idemix struct {
	Curve *mathlib.Curve
}

func NewIdemix(curve *mathlib.Curve) *Idemix {
	return &Idemix{Curve: curve}
}

// IssuerPublicKey 保存生成伪名所需的两个 G1 基点的编码。
type IssuerPublicKey struct {
	HSk   []byte
	HRand []byte
}

// NewIssuerPublicKey 随机选取两个相互独立的 G1 基点。
func (i *Idemix) NewIssuerPublicKey(rng io.Reader) *IssuerPublicKey {
	return &IssuerPublicKey{
		HSk:   i.Curve.GenG1.Mul(i.Curve.NewRandomZr(rng)).Bytes(),
		HRand: i.Curve.GenG1.Mul(i.Curve.NewRandomZr(rng)).Bytes(),
	}
}

func appendBytes(data []byte, index int, bytesToAdd []byte) int {
	copy(data[index:], bytesToAdd)
	return index + len(bytesToAdd)
}
func appendBytesG1(data []byte, index int, E *mathlib.G1) int {
	return appendBytes(data, index, E.Bytes())
}
func appendBytesBig(data []byte, index int, B *mathlib.Zr) int {
	return appendBytes(data, index, B.Bytes())
}

// MakeNym creates a new unlinkable pseudonym
func (i *Idemix) MakeNym(sk *mathlib.Zr, IPk *IssuerPublicKey, rng io.Reader) (*mathlib.G1, *mathlib.Zr, error) {
	return makeNym(sk, IPk, rng, i.Curve)
}

func makeNym(sk *mathlib.Zr, IPk *IssuerPublicKey, rng io.Reader, curve *mathlib.Curve) (*mathlib.G1, *mathlib.Zr, error) {
	if IPk == nil {
		return nil, nil, fmt.Errorf("cannot make nym on curve %s: [issuer public key is nil]", curve.Name())
	}
	// Construct a commitment to the sk
	// Nym = h_{sk}^sk \cdot h_r^r
	RandNym := curve.NewRandomZr(rng)
	HSk, err := curve.NewG1FromBytes(IPk.HSk)
	if err != nil {
		return nil, nil, err
	}
	HRand, err := curve.NewG1FromBytes(IPk.HRand)
	if err != nil {
		return nil, nil, err
	}
	Nym := HSk.Mul2(sk, HRand, RandNym)
	return Nym, RandNym, nil
}

// NymToBytes 把伪名及其随机数编码成 RandNym || Nym。
func (i *Idemix) NymToBytes(nym *mathlib.G1, randNym *mathlib.Zr) []byte {
	rb := randNym.Bytes()
	nb := nym.Bytes()
	raw := make([]byte, len(rb)+len(nb))
	index := appendBytesBig(raw, 0, randNym)
	appendBytesG1(raw, index, nym)
	return raw
}

func (i *Idemix) MakeNymFromBytes(raw []byte) (*mathlib.G1, *mathlib.Zr, error) {
	return makeNymFromBytes(i.Curve, raw)
}

func makeNymFromBytes(curve *mathlib.Curve, raw []byte) (*mathlib.G1, *mathlib.Zr, error) {
	zrLen := len(curve.GroupOrder.Bytes())
	if len(raw) <= zrLen {
		return nil, nil, vars.ErrorInvalidLength{Kind: curve.Name() + " nym", Want: zrLen + len(curve.GenG1.Bytes()), Got: len(raw)}
	}
	RandNym := curve.NewZrFromBytes(raw[:zrLen])
	pk, err := curve.NewG1FromBytes(raw[zrLen:])
	if err != nil {
		return nil, nil, err
	}

	return pk, RandNym, nil
}

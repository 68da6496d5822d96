package crypto

import (
	"fmt"
	"io"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/11090815/pairing/common/mathlib"
	"github.com/11090815/pairing/vars"
)

// 弱 Boneh-Boyen 签名 (http://ia.cr/2004/171)：pk = g2^sk，消息 m 的签名是 g1^(1/(m+sk))。

const wbbScheme = "weak-bb"

var logger = hlogging.MustGetLogger("pairing.idemix")

// WBBKeyGen 在曲线上生成一对新的弱 BB 签名密钥。
func (i *Idemix) WBBKeyGen(rng io.Reader) (*mathlib.Zr, *mathlib.G2) {
	sk := i.Curve.NewRandomZr(rng)
	return sk, i.Curve.GenG2.Mul(sk)
}

// WBBSign 用 sk 对 m 签名。m+sk 在 Zr 中为零时没有逆元，返回错误。
func (i *Idemix) WBBSign(sk *mathlib.Zr, m *mathlib.Zr) (*mathlib.G1, error) {
	c := i.Curve
	exp := c.ModAdd(sk, m, c.GroupOrder)
	if exp.Equals(c.NewZrFromInt(0)) {
		return nil, fmt.Errorf("cannot place %s signature on curve %s: [m + sk is zero]", wbbScheme, c.Name())
	}
	exp.InvModP(c.GroupOrder)
	return c.GenG1.Mul(exp), nil
}

// WBBVerify 检查 e(pk·g2^m, sig) · e(g2, g1^-1) 在最终幂之后是否为 1。
func (i *Idemix) WBBVerify(pk *mathlib.G2, sig *mathlib.G1, m *mathlib.Zr) error {
	if pk == nil || sig == nil || m == nil {
		return vars.ErrorInvalidSignature{Scheme: wbbScheme, Reason: "received nil input"}
	}
	c := i.Curve
	if sig.IsInfinity() {
		return vars.ErrorInvalidSignature{Scheme: wbbScheme, Reason: "signature is the point at infinity"}
	}

	P := pk.Copy()
	P.Add(c.GenG2.Mul(m))
	P.Affine()
	negG1 := c.NewG1()
	negG1.Sub(c.GenG1)

	if !c.FExp(c.Pairing2(P, sig, c.GenG2, negG1)).IsUnity() {
		logger.Debugf("Weak-BB verification failed on curve %s.", c.Name())
		return vars.ErrorInvalidSignature{Scheme: wbbScheme, Reason: "pairing check failed"}
	}
	return nil
}

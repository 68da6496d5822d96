package nist256

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 NIST256 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "NIST256",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   256,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.NOT,
	CurveA:    -3,
	CurveBI:   0,

	Modulus: "FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF",
	Order:   "FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551",
	CurveB:  "5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B",
	Gx:      "6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296",
	Gy:      "4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000001",
}

package secp256k1

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 SECP256K1 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "SECP256K1",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   256,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.NOT,
	CurveA:    0,
	CurveBI:   7,

	Modulus: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
	Order:   "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
	CurveB:  "0000000000000000000000000000000000000000000000000000000000000007",
	Gx:      "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
	Gy:      "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000001",
}

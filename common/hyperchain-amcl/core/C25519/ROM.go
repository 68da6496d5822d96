package c25519

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 C25519 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "C25519",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   255,
	ModType:   core.PSEUDO_MERSENNE,
	CurveType: core.MONTGOMERY,
	Pairing:   core.NOT,
	CurveA:    486662,
	CurveBI:   0,

	Modulus: "7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED",
	Order:   "1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED",
	CurveB:  "0000000000000000000000000000000000000000000000000000000000000000",
	Gx:      "0000000000000000000000000000000000000000000000000000000000000009",
	Gy:      "0000000000000000000000000000000000000000000000000000000000000000",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000008",
}

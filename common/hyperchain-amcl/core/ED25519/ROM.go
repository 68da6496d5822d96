package ed25519

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 ED25519 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "ED25519",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   255,
	ModType:   core.PSEUDO_MERSENNE,
	CurveType: core.EDWARDS,
	Pairing:   core.NOT,
	CurveA:    -1,
	CurveBI:   0,

	Modulus: "7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED",
	Order:   "1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED",
	CurveB:  "52036CEE2B6FFE738CC740797779E89800700A4D4141D8AB75EB4DCA135978A3",
	Gx:      "216936D3CD6E53FEC0A4E231FDD6DC5C692CC7609525A7B2C9562D608F25D51A",
	Gy:      "6666666666666666666666666666666666666666666666666666666666666658",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000008",
}

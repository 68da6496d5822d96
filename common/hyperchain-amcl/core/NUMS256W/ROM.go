package nums256w

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 NUMS256W 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "NUMS256W",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   256,
	ModType:   core.PSEUDO_MERSENNE,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.NOT,
	CurveA:    -3,
	CurveBI:   152961,

	Modulus: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF43",
	Order:   "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE43C8275EA265C6020AB20294751A825",
	CurveB:  "0000000000000000000000000000000000000000000000000000000000025581",
	Gx:      "BC9ED6B65AAADB61297A95A04F42CB0983579B0903D4C73ABC52EE1EB21AACB1",
	Gy:      "D08FC0F13399B6A673448BF77E04E035C955C3D115310FBB80B5B9CB2184DE9F",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000001",
}

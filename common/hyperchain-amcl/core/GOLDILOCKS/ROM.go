package goldilocks

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 GOLDILOCKS 的曲线参数，大整数均为 56 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "GOLDILOCKS",
	ModBytes:  56,
	BaseBits:  58,
	ModBits:   448,
	ModType:   core.GENERALISED_MERSENNE,
	CurveType: core.EDWARDS,
	Pairing:   core.NOT,
	CurveA:    1,
	CurveBI:   -39081,

	Modulus: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF",
	Order:   "3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7CCA23E9C44EDB49AED63690216CC2728DC58F552378C292AB5844F3",
	CurveB:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF6756",
	Gx:      "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA955555555555555555555555555555555555555555555555555555555",
	Gy:      "AE05E9634AD7048DB359D6205086C2B0036ED7A035884DD7B7E36D728AD8C4B80D6565833A2A3098BBBCB2BED1CDA06BDAEAFBCDEA9386ED",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000004",
}

package bls381

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 BLS381 的曲线参数，大整数均为 48 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "BLS381",
	ModBytes:  48,
	BaseBits:  58,
	ModBits:   381,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.BLS,
	Embedding: 12,
	Twist:     core.M_TYPE,
	SignOfX:   core.NEGATIVEX,
	CurveA:    0,
	CurveBI:   4,

	Modulus: "1A0111EA397FE69A4B1BA7B6434BACD764774B84F38512BF6730D2A0F6B0F6241EABFFFEB153FFFFB9FEFFFFFFFFAAAB",
	Order:   "0000000000000000000000000000000073EDA753299D7D483339D80809A1D80553BDA402FFFE5BFEFFFFFFFF00000001",
	CurveB:  "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000004",
	Gx:      "17F1D3A73197D7942695638C4FA9AC0FC3688C4F9774B905A14E3A3F171BAC586C55E83FF97A1AEFFB3AF00ADB22C6BB",
	Gy:      "08B3F481E3AAA0F1A09E30ED741D8AE4FCF5E095D5D00AF600DB18CB2C04B3EDD03CC744A2888AE40CAA232946C5E7E1",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000000396C8C005555E1568C00AAAB0000AAAB",

	Fra:     "1904D3BF02BB0667C231BEB4202C0D1F0FD603FD3CBD5F4F7B2443D784BAB9C4F67EA53D63E7813D8D0775ED92235FB8",
	Frb:     "00FC3E2B36C4E03288E9E902231F9FB854A14787B6C7B36FEC0C8EC971F63C5F282D5AC14D6C7EC22CF78A126DDC4AF3",
	Bnx:     "00000000000000000000000000000000000000000000000000000000000000000000000000000000D201000000010000",
	Cru:     "00000000000000005F19672FDF76CE51BA69C6076A0F77EADDB3A93BE6F89688DE17D813620A00022E01FFFFFFFEFFFE",
	Pxs: []string{
		"024AA2B2F08F0A91260805272DC51051C6E47AD4FA403B02B4510B647AE3D1770BAC0326A805BBEFD48056C8C121BDB8",
		"13E02B6052719F607DACD3A088274F65596BD0D09920B61AB5DA61BBDC7F5049334CF11213945D57E5AC7D055D042B7E",
	},
	Pys: []string{
		"0CE5D527727D6E118CC9CDC6DA2E351AADFD9BAA8CBDD3A76D429A695160D12C923AC9CC3BACA289E193548608B82801",
		"0606C4A02EA734CC32ACD2B02BC28B99CB3E287E85A763AF267492AB572E99AB3F370D275CEC1DA1AAA9075FF05F79BE",
	},
}

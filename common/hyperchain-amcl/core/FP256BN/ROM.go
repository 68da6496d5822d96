package fp256bn

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 FP256BN 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "FP256BN",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   256,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.BN,
	Embedding: 12,
	Twist:     core.M_TYPE,
	SignOfX:   core.NEGATIVEX,
	CurveA:    0,
	CurveBI:   3,

	Modulus: "FFFFFFFFFFFCF0CD46E5F25EEE71A49F0CDC65FB12980A82D3292DDBAED33013",
	Order:   "FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921AF62D536CD10B500D",
	CurveB:  "0000000000000000000000000000000000000000000000000000000000000003",
	Gx:      "0000000000000000000000000000000000000000000000000000000000000001",
	Gy:      "0000000000000000000000000000000000000000000000000000000000000002",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000001",

	Fra:     "3D617662CA786F352D1A6E8DDB0867CF39A171511E3AB28F74760328AF943106",
	Frb:     "C29E899D3584819819CB83D113693CCFD33AF4A9F45D57F35EB32AB2FF3EFF0D",
	Bnx:     "0000000000000000000000000000000000000000000000006882F5C030B0A801",
	Cru:     "00000000000000013988E140921018659BCDD79DF1932D1EDB1C0A24A3A1B807",
	Pxs: []string{
		"FE0C3350B4C96C2028560F577C28913ACE1C539A12BF843CD22616B689C09EFB",
		"4EA66057738AC054DB5AE1C637D813B924DD78E287D03589D269ED34A37E6A2B",
	},
	Pys: []string{
		"8FDFB9183ABA4D19D06EE4E9DC23664D1D1141858536B239EA1F7959EFF70814",
		"FAAB1C432C742E3D03F74C15C4F2F1FF818FA77A907D71CEF316ACCA64262B78",
	},

	W: [2]string{"00000000000000000000000000000000FFFFFFFFFFFE78663AF0036E1B054003", "000000000000000000000000000000000000000000000000D105EB8061615001"},
	SB: [2][2]string{
		{"00000000000000000000000000000000FFFFFFFFFFFE78670BF5EEEE7C669004", "000000000000000000000000000000000000000000000000D105EB8061615001"},
		{"000000000000000000000000000000000000000000000000D105EB8061615001", "FFFFFFFFFFFCF0CD46E5F25EEE71A49D0CDC65FB129B19B4BB3D4FFEB606100A"},
	},
	WB: [4]string{
		"00000000000000000000000000000000555555555554D2CC1020678F0D30A800",
		"0000000000000000D105EB806160104467DE8FBEA10BC3AD1AD6764C0D7DC805",
		"00000000000000006882F5C030B0082233EF47DF5085E1D6C1ACB6061F173803",
		"00000000000000000000000000000000555555555554D2CCE126530F6E91F801",
	},
	BB: [4][4]string{
		{
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A8DAA5DACA05AA80D",
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A8DAA5DACA05AA80C",
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A8DAA5DACA05AA80C",
			"000000000000000000000000000000000000000000000000D105EB8061615002",
		},
		{
			"000000000000000000000000000000000000000000000000D105EB8061615001",
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A8DAA5DACA05AA80C",
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A8DAA5DACA05AA80D",
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A8DAA5DACA05AA80C",
		},
		{
			"000000000000000000000000000000000000000000000000D105EB8061615002",
			"000000000000000000000000000000000000000000000000D105EB8061615001",
			"000000000000000000000000000000000000000000000000D105EB8061615001",
			"000000000000000000000000000000000000000000000000D105EB8061615001",
		},
		{
			"0000000000000000000000000000000000000000000000006882F5C030B0A802",
			"000000000000000000000000000000000000000000000001A20BD700C2C2A002",
			"FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921A252767EC6FAA000A",
			"0000000000000000000000000000000000000000000000006882F5C030B0A802",
		},
	},
}

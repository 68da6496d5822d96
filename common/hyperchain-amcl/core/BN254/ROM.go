package bn254

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 BN254 的曲线参数，大整数均为 32 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "BN254",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   254,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.BN,
	Embedding: 12,
	Twist:     core.D_TYPE,
	SignOfX:   core.NEGATIVEX,
	CurveA:    0,
	CurveBI:   2,

	Modulus: "2523648240000001BA344D80000000086121000000000013A700000000000013",
	Order:   "2523648240000001BA344D8000000007FF9F800000000010A10000000000000D",
	CurveB:  "0000000000000000000000000000000000000000000000000000000000000002",
	Gx:      "2523648240000001BA344D80000000086121000000000013A700000000000012",
	Gy:      "0000000000000000000000000000000000000000000000000000000000000001",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000001",

	Fra:     "1B377619212E7C8CB6499B50A846953F850974924D3F77C2E17DE6C06F2A6DE9",
	Frb:     "09EBEE691ED1837503EAB22F57B96AC8DC178B6DB2C08850C582193F90D5922A",
	Bnx:     "0000000000000000000000000000000000000000000000004080000000000001",
	Cru:     "000000000000000049B36240000000024909000000000006CD80000000000007",
	Pxs: []string{
		"061A10BB519EB62FEB8D8C7E8C61EDB6A4648BBB4898BF0D91EE4224C803FB2B",
		"0516AAF9BA737833310AA78C5982AA5B1F4D746BAE3784B70D8C34C1E7D54CF3",
	},
	Pys: []string{
		"021897A06BAF93439A90E096698C822329BD0AE6BDBE09BD19F0E07891CD2B9A",
		"0EBB2B0E7C8B15268F6D4456F5F38D37B09006FFD739C9578A2D1AEC6B3ACE9B",
	},

	W: [2]string{"0000000000000000000000000000000061818000000000020400000000000003", "0000000000000000000000000000000000000000000000008100000000000001"},
	SB: [2][2]string{
		{"0000000000000000000000000000000061818000000000028500000000000004", "0000000000000000000000000000000000000000000000008100000000000001"},
		{"0000000000000000000000000000000000000000000000008100000000000001", "2523648240000001BA344D80000000079E1E00000000000E9D0000000000000A"},
	},
	WB: [4]string{
		"0000000000000000000000000000000020808000000000004080000000000000",
		"00000000000000003122418000000001C7070000000000054A80000000000005",
		"0000000000000000189120C000000000E383800000000002C580000000000003",
		"000000000000000000000000000000002080800000000000C180000000000001",
	},
	BB: [4][4]string{
		{
			"2523648240000001BA344D8000000007FF9F800000000010608000000000000D",
			"2523648240000001BA344D8000000007FF9F800000000010608000000000000C",
			"2523648240000001BA344D8000000007FF9F800000000010608000000000000C",
			"0000000000000000000000000000000000000000000000008100000000000002",
		},
		{
			"0000000000000000000000000000000000000000000000008100000000000001",
			"2523648240000001BA344D8000000007FF9F800000000010608000000000000C",
			"2523648240000001BA344D8000000007FF9F800000000010608000000000000D",
			"2523648240000001BA344D8000000007FF9F800000000010608000000000000C",
		},
		{
			"0000000000000000000000000000000000000000000000008100000000000002",
			"0000000000000000000000000000000000000000000000008100000000000001",
			"0000000000000000000000000000000000000000000000008100000000000001",
			"0000000000000000000000000000000000000000000000008100000000000001",
		},
		{
			"0000000000000000000000000000000000000000000000004080000000000002",
			"0000000000000000000000000000000000000000000000010200000000000002",
			"2523648240000001BA344D8000000007FF9F800000000010200000000000000A",
			"0000000000000000000000000000000000000000000000004080000000000002",
		},
	},
}

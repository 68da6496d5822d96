package bls24

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 BLS24 的曲线参数，大整数均为 60 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "BLS24",
	ModBytes:  60,
	BaseBits:  56,
	ModBits:   479,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.BLS,
	Embedding: 24,
	Twist:     core.M_TYPE,
	SignOfX:   core.POSITIVEX,
	CurveA:    0,
	CurveBI:   19,

	Modulus: "555C007803CCC5BA839AEC6E803F2E77E4C1BA825079733568E09E1F244061873220DF068A328B6F1C5CBDB6A642FFE2E82D30DAF844C1674A06152B",
	Order:   "0000000000000000000000010010010005A01F0F05B98BB44A050D81729CC224848FC9D0CED13A6ADE7EE322DDAF1E7033FF5511901A08FFF0000001",
	CurveB:  "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000013",
	Gx:      "1AB2BE3417CAF9486DE9E18B7FEA5D99BC1D9077586CEFE4BFDCA8D1AE2D8477C6F8D95AF88134783F08EBA1FCC1EFE2DAED9F45646760F5EBE3CCD4",
	Gy:      "47FCB70C6C53E477B861CA66A7A4529FF79A492A2BF79CE00F63AA4FD63E5A64145824920FF3C8B3ED294F39746B6D6608C55DF6C4CBA5CAD21E5245",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000005556AAB7FFC1FFBFF9F415AB",

	Fra:     "4BBC87B94E77242DA52D8DB97549184F313A5D199E33127CBD69D68FF59267B73CECA48407F8E549E9E26237469C1FF8BD0C6FFBAD5CA74ABBF96F1D",
	Frb:     "099F78BEB555A18CDE6D5EB50AF61628B3875D68B24660B8AB76C78F2EADF9CFF5343A828239A625327A5B7F5FA6DFEA2B20C0DF4AE81A1C8E0CA60E",
	Bnx:     "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000100020011FF80",
	Cru:     "555C007803CBC5A88268E4314C200860FF77D680C6EB20806E02358E379CE607125CFBB4236DFBB112175223DDC63A30938AF33A43BC27146DD794A9",
	Pxs: []string{
		"0959DE53A3EC96077958C8786671EB14AB8852908ED55CBAB37FD2458967473AC33AAD2888D7F90F765CCDEFC69E0C34342582408BE2935374E24678",
		"3B0DED0831733DFC651E4C2D39D1BE5AD0F976A753E17E69261C38F85DB2A5CA7F0A26A730F9E36B5D1B1FC238563775A012A470387F9EBAFFB099B8",
		"3EC27FAD4E507AF2AA28C33FE2103F329F0047BCC89E3F6B1EF21C26C74FDB8B2D8CD6DE566B2F64BF43EA3E09A1853178DF6E16EDA1CDE711AD15D3",
		"0A5B38DBCA0799F7E658551DA7CE2E465CB74805CE1AF1BA3AD5DB25698EF5EAF70FD0122F1FFDFB22DF80E1CB994556E43D6C4B8C7AB2875EE0F480",
	},
	Pys: []string{
		"05040D1A9060BC7720CC1C6CE7462CCAD8CD18CF010D8E38BB1D1A710A91F8CBEBF2DA42600166C9F1FB77BA61879F45452979D046BE77D4358DFA8B",
		"28794BE1A1DE3C570B842F0D8AE6B319ECE022893A4203BA2A752C0F34BB0F4169812339932E130A516C241279A2876B9C82D1444A88D50F5B580C31",
		"3D54FC11C4E69413C560F4544661F1C22B106E6C7B5FBC162E9E8F1750CF0DF643CCF65C8C0A0A954ED522BE04FB074FC2DA263902D1BEF0A41548EA",
		"0BBEEB8D2A0ED92F0A72AB97AFF89D00C610AEC76AAC69D3BCCA4F9506CD64A7D4ED5DCFD3BCC0ACD85EFA2C2ED02BD5B2D227521B530E80F8A9F87D",
	},
}

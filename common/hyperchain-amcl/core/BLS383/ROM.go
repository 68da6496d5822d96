package bls383

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 BLS383 的曲线参数，大整数均为 48 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "BLS383",
	ModBytes:  48,
	BaseBits:  58,
	ModBits:   383,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.BLS,
	Embedding: 12,
	Twist:     core.M_TYPE,
	SignOfX:   core.POSITIVEX,
	CurveA:    0,
	CurveBI:   15,

	Modulus: "5565569564AB6EB5A06DADC41FEA9284A0AD462CF365A511AC31B801696124F47A8C3F298A64852BDA371D6485AAB0AB",
	Order:   "00000000000000000000000000000001002001800C00B809C04401C81698B381DE05F095A120D3973B2099EBFEBC0001",
	CurveB:  "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000F",
	Gx:      "41FCBA55B979ECE4E3835F4052DDB050F31D9F76B081F42C2F87BAD84AF1E3445C55DBF083F4770478C4773908734573",
	Gy:      "068F167274CFB300024AE9CDC31C46D99D0DADC66BB6449107530A94ADEB4D2DDE57D49EC87F98FD212D165E8003F224",
	Cof:     "0000000000000000000000000000000000000000000000000000000000000000555AAAC000AABBFFB550556155169EAB",

	Fra:     "22ACD5BF027F68BC338B9FC2C11B52F10E4C6CD23FBA1A868256744AE550D8C8A3693480FE6773E01852D72D3311DAC1",
	Frb:     "32B880D6622C05F96CE20E015ECF3F939260D95AB3AB8A8B29DB43B684104C2BD7230AA88BFD114BC1E446375298D5EA",
	Bnx:     "000000000000000000000000000000000000000000000000000000000000000000000000000000010008000001001200",
	Cru:     "5565569564AB6EB4A045AB4406E9487460544534DBDD715CE2522F4A34DEA341BC25F681A2DF65D2DCC367502EAAC2A9",
	Pxs: []string{
		"0634D22407EC03E8C07990967CB1E746432501C852D5725BD47F1C90F562572EE81FDAB6795D1D3E143CB3B62D7F2D86",
		"300D7800600164BAF37A7717288361DD24F498ED9D05CC89DFD98BA88E92D5D75B54AB28D57FE60DEFD9E41EC452DE15",
	},
	Pys: []string{
		"21EC299C27891B6DD723D56CE0045E09321437567F9C09D3439A3454C04D820D1F425144985723957DCE2CA8F1A1E56A",
		"3480321791DDE24A7B7F321C4E9017A49EDF38E88826AA823141050D1F69685BCA780278AC0260A59F5ED72106632018",
	},
}

package bls48

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// ROM 是 BLS48 的曲线参数，大整数均为 70 字节的大端十六进制。
var ROM = core.ROM{
	Name:      "BLS48",
	ModBytes:  70,
	BaseBits:  58,
	ModBits:   556,
	ModType:   core.NOT_SPECIAL,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.BLS,
	Embedding: 48,
	Twist:     core.M_TYPE,
	SignOfX:   core.POSITIVEX,
	CurveA:    0,
	CurveBI:   17,

	Modulus: "0FD17D842FFCFC5B23729047A56C867152ACD4420536F405DA950AECD56B379B89413016A7C025A415202086876B2EC137A9870D4228402967009A661DF9EEF6E60FFCF6AC0B",
	Order:   "0000000000000000C43BF73EA111AAEC637C5E9306A973C465FB0B1BF8FC95C40DEF4790BD26DFED788C26D28AD8C1FD14D1EB162029C21455409E29DA7086FFFF0000000001",
	CurveB:  "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000011",
	Gx:      "09A89E92857595DB8957EDD741C09321E49059B5E130D242B2C3AA1400FAB0159444E0702E69A80F669A2F01FCA7F6330FF01647711EE0BD80554FE32DE0FF286D2F65D71D33",
	Gy:      "00AD8D094C62C5FAE2B3349DA9A332E15E710DCE67A4086260E3C730C26655478CB44E2E3818FB7229A7CF1EE77B5F8FB391EA8E6958677DC4B954A8A70CF69A5B3FEA6ED83A",
	Cof:     "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000014A2D10F7F12ABEB",

	Fra:     "0298B807B880089C089BB36CEDFC1047FC9FFDFB3213C83C0F60B4EF7A517277B3AE7F84ABE7AB9F2C2F8F09BE3474A5D952FBA0E83BCCAD07EA37334295BE623CFD9325BF89",
	Frb:     "0298B807B880089C089BB36CEDFC1047FC9FFDFB3213C83C0F60B4EF7A517277B3AE7F84ABE7AB9F2C2F8F09BE3474A5D952FBA0E83BCCAD07EA37334295BE623CFD9325BF89",
	Bnx:     "0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000007DE40020",
	Cru:     "0FD17D83CF7CEF23203A79F783223C0244C6395E399AEEFF04AE38C648CDEC698E7127B0AB9B73BC2D08C2CA42B839DA28DC3C68308093ACE30A2934F74580364E7E6CBBA429",
	Pxs: []string{
		"0E6578D809A1C0497A5D9487E5DE742CBB885C9C416C4ABF57375A1BB64B395EF4DD2B37F0A7C90B98AFF1FF4637C1D3E165D8A1313A20CBD7102D2B813D2A8D2E8E8923CE4A",
		"029420125E74A97B58DB48B6E55269AF09FD0648CE48632D18B043A58323FC96709B0E75C6B40A11FA8ADCFEB89247630AD5478433972C5A8FE3B0077D7F7271CDC5AC0A1BE1",
		"0B52FEF8F76D71DDA78B689BA8E3EDDCA4CD6F4F7D917CE2331675A0657E47BA2E402B84CB2C58CD55638B169926ACAA110934259BEC736A964ADDDACEF2DA3A724C770C5DC4",
		"093840A9D92DFE5F23F63B1A67CEE95DCC1AABDB4186B40590D3B579F5E9865A1841E3C73C41F4EEA7FE7D33335E2786C40D7054323ADD111FD498C92055E0D629669A64B740",
		"0DDE1EF7F418CF1447CC49D328A7E784479AB561CBCE27C3AD4D4252107458DF51E34728852870C80B3BAE03B5AB894040990FA39218788C311CD34B0A6009BB0C6172F1E01F",
		"082DB3A78C850556F014F91FBF0E5E2E8A5D053FE838885E54DA8C4ABB22AA36E3F164639D737D882FF0E715FA0147C9535C51ED5D3D212A20253F9987E19B0A38238637383D",
		"0A822A7384D943BE2435A9CCF8D19BE7C8EE917187D1A403D60700D0900A91ADC11A9B3233EF353D1C4A372240B384C8CBCDB572CF2F6C09BE51D69A419AE9683DB3D711939C",
		"0DF754783DC16F1567857A3289E8DDB09A92C033479E30007597CA0C858B67FB17FE82C5EBA71895E30A01FC47A789B6A8AEA57990BC9BC1C51EB92A565D432D410A856F4899",
	},
	Pys: []string{
		"086A9078AB69A7CB4B022EB6EB136E844309B795C716C4AF0CC1722DC74743263ACD6F09DFF09D0D350FCAF87BE0BD2AD8F117617ABFBB0D183A5066CEC678164E4048E333C7",
		"0D57B24AF2225378BA82EE8383CF76E818138F44E4B8D3A7D7DB1C4BB808207E82B842ED4B124567F60953F07E4BFEC3618C63527E0F6CFE7C5155FB94695C98B3C70F2E7A7B",
		"028BE1BACA7E0B25E4414F7193B23A13C534D22C7317935534A10AB2DCFAB17FE37998526781C020D36F89DA1F0EB1F6062FE117F9ED719092FBC04D0036051A863FBB5E4FFE",
		"05C36ED98FC4CED1649A89169D6E6D498E15FABD20771B02E5772A3A49FDE873D30B3CA02F3987540E9184FA8B2E2F61D7824BFD58404D6F2350C954BBA28F870567E7596913",
		"0D21373A3E0E16C96AD0BE9BD73D9A2644FF3DA50D48CD7717A37B88CFB8BCC0FE1A1F50DB60FAE89FA05DBABB6CA9387E9EE5CCEA1F03307877429703D3DE21D35C5DBEA86C",
		"0CBF4AEAC2D0F195A8037838F78C74D46C4B9721AF239761A23DA1FBAAF670CDE0193432EEBDD5486513ED49B163E0704177931B675D62AD768B2BDEE391B48D05A0D39733A6",
		"0351705E9093617712E60981E347FDBDC9F1ACCDC3858FAA109682B81D6C62BA815A43252DDF4E703DFB7E843369563ED32E6AEBDEC86594BC06D2EFF65E2D1EAB70952A9292",
		"05C21C4DD2D6BB7507D69AFE690872306E70D2EA318314EB25D33D3851DBC7A0039747190BF12D567A36BFE329BE9C3C5EC095A37855DB36A20893ABB322A1FA5CB9CD2CB9B0",
	},
}

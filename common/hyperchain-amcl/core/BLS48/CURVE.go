package bls48

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// Curve 是 BLS48 的曲线标记类型，core 中的泛型类型以它实例化。
// BLS48 是嵌入度为 48 的 BLS 曲线 y^2 = x^3 + 17，模数 556 位，M 型扭曲。
type Curve struct{}

var params = core.MustParams(ROM)

func (Curve) Params() *core.Params { return params }

const MODBYTES = 70

type (
	BIG  = core.BIG[Curve]
	DBIG = core.DBIG[Curve]
	FP   = core.FP[Curve]
	ECP  = core.ECP[Curve]
	FP2  = core.FP2[Curve]
	FP4  = core.FP4[Curve]
	FP8  = core.FP8[Curve]
	FP16 = core.FP16[Curve]
	FP48 = core.FP48[Curve]
	ECP8 = core.ECP8[Curve]
)

var (
	NewBIG                = core.NewBIG[Curve]
	NewBIGint             = core.NewBIGint[Curve]
	NewBIGcopy            = core.NewBIGcopy[Curve]
	FromBytes             = core.FromBytes[Curve]
	FromBytesChecked      = core.FromBytesChecked[Curve]
	DBIG_fromBytes        = core.DBIG_fromBytes[Curve]
	Comp                  = core.Comp[Curve]
	Modmul                = core.Modmul[Curve]
	Modadd                = core.Modadd[Curve]
	Modneg                = core.Modneg[Curve]
	Random                = core.Random[Curve]
	Randomnum             = core.Randomnum[Curve]
	Modulus               = core.Modulus[Curve]
	CurveOrder            = core.CurveOrder[Curve]
	CurveCof              = core.CurveCof[Curve]
	NewFP                 = core.NewFP[Curve]
	NewFPint              = core.NewFPint[Curve]
	NewFPbig              = core.NewFPbig[Curve]
	NewECP                = core.NewECP[Curve]
	NewECPbigs            = core.NewECPbigs[Curve]
	NewECPbig             = core.NewECPbig[Curve]
	ECP_fromBytes         = core.ECP_fromBytes[Curve]
	ECP_fromBytesChecked  = core.ECP_fromBytesChecked[Curve]
	ECP_generator         = core.ECP_generator[Curve]
	ECP_mapit             = core.ECP_mapit[Curve]
	MultiAffine           = core.MultiAffine[Curve]
	ECP8_generator        = core.ECP8_generator[Curve]
	ECP8_fromBytes        = core.ECP8_fromBytes[Curve]
	ECP8_fromBytesChecked = core.ECP8_fromBytesChecked[Curve]
	ECP8_mapit            = core.ECP8_mapit[Curve]
	FP48_fromBytes        = core.FP48_fromBytes[Curve]
	NewFP48int            = core.NewFP48int[Curve]
	G1mul                 = core.G1mul[Curve]
	G1member              = core.G1member[Curve]
	G2mul                 = core.G2mul48[Curve]
	GTpow                 = core.GTpow48[Curve]
	G2member              = core.G2member48[Curve]
	GTmember              = core.GTmember48[Curve]
	Ate                   = core.Ate48[Curve]
	Ate2                  = core.Ate2_48[Curve]
	Fexp                  = core.Fexp48[Curve]
	Initmp                = core.Initmp48[Curve]
	Another               = core.Another48[Curve]
	Miller                = core.Miller48[Curve]
)

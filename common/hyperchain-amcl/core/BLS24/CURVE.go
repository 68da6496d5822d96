package bls24

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// Curve 是 BLS24 的曲线标记类型，core 中的泛型类型以它实例化。
// BLS24 是嵌入度为 24 的 BLS 曲线 y^2 = x^3 + 19，模数 479 位，M 型扭曲。
type Curve struct{}

var params = core.MustParams(ROM)

func (Curve) Params() *core.Params { return params }

const MODBYTES = 60

type (
	BIG  = core.BIG[Curve]
	DBIG = core.DBIG[Curve]
	FP   = core.FP[Curve]
	ECP  = core.ECP[Curve]
	FP2  = core.FP2[Curve]
	FP4  = core.FP4[Curve]
	FP8  = core.FP8[Curve]
	FP24 = core.FP24[Curve]
	ECP4 = core.ECP4[Curve]
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
	ECP4_generator        = core.ECP4_generator[Curve]
	ECP4_fromBytes        = core.ECP4_fromBytes[Curve]
	ECP4_fromBytesChecked = core.ECP4_fromBytesChecked[Curve]
	ECP4_mapit            = core.ECP4_mapit[Curve]
	FP24_fromBytes        = core.FP24_fromBytes[Curve]
	NewFP24int            = core.NewFP24int[Curve]
	G1mul                 = core.G1mul[Curve]
	G1member              = core.G1member[Curve]
	G2mul                 = core.G2mul24[Curve]
	GTpow                 = core.GTpow24[Curve]
	G2member              = core.G2member24[Curve]
	GTmember              = core.GTmember24[Curve]
	Ate                   = core.Ate24[Curve]
	Ate2                  = core.Ate2_24[Curve]
	Fexp                  = core.Fexp24[Curve]
	Initmp                = core.Initmp24[Curve]
	Another               = core.Another24[Curve]
	Miller                = core.Miller24[Curve]
)

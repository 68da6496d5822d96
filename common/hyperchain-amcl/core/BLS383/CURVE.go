package bls383

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// Curve 是 BLS383 的曲线标记类型，core 中的泛型类型以它实例化。
// BLS383 是嵌入度为 12 的 BLS 曲线 y^2 = x^3 + 15，x > 0，M 型扭曲。
type Curve struct{}

var params = core.MustParams(ROM)

func (Curve) Params() *core.Params { return params }

const MODBYTES = 48

type (
	BIG  = core.BIG[Curve]
	DBIG = core.DBIG[Curve]
	FP   = core.FP[Curve]
	ECP  = core.ECP[Curve]
	FP2  = core.FP2[Curve]
	FP4  = core.FP4[Curve]
	FP12 = core.FP12[Curve]
	ECP2 = core.ECP2[Curve]
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
	ECP2_generator        = core.ECP2_generator[Curve]
	ECP2_fromBytes        = core.ECP2_fromBytes[Curve]
	ECP2_fromBytesChecked = core.ECP2_fromBytesChecked[Curve]
	ECP2_mapit            = core.ECP2_mapit[Curve]
	FP12_fromBytes        = core.FP12_fromBytes[Curve]
	NewFP12int            = core.NewFP12int[Curve]
	G1mul                 = core.G1mul[Curve]
	G1member              = core.G1member[Curve]
	G2mul                 = core.G2mul[Curve]
	GTpow                 = core.GTpow[Curve]
	G2member              = core.G2member[Curve]
	GTmember              = core.GTmember[Curve]
	Ate                   = core.Ate[Curve]
	Ate2                  = core.Ate2[Curve]
	Fexp                  = core.Fexp[Curve]
	Initmp                = core.Initmp[Curve]
	Another               = core.Another[Curve]
	Miller                = core.Miller[Curve]
)

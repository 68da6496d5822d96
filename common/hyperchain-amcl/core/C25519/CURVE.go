package c25519

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// Curve 是 C25519 的曲线标记类型，core 中的泛型类型以它实例化。
// C25519 是 Montgomery 曲线 y^2 = x^3 + 486662*x^2 + x，模数 2^255-19，只使用 x 坐标。
type Curve struct{}

var params = core.MustParams(ROM)

func (Curve) Params() *core.Params { return params }

const MODBYTES = 32

type (
	BIG  = core.BIG[Curve]
	DBIG = core.DBIG[Curve]
	FP   = core.FP[Curve]
	ECP  = core.ECP[Curve]
)

var (
	NewBIG               = core.NewBIG[Curve]
	NewBIGint            = core.NewBIGint[Curve]
	NewBIGcopy           = core.NewBIGcopy[Curve]
	FromBytes            = core.FromBytes[Curve]
	FromBytesChecked     = core.FromBytesChecked[Curve]
	DBIG_fromBytes       = core.DBIG_fromBytes[Curve]
	Comp                 = core.Comp[Curve]
	Modmul               = core.Modmul[Curve]
	Modadd               = core.Modadd[Curve]
	Modneg               = core.Modneg[Curve]
	Random               = core.Random[Curve]
	Randomnum            = core.Randomnum[Curve]
	Modulus              = core.Modulus[Curve]
	CurveOrder           = core.CurveOrder[Curve]
	CurveCof             = core.CurveCof[Curve]
	NewFP                = core.NewFP[Curve]
	NewFPint             = core.NewFPint[Curve]
	NewFPbig             = core.NewFPbig[Curve]
	NewECP               = core.NewECP[Curve]
	NewECPbigs           = core.NewECPbigs[Curve]
	NewECPbig            = core.NewECPbig[Curve]
	ECP_fromBytes        = core.ECP_fromBytes[Curve]
	ECP_fromBytesChecked = core.ECP_fromBytesChecked[Curve]
	ECP_generator        = core.ECP_generator[Curve]
	ECP_mapit            = core.ECP_mapit[Curve]
	MultiAffine          = core.MultiAffine[Curve]
)

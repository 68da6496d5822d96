package goldilocks

import "github.com/11090815/pairing/common/hyperchain-amcl/core"

// Curve 是 GOLDILOCKS 的曲线标记类型，core 中的泛型类型以它实例化。
// GOLDILOCKS 是 Edwards 曲线 x^2 + y^2 = 1 - 39081*x^2*y^2，模数 2^448-2^224-1。
type Curve struct{}

var params = core.MustParams(ROM)

func (Curve) Params() *core.Params { return params }

const MODBYTES = 56

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

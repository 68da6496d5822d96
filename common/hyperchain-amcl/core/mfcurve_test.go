package core_test

import (
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/coretest"
	"github.com/stretchr/testify/require"
)

// mfCurve 是只用于测试的曲线 y^2 = x^3 + 19，模数 p = 0x4000000D*2^224 - 1 是蒙哥马利友好素数，
// 没有任何已发布曲线使用这种模数，它让 mod() 的 MONTGOMERY_FRIENDLY 分支得到覆盖。
// 群阶 n 没有小于 2^21 的因子，但不是素数，这里把整个群当作 G1。
type mfCurve struct{}

var mfROM = core.ROM{
	Name:      "MF255",
	ModBytes:  32,
	BaseBits:  56,
	ModBits:   255,
	ModType:   core.MONTGOMERY_FRIENDLY,
	CurveType: core.WEIERSTRASS,
	Pairing:   core.NOT,
	CurveA:    0,
	CurveBI:   19,

	Modulus: "4000000CFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF",
	Order:   "4000000D0000000000000000000000003615C71BF3DCECCA4C574949DA034C3F",
	CurveB:  "13",
	Gx:      "1",
	Gy:      "003DF4D9F142AFAFBD7AA40C1EF38B348C65D0D60B2832BD7F06A983083DF142",
	Cof:     "1",
}

var mfParams = core.MustParams(mfROM)

func (mfCurve) Params() *core.Params { return mfParams }

func TestMontgomeryFriendlyArithmetic(t *testing.T) {
	coretest.RunArithmetic[mfCurve](t)
}

func TestMontgomeryFriendlyPoints(t *testing.T) {
	coretest.RunPoints[mfCurve](t)
}

func TestNewParamsRejectsBadROM(t *testing.T) {
	rom := mfROM
	rom.ModBits = 256
	_, err := core.NewParams(rom)
	require.ErrorContains(t, err, "modulus has 255 bits")

	rom = mfROM
	rom.ModType = core.PSEUDO_MERSENNE
	_, err = core.NewParams(rom)
	require.ErrorContains(t, err, "not pseudo-Mersenne")

	rom = mfROM
	rom.Gx = "XYZ"
	_, err = core.NewParams(rom)
	require.ErrorContains(t, err, "field Gx is not hexadecimal")

	rom = mfROM
	rom.Pairing = core.BLS
	rom.Embedding = 18
	_, err = core.NewParams(rom)
	require.Error(t, err)

	require.Panics(t, func() {
		rom := mfROM
		rom.BaseBits = 0
		core.MustParams(rom)
	})
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "added", core.Added.String())
	require.Equal(t, "doubled", core.Doubled.String())
	require.Equal(t, "Outcome(7)", core.Outcome(7).String())
}

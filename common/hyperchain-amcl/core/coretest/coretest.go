// Package coretest 是各曲线包共享的测试套件。每个曲线包只需要在自己的 _test.go 中
// 以本包的 RunXxx 函数实例化自己的 Curve 类型，就能跑完整的算术、点运算、配对和向量测试。
package coretest

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"strings"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/leanovate/gopter"
)

// Seed 是套件使用的固定随机种子，失败可以完全重现。
const Seed int64 = 0x1b5c

func newRand(salt int64) *rand.Rand {
	return rand.New(rand.NewSource(Seed + salt))
}

func params[C core.Curve]() *core.Params {
	var c C
	return c.Params()
}

func modBytes[C core.Curve]() int {
	return params[C]().ModBytes()
}

// properties 返回固定种子的 gopter 属性集，n 是每条属性需要通过的用例数。
func properties(n int) *gopter.Properties {
	parameters := gopter.DefaultTestParametersWithSeed(Seed)
	parameters.MinSuccessfulTests = n
	return gopter.NewProperties(parameters)
}

func randScalar[C core.Curve](rng io.Reader) *core.BIG[C] {
	return core.Randomnum(core.CurveOrder[C](), rng)
}

func toInt[C core.Curve](x *core.BIG[C]) *big.Int {
	t := core.NewBIGcopy(x)
	t.Norm()
	return new(big.Int).SetBytes(t.Bytes())
}

func fromInt[C core.Curve](x *big.Int) *core.BIG[C] {
	return core.FromBytes[C](x.FillBytes(make([]byte, modBytes[C]())))
}

// reduced 把任意字节串解释为整数并约简到 [0, m)。
func reduced[C core.Curve](b []byte, m *core.BIG[C]) *core.BIG[C] {
	v := new(big.Int).SetBytes(b)
	return fromInt[C](v.Mod(v, toInt(m)))
}

func parseScalar[C core.Curve](s string) (*core.BIG[C], error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) > modBytes[C]() {
		return nil, fmt.Errorf("scalar %s is longer than %d bytes", s, modBytes[C]())
	}
	return core.FromBytes[C](b), nil
}

// hexLines 把编码切成 MODBYTES 长的分量，每个分量以大写十六进制占一行。
func hexLines(b []byte, mb int) string {
	var sb strings.Builder
	for i := 0; i+mb <= len(b); i += mb {
		fmt.Fprintf(&sb, "%X\n", b[i:i+mb])
	}
	return sb.String()
}

func bigLines[C core.Curve](xs ...*core.BIG[C]) string {
	var sb strings.Builder
	for _, x := range xs {
		fmt.Fprintf(&sb, "%X\n", x.Bytes())
	}
	return sb.String()
}

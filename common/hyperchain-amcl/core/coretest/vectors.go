package coretest

import (
	"fmt"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/cockroachdb/datadriven"
)

// RunPairing 检查配对的双线性、非退化性、多重配对以及 G2/GT 的编码和成员测试。
func RunPairing[C core.Curve](t *testing.T) {
	switch k := params[C]().Embedding(); k {
	case 12:
		runPairing12[C](t)
	case 24:
		runPairing24[C](t)
	case 48:
		runPairing48[C](t)
	default:
		t.Fatalf("%s is not pairing friendly (embedding degree %d)", params[C]().Name(), k)
	}
}

// RunVectors 执行 dir 下的 datadriven 向量文件。支持的命令：
//
//	mul e=<hex>               e*G，Montgomery 曲线只输出 x
//	g1mul e=<hex>             G1mul(G, e)
//	g2mul e=<hex>             G2mul(Q, e)，按 ToBytes 的分量顺序输出
//	pairing [a=<hex> b=<hex>] Fexp(Ate(b*Q, a*G))，省略 a、b 时为 1
func RunVectors[C core.Curve](t *testing.T, dir string) {
	datadriven.Walk(t, dir, func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			scalar := func(key string) *core.BIG[C] {
				if !d.HasArg(key) {
					return core.NewBIGint[C](1)
				}
				var s string
				d.ScanArgs(t, key, &s)
				e, err := parseScalar[C](s)
				if err != nil {
					d.Fatalf(t, "%v", err)
				}
				return e
			}

			switch d.Cmd {
			case "mul", "g1mul":
				G := core.ECP_generator[C]()
				var P *core.ECP[C]
				if d.Cmd == "mul" {
					P = G.Mul(scalar("e"))
				} else {
					P = core.G1mul(G, scalar("e"))
				}
				if params[C]().CurveType() == core.MONTGOMERY {
					return bigLines(P.GetX())
				}
				return bigLines(P.GetX(), P.GetY())

			case "g2mul":
				switch params[C]().Embedding() {
				case 12:
					return g2mulVector12(scalar("e"))
				case 24:
					return g2mulVector24(scalar("e"))
				case 48:
					return g2mulVector48(scalar("e"))
				}

			case "pairing":
				a, b := scalar("a"), scalar("b")
				switch params[C]().Embedding() {
				case 12:
					return pairingVector12(a, b)
				case 24:
					return pairingVector24(a, b)
				case 48:
					return pairingVector48(a, b)
				}
			}
			return fmt.Sprintf("unknown command %q for %s", d.Cmd, params[C]().Name())
		})
	})
}

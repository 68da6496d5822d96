package pairingbench

import (
	"fmt"
	"io"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
)

// pairingEngine 为配对友好曲线装配 G2、GT 上的操作、自检和向量命令。
// 嵌入度 12、24、48 的曲线分别使用 ECP2/FP12、ECP4/FP24、ECP8/FP48。
type pairingEngine interface {
	install(t *Target)
}

type engine12[C core.Curve] struct{}
type engine24[C core.Curve] struct{}
type engine48[C core.Curve] struct{}

func newEngine12[C core.Curve]() pairingEngine { return engine12[C]{} }
func newEngine24[C core.Curve]() pairingEngine { return engine24[C]{} }
func newEngine48[C core.Curve]() pairingEngine { return engine48[C]{} }

func (engine12[C]) install(t *Target) {
	r := core.CurveOrder[C]()
	mb := t.Info.ModBytes
	group := t.selftest

	t.ops["g2mul"] = func(rng io.Reader) func() {
		Q := core.ECP2_generator[C]()
		e := core.Randomnum(r, rng)
		return func() { core.G2mul(Q, e) }
	}
	t.ops["ate"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		Q := core.G2mul(core.ECP2_generator[C](), core.Randomnum(r, rng))
		return func() { core.Ate(Q, G) }
	}
	t.ops["fexp"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		m := core.Ate(core.ECP2_generator[C](), G)
		return func() { core.Fexp(m) }
	}
	t.ops["pairing"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		Q := core.G2mul(core.ECP2_generator[C](), core.Randomnum(r, rng))
		return func() { core.Fexp(core.Ate(Q, G)) }
	}
	t.ops["gtpow"] = func(rng io.Reader) func() {
		g := core.Fexp(core.Ate(core.ECP2_generator[C](), core.ECP_generator[C]()))
		e := core.Randomnum(r, rng)
		return func() { core.GTpow(g, e) }
	}

	t.vectors["g2mul"] = func(args map[string][]byte) string {
		P := core.G2mul(core.ECP2_generator[C](), scalarArg[C](args, "e"))
		b := make([]byte, 4*mb)
		P.ToBytes(b)
		return hexLines(b, mb)
	}
	t.vectors["pairing"] = func(args map[string][]byte) string {
		G := core.G1mul(core.ECP_generator[C](), scalarArg[C](args, "a"))
		Q := core.G2mul(core.ECP2_generator[C](), scalarArg[C](args, "b"))
		g := make([]byte, 12*mb)
		core.Fexp(core.Ate(Q, G)).ToBytes(g)
		return hexLines(g, mb)
	}

	t.selftest = func(rng io.Reader) error {
		if err := group(rng); err != nil {
			return err
		}
		name := t.Info.Name
		G := core.ECP_generator[C]()
		Q := core.ECP2_generator[C]()
		if !core.G2member(Q) || !Q.Mul(r).IsInfinity() {
			return fmt.Errorf("%s: G2 generator does not have order r", name)
		}
		e := core.Fexp(core.Ate(Q, G))
		if e.IsUnity() {
			return fmt.Errorf("%s: pairing is degenerate", name)
		}
		if !core.GTmember(e) {
			return fmt.Errorf("%s: e(Q, G) is not in GT", name)
		}
		a := core.Randomnum(r, rng)
		b := core.Randomnum(r, rng)
		lhs := core.Fexp(core.Ate(core.G2mul(Q, b), core.G1mul(G, a)))
		if !lhs.Equals(core.GTpow(e, core.Modmul(a, b, r))) {
			return fmt.Errorf("%s: pairing is not bilinear", name)
		}
		return nil
	}
}

func (engine24[C]) install(t *Target) {
	r := core.CurveOrder[C]()
	mb := t.Info.ModBytes
	group := t.selftest

	t.ops["g2mul"] = func(rng io.Reader) func() {
		Q := core.ECP4_generator[C]()
		e := core.Randomnum(r, rng)
		return func() { core.G2mul24(Q, e) }
	}
	t.ops["ate"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		Q := core.G2mul24(core.ECP4_generator[C](), core.Randomnum(r, rng))
		return func() { core.Ate24(Q, G) }
	}
	t.ops["fexp"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		m := core.Ate24(core.ECP4_generator[C](), G)
		return func() { core.Fexp24(m) }
	}
	t.ops["pairing"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		Q := core.G2mul24(core.ECP4_generator[C](), core.Randomnum(r, rng))
		return func() { core.Fexp24(core.Ate24(Q, G)) }
	}
	t.ops["gtpow"] = func(rng io.Reader) func() {
		g := core.Fexp24(core.Ate24(core.ECP4_generator[C](), core.ECP_generator[C]()))
		e := core.Randomnum(r, rng)
		return func() { core.GTpow24(g, e) }
	}

	t.vectors["g2mul"] = func(args map[string][]byte) string {
		P := core.G2mul24(core.ECP4_generator[C](), scalarArg[C](args, "e"))
		b := make([]byte, 8*mb)
		P.ToBytes(b)
		return hexLines(b, mb)
	}
	t.vectors["pairing"] = func(args map[string][]byte) string {
		G := core.G1mul(core.ECP_generator[C](), scalarArg[C](args, "a"))
		Q := core.G2mul24(core.ECP4_generator[C](), scalarArg[C](args, "b"))
		g := make([]byte, 24*mb)
		core.Fexp24(core.Ate24(Q, G)).ToBytes(g)
		return hexLines(g, mb)
	}

	t.selftest = func(rng io.Reader) error {
		if err := group(rng); err != nil {
			return err
		}
		name := t.Info.Name
		G := core.ECP_generator[C]()
		Q := core.ECP4_generator[C]()
		if !core.G2member24(Q) || !Q.Mul(r).IsInfinity() {
			return fmt.Errorf("%s: G2 generator does not have order r", name)
		}
		e := core.Fexp24(core.Ate24(Q, G))
		if e.IsUnity() {
			return fmt.Errorf("%s: pairing is degenerate", name)
		}
		if !core.GTmember24(e) {
			return fmt.Errorf("%s: e(Q, G) is not in GT", name)
		}
		a := core.Randomnum(r, rng)
		b := core.Randomnum(r, rng)
		lhs := core.Fexp24(core.Ate24(core.G2mul24(Q, b), core.G1mul(G, a)))
		if !lhs.Equals(core.GTpow24(e, core.Modmul(a, b, r))) {
			return fmt.Errorf("%s: pairing is not bilinear", name)
		}
		return nil
	}
}

func (engine48[C]) install(t *Target) {
	r := core.CurveOrder[C]()
	mb := t.Info.ModBytes
	group := t.selftest

	t.ops["g2mul"] = func(rng io.Reader) func() {
		Q := core.ECP8_generator[C]()
		e := core.Randomnum(r, rng)
		return func() { core.G2mul48(Q, e) }
	}
	t.ops["ate"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		Q := core.G2mul48(core.ECP8_generator[C](), core.Randomnum(r, rng))
		return func() { core.Ate48(Q, G) }
	}
	t.ops["fexp"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		m := core.Ate48(core.ECP8_generator[C](), G)
		return func() { core.Fexp48(m) }
	}
	t.ops["pairing"] = func(rng io.Reader) func() {
		G := core.G1mul(core.ECP_generator[C](), core.Randomnum(r, rng))
		Q := core.G2mul48(core.ECP8_generator[C](), core.Randomnum(r, rng))
		return func() { core.Fexp48(core.Ate48(Q, G)) }
	}
	t.ops["gtpow"] = func(rng io.Reader) func() {
		g := core.Fexp48(core.Ate48(core.ECP8_generator[C](), core.ECP_generator[C]()))
		e := core.Randomnum(r, rng)
		return func() { core.GTpow48(g, e) }
	}

	t.vectors["g2mul"] = func(args map[string][]byte) string {
		P := core.G2mul48(core.ECP8_generator[C](), scalarArg[C](args, "e"))
		b := make([]byte, 16*mb)
		P.ToBytes(b)
		return hexLines(b, mb)
	}
	t.vectors["pairing"] = func(args map[string][]byte) string {
		G := core.G1mul(core.ECP_generator[C](), scalarArg[C](args, "a"))
		Q := core.G2mul48(core.ECP8_generator[C](), scalarArg[C](args, "b"))
		g := make([]byte, 48*mb)
		core.Fexp48(core.Ate48(Q, G)).ToBytes(g)
		return hexLines(g, mb)
	}

	t.selftest = func(rng io.Reader) error {
		if err := group(rng); err != nil {
			return err
		}
		name := t.Info.Name
		G := core.ECP_generator[C]()
		Q := core.ECP8_generator[C]()
		if !core.G2member48(Q) || !Q.Mul(r).IsInfinity() {
			return fmt.Errorf("%s: G2 generator does not have order r", name)
		}
		e := core.Fexp48(core.Ate48(Q, G))
		if e.IsUnity() {
			return fmt.Errorf("%s: pairing is degenerate", name)
		}
		if !core.GTmember48(e) {
			return fmt.Errorf("%s: e(Q, G) is not in GT", name)
		}
		a := core.Randomnum(r, rng)
		b := core.Randomnum(r, rng)
		lhs := core.Fexp48(core.Ate48(core.G2mul48(Q, b), core.G1mul(G, a)))
		if !lhs.Equals(core.GTpow48(e, core.Modmul(a, b, r))) {
			return fmt.Errorf("%s: pairing is not bilinear", name)
		}
		return nil
	}
}

// scalarArg 取出参数 key 对应的标量，缺省为 1。
func scalarArg[C core.Curve](args map[string][]byte, key string) *core.BIG[C] {
	b, ok := args[key]
	if !ok {
		return core.NewBIGint[C](1)
	}
	return core.FromBytes[C](b)
}

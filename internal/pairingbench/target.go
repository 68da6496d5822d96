package pairingbench

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS24"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS381"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS383"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS48"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BN254"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/C25519"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/ED25519"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/FP256BN"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/GOLDILOCKS"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/NIST256"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/NUMS256W"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/SECP256K1"
	"github.com/11090815/pairing/vars"
)

// Prepare 用 rng 生成一次操作的输入，返回只做被测计算的闭包。
type Prepare func(rng io.Reader) func()

// Evaluator 计算一条向量命令的输出，args 是以字节表示的标量参数。
type Evaluator func(args map[string][]byte) string

// CurveInfo 描述一条曲线，供 curves 命令展示。
type CurveInfo struct {
	Name      string
	Shape     string
	ModType   string
	Pairing   string
	Embedding int
	ModBits   int
	OrderBits int
	ModBytes  int
}

// Target 是一条可以被测量、自检和生成向量的曲线。
type Target struct {
	Info     CurveInfo
	ops      map[string]Prepare
	vectors  map[string]Evaluator
	selftest func(rng io.Reader) error
	order    func() []byte
}

// Operations 返回这条曲线支持的操作名，按字母序排列。
func (t *Target) Operations() []string {
	ops := make([]string, 0, len(t.ops))
	for op := range t.ops {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func (t *Target) Supports(op string) bool {
	_, ok := t.ops[op]
	return ok
}

// Prepare 返回操作 op 的准备函数。
func (t *Target) Prepare(op string) (Prepare, error) {
	p, ok := t.ops[op]
	if !ok {
		return nil, fmt.Errorf("operation %q is not supported on curve %s", op, t.Info.Name)
	}
	return p, nil
}

// SelfTest 检查群的阶，以及配对曲线上配对的双线性和非退化性。
func (t *Target) SelfTest(rng io.Reader) error {
	return t.selftest(rng)
}

// VectorCommands 返回可以生成向量的命令名。
func (t *Target) VectorCommands() []string {
	cmds := make([]string, 0, len(t.vectors))
	for cmd := range t.vectors {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Evaluate 计算 datadriven 向量文件中一条命令的期望输出。
func (t *Target) Evaluate(cmd string, args map[string][]byte) (string, error) {
	ev, ok := t.vectors[cmd]
	if !ok {
		return "", fmt.Errorf("vector command %q is not supported on curve %s", cmd, t.Info.Name)
	}
	return ev(args), nil
}

// Vector 用 rng 抽取标量，返回一条完整的 datadriven 测试用例。
func (t *Target) Vector(cmd string, rng io.Reader) (string, error) {
	ev, ok := t.vectors[cmd]
	if !ok {
		return "", fmt.Errorf("vector command %q is not supported on curve %s", cmd, t.Info.Name)
	}
	var keys []string
	switch cmd {
	case "pairing":
		keys = []string{"a", "b"}
	default:
		keys = []string{"e"}
	}

	args := make(map[string][]byte, len(keys))
	header := []string{cmd}
	for _, k := range keys {
		s := t.randomScalar(rng)
		args[k] = s
		header = append(header, fmt.Sprintf("%s=%s", k, strings.ToUpper(hex.EncodeToString(s))))
	}
	return strings.Join(header, " ") + "\n----\n" + ev(args), nil
}

func (t *Target) randomScalar(rng io.Reader) []byte {
	order := t.order()
	b := make([]byte, len(order))
	// 拒绝采样，得到 [1, r) 中的标量。
	for {
		if _, err := io.ReadFull(rng, b); err != nil {
			panic(err)
		}
		if !isZero(b) && lessThan(b, order) {
			return b
		}
		b[0] = 0
		if !isZero(b) && lessThan(b, order) {
			return b
		}
	}
}

func isZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func lessThan(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

var (
	shapeNames   = map[int]string{core.WEIERSTRASS: "weierstrass", core.EDWARDS: "edwards", core.MONTGOMERY: "montgomery"}
	modTypeNames = map[int]string{core.NOT_SPECIAL: "not-special", core.PSEUDO_MERSENNE: "pseudo-mersenne", core.MONTGOMERY_FRIENDLY: "montgomery-friendly", core.GENERALISED_MERSENNE: "generalised-mersenne"}
	pairingNames = map[int]string{core.NOT: "-", core.BN: "BN", core.BLS: "BLS"}
)

var catalog = map[string]*Target{}

func register(t *Target) {
	catalog[t.Info.Name] = t
}

func init() {
	register(newTarget[bn254.Curve]())
	register(newTarget[fp256bn.Curve]())
	register(newTarget[bls381.Curve]())
	register(newTarget[bls383.Curve]())
	register(newTarget[bls24.Curve]())
	register(newTarget[bls48.Curve]())
	register(newTarget[secp256k1.Curve]())
	register(newTarget[nist256.Curve]())
	register(newTarget[nums256w.Curve]())
	register(newTarget[c25519.Curve]())
	register(newTarget[ed25519.Curve]())
	register(newTarget[goldilocks.Curve]())
}

// Lookup 按名字查找曲线，名字不区分大小写。
func Lookup(name string) (*Target, error) {
	if t, ok := catalog[strings.ToUpper(name)]; ok {
		return t, nil
	}
	return nil, vars.ErrorUnknownCurve{Name: name}
}

// Targets 返回全部曲线，按名字排序。
func Targets() []*Target {
	ts := make([]*Target, 0, len(catalog))
	for _, t := range catalog {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].Info.Name < ts[j].Info.Name })
	return ts
}

func newTarget[C core.Curve]() *Target {
	var c C
	p := c.Params()
	r := core.CurveOrder[C]()
	mont := p.CurveType() == core.MONTGOMERY

	t := &Target{
		Info: CurveInfo{
			Name:      p.Name(),
			Shape:     shapeNames[p.CurveType()],
			ModType:   modTypeNames[p.ModType()],
			Pairing:   pairingNames[p.Pairing()],
			Embedding: p.Embedding(),
			ModBits:   core.Modulus[C]().Nbits(),
			OrderBits: r.Nbits(),
			ModBytes:  p.ModBytes(),
		},
		ops:     map[string]Prepare{},
		vectors: map[string]Evaluator{},
		order:   func() []byte { return core.CurveOrder[C]().Bytes() },
	}

	t.ops["mul"] = func(rng io.Reader) func() {
		G := core.ECP_generator[C]()
		e := core.Randomnum(r, rng)
		return func() { G.Mul(e) }
	}
	t.ops["mapit"] = func(rng io.Reader) func() {
		h := make([]byte, p.ModBytes())
		if _, err := io.ReadFull(rng, h); err != nil {
			panic(err)
		}
		return func() { core.ECP_mapit[C](h) }
	}
	t.vectors["mul"] = func(args map[string][]byte) string {
		P := core.ECP_generator[C]().Mul(core.FromBytes[C](args["e"]))
		if mont {
			return bigLines(P.GetX())
		}
		return bigLines(P.GetX(), P.GetY())
	}

	t.selftest = func(rng io.Reader) error {
		return groupSelfTest[C](rng)
	}

	if p.Pairing() == core.NOT {
		return t
	}

	t.ops["g1mul"] = func(rng io.Reader) func() {
		G := core.ECP_generator[C]()
		e := core.Randomnum(r, rng)
		return func() { core.G1mul(G, e) }
	}
	t.vectors["g1mul"] = func(args map[string][]byte) string {
		P := core.G1mul(core.ECP_generator[C](), core.FromBytes[C](args["e"]))
		return bigLines(P.GetX(), P.GetY())
	}

	var engine pairingEngine
	switch p.Embedding() {
	case 12:
		engine = newEngine12[C]()
	case 24:
		engine = newEngine24[C]()
	case 48:
		engine = newEngine48[C]()
	}
	engine.install(t)
	return t
}

func groupSelfTest[C core.Curve](rng io.Reader) error {
	var c C
	name := c.Params().Name()
	r := core.CurveOrder[C]()
	G := core.ECP_generator[C]()
	if G.IsInfinity() {
		return fmt.Errorf("%s: generator is the point at infinity", name)
	}
	if !G.Mul(r).IsInfinity() {
		return fmt.Errorf("%s: r·G is not the point at infinity", name)
	}
	a := core.Randomnum(r, rng)
	b := core.Randomnum(r, rng)
	if !G.Mul(a).Mul(b).Equals(G.Mul(core.Modmul(a, b, r))) {
		return fmt.Errorf("%s: b·(a·G) != (ab)·G", name)
	}
	return nil
}

func bigLines[C core.Curve](xs ...*core.BIG[C]) string {
	var sb strings.Builder
	for _, x := range xs {
		fmt.Fprintf(&sb, "%X\n", x.Bytes())
	}
	return sb.String()
}

func hexLines(b []byte, mb int) string {
	var sb strings.Builder
	for i := 0; i+mb <= len(b); i += mb {
		fmt.Fprintf(&sb, "%X\n", b[i:i+mb])
	}
	return sb.String()
}

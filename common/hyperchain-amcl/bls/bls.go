// Package bls 在嵌入度为 12 的配对友好曲线上实现 BLS 短签名：签名位于 G1，公钥位于 G2。
//
// 私钥的生成遵循 draft-irtf-cfrg-bls-signature 的 KeyGen（HKDF），消息先经 expand_message_xmd
// 扩展成两个域元素，再用逐个尝试 x 坐标的方式映射到曲线上并清除余因子。验证用一次多重配对
// 检查 e(G2, -σ)·e(PK, H(m)) = 1。
package bls

import (
	"fmt"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/common/util"
	"github.com/11090815/pairing/vars"
)

const (
	BLS_OK   = 0
	BLS_FAIL = -1
)

// 哈希到域时额外保留的安全位数。
const securityBits = 128

var logger = hlogging.MustGetLogger("pairing.bls")

// Scheme 是绑定到曲线 C 的 BLS 签名方案，创建后只读，可以被多个 goroutine 共享。
// 各方法只把 g2 的副本交给 core，core 的运算可能会就地规整操作数的表示。
type Scheme[C core.Curve] struct {
	name string
	mb   int
	dst  []byte
	g2   *core.ECP2[C]
	r    *core.BIG[C]
}

// New 为曲线 C 创建签名方案，C 必须是嵌入度为 12 的配对友好曲线。
func New[C core.Curve]() (*Scheme[C], error) {
	var c C
	p := c.Params()
	if p.Pairing() == core.NOT || p.Embedding() != 12 {
		return nil, fmt.Errorf("curve %s does not support BLS over k=12 pairings [embedding degree %d]", p.Name(), p.Embedding())
	}
	g := core.ECP2_generator[C]()
	if g.IsInfinity() {
		return nil, vars.ErrorInvalidPoint{Group: p.Name() + " G2", Reason: "generator is the point at infinity"}
	}
	s := &Scheme[C]{
		name: p.Name(),
		mb:   p.ModBytes(),
		dst:  []byte(fmt.Sprintf("BLS_SIG_%sG1_XMD:SHA-256_TAI_RO_NUL_", p.Name())),
		g2:   g,
		r:    core.CurveOrder[C](),
	}
	logger.Debugf("Created BLS scheme on curve %s with DST %q.", s.name, s.dst)
	return s, nil
}

// SecretKeySize 返回私钥的字节长度。
func (s *Scheme[C]) SecretKeySize() int { return s.mb }

// PublicKeySize 返回公钥（G2 点）的字节长度。
func (s *Scheme[C]) PublicKeySize() int { return 4 * s.mb }

// SignatureSize 返回压缩签名（G1 点）的字节长度。
func (s *Scheme[C]) SignatureSize() int { return s.mb + 1 }

func (s *Scheme[C]) hashToField(m []byte, count int) []*core.BIG[C] {
	q := core.Modulus[C]()
	L := (q.Nbits() + securityBits + 7) / 8
	okm := amcl.XMDExpand(amcl.MC_SHA2, amcl.SHA256, L*count, s.dst, m)
	u := make([]*core.BIG[C], count)
	for i := range u {
		dx := core.DBIG_fromBytes[C](okm[i*L : (i+1)*L])
		u[i] = dx.Mod(q)
	}
	return u
}

// HashToPoint 把消息映射到 G1 中的点。
func (s *Scheme[C]) HashToPoint(m []byte) *core.ECP[C] {
	u := s.hashToField(m, 2)
	P := core.ECP_hap2point(u[0])
	P1 := core.ECP_hap2point(u[1])
	P.Add(P1)
	P.Cfp()
	P.Affine()
	return P
}

// KeyPairGenerate 由至少 32 字节的种子材料 ikm 派生私钥 sk 和公钥 pk = sk·G2。
func (s *Scheme[C]) KeyPairGenerate(ikm []byte) (sk []byte, pk []byte, err error) {
	if len(ikm) < 32 {
		return nil, nil, vars.ErrorInvalidLength{Kind: "BLS key material", Want: 32, Got: len(ikm)}
	}
	nbs := s.r.Nbits()
	L := (3*((nbs+7)/8) + 1) / 2

	prk := amcl.HKDFExtract(amcl.MC_SHA2, amcl.SHA256, []byte("BLS-SIG-KEYGEN-SALT-"), util.ConcatenateBytes(ikm, []byte{0}))
	okm := amcl.HKDFExpand(amcl.MC_SHA2, amcl.SHA256, L, prk, amcl.IntToBytes(L, 2))

	dx := core.DBIG_fromBytes[C](okm)
	x := dx.Mod(s.r)
	if x.IsZilch() {
		return nil, nil, fmt.Errorf("derived BLS secret key on curve %s is zero", s.name)
	}

	sk = make([]byte, s.mb)
	x.ToBytes(sk)
	pk = make([]byte, 4*s.mb)
	core.G2mul(core.NewECP2copy(s.g2), x).ToBytes(pk)
	return sk, pk, nil
}

// Sign 用私钥 sk 对消息 m 签名，返回压缩编码的 G1 点。
func (s *Scheme[C]) Sign(m []byte, sk []byte) ([]byte, error) {
	x, err := core.FromBytesChecked[C](sk)
	if err != nil {
		return nil, err
	}
	if x.IsZilch() || core.Comp(x, s.r) >= 0 {
		return nil, fmt.Errorf("BLS secret key out of range on curve %s", s.name)
	}
	D := core.G1mul(s.HashToPoint(m), x)
	sig := make([]byte, s.mb+1)
	D.ToBytes(sig, true)
	return sig, nil
}

// Verify 检查 sig 是否是公钥 pk 对消息 m 的有效签名。
func (s *Scheme[C]) Verify(sig []byte, m []byte, pk []byte) error {
	D, err := core.ECP_fromBytesChecked[C](sig)
	if err != nil {
		return err
	}
	if !core.G1member(D) {
		return vars.ErrorInvalidSignature{Scheme: "BLS", Reason: "signature is not in G1"}
	}
	W, err := core.ECP2_fromBytesChecked[C](pk)
	if err != nil {
		return err
	}
	if !core.G2member(W) {
		return vars.ErrorInvalidPoint{Group: s.name + " G2", Reason: "public key is not in G2"}
	}
	HM := s.HashToPoint(m)

	D.Neg()
	r := core.Initmp[C]()
	core.Another(r, core.NewECP2copy(s.g2), D)
	core.Another(r, W, HM)
	v := core.Fexp(core.Miller(r))
	if !v.IsUnity() {
		logger.Debugf("BLS verification failed on curve %s for a %d byte message.", s.name, len(m))
		return vars.ErrorInvalidSignature{Scheme: "BLS", Reason: "pairing check failed"}
	}
	return nil
}

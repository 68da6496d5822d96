package core

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/11090815/pairing/common/hlogging"
)

var logger = hlogging.MustGetLogger("pairing.rom")

// Chunk 是大整数的单个 limb，所有曲线都使用 64 位字长。
type Chunk int64

const CHUNK int = 64

// MaxNLEN 覆盖所有支持的曲线（BLS48 需要 10 个 58 位的 limb）。
const MaxNLEN = 10
const MaxDNLEN = 2 * MaxNLEN

// Modulus types
const NOT_SPECIAL int = 0
const PSEUDO_MERSENNE int = 1
const MONTGOMERY_FRIENDLY int = 2
const GENERALISED_MERSENNE int = 3

// Curve types
const WEIERSTRASS int = 0
const EDWARDS int = 1
const MONTGOMERY int = 2

// Pairing Friendly?
const NOT int = 0
const BN int = 1
const BLS int = 2

// Pairing Twist type
const D_TYPE int = 0
const M_TYPE int = 1

// Pairing x parameter sign
const POSITIVEX int = 0
const NEGATIVEX int = 1

// Curve 是曲线标记类型需要实现的接口，所有算术类型都以它为类型参数，不同曲线的元素因此不能混用。
type Curve interface {
	Params() *Params
}

func params[C Curve]() *Params {
	var c C
	return c.Params()
}

// ROM 描述一条曲线的静态参数，所有大整数都以大端十六进制字符串给出。
type ROM struct {
	Name      string
	ModBytes  uint
	BaseBits  uint
	ModBits   uint
	ModType   int
	CurveType int
	Pairing   int
	Embedding int // 12, 24 or 48 for pairing friendly curves
	Twist     int
	SignOfX   int
	CurveA    int
	CurveBI   int // small form of B, 0 when B does not fit

	Modulus string
	Order   string
	CurveB  string
	Gx      string
	Gy      string
	Cof     string

	// pairing friendly curves only
	Fra string
	Frb string
	Bnx string
	Cru string
	Pxs []string // twist generator x, flattened real part first
	Pys []string

	// BN curves only: GLV and GS lattices
	W  [2]string
	SB [2][2]string
	WB [4]string
	BB [4][4]string
}

type limbs = [MaxNLEN]Chunk

type romField struct {
	name string
	hex  string
	dst  *limbs
}

// Params 是从 ROM 派生出的不可变参数集合，在曲线包初始化时构造一次，之后只读。
type Params struct {
	rom ROM

	NLEN     int
	DNLEN    int
	BASEBITS uint
	MODBITS  uint
	MODBYTES uint
	BIGBITS  int
	BMASK    Chunk
	HBITS    uint
	NEXCESS  int
	TBITS    uint
	TMASK    Chunk
	OMASK    Chunk
	FEXCESS  int32
	MConst   Chunk
	MOD8     uint
	ATEBITS  int

	modulus limbs
	r2modp  limbs
	order   limbs
	curveB  limbs
	gx      limbs
	gy      limbs
	cof     limbs
	fra     limbs
	frb     limbs
	bnx     limbs
	cru     limbs
	pxs     []limbs
	pys     []limbs
	w       [2]limbs
	sb      [2][2]limbs
	wb      [4]limbs
	bb      [4][4]limbs
}

func (p *Params) Name() string    { return p.rom.Name }
func (p *Params) CurveType() int  { return p.rom.CurveType }
func (p *Params) ModType() int    { return p.rom.ModType }
func (p *Params) Pairing() int    { return p.rom.Pairing }
func (p *Params) Embedding() int  { return p.rom.Embedding }
func (p *Params) Twist() int      { return p.rom.Twist }
func (p *Params) SignOfX() int    { return p.rom.SignOfX }
func (p *Params) CurveA() int     { return p.rom.CurveA }
func (p *Params) ModBytes() int   { return int(p.MODBYTES) }
func (p *Params) OrderHex() string { return p.rom.Order }

// MustParams 与 NewParams 相同，但参数非法时直接 panic，供曲线包在初始化阶段使用。
func MustParams(rom ROM) *Params {
	p, err := NewParams(rom)
	if err != nil {
		panic(err)
	}
	return p
}

// NewParams 校验 ROM 并派生出 NLEN、掩码、蒙哥马利常数 MConst 以及 R^2 mod p 等运行参数。
func NewParams(rom ROM) (*Params, error) {
	if rom.BaseBits == 0 || rom.BaseBits >= uint(CHUNK)-4 {
		return nil, fmt.Errorf("invalid curve parameters for %s: bad number base [%d]", rom.Name, rom.BaseBits)
	}
	p := &Params{rom: rom}
	p.MODBYTES = rom.ModBytes
	p.BASEBITS = rom.BaseBits
	p.MODBITS = rom.ModBits
	p.NLEN = int(1 + (8*rom.ModBytes-1)/rom.BaseBits)
	p.DNLEN = 2 * p.NLEN
	if p.NLEN > MaxNLEN || p.NLEN < 2 {
		return nil, fmt.Errorf("invalid curve parameters for %s: %d limbs not supported", rom.Name, p.NLEN)
	}
	p.BIGBITS = int(rom.ModBytes * 8)
	p.BMASK = (Chunk(1) << p.BASEBITS) - 1
	p.HBITS = p.BASEBITS / 2
	p.NEXCESS = 1 << (uint(CHUNK) - p.BASEBITS - 1)
	p.TBITS = p.MODBITS % p.BASEBITS
	p.TMASK = (Chunk(1) << p.TBITS) - 1
	p.OMASK = Chunk(-1) << p.TBITS

	sh := p.BASEBITS*uint(p.NLEN) - p.MODBITS
	if sh > 30 {
		sh = 30
	}
	p.FEXCESS = (int32(1) << sh) - 1

	m, err := parseHex(rom.Name, "Modulus", rom.Modulus, rom.ModBytes)
	if err != nil {
		return nil, err
	}
	if uint(m.BitLen()) != rom.ModBits {
		return nil, fmt.Errorf("invalid curve parameters for %s: modulus has %d bits, want %d", rom.Name, m.BitLen(), rom.ModBits)
	}
	if (rom.ModBits-1)/rom.BaseBits != uint(p.NLEN-1) {
		return nil, fmt.Errorf("invalid curve parameters for %s: modulus top bit outside the top limb", rom.Name)
	}
	p.MOD8 = uint(new(big.Int).Mod(m, big.NewInt(8)).Uint64())
	p.modulus = p.toLimbs(m)

	mconst, err := p.montConst(m)
	if err != nil {
		return nil, err
	}
	p.MConst = mconst

	R := new(big.Int).Lsh(big.NewInt(1), p.BASEBITS*uint(p.NLEN))
	R.Mod(R, m)
	R.Mul(R, R)
	R.Mod(R, m)
	p.r2modp = p.toLimbs(R)

	fields := []romField{
		{"Order", rom.Order, &p.order},
		{"CurveB", rom.CurveB, &p.curveB},
		{"Gx", rom.Gx, &p.gx},
		{"Gy", rom.Gy, &p.gy},
		{"Cof", rom.Cof, &p.cof},
	}
	if rom.Pairing != NOT {
		fields = append(fields,
			romField{"Fra", rom.Fra, &p.fra},
			romField{"Frb", rom.Frb, &p.frb},
			romField{"Bnx", rom.Bnx, &p.bnx},
			romField{"Cru", rom.Cru, &p.cru},
		)
	}
	if rom.Pairing == BN {
		for i := 0; i < 2; i++ {
			fields = append(fields, romField{fmt.Sprintf("W[%d]", i), rom.W[i], &p.w[i]})
			for j := 0; j < 2; j++ {
				fields = append(fields, romField{fmt.Sprintf("SB[%d][%d]", i, j), rom.SB[i][j], &p.sb[i][j]})
			}
		}
		for i := 0; i < 4; i++ {
			fields = append(fields, romField{fmt.Sprintf("WB[%d]", i), rom.WB[i], &p.wb[i]})
			for j := 0; j < 4; j++ {
				fields = append(fields, romField{fmt.Sprintf("BB[%d][%d]", i, j), rom.BB[i][j], &p.bb[i][j]})
			}
		}
	}
	for _, f := range fields {
		v, err := parseHex(rom.Name, f.name, f.hex, rom.ModBytes)
		if err != nil {
			return nil, err
		}
		*f.dst = p.toLimbs(v)
	}

	if rom.Pairing != NOT {
		var want int
		switch rom.Embedding {
		case 12:
			want = 2
		case 24:
			want = 4
		case 48:
			want = 8
		default:
			return nil, fmt.Errorf("invalid curve parameters for %s: unsupported embedding degree %d", rom.Name, rom.Embedding)
		}
		if len(rom.Pxs) != want || len(rom.Pys) != want {
			return nil, fmt.Errorf("invalid curve parameters for %s: twist generator needs %d coordinates, got [%d, %d]", rom.Name, want, len(rom.Pxs), len(rom.Pys))
		}
		for i := 0; i < want; i++ {
			x, err := parseHex(rom.Name, fmt.Sprintf("Pxs[%d]", i), rom.Pxs[i], rom.ModBytes)
			if err != nil {
				return nil, err
			}
			y, err := parseHex(rom.Name, fmt.Sprintf("Pys[%d]", i), rom.Pys[i], rom.ModBytes)
			if err != nil {
				return nil, err
			}
			p.pxs = append(p.pxs, p.toLimbs(x))
			p.pys = append(p.pys, p.toLimbs(y))
		}
		x, _ := new(big.Int).SetString(strings.TrimSpace(rom.Bnx), 16)
		n := new(big.Int).Set(x)
		if rom.Pairing == BN {
			n.Mul(n, big.NewInt(6))
			if rom.SignOfX == POSITIVEX {
				n.Add(n, big.NewInt(2))
			} else {
				n.Sub(n, big.NewInt(2))
			}
		}
		n.Mul(n, big.NewInt(3))
		p.ATEBITS = n.BitLen()
	}

	logger.Debugf("Loaded curve %s: %d limbs of %d bits, modulus type %d, field excess %d.", rom.Name, p.NLEN, p.BASEBITS, rom.ModType, p.FEXCESS)
	return p, nil
}

// montConst 计算 mod() 使用的常数：一般模数为 -1/p mod 2^BASEBITS，伪梅森素数为 2^MODBITS-p，
// 蒙哥马利友好素数为 (p+1)/2^(BASEBITS*(NLEN-1))，Goldilocks 为 1。
func (p *Params) montConst(m *big.Int) (Chunk, error) {
	switch p.rom.ModType {
	case NOT_SPECIAL:
		base := new(big.Int).Lsh(big.NewInt(1), p.BASEBITS)
		inv := new(big.Int).ModInverse(m, base)
		if inv == nil {
			return 0, fmt.Errorf("invalid curve parameters for %s: even modulus", p.rom.Name)
		}
		inv.Sub(base, inv)
		return Chunk(inv.Int64()), nil
	case PSEUDO_MERSENNE:
		c := new(big.Int).Lsh(big.NewInt(1), p.MODBITS)
		c.Sub(c, m)
		if c.Sign() <= 0 || c.BitLen() > int(p.BASEBITS)-8 {
			return 0, fmt.Errorf("invalid curve parameters for %s: modulus is not pseudo-Mersenne", p.rom.Name)
		}
		return Chunk(c.Int64()), nil
	case MONTGOMERY_FRIENDLY:
		sh := p.BASEBITS * uint(p.NLEN-1)
		c := new(big.Int).Add(m, big.NewInt(1))
		lo := new(big.Int).Lsh(new(big.Int).Rsh(c, sh), sh)
		if lo.Cmp(c) != 0 || c.BitLen() > int(sh+p.BASEBITS) {
			return 0, fmt.Errorf("invalid curve parameters for %s: modulus is not Montgomery friendly", p.rom.Name)
		}
		return Chunk(new(big.Int).Rsh(c, sh).Int64()), nil
	case GENERALISED_MERSENNE:
		if p.MODBITS != 448 {
			return 0, fmt.Errorf("invalid curve parameters for %s: only the Goldilocks generalised Mersenne prime is supported", p.rom.Name)
		}
		return 1, nil
	}
	return 0, fmt.Errorf("invalid curve parameters for %s: unknown modulus type %d", p.rom.Name, p.rom.ModType)
}

func (p *Params) toLimbs(v *big.Int) limbs {
	var w limbs
	t := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(uint64(p.BMASK))
	for i := 0; i < p.NLEN; i++ {
		w[i] = Chunk(new(big.Int).And(t, mask).Int64())
		t.Rsh(t, p.BASEBITS)
	}
	return w
}

func parseHex(curve, field, s string, modBytes uint) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || uint(len(s)) > 2*modBytes {
		return nil, fmt.Errorf("invalid curve parameters for %s: field %s has bad length [%d]", curve, field, len(s))
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid curve parameters for %s: field %s is not hexadecimal", curve, field)
	}
	return v, nil
}

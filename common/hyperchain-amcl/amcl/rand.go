package amcl

import (
	"crypto/sha256"
	"encoding/binary"
)

// RAND 是确定性的随机字节生成器：种子经 SHA-256 压缩成密钥，输出块为 SHA-256(key || counter)。
// 相同的种子总是产生相同的字节流，只用于测试向量、基准和可重现的密钥生成，不能替代 crypto/rand。
// RAND 实现了 io.Reader，可以直接传给 core.Random / core.Randomnum。
type RAND struct {
	key     [sha256.Size]byte
	block   [sha256.Size]byte
	counter uint64
	pos     int
	seeded  bool
}

func NewRAND() *RAND {
	R := new(RAND)
	R.Clean()
	return R
}

// Clean 清除内部状态，之后必须重新 Seed。
func (R *RAND) Clean() {
	for i := range R.key {
		R.key[i] = 0
		R.block[i] = 0
	}
	R.counter = 0
	R.pos = sha256.Size
	R.seeded = false
}

// Seed 用 raw 的前 rawlen 个字节初始化生成器。
func (R *RAND) Seed(rawlen int, raw []byte) {
	h := sha256.New()
	h.Write(raw[:rawlen])
	h.Sum(R.key[:0])
	R.counter = 0
	R.pos = sha256.Size
	R.seeded = true
}

func (R *RAND) fill() {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], R.counter)
	R.counter++
	h := sha256.New()
	h.Write(R.key[:])
	h.Write(ctr[:])
	h.Sum(R.block[:0])
	R.pos = 0
}

// GetByte 返回下一个随机字节，未 Seed 时 panic。
func (R *RAND) GetByte() byte {
	if !R.seeded {
		panic("amcl: RAND used before Seed")
	}
	if R.pos == sha256.Size {
		R.fill()
	}
	b := R.block[R.pos]
	R.pos++
	return b
}

func (R *RAND) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = R.GetByte()
	}
	return len(p), nil
}

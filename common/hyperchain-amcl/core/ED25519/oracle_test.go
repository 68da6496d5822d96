package ed25519

import (
	stded25519 "crypto/ed25519"
	"crypto/sha512"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/util"
	"github.com/stretchr/testify/require"
)

// encodePoint 按 RFC 8032 编码：小端的 y，最高位放 x 的奇偶性。
func encodePoint(P *ECP) []byte {
	out := util.ReverseBytes(P.GetY().Bytes())
	out[31] |= byte(P.GetX().Parity()) << 7
	return out
}

func TestPublicKeyAgainstStdlib(t *testing.T) {
	seed := []byte("ed25519 public keys")
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)

	G := ECP_generator()
	for i := 0; i < 16; i++ {
		sk := make([]byte, stded25519.SeedSize)
		rng.Read(sk)
		pub := stded25519.NewKeyFromSeed(sk).Public().(stded25519.PublicKey)

		h := sha512.Sum512(sk)
		a := h[:32]
		a[0] &= 248
		a[31] &= 127
		a[31] |= 64
		require.Equal(t, []byte(pub), encodePoint(G.Mul(FromBytes(util.ReverseBytes(a)))))
	}
}

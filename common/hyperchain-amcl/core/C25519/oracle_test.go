package c25519

import (
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/util"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

// TestLadderAgainstX25519 按 RFC 7748 的约定（小端、clamp 后的标量）与 X25519 比较。
func TestLadderAgainstX25519(t *testing.T) {
	seed := []byte("c25519 x25519")
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)

	G := ECP_generator()
	for i := 0; i < 16; i++ {
		scalar := make([]byte, curve25519.ScalarSize)
		rng.Read(scalar)

		want, err := curve25519.X25519(scalar, curve25519.Basepoint)
		require.NoError(t, err)

		clamped := append([]byte{}, scalar...)
		clamped[0] &= 248
		clamped[31] &= 127
		clamped[31] |= 64
		k := FromBytes(util.ReverseBytes(clamped))
		require.Equal(t, want, util.ReverseBytes(G.Mul(k).GetX().Bytes()))

		// 以 X25519 的输出为基点再做一次标量乘。
		other := make([]byte, curve25519.ScalarSize)
		rng.Read(other)
		shared, err := curve25519.X25519(other, want)
		require.NoError(t, err)

		b := append([]byte{0x02}, util.ReverseBytes(want)...)
		P, err := ECP_fromBytesChecked(b)
		require.NoError(t, err)
		clamped = append([]byte{}, other...)
		clamped[0] &= 248
		clamped[31] &= 127
		clamped[31] |= 64
		require.Equal(t, shared, util.ReverseBytes(P.Mul(FromBytes(util.ReverseBytes(clamped))).GetX().Bytes()))
	}
}

package amcl

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXMDExpand(t *testing.T) {
	// RFC 9380, Appendix K.1
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	tests := []struct {
		msg  string
		olen int
		want string
	}{
		{"", 0x20, "68a985b87eb6b46952128911f2a4412bbc302a9d759667f87f7a21d803f07235"},
		{"abc", 0x20, "d8ccab23b5985ccea865c6c97b6e5b8350e794e603b4b97902f53a8a0d605615"},
		{"abcdef0123456789", 0x80, "ef904a29bffc4cf9ee82832451c946ac3c8f8058ae97d8d629831a74c6572bd9" +
			"ebd0df635cd1f208e2038e760c4994984ce73f0d55ea9f22af83ba4734569d4b" +
			"c95e18350f740c07eef653cbb9f87910d833751825f0ebefa1abe5420bb52be1" +
			"4cf489b37fe1a72f7de2d10be453b2c9d9eb20c7e3f6edc5a60629178d9478df"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := XMDExpand(MC_SHA2, SHA256, tt.olen, dst, []byte(tt.msg))
			require.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}

	require.Panics(t, func() { XMDExpand(MC_SHA2, SHA256, 256*32, dst, nil) })
}

func TestHKDF(t *testing.T) {
	// RFC 5869, test case 1
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")

	prk := HKDFExtract(MC_SHA2, SHA256, salt, ikm)
	require.Equal(t, "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5", hex.EncodeToString(prk))

	okm := HKDFExpand(MC_SHA2, SHA256, 42, prk, info)
	require.Equal(t, "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865", hex.EncodeToString(okm))
	require.Equal(t, prk, HMAC(MC_SHA2, SHA256, salt, ikm))
}

func TestHashFunc(t *testing.T) {
	for _, sha := range []int{MC_SHA2, MC_SHA3} {
		for _, hlen := range []int{SHA256, SHA384, SHA512} {
			h, err := HashFunc(sha, hlen)
			require.NoError(t, err)
			require.Equal(t, hlen, h().Size())
		}
	}
	_, err := HashFunc(MC_SHA2, 20)
	require.EqualError(t, err, "unsupported hash family 2 with digest length [20]")
}

func TestShakeHash(t *testing.T) {
	require.Equal(t, "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739", hex.EncodeToString(ShakeHash([]byte("abc"), 32)))
}

func TestIntToBytes(t *testing.T) {
	require.Equal(t, []byte{0x01, 0x02}, IntToBytes(0x0102, 2))
	require.Equal(t, []byte{0x00, 0x00, 0x30}, IntToBytes(48, 3))
}

func TestRAND(t *testing.T) {
	seed := []byte("pairing test seed")
	a, b := NewRAND(), NewRAND()
	a.Seed(len(seed), seed)
	b.Seed(len(seed), seed)

	x := make([]byte, 100)
	y := make([]byte, 100)
	n, err := a.Read(x)
	require.NoError(t, err)
	require.Equal(t, 100, n)
	for i := range y {
		y[i] = b.GetByte()
	}
	require.Equal(t, x, y)

	c := NewRAND()
	c.Seed(len(seed)-1, seed)
	z := make([]byte, 100)
	c.Read(z)
	require.NotEqual(t, x, z)

	c.Clean()
	require.Panics(t, func() { c.GetByte() })
}

package nist256

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/stretchr/testify/require"
)

func TestParamsAgainstP256(t *testing.T) {
	p := elliptic.P256().Params()
	require.Equal(t, p.P.FillBytes(make([]byte, MODBYTES)), Modulus().Bytes())
	require.Equal(t, p.N.FillBytes(make([]byte, MODBYTES)), CurveOrder().Bytes())
	require.Equal(t, p.Gx.FillBytes(make([]byte, MODBYTES)), ECP_generator().GetX().Bytes())
	require.Equal(t, p.Gy.FillBytes(make([]byte, MODBYTES)), ECP_generator().GetY().Bytes())
}

func TestScalarMulAgainstECDH(t *testing.T) {
	seed := []byte("nist256 ecdh")
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)

	G := ECP_generator()
	for i := 0; i < 16; i++ {
		k := Randomnum(CurveOrder(), rng)
		if k.IsZilch() {
			continue
		}
		priv, err := ecdh.P256().NewPrivateKey(k.Bytes())
		require.NoError(t, err)

		P := G.Mul(k)
		b := make([]byte, P.EncodedLen(false))
		P.ToBytes(b, false)
		require.Equal(t, priv.PublicKey().Bytes(), b)

		// 用对方的公钥做 ECDH，共享秘密是 k*Q 的 x 坐标。
		peer, err := ecdh.P256().NewPrivateKey(Randomnum(CurveOrder(), rng).Bytes())
		require.NoError(t, err)
		secret, err := priv.ECDH(peer.PublicKey())
		require.NoError(t, err)
		Q, err := ECP_fromBytesChecked(peer.PublicKey().Bytes())
		require.NoError(t, err)
		require.Equal(t, secret, Q.Mul(k).GetX().Bytes())
	}
}

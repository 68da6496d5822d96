package secp256k1

import (
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func newRand(label string) *amcl.RAND {
	rng := amcl.NewRAND()
	rng.Seed(len(label), []byte(label))
	return rng
}

func TestParamsAgainstBtcec(t *testing.T) {
	p := btcec.S256().Params()
	require.Equal(t, p.P.FillBytes(make([]byte, MODBYTES)), Modulus().Bytes())
	require.Equal(t, p.N.FillBytes(make([]byte, MODBYTES)), CurveOrder().Bytes())

	G := ECP_generator()
	require.Equal(t, p.Gx.FillBytes(make([]byte, MODBYTES)), G.GetX().Bytes())
	require.Equal(t, p.Gy.FillBytes(make([]byte, MODBYTES)), G.GetY().Bytes())
}

func TestScalarMulAgainstBtcec(t *testing.T) {
	rng := newRand("secp256k1 btcec")
	G := ECP_generator()
	r := CurveOrder()
	for i := 0; i < 16; i++ {
		k := Randomnum(r, rng)
		P := G.Mul(k)

		_, pub := btcec.PrivKeyFromBytes(k.Bytes())
		uncompressed := make([]byte, P.EncodedLen(false))
		P.ToBytes(uncompressed, false)
		require.Equal(t, pub.SerializeUncompressed(), uncompressed)

		compressed := make([]byte, P.EncodedLen(true))
		P.ToBytes(compressed, true)
		require.Equal(t, pub.SerializeCompressed(), compressed)

		// btcec 生成的压缩公钥可以被还原成同一个点。
		Q, err := ECP_fromBytesChecked(pub.SerializeCompressed())
		require.NoError(t, err)
		require.True(t, Q.Equals(P))

		parsed, err := btcec.ParsePubKey(compressed)
		require.NoError(t, err)
		require.True(t, parsed.IsEqual(pub))
	}
}

func toUint256(x *BIG) *uint256.Int {
	return new(uint256.Int).SetBytes(x.Bytes())
}

func TestBIGAgainstUint256(t *testing.T) {
	rng := newRand("secp256k1 uint256")
	for _, m := range []*BIG{CurveOrder(), Modulus()} {
		um := toUint256(m)
		for i := 0; i < 64; i++ {
			a := Random(rng)
			b := Random(rng)
			ua, ub := toUint256(a), toUint256(b)

			require.Equal(t, new(uint256.Int).MulMod(ua, ub, um).Bytes32(), toUint256(Modmul(a, b, m)).Bytes32())
			require.Equal(t, new(uint256.Int).AddMod(ua, ub, um).Bytes32(), toUint256(Modadd(a, b, m)).Bytes32())

			neg := new(uint256.Int).Mod(ua, um)
			if !neg.IsZero() {
				neg.Sub(um, neg)
			}
			require.Equal(t, neg.Bytes32(), toUint256(Modneg(a, m)).Bytes32())

			// 用 uint256 的平方乘算法计算 a^b mod m。
			acc := uint256.NewInt(1)
			base := new(uint256.Int).Mod(ua, um)
			for bit := ub.BitLen() - 1; bit >= 0; bit-- {
				acc.MulMod(acc, acc, um)
				if b.Bit(bit) == 1 {
					acc.MulMod(acc, base, um)
				}
			}
			require.Equal(t, acc.Bytes32(), toUint256(NewBIGcopy(a).Powmod(b, m)).Bytes32())

			x := NewBIGcopy(a)
			x.Mod(m)
			if x.IsZilch() {
				continue
			}
			inv := NewBIGcopy(x)
			inv.InvmodPrime(m)
			require.True(t, new(uint256.Int).MulMod(toUint256(inv), toUint256(x), um).Eq(uint256.NewInt(1)))
			inv2 := NewBIGcopy(x)
			inv2.Invmodp(m)
			require.Equal(t, toUint256(inv).Bytes32(), toUint256(inv2).Bytes32())
		}
	}
}

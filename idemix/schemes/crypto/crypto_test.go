package crypto

import (
	"testing"

	"github.com/11090815/pairing/common/mathlib"
	"github.com/11090815/pairing/vars"
	"github.com/stretchr/testify/require"
)

func TestWeakBB(t *testing.T) {
	for _, curve := range mathlib.Curves {
		curve := curve
		t.Run(curve.Name(), func(t *testing.T) {
			idmx := NewIdemix(curve)
			rng, err := curve.Rand()
			require.NoError(t, err)

			sk, pk := idmx.WBBKeyGen(rng)
			m := curve.NewRandomZr(rng)
			sig, err := idmx.WBBSign(sk, m)
			require.NoError(t, err)
			require.NoError(t, idmx.WBBVerify(pk, sig, m))

			// g1^(1/(m+sk)) 的直接计算
			exp := curve.ModAdd(sk, m, curve.GroupOrder)
			exp.InvModP(curve.GroupOrder)
			require.True(t, sig.Equals(curve.GenG1.Mul(exp)))

			var invalid vars.ErrorInvalidSignature
			other := curve.ModAdd(m, curve.NewZrFromInt(1), curve.GroupOrder)
			require.ErrorAs(t, idmx.WBBVerify(pk, sig, other), &invalid)
			require.Equal(t, "pairing check failed", invalid.Reason)

			_, pk2 := idmx.WBBKeyGen(rng)
			require.ErrorAs(t, idmx.WBBVerify(pk2, sig, m), &invalid)

			require.EqualError(t, idmx.WBBVerify(nil, sig, m), "invalid weak-bb signature: [received nil input]")
			require.EqualError(t, idmx.WBBVerify(pk, curve.NewG1(), m), "invalid weak-bb signature: [signature is the point at infinity]")

			_, err = idmx.WBBSign(sk, curve.ModNeg(sk, curve.GroupOrder))
			require.ErrorContains(t, err, "m + sk is zero")
		})
	}
}

func TestMakeNym(t *testing.T) {
	for _, curve := range mathlib.Curves {
		curve := curve
		t.Run(curve.Name(), func(t *testing.T) {
			idmx := NewIdemix(curve)
			rng, err := curve.Rand()
			require.NoError(t, err)

			ipk := idmx.NewIssuerPublicKey(rng)
			sk := curve.NewRandomZr(rng)

			nym, randNym, err := idmx.MakeNym(sk, ipk, rng)
			require.NoError(t, err)

			HSk, err := curve.NewG1FromBytes(ipk.HSk)
			require.NoError(t, err)
			HRand, err := curve.NewG1FromBytes(ipk.HRand)
			require.NoError(t, err)
			expected := HSk.Mul(sk)
			expected.Add(HRand.Mul(randNym))
			require.True(t, nym.Equals(expected))

			nym2, _, err := idmx.MakeNym(sk, ipk, rng)
			require.NoError(t, err)
			require.False(t, nym.Equals(nym2))

			raw := idmx.NymToBytes(nym, randNym)
			parsed, parsedRand, err := idmx.MakeNymFromBytes(raw)
			require.NoError(t, err)
			require.True(t, parsed.Equals(nym))
			require.True(t, parsedRand.Equals(randNym))

			_, _, err = idmx.MakeNymFromBytes(raw[:4])
			require.Error(t, err)

			_, _, err = idmx.MakeNym(sk, &IssuerPublicKey{HSk: []byte{1, 2, 3}, HRand: ipk.HRand}, rng)
			require.Error(t, err)
			_, _, err = idmx.MakeNym(sk, nil, rng)
			require.Error(t, err)
		})
	}
}

package bls_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/bls"
	"github.com/11090815/pairing/common/hyperchain-amcl/core"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS24"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS381"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BLS383"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/BN254"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/FP256BN"
	"github.com/11090815/pairing/common/hyperchain-amcl/core/SECP256K1"
	"github.com/11090815/pairing/vars"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var ikm = []byte("this is a 32 byte key derivation seed for tests!")

func TestScheme(t *testing.T) {
	t.Run("FP256BN", testScheme[fp256bn.Curve])
	t.Run("BN254", testScheme[bn254.Curve])
	t.Run("BLS381", testScheme[bls381.Curve])
	t.Run("BLS383", testScheme[bls383.Curve])
}

// 同一个 Scheme 在多个 goroutine 中签名和验证，配合 -race 运行可以发现对共享点的写入。
func TestSchemeConcurrentUse(t *testing.T) {
	s, err := bls.New[bn254.Curve]()
	require.NoError(t, err)
	sk, pk, err := s.KeyPairGenerate(ikm)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		msg := []byte(fmt.Sprintf("message %d", i))
		g.Go(func() error {
			sig, err := s.Sign(msg, sk)
			if err != nil {
				return err
			}
			if _, _, err := s.KeyPairGenerate(ikm); err != nil {
				return err
			}
			return s.Verify(sig, msg, pk)
		})
	}
	require.NoError(t, g.Wait())
}

func testScheme[C core.Curve](t *testing.T) {
	s, err := bls.New[C]()
	require.NoError(t, err)

	sk, pk, err := s.KeyPairGenerate(ikm)
	require.NoError(t, err)
	require.Len(t, sk, s.SecretKeySize())
	require.Len(t, pk, s.PublicKeySize())

	sk2, pk2, err := s.KeyPairGenerate(ikm)
	require.NoError(t, err)
	require.Equal(t, sk, sk2)
	require.Equal(t, pk, pk2)

	msg := []byte("hello pairing")
	sig, err := s.Sign(msg, sk)
	require.NoError(t, err)
	require.Len(t, sig, s.SignatureSize())
	require.NoError(t, s.Verify(sig, msg, pk))

	again, err := s.Sign(msg, sk)
	require.NoError(t, err)
	require.Equal(t, sig, again)

	var invalid vars.ErrorInvalidSignature
	err = s.Verify(sig, []byte("hello pairinG"), pk)
	require.ErrorAs(t, err, &invalid)

	otherIKM := bytes.Repeat([]byte{0x5a}, 32)
	_, otherPK, err := s.KeyPairGenerate(otherIKM)
	require.NoError(t, err)
	require.NotEqual(t, pk, otherPK)
	require.ErrorAs(t, s.Verify(sig, msg, otherPK), &invalid)

	tampered := append([]byte{}, sig...)
	tampered[0] ^= 0x01
	require.Error(t, s.Verify(tampered, msg, pk))

	require.Error(t, s.Verify(sig[:len(sig)-1], msg, pk))
	require.Error(t, s.Verify(sig, msg, pk[:len(pk)-1]))

	_, err = s.Sign(msg, sk[:len(sk)-1])
	require.Error(t, err)
	_, err = s.Sign(msg, make([]byte, len(sk)))
	require.Error(t, err)

	_, _, err = s.KeyPairGenerate(ikm[:31])
	require.ErrorAs(t, err, &vars.ErrorInvalidLength{})
}

func TestHashToPoint(t *testing.T) {
	s, err := bls.New[bn254.Curve]()
	require.NoError(t, err)

	P := s.HashToPoint([]byte("abc"))
	require.True(t, core.G1member(P))
	require.True(t, P.Equals(s.HashToPoint([]byte("abc"))))
	require.False(t, P.Equals(s.HashToPoint([]byte("abd"))))
}

func TestNewRejectsUnsupportedCurves(t *testing.T) {
	_, err := bls.New[secp256k1.Curve]()
	require.Error(t, err)
	_, err = bls.New[bls24.Curve]()
	require.Error(t, err)
}

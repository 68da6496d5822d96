package fp256bn

import (
	"sync"

	"github.com/11090815/pairing/common/hyperchain-amcl/bls"
)

// 签名（压缩的 G1 点）和公钥（G2 点）的字节长度。
const BFS int = MODBYTES + 1
const BGS int = 4 * MODBYTES
const BLS_OK int = bls.BLS_OK
const BLS_FAIL int = bls.BLS_FAIL

var (
	blsOnce   sync.Once
	blsScheme *bls.Scheme[Curve]
)

func scheme() *bls.Scheme[Curve] {
	blsOnce.Do(func() {
		blsScheme, _ = bls.New[Curve]()
	})
	return blsScheme
}

func Init() int {
	if scheme() == nil {
		return BLS_FAIL
	}
	return BLS_OK
}

/* generate key pair, private key S, public key W */
func KeyPairGenerate(IKM []byte, S []byte, W []byte) int {
	sk, pk, err := scheme().KeyPairGenerate(IKM)
	if err != nil || len(S) < len(sk) || len(W) < len(pk) {
		return BLS_FAIL
	}
	copy(S, sk)
	copy(W, pk)
	return BLS_OK
}

/* Sign message M using private key S to produce signature SIG */
func Core_Sign(SIG []byte, M []byte, S []byte) int {
	if len(S) < MODBYTES {
		return BLS_FAIL
	}
	sig, err := scheme().Sign(M, S[:MODBYTES])
	if err != nil || len(SIG) < len(sig) {
		return BLS_FAIL
	}
	copy(SIG, sig)
	return BLS_OK
}

/* Verify signature SIG of message M given public key W */
func Core_Verify(SIG []byte, M []byte, W []byte) int {
	if len(SIG) < BFS || len(W) < BGS {
		return BLS_FAIL
	}
	if err := scheme().Verify(SIG[:BFS], M, W[:BGS]); err != nil {
		return BLS_FAIL
	}
	return BLS_OK
}

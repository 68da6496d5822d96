package fp256bn

import (
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core/coretest"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	coretest.RunArithmetic[Curve](t)
}

func TestPoints(t *testing.T) {
	coretest.RunPoints[Curve](t)
}

func TestPairing(t *testing.T) {
	coretest.RunPairing[Curve](t)
}

func TestVectors(t *testing.T) {
	coretest.RunVectors[Curve](t, "testdata")
}

func TestBLS(t *testing.T) {
	require.Equal(t, BLS_OK, Init())

	IKM := []byte("fp256bn key material of 32 bytes")
	S := make([]byte, MODBYTES)
	W := make([]byte, BGS)
	SIG := make([]byte, BFS)
	require.Equal(t, BLS_OK, KeyPairGenerate(IKM, S, W))

	M := []byte("test message")
	require.Equal(t, BLS_OK, Core_Sign(SIG, M, S))
	require.Equal(t, BLS_OK, Core_Verify(SIG, M, W))
	require.Equal(t, BLS_FAIL, Core_Verify(SIG, []byte("test messagf"), W))
	require.Equal(t, BLS_FAIL, Core_Verify(SIG[:BFS-1], M, W))

	require.Equal(t, BLS_FAIL, KeyPairGenerate(IKM[:16], S, W))
}

package bls383

import (
	"testing"

	"github.com/11090815/pairing/common/hyperchain-amcl/core/coretest"
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

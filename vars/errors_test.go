package vars_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/11090815/pairing/vars"
	"github.com/stretchr/testify/require"
)

type scalar struct{}

func TestErrorShouldNotBeNil(t *testing.T) {
	var s *scalar
	err := vars.ErrorShouldNotBeNil{Type: reflect.TypeOf(s)}
	require.Equal(t, "*vars_test.scalar should not be nil", err.Error())
}

func TestNewPathError(t *testing.T) {
	err := vars.NewPathError("bad input")
	require.True(t, strings.HasSuffix(err.Error(), "=> {bad input}"))
	require.Contains(t, err.Error(), "TestNewPathError")
}

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{vars.ErrorInvalidLength{Kind: "BN254 scalar", Want: 32, Got: 31}, "invalid BN254 scalar encoding: want 32 bytes, got [31]"},
		{vars.ErrorInvalidPoint{Group: "BN254 G2", Reason: "not on curve"}, "invalid BN254 G2 point: [not on curve]"},
		{vars.ErrorUnknownCurve{Name: "P-521"}, "unknown curve [P-521]"},
		{vars.ErrorInvalidSignature{Scheme: "BLS", Reason: "pairing check failed"}, "invalid BLS signature: [pairing check failed]"},
		{vars.ErrorUnsupportedOperation{Op: "point addition", Curve: "C25519"}, "point addition is not supported on curve [C25519]"},
	}
	for _, tt := range tests {
		require.EqualError(t, tt.err, tt.want)
	}

	var target vars.ErrorInvalidLength
	wrapped := errors.Join(errors.New("decode"), vars.ErrorInvalidLength{Kind: "x", Want: 1, Got: 2})
	require.True(t, errors.As(wrapped, &target))
	require.Equal(t, 2, target.Got)
}

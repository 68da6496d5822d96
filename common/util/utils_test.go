package util_test

import (
	"testing"

	"github.com/11090815/pairing/common/util"
	"github.com/stretchr/testify/require"
)

func TestConcatenateBytes(t *testing.T) {
	data := [][]byte{
		[]byte("y78asyuiy7823r"),
		nil,
		[]byte("t127usbduiy387r"),
		[]byte("配对友好曲线"),
	}

	var want []byte
	for _, d := range data {
		want = append(want, d...)
	}
	require.Equal(t, want, util.ConcatenateBytes(data...))
	require.Empty(t, util.ConcatenateBytes())

	a := []byte{1, 2}
	res := util.ConcatenateBytes(a, []byte{3})
	res[0] = 9
	require.Equal(t, []byte{1, 2}, a)
}

func TestReverseBytes(t *testing.T) {
	require.Equal(t, []byte{3, 2, 1}, util.ReverseBytes([]byte{1, 2, 3}))
	require.Empty(t, util.ReverseBytes(nil))

	b := []byte{1, 2}
	util.ReverseBytes(b)
	require.Equal(t, []byte{1, 2}, b)
}

package util

// ConcatenateBytes 把多个字节切片依次拼接成一个新切片。
func ConcatenateBytes(data ...[]byte) []byte {
	finalLength := 0
	for _, slice := range data {
		finalLength += len(slice)
	}
	result := make([]byte, finalLength)
	last := 0
	for _, slice := range data {
		last += copy(result[last:], slice)
	}
	return result
}

// ReverseBytes 返回 b 的逆序副本，用于大端和小端编码之间的转换。
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

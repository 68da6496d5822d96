package amcl

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// 哈希族选择器，与摘要长度 hlen（32、48 或 64）一起确定具体的哈希函数。
const (
	MC_SHA2 int = 2
	MC_SHA3 int = 3
)

// 常用的摘要长度。
const (
	SHA256 int = 32
	SHA384 int = 48
	SHA512 int = 64
)

// HashFunc 返回 (sha, hlen) 对应的哈希构造函数。
func HashFunc(sha int, hlen int) (func() hash.Hash, error) {
	switch sha {
	case MC_SHA2:
		switch hlen {
		case SHA256:
			return sha256.New, nil
		case SHA384:
			return sha512.New384, nil
		case SHA512:
			return sha512.New, nil
		}
	case MC_SHA3:
		switch hlen {
		case SHA256:
			return sha3.New256, nil
		case SHA384:
			return sha3.New384, nil
		case SHA512:
			return sha3.New512, nil
		}
	}
	return nil, fmt.Errorf("unsupported hash family %d with digest length [%d]", sha, hlen)
}

func mustHashFunc(sha int, hlen int) func() hash.Hash {
	h, err := HashFunc(sha, hlen)
	if err != nil {
		panic(err)
	}
	return h
}

// IntToBytes 把 n 以大端序写成 size 个字节。
func IntToBytes(n int, size int) []byte {
	b := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		b[i] = byte(n & 0xff)
		n >>= 8
	}
	return b
}

// XMDExpand 实现 RFC 9380 的 expand_message_xmd，把 msg 扩展成 olen 个均匀分布的字节。
// 当 olen 超过 255 个摘要块或者 DST 长于 255 字节时 panic。
func XMDExpand(sha int, hlen int, olen int, dst []byte, msg []byte) []byte {
	newHash := mustHashFunc(sha, hlen)
	blk := newHash().BlockSize()
	ell := (olen + hlen - 1) / hlen
	if ell > 255 || olen > 65535 || len(dst) > 255 {
		panic(fmt.Sprintf("expand_message_xmd: output length [%d] or DST length [%d] out of range", olen, len(dst)))
	}
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	h := newHash()
	h.Write(make([]byte, blk))
	h.Write(msg)
	h.Write(IntToBytes(olen, 2))
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h = newHash()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bi := h.Sum(nil)

	out := make([]byte, 0, ell*hlen)
	out = append(out, bi...)
	for i := 2; i <= ell; i++ {
		x := make([]byte, hlen)
		for j := range x {
			x[j] = b0[j] ^ bi[j]
		}
		h = newHash()
		h.Write(x)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi = h.Sum(nil)
		out = append(out, bi...)
	}
	return out[:olen]
}

// HKDFExtract 是 RFC 5869 的 HKDF-Extract：PRK = HMAC(salt, ikm)。
func HKDFExtract(sha int, hlen int, salt []byte, ikm []byte) []byte {
	return hkdf.Extract(mustHashFunc(sha, hlen), ikm, salt)
}

// HKDFExpand 是 RFC 5869 的 HKDF-Expand，输出 olen 个字节。
func HKDFExpand(sha int, hlen int, olen int, prk []byte, info []byte) []byte {
	okm := make([]byte, olen)
	if _, err := io.ReadFull(hkdf.Expand(mustHashFunc(sha, hlen), prk, info), okm); err != nil {
		panic(fmt.Sprintf("hkdf expand failed: [%s]", err.Error()))
	}
	return okm
}

// HMAC 计算 key 下 msg 的消息认证码。
func HMAC(sha int, hlen int, key []byte, msg []byte) []byte {
	m := hmac.New(mustHashFunc(sha, hlen), key)
	m.Write(msg)
	return m.Sum(nil)
}

// ShakeHash 用 SHAKE256 把 msg 压缩成 olen 个字节。
func ShakeHash(msg []byte, olen int) []byte {
	out := make([]byte, olen)
	sha3.ShakeSum256(out, msg)
	return out
}

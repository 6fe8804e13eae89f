// Package sha256 is a pure-logic engine for the 32-bit SHA-2 family:
// SHA-224 and SHA-256 (FIPS 180-4). The two variants differ only in their
// initial hash value and in how much of the final state is emitted.
package sha256

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/word"
)

// BlockSize of the 32-bit SHA-2 family in bytes.
const BlockSize = 64

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Variant holds the per-algorithm data of a 32-bit SHA-2 hash.
type Variant struct {
	name string
	code uint64
	size int
	iv   [8]uint32
}

var (
	SHA224 = Variant{
		name: "sha224",
		code: uint64(multicodec.Sha2_224),
		size: 28,
		iv: [8]uint32{
			0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
			0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
		},
	}
	SHA256 = Variant{
		name: "sha256",
		code: uint64(multicodec.Sha2_256),
		size: 32,
		iv: [8]uint32{
			0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
			0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		},
	}
)

var (
	_ hash.Engine = SHA224
	_ hash.Engine = SHA256
)

func (v Variant) Name() string   { return v.name }
func (v Variant) Code() uint64   { return v.code }
func (v Variant) Size() int      { return v.size }
func (v Variant) BlockSize() int { return BlockSize }

func ch(x, y, z uint32) uint32  { return x&y ^ ^x&z }
func maj(x, y, z uint32) uint32 { return x&y ^ x&z ^ y&z }

func sigma0(x uint32) uint32 {
	return word.RotateRight(x, 2) ^ word.RotateRight(x, 13) ^ word.RotateRight(x, 22)
}

func sigma1(x uint32) uint32 {
	return word.RotateRight(x, 6) ^ word.RotateRight(x, 11) ^ word.RotateRight(x, 25)
}

func gamma0(x uint32) uint32 {
	return word.RotateRight(x, 7) ^ word.RotateRight(x, 18) ^ x>>3
}

func gamma1(x uint32) uint32 {
	return word.RotateRight(x, 17) ^ word.RotateRight(x, 19) ^ x>>10
}

// Sum returns the digest of b for this variant.
func (v Variant) Sum(b []byte) []byte {
	words := word.BytesToWords(word.Pad(b, BlockSize, 8, word.Big), word.Big)

	h := v.iv
	var w [64]uint32
	for i := 0; i < len(words); i += 16 {
		a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for j := 0; j < 64; j++ {
			if j < 16 {
				w[j] = words[i+j]
			} else {
				w[j] = word.AddWords(word.AddWords(gamma1(w[j-2]), w[j-7]), word.AddWords(gamma0(w[j-15]), w[j-16]))
			}
			t1 := word.AddWords(word.AddWords(word.AddWords(hh, sigma1(e)), word.AddWords(ch(e, f, g), k[j])), w[j])
			t2 := word.AddWords(sigma0(a), maj(a, bb, c))
			hh, g, f, e, d, c, bb, a = g, f, e, word.AddWords(d, t1), c, bb, a, word.AddWords(t1, t2)
		}
		h[0] = word.AddWords(h[0], a)
		h[1] = word.AddWords(h[1], bb)
		h[2] = word.AddWords(h[2], c)
		h[3] = word.AddWords(h[3], d)
		h[4] = word.AddWords(h[4], e)
		h[5] = word.AddWords(h[5], f)
		h[6] = word.AddWords(h[6], g)
		h[7] = word.AddWords(h[7], hh)
	}
	return word.WordsToBytes(h[:], word.Big)[:v.size]
}

// Sum224 returns the SHA-224 digest of b.
func Sum224(b []byte) []byte { return SHA224.Sum(b) }

// Sum256 returns the SHA-256 digest of b.
func Sum256(b []byte) []byte { return SHA256.Sum(b) }

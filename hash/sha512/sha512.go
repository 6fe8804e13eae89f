// Package sha512 is a pure-logic engine for the 64-bit SHA-2 family:
// SHA-384 and SHA-512 (FIPS 180-4). All arithmetic runs on word.Doubleword
// so that 64-bit values are handled as carried pairs of 32-bit halves.
package sha512

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/word"
)

// BlockSize of the 64-bit SHA-2 family in bytes.
const BlockSize = 128

// length field in bytes
const lengthSize = 16

var k = [80]word.Doubleword{
	{0x428a2f98, 0xd728ae22}, {0x71374491, 0x23ef65cd}, {0xb5c0fbcf, 0xec4d3b2f}, {0xe9b5dba5, 0x8189dbbc},
	{0x3956c25b, 0xf348b538}, {0x59f111f1, 0xb605d019}, {0x923f82a4, 0xaf194f9b}, {0xab1c5ed5, 0xda6d8118},
	{0xd807aa98, 0xa3030242}, {0x12835b01, 0x45706fbe}, {0x243185be, 0x4ee4b28c}, {0x550c7dc3, 0xd5ffb4e2},
	{0x72be5d74, 0xf27b896f}, {0x80deb1fe, 0x3b1696b1}, {0x9bdc06a7, 0x25c71235}, {0xc19bf174, 0xcf692694},
	{0xe49b69c1, 0x9ef14ad2}, {0xefbe4786, 0x384f25e3}, {0x0fc19dc6, 0x8b8cd5b5}, {0x240ca1cc, 0x77ac9c65},
	{0x2de92c6f, 0x592b0275}, {0x4a7484aa, 0x6ea6e483}, {0x5cb0a9dc, 0xbd41fbd4}, {0x76f988da, 0x831153b5},
	{0x983e5152, 0xee66dfab}, {0xa831c66d, 0x2db43210}, {0xb00327c8, 0x98fb213f}, {0xbf597fc7, 0xbeef0ee4},
	{0xc6e00bf3, 0x3da88fc2}, {0xd5a79147, 0x930aa725}, {0x06ca6351, 0xe003826f}, {0x14292967, 0x0a0e6e70},
	{0x27b70a85, 0x46d22ffc}, {0x2e1b2138, 0x5c26c926}, {0x4d2c6dfc, 0x5ac42aed}, {0x53380d13, 0x9d95b3df},
	{0x650a7354, 0x8baf63de}, {0x766a0abb, 0x3c77b2a8}, {0x81c2c92e, 0x47edaee6}, {0x92722c85, 0x1482353b},
	{0xa2bfe8a1, 0x4cf10364}, {0xa81a664b, 0xbc423001}, {0xc24b8b70, 0xd0f89791}, {0xc76c51a3, 0x0654be30},
	{0xd192e819, 0xd6ef5218}, {0xd6990624, 0x5565a910}, {0xf40e3585, 0x5771202a}, {0x106aa070, 0x32bbd1b8},
	{0x19a4c116, 0xb8d2d0c8}, {0x1e376c08, 0x5141ab53}, {0x2748774c, 0xdf8eeb99}, {0x34b0bcb5, 0xe19b48a8},
	{0x391c0cb3, 0xc5c95a63}, {0x4ed8aa4a, 0xe3418acb}, {0x5b9cca4f, 0x7763e373}, {0x682e6ff3, 0xd6b2b8a3},
	{0x748f82ee, 0x5defb2fc}, {0x78a5636f, 0x43172f60}, {0x84c87814, 0xa1f0ab72}, {0x8cc70208, 0x1a6439ec},
	{0x90befffa, 0x23631e28}, {0xa4506ceb, 0xde82bde9}, {0xbef9a3f7, 0xb2c67915}, {0xc67178f2, 0xe372532b},
	{0xca273ece, 0xea26619c}, {0xd186b8c7, 0x21c0c207}, {0xeada7dd6, 0xcde0eb1e}, {0xf57d4f7f, 0xee6ed178},
	{0x06f067aa, 0x72176fba}, {0x0a637dc5, 0xa2c898a6}, {0x113f9804, 0xbef90dae}, {0x1b710b35, 0x131c471b},
	{0x28db77f5, 0x23047d84}, {0x32caab7b, 0x40c72493}, {0x3c9ebe0a, 0x15c9bebc}, {0x431d67c4, 0x9c100d4c},
	{0x4cc5d4be, 0xcb3e42b6}, {0x597f299c, 0xfc657e2a}, {0x5fcb6fab, 0x3ad6faec}, {0x6c44198c, 0x4a475817},
}

// Variant holds the per-algorithm data of a 64-bit SHA-2 hash.
type Variant struct {
	name string
	code uint64
	size int
	iv   [8]word.Doubleword
}

var (
	SHA384 = Variant{
		name: "sha384",
		code: uint64(multicodec.Sha2_384),
		size: 48,
		iv: [8]word.Doubleword{
			{0xcbbb9d5d, 0xc1059ed8}, {0x629a292a, 0x367cd507}, {0x9159015a, 0x3070dd17}, {0x152fecd8, 0xf70e5939},
			{0x67332667, 0xffc00b31}, {0x8eb44a87, 0x68581511}, {0xdb0c2e0d, 0x64f98fa7}, {0x47b5481d, 0xbefa4fa4},
		},
	}
	SHA512 = Variant{
		name: "sha512",
		code: uint64(multicodec.Sha2_512),
		size: 64,
		iv: [8]word.Doubleword{
			{0x6a09e667, 0xf3bcc908}, {0xbb67ae85, 0x84caa73b}, {0x3c6ef372, 0xfe94f82b}, {0xa54ff53a, 0x5f1d36f1},
			{0x510e527f, 0xade682d1}, {0x9b05688c, 0x2b3e6c1f}, {0x1f83d9ab, 0xfb41bd6b}, {0x5be0cd19, 0x137e2179},
		},
	}
)

var (
	_ hash.Engine = SHA384
	_ hash.Engine = SHA512
)

func (v Variant) Name() string   { return v.name }
func (v Variant) Code() uint64   { return v.code }
func (v Variant) Size() int      { return v.size }
func (v Variant) BlockSize() int { return BlockSize }

func ch(x, y, z word.Doubleword) word.Doubleword {
	return x.And(y).Xor(x.Not().And(z))
}

func maj(x, y, z word.Doubleword) word.Doubleword {
	return x.And(y).Xor(x.And(z)).Xor(y.And(z))
}

// ROTR28 ^ ROTR34 ^ ROTR39
func sigma0(x word.Doubleword) word.Doubleword {
	return x.RotateRight(28).Xor(x.ReverseRotateRight(2)).Xor(x.ReverseRotateRight(7))
}

// ROTR14 ^ ROTR18 ^ ROTR41
func sigma1(x word.Doubleword) word.Doubleword {
	return x.RotateRight(14).Xor(x.RotateRight(18)).Xor(x.ReverseRotateRight(9))
}

// ROTR1 ^ ROTR8 ^ SHR7
func gamma0(x word.Doubleword) word.Doubleword {
	return x.RotateRight(1).Xor(x.RotateRight(8)).Xor(x.ShiftRight(7))
}

// ROTR19 ^ ROTR61 ^ SHR6
func gamma1(x word.Doubleword) word.Doubleword {
	return x.RotateRight(19).Xor(x.ReverseRotateRight(29)).Xor(x.ShiftRight(6))
}

// Sum returns the digest of b for this variant.
func (v Variant) Sum(b []byte) []byte {
	words := word.BytesToDoublewords(word.Pad(b, BlockSize, lengthSize, word.Big))

	h := v.iv
	var w [80]word.Doubleword
	for i := 0; i < len(words); i += 16 {
		a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for j := 0; j < 80; j++ {
			if j < 16 {
				w[j] = words[i+j]
			} else {
				w[j] = word.Add4(gamma1(w[j-2]), w[j-7], gamma0(w[j-15]), w[j-16])
			}
			t1 := word.Add5(hh, sigma1(e), ch(e, f, g), k[j], w[j])
			t2 := word.Add(sigma0(a), maj(a, bb, c))
			hh, g, f, e, d, c, bb, a = g, f, e, word.Add(d, t1), c, bb, a, word.Add(t1, t2)
		}
		h[0] = word.Add(h[0], a)
		h[1] = word.Add(h[1], bb)
		h[2] = word.Add(h[2], c)
		h[3] = word.Add(h[3], d)
		h[4] = word.Add(h[4], e)
		h[5] = word.Add(h[5], f)
		h[6] = word.Add(h[6], g)
		h[7] = word.Add(h[7], hh)
	}
	return word.DoublewordsToBytes(h[:])[:v.size]
}

// Sum384 returns the SHA-384 digest of b.
func Sum384(b []byte) []byte { return SHA384.Sum(b) }

// Sum512 returns the SHA-512 digest of b.
func Sum512(b []byte) []byte { return SHA512.Sum(b) }

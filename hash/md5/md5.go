// Package md5 is a pure-logic MD5 engine (RFC 1321).
package md5

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/word"
)

const Name = "md5"

// Code is the multicodec code for md5.
const Code = uint64(multicodec.Md5)

// Size of an MD5 digest in bytes.
const Size = 16

// BlockSize of MD5 in bytes.
const BlockSize = 64

var shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

var table = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

func ff(b, c, d uint32) uint32 { return b&c | ^b&d }
func gg(b, c, d uint32) uint32 { return b&d | c&^d }
func hh(b, c, d uint32) uint32 { return b ^ c ^ d }
func ii(b, c, d uint32) uint32 { return c ^ (b | ^d) }

// message word used by round i
func index(i int) int {
	switch i / 16 {
	case 0:
		return i
	case 1:
		return (5*i + 1) % 16
	case 2:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}

// Sum returns the MD5 digest of b.
func Sum(b []byte) []byte {
	words := word.BytesToWords(word.Pad(b, BlockSize, 8, word.Little), word.Little)

	h := [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	for i := 0; i < len(words); i += 16 {
		x := words[i : i+16]
		a, bb, c, d := h[0], h[1], h[2], h[3]
		for j := 0; j < 64; j++ {
			var f uint32
			switch j / 16 {
			case 0:
				f = ff(bb, c, d)
			case 1:
				f = gg(bb, c, d)
			case 2:
				f = hh(bb, c, d)
			default:
				f = ii(bb, c, d)
			}
			sum := word.AddWords(word.AddWords(a, f), word.AddWords(x[index(j)], table[j]))
			a, bb, c, d = d, word.AddWords(bb, word.RotateLeft(sum, shifts[j])), bb, c
		}
		h[0] = word.AddWords(h[0], a)
		h[1] = word.AddWords(h[1], bb)
		h[2] = word.AddWords(h[2], c)
		h[3] = word.AddWords(h[3], d)
	}
	return word.WordsToBytes(h[:], word.Little)
}

type engine struct{}

func (engine) Name() string        { return Name }
func (engine) Code() uint64        { return Code }
func (engine) Size() int           { return Size }
func (engine) BlockSize() int      { return BlockSize }
func (engine) Sum(b []byte) []byte { return Sum(b) }

var Engine hash.Engine = engine{}

// Package sha1 is a pure-logic SHA-1 engine (FIPS 180-4).
package sha1

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/word"
)

const Name = "sha1"

// Code is the multicodec code for sha1.
const Code = uint64(multicodec.Sha1)

// Size of a SHA-1 digest in bytes.
const Size = 20

// BlockSize of SHA-1 in bytes.
const BlockSize = 64

// round function, bucketed by quartile
func ft(t int, b, c, d uint32) uint32 {
	switch {
	case t < 20:
		return b&c | ^b&d
	case t < 40:
		return b ^ c ^ d
	case t < 60:
		return b&c | b&d | c&d
	default:
		return b ^ c ^ d
	}
}

// round constant, bucketed by quartile
func kt(t int) uint32 {
	switch {
	case t < 20:
		return 0x5a827999
	case t < 40:
		return 0x6ed9eba1
	case t < 60:
		return 0x8f1bbcdc
	default:
		return 0xca62c1d6
	}
}

// Sum returns the SHA-1 digest of b.
func Sum(b []byte) []byte {
	words := word.BytesToWords(word.Pad(b, BlockSize, 8, word.Big), word.Big)

	h := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	var w [80]uint32
	for i := 0; i < len(words); i += 16 {
		a, bb, c, d, e := h[0], h[1], h[2], h[3], h[4]
		for j := 0; j < 80; j++ {
			if j < 16 {
				w[j] = words[i+j]
			} else {
				w[j] = word.RotateLeft(w[j-3]^w[j-8]^w[j-14]^w[j-16], 1)
			}
			t := word.AddWords(
				word.AddWords(word.RotateLeft(a, 5), ft(j, bb, c, d)),
				word.AddWords(word.AddWords(e, w[j]), kt(j)),
			)
			e, d, c, bb, a = d, c, word.RotateLeft(bb, 30), a, t
		}
		h[0] = word.AddWords(h[0], a)
		h[1] = word.AddWords(h[1], bb)
		h[2] = word.AddWords(h[2], c)
		h[3] = word.AddWords(h[3], d)
		h[4] = word.AddWords(h[4], e)
	}
	return word.WordsToBytes(h[:], word.Big)
}

type engine struct{}

func (engine) Name() string        { return Name }
func (engine) Code() uint64        { return Code }
func (engine) Size() int           { return Size }
func (engine) BlockSize() int      { return BlockSize }
func (engine) Sum(b []byte) []byte { return Sum(b) }

var Engine hash.Engine = engine{}

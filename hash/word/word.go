// Package word converts between byte sequences and the 32-bit words and
// 64-bit doublewords consumed by the digest engines, and implements the
// wraparound arithmetic those engines are built on.
//
// A Doubleword is kept as a pair of 32-bit halves with explicit carry
// propagation. Its operations are bit-identical to native uint64 arithmetic.
package word

import "math/bits"

// Endian selects how bytes map onto bit positions inside a word.
type Endian int

const (
	// Little places the lowest-index byte in the least significant position.
	Little Endian = iota
	// Big places the lowest-index byte in the most significant position.
	Big
)

// BytesToWords groups bytes into 32-bit words. Bytes past the end of the
// input in a trailing partial group are treated as zero.
func BytesToWords(b []byte, e Endian) []uint32 {
	words := make([]uint32, (len(b)+3)/4)
	for i := range b {
		shift := uint(i%4) * 8
		if e == Big {
			shift = 24 - shift
		}
		words[i/4] |= uint32(b[i]) << shift
	}
	return words
}

// WordsToBytes is the inverse of BytesToWords. It always returns
// 4*len(words) bytes.
func WordsToBytes(words []uint32, e Endian) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		j := 4 * i
		if e == Big {
			b[j], b[j+1], b[j+2], b[j+3] = byte(w>>24), byte(w>>16), byte(w>>8), byte(w)
		} else {
			b[j], b[j+1], b[j+2], b[j+3] = byte(w), byte(w>>8), byte(w>>16), byte(w>>24)
		}
	}
	return b
}

// AddWords adds two words modulo 2^32.
func AddWords(a, b uint32) uint32 {
	return a + b
}

// RotateLeft rotates x left by n bits.
func RotateLeft(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n)
}

// RotateRight rotates x right by n bits.
func RotateRight(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// Doubleword is a 64-bit unsigned integer held as two 32-bit halves.
type Doubleword struct {
	High uint32
	Low  uint32
}

// FromUint64 splits v into its halves.
func FromUint64(v uint64) Doubleword {
	return Doubleword{High: uint32(v >> 32), Low: uint32(v)}
}

// Uint64 joins the halves back into a native integer.
func (x Doubleword) Uint64() uint64 {
	return uint64(x.High)<<32 | uint64(x.Low)
}

// BytesToDoublewords groups big-endian bytes into doublewords. A trailing
// partial group is zero-filled.
func BytesToDoublewords(b []byte) []Doubleword {
	words := BytesToWords(b, Big)
	out := make([]Doubleword, (len(words)+1)/2)
	for i := range out {
		out[i].High = words[2*i]
		if 2*i+1 < len(words) {
			out[i].Low = words[2*i+1]
		}
	}
	return out
}

// DoublewordsToBytes serializes doublewords big-endian, 8 bytes each.
func DoublewordsToBytes(words []Doubleword) []byte {
	flat := make([]uint32, 0, 2*len(words))
	for _, w := range words {
		flat = append(flat, w.High, w.Low)
	}
	return WordsToBytes(flat, Big)
}

// The sums below are carried through 16-bit lanes so that no intermediate
// needs more than 32 bits, even when five terms are added.

func join(w0, w1, w2, w3 uint32) Doubleword {
	return Doubleword{
		High: (w3&0xffff)<<16 | w2&0xffff,
		Low:  (w1&0xffff)<<16 | w0&0xffff,
	}
}

// Add returns x + y modulo 2^64.
func Add(x, y Doubleword) Doubleword {
	w0 := x.Low&0xffff + y.Low&0xffff
	w1 := x.Low>>16 + y.Low>>16 + w0>>16
	w2 := x.High&0xffff + y.High&0xffff + w1>>16
	w3 := x.High>>16 + y.High>>16 + w2>>16
	return join(w0, w1, w2, w3)
}

// Add4 returns a + b + c + d modulo 2^64.
func Add4(a, b, c, d Doubleword) Doubleword {
	w0 := a.Low&0xffff + b.Low&0xffff + c.Low&0xffff + d.Low&0xffff
	w1 := a.Low>>16 + b.Low>>16 + c.Low>>16 + d.Low>>16 + w0>>16
	w2 := a.High&0xffff + b.High&0xffff + c.High&0xffff + d.High&0xffff + w1>>16
	w3 := a.High>>16 + b.High>>16 + c.High>>16 + d.High>>16 + w2>>16
	return join(w0, w1, w2, w3)
}

// Add5 returns a + b + c + d + e modulo 2^64.
func Add5(a, b, c, d, e Doubleword) Doubleword {
	w0 := a.Low&0xffff + b.Low&0xffff + c.Low&0xffff + d.Low&0xffff + e.Low&0xffff
	w1 := a.Low>>16 + b.Low>>16 + c.Low>>16 + d.Low>>16 + e.Low>>16 + w0>>16
	w2 := a.High&0xffff + b.High&0xffff + c.High&0xffff + d.High&0xffff + e.High&0xffff + w1>>16
	w3 := a.High>>16 + b.High>>16 + c.High>>16 + d.High>>16 + e.High>>16 + w2>>16
	return join(w0, w1, w2, w3)
}

// RotateRight rotates x right by n bits, 0 <= n < 32.
func (x Doubleword) RotateRight(n uint) Doubleword {
	return Doubleword{
		High: x.High>>n | x.Low<<(32-n),
		Low:  x.Low>>n | x.High<<(32-n),
	}
}

// ReverseRotateRight rotates x right by 32+n bits, 0 <= n < 32. This is a
// rotation of the value with its halves swapped.
func (x Doubleword) ReverseRotateRight(n uint) Doubleword {
	return Doubleword{
		High: x.Low>>n | x.High<<(32-n),
		Low:  x.High>>n | x.Low<<(32-n),
	}
}

// ShiftRight shifts x right by n bits, 0 <= n < 32, filling with zeros.
func (x Doubleword) ShiftRight(n uint) Doubleword {
	return Doubleword{
		High: x.High >> n,
		Low:  x.Low>>n | x.High<<(32-n),
	}
}

func (x Doubleword) Xor(y Doubleword) Doubleword {
	return Doubleword{High: x.High ^ y.High, Low: x.Low ^ y.Low}
}

func (x Doubleword) And(y Doubleword) Doubleword {
	return Doubleword{High: x.High & y.High, Low: x.Low & y.Low}
}

func (x Doubleword) Not() Doubleword {
	return Doubleword{High: ^x.High, Low: ^x.Low}
}

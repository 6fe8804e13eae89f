// Package hash defines the contract shared by the pure-logic digest engines
// and a multihash view of the digests they produce.
package hash

import (
	"fmt"

	"github.com/multiformats/go-multihash"
)

// Engine is a pure function from bytes to a fixed-length digest, plus the
// constants that describe it.
type Engine interface {
	// Name is the algorithm name used to look the engine up, e.g. "sha256".
	Name() string
	// Code is the multicodec code of the algorithm.
	Code() uint64
	// Size is the digest length in bytes.
	Size() int
	// BlockSize is the number of bytes consumed per compression round.
	BlockSize() int
	// Sum returns the digest of b.
	Sum(b []byte) []byte
}

type Digest interface {
	Code() uint64
	Size() uint64
	// Digest is the raw digest bytes.
	Digest() []byte
	// Bytes is the multihash encoding of the digest.
	Bytes() []byte
}

type digest struct {
	code   uint64
	size   uint64
	digest []byte
	bytes  []byte
}

func (d *digest) Bytes() []byte {
	return d.bytes
}

func (d *digest) Code() uint64 {
	return d.code
}

func (d *digest) Digest() []byte {
	return d.digest
}

func (d *digest) Size() uint64 {
	return d.size
}

// NewDigest wraps a raw digest produced by the algorithm with the given
// multicodec code.
func NewDigest(code uint64, raw []byte) (Digest, error) {
	mh, err := multihash.Encode(raw, code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}
	return &digest{code, uint64(len(raw)), raw, mh}, nil
}

// Sum hashes b with the engine and returns the multihash view of the result.
func Sum(e Engine, b []byte) (Digest, error) {
	return NewDigest(e.Code(), e.Sum(b))
}

// Decode parses a multihash back into a Digest.
func Decode(b []byte) (Digest, error) {
	dmh, err := multihash.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding multihash: %w", err)
	}
	raw := make([]byte, len(dmh.Digest))
	copy(raw, dmh.Digest)
	mh := make([]byte, len(b))
	copy(mh, b)
	return &digest{dmh.Code, uint64(dmh.Length), raw, mh}, nil
}

// Package signature frames a MAC together with the code of the digest it
// was computed with: varint(code) | varint(len) | raw.
package signature

import (
	"bytes"
	"crypto/subtle"
	"fmt"

	"github.com/multiformats/go-varint"
)

type Signature interface {
	Code() uint64
	Size() uint64
	Bytes() []byte
	// Raw signature (without signature algorithm info).
	Raw() []byte
}

func NewSignature(code uint64, raw []byte) Signature {
	cl := varint.UvarintSize(code)
	rl := varint.UvarintSize(uint64(len(raw)))
	sig := make(signature, cl+rl+len(raw))
	varint.PutUvarint(sig, code)
	varint.PutUvarint(sig[cl:], uint64(len(raw)))
	copy(sig[cl+rl:], raw)
	return sig
}

func Encode(s Signature) []byte {
	return s.Bytes()
}

// Decode checks that b is a well formed signature and wraps it.
func Decode(b []byte) (Signature, error) {
	r := bytes.NewReader(b)
	if _, err := varint.ReadUvarint(r); err != nil {
		return nil, fmt.Errorf("reading signature code: %w", err)
	}
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading signature size: %w", err)
	}
	if uint64(r.Len()) != size {
		return nil, fmt.Errorf("signature size mismatch: header says %d bytes, got %d", size, r.Len())
	}
	return signature(b), nil
}

type signature []byte

func (s signature) Code() uint64 {
	c, _ := varint.ReadUvarint(bytes.NewReader(s))
	return c
}

func (s signature) Size() uint64 {
	n, _ := varint.ReadUvarint(bytes.NewReader(s[varint.UvarintSize(s.Code()):]))
	return n
}

func (s signature) Raw() []byte {
	cl := varint.UvarintSize(s.Code())
	rl := varint.UvarintSize(s.Size())
	return s[cl+rl:]
}

func (s signature) Bytes() []byte {
	return s
}

// Equal compares two signatures in constant time.
func Equal(a, b Signature) bool {
	return subtle.ConstantTimeCompare(a.Bytes(), b.Bytes()) == 1
}

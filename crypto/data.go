package crypto

import (
	"bytes"

	"github.com/storacha/go-hashsign/core/codec"
)

// Data is either Text or Bytes.
type Data interface {
	// Encode returns the bytes of the data, converting text with c. A nil
	// codec means UTF-8.
	Encode(c codec.Codec) ([]byte, error)
	isData()
}

type text string

// Text wraps a string. It is converted to bytes by a codec when consumed.
func Text(s string) Data {
	return text(s)
}

func (t text) Encode(c codec.Codec) ([]byte, error) {
	return codec.OrDefault(c).Encode(string(t))
}

func (text) isData() {}

type raw []byte

// Bytes wraps a copy of b.
func Bytes(b []byte) Data {
	return raw(bytes.Clone(b))
}

func (r raw) Encode(codec.Codec) ([]byte, error) {
	return r, nil
}

func (raw) isData() {}

// IsText reports whether d holds text.
func IsText(d Data) bool {
	_, ok := d.(text)
	return ok
}

// Key is the material for a signature together with the name of the digest
// algorithm the signature construction should use.
type Key struct {
	algorithm string
	data      Data
}

func NewKey(algorithm string, data Data) Key {
	return Key{algorithm: algorithm, data: data}
}

func (k Key) Algorithm() string {
	return k.algorithm
}

func (k Key) Data() Data {
	return k.data
}

// Bytes returns the key material. Text keys are always UTF-8 encoded.
func (k Key) Bytes() ([]byte, error) {
	return Encode(k.data, codec.UTF8)
}

// Encode is d.Encode(c) that treats a nil d as empty bytes.
func Encode(d Data, c codec.Codec) ([]byte, error) {
	if d == nil {
		return []byte{}, nil
	}
	return d.Encode(c)
}

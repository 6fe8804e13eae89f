// Package hmac implements the keyed-hash message authentication code
// construction of RFC 2104 on top of any hash.Engine.
package hmac

import (
	"bytes"

	"github.com/storacha/go-hashsign/hash"
	"github.com/templexxx/xor"
)

const (
	innerPad = 0x36
	outerPad = 0x5c
)

// Pads returns the inner and outer padded keys for the engine. A key longer
// than the block size is first replaced by its digest; a shorter one is
// zero-extended to the block size.
func Pads(e hash.Engine, key []byte) (ipad, opad []byte) {
	bs := e.BlockSize()
	if len(key) > bs {
		key = e.Sum(key)
	}
	k := make([]byte, bs)
	copy(k, key)

	ipad = make([]byte, bs)
	opad = make([]byte, bs)
	xor.BytesSameLen(ipad, k, bytes.Repeat([]byte{innerPad}, bs))
	xor.BytesSameLen(opad, k, bytes.Repeat([]byte{outerPad}, bs))
	return ipad, opad
}

// Sum returns HMAC(key, data) using the engine as the inner digest.
func Sum(e hash.Engine, data, key []byte) []byte {
	ipad, opad := Pads(e, key)
	inner := e.Sum(append(ipad, data...))
	return e.Sum(append(opad, inner...))
}

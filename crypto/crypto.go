// Package crypto defines the hashing and signing contracts shared by every
// provider and by the deferred facade.
package crypto

import (
	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/core/future"
)

// HashFunction digests data with one algorithm.
type HashFunction interface {
	// Algorithm is the name the function was requested by.
	Algorithm() string
	// Hash digests data. Text data is converted with c (UTF-8 when nil).
	Hash(data Data, c codec.Codec) *future.Future[[]byte]
	// Create returns a streaming hasher for the same algorithm.
	Create(c codec.Codec) Hasher
}

// SignFunction signs data with one construction. The digest used inside the
// construction is chosen by the key.
type SignFunction interface {
	Algorithm() string
	Sign(key Key, data Data, c codec.Codec) *future.Future[[]byte]
	Create(key Key, c codec.Codec) Signer
}

// Sink receives data incrementally. Once closed or aborted every further
// call is a no-op that returns nil.
type Sink interface {
	// Start registers a handler for errors raised by the underlying engine
	// outside of a Write or Close call.
	Start(onError func(error)) error
	Write(chunk Data) error
	// Close finalizes the result.
	Close() error
	// Abort discards the written data and fails the result with reason, or
	// with ErrAborted when reason is nil.
	Abort(reason error) error
}

// Hasher is a single use streaming digest.
type Hasher interface {
	Sink
	Digest() *future.Future[[]byte]
}

// Signer is a single use streaming signature.
type Signer interface {
	Sink
	Signature() *future.Future[[]byte]
}

// Provider supplies the hash and sign functions. Unknown names fail with an
// InvalidAlgorithmError.
type Provider interface {
	GetHash(algorithm string) (HashFunction, error)
	GetSign(algorithm string) (SignFunction, error)
}

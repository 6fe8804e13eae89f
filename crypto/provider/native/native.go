// Package native is the provider backed by Go's crypto packages, with
// SHA-256 from sha256-simd.
package native

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	gohash "hash"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/provider"
	"github.com/storacha/go-hashsign/crypto/sink"
)

const Name = "native"

var constructors = map[string]func() gohash.Hash{
	crypto.MD5:    md5.New,
	crypto.SHA1:   sha1.New,
	crypto.SHA224: sha256.New224,
	crypto.SHA256: sha256simd.New,
	crypto.SHA384: sha512.New384,
	crypto.SHA512: sha512.New,
}

type accumulator struct {
	h gohash.Hash
}

func (a accumulator) Write(p []byte) (int, error) {
	return a.h.Write(p)
}

func (a accumulator) Finish() ([]byte, error) {
	return a.h.Sum(nil), nil
}

type Backend struct{}

var _ provider.Backend = Backend{}

func (Backend) Name() string { return Name }

func (Backend) Hashes() []string { return crypto.HashAlgorithms() }

func (Backend) Signs() []string { return crypto.SignAlgorithms() }

func (Backend) NewHash(algorithm string) (sink.Accumulator, error) {
	newHash, ok := constructors[algorithm]
	if !ok {
		return nil, crypto.NewInvalidAlgorithmError(algorithm, crypto.HashAlgorithms())
	}
	return accumulator{newHash()}, nil
}

func (Backend) NewMAC(construction, digest string, key []byte) (sink.Accumulator, error) {
	if construction != crypto.HMAC {
		return nil, crypto.NewInvalidAlgorithmError(construction, crypto.SignAlgorithms())
	}
	newHash, ok := constructors[digest]
	if !ok {
		return nil, crypto.NewInvalidAlgorithmError(digest, crypto.HashAlgorithms())
	}
	return accumulator{hmac.New(newHash, key)}, nil
}

// New creates the native provider.
func New(opts ...provider.Option) (*provider.Provider, error) {
	return provider.New(Backend{}, opts...)
}

// Package script is the pure-logic provider. Every digest and MAC is
// computed by the engines under hash/, with no platform primitives.
package script

import (
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/provider"
	"github.com/storacha/go-hashsign/crypto/sink"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/hmac"
	"github.com/storacha/go-hashsign/hash/md5"
	"github.com/storacha/go-hashsign/hash/sha1"
	"github.com/storacha/go-hashsign/hash/sha256"
	"github.com/storacha/go-hashsign/hash/sha512"
)

const Name = "script"

var engines = map[string]hash.Engine{
	crypto.MD5:    md5.Engine,
	crypto.SHA1:   sha1.Engine,
	crypto.SHA224: sha256.SHA224,
	crypto.SHA256: sha256.SHA256,
	crypto.SHA384: sha512.SHA384,
	crypto.SHA512: sha512.SHA512,
}

// Engine returns the digest engine registered under name.
func Engine(name string) (hash.Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, crypto.NewInvalidAlgorithmError(name, crypto.HashAlgorithms())
	}
	return e, nil
}

type Backend struct{}

var _ provider.Backend = Backend{}

func (Backend) Name() string { return Name }

func (Backend) Hashes() []string { return crypto.HashAlgorithms() }

func (Backend) Signs() []string { return crypto.SignAlgorithms() }

func (Backend) NewHash(algorithm string) (sink.Accumulator, error) {
	e, err := Engine(algorithm)
	if err != nil {
		return nil, err
	}
	return sink.Buffered(func(b []byte) ([]byte, error) {
		return e.Sum(b), nil
	}), nil
}

func (Backend) NewMAC(construction, digest string, key []byte) (sink.Accumulator, error) {
	if construction != crypto.HMAC {
		return nil, crypto.NewInvalidAlgorithmError(construction, crypto.SignAlgorithms())
	}
	e, err := Engine(digest)
	if err != nil {
		return nil, err
	}
	key = append([]byte(nil), key...)
	return sink.Buffered(func(b []byte) ([]byte, error) {
		return hmac.Sum(e, b, key), nil
	}), nil
}

// New creates the pure-logic provider.
func New(opts ...provider.Option) (*provider.Provider, error) {
	return provider.New(Backend{}, opts...)
}

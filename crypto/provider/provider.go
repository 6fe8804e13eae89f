// Package provider turns a Backend, a table of digest and MAC engines, into
// a crypto.Provider with one-shot and streaming functions.
package provider

import (
	"slices"

	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/core/future"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/sink"
)

// Backend creates the engines behind a provider.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Hashes lists the digest names the backend supports.
	Hashes() []string
	// Signs lists the signature constructions the backend supports.
	Signs() []string
	// NewHash returns a fresh accumulator for a digest in Hashes.
	NewHash(algorithm string) (sink.Accumulator, error)
	// NewMAC returns a fresh accumulator for the construction, keyed with key
	// and using the digest named by digest.
	NewMAC(construction, digest string, key []byte) (sink.Accumulator, error)
}

type Provider struct {
	backend Backend
	cache   *FunctionCache
}

var _ crypto.Provider = (*Provider)(nil)

func New(backend Backend, opts ...Option) (*Provider, error) {
	cfg := providerConfig{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	cache, err := NewFunctionCache(cfg.cacheSize)
	if err != nil {
		return nil, err
	}
	return &Provider{backend: backend, cache: cache}, nil
}

func (p *Provider) Name() string {
	return p.backend.Name()
}

func (p *Provider) GetHash(algorithm string) (crypto.HashFunction, error) {
	return p.cache.Hash(algorithm, func() (crypto.HashFunction, error) {
		if !slices.Contains(p.backend.Hashes(), algorithm) {
			return nil, crypto.NewInvalidAlgorithmError(algorithm, p.backend.Hashes())
		}
		return hashFunction{algorithm, p.backend}, nil
	})
}

func (p *Provider) GetSign(algorithm string) (crypto.SignFunction, error) {
	return p.cache.Sign(algorithm, func() (crypto.SignFunction, error) {
		if !slices.Contains(p.backend.Signs(), algorithm) {
			return nil, crypto.NewInvalidAlgorithmError(algorithm, p.backend.Signs())
		}
		return signFunction{algorithm, p.backend}, nil
	})
}

// run feeds b through acc and settles a future with the outcome.
func run(algorithm string, acc sink.Accumulator, b []byte) *future.Future[[]byte] {
	if _, err := acc.Write(b); err != nil {
		return future.Rejected[[]byte](crypto.NewEngineError(algorithm, err))
	}
	sum, err := acc.Finish()
	if err != nil {
		return future.Rejected[[]byte](crypto.NewEngineError(algorithm, err))
	}
	return future.Resolved(sum)
}

type hashFunction struct {
	algorithm string
	backend   Backend
}

func (h hashFunction) Algorithm() string {
	return h.algorithm
}

func (h hashFunction) Hash(data crypto.Data, c codec.Codec) *future.Future[[]byte] {
	b, err := crypto.Encode(data, c)
	if err != nil {
		return future.Rejected[[]byte](err)
	}
	acc, err := h.backend.NewHash(h.algorithm)
	if err != nil {
		return future.Rejected[[]byte](err)
	}
	return run(h.algorithm, acc, b)
}

func (h hashFunction) Create(c codec.Codec) crypto.Hasher {
	acc, err := h.backend.NewHash(h.algorithm)
	if err != nil {
		return sink.FailedHasher(h.algorithm, err)
	}
	return sink.NewHasher(h.algorithm, c, acc)
}

type signFunction struct {
	algorithm string
	backend   Backend
}

func (s signFunction) Algorithm() string {
	return s.algorithm
}

func (s signFunction) mac(key crypto.Key) (sink.Accumulator, error) {
	if !slices.Contains(s.backend.Hashes(), key.Algorithm()) {
		return nil, crypto.NewInvalidAlgorithmError(key.Algorithm(), s.backend.Hashes())
	}
	kb, err := key.Bytes()
	if err != nil {
		return nil, err
	}
	return s.backend.NewMAC(s.algorithm, key.Algorithm(), kb)
}

func (s signFunction) Sign(key crypto.Key, data crypto.Data, c codec.Codec) *future.Future[[]byte] {
	acc, err := s.mac(key)
	if err != nil {
		return future.Rejected[[]byte](err)
	}
	b, err := crypto.Encode(data, c)
	if err != nil {
		return future.Rejected[[]byte](err)
	}
	return run(s.algorithm, acc, b)
}

func (s signFunction) Create(key crypto.Key, c codec.Codec) crypto.Signer {
	acc, err := s.mac(key)
	if err != nil {
		return sink.FailedSigner(s.algorithm, err)
	}
	return sink.NewSigner(s.algorithm, c, acc)
}

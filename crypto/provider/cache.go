package provider

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-hashsign/crypto"
)

var FunctionCacheSize = 32

// FunctionCache keeps recently requested hash and sign functions so repeated
// lookups return the same value.
type FunctionCache struct {
	hashes *lru.Cache[string, crypto.HashFunction]
	signs  *lru.Cache[string, crypto.SignFunction]
}

// Hash returns the cached function for name, or builds and caches it.
// Failed builds are not cached.
func (c *FunctionCache) Hash(name string, build func() (crypto.HashFunction, error)) (crypto.HashFunction, error) {
	if fn, ok := c.hashes.Get(name); ok {
		return fn, nil
	}
	fn, err := build()
	if err != nil {
		return nil, err
	}
	c.hashes.Add(name, fn)
	return fn, nil
}

func (c *FunctionCache) Sign(name string, build func() (crypto.SignFunction, error)) (crypto.SignFunction, error) {
	if fn, ok := c.signs.Get(name); ok {
		return fn, nil
	}
	fn, err := build()
	if err != nil {
		return nil, err
	}
	c.signs.Add(name, fn)
	return fn, nil
}

// NewFunctionCache creates an LRU cache holding up to size functions of each
// kind. Pass a value less than 1 to use [FunctionCacheSize].
func NewFunctionCache(size int) (*FunctionCache, error) {
	if size <= 0 {
		size = FunctionCacheSize
	}
	hashes, err := lru.New[string, crypto.HashFunction](size)
	if err != nil {
		return nil, fmt.Errorf("creating hash function LRU: %w", err)
	}
	signs, err := lru.New[string, crypto.SignFunction](size)
	if err != nil {
		return nil, fmt.Errorf("creating sign function LRU: %w", err)
	}
	return &FunctionCache{hashes: hashes, signs: signs}, nil
}

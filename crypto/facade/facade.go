// Package facade hands out hash and sign functions before a provider has
// been loaded. Calls made while the provider is still resolving are queued
// and delivered in order once it is available. After that the provider's
// own functions are returned directly.
package facade

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/storacha/go-hashsign/core/future"
	"github.com/storacha/go-hashsign/core/logging"
	"github.com/storacha/go-hashsign/crypto"
)

type State int

const (
	Unset State = iota
	Resolving
	Set
)

func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case Resolving:
		return "resolving"
	case Set:
		return "set"
	}
	return "unknown"
}

// Crypto owns the current provider.
type Crypto struct {
	mu        sync.Mutex
	provider  crypto.Provider
	resolving *future.Future[crypto.Provider]
	resolver  Resolver
	ctx       context.Context
}

var _ crypto.Provider = (*Crypto)(nil)

func New(opts ...Option) (*Crypto, error) {
	cfg := facadeConfig{resolver: DefaultResolver, ctx: context.Background()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return newCrypto(cfg), nil
}

func newCrypto(cfg facadeConfig) *Crypto {
	return &Crypto{provider: cfg.provider, resolver: cfg.resolver, ctx: cfg.ctx}
}

func (c *Crypto) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.provider != nil:
		return Set
	case c.resolving != nil:
		return Resolving
	}
	return Unset
}

func (c *Crypto) current() crypto.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.provider
}

// GetHash returns the provider's function when a provider is current.
// Otherwise the name is checked against the standard set and a deferred
// function is returned while the provider resolves.
func (c *Crypto) GetHash(algorithm string) (crypto.HashFunction, error) {
	if p := c.current(); p != nil {
		return p.GetHash(algorithm)
	}
	if err := crypto.CheckHash(algorithm); err != nil {
		return nil, err
	}
	target := future.Then(c.GetProvider(), func(p crypto.Provider) (crypto.HashFunction, error) {
		return p.GetHash(algorithm)
	})
	return &deferredHash{algorithm: algorithm, target: binding[crypto.HashFunction]{target}}, nil
}

// GetSign is GetHash for signature functions.
func (c *Crypto) GetSign(algorithm string) (crypto.SignFunction, error) {
	if p := c.current(); p != nil {
		return p.GetSign(algorithm)
	}
	if err := crypto.CheckSign(algorithm); err != nil {
		return nil, err
	}
	target := future.Then(c.GetProvider(), func(p crypto.Provider) (crypto.SignFunction, error) {
		return p.GetSign(algorithm)
	})
	return &deferredSign{algorithm: algorithm, target: binding[crypto.SignFunction]{target}}, nil
}

// GetProvider returns the current provider, starting a resolution when
// there is none. Concurrent callers share one resolution.
func (c *Crypto) GetProvider() *future.Future[crypto.Provider] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.provider != nil {
		return future.Resolved(c.provider)
	}
	if c.resolving != nil {
		return c.resolving
	}
	f := future.New[crypto.Provider]()
	c.resolving = f
	go c.resolve(f)
	return f
}

// SetProvider replaces the current provider. A resolution in progress is
// settled with p and its own outcome is dropped. SetProvider(nil) clears the
// provider so the next request resolves a new one.
func (c *Crypto) SetProvider(p crypto.Provider) {
	c.mu.Lock()
	c.provider = p
	var pending *future.Future[crypto.Provider]
	if p != nil {
		pending = c.resolving
		c.resolving = nil
	}
	c.mu.Unlock()

	if pending != nil {
		pending.Resolve(p)
	}
}

func (c *Crypto) resolve(f *future.Future[crypto.Provider]) {
	log := logging.Log.WithField("facade", fmt.Sprintf("%p", c))
	log.Debug("resolving crypto provider")

	p, err := c.resolver(c.ctx)
	if err == nil && p == nil {
		err = errors.New("resolver returned no provider")
	}
	if err != nil {
		var pre crypto.ProviderResolutionError
		if !errors.As(err, &pre) {
			err = crypto.NewProviderResolutionError(err)
		}
	}

	c.mu.Lock()
	if c.resolving != f {
		// superseded by SetProvider
		c.mu.Unlock()
		log.Debug("crypto provider resolution superseded")
		return
	}
	c.resolving = nil
	if err == nil {
		c.provider = p
	}
	c.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("crypto provider resolution failed")
		f.Reject(err)
		return
	}
	log.WithFields(logrus.Fields{"provider": fmt.Sprintf("%T", p)}).Debug("crypto provider resolved")
	f.Resolve(p)
}

// Default is the process-wide facade used by the package functions.
var Default = newCrypto(facadeConfig{resolver: DefaultResolver, ctx: context.Background()})

func GetHash(algorithm string) (crypto.HashFunction, error) {
	return Default.GetHash(algorithm)
}

func GetSign(algorithm string) (crypto.SignFunction, error) {
	return Default.GetSign(algorithm)
}

func GetProvider() *future.Future[crypto.Provider] {
	return Default.GetProvider()
}

func SetProvider(p crypto.Provider) {
	Default.SetProvider(p)
}

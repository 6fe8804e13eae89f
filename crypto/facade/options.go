package facade

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/storacha/go-hashsign/core/logging"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/provider/native"
	"github.com/storacha/go-hashsign/crypto/provider/script"
)

// ProviderEnv selects the provider loaded by DefaultResolver: "native" or
// "script". When unset the native provider is preferred.
const ProviderEnv = "HASHSIGN_PROVIDER"

// Resolver loads a provider. It runs on its own goroutine.
type Resolver func(ctx context.Context) (crypto.Provider, error)

// DefaultResolver picks a provider from the environment. When none is named
// the native provider is tried first, then the script one.
func DefaultResolver(ctx context.Context) (crypto.Provider, error) {
	switch name := os.Getenv(ProviderEnv); name {
	case native.Name:
		return native.New()
	case script.Name:
		return script.New()
	case "":
		return Fallback(nativeResolver, scriptResolver)(ctx)
	default:
		return nil, fmt.Errorf("unknown provider %q in %s", name, ProviderEnv)
	}
}

func nativeResolver(context.Context) (crypto.Provider, error) {
	return native.New()
}

func scriptResolver(context.Context) (crypto.Provider, error) {
	return script.New()
}

// Fallback returns a resolver that tries each of rs in turn and settles on
// the first that succeeds. It fails with every error when none does.
func Fallback(rs ...Resolver) Resolver {
	return func(ctx context.Context) (crypto.Provider, error) {
		var errs error
		for i, r := range rs {
			p, err := r(ctx)
			if err == nil {
				return p, nil
			}
			errs = multierror.Append(errs, err)
			if i < len(rs)-1 {
				logging.Log.WithError(err).Warn("crypto provider unavailable, trying the next one")
			}
		}
		if errs == nil {
			return nil, fmt.Errorf("no provider to resolve")
		}
		return nil, errs
	}
}

// Option is an option configuring a Crypto facade.
type Option func(cfg *facadeConfig) error

type facadeConfig struct {
	resolver Resolver
	provider crypto.Provider
	ctx      context.Context
}

// WithResolver configures how the provider is loaded on first use. The
// default is [DefaultResolver].
func WithResolver(r Resolver) Option {
	return func(cfg *facadeConfig) error {
		if r == nil {
			return fmt.Errorf("resolver must not be nil")
		}
		cfg.resolver = r
		return nil
	}
}

// WithProvider starts the facade with a current provider, so nothing is
// resolved until it is cleared with SetProvider(nil).
func WithProvider(p crypto.Provider) Option {
	return func(cfg *facadeConfig) error {
		cfg.provider = p
		return nil
	}
}

// WithContext sets the context passed to the resolver.
func WithContext(ctx context.Context) Option {
	return func(cfg *facadeConfig) error {
		cfg.ctx = ctx
		return nil
	}
}

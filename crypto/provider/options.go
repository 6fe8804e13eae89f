package provider

// Option is an option configuring a provider.
type Option func(cfg *providerConfig) error

type providerConfig struct {
	cacheSize int
}

// WithCacheSize sets how many functions of each kind the provider keeps. A
// value less than 1 selects [FunctionCacheSize].
func WithCacheSize(size int) Option {
	return func(cfg *providerConfig) error {
		cfg.cacheSize = size
		return nil
	}
}

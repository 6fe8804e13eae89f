package main

import (
	"context"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/spf13/pflag"
	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/facade"
	"github.com/storacha/go-hashsign/crypto/provider/native"
	"github.com/storacha/go-hashsign/crypto/provider/script"
)

// cmdOptions are shared by the hash and sign commands.
type cmdOptions struct {
	provider string
	n        int
	text     string
	codec    string
	format   string
	base     string
}

func (o *cmdOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.provider, "provider", "p", "", "crypto provider, native or script (default from $"+facade.ProviderEnv+")")
	flags.IntVarP(&o.n, "concurrency", "n", 4, "number of files processed concurrently")
	flags.StringVarP(&o.text, "text", "t", "", "process this text instead of files")
	flags.StringVar(&o.codec, "codec", "utf8", "codec converting --text to bytes (utf8, ascii, hex, base64, base32)")
	flags.StringVarP(&o.base, "base", "b", "base32", "multibase encoding for non-hex output formats")
}

func (o *cmdOptions) validate() error {
	if o.n < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if _, err := codec.ByName(o.codec); err != nil {
		return err
	}
	if _, err := multibase.EncoderByName(o.base); err != nil {
		return err
	}
	return nil
}

// newFacade returns a facade that loads the named provider, or the one
// chosen by the environment when name is empty.
func newFacade(name string) (*facade.Crypto, error) {
	var resolver facade.Resolver
	switch name {
	case "":
		resolver = facade.DefaultResolver
	case native.Name:
		resolver = func(context.Context) (crypto.Provider, error) { return native.New() }
	case script.Name:
		resolver = func(context.Context) (crypto.Provider, error) { return script.New() }
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	return facade.New(facade.WithResolver(resolver))
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/spf13/cobra"
	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/provider/script"
	"github.com/storacha/go-hashsign/crypto/signature"
)

type signOptions struct {
	cmdOptions
	digest   string
	key      string
	keyCodec string
}

func newSignCommand(ctx context.Context) *cobra.Command {
	var opt signOptions

	cmd := &cobra.Command{
		Use:   "sign [<file>...]",
		Short: "Compute the HMAC of files or text",
		Long: `Compute the HMAC of one or more files, or of the text given with --text.

The key is given with --key and converted to bytes with --key-codec. Output
formats are hex, multibase, and signature (the MAC framed with the varint code
of its digest, multibase encoded).

Use '-' to read from STDIN.`,
		Example: `  hashsign sign -k secret -d sha256 file.bin
  hashsign sign -k 0b0b0b0b --key-codec hex -t "Hi There"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(ctx, opt, args)
		},
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	opt.addFlags(flags)
	flags.StringVarP(&opt.digest, "digest", "d", crypto.SHA256, "digest algorithm used inside the HMAC")
	flags.StringVarP(&opt.key, "key", "k", "", "signing key")
	flags.StringVar(&opt.keyCodec, "key-codec", "utf8", "codec converting --key to bytes")
	flags.StringVarP(&opt.format, "format", "f", "hex", "output format (hex, multibase, signature)")
	return cmd
}

func runSign(ctx context.Context, opt signOptions, args []string) error {
	if err := opt.validate(); err != nil {
		return err
	}
	if opt.text == "" && len(args) == 0 {
		return errors.New("no input, pass files or --text")
	}
	keyCodec, err := codec.ByName(opt.keyCodec)
	if err != nil {
		return err
	}
	kb, err := keyCodec.Encode(opt.key)
	if err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}
	key := crypto.NewKey(opt.digest, crypto.Bytes(kb))

	c, err := newFacade(opt.provider)
	if err != nil {
		return err
	}
	fn, err := c.GetSign(crypto.HMAC)
	if err != nil {
		return err
	}

	if opt.text != "" {
		data, cdc, err := textData(opt.text, opt.codec)
		if err != nil {
			return err
		}
		mac, err := fn.Sign(key, data, cdc).Await(ctx)
		if err != nil {
			return err
		}
		out, err := formatSignature(opt.digest, opt.format, opt.base, mac)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	macs, err := processFiles(ctx, opt.n, args, func(ctx context.Context, name string) ([]byte, error) {
		s := fn.Create(key, nil)
		return feedFile(ctx, stream{s, s.Signature()}, name)
	})
	for i, mac := range macs {
		if mac == nil {
			continue
		}
		out, ferr := formatSignature(opt.digest, opt.format, opt.base, mac)
		if ferr != nil {
			return ferr
		}
		fmt.Fprintf(stdout, "%s  %s\n", out, args[i])
	}
	return err
}

func formatSignature(digest, format, base string, mac []byte) (string, error) {
	switch format {
	case "hex":
		return codec.Hex.Decode(mac)
	case "multibase", "signature":
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", err
	}
	if format == "multibase" {
		return enc.Encode(mac), nil
	}
	e, err := script.Engine(digest)
	if err != nil {
		return "", err
	}
	return enc.Encode(signature.Encode(signature.NewSignature(e.Code(), mac))), nil
}

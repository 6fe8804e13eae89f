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
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/link"
)

type hashOptions struct {
	cmdOptions
	algorithm string
}

func newHashCommand(ctx context.Context) *cobra.Command {
	var opt hashOptions

	cmd := &cobra.Command{
		Use:   "hash [<file>...]",
		Short: "Compute the digest of files or text",
		Long: `Compute the digest of one or more files, or of the text given with --text.

Output formats are hex, multibase (the raw digest in the --base encoding),
multihash (multibase encoded), cid (a CIDv1 raw link) and link (the CID as
a DAG-JSON link).

Use '-' to read from STDIN.`,
		Example: `  hashsign hash -a sha512 file.bin
  hashsign hash -t 616263 --codec hex -f cid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(ctx, opt, args)
		},
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	opt.addFlags(flags)
	flags.StringVarP(&opt.algorithm, "algorithm", "a", crypto.SHA256, "digest algorithm")
	flags.StringVarP(&opt.format, "format", "f", "hex", "output format (hex, multibase, multihash, cid, link)")
	return cmd
}

func runHash(ctx context.Context, opt hashOptions, args []string) error {
	if err := opt.validate(); err != nil {
		return err
	}
	if opt.text == "" && len(args) == 0 {
		return errors.New("no input, pass files or --text")
	}
	c, err := newFacade(opt.provider)
	if err != nil {
		return err
	}
	fn, err := c.GetHash(opt.algorithm)
	if err != nil {
		return err
	}

	if opt.text != "" {
		data, cdc, err := textData(opt.text, opt.codec)
		if err != nil {
			return err
		}
		sum, err := fn.Hash(data, cdc).Await(ctx)
		if err != nil {
			return err
		}
		out, err := formatDigest(opt.algorithm, opt.format, opt.base, sum)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	sums, err := processFiles(ctx, opt.n, args, func(ctx context.Context, name string) ([]byte, error) {
		h := fn.Create(nil)
		return feedFile(ctx, stream{h, h.Digest()}, name)
	})
	for i, sum := range sums {
		if sum == nil {
			continue
		}
		out, ferr := formatDigest(opt.algorithm, opt.format, opt.base, sum)
		if ferr != nil {
			return ferr
		}
		fmt.Fprintf(stdout, "%s  %s\n", out, args[i])
	}
	return err
}

func formatDigest(algorithm, format, base string, sum []byte) (string, error) {
	if format == "hex" {
		return codec.Hex.Decode(sum)
	}
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", err
	}
	if format == "multibase" {
		return enc.Encode(sum), nil
	}

	e, err := script.Engine(algorithm)
	if err != nil {
		return "", err
	}
	d, err := hash.NewDigest(e.Code(), sum)
	if err != nil {
		return "", err
	}
	switch format {
	case "multihash":
		return enc.Encode(d.Bytes()), nil
	case "cid":
		return link.Of(d).Encode(enc), nil
	case "link":
		b, err := link.JSON(d)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

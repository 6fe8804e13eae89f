package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/provider/script"
)

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range crypto.HashAlgorithms() {
				e, err := script.Engine(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "%-8s hash  code=0x%x size=%d block=%d\n", name, e.Code(), e.Size(), e.BlockSize())
			}
			fmt.Fprintf(stdout, "%-8s sign  digests=%s\n", crypto.HMAC, strings.Join(crypto.HashAlgorithms(), ","))
			return nil
		},
		SilenceUsage: true,
	}
}

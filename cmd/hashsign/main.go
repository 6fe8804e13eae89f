package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/storacha/go-hashsign/core/logging"
	"github.com/storacha/go-hashsign/core/result/failure"
)

// Define writers for STDOUT and STDERR that are used in the commands.
// This allows tests to override them and write to buffers instead.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rootCmd := newRootCommand()
	rootCmd.AddCommand(
		newHashCommand(ctx),
		newSignCommand(ctx),
		newAlgorithmsCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w, prefixed with its failure name when it has one.
// The stack, if any, is logged at debug level.
func printError(w io.Writer, err error) {
	if name := failure.NameOf(err); name != "" {
		fmt.Fprintf(w, "%s: %s\n", name, err)
	} else {
		fmt.Fprintln(w, err)
	}
	if f, ok := failure.FromError(err).(failure.WithStackTrace); ok && f.Stack() != "" {
		logging.Log.WithField("stack", f.Stack()).Debug("command failed")
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/core/future"
	"github.com/storacha/go-hashsign/core/iterable"
	"github.com/storacha/go-hashsign/crypto"
	"golang.org/x/sync/errgroup"
)

const chunkSize = 64 << 10

// stream is a sink together with the result it settles.
type stream struct {
	sink   crypto.Sink
	result *future.Future[[]byte]
}

// feed streams r into s in chunks and waits for the result. A read error or
// a cancelled context aborts the sink.
func feed(ctx context.Context, s stream, r io.Reader) ([]byte, error) {
	if err := s.sink.Start(nil); err != nil {
		return nil, err
	}
	chunks := iterable.Chunks(r, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			s.sink.Abort(err)
			break
		}
		chunk, err := chunks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.sink.Abort(err)
			break
		}
		if err := s.sink.Write(crypto.Bytes(chunk)); err != nil {
			return nil, err
		}
	}
	if err := s.sink.Close(); err != nil {
		return nil, err
	}
	return s.result.Await(ctx)
}

func feedFile(ctx context.Context, s stream, name string) ([]byte, error) {
	if name == "-" {
		return feed(ctx, s, stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return feed(ctx, s, f)
}

// processFiles runs fn over every file with at most n in flight. Results are
// returned in the order of names; failures are collected rather than
// stopping the other files.
func processFiles(ctx context.Context, n int, names []string, fn func(ctx context.Context, name string) ([]byte, error)) ([][]byte, error) {
	var (
		g       errgroup.Group
		mu      sync.Mutex
		errs    *multierror.Error
		results = make([][]byte, len(names))
	)
	g.SetLimit(n)
	for i, name := range names {
		g.Go(func() error {
			b, err := fn(ctx, name)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				return nil
			}
			results[i] = b
			return nil
		})
	}
	_ = g.Wait()
	return results, errs.ErrorOrNil()
}

// textData converts --text with the named codec.
func textData(text, codecName string) (crypto.Data, codec.Codec, error) {
	c, err := codec.ByName(codecName)
	if err != nil {
		return nil, nil, err
	}
	return crypto.Text(text), c, nil
}

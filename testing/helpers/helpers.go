package helpers

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	"github.com/storacha/go-hashsign/core/future"
)

// Must takes return values from a function and returns the non-error one. If
// the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

// MustDecodeHex decodes a hex string, panicking on malformed input.
func MustDecodeHex(s string) []byte {
	return Must(hex.DecodeString(s))
}

// RandomSplit cuts b into chunks at random boundaries. Empty chunks are
// allowed so that zero-length writes are exercised too.
func RandomSplit(rng *rand.Rand, b []byte) [][]byte {
	var chunks [][]byte
	for len(b) > 0 {
		n := rng.Intn(len(b) + 1)
		chunks = append(chunks, b[:n])
		b = b[n:]
	}
	return append(chunks, []byte{})
}

// Await waits up to a few seconds for f to settle and fails the test if it
// does not.
func Await[T any](t testing.TB, f *future.Future[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	v, err := f.Await(ctx)
	if ctx.Err() != nil {
		t.Fatalf("future did not settle: %v", ctx.Err())
	}
	return v, err
}

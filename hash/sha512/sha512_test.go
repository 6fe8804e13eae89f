package sha512

import (
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/storacha/go-hashsign/testing/fixtures"
	"github.com/storacha/go-hashsign/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	for _, variant := range []Variant{SHA384, SHA512} {
		t.Run(variant.Name(), func(t *testing.T) {
			vectors := fixtures.DigestsFor(variant.Name())
			require.NotEmpty(t, vectors)
			for _, v := range vectors {
				require.Equal(t, v.Digest, hex.EncodeToString(variant.Sum([]byte(v.Input))), "input %q", v.Input)
			}
		})
	}
}

func TestSumMatchesStdlib(t *testing.T) {
	// covers the one and two block boundaries at 111/112 bytes
	for n := 0; n < 400; n++ {
		b := helpers.RandomBytes(n)
		want384 := stdsha512.Sum384(b)
		want512 := stdsha512.Sum512(b)
		require.Equal(t, want384[:], Sum384(b), "sha384 length %d", n)
		require.Equal(t, want512[:], Sum512(b), "sha512 length %d", n)
	}
}

func TestVariants(t *testing.T) {
	require.Equal(t, 48, SHA384.Size())
	require.Equal(t, 64, SHA512.Size())
	require.Equal(t, uint64(0x20), SHA384.Code())
	require.Equal(t, uint64(0x13), SHA512.Code())
	require.Equal(t, 128, SHA512.BlockSize())
}

package signature

import (
	"testing"

	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashsign/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestSignature(t *testing.T) {
	raw := helpers.RandomBytes(32)
	code := uint64(multicodec.Sha2_256)

	s := NewSignature(code, raw)
	require.Equal(t, code, s.Code())
	require.Equal(t, uint64(32), s.Size())
	require.Equal(t, raw, s.Raw())

	d, err := Decode(Encode(s))
	require.NoError(t, err)
	require.Equal(t, s.Bytes(), d.Bytes())
	require.True(t, Equal(s, d))
	require.False(t, Equal(s, NewSignature(code, helpers.RandomBytes(32))))
}

func TestDecodeInvalid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		require.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		s := NewSignature(uint64(multicodec.Sha2_512), helpers.RandomBytes(64))
		_, err := Decode(s.Bytes()[:len(s.Bytes())-1])
		require.Error(t, err)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		s := NewSignature(uint64(multicodec.Md5), helpers.RandomBytes(16))
		_, err := Decode(append(s.Bytes(), 0))
		require.Error(t, err)
	})
}

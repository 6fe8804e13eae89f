package hash_test

import (
	"testing"

	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/md5"
	"github.com/storacha/go-hashsign/hash/sha512"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	d, err := hash.Sum(sha512.SHA512, []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, uint64(multihash.SHA2_512), d.Code())
	require.Equal(t, uint64(64), d.Size())
	require.Equal(t, sha512.Sum512([]byte("abc")), d.Digest())

	dmh, err := multihash.Decode(d.Bytes())
	require.NoError(t, err)
	require.Equal(t, d.Digest(), dmh.Digest)
}

func TestDecode(t *testing.T) {
	d, err := hash.Sum(md5.Engine, []byte("abc"))
	require.NoError(t, err)

	decoded, err := hash.Decode(d.Bytes())
	require.NoError(t, err)
	require.Equal(t, d.Code(), decoded.Code())
	require.Equal(t, d.Size(), decoded.Size())
	require.Equal(t, d.Digest(), decoded.Digest())
	require.Equal(t, d.Bytes(), decoded.Bytes())

	_, err = hash.Decode([]byte{0xff})
	require.Error(t, err)
}

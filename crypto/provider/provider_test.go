package provider_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/storacha/go-hashsign/core/codec"
	"github.com/storacha/go-hashsign/crypto"
	"github.com/storacha/go-hashsign/crypto/provider"
	"github.com/storacha/go-hashsign/crypto/provider/native"
	"github.com/storacha/go-hashsign/crypto/provider/script"
	"github.com/storacha/go-hashsign/testing/fixtures"
	"github.com/storacha/go-hashsign/testing/helpers"
	"github.com/stretchr/testify/require"
)

func providers(t *testing.T) map[string]*provider.Provider {
	s, err := script.New()
	require.NoError(t, err)
	n, err := native.New(provider.WithCacheSize(4))
	require.NoError(t, err)
	return map[string]*provider.Provider{s.Name(): s, n.Name(): n}
}

func TestVectors(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for _, v := range fixtures.Digests {
				fn, err := p.GetHash(v.Algorithm)
				require.NoError(t, err)
				require.Equal(t, v.Algorithm, fn.Algorithm())

				digest, err := helpers.Await(t, fn.Hash(crypto.Text(v.Input), nil))
				require.NoError(t, err)
				require.Equal(t, helpers.MustDecodeHex(v.Digest), digest, "%s(%q)", v.Algorithm, v.Input)
			}

			sign, err := p.GetSign(crypto.HMAC)
			require.NoError(t, err)
			for _, m := range fixtures.HMACs {
				key := crypto.NewKey(m.Algorithm, crypto.Text(m.Key))
				mac, err := helpers.Await(t, sign.Sign(key, crypto.Text(m.Input), nil))
				require.NoError(t, err)
				require.Equal(t, helpers.MustDecodeHex(m.MAC), mac, "hmac-%s", m.Algorithm)
			}
		})
	}
}

func TestProvidersAgree(t *testing.T) {
	ps := providers(t)
	rng := rand.New(rand.NewSource(7))
	for _, alg := range crypto.HashAlgorithms() {
		for i := 0; i < 10; i++ {
			input := helpers.RandomBytes(rng.Intn(600))
			key := crypto.NewKey(alg, crypto.Bytes(helpers.RandomBytes(rng.Intn(300))))

			sh, err := ps[script.Name].GetHash(alg)
			require.NoError(t, err)
			nh, err := ps[native.Name].GetHash(alg)
			require.NoError(t, err)
			a, err := helpers.Await(t, sh.Hash(crypto.Bytes(input), nil))
			require.NoError(t, err)
			b, err := helpers.Await(t, nh.Hash(crypto.Bytes(input), nil))
			require.NoError(t, err)
			require.Equal(t, b, a, "%s over %d bytes", alg, len(input))

			ss, err := ps[script.Name].GetSign(crypto.HMAC)
			require.NoError(t, err)
			ns, err := ps[native.Name].GetSign(crypto.HMAC)
			require.NoError(t, err)
			a, err = helpers.Await(t, ss.Sign(key, crypto.Bytes(input), nil))
			require.NoError(t, err)
			b, err = helpers.Await(t, ns.Sign(key, crypto.Bytes(input), nil))
			require.NoError(t, err)
			require.Equal(t, b, a, "hmac-%s over %d bytes", alg, len(input))
		}
	}
}

func TestStreamingEqualsOneShot(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for _, alg := range crypto.HashAlgorithms() {
				input := helpers.RandomBytes(1 + rng.Intn(1000))

				fn, err := p.GetHash(alg)
				require.NoError(t, err)
				want, err := helpers.Await(t, fn.Hash(crypto.Bytes(input), nil))
				require.NoError(t, err)

				h := fn.Create(nil)
				require.NoError(t, h.Start(nil))
				for _, chunk := range helpers.RandomSplit(rng, input) {
					require.NoError(t, h.Write(crypto.Bytes(chunk)))
				}
				require.NoError(t, h.Close())
				got, err := helpers.Await(t, h.Digest())
				require.NoError(t, err)
				require.Equal(t, want, got, alg)

				sign, err := p.GetSign(crypto.HMAC)
				require.NoError(t, err)
				key := crypto.NewKey(alg, crypto.Text("secret"))
				want, err = helpers.Await(t, sign.Sign(key, crypto.Bytes(input), nil))
				require.NoError(t, err)

				s := sign.Create(key, nil)
				for _, chunk := range helpers.RandomSplit(rng, input) {
					require.NoError(t, s.Write(crypto.Bytes(chunk)))
				}
				require.NoError(t, s.Close())
				got, err = helpers.Await(t, s.Signature())
				require.NoError(t, err)
				require.Equal(t, want, got, "hmac-%s", alg)
			}
		})
	}
}

func TestCodecs(t *testing.T) {
	input := []byte("The rain in Spain falls mainly on the plain.")
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			fn, err := p.GetHash(crypto.MD5)
			require.NoError(t, err)
			want, err := helpers.Await(t, fn.Hash(crypto.Bytes(input), nil))
			require.NoError(t, err)

			for _, c := range []codec.Codec{codec.UTF8, codec.ASCII, codec.Base64, codec.Hex, codec.Base32} {
				text, err := c.Decode(input)
				require.NoError(t, err)

				got, err := helpers.Await(t, fn.Hash(crypto.Text(text), c))
				require.NoError(t, err)
				require.Equal(t, want, got, c.Name())

				h := fn.Create(c)
				require.NoError(t, h.Write(crypto.Text(text)))
				require.NoError(t, h.Close())
				got, err = helpers.Await(t, h.Digest())
				require.NoError(t, err)
				require.Equal(t, want, got, c.Name())
			}

			_, err = helpers.Await(t, fn.Hash(crypto.Text("zz"), codec.Hex))
			require.Error(t, err)
		})
	}
}

func TestInvalidAlgorithm(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.GetHash("sha3")
			var iae crypto.InvalidAlgorithmError
			require.True(t, errors.As(err, &iae))
			require.Equal(t, "sha3", iae.Algorithm())

			_, err = p.GetSign(crypto.SHA256)
			require.True(t, errors.As(err, &iae))
			require.Equal(t, []string{crypto.HMAC}, iae.Available())

			sign, err := p.GetSign(crypto.HMAC)
			require.NoError(t, err)
			key := crypto.NewKey("whirlpool", crypto.Text("key"))

			_, err = helpers.Await(t, sign.Sign(key, crypto.Text("data"), nil))
			require.True(t, errors.As(err, &iae))
			require.Equal(t, "whirlpool", iae.Algorithm())

			s := sign.Create(key, nil)
			require.NoError(t, s.Write(crypto.Text("data")))
			require.NoError(t, s.Close())
			_, err = helpers.Await(t, s.Signature())
			require.True(t, errors.As(err, &iae))
		})
	}
}

func TestAbort(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			fn, err := p.GetHash(crypto.SHA256)
			require.NoError(t, err)

			reason := errors.New("stop")
			h := fn.Create(nil)
			require.NoError(t, h.Start(nil))
			require.NoError(t, h.Write(crypto.Text("abc")))
			require.NoError(t, h.Abort(reason))
			require.NoError(t, h.Abort(errors.New("twice")))
			require.NoError(t, h.Close())
			require.NoError(t, h.Write(crypto.Text("more")))

			_, err = helpers.Await(t, h.Digest())
			require.Equal(t, reason, err)

			sign, err := p.GetSign(crypto.HMAC)
			require.NoError(t, err)
			s := sign.Create(crypto.NewKey(crypto.SHA1, crypto.Text("key")), nil)
			require.NoError(t, s.Abort(nil))
			require.NoError(t, s.Close())
			_, err = helpers.Await(t, s.Signature())
			require.ErrorIs(t, err, crypto.ErrAborted)
		})
	}
}

func TestFunctionCache(t *testing.T) {
	p, err := script.New(provider.WithCacheSize(2))
	require.NoError(t, err)

	a, err := p.GetHash(crypto.SHA1)
	require.NoError(t, err)
	b, err := p.GetHash(crypto.SHA1)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := provider.NewFunctionCache(0)
	require.NoError(t, err)
	builds := 0
	build := func() (crypto.HashFunction, error) {
		builds++
		return a, nil
	}
	_, err = c.Hash("x", build)
	require.NoError(t, err)
	_, err = c.Hash("x", build)
	require.NoError(t, err)
	require.Equal(t, 1, builds)

	_, err = c.Sign("y", func() (crypto.SignFunction, error) { return nil, errors.New("nope") })
	require.Error(t, err)
}

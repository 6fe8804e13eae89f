package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	input := []byte("The rain in Spain falls mainly on the plain.")
	for _, c := range []Codec{UTF8, ASCII, Hex, Base64, Base32} {
		t.Run(c.Name(), func(t *testing.T) {
			s, err := c.Decode(input)
			require.NoError(t, err)
			b, err := c.Encode(s)
			require.NoError(t, err)
			require.Equal(t, input, b)
		})
	}
}

func TestKnownEncodings(t *testing.T) {
	s, err := Hex.Decode([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, "616263", s)

	b, err := Hex.Encode("616263")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)

	b, err = Hex.Encode("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	s, err = Base64.Decode([]byte("abcd"))
	require.NoError(t, err)
	require.Equal(t, "YWJjZA==", s)

	s, err = Base32.Decode([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, "MFRGG===", s)
}

func TestInvalidInput(t *testing.T) {
	_, err := Hex.Encode("zz")
	require.Error(t, err)

	_, err = ASCII.Encode("héllo")
	require.Error(t, err)

	_, err = UTF8.Decode([]byte{0xff, 0xfe})
	require.Error(t, err)

	_, err = Base32.Encode("!!")
	require.Error(t, err)
}

func TestByName(t *testing.T) {
	c, err := ByName("HEX")
	require.NoError(t, err)
	require.Equal(t, Hex, c)

	_, err = ByName("rot13")
	require.Error(t, err)

	require.Equal(t, UTF8, OrDefault(nil))
	require.Equal(t, ASCII, OrDefault(ASCII))
}

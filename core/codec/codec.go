// Package codec converts between text and bytes. The digest and signing
// functions accept text input and use a Codec to turn it into bytes first.
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/multiformats/go-base32"
	"github.com/multiformats/go-multibase"
)

// Codec encodes text to bytes and decodes bytes back to text.
type Codec interface {
	Name() string
	Encode(s string) ([]byte, error)
	Decode(b []byte) (string, error)
}

var (
	UTF8   Codec = utf8Codec{}
	ASCII  Codec = asciiCodec{}
	Hex    Codec = multibaseCodec{name: "hex", base: multibase.Base16}
	Base64 Codec = multibaseCodec{name: "base64", base: multibase.Base64pad}
	Base32 Codec = base32Codec{}
)

var codecs = map[string]Codec{
	UTF8.Name():   UTF8,
	ASCII.Name():  ASCII,
	Hex.Name():    Hex,
	Base64.Name(): Base64,
	Base32.Name(): Base32,
}

// ByName looks up one of the codecs above by its name.
func ByName(name string) (Codec, error) {
	c, ok := codecs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown codec: %q", name)
	}
	return c, nil
}

// OrDefault returns c, or UTF8 when c is nil.
func OrDefault(c Codec) Codec {
	if c == nil {
		return UTF8
	}
	return c
}

type utf8Codec struct{}

func (utf8Codec) Name() string { return "utf8" }

func (utf8Codec) Encode(s string) ([]byte, error) {
	return []byte(s), nil
}

func (utf8Codec) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid utf-8 sequence")
	}
	return string(b), nil
}

type asciiCodec struct{}

func (asciiCodec) Name() string { return "ascii" }

func (asciiCodec) Encode(s string) ([]byte, error) {
	b := []byte(s)
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return nil, fmt.Errorf("non-ascii byte 0x%x at offset %d", c, i)
		}
	}
	return b, nil
}

func (c asciiCodec) Decode(b []byte) (string, error) {
	for i, x := range b {
		if x >= utf8.RuneSelf {
			return "", fmt.Errorf("non-ascii byte 0x%x at offset %d", x, i)
		}
	}
	return string(b), nil
}

// multibaseCodec treats text as a multibase string without its prefix.
type multibaseCodec struct {
	name string
	base multibase.Encoding
}

func (c multibaseCodec) Name() string { return c.name }

func (c multibaseCodec) Encode(s string) ([]byte, error) {
	if c.base == multibase.Base16 {
		s = strings.ToLower(s)
	}
	_, b, err := multibase.Decode(string(rune(c.base)) + s)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.name, err)
	}
	return b, nil
}

func (c multibaseCodec) Decode(b []byte) (string, error) {
	s, err := multibase.Encode(c.base, b)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.name, err)
	}
	return s[1:], nil
}

type base32Codec struct{}

func (base32Codec) Name() string { return "base32" }

func (base32Codec) Encode(s string) ([]byte, error) {
	b, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding base32: %w", err)
	}
	return b, nil
}

func (base32Codec) Decode(b []byte) (string, error) {
	return base32.StdEncoding.EncodeToString(b), nil
}

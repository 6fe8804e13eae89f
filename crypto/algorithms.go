package crypto

import "slices"

const (
	MD5    = "md5"
	SHA1   = "sha1"
	SHA224 = "sha224"
	SHA256 = "sha256"
	SHA384 = "sha384"
	SHA512 = "sha512"

	HMAC = "hmac"
)

var (
	hashAlgorithms = []string{MD5, SHA1, SHA224, SHA256, SHA384, SHA512}
	signAlgorithms = []string{HMAC}
)

// HashAlgorithms lists the standard digest names.
func HashAlgorithms() []string {
	return slices.Clone(hashAlgorithms)
}

// SignAlgorithms lists the standard signature names.
func SignAlgorithms() []string {
	return slices.Clone(signAlgorithms)
}

// CheckHash fails with an InvalidAlgorithmError when algorithm is not a
// standard digest name.
func CheckHash(algorithm string) error {
	if !slices.Contains(hashAlgorithms, algorithm) {
		return NewInvalidAlgorithmError(algorithm, hashAlgorithms)
	}
	return nil
}

// CheckSign is CheckHash for signature names.
func CheckSign(algorithm string) error {
	if !slices.Contains(signAlgorithms, algorithm) {
		return NewInvalidAlgorithmError(algorithm, signAlgorithms)
	}
	return nil
}

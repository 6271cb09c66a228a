// package hash provides the message digests used for TLS handshake
// transcripts, with a choice between two backends.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
)

type Algorithm int

const (
	None Algorithm = iota
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	// MD5SHA1 is the concatenation of an MD5 and a SHA1 digest over the
	// same input, as used by TLS 1.0 and 1.1.
	MD5SHA1
)

var (
	ErrUnknownAlgorithm = errors.New("hash: unknown algorithm")
	ErrUnavailable      = errors.New("hash: algorithm not available")
	ErrNotAllowed       = errors.New("hash: MD5 not allowed in FIPS mode")
	ErrNotReady         = errors.New("hash: state not ready for input")
	ErrDigestSize       = errors.New("hash: wrong digest size")
)

var algorithms = []struct {
	name      string
	digest    int
	blockSize int
}{
	None:    {"none", 0, 0},
	MD5:     {"md5", md5.Size, md5.BlockSize},
	SHA1:    {"sha1", sha1.Size, sha1.BlockSize},
	SHA224:  {"sha224", sha256.Size224, sha256.BlockSize},
	SHA256:  {"sha256", sha256.Size, sha256.BlockSize},
	SHA384:  {"sha384", sha512.Size384, sha512.BlockSize},
	SHA512:  {"sha512", sha512.Size, sha512.BlockSize},
	MD5SHA1: {"md5+sha1", md5.Size + sha1.Size, md5.BlockSize},
}

func (a Algorithm) known() bool {
	return a >= None && int(a) < len(algorithms)
}

func (a Algorithm) String() string {
	if !a.known() {
		return fmt.Sprintf("unknown(%d)", int(a))
	}
	return algorithms[a].name
}

// DigestSize returns the size of the digest in bytes, or 0 for None and
// unknown algorithms.
func (a Algorithm) DigestSize() int {
	if !a.known() {
		return 0
	}
	return algorithms[a].digest
}

func (a Algorithm) BlockSize() int {
	if !a.known() {
		return 0
	}
	return algorithms[a].blockSize
}

// IsAvailable reports whether the algorithm can be used with a backend
// that allows MD5. FIPS states additionally refuse MD5 unless allowed.
func (a Algorithm) IsAvailable() bool {
	return a.known()
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for i, alg := range algorithms {
		if alg.name == name {
			return Algorithm(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) usesMD5() bool {
	return a == MD5 || a == MD5SHA1
}

package hash

import (
	"crypto"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"fmt"
	stdhash "hash"
)

// A backend creates the underlying hash functions. The low-level backend
// calls the algorithm packages directly, the generic one goes through
// the crypto.Hash registry.
type backend interface {
	newHash(alg Algorithm) (stdhash.Hash, error)
}

type lowLevelBackend struct{}

func (lowLevelBackend) newHash(alg Algorithm) (stdhash.Hash, error) {
	switch alg {
	case None:
		return nullHash{}, nil
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA224:
		return sha256.New224(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	case MD5SHA1:
		return &md5sha1{md5: md5.New(), sha1: sha1.New()}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

var registry = map[Algorithm]crypto.Hash{
	MD5:    crypto.MD5,
	SHA1:   crypto.SHA1,
	SHA224: crypto.SHA224,
	SHA256: crypto.SHA256,
	SHA384: crypto.SHA384,
	SHA512: crypto.SHA512,
}

type genericBackend struct{}

func (genericBackend) newHash(alg Algorithm) (stdhash.Hash, error) {
	switch alg {
	case None:
		return nullHash{}, nil
	case MD5SHA1:
		first, err := newRegistered(crypto.MD5)
		if err != nil {
			return nil, err
		}
		second, err := newRegistered(crypto.SHA1)
		if err != nil {
			return nil, err
		}
		return &md5sha1{md5: first, sha1: second}, nil
	}
	h, ok := registry[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	return newRegistered(h)
}

func newRegistered(h crypto.Hash) (stdhash.Hash, error) {
	if !h.Available() {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, h)
	}
	return h.New(), nil
}

type nullHash struct{}

func (nullHash) Write(p []byte) (int, error) { return len(p), nil }
func (nullHash) Sum(b []byte) []byte         { return b }
func (nullHash) Reset()                      {}
func (nullHash) Size() int                   { return 0 }
func (nullHash) BlockSize() int              { return 1 }

type md5sha1 struct {
	md5  stdhash.Hash
	sha1 stdhash.Hash
}

func (h *md5sha1) Write(p []byte) (int, error) {
	h.md5.Write(p)
	return h.sha1.Write(p)
}

func (h *md5sha1) Sum(b []byte) []byte {
	return h.sha1.Sum(h.md5.Sum(b))
}

func (h *md5sha1) Reset() {
	h.md5.Reset()
	h.sha1.Reset()
}

func (h *md5sha1) Size() int      { return h.md5.Size() + h.sha1.Size() }
func (h *md5sha1) BlockSize() int { return h.md5.BlockSize() }

// cloneInto copies the internal state of src into dst, which must have
// been created for the same algorithm.
func cloneInto(dst, src stdhash.Hash) error {
	switch s := src.(type) {
	case nullHash:
		return nil
	case *md5sha1:
		d, ok := dst.(*md5sha1)
		if !ok {
			return fmt.Errorf("hash: can't copy %T into %T", src, dst)
		}
		if err := cloneInto(d.md5, s.md5); err != nil {
			return err
		}
		return cloneInto(d.sha1, s.sha1)
	}
	m, ok := src.(encoding.BinaryMarshaler)
	if !ok {
		return fmt.Errorf("hash: can't copy state of %T", src)
	}
	u, ok := dst.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("hash: can't restore state into %T", dst)
	}
	state, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return u.UnmarshalBinary(state)
}

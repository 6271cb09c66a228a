package hash

import (
	"fmt"
	stdhash "hash"

	"sigsum.org/stuffer-go/pkg/log"
)

//go:generate mockgen -source state.go -destination ../../internal/mocks/mockhash/mockhash.go -package mockhash

// Digester is the part of State needed to hash a transcript.
type Digester interface {
	Update(p []byte) error
	Digest(out []byte) error
}

// State is a running digest. The backend is fixed when the State is
// created; the algorithm is chosen by Init, and can be changed by calling
// Init again.
type State struct {
	backend  backend
	fips     bool
	allowMD5 bool

	alg    Algorithm
	h      stdhash.Hash
	inHash uint64
	ready  bool
}

// New returns a state using the low-level backend.
func New() *State {
	return &State{backend: lowLevelBackend{}}
}

// NewFIPS returns a state using the generic backend, which refuses MD5
// unless AllowMD5ForFIPS is called before Init.
func NewFIPS() *State {
	return &State{backend: genericBackend{}, fips: true}
}

// AllowMD5ForFIPS permits MD5 and MD5SHA1 on a FIPS state, for the TLS
// 1.0 and 1.1 PRF. It has no effect on other states.
func (s *State) AllowMD5ForFIPS() {
	s.allowMD5 = true
}

func (s *State) Init(alg Algorithm) error {
	if !alg.IsAvailable() {
		return fmt.Errorf("%w: %v", ErrUnavailable, alg)
	}
	if s.fips && alg.usesMD5() && !s.allowMD5 {
		return ErrNotAllowed
	}
	h, err := s.backend.newHash(alg)
	if err != nil {
		return err
	}
	log.Debug("hash: initialized %v (fips: %v)", alg, s.fips)
	s.alg = alg
	s.h = h
	s.inHash = 0
	s.ready = true
	return nil
}

func (s *State) Algorithm() Algorithm { return s.alg }

func (s *State) Update(p []byte) error {
	if !s.ready {
		return ErrNotReady
	}
	s.h.Write(p)
	s.inHash += uint64(len(p))
	return nil
}

// Digest writes the digest to out, which must be exactly the digest size
// of the algorithm. The state must be reset before further use.
func (s *State) Digest(out []byte) error {
	if !s.ready {
		return ErrNotReady
	}
	if len(out) != s.alg.DigestSize() {
		return fmt.Errorf("%w: %d bytes for %v, wanted %d", ErrDigestSize, len(out), s.alg, s.alg.DigestSize())
	}
	copy(out, s.h.Sum(nil))
	s.ready = false
	return nil
}

// Copy makes s an independent copy of from, including its backend.
func (s *State) Copy(from *State) error {
	if from.h == nil {
		return ErrNotReady
	}
	h, err := from.backend.newHash(from.alg)
	if err != nil {
		return err
	}
	if err := cloneInto(h, from.h); err != nil {
		return err
	}
	*s = *from
	s.h = h
	return nil
}

// Reset restarts the digest with the same algorithm.
func (s *State) Reset() error {
	if s.h == nil {
		return ErrNotReady
	}
	s.h.Reset()
	s.inHash = 0
	s.ready = true
	return nil
}

// Free drops the running digest. The state keeps its backend, and can be
// initialized again.
func (s *State) Free() {
	*s = State{backend: s.backend, fips: s.fips, allowMD5: s.allowMD5}
}

func (s *State) IsReadyForInput() bool { return s.ready }

// BytesInHash returns the number of bytes hashed since the last Init or
// Reset.
func (s *State) BytesInHash() (uint64, error) {
	if !s.ready {
		return 0, ErrNotReady
	}
	return s.inHash, nil
}

// BytesInBlock returns the number of bytes hashed into the current,
// incomplete block.
func (s *State) BytesInBlock() (uint64, error) {
	if !s.ready {
		return 0, ErrNotReady
	}
	return s.inHash % uint64(s.h.BlockSize()), nil
}

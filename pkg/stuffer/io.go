package stuffer

import "io"

// Read implements io.Reader. Unlike ReadBytes, it returns whatever data
// is available, and io.EOF once the stuffer is consumed.
func (s *Stuffer) Read(p []byte) (int, error) {
	if s.IsFreed() {
		return 0, ErrFreed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if s.IsConsumed() {
		return 0, io.EOF
	}
	n := copy(p, s.unread())
	s.readCursor += uint32(n)
	return n, nil
}

// Write implements io.Writer. Either all of p is written, or nothing.
func (s *Stuffer) Write(p []byte) (int, error) {
	if err := s.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Bytes returns the unread data in place, without consuming it. The
// slice aliases the stuffer's memory, so the stuffer is tainted.
func (s *Stuffer) Bytes() []byte {
	if s.IsFreed() {
		return nil
	}
	s.tainted = true
	return s.unread()
}

// String returns a copy of the unread data.
func (s *Stuffer) String() string {
	if s.IsFreed() {
		return ""
	}
	return string(s.unread())
}

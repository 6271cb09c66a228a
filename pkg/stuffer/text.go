package stuffer

import (
	"bytes"
	"fmt"
	"math"

	"sigsum.org/stuffer-go/pkg/blob"
)

// NewReadOnly returns a stuffer for parsing data in place. All of data is
// available for reading, and there is no space for writing.
func NewReadOnly(data []byte) (*Stuffer, error) {
	var s Stuffer
	if err := s.InitReadOnly(data); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Stuffer) InitReadOnly(data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes of text", ErrOutOfSpace, len(data))
	}
	s.Init(blob.New(data))
	s.writeCursor = uint32(len(data))
	s.highWaterMark = s.writeCursor
	return nil
}

// NewFromString returns a stuffer owning a copy of str, with all of it
// available for reading.
func NewFromString(str string) (*Stuffer, error) {
	var s Stuffer
	if err := s.AllocReadOnly(str); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Stuffer) AllocReadOnly(str string) error {
	if uint64(len(str)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes of text", ErrOutOfSpace, len(str))
	}
	if err := s.Alloc(uint32(len(str))); err != nil {
		return err
	}
	copy(s.blob.Data, str)
	s.writeCursor = uint32(len(str))
	s.highWaterMark = s.writeCursor
	return nil
}

// unread returns the data between the cursors, without consuming it.
func (s *Stuffer) unread() []byte {
	return s.blob.Data[s.readCursor:s.writeCursor:s.writeCursor]
}

func (s *Stuffer) PeekChar() (byte, error) {
	if err := s.checkRead(1); err != nil {
		return 0, err
	}
	return s.blob.Data[s.readCursor], nil
}

// PeekCheckForStr reports, with a nil error, that the unread data starts
// with expected. Nothing is consumed.
func (s *Stuffer) PeekCheckForStr(expected string) error {
	if err := s.checkRead(uint64(len(expected))); err != nil {
		return err
	}
	if got := s.unread()[:len(expected)]; string(got) != expected {
		return fmt.Errorf("%w: got %q, wanted %q", ErrMismatch, got, expected)
	}
	return nil
}

func (s *Stuffer) ReadExpectedStr(expected string) error {
	if err := s.PeekCheckForStr(expected); err != nil {
		return err
	}
	s.readCursor += uint32(len(expected))
	return nil
}

// ReadToken copies data up to the first delim, or to the end of the data,
// into token. The delimiter is consumed but not copied.
func (s *Stuffer) ReadToken(token *Stuffer, delim byte) error {
	if s.IsFreed() {
		return ErrFreed
	}
	data := s.unread()
	n := bytes.IndexByte(data, delim)
	consumed := n + 1
	if n < 0 {
		n = len(data)
		consumed = n
	}
	if err := token.WriteBytes(data[:n]); err != nil {
		return err
	}
	s.readCursor += uint32(consumed)
	return nil
}

// ReadLine reads a token terminated by '\n', dropping a '\r' before it.
func (s *Stuffer) ReadLine(token *Stuffer) error {
	start := token.writeCursor
	if err := s.ReadToken(token, '\n'); err != nil {
		return err
	}
	if end := token.writeCursor; end > start && token.blob.Data[end-1] == '\r' {
		token.writeCursor--
	}
	return nil
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// SkipWhitespace consumes any run of spaces, tabs and line endings, and
// returns its length.
func (s *Stuffer) SkipWhitespace() (uint32, error) {
	if s.IsFreed() {
		return 0, ErrFreed
	}
	var n uint32
	for _, c := range s.unread() {
		if !isWhitespace(c) {
			break
		}
		n++
	}
	s.readCursor += n
	return n, nil
}

// SkipToChar consumes data up to, but not including, the first c.
func (s *Stuffer) SkipToChar(c byte) error {
	if s.IsFreed() {
		return ErrFreed
	}
	i := bytes.IndexByte(s.unread(), c)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, c)
	}
	s.readCursor += uint32(i)
	return nil
}

// SkipExpectedChar consumes at most max consecutive occurrences of c,
// failing if there are fewer than min. Returns the number consumed.
func (s *Stuffer) SkipExpectedChar(c byte, min, max uint32) (uint32, error) {
	if s.IsFreed() {
		return 0, ErrFreed
	}
	var n uint32
	for _, b := range s.unread() {
		if n == max || b != c {
			break
		}
		n++
	}
	if n < min {
		return 0, fmt.Errorf("%w: %d occurrences of %q, wanted at least %d", ErrMismatch, n, c, min)
	}
	s.readCursor += n
	return n, nil
}

// SkipReadUntil consumes data through the end of the first occurrence of
// target.
func (s *Stuffer) SkipReadUntil(target string) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if target == "" {
		return nil
	}
	data := s.unread()
	i := bytes.Index(data, []byte(target))
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	s.readCursor += uint32(i + len(target))
	return nil
}

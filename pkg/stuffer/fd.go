//go:build unix

package stuffer

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"sigsum.org/stuffer-go/pkg/log"
)

// RecvFromFd issues a single read(2) of at most n bytes from fd into the
// stuffer, and returns the number of bytes read. A short read is not an
// error; the caller loops if it needs all n bytes. io.EOF is returned
// when fd is at end of file.
func (s *Stuffer) RecvFromFd(fd int, n uint32) (uint32, error) {
	if err := s.ReserveSpace(n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	got, err := unix.Read(fd, s.blob.Data[s.writeCursor:s.writeCursor+n])
	if err != nil {
		return 0, fmt.Errorf("stuffer: read from fd %d: %w", fd, err)
	}
	if got == 0 {
		return 0, io.EOF
	}
	if got < int(n) {
		log.Debug("short read from fd %d: %d of %d bytes", fd, got, n)
	}
	s.writeCursor += uint32(got)
	if s.writeCursor > s.highWaterMark {
		s.highWaterMark = s.writeCursor
	}
	return uint32(got), nil
}

// SendToFd issues a single write(2) of n bytes from the stuffer to fd,
// and returns the number of bytes written, which may be less than n.
func (s *Stuffer) SendToFd(fd int, n uint32) (uint32, error) {
	if err := s.checkRead(uint64(n)); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	sent, err := unix.Write(fd, s.unread()[:n])
	if err != nil {
		return 0, fmt.Errorf("stuffer: write to fd %d: %w", fd, err)
	}
	if sent < int(n) {
		log.Debug("short write to fd %d: %d of %d bytes", fd, sent, n)
	}
	s.readCursor += uint32(sent)
	return uint32(sent), nil
}

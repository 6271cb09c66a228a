//go:build unix

package stuffer

import (
	"errors"
	"io"
	"testing"

	"golang.org/x/sys/unix"
)

func newPipe(t *testing.T) (int, int) {
	t.Helper()
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestFdRoundTrip(t *testing.T) {
	r, w := newPipe(t)
	out := newText(t, "hello world")
	n, err := out.SendToFd(w, 5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 || out.String() != " world" {
		t.Errorf("sent %d, rest %q", n, out.String())
	}

	in := newGrowable(t, 0)
	// Asking for more than is buffered gives a short read.
	n, err = in.RecvFromFd(r, 100)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 || in.String() != "hello" {
		t.Errorf("received %d, got %q", n, in.String())
	}
	checkValid(t, in)
}

func TestRecvFromFdEOF(t *testing.T) {
	r, w := newPipe(t)
	if err := unix.Close(w); err != nil {
		t.Fatal(err)
	}
	s := newGrowable(t, 0)
	if _, err := s.RecvFromFd(r, 10); err != io.EOF {
		t.Errorf("got %v, wanted %v", err, io.EOF)
	}
	if s.WriteCursor() != 0 {
		t.Errorf("failed read advanced the cursor")
	}
}

func TestRecvFromFdError(t *testing.T) {
	r, _ := newPipe(t)
	if err := unix.SetNonblock(r, true); err != nil {
		t.Fatal(err)
	}
	s := newGrowable(t, 0)
	if _, err := s.RecvFromFd(r, 10); !errors.Is(err, unix.EAGAIN) {
		t.Errorf("got %v, wanted %v", err, unix.EAGAIN)
	}
	if s.WriteCursor() != 0 {
		t.Errorf("failed read advanced the cursor")
	}
}

func TestSendToFdNotEnoughData(t *testing.T) {
	_, w := newPipe(t)
	s := newText(t, "ab")
	if _, err := s.SendToFd(w, 3); !errors.Is(err, ErrOutOfData) {
		t.Errorf("got %v, wanted %v", err, ErrOutOfData)
	}
}

func TestRecvFromFdNoSpace(t *testing.T) {
	r, _ := newPipe(t)
	s, err := Alloc(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecvFromFd(r, 3); !errors.Is(err, ErrOutOfSpace) {
		t.Errorf("got %v, wanted %v", err, ErrOutOfSpace)
	}
}

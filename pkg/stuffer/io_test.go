package stuffer

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	s := newText(t, "hello")
	buf := make([]byte, 3)
	for _, want := range []string{"hel", "lo"} {
		n, err := s.Read(buf)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(buf[:n]); got != want {
			t.Errorf("got %q, wanted %q", got, want)
		}
	}
	if _, err := s.Read(buf); err != io.EOF {
		t.Errorf("got %v, wanted %v", err, io.EOF)
	}
	if n, err := s.Read(nil); n != 0 || err != nil {
		t.Errorf("empty read: got %d, %v", n, err)
	}
}

func TestWrite(t *testing.T) {
	s, err := Alloc(4)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := s.Write([]byte("abc")); n != 3 || err != nil {
		t.Errorf("got %d, %v", n, err)
	}
	if n, err := s.Write([]byte("de")); n != 0 || !errors.Is(err, ErrOutOfSpace) {
		t.Errorf("got %d, %v, wanted 0, %v", n, err, ErrOutOfSpace)
	}
}

func TestStdlibInterop(t *testing.T) {
	s := newGrowable(t, 0)
	if _, err := io.Copy(s, strings.NewReader("line one\nline two\n")); err != nil {
		t.Fatal(err)
	}
	scanner := bufio.NewScanner(s)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1] != "line two" {
		t.Errorf("got lines %q", lines)
	}
}

func TestBytesTaints(t *testing.T) {
	s := newText(t, "abc")
	if got := string(s.Bytes()); got != "abc" {
		t.Errorf("got %q", got)
	}
	if !s.IsTainted() {
		t.Errorf("Bytes didn't taint")
	}
	if s.DataAvailable() != 3 {
		t.Errorf("Bytes consumed data")
	}

	var freed Stuffer
	if freed.Bytes() != nil || freed.String() != "" {
		t.Errorf("freed stuffer returned data")
	}
}

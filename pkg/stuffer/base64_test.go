package stuffer

import (
	"errors"
	"testing"
)

func TestReadBase64(t *testing.T) {
	for _, table := range []struct {
		desc string
		in   string
		want string
		rest string
	}{
		{"empty", "", "", ""},
		{"full quanta", "YWJj", "abc", ""},
		{"one pad", "YWI=", "ab", ""},
		{"two pads", "YQ==", "a", ""},
		{"stop at newline", "YWJj\nZGVm", "abc", "\nZGVm"},
		{"stop after padding", "YQ==YWJj", "a", "YWJj"},
		{"stop at dash", "YWJjZGVm-----END", "abcdef", "-----END"},
		{"stop at padding", "YWJj=", "abc", "="},
	} {
		s := newText(t, table.in)
		out := newGrowable(t, 0)
		if err := s.ReadBase64(out); err != nil {
			t.Errorf("%q: failed: %v", table.desc, err)
			continue
		}
		if got := out.String(); got != table.want {
			t.Errorf("%q: got %q, wanted %q", table.desc, got, table.want)
		}
		if got := s.String(); got != table.rest {
			t.Errorf("%q: got rest %q, wanted %q", table.desc, got, table.rest)
		}
	}
}

func TestReadBase64Invalid(t *testing.T) {
	for _, table := range []struct {
		desc string
		in   string
	}{
		{"partial quantum", "YWJjZA"},
		{"newline inside quantum", "YW\nJj"},
		{"invalid character", "YW*j"},
		{"pad then data", "YW=j"},
		{"three pads", "Y==="},
		{"trailing bits", "YR=="},
	} {
		s := newText(t, table.in)
		out := newGrowable(t, 0)
		if err := s.ReadBase64(out); !errors.Is(err, ErrInvalidBase64) {
			t.Errorf("%q: got %v, wanted %v", table.desc, err, ErrInvalidBase64)
		}
		if s.ReadCursor() != 0 || out.WriteCursor() != 0 {
			t.Errorf("%q: failed decode changed state", table.desc)
		}
	}
}

func TestWriteBase64(t *testing.T) {
	for _, table := range []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "YQ=="},
		{"ab", "YWI="},
		{"abc", "YWJj"},
		{"\xff\xfe\xfd\xfc", "//79/A=="},
	} {
		in := newText(t, table.in)
		s := newGrowable(t, 0)
		if err := s.WriteBase64(in); err != nil {
			t.Errorf("%q: failed: %v", table.in, err)
			continue
		}
		if got := s.String(); got != table.want {
			t.Errorf("%q: got %q, wanted %q", table.in, got, table.want)
		}
		if !in.IsConsumed() {
			t.Errorf("%q: input not consumed", table.in)
		}
	}
}

func TestWriteBase64NoSpace(t *testing.T) {
	in := newText(t, "abcd")
	s, err := Alloc(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteBase64(in); !errors.Is(err, ErrOutOfSpace) {
		t.Errorf("got %v, wanted %v", err, ErrOutOfSpace)
	}
	if in.ReadCursor() != 0 {
		t.Errorf("failed encode consumed input")
	}
}

func TestIsBase64Char(t *testing.T) {
	for _, c := range []byte("AZaz09+/=") {
		if !IsBase64Char(c) {
			t.Errorf("%q not accepted", c)
		}
	}
	for _, c := range []byte("-_ \n*\x00\xff") {
		if IsBase64Char(c) {
			t.Errorf("%q accepted", c)
		}
	}
}

package stuffer

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteHex(t *testing.T) {
	for _, table := range []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0}, "00"},
		{[]byte{0x01, 0xab, 0xff}, "01abff"},
	} {
		in := newGrowable(t, 0)
		if err := in.WriteBytes(table.in); err != nil {
			t.Fatal(err)
		}
		s := newGrowable(t, 0)
		if err := s.WriteHex(in); err != nil {
			t.Errorf("%x: failed: %v", table.in, err)
			continue
		}
		if got := s.String(); got != table.want {
			t.Errorf("%x: got %q, wanted %q", table.in, got, table.want)
		}
	}
}

func TestReadHex(t *testing.T) {
	for _, table := range []struct {
		desc string
		in   string
		n    uint32
		want []byte
		err  error
	}{
		{"lower", "01abff", 3, []byte{0x01, 0xab, 0xff}, nil},
		{"upper", "01ABFF", 3, []byte{0x01, 0xab, 0xff}, nil},
		{"prefix", "abcd", 1, []byte{0xab}, nil},
		{"short", "abc", 2, nil, ErrOutOfData},
		{"invalid", "0g", 1, nil, ErrInvalidHex},
		{"invalid late", "00 1", 2, nil, ErrInvalidHex},
	} {
		s := newText(t, table.in)
		out := newGrowable(t, 0)
		err := s.ReadHex(out, table.n)
		if !errors.Is(err, table.err) {
			t.Errorf("%q: got error %v, wanted %v", table.desc, err, table.err)
			continue
		}
		if err != nil {
			if s.ReadCursor() != 0 || out.WriteCursor() != 0 {
				t.Errorf("%q: failed decode changed state", table.desc)
			}
			continue
		}
		if got := out.Bytes(); !bytes.Equal(got, table.want) {
			t.Errorf("%q: got %x, wanted %x", table.desc, got, table.want)
		}
		if got, want := s.ReadCursor(), 2*table.n; got != want {
			t.Errorf("%q: consumed %d, wanted %d", table.desc, got, want)
		}
	}
}

package stuffer

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteIntegers(t *testing.T) {
	for _, table := range []struct {
		desc  string
		write func(s *Stuffer) error
		want  []byte
	}{
		{"uint8", func(s *Stuffer) error { return s.WriteUint8(0xab) }, []byte{0xab}},
		{"uint16", func(s *Stuffer) error { return s.WriteUint16(0x0102) }, []byte{1, 2}},
		{"uint24", func(s *Stuffer) error { return s.WriteUint24(0x010203) }, []byte{1, 2, 3}},
		{"uint32", func(s *Stuffer) error { return s.WriteUint32(0x01020304) }, []byte{1, 2, 3, 4}},
		{"uint64", func(s *Stuffer) error { return s.WriteUint64(0x0102030405060708) }, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"byte", func(s *Stuffer) error { return s.WriteByte('x') }, []byte("x")},
		{"string", func(s *Stuffer) error { _, err := s.WriteString("GET"); return err }, []byte("GET")},
	} {
		s := newGrowable(t, 0)
		if err := table.write(s); err != nil {
			t.Errorf("%q: write failed: %v", table.desc, err)
			continue
		}
		if got := s.Bytes(); !bytes.Equal(got, table.want) {
			t.Errorf("%q: got %x, wanted %x", table.desc, got, table.want)
		}
	}
}

func TestReadIntegers(t *testing.T) {
	s, err := NewReadOnly([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18})
	if err != nil {
		t.Fatal(err)
	}
	if v, err := s.ReadUint8(); err != nil || v != 1 {
		t.Errorf("uint8: got %d, %v", v, err)
	}
	if v, err := s.ReadUint16(); err != nil || v != 0x0203 {
		t.Errorf("uint16: got %x, %v", v, err)
	}
	if v, err := s.ReadUint24(); err != nil || v != 0x040506 {
		t.Errorf("uint24: got %x, %v", v, err)
	}
	if v, err := s.ReadUint32(); err != nil || v != 0x0708090a {
		t.Errorf("uint32: got %x, %v", v, err)
	}
	if v, err := s.ReadUint64(); err != nil || v != 0x0b0c0d0e0f101112 {
		t.Errorf("uint64: got %x, %v", v, err)
	}
	if _, err := s.ReadByte(); !errors.Is(err, ErrOutOfData) {
		t.Errorf("read past end: got %v, wanted %v", err, ErrOutOfData)
	}
}

func TestWriteUint24TooLarge(t *testing.T) {
	s := newGrowable(t, 0)
	if err := s.WriteUint24(MaxUint24 + 1); !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("got %v, wanted %v", err, ErrValueTooLarge)
	}
	if s.WriteCursor() != 0 {
		t.Errorf("failed write advanced the cursor")
	}
}

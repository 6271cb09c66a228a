package stuffer

import (
	"encoding/binary"
	"fmt"
)

const MaxUint24 = 1<<24 - 1

func (s *Stuffer) ReadUint8() (uint8, error) {
	var b [1]byte
	if err := s.ReadBytes(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Stuffer) ReadUint16() (uint16, error) {
	var b [2]byte
	if err := s.ReadBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func (s *Stuffer) ReadUint24() (uint32, error) {
	var b [4]byte
	if err := s.ReadBytes(b[1:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (s *Stuffer) ReadUint32() (uint32, error) {
	var b [4]byte
	if err := s.ReadBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (s *Stuffer) ReadUint64() (uint64, error) {
	var b [8]byte
	if err := s.ReadBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (s *Stuffer) WriteUint8(v uint8) error {
	return s.WriteBytes([]byte{v})
}

func (s *Stuffer) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteUint24 writes the low three bytes of v, which must be at most
// MaxUint24.
func (s *Stuffer) WriteUint24(v uint32) error {
	if v > MaxUint24 {
		return fmt.Errorf("%w: %d doesn't fit in 24 bits", ErrValueTooLarge, v)
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return s.WriteBytes(b[1:])
}

func (s *Stuffer) WriteUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return s.WriteBytes(b[:])
}

func (s *Stuffer) WriteUint64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return s.WriteBytes(b[:])
}

// ReadByte implements io.ByteReader.
func (s *Stuffer) ReadByte() (byte, error) {
	return s.ReadUint8()
}

// WriteByte implements io.ByteWriter.
func (s *Stuffer) WriteByte(c byte) error {
	return s.WriteUint8(c)
}

// WriteString implements io.StringWriter. Either all of str is written,
// or nothing.
func (s *Stuffer) WriteString(str string) (int, error) {
	dst, err := s.skipWrite(uint64(len(str)))
	if err != nil {
		return 0, err
	}
	return copy(dst, str), nil
}

package stuffer

import "fmt"

// Reservation is a length field written before the data it describes is
// known. The field is filled in by WriteVectorSize, after which the
// reservation is spent.
type Reservation struct {
	stuffer     *Stuffer
	writeCursor uint32
	length      uint8
}

func (s *Stuffer) ReserveUint8() (*Reservation, error)  { return s.reserve(1) }
func (s *Stuffer) ReserveUint16() (*Reservation, error) { return s.reserve(2) }
func (s *Stuffer) ReserveUint24() (*Reservation, error) { return s.reserve(3) }
func (s *Stuffer) ReserveUint32() (*Reservation, error) { return s.reserve(4) }

func (s *Stuffer) reserve(length uint8) (*Reservation, error) {
	var placeholder [4]byte
	start := s.writeCursor
	if err := s.WriteBytes(placeholder[:length]); err != nil {
		return nil, err
	}
	return &Reservation{stuffer: s, writeCursor: start, length: length}, nil
}

// Offset returns the position of the length field in the stuffer.
func (r *Reservation) Offset() uint32 { return r.writeCursor }

func (r *Reservation) Validate() error {
	if r == nil || r.stuffer == nil {
		return fmt.Errorf("%w: reservation is not active", ErrInvalidReservation)
	}
	if r.length < 1 || r.length > 4 {
		return fmt.Errorf("%w: field width %d", ErrInvalidReservation, r.length)
	}
	if err := r.stuffer.Validate(); err != nil {
		return err
	}
	if end := uint64(r.writeCursor) + uint64(r.length); end > uint64(r.stuffer.writeCursor) {
		return fmt.Errorf("%w: field ends at %d, write cursor at %d",
			ErrInvalidReservation, end, r.stuffer.writeCursor)
	}
	return nil
}

// WriteVectorSize stores the number of bytes written after the length
// field into it, big-endian.
func (r *Reservation) WriteVectorSize() error {
	if err := r.Validate(); err != nil {
		return err
	}
	s := r.stuffer
	start := r.writeCursor
	size := s.writeCursor - start - uint32(r.length)
	if uint64(size)>>(8*uint(r.length)) != 0 {
		return fmt.Errorf("%w: vector of %d bytes, %d byte length field",
			ErrValueTooLarge, size, r.length)
	}
	field := s.blob.Data[start : start+uint32(r.length)]
	for i := len(field) - 1; i >= 0; i-- {
		field[i] = byte(size)
		size >>= 8
	}
	r.stuffer = nil
	return nil
}

// WriteVector8 writes a vector with a one byte length prefix, with the
// contents written by body. If body or the length fails, the write
// cursor is moved back to where the vector started.
func (s *Stuffer) WriteVector8(body func(*Stuffer) error) error {
	return s.writeVector(1, body)
}

func (s *Stuffer) WriteVector16(body func(*Stuffer) error) error {
	return s.writeVector(2, body)
}

func (s *Stuffer) WriteVector24(body func(*Stuffer) error) error {
	return s.writeVector(3, body)
}

func (s *Stuffer) writeVector(length uint8, body func(*Stuffer) error) error {
	start := s.writeCursor
	r, err := s.reserve(length)
	if err != nil {
		return err
	}
	if err = body(s); err == nil {
		err = r.WriteVectorSize()
	}
	if err != nil {
		if s.writeCursor > start {
			s.writeCursor = start
			if s.readCursor > start {
				s.readCursor = start
			}
		}
		return err
	}
	return nil
}

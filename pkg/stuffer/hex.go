package stuffer

import "fmt"

const hexDigits = "0123456789abcdef"

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ReadHex decodes 2n hex characters from s into n bytes written to out.
// Both upper and lower case digits are accepted.
func (s *Stuffer) ReadHex(out *Stuffer, n uint32) error {
	if err := s.checkRead(2 * uint64(n)); err != nil {
		return err
	}
	src := s.unread()[:2*uint64(n)]
	buf := make([]byte, n)
	for i := range buf {
		hi, ok := hexValue(src[2*i])
		if !ok {
			return fmt.Errorf("%w: character %q at offset %d", ErrInvalidHex, src[2*i], 2*i)
		}
		lo, ok := hexValue(src[2*i+1])
		if !ok {
			return fmt.Errorf("%w: character %q at offset %d", ErrInvalidHex, src[2*i+1], 2*i+1)
		}
		buf[i] = hi<<4 | lo
	}
	if err := out.WriteBytes(buf); err != nil {
		return err
	}
	s.readCursor += 2 * n
	return nil
}

// WriteHex encodes all unread data of in as lower-case hex, and consumes
// it.
func (s *Stuffer) WriteHex(in *Stuffer) error {
	if in.IsFreed() {
		return ErrFreed
	}
	r, w := in.readCursor, in.writeCursor
	data := in.unread()
	dst, err := s.skipWrite(2 * uint64(len(data)))
	if err != nil {
		return err
	}
	// Growing s moves in's data when they are the same stuffer.
	data = in.blob.Data[r:w]
	for i, b := range data {
		dst[2*i] = hexDigits[b>>4]
		dst[2*i+1] = hexDigits[b&0x0f]
	}
	in.readCursor = in.writeCursor
	return nil
}

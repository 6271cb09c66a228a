package stuffer

import (
	"encoding/base64"
	"fmt"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Index [256]int8

func init() {
	for i := range base64Index {
		base64Index[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64Index[base64Alphabet[i]] = int8(i)
	}
}

// IsBase64Char reports whether c is in the standard base64 alphabet,
// counting the padding character.
func IsBase64Char(c byte) bool {
	return c == '=' || base64Index[c] >= 0
}

func isBase64Digit(c byte) bool {
	return base64Index[c] >= 0
}

// ReadBase64 decodes a run of base64 quanta from s into out. The run ends
// at the end of data, after a padded quantum, or before a quantum that
// doesn't start with an alphabet character. Nothing is consumed unless
// the whole run is valid.
func (s *Stuffer) ReadBase64(out *Stuffer) error {
	if s.IsFreed() {
		return ErrFreed
	}
	data := s.unread()
	i := 0
	for i < len(data) && isBase64Digit(data[i]) {
		if len(data)-i < 4 {
			return fmt.Errorf("%w: incomplete quantum at offset %d", ErrInvalidBase64, i)
		}
		q := data[i : i+4]
		switch {
		case !isBase64Digit(q[1]):
			return fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidBase64, q[1], i+1)
		case q[2] != '=' && !isBase64Digit(q[2]):
			return fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidBase64, q[2], i+2)
		case q[3] != '=' && !isBase64Digit(q[3]):
			return fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidBase64, q[3], i+3)
		case q[2] == '=' && q[3] != '=':
			return fmt.Errorf("%w: misplaced padding at offset %d", ErrInvalidBase64, i+2)
		}
		i += 4
		if q[3] == '=' {
			break
		}
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(i))
	n, err := base64.StdEncoding.Strict().Decode(decoded, data[:i])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if err := out.WriteBytes(decoded[:n]); err != nil {
		return err
	}
	s.readCursor += uint32(i)
	return nil
}

// WriteBase64 encodes all unread data of in, with padding, and consumes
// it.
func (s *Stuffer) WriteBase64(in *Stuffer) error {
	if in.IsFreed() {
		return ErrFreed
	}
	r, w := in.readCursor, in.writeCursor
	data := in.unread()
	dst, err := s.skipWrite(uint64(base64.StdEncoding.EncodedLen(len(data))))
	if err != nil {
		return err
	}
	// Growing s moves in's data when they are the same stuffer.
	data = in.blob.Data[r:w]
	base64.StdEncoding.Encode(dst, data)
	in.readCursor = in.writeCursor
	return nil
}

package hash

import (
	"fmt"

	"sigsum.org/stuffer-go/pkg/stuffer"
)

// Transcript reads n bytes from s and feeds them to d. If d fails, the
// bytes are left unread.
func Transcript(d Digester, s *stuffer.Stuffer, n uint32) error {
	buf := make([]byte, n)
	if err := s.ReadBytes(buf); err != nil {
		return err
	}
	if err := d.Update(buf); err != nil {
		if rerr := s.RewindRead(n); rerr != nil {
			return fmt.Errorf("hash: transcript rewind failed: %v, after update error: %w", rerr, err)
		}
		return fmt.Errorf("hash: transcript update: %w", err)
	}
	return nil
}

package stuffer

import "sigsum.org/stuffer-go/pkg/blob"

// Copy moves n bytes from the read cursor of from to the write cursor of
// to, growing to if needed and possible.
func Copy(from, to *Stuffer, n uint32) error {
	if err := from.checkRead(uint64(n)); err != nil {
		return err
	}
	dst, err := to.skipWrite(uint64(n))
	if err != nil {
		return err
	}
	// Growing to may have moved from's data, if they are the same.
	copy(dst, from.unread()[:n])
	from.readCursor += n
	return nil
}

// ExtractBlob replaces out with a newly allocated copy of the unread
// data. Whatever out held before is freed. The stuffer is unchanged.
func (s *Stuffer) ExtractBlob(out *blob.Blob) error {
	if s.IsFreed() {
		return ErrFreed
	}
	b, err := blob.Alloc(uint64(s.DataAvailable()))
	if err != nil {
		return err
	}
	copy(b.Data, s.unread())
	out.Free()
	*out = b
	return nil
}

// Package stuffer implements a bounded byte buffer with independent read
// and write cursors, used to parse and serialize TLS wire formats.
//
// A Stuffer wraps a blob.Blob. Bytes between the read cursor and the
// write cursor are available for reading; bytes between the write cursor
// and the end of the blob are available for writing. Stuffers created
// with GrowableAlloc reallocate their blob when a write doesn't fit.
//
// Every operation either succeeds or returns an error and leaves the
// stuffer untouched. Cursors never leave the blob.
//
// RawRead and RawWrite hand out slices aliasing the backing memory. A
// stuffer that has done so is tainted, and refuses to resize until it is
// wiped, since a resize would leave the caller's slice pointing at stale
// memory.
//
// A Stuffer is not safe for concurrent use.
package stuffer

import (
	"fmt"
	"math"

	"sigsum.org/stuffer-go/pkg/blob"
)

const (
	// MinGrowth is the smallest amount by which a growable stuffer
	// grows when a write doesn't fit.
	MinGrowth = 1024

	// WipePattern is written over scrubbed data.
	WipePattern = 'w'
)

type Stuffer struct {
	blob blob.Blob

	readCursor    uint32
	writeCursor   uint32
	highWaterMark uint32

	alloced  bool // blob was allocated by the stuffer
	growable bool
	tainted  bool // raw access happened, resize unsafe
}

// New returns a stuffer over b. The stuffer doesn't take ownership of
// b, and has a fixed capacity of b.Size().
func New(b blob.Blob) *Stuffer {
	var s Stuffer
	s.Init(b)
	return &s
}

// Alloc returns a stuffer owning a newly allocated blob of fixed size.
func Alloc(size uint32) (*Stuffer, error) {
	var s Stuffer
	if err := s.Alloc(size); err != nil {
		return nil, err
	}
	return &s, nil
}

// GrowableAlloc returns a stuffer owning a newly allocated blob, which
// is reallocated as needed by writes.
func GrowableAlloc(size uint32) (*Stuffer, error) {
	var s Stuffer
	if err := s.GrowableAlloc(size); err != nil {
		return nil, err
	}
	return &s, nil
}

// Init binds s to b, releasing anything s previously owned.
func (s *Stuffer) Init(b blob.Blob) {
	s.Free()
	if b.Data == nil {
		b.Data = []byte{}
	}
	s.blob = b
}

func (s *Stuffer) Alloc(size uint32) error {
	b, err := blob.Alloc(uint64(size))
	if err != nil {
		return err
	}
	s.Free()
	s.blob = b
	s.alloced = true
	return nil
}

func (s *Stuffer) GrowableAlloc(size uint32) error {
	if err := s.Alloc(size); err != nil {
		return err
	}
	s.growable = true
	return nil
}

// Free releases the blob if the stuffer owns it, and resets all state.
// A freed stuffer must be re-initialized before use.
func (s *Stuffer) Free() {
	if s.alloced {
		s.blob.Free()
	}
	*s = Stuffer{}
}

// Validate checks the stuffer's invariants.
func (s *Stuffer) Validate() error {
	if s.IsFreed() {
		if s.readCursor != 0 || s.writeCursor != 0 || s.highWaterMark != 0 {
			return fmt.Errorf("stuffer: freed stuffer has cursors read=%d write=%d hwm=%d",
				s.readCursor, s.writeCursor, s.highWaterMark)
		}
		return nil
	}
	size := s.blob.Size()
	if s.readCursor > s.writeCursor {
		return fmt.Errorf("stuffer: read cursor %d beyond write cursor %d", s.readCursor, s.writeCursor)
	}
	if s.writeCursor > s.highWaterMark {
		return fmt.Errorf("stuffer: write cursor %d beyond high water mark %d", s.writeCursor, s.highWaterMark)
	}
	if s.highWaterMark > size {
		return fmt.Errorf("stuffer: high water mark %d beyond size %d", s.highWaterMark, size)
	}
	if s.growable && !s.alloced {
		return fmt.Errorf("stuffer: growable stuffer doesn't own its blob")
	}
	return nil
}

func (s *Stuffer) DataAvailable() uint32  { return s.writeCursor - s.readCursor }
func (s *Stuffer) SpaceRemaining() uint32 { return s.blob.Size() - s.writeCursor }
func (s *Stuffer) IsConsumed() bool       { return s.readCursor == s.writeCursor }
func (s *Stuffer) IsWiped() bool          { return s.highWaterMark == 0 }
func (s *Stuffer) IsFreed() bool          { return s.blob.IsFreed() }
func (s *Stuffer) IsAllocated() bool      { return s.alloced }
func (s *Stuffer) IsGrowable() bool       { return s.growable }
func (s *Stuffer) IsTainted() bool        { return s.tainted }
func (s *Stuffer) Capacity() uint32       { return s.blob.Size() }
func (s *Stuffer) ReadCursor() uint32     { return s.readCursor }
func (s *Stuffer) WriteCursor() uint32    { return s.writeCursor }
func (s *Stuffer) HighWaterMark() uint32  { return s.highWaterMark }

// Resize changes the capacity of a growable stuffer. Growing keeps the
// existing content and zero-fills the new space. Shrinking below the
// write cursor is refused, as is any resize of a tainted stuffer.
func (s *Stuffer) Resize(size uint32) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if s.tainted {
		return ErrTainted
	}
	if !s.growable {
		return ErrNotGrowable
	}
	if size == s.blob.Size() {
		return nil
	}
	if size < s.writeCursor {
		return fmt.Errorf("%w: size %d, write cursor %d", ErrShrinkInUse, size, s.writeCursor)
	}
	old := s.blob.Size()
	if err := s.blob.Realloc(uint64(size)); err != nil {
		return err
	}
	if size < old {
		// The discarded tail stays reachable through the slice capacity.
		fill(s.blob.Data[size:old])
		if s.highWaterMark > size {
			s.highWaterMark = size
		}
	}
	return nil
}

// ResizeIfEmpty resizes the stuffer only if nothing has been written to
// it yet.
func (s *Stuffer) ResizeIfEmpty(size uint32) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if s.writeCursor != 0 || s.blob.Size() == size {
		return nil
	}
	return s.Resize(size)
}

func (s *Stuffer) RewindRead(n uint32) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if n > s.readCursor {
		return fmt.Errorf("%w: rewind by %d, read cursor at %d", ErrOutOfData, n, s.readCursor)
	}
	s.readCursor -= n
	return nil
}

// Reread moves the read cursor back to the start of the data.
func (s *Stuffer) Reread() error {
	if s.IsFreed() {
		return ErrFreed
	}
	s.readCursor = 0
	return nil
}

// Rewrite discards all data, so that the next write starts at offset 0.
// The old bytes are left in place; use Wipe to scrub them.
func (s *Stuffer) Rewrite() error {
	if s.IsFreed() {
		return ErrFreed
	}
	s.writeCursor = 0
	s.readCursor = 0
	return nil
}

// Wipe overwrites everything ever written with WipePattern and resets
// the stuffer to empty. It also clears the taint, so callers must not
// use raw slices obtained before the wipe.
func (s *Stuffer) Wipe() error {
	if !s.IsFreed() {
		fill(s.blob.Data[:s.highWaterMark])
	}
	s.tainted = false
	s.readCursor = 0
	s.writeCursor = 0
	s.highWaterMark = 0
	return nil
}

// WipeN scrubs the first n written bytes and moves the remaining data to
// the start of the stuffer. The read cursor moves back by n, stopping at
// zero.
func (s *Stuffer) WipeN(n uint32) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if n >= s.writeCursor {
		return s.Wipe()
	}
	w := s.writeCursor
	fill(s.blob.Data[:n])
	copy(s.blob.Data, s.blob.Data[n:w])
	fill(s.blob.Data[w-n : w])

	s.writeCursor = w - n
	if s.readCursor > n {
		s.readCursor -= n
	} else {
		s.readCursor = 0
	}
	return nil
}

// ReserveSpace ensures that at least n bytes can be written. A growable
// stuffer grows by at least MinGrowth bytes at a time.
func (s *Stuffer) ReserveSpace(n uint32) error {
	if s.IsFreed() {
		return ErrFreed
	}
	remaining := s.SpaceRemaining()
	if n <= remaining {
		return nil
	}
	if !s.growable {
		return fmt.Errorf("%w: need %d, have %d", ErrOutOfSpace, n, remaining)
	}
	need := uint64(s.blob.Size()) + uint64(n-remaining)
	if need > blob.MaxSize {
		return fmt.Errorf("%w: need %d, limit %d", ErrOutOfSpace, need, uint64(blob.MaxSize))
	}
	growth := n - remaining
	if growth < MinGrowth {
		growth = MinGrowth
	}
	size := uint64(s.blob.Size()) + uint64(growth)
	if size > blob.MaxSize {
		size = blob.MaxSize
	}
	return s.Resize(uint32(size))
}

func (s *Stuffer) SkipRead(n uint32) error {
	if err := s.checkRead(uint64(n)); err != nil {
		return err
	}
	s.advanceRead(n)
	return nil
}

func (s *Stuffer) SkipWrite(n uint32) error {
	_, err := s.skipWrite(uint64(n))
	return err
}

// RawRead consumes n bytes and returns them in place. The slice aliases
// the stuffer's memory, and the stuffer is tainted.
func (s *Stuffer) RawRead(n uint32) ([]byte, error) {
	if err := s.checkRead(uint64(n)); err != nil {
		return nil, err
	}
	s.tainted = true
	return s.advanceRead(n), nil
}

// RawWrite reserves n bytes at the write cursor and returns them for the
// caller to fill in. The slice aliases the stuffer's memory, and the
// stuffer is tainted.
func (s *Stuffer) RawWrite(n uint32) ([]byte, error) {
	p, err := s.skipWrite(uint64(n))
	if err != nil {
		return nil, err
	}
	s.tainted = true
	return p, nil
}

// ReadBlob reads all available data into out, which must be of exactly
// that size.
func (s *Stuffer) ReadBlob(out *blob.Blob) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if out.Size() != s.DataAvailable() {
		return fmt.Errorf("%w: blob size %d, data available %d", ErrSizeMismatch, out.Size(), s.DataAvailable())
	}
	return s.ReadBytes(out.Data)
}

// EraseAndReadBlob is like ReadBlob, but also scrubs the bytes read from
// the stuffer.
func (s *Stuffer) EraseAndReadBlob(out *blob.Blob) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if out.Size() != s.DataAvailable() {
		return fmt.Errorf("%w: blob size %d, data available %d", ErrSizeMismatch, out.Size(), s.DataAvailable())
	}
	return s.EraseAndReadBytes(out.Data)
}

func (s *Stuffer) WriteBlob(in *blob.Blob) error {
	return s.WriteBytes(in.Data)
}

// ReadBytes fills p from the stuffer.
func (s *Stuffer) ReadBytes(p []byte) error {
	if err := s.checkRead(uint64(len(p))); err != nil {
		return err
	}
	copy(p, s.advanceRead(uint32(len(p))))
	return nil
}

func (s *Stuffer) EraseAndReadBytes(p []byte) error {
	if err := s.checkRead(uint64(len(p))); err != nil {
		return err
	}
	src := s.advanceRead(uint32(len(p)))
	copy(p, src)
	fill(src)
	return nil
}

func (s *Stuffer) WriteBytes(p []byte) error {
	dst, err := s.skipWrite(uint64(len(p)))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// WritevBytes writes size bytes, taken from the concatenation of iov
// starting at offset.
func (s *Stuffer) WritevBytes(iov [][]byte, offset, size uint32) error {
	var total uint64
	for _, v := range iov {
		total += uint64(len(v))
	}
	if uint64(offset)+uint64(size) > total {
		return fmt.Errorf("%w: need %d bytes at offset %d, vectors hold %d",
			ErrOutOfData, size, offset, total)
	}
	dst, err := s.skipWrite(uint64(size))
	if err != nil {
		return err
	}
	skip := uint64(offset)
	for _, v := range iov {
		if len(dst) == 0 {
			break
		}
		if skip >= uint64(len(v)) {
			skip -= uint64(len(v))
			continue
		}
		n := copy(dst, v[skip:])
		dst = dst[n:]
		skip = 0
	}
	return nil
}

func (s *Stuffer) checkRead(n uint64) error {
	if s.IsFreed() {
		return ErrFreed
	}
	if n > uint64(s.DataAvailable()) {
		return fmt.Errorf("%w: need %d, have %d", ErrOutOfData, n, s.DataAvailable())
	}
	return nil
}

// advanceRead must only be called after checkRead.
func (s *Stuffer) advanceRead(n uint32) []byte {
	start := s.readCursor
	s.readCursor += n
	return s.blob.Data[start:s.readCursor:s.readCursor]
}

// skipWrite makes room for n bytes, advances the write cursor over them,
// and returns them.
func (s *Stuffer) skipWrite(n uint64) ([]byte, error) {
	if n > math.MaxUint32 {
		return nil, fmt.Errorf("%w: write of %d bytes", ErrOutOfSpace, n)
	}
	if err := s.ReserveSpace(uint32(n)); err != nil {
		return nil, err
	}
	start := s.writeCursor
	s.writeCursor += uint32(n)
	if s.writeCursor > s.highWaterMark {
		s.highWaterMark = s.writeCursor
	}
	return s.blob.Data[start:s.writeCursor:s.writeCursor], nil
}

func fill(p []byte) {
	for i := range p {
		p[i] = WipePattern
	}
}

// package blob provides the raw memory regions that stuffers are built
// on: a byte slice with a fixed capacity, either borrowed from the caller
// or owned (allocated by this package).
package blob

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrAllocation is returned when a requested size cannot be allocated.
	ErrAllocation = errors.New("blob: allocation failed")
	// ErrNotOwned is returned when reallocating memory the blob doesn't own.
	ErrNotOwned = errors.New("blob: memory not owned by blob")
)

// MaxSize is the largest blob that can be allocated. Sizes and offsets
// are 32 bits throughout, like the TLS length fields they describe.
const MaxSize = math.MaxUint32

// Blob is a contiguous byte region. The zero value is an empty, freed
// blob.
type Blob struct {
	Data      []byte
	allocated bool
}

// New returns a blob borrowing data. The caller keeps ownership, and
// must keep data alive for as long as the blob is in use. A nil slice is
// treated as an empty region.
func New(data []byte) Blob {
	if data == nil {
		data = []byte{}
	}
	return Blob{Data: data}
}

// Alloc allocates an owned, zero-filled blob of the given size.
func Alloc(size uint64) (Blob, error) {
	if size > MaxSize {
		return Blob{}, fmt.Errorf("%w: size %d exceeds %d", ErrAllocation, size, uint64(MaxSize))
	}
	return Blob{Data: make([]byte, size), allocated: true}, nil
}

// Size returns the capacity of the blob in bytes.
func (b *Blob) Size() uint32 {
	return uint32(len(b.Data))
}

func (b *Blob) IsAllocated() bool {
	return b.allocated
}

// IsFreed reports whether the blob has no backing memory at all.
func (b *Blob) IsFreed() bool {
	return b.Data == nil
}

// Realloc changes the size of an owned blob. Existing bytes are kept, and
// any new region is zero-filled. When the blob shrinks, the discarded tail
// is zeroed before being dropped. Borrowed blobs can only be reallocated
// while empty, in which case the blob takes ownership of the new memory.
func (b *Blob) Realloc(size uint64) error {
	if size > MaxSize {
		return fmt.Errorf("%w: size %d exceeds %d", ErrAllocation, size, uint64(MaxSize))
	}
	if !b.allocated && len(b.Data) > 0 {
		return ErrNotOwned
	}
	if size <= uint64(cap(b.Data)) && b.allocated {
		old := len(b.Data)
		b.Data = b.Data[:size]
		if int(size) > old {
			zero(b.Data[old:])
		} else {
			zero(b.Data[size:old])
		}
		return nil
	}
	data := make([]byte, size)
	copy(data, b.Data)
	zero(b.Data)
	b.Data = data
	b.allocated = true
	return nil
}

// Zero overwrites the whole blob with zeroes.
func (b *Blob) Zero() {
	zero(b.Data)
}

// Slice returns a borrowed blob referring to size bytes at offset.
func (b *Blob) Slice(offset, size uint32) (Blob, error) {
	end := uint64(offset) + uint64(size)
	if end > uint64(len(b.Data)) {
		return Blob{}, fmt.Errorf("blob: slice [%d:%d] out of range %d", offset, end, len(b.Data))
	}
	return Blob{Data: b.Data[offset:end:end]}, nil
}

// Free zeroes and releases owned memory. For borrowed blobs, only the
// reference is dropped; the caller's memory is left as is.
func (b *Blob) Free() {
	if b.allocated {
		zero(b.Data)
	}
	*b = Blob{}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

package mrb

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Buffer is a magic ring buffer. Its capacity bytes of storage appear twice,
// contiguously, in the data slice, and two cursors chase each other through
// [0, size). One slot is sacrificed so that reader == writer always means
// empty and never full: the buffer holds at most Size()-1 live bytes.
//
// A Buffer is exclusively owned: the mapped region is never shared between
// instances, and no operation takes locks. See the package documentation for
// the concurrency contract.
type Buffer struct {
	m      *mapping
	data   []byte // the doubled region, len == 2*size
	size   int    // capacity in bytes, a multiple of the page size
	reader int    // next byte to read, in [0, size)
	writer int    // next byte to write, in [0, size)
	stats  Stats
}

// New creates a buffer with the default options (see DefaultOptions).
// The capacity must be a positive multiple of the platform page size.
func New(capacity int) (*Buffer, error) {
	return NewWithOptions(capacity, DefaultOptions())
}

// NewWithOptions creates a buffer with custom options.
func NewWithOptions(capacity int, opts Options) (*Buffer, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = unix.Getpagesize()
	}
	if capacity <= 0 || capacity%pageSize != 0 {
		return nil, fmt.Errorf("%w: got %d, page size %d", ErrInvalidSize, capacity, pageSize)
	}

	m, err := mapDoubled(capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		m:    m,
		data: m.data,
		size: capacity,
	}, nil
}

// Close releases both halves of the doubled mapping and the address-space
// reservation, in that order. Release is strictly sequential: if an
// intermediate munmap fails, Close reports ErrUnmapFailed without attempting
// the remaining steps, which can leak mappings. Closing twice returns
// ErrClosed.
func (b *Buffer) Close() error {
	if b.m == nil {
		return ErrClosed
	}
	if err := b.m.unmap(); err != nil {
		return err
	}
	b.m = nil
	b.data = nil
	return nil
}

// Size returns the fixed capacity in bytes.
func (b *Buffer) Size() int { return b.size }

// Used returns the number of unread bytes currently buffered.
func (b *Buffer) Used() int {
	// 00111000        11000111
	//   r  w            w  r
	if b.writer >= b.reader {
		return b.writer - b.reader
	}
	return b.size - (b.reader - b.writer)
}

// Available returns the number of bytes that can be written before the
// buffer is full. It is always Size() - 1 - Used().
func (b *Buffer) Available() int {
	return b.size - b.Used() - 1
}

// IsEmpty reports whether no unread data is buffered.
func (b *Buffer) IsEmpty() bool { return b.reader == b.writer }

// IsFull reports whether the buffer holds its maximum of Size()-1 bytes.
func (b *Buffer) IsFull() bool { return b.Used() == b.size-1 }

// Reset discards all buffered data and returns both cursors to zero, the
// state of a freshly constructed buffer. The mapped contents are left as-is.
func (b *Buffer) Reset() {
	b.reader, b.writer = 0, 0
}

// Bytes returns up to n unread bytes as one contiguous slice without
// consuming them; n <= 0 or n > Used() means all unread data. The slice
// aliases the mapped region directly (this is the doubled mapping's whole
// point) and is invalidated by the next mutating call or by Close.
func (b *Buffer) Bytes(n int) []byte {
	u := b.Used()
	if n <= 0 || n > u {
		n = u
	}
	return b.data[b.reader : b.reader+n]
}

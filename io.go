package mrb

import "fmt"

// Put copies min(len(p), Available()) bytes into the buffer at the writer
// offset and returns the number of bytes copied. It never fails: when space
// runs short the copy is silently truncated. The destination is a single
// contiguous slice of the doubled region even when the write wraps the
// physical end.
func (b *Buffer) Put(p []byte) int {
	n := len(p)
	if avail := b.Available(); n > avail {
		n = avail
	}
	copy(b.data[b.writer:b.writer+n], p[:n])
	b.writer = (b.writer + n) % b.size
	b.stats.Puts++
	b.stats.BytesIn += uint64(n)
	return n
}

// PutAll copies p only if all of it fits; otherwise it mutates nothing and
// reports ErrInsufficientSpace. Use it when a partial write is unacceptable,
// e.g. framed messages.
func (b *Buffer) PutAll(p []byte) error {
	if avail := b.Available(); len(p) > avail {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientSpace, len(p), avail)
	}
	b.Put(p)
	return nil
}

// Get copies min(len(p), Used()) bytes from the reader offset into p,
// consumes them, and returns the number of bytes copied. It never fails:
// when data runs short the copy is silently truncated.
func (b *Buffer) Get(p []byte) int {
	n := len(p)
	if used := b.Used(); n > used {
		n = used
	}
	copy(p[:n], b.data[b.reader:b.reader+n])
	b.reader = (b.reader + n) % b.size
	b.stats.Gets++
	b.stats.BytesOut += uint64(n)
	return n
}

// Peek copies up to len(p) bytes starting offset bytes past the reader,
// without consuming anything, and returns the number of bytes copied. The
// amount is clamped to Used()-offset; an offset at or past the end of the
// unread data copies nothing. Two identical Peek calls return identical
// bytes.
func (b *Buffer) Peek(p []byte, offset int) int {
	u := b.Used()
	if offset < 0 || offset >= u {
		return 0
	}
	n := len(p)
	if rest := u - offset; n > rest {
		n = rest
	}
	pos := b.reader + offset
	copy(p[:n], b.data[pos:pos+n])
	return n
}

// GetMin behaves like Get capped at len(p), but consumes nothing until at
// least minSize bytes are buffered, reporting ErrInsufficientData instead.
// This supports "wait until enough is buffered" parsing without nibbling at
// short reads.
func (b *Buffer) GetMin(p []byte, minSize int) (int, error) {
	if u := b.Used(); u < minSize {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrInsufficientData, minSize, u)
	}
	return b.Get(p), nil
}

// Skip consumes n bytes without copying them anywhere. All or nothing: if
// fewer than n bytes are buffered it reports ErrInsufficientData and leaves
// the cursor where it was.
func (b *Buffer) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative skip %d", ErrInvalidArgument, n)
	}
	if u := b.Used(); u < n {
		return fmt.Errorf("%w: skip %d with %d buffered", ErrInsufficientData, n, u)
	}
	b.reader = (b.reader + n) % b.size
	return nil
}

// Rollback moves the reader back n bytes, re-exposing previously consumed
// bytes as unread. The reader can only back into the free region between
// writer and reader, so n is bounded by Available(); anything larger would
// push Used() past Size()-1 and destroy the full/empty disambiguation.
// On violation it reports ErrInsufficientSpace and mutates nothing.
func (b *Buffer) Rollback(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative rollback %d", ErrInvalidArgument, n)
	}
	if avail := b.Available(); n > avail {
		return fmt.Errorf("%w: rollback %d with %d reclaimable", ErrInsufficientSpace, n, avail)
	}
	b.reader = (b.reader - n + b.size) % b.size
	return nil
}

// Printf formats into the buffer at the writer offset, bounded by
// Available(), and returns the number of bytes written. The cursor advances
// exactly by the returned count, so a caller that cares about truncation
// must compare the result against the length it intended to write.
func (b *Buffer) Printf(format string, args ...any) int {
	return b.Put(fmt.Appendf(nil, format, args...))
}

// Read implements io.Reader over the consuming Get. An empty buffer reads
// zero bytes with a nil error; the buffer has no closed state, so it never
// reports io.EOF.
func (b *Buffer) Read(p []byte) (int, error) {
	return b.Get(p), nil
}

// Write implements io.Writer over the bounded Put. A short write stores the
// prefix that fit and reports ErrInsufficientSpace, per the io.Writer
// contract.
func (b *Buffer) Write(p []byte) (int, error) {
	n := b.Put(p)
	if n < len(p) {
		return n, ErrInsufficientSpace
	}
	return n, nil
}

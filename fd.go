package mrb

import "golang.org/x/sys/unix"

// ReadFrom issues one read(2) on fd into the buffer at the writer offset,
// for up to min(n, Available()) bytes, and advances the writer by the amount
// actually transferred. The raw result passes through unmodified: 0 with a
// nil error is end-of-input, and descriptor errors such as unix.EAGAIN are
// returned as-is so nonblocking callers can tell would-block from hard
// failure. A full buffer transfers nothing and returns (0, nil).
//
// Exactly one transfer attempt is made per call; draining a descriptor to
// EOF means calling repeatedly. Whether the call blocks is decided entirely
// by how the caller configured fd.
func (b *Buffer) ReadFrom(fd int, n int) (int, error) {
	if avail := b.Available(); n > avail {
		n = avail
	}
	if n <= 0 {
		return 0, nil
	}
	nr, err := unix.Read(fd, b.data[b.writer:b.writer+n])
	if err != nil || nr <= 0 {
		return nr, err
	}
	b.writer = (b.writer + nr) % b.size
	b.stats.Puts++
	b.stats.BytesIn += uint64(nr)
	return nr, nil
}

// WriteTo issues one write(2) on fd from the reader offset, for up to
// min(n, Used()) bytes, and consumes the amount actually transferred. Error
// semantics mirror ReadFrom; an empty buffer transfers nothing and returns
// (0, nil).
func (b *Buffer) WriteTo(fd int, n int) (int, error) {
	if used := b.Used(); n > used {
		n = used
	}
	if n <= 0 {
		return 0, nil
	}
	nw, err := unix.Write(fd, b.data[b.reader:b.reader+n])
	if err != nil || nw <= 0 {
		return nw, err
	}
	b.reader = (b.reader + nw) % b.size
	b.stats.Gets++
	b.stats.BytesOut += uint64(nw)
	return nw, nil
}

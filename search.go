package mrb

import (
	"bytes"
	"fmt"
)

// Search locates the first occurrence of pattern within the unread data,
// beginning start bytes past the reader. limit bounds the searched window
// measured from start; 0, or anything reaching past the end of the unread
// data, means "search to the end". The returned offset is relative to the
// reader; -1 with a nil error means no match.
//
// The window is taken as one contiguous slice of the doubled region, so a
// match straddling the physical wraparound needs no special casing.
func (b *Buffer) Search(pattern []byte, start, limit int) (int, error) {
	if len(pattern) == 0 {
		return -1, fmt.Errorf("%w: empty pattern", ErrInvalidArgument)
	}
	u := b.Used()
	if start < 0 || start >= u {
		return -1, fmt.Errorf("%w: start %d outside [0, %d)", ErrInvalidArgument, start, u)
	}
	window := u - start
	if limit > 0 && limit < window {
		window = limit
	}
	pos := b.reader + start
	i := bytes.Index(b.data[pos:pos+window], pattern)
	if i < 0 {
		return -1, nil
	}
	return start + i, nil
}

package mrb

import "errors"

// Error values reported by the buffer. All-or-nothing operations fail with
// one of these and mutate nothing; the bounded Put/Get family instead
// truncates and reports how much it applied, which is its contract, not an
// error. Descriptor errors from ReadFrom and WriteTo are passed through
// unwrapped so callers can still distinguish would-block from hard failure.
var (
	// ErrInvalidSize rejects a capacity that is zero, negative, or not a
	// multiple of the page size.
	ErrInvalidSize = errors.New("mrb: capacity must be a positive multiple of the page size")

	// ErrMappingFailed reports that a reservation or binding step failed
	// during construction, after every step that had succeeded was undone.
	ErrMappingFailed = errors.New("mrb: mapping failed")

	// ErrUnmapFailed reports a failed release step during Close.
	ErrUnmapFailed = errors.New("mrb: unmap failed")

	// ErrInsufficientSpace rejects an all-or-nothing write (or rollback)
	// larger than the free region.
	ErrInsufficientSpace = errors.New("mrb: insufficient space")

	// ErrInsufficientData rejects an all-or-nothing read or skip larger
	// than the unread region.
	ErrInsufficientData = errors.New("mrb: insufficient data")

	// ErrInvalidArgument rejects malformed search or cursor parameters.
	ErrInvalidArgument = errors.New("mrb: invalid argument")

	// ErrClosed reports use of a buffer whose mappings were already
	// released.
	ErrClosed = errors.New("mrb: buffer closed")
)

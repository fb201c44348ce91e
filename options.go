package mrb

import "golang.org/x/sys/unix"

// Options provides construction-time configuration for a Buffer.
//
//   - PageSize: the alignment unit the capacity must be a multiple of.
//     0 means query the platform once via unix.Getpagesize().
//
// The page size is captured when the buffer is built and never consulted
// again; there is no global state.
type Options struct {
	PageSize int
}

// DefaultOptions returns the configuration used by New.
func DefaultOptions() Options {
	return Options{
		PageSize: unix.Getpagesize(),
	}
}

//go:build !linux

package mrb

// newBackingFD obtains size bytes of anonymous storage suitable for shared
// mapping: an unlinked temp file on platforms without memfd_create.
func newBackingFD(size int) (int, error) {
	return tempBackingFD(size)
}

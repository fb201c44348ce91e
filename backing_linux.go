package mrb

import "golang.org/x/sys/unix"

// newBackingFD obtains size bytes of anonymous storage suitable for shared
// mapping. Linux gets a memfd; kernels without memfd_create fall back to an
// unlinked temp file.
func newBackingFD(size int) (int, error) {
	fd, err := unix.MemfdCreate("mrb", unix.MFD_CLOEXEC)
	if err != nil {
		return tempBackingFD(size)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

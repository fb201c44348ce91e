package mrb

import (
	"os"

	"golang.org/x/sys/unix"
)

// tempBackingFD creates an unlinked temporary file truncated to size bytes
// and returns a descriptor detached from the *os.File wrapper, so the
// storage lives exactly as long as the descriptor and any mapping of it.
func tempBackingFD(size int) (int, error) {
	f, err := os.CreateTemp("", "mrb-*")
	if err != nil {
		return -1, err
	}
	defer f.Close()
	os.Remove(f.Name())
	if err := f.Truncate(int64(size)); err != nil {
		return -1, err
	}
	return unix.Dup(int(f.Fd()))
}

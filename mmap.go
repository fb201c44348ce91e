package mrb

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapping is the doubled region backing a Buffer: one anonymous storage
// object of size bytes, bound twice back to back inside a 2*size
// reservation, so data[i] and data[i+size] alias the same physical byte.
type mapping struct {
	base unsafe.Pointer
	data []byte // length 2*size
	size int
}

// mapDoubled reserves 2*size bytes of inaccessible address space, then binds
// a fresh anonymous storage object of size bytes at offset 0 and again at
// offset size, both shared read-write. Each step that succeeds pushes its
// release onto an unwind list; when a later step fails the list runs in
// reverse, so no partial mapping ever outlives the error.
func mapDoubled(size int) (*mapping, error) {
	var unwind []func()
	fail := func(step string, err error) error {
		for i := len(unwind) - 1; i >= 0; i-- {
			unwind[i]()
		}
		return fmt.Errorf("%w: %s: %v", ErrMappingFailed, step, err)
	}

	fd, err := newBackingFD(size)
	if err != nil {
		return nil, fail("backing storage", err)
	}
	unwind = append(unwind, func() { unix.Close(fd) })

	base, err := unix.MmapPtr(-1, 0, nil, uintptr(2*size),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fail("reserve address space", err)
	}
	unwind = append(unwind, func() { unix.MunmapPtr(base, uintptr(2*size)) })

	// MAP_FIXED binds at the exact address inside the reservation or fails
	// outright; it never silently relocates.
	if _, err := unix.MmapPtr(fd, 0, base, uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		return nil, fail("bind first half", err)
	}
	unwind = append(unwind, func() { unix.MunmapPtr(base, uintptr(size)) })

	if _, err := unix.MmapPtr(fd, 0, unsafe.Add(base, size), uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		return nil, fail("bind second half", err)
	}

	// The mappings keep the storage alive; the descriptor is no longer
	// needed.
	unix.Close(fd)

	return &mapping{
		base: base,
		data: unsafe.Slice((*byte)(base), 2*size),
		size: size,
	}, nil
}

// unmap releases the second half, the first half, then the reservation,
// mirroring construction in reverse. Teardown is strictly sequential and
// fails fast: a failed step leaves the remaining mappings in place, a known
// limitation documented on Buffer.Close.
func (m *mapping) unmap() error {
	if err := unix.MunmapPtr(unsafe.Add(m.base, m.size), uintptr(m.size)); err != nil {
		return fmt.Errorf("%w: second half: %v", ErrUnmapFailed, err)
	}
	if err := unix.MunmapPtr(m.base, uintptr(m.size)); err != nil {
		return fmt.Errorf("%w: first half: %v", ErrUnmapFailed, err)
	}
	if err := unix.MunmapPtr(m.base, uintptr(2*m.size)); err != nil {
		return fmt.Errorf("%w: reservation: %v", ErrUnmapFailed, err)
	}
	return nil
}

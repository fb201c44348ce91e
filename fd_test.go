package mrb

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

// newTestPipe returns the read and write descriptors of a pipe, closed via
// t.Cleanup. Close the write end early with unix.Close to signal EOF.
func newTestPipe(t *testing.T) (int, int) {
	t.Helper()
	p := make([]int, 2)
	if err := unix.Pipe(p); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(p[0])
		unix.Close(p[1])
	})
	return p[0], p[1]
}

func TestReadFromFillsBuffer(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, w := newTestPipe(t)

	payload := []byte("descriptor payload")
	if _, err := unix.Write(w, payload); err != nil {
		t.Fatalf("prime pipe: %v", err)
	}

	n, err := b.ReadFrom(r, 1024)
	if err != nil {
		t.Fatalf("read from: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("transferred %d, want %d", n, len(payload))
	}
	got := make([]byte, n)
	b.Get(got)
	if !bytes.Equal(got, payload) {
		t.Fatalf("buffered %q, want %q", got, payload)
	}
}

func TestReadFromEOF(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, w := newTestPipe(t)
	unix.Close(w)

	n, err := b.ReadFrom(r, 64)
	if err != nil || n != 0 {
		t.Fatalf("ReadFrom at EOF = (%d, %v), want (0, nil)", n, err)
	}
}

func TestReadFromWouldBlock(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, _ := newTestPipe(t)
	if err := unix.SetNonblock(r, true); err != nil {
		t.Fatalf("set nonblock: %v", err)
	}

	n, err := b.ReadFrom(r, 64)
	if !errors.Is(err, unix.EAGAIN) {
		t.Fatalf("want EAGAIN passthrough, got (%d, %v)", n, err)
	}
	if !b.IsEmpty() {
		t.Fatal("would-block read mutated the buffer")
	}
}

func TestReadFromFullBuffer(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, w := newTestPipe(t)
	b.Put(make([]byte, b.Size()-1))

	if _, err := unix.Write(w, []byte("waiting")); err != nil {
		t.Fatalf("prime pipe: %v", err)
	}
	n, err := b.ReadFrom(r, 64)
	if err != nil || n != 0 {
		t.Fatalf("ReadFrom into full buffer = (%d, %v), want (0, nil)", n, err)
	}
}

func TestReadFromCapsAtRequestedSize(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, w := newTestPipe(t)

	if _, err := unix.Write(w, []byte("0123456789")); err != nil {
		t.Fatalf("prime pipe: %v", err)
	}
	n, err := b.ReadFrom(r, 4)
	if err != nil || n != 4 {
		t.Fatalf("capped ReadFrom = (%d, %v), want (4, nil)", n, err)
	}
	if b.Used() != 4 {
		t.Fatalf("Used() = %d, want 4", b.Used())
	}
}

func TestWriteToDrainsBuffer(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, w := newTestPipe(t)

	payload := []byte("drain me")
	b.Put(payload)
	n, err := b.WriteTo(w, 1024)
	if err != nil {
		t.Fatalf("write to: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("transferred %d, want %d", n, len(payload))
	}
	if !b.IsEmpty() {
		t.Fatalf("Used() = %d after drain, want 0", b.Used())
	}

	got := make([]byte, len(payload))
	if _, err := unix.Read(r, got); err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("pipe got %q, want %q", got, payload)
	}
}

func TestWriteToEmptyBuffer(t *testing.T) {
	b := newTestBuffer(t, 1)
	_, w := newTestPipe(t)

	n, err := b.WriteTo(w, 64)
	if err != nil || n != 0 {
		t.Fatalf("WriteTo from empty buffer = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDescriptorRoundTripAcrossWraparound(t *testing.T) {
	b := newTestBuffer(t, 1)
	r, w := newTestPipe(t)

	// Park the cursors near the physical end so the transfer straddles it.
	junk := make([]byte, b.Size()-4)
	b.Put(junk)
	b.Get(junk)

	payload := []byte("wraps through the kernel")
	if _, err := unix.Write(w, payload); err != nil {
		t.Fatalf("prime pipe: %v", err)
	}
	if n, err := b.ReadFrom(r, len(payload)); err != nil || n != len(payload) {
		t.Fatalf("ReadFrom = (%d, %v), want (%d, nil)", n, err, len(payload))
	}

	if n, err := b.WriteTo(w, len(payload)); err != nil || n != len(payload) {
		t.Fatalf("WriteTo = (%d, %v), want (%d, nil)", n, err, len(payload))
	}
	got := make([]byte, len(payload))
	if _, err := unix.Read(r, got); err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip %q, want %q", got, payload)
	}
}

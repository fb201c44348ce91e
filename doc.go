// Package mrb implements a "magic" ring buffer: a circular byte buffer whose
// backing storage is mapped twice, back to back, into virtual address space.
// Because the second mapping mirrors the same physical bytes immediately
// after the first, any read or write of up to the buffer's capacity is a
// single contiguous memory operation even when it wraps past the physical
// end, so the classic split-copy wraparound case disappears entirely.
//
// The library is organised into several files for clarity:
//
//	options.go       – configuration struct & defaults
//	errors.go        – error values
//	backing.go       – anonymous backing-storage descriptors
//	backing_linux.go – memfd fast path
//	mmap.go          – doubled-mapping construction & teardown
//	ring.go          – constructors, Close & occupancy queries
//	io.go            – copy-in/copy-out operation family
//	fd.go            – single-shot descriptor fill/drain
//	search.go        – pattern search over unread data
//	stats.go         – lightweight transfer counters
//
// A Buffer is not safe for concurrent use: it holds no locks, and touching
// one from multiple goroutines without external synchronization is undefined
// behavior. Coordinating a producer and a consumer is the caller's job.
package mrb

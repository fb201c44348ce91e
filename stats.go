package mrb

// Stats counts bytes and calls moved through the buffer. Counters are plain
// fields read and written without atomics, matching the buffer's
// single-threaded model. Skip and Rollback move cursors without moving
// bytes and are not counted.
type Stats struct {
	Puts     uint64 // copy-in calls: Put family, Printf, ReadFrom
	Gets     uint64 // copy-out calls: Get family, WriteTo
	BytesIn  uint64 // bytes accepted into the buffer
	BytesOut uint64 // bytes handed out of the buffer
}

// Stats returns a snapshot of the transfer counters.
func (b *Buffer) Stats() Stats { return b.stats }

// ResetStats zeroes the transfer counters.
func (b *Buffer) ResetStats() { b.stats = Stats{} }

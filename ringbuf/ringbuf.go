package ringbuf

import (
	"sync/atomic"

	"ringbuf-go/platform"
)

// Buffer is the circular-buffer control structure. Construct it with New
// (or Init over a statically allocated value); the zero Buffer is unbound
// and every operation on it reports the "nothing happened" result.
//
// The two indices live in atomic cells so an index published by one side
// (the producer's head, the consumer's tail) is visible to the other side
// with the transfer it covers already in place.
type Buffer struct {
	storage []byte // caller-owned backing region, never freed here
	size    uint32 // total slots; usable capacity is size-1
	head    atomic.Uint32
	tail    atomic.Uint32
	lock    platform.Mutex // non-nil only under MutexLock
	ops     Strategy

	// Advisory counters, maintained inside whatever guard the bound
	// strategy applies. Under Lockfree a Stats snapshot taken while both
	// sides run is approximate.
	writes   uint32
	reads    uint32
	overruns uint32
}

func (b *Buffer) bound() bool {
	return b != nil && b.ops != nil && b.storage != nil
}

// Put appends one byte. It reports false, without mutating anything, when
// the buffer is full or unbound.
func (b *Buffer) Put(v byte) bool {
	if paramCheck && !b.bound() {
		return false
	}
	return b.ops.Put(b, v)
}

// Get removes and returns the oldest byte. ok is false on an empty or
// unbound buffer.
func (b *Buffer) Get() (v byte, ok bool) {
	if paramCheck && !b.bound() {
		return 0, false
	}
	return b.ops.Get(b)
}

// Write copies as much of p as fits and returns the number of bytes
// taken, which may be less than len(p) down to zero. It never blocks and
// never waits for space; retry policy belongs to the caller.
func (b *Buffer) Write(p []byte) int {
	if paramCheck && (!b.bound() || p == nil) {
		return 0
	}
	return b.ops.Write(b, p)
}

// Read copies up to len(dst) buffered bytes into dst and returns the
// number copied. It never blocks.
func (b *Buffer) Read(dst []byte) int {
	if paramCheck && (!b.bound() || dst == nil) {
		return 0
	}
	return b.ops.Read(b, dst)
}

// Len reports the occupancy: bytes written and not yet read.
func (b *Buffer) Len() int {
	if paramCheck && !b.bound() {
		return 0
	}
	return b.ops.Len(b)
}

// Free reports how many bytes can still be written before the buffer is
// full.
func (b *Buffer) Free() int {
	if paramCheck && !b.bound() {
		return 0
	}
	return b.ops.Free(b)
}

// IsEmpty reports whether nothing is buffered. An unbound buffer reads as
// empty: the fail-safe for callers that probe before construction.
func (b *Buffer) IsEmpty() bool {
	if paramCheck && !b.bound() {
		return true
	}
	return b.ops.IsEmpty(b)
}

// IsFull reports whether no more bytes can be written. An unbound buffer
// reads as not-full.
func (b *Buffer) IsFull() bool {
	if paramCheck && !b.bound() {
		return false
	}
	return b.ops.IsFull(b)
}

// Clear drops all buffered data by aligning the read index with the write
// index and zeroes the counters. The bytes themselves stay in storage;
// see the package comment.
func (b *Buffer) Clear() {
	if paramCheck && !b.bound() {
		return
	}
	b.ops.Clear(b)
}

// Cap returns the usable capacity, len(storage)-1, or 0 when unbound.
func (b *Buffer) Cap() int {
	if b == nil || b.size == 0 {
		return 0
	}
	return int(b.size) - 1
}

// Ops exposes the bound strategy for direct dispatch in hot paths (e.g.
// an RX interrupt handler that wants to skip the per-call validation).
// The caller takes over the unbound-buffer checks.
func (b *Buffer) Ops() Strategy {
	if b == nil {
		return nil
	}
	return b.ops
}

// Stats is a snapshot of the advisory transfer counters.
type Stats struct {
	Writes   uint32 // bytes accepted into the buffer
	Reads    uint32 // bytes drained from the buffer
	Overruns uint32 // writes that found no room or were truncated
}

// Stats returns the current counters. Clear zeroes them.
func (b *Buffer) Stats() Stats {
	if b == nil {
		return Stats{}
	}
	return Stats{Writes: b.writes, Reads: b.reads, Overruns: b.overruns}
}

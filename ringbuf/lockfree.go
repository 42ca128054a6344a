package ringbuf

import "ringbuf-go/x/mathx"

// lockfree is the algorithmic core: wraparound index arithmetic with no
// guard at all. The two guarded strategies delegate here, so the transfer
// logic exists exactly once.
//
// Safe unguarded only for one producer and one consumer. The producer
// mutates head alone, the consumer tail alone; each index is stored after
// the bytes it covers, so the peer never observes a half-finished
// transfer.
type lockfree struct{}

// occupied computes occupancy from an index snapshot.
func occupied(head, tail, size uint32) uint32 {
	if head >= tail {
		return head - tail
	}
	return size - tail + head
}

func (lockfree) Put(b *Buffer, v byte) bool {
	head := b.head.Load()
	next := mathx.Wrap(head+1, b.size)
	if next == b.tail.Load() {
		b.overruns++
		return false
	}
	b.storage[head] = v
	b.head.Store(next)
	b.writes++
	return true
}

func (lockfree) Get(b *Buffer) (byte, bool) {
	tail := b.tail.Load()
	if tail == b.head.Load() {
		return 0, false
	}
	v := b.storage[tail]
	b.tail.Store(mathx.Wrap(tail+1, b.size))
	b.reads++
	return v, true
}

func (lockfree) Write(b *Buffer, p []byte) int {
	if len(p) == 0 {
		return 0
	}
	// Snapshot both indices once; all sizing below works off the
	// snapshots, not live state.
	head := b.head.Load()
	tail := b.tail.Load()
	n := mathx.Min(len(p), int(b.size-1-occupied(head, tail, b.size)))
	if n == 0 {
		b.overruns++
		return 0
	}
	h := int(head)
	first := mathx.Min(n, int(b.size)-h)
	copy(b.storage[h:h+first], p[:first])
	if rest := n - first; rest > 0 {
		copy(b.storage[:rest], p[first:n])
	}
	b.head.Store(mathx.Wrap(head+uint32(n), b.size))
	b.writes += uint32(n)
	if n < len(p) {
		b.overruns++
	}
	return n
}

func (lockfree) Read(b *Buffer, dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	head := b.head.Load()
	tail := b.tail.Load()
	n := mathx.Min(len(dst), int(occupied(head, tail, b.size)))
	if n == 0 {
		return 0
	}
	t := int(tail)
	first := mathx.Min(n, int(b.size)-t)
	copy(dst[:first], b.storage[t:t+first])
	if rest := n - first; rest > 0 {
		copy(dst[first:n], b.storage[:rest])
	}
	b.tail.Store(mathx.Wrap(tail+uint32(n), b.size))
	b.reads += uint32(n)
	return n
}

func (lockfree) Len(b *Buffer) int {
	return int(occupied(b.head.Load(), b.tail.Load(), b.size))
}

func (lockfree) Free(b *Buffer) int {
	return int(b.size - 1 - occupied(b.head.Load(), b.tail.Load(), b.size))
}

func (lockfree) IsEmpty(b *Buffer) bool {
	return b.head.Load() == b.tail.Load()
}

func (lockfree) IsFull(b *Buffer) bool {
	return mathx.Wrap(b.head.Load()+1, b.size) == b.tail.Load()
}

func (lockfree) Clear(b *Buffer) {
	b.tail.Store(b.head.Load())
	b.writes, b.reads, b.overruns = 0, 0, 0
}

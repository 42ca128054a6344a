package ringbuf

import "ringbuf-go/platform"

// irqlock brackets every delegated call in an interrupt-masking critical
// section: save-and-disable before, restore after. The mask stays down for
// the whole bulk copy, so a long transfer buys atomicity with interrupt
// latency.
type irqlock struct{}

func (irqlock) Put(b *Buffer, v byte) bool {
	s := platform.DisableInterrupts()
	ok := lockfreeOps.Put(b, v)
	platform.RestoreInterrupts(s)
	return ok
}

func (irqlock) Get(b *Buffer) (byte, bool) {
	s := platform.DisableInterrupts()
	v, ok := lockfreeOps.Get(b)
	platform.RestoreInterrupts(s)
	return v, ok
}

func (irqlock) Write(b *Buffer, p []byte) int {
	s := platform.DisableInterrupts()
	n := lockfreeOps.Write(b, p)
	platform.RestoreInterrupts(s)
	return n
}

func (irqlock) Read(b *Buffer, dst []byte) int {
	s := platform.DisableInterrupts()
	n := lockfreeOps.Read(b, dst)
	platform.RestoreInterrupts(s)
	return n
}

func (irqlock) Len(b *Buffer) int {
	s := platform.DisableInterrupts()
	n := lockfreeOps.Len(b)
	platform.RestoreInterrupts(s)
	return n
}

func (irqlock) Free(b *Buffer) int {
	s := platform.DisableInterrupts()
	n := lockfreeOps.Free(b)
	platform.RestoreInterrupts(s)
	return n
}

func (irqlock) IsEmpty(b *Buffer) bool {
	s := platform.DisableInterrupts()
	ok := lockfreeOps.IsEmpty(b)
	platform.RestoreInterrupts(s)
	return ok
}

func (irqlock) IsFull(b *Buffer) bool {
	s := platform.DisableInterrupts()
	ok := lockfreeOps.IsFull(b)
	platform.RestoreInterrupts(s)
	return ok
}

func (irqlock) Clear(b *Buffer) {
	s := platform.DisableInterrupts()
	lockfreeOps.Clear(b)
	platform.RestoreInterrupts(s)
}

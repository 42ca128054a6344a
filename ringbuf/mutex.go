package ringbuf

// mutexlock serializes every operation on the blocking lock the buffer
// owns, giving total ordering across any number of producers and
// consumers. The acquire may suspend the calling task; never use this
// strategy from interrupt context.
//
// A buffer whose lock is gone (already destroyed) reports the same
// nothing-happened results as an unbound buffer.
type mutexlock struct{}

func (mutexlock) Put(b *Buffer, v byte) bool {
	if b.lock == nil {
		return false
	}
	b.lock.Lock()
	ok := lockfreeOps.Put(b, v)
	b.lock.Unlock()
	return ok
}

func (mutexlock) Get(b *Buffer) (byte, bool) {
	if b.lock == nil {
		return 0, false
	}
	b.lock.Lock()
	v, ok := lockfreeOps.Get(b)
	b.lock.Unlock()
	return v, ok
}

func (mutexlock) Write(b *Buffer, p []byte) int {
	if b.lock == nil {
		return 0
	}
	b.lock.Lock()
	n := lockfreeOps.Write(b, p)
	b.lock.Unlock()
	return n
}

func (mutexlock) Read(b *Buffer, dst []byte) int {
	if b.lock == nil {
		return 0
	}
	b.lock.Lock()
	n := lockfreeOps.Read(b, dst)
	b.lock.Unlock()
	return n
}

func (mutexlock) Len(b *Buffer) int {
	if b.lock == nil {
		return 0
	}
	b.lock.Lock()
	n := lockfreeOps.Len(b)
	b.lock.Unlock()
	return n
}

func (mutexlock) Free(b *Buffer) int {
	if b.lock == nil {
		return 0
	}
	b.lock.Lock()
	n := lockfreeOps.Free(b)
	b.lock.Unlock()
	return n
}

func (mutexlock) IsEmpty(b *Buffer) bool {
	if b.lock == nil {
		return true
	}
	b.lock.Lock()
	ok := lockfreeOps.IsEmpty(b)
	b.lock.Unlock()
	return ok
}

func (mutexlock) IsFull(b *Buffer) bool {
	if b.lock == nil {
		return false
	}
	b.lock.Lock()
	ok := lockfreeOps.IsFull(b)
	b.lock.Unlock()
	return ok
}

func (mutexlock) Clear(b *Buffer) {
	if b.lock == nil {
		return
	}
	b.lock.Lock()
	lockfreeOps.Clear(b)
	b.lock.Unlock()
}

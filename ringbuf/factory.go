package ringbuf

import (
	"ringbuf-go/errcode"
	"ringbuf-go/platform"
	"ringbuf-go/rblog"
)

// newMutex is the lock factory MutexLock construction uses. A package var
// so an RTOS port can substitute its primitive and failure paths stay
// testable.
var newMutex = platform.NewMutex

// New binds a fresh Buffer to the caller-supplied storage under the
// strategy named by kind. The storage region stays caller-owned for the
// buffer's whole lifetime. For fully static allocation declare the Buffer
// value yourself and use Init.
func New(storage []byte, kind Kind) (*Buffer, error) {
	b := &Buffer{}
	if err := Init(b, storage, kind); err != nil {
		return nil, err
	}
	return b, nil
}

// Init initialises b over storage and binds the strategy for kind.
// Built-in kinds resolve directly; MutexLock additionally creates the
// buffer's lock and fails the whole construction if that fails; kinds at
// or above CustomBase are looked up in the registry. On any failure b is
// left unbound and every operation on it keeps reporting the
// nothing-happened result.
func Init(b *Buffer, storage []byte, kind Kind) error {
	if b == nil {
		return errcode.InvalidParams
	}
	if storage == nil || len(storage) < MinSize || len(storage) > maxStorage {
		rblog.Debugf("init: bad storage (len=%d)", len(storage))
		return errcode.InvalidParams
	}
	ops, err := resolve(kind)
	if err != nil {
		rblog.Debugf("init: kind %d: %v", kind, err)
		return err
	}
	var lock platform.Mutex
	if kind == MutexLock {
		m, merr := newMutex()
		if merr != nil || m == nil {
			rblog.Debugf("init: lock creation failed: %v", merr)
			return errcode.ResourceExhausted
		}
		lock = m
	}
	b.storage = storage
	b.size = uint32(len(storage))
	b.head.Store(0)
	b.tail.Store(0)
	b.lock = lock
	b.writes, b.reads, b.overruns = 0, 0, 0
	b.ops = ops // bound last: until here b still reads as unbound
	return nil
}

// Destroy releases the lock the buffer may own and unbinds every field.
// The storage region is caller-owned and never freed or wiped here.
// Destroy on a nil or never-bound buffer is a no-op.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	b.ops = nil
	if b.lock != nil {
		b.lock.Destroy()
		b.lock = nil
	}
	b.storage = nil
	b.size = 0
	b.head.Store(0)
	b.tail.Store(0)
	b.writes, b.reads, b.overruns = 0, 0, 0
}

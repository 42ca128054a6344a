package ringbuf

// Strategy is one interchangeable guarding policy: the full operation set
// over a Buffer, with whatever exclusivity bracket the policy adds around
// each call. A Strategy must not change the result an operation would
// produce without it.
//
// Implementations may assume b is bound; the Buffer methods screen
// unbound receivers before dispatching (while parameter checking is on).
type Strategy interface {
	Put(b *Buffer, v byte) bool
	Get(b *Buffer) (byte, bool)
	Write(b *Buffer, p []byte) int
	Read(b *Buffer, dst []byte) int
	Len(b *Buffer) int
	Free(b *Buffer) int
	IsEmpty(b *Buffer) bool
	IsFull(b *Buffer) bool
	Clear(b *Buffer)
}

// Kind selects a strategy at construction time.
type Kind uint8

const (
	// Lockfree relies on the single-producer/single-consumer discipline:
	// the producer touches only the write index, the consumer only the
	// read index. ISR-to-main-loop hand-off is the typical use.
	Lockfree Kind = iota
	// IRQLock wraps each call in an interrupt-masking critical section.
	// Suited to bare-metal systems where several interrupt sources share
	// one buffer.
	IRQLock
	// MutexLock wraps each call in a blocking lock and may suspend the
	// caller. Any non-interrupt context.
	MutexLock
	// CustomBase is the first kind value available to Register. Kinds
	// below it are reserved for built-ins.
	CustomBase
)

var (
	lockfreeOps Strategy = lockfree{}
	irqOps      Strategy = irqlock{}
	mutexOps    Strategy = mutexlock{}
)

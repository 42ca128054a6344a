// Package ringbuf is a fixed-capacity circular byte buffer for
// producer/consumer hand-off on embedded targets: ISR to main loop,
// cooperative tasks, RTOS threads.
//
// The buffer never allocates. The caller supplies the backing region and
// keeps ownership of it; one slot of the region is always left unused so
// that two indices are enough to tell empty from full, which puts the
// usable capacity at len(storage)-1.
//
// One algorithmic core is wrapped by three interchangeable guarding
// strategies, chosen at construction:
//
//	Lockfree   no guard; exactly one producer and one consumer
//	IRQLock    every call inside an interrupt-masking critical section
//	MutexLock  every call serialized on a blocking lock (never from ISR)
//
// A guard never changes what an operation returns, only who may call it
// concurrently. Additional strategies can be installed through Register
// under kinds at or above CustomBase.
//
// Clear only resets the indices; the bytes already in the region are left
// in place and an observer with access to the raw storage can still read
// them. If stale data is a confidentiality concern the caller must wipe
// the region itself.
package ringbuf

// Package platform supplies the primitives the ring buffer's guarded
// strategies consume: interrupt masking and a blocking mutual-exclusion
// primitive. Implementations are selected per target with build tags
// (host analogs for tests, runtime/interrupt on rp2xxx MCU builds).
package platform

// Mutex is the blocking lock a mutex-guarded buffer owns. Acquire may
// suspend the calling task indefinitely; never call from interrupt
// context.
type Mutex interface {
	Lock()
	Unlock()
	// Destroy releases any resource behind the lock. The Mutex must not
	// be used afterwards.
	Destroy()
}

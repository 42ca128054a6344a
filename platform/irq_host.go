//go:build !(rp2040 || rp2350)

package platform

import "sync"

// IRQState is the saved masking state returned by DisableInterrupts.
// Host builds carry no real state.
type IRQState struct{}

// Host builds emulate the single-core critical section with one
// process-wide lock, so code guarded by DisableInterrupts/RestoreInterrupts
// gets the same exclusivity in tests that it gets on the MCU. Unlike the
// real PRIMASK save/restore this emulation is not reentrant; the buffer
// strategies never nest the guard.
var irqMu sync.Mutex

func DisableInterrupts() IRQState {
	irqMu.Lock()
	return IRQState{}
}

func RestoreInterrupts(_ IRQState) {
	irqMu.Unlock()
}

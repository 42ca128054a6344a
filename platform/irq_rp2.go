//go:build rp2040 || rp2350

package platform

import "runtime/interrupt"

// IRQState is the saved PRIMASK-equivalent state.
type IRQState = interrupt.State

func DisableInterrupts() IRQState {
	return interrupt.Disable()
}

func RestoreInterrupts(s IRQState) {
	interrupt.Restore(s)
}

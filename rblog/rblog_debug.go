//go:build rbdebug

package rblog

import (
	"fmt"
	"io"
)

// Enabled reports whether diagnostics are compiled in.
const Enabled = true

// Output receives diagnostic lines. Set this from your bootstrap (e.g. a
// UART writer on MCU builds). Discard by default.
var Output io.Writer = io.Discard

func Debugf(format string, a ...any) {
	if Output == nil {
		return
	}
	fmt.Fprintf(Output, "[ringbuf] "+format+"\n", a...)
}

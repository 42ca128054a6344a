//go:build !rbdebug

// Package rblog is the optional diagnostic sink of the ring-buffer
// middleware. Without the rbdebug build tag every call compiles to an
// empty function and the formatter is not linked in at all, so release
// images pay nothing for the call sites.
package rblog

import "io"

// Enabled reports whether diagnostics are compiled in.
const Enabled = false

// Output is kept so call sites assign it unconditionally; nothing reads
// it in this configuration.
var Output io.Writer

func Debugf(string, ...any) {}

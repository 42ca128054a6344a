package main

// Embedded pipe configuration, resolved at build time like the rest of
// the middleware's knobs.
var defaultConfig = []byte(`{
	"capacity": 16,
	"chunk": 7,
	"total": 4096,
	"strategies": ["lockfree", "irqlock", "mutex"]
}`)

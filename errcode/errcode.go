package errcode

// Code is a stable error identifier for the ring-buffer middleware.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
//
// Empty and Full are documentary: the per-operation hot path reports them
// through its own success indicator (bool / byte count) so that ISR-context
// callers never allocate or unwind. The remaining codes are construction-
// and registration-time failures.
const (
	OK    Code = "ok"
	Empty Code = "empty"
	Full  Code = "full"

	InvalidParams       Code = "invalid_params"
	UnsupportedStrategy Code = "unsupported_strategy"
	ResourceExhausted   Code = "resource_exhausted"
	RegistryFull        Code = "registry_full"
	DuplicateStrategy   Code = "duplicate_strategy"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

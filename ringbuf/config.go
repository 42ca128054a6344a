package ringbuf

// The knobs below are construction-time configuration; nothing here is
// meant to change while buffers are live.

// MinSize is the smallest accepted backing region. One slot is always
// kept unused, so a MinSize region buffers exactly MinSize-1 bytes.
const MinSize = 2

// maxStorage keeps the slot count inside the uint32 index space.
const maxStorage = 1<<31 - 1

// paramCheck guards every exported Buffer method against nil receivers,
// unbound buffers and nil slices. Size-constrained builds may switch it
// off to drop the check from the hot path; doing so also drops the
// invalid-input fail-safes (IsEmpty==true etc.), so it is an explicit,
// test-covered trade, not a silent one.
var paramCheck = true

// SetParamCheck toggles per-call parameter validation and returns the
// previous setting. Construction-time validation in Init is unaffected.
func SetParamCheck(on bool) (prev bool) {
	prev = paramCheck
	paramCheck = on
	return prev
}

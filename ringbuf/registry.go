package ringbuf

import (
	"sync"

	"ringbuf-go/errcode"
	"ringbuf-go/rblog"
)

// maxCustom bounds the custom-strategy table, in the same fixed-capacity
// spirit as the built-in set.
const maxCustom = 4

type customEntry struct {
	kind Kind
	ops  Strategy
}

var (
	regMu   sync.Mutex
	customs [maxCustom]customEntry
	nCustom int
)

// Register installs ops as the strategy for kind. kind must be at or
// above CustomBase and not yet taken; at most maxCustom strategies are
// accepted. Registration is append-only and irrevocable for the process
// lifetime.
func Register(kind Kind, ops Strategy) error {
	if kind < CustomBase || ops == nil {
		return errcode.InvalidParams
	}
	regMu.Lock()
	defer regMu.Unlock()
	for i := 0; i < nCustom; i++ {
		if customs[i].kind == kind {
			return errcode.DuplicateStrategy
		}
	}
	if nCustom == maxCustom {
		return errcode.RegistryFull
	}
	customs[nCustom] = customEntry{kind: kind, ops: ops}
	nCustom++
	rblog.Debugf("register: custom kind %d (%d/%d slots)", kind, nCustom, maxCustom)
	return nil
}

// resolve maps a kind to its operation set.
func resolve(kind Kind) (Strategy, error) {
	switch kind {
	case Lockfree:
		return lockfreeOps, nil
	case IRQLock:
		return irqOps, nil
	case MutexLock:
		return mutexOps, nil
	}
	if kind >= CustomBase {
		regMu.Lock()
		defer regMu.Unlock()
		for i := 0; i < nCustom; i++ {
			if customs[i].kind == kind {
				return customs[i].ops, nil
			}
		}
	}
	return nil, errcode.UnsupportedStrategy
}

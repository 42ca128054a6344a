package platform

import (
	"testing"
	"time"
)

func TestMutexLifecycle(t *testing.T) {
	m, err := NewMutex()
	if err != nil {
		t.Fatalf("NewMutex: %v", err)
	}
	m.Lock()
	m.Unlock()
	m.Destroy()
}

func TestCriticalSectionExcludes(t *testing.T) {
	s := DisableInterrupts()

	entered := make(chan struct{})
	go func() {
		s2 := DisableInterrupts()
		close(entered)
		RestoreInterrupts(s2)
	}()

	select {
	case <-entered:
		t.Fatal("second critical section entered while the first was held")
	case <-time.After(50 * time.Millisecond):
	}

	RestoreInterrupts(s)
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("second critical section never entered after restore")
	}
}

package platform

import "sync"

// NewMutex creates a blocking mutex. The sync-backed implementation works
// on both host and TinyGo targets; an RTOS port substitutes its own
// primitive by swapping the factory the buffer package holds.
func NewMutex() (Mutex, error) {
	return &syncMutex{}, nil
}

type syncMutex struct{ mu sync.Mutex }

func (m *syncMutex) Lock()    { m.mu.Lock() }
func (m *syncMutex) Unlock()  { m.mu.Unlock() }
func (m *syncMutex) Destroy() {}

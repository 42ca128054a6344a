package ringbuf

import (
	"fmt"
	"testing"
)

// transcript runs a fixed single-threaded operation sequence against a
// fresh buffer of the given kind and records every observable outcome.
// The guard a strategy adds must never change a single line of it.
func transcript(t *testing.T, kind Kind) []string {
	t.Helper()
	b := mustNew(t, 16, kind)
	defer b.Destroy()

	var log []string
	note := func(format string, a ...any) {
		log = append(log, fmt.Sprintf(format, a...))
	}

	note("empty=%v full=%v len=%d free=%d", b.IsEmpty(), b.IsFull(), b.Len(), b.Free())
	note("put=%v", b.Put(0x10))
	note("write=%d", b.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	note("len=%d free=%d full=%v", b.Len(), b.Free(), b.IsFull())

	var tmp [6]byte
	n := b.Read(tmp[:])
	note("read=%d data=%v", n, tmp[:n])

	// Push the write index across the wrap.
	note("write=%d", b.Write([]byte{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}))
	note("len=%d free=%d full=%v", b.Len(), b.Free(), b.IsFull())
	note("put-on-full=%v", b.Put(0x99))

	v, ok := b.Get()
	note("get=%v,%v", v, ok)

	var rest [32]byte
	n = b.Read(rest[:])
	note("read=%d data=%v", n, rest[:n])
	note("get-on-empty-ok=%v", second(b.Get()))

	b.Clear()
	note("after-clear empty=%v len=%d", b.IsEmpty(), b.Len())
	note("stats=%+v", b.Stats())
	return log
}

func second(_ byte, ok bool) bool { return ok }

func TestStrategyEquivalence(t *testing.T) {
	kinds := map[string]Kind{
		"irqlock": IRQLock,
		"mutex":   MutexLock,
	}
	want := transcript(t, Lockfree)
	for name, kind := range kinds {
		got := transcript(t, kind)
		if len(got) != len(want) {
			t.Fatalf("%s: transcript length %d want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: step %d diverges:\n got  %s\n want %s", name, i, got[i], want[i])
			}
		}
	}
}

// A mutex-guarded buffer must serialize arbitrary producers and
// consumers without losing or reordering per-producer streams.
func TestMutexSerializesConcurrentUse(t *testing.T) {
	b := mustNew(t, 64, MutexLock)
	defer b.Destroy()

	const perSide = 2000
	done := make(chan int, 1)
	go func() {
		seen := 0
		var tmp [16]byte
		for seen < perSide {
			n := b.Read(tmp[:])
			seen += n
		}
		done <- seen
	}()

	sent := 0
	src := make([]byte, 11)
	for sent < perSide {
		n := len(src)
		if rem := perSide - sent; n > rem {
			n = rem
		}
		sent += b.Write(src[:n])
	}

	if got := <-done; got != perSide {
		t.Fatalf("consumer saw %d bytes, want %d", got, perSide)
	}
	if !b.IsEmpty() {
		t.Fatal("buffer not drained")
	}
}

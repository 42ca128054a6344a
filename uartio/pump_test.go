package uartio

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"ringbuf-go/ringbuf"

	"tinygo.org/x/drivers"
)

// fakeUART scripts a byte stream behind the drivers.UART surface.
type fakeUART struct {
	script []byte
	pos    int
}

func (f *fakeUART) Configure(_ drivers.UARTConfig) error { return nil }
func (f *fakeUART) Buffered() int                        { return len(f.script) - f.pos }
func (f *fakeUART) ReadByte() (byte, error) {
	if f.pos >= len(f.script) {
		return 0, errors.New("underrun")
	}
	v := f.script[f.pos]
	f.pos++
	return v, nil
}
func (f *fakeUART) Read(p []byte) (int, error) {
	n := copy(p, f.script[f.pos:])
	f.pos += n
	return n, nil
}
func (f *fakeUART) Write(p []byte) (int, error) { return len(p), nil }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPumpDeliversStream(t *testing.T) {
	src := make([]byte, 200)
	for i := range src {
		src[i] = byte(i * 3)
	}
	port := &fakeUART{script: src}

	// Ring large enough that nothing can be dropped.
	rb, err := ringbuf.New(make([]byte, len(src)+1), ringbuf.Lockfree)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(Config{Port: port, Ring: rb, Poll: time.Millisecond, Chunk: 16})
	p.Start(ctx)

	waitFor(t, func() bool { return rb.Len() == len(src) })

	got := make([]byte, len(src))
	if n := rb.Read(got); n != len(src) {
		t.Fatalf("Read=%d want %d", n, len(src))
	}
	if !bytes.Equal(got, src) {
		t.Fatal("delivered stream differs from source")
	}
	if d := p.Dropped(); d != 0 {
		t.Fatalf("Dropped=%d want 0", d)
	}
}

func TestPumpCountsOverruns(t *testing.T) {
	src := make([]byte, 64)
	port := &fakeUART{script: src}

	// Usable capacity 16; nobody drains, so 48 bytes must be dropped.
	rb, err := ringbuf.New(make([]byte, 17), ringbuf.Lockfree)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(Config{Port: port, Ring: rb, Poll: time.Millisecond, Chunk: 16})
	p.Start(ctx)

	waitFor(t, func() bool { return p.Dropped() == 48 })
	if got := rb.Len(); got != 16 {
		t.Fatalf("ring holds %d bytes, want 16", got)
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	port := &fakeUART{}
	rb, err := ringbuf.New(make([]byte, 8), ringbuf.Lockfree)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := New(Config{Port: port, Ring: rb})
	p.Start(ctx)
	cancel()

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not stop on cancel")
	}
}

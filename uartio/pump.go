// Package uartio feeds serial input into a ring buffer: the classic use
// of this middleware, a UART RX path decoupled from whoever consumes the
// bytes. The pump polls the port on a short cadence, moves whatever is
// buffered there into the ring, and never blocks on a full ring — the
// overflow is counted and dropped, matching the buffer's no-wait write
// contract.
package uartio

import (
	"context"
	"sync/atomic"
	"time"

	"ringbuf-go/ringbuf"
	"ringbuf-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Config describes one pump.
type Config struct {
	Port  drivers.UART    // source port
	Ring  *ringbuf.Buffer // destination; typically Lockfree or IRQLock
	Poll  time.Duration   // poll cadence, clamped to 1ms..100ms
	Chunk int             // max bytes moved per poll, clamped to 16..256
}

type Pump struct {
	cfg     Config
	dropped atomic.Uint32
	stopped chan struct{}
}

func New(cfg Config) *Pump {
	cfg.Chunk = mathx.Clamp(cfg.Chunk, 16, 256)
	if cfg.Poll <= 0 {
		cfg.Poll = time.Millisecond
	}
	cfg.Poll = mathx.Clamp(cfg.Poll, time.Millisecond, 100*time.Millisecond)
	return &Pump{cfg: cfg, stopped: make(chan struct{})}
}

// Start launches the pump goroutine and returns immediately. The
// goroutine exits when ctx is cancelled.
func (p *Pump) Start(ctx context.Context) {
	go func() {
		defer close(p.stopped)
		buf := make([]byte, p.cfg.Chunk)
		tick := time.NewTicker(p.cfg.Poll)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				p.drain(buf)
			}
		}
	}()
}

// drain moves at most one chunk from the port into the ring.
func (p *Pump) drain(buf []byte) {
	n := p.cfg.Port.Buffered()
	if n <= 0 {
		return
	}
	n = mathx.Min(n, len(buf))
	got := 0
	for got < n {
		v, err := p.cfg.Port.ReadByte()
		if err != nil {
			break
		}
		buf[got] = v
		got++
	}
	if got == 0 {
		return
	}
	if w := p.cfg.Ring.Write(buf[:got]); w < got {
		p.dropped.Add(uint32(got - w))
	}
}

// Dropped reports how many bytes the ring had no room for.
func (p *Pump) Dropped() uint32 { return p.dropped.Load() }

// Done is closed once the pump goroutine has exited.
func (p *Pump) Done() <-chan struct{} { return p.stopped }

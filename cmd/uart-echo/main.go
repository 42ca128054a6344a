//go:build rp2040

// cmd/uart-echo/main.go
//
// MCU demo: echoes UART0 through an interrupt-guarded ring buffer. The
// ring sits between the receive path and the transmit loop, so bursts
// larger than one read are absorbed instead of dropped.
package main

import (
	"context"
	"machine"
	"time"

	"ringbuf-go/ringbuf"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

var echoStorage [256]byte

func main() {
	println("[uart-echo] boot …")
	time.Sleep(1500 * time.Millisecond)

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})

	var rb ringbuf.Buffer
	if err := ringbuf.Init(&rb, echoStorage[:], ringbuf.IRQLock); err != nil {
		println("[uart-echo] init failed:", err.Error())
		return
	}

	ctx := context.Background()
	var in, out [64]byte
	for {
		n, _ := u.RecvSomeContext(ctx, in[:])
		if n > 0 {
			rb.Write(in[:n])
		}
		for rb.Len() > 0 {
			m := rb.Read(out[:])
			if m == 0 {
				break
			}
			_, _ = u.Write(out[:m])
		}
	}
}

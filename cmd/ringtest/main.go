// cmd/ringtest/main.go
//
// Host-side exerciser: runs the canonical SPSC byte pipe over every
// configured strategy and prints a pass/fail transcript. The pipe
// parameters come from an embedded JSON config.
package main

import (
	"fmt"
	"os"
	"time"

	"ringbuf-go/ringbuf"

	"github.com/andreyvit/tinyjson"
)

const runTimeout = 10 * time.Second

type pipeConfig struct {
	Capacity   int
	Chunk      int
	Total      int
	Strategies []string
}

func main() {
	cfg, err := loadConfig(defaultConfig)
	if err != nil {
		fmt.Printf("[ringtest] config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[ringtest] capacity=%d chunk=%d total=%d\n",
		cfg.Capacity, cfg.Chunk, cfg.Total)

	okAll := true
	for _, name := range cfg.Strategies {
		kind, ok := kindByName(name)
		if !ok {
			fmt.Printf("[ringtest] FAIL %-8s: unknown strategy\n", name)
			okAll = false
			continue
		}
		if err := runPipe(kind, cfg); err != nil {
			fmt.Printf("[ringtest] FAIL %-8s: %v\n", name, err)
			okAll = false
			continue
		}
		fmt.Printf("[ringtest] PASS %-8s\n", name)
	}
	if !okAll {
		os.Exit(1)
	}
}

func loadConfig(raw []byte) (pipeConfig, error) {
	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return pipeConfig{}, fmt.Errorf("config is not a JSON object")
	}
	cfg := pipeConfig{Capacity: 16, Chunk: 7, Total: 4096}
	if v, ok := intVal(m["capacity"]); ok {
		cfg.Capacity = v
	}
	if v, ok := intVal(m["chunk"]); ok {
		cfg.Chunk = v
	}
	if v, ok := intVal(m["total"]); ok {
		cfg.Total = v
	}
	if ss, ok := m["strategies"].([]any); ok {
		for _, s := range ss {
			if name, ok := s.(string); ok {
				cfg.Strategies = append(cfg.Strategies, name)
			}
		}
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = []string{"lockfree", "irqlock", "mutex"}
	}
	return cfg, nil
}

func intVal(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case int64:
		return int(x), true
	case uint64:
		return int(x), true
	}
	return 0, false
}

func kindByName(s string) (ringbuf.Kind, bool) {
	switch s {
	case "lockfree":
		return ringbuf.Lockfree, true
	case "irqlock":
		return ringbuf.IRQLock, true
	case "mutex":
		return ringbuf.MutexLock, true
	}
	return 0, false
}

// runPipe pushes cfg.Total sequenced bytes through one buffer with a
// concurrent consumer and checks the stream arrives intact and in order.
func runPipe(kind ringbuf.Kind, cfg pipeConfig) error {
	storage := make([]byte, cfg.Capacity)
	rb, err := ringbuf.New(storage, kind)
	if err != nil {
		return err
	}
	defer rb.Destroy()

	done := make(chan error, 1)
	go func() { // consumer
		got := 0
		tmp := make([]byte, cfg.Chunk+3) // deliberately mismatched size
		deadline := time.Now().Add(runTimeout)
		for got < cfg.Total {
			n := rb.Read(tmp)
			if n == 0 {
				if time.Now().After(deadline) {
					done <- fmt.Errorf("consumer timeout after %d bytes", got)
					return
				}
				time.Sleep(time.Microsecond)
				continue
			}
			for i := 0; i < n; i++ {
				if tmp[i] != byte(got+i) {
					done <- fmt.Errorf("byte %d: got %d want %d", got+i, tmp[i], byte(got+i))
					return
				}
			}
			got += n
		}
		done <- nil
	}()

	src := make([]byte, cfg.Total)
	for i := range src {
		src[i] = byte(i)
	}
	for off := 0; off < len(src); {
		end := off + cfg.Chunk
		if end > len(src) {
			end = len(src)
		}
		n := rb.Write(src[off:end])
		if n == 0 {
			time.Sleep(time.Microsecond)
			continue
		}
		off += n
	}

	if err := <-done; err != nil {
		return err
	}
	st := rb.Stats()
	fmt.Printf("[ringtest]      writes=%d reads=%d overruns=%d\n",
		st.Writes, st.Reads, st.Overruns)
	return nil
}

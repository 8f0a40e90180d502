package benchmark

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/protocol/keygen"
	"github.com/NillionNetwork/cggmp21/pkg/tss"
)

type network struct {
	inboxes []chan tss.Message
}

func newNetwork(n int) *network {
	nw := &network{inboxes: make([]chan tss.Message, n)}
	for i := range nw.inboxes {
		nw.inboxes[i] = make(chan tss.Message, 256)
	}
	return nw
}

type transport struct {
	nw   *network
	self uint16
}

func (t *transport) Send(m tss.Message) error {
	for j := range t.nw.inboxes {
		if uint16(j) != t.self {
			t.nw.inboxes[j] <- m
		}
	}
	return nil
}

func (t *transport) Receive() (tss.Message, error) {
	m, ok := <-t.nw.inboxes[t.self]
	if !ok {
		return nil, io.EOF
	}
	return m, nil
}

// runOnce executes one full keygen over all parties and returns the wall
// clock the slowest party took.
func runOnce(b *testing.B, curve curves.Curve, n int, reliable bool) time.Duration {
	b.Helper()
	nw := newNetwork(n)
	start := time.Now()
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = keygen.Run(&keygen.Config{
				SessionID:         []byte(fmt.Sprintf("bench-%d-%v", n, reliable)),
				PartyIndex:        uint16(i),
				PartyCount:        uint16(n),
				Curve:             curve,
				ReliableBroadcast: reliable,
			}, &transport{nw: nw, self: uint16(i)})
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			b.Fatalf("party %d: %v", i, err)
		}
	}
	return time.Since(start)
}

func BenchmarkKeygen(b *testing.B) {
	curve := curves.NewSecp256k1()
	for _, n := range []int{3, 5, 10} {
		for _, reliable := range []bool{false, true} {
			name := fmt.Sprintf("n=%d/reliable=%v", n, reliable)
			b.Run(name, func(b *testing.B) {
				durations := make([]float64, 0, b.N)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					d := runOnce(b, curve, n, reliable)
					durations = append(durations, float64(d.Microseconds()))
				}
				b.StopTimer()

				if mean, err := stats.Mean(durations); err == nil {
					b.ReportMetric(mean, "mean_us/run")
				}
				if p95, err := stats.Percentile(durations, 95); err == nil {
					b.ReportMetric(p95, "p95_us/run")
				}
			})
		}
	}
}

func BenchmarkKeygenEdwards25519(b *testing.B) {
	curve := curves.NewEdwards25519()
	b.Run("n=3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			runOnce(b, curve, 3, false)
		}
	})
}

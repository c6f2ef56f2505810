package workload

import (
	"fmt"

	"go.uber.org/atomic"
	"golang.org/x/sys/cpu"

	"ctrbench/internal/memorder"
)

// Counters sit alone on their cache line so the only coherence traffic a
// trial generates is the traffic the workload asks for.

type plainCounter struct {
	_ cpu.CacheLinePad
	v int64
	_ cpu.CacheLinePad
}

type atomicCounter struct {
	_ cpu.CacheLinePad
	v atomic.Int64
	_ cpu.CacheLinePad
}

// retained is the last private plain counter a thread finished with.
// Publishing it forces the counter onto the heap, so every increment is a
// real load and store rather than a register the compiler may drop.
var retained atomic.Pointer[plainCounter]

//go:noinline
func retain(c *plainCounter) {
	retained.Store(c)
}

// fetchAdd increments c n times under o.
//
// sync/atomic only offers sequentially consistent read-modify-writes, so
// all six orderings lower to the same instruction (LOCK XADD on amd64,
// LDADDAL on arm64). This switch is the one place an ordering is lowered.
func fetchAdd(c *atomic.Int64, n int, o memorder.Ordering) {
	switch o {
	case memorder.Relaxed, memorder.Consume, memorder.Acquire,
		memorder.Release, memorder.AcqRel, memorder.SeqCst:
		for i := 0; i < n; i++ {
			c.Inc()
		}
	default:
		panic(fmt.Sprintf("workload: unknown memory ordering %d", uint8(o)))
	}
}

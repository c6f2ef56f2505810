package workload

import (
	"fmt"

	"ctrbench/internal/memorder"
)

// NonAtomicBaseline increments a plain, thread-private counter: raw loop
// and increment cost with no synchronization and no contention.
type NonAtomicBaseline struct {
	iterations int
}

func NewNonAtomicBaseline(iterations int) *NonAtomicBaseline {
	return &NonAtomicBaseline{iterations: iterations}
}

func (w *NonAtomicBaseline) Name() string    { return "Non-atomic Baseline" }
func (w *NonAtomicBaseline) Iterations() int { return w.iterations }

func (w *NonAtomicBaseline) RunOnThread() {
	c := new(plainCounter)
	for i := 0; i < w.iterations; i++ {
		c.v++
	}
	retain(c)
}

// NonAtomicBenchmark increments a plain counter shared by every thread.
// The increments race on purpose: the measurement is what the hardware does
// with unsynchronized read-modify-writes on one location, not a correct
// count. Do not make this counter atomic.
type NonAtomicBenchmark struct {
	iterations int
	counter    *plainCounter
}

func NewNonAtomicBenchmark(iterations int) *NonAtomicBenchmark {
	return &NonAtomicBenchmark{iterations: iterations, counter: new(plainCounter)}
}

func (w *NonAtomicBenchmark) Name() string    { return "Non-atomic Benchmark" }
func (w *NonAtomicBenchmark) Iterations() int { return w.iterations }
func (w *NonAtomicBenchmark) Reset()          { w.counter = new(plainCounter) }
func (w *NonAtomicBenchmark) Count() int64    { return w.counter.v }

func (w *NonAtomicBenchmark) RunOnThread() {
	c := w.counter
	for i := 0; i < w.iterations; i++ {
		c.v++
	}
}

// AtomicBaseline fetch-adds a thread-private atomic counter: the cost of
// the atomic instruction under one ordering, without coherence traffic.
type AtomicBaseline struct {
	iterations int
	order      memorder.Ordering
	name       string
}

// NewAtomicBaseline panics if order is not a defined ordering.
func NewAtomicBaseline(iterations int, order memorder.Ordering) *AtomicBaseline {
	memorder.MustValid(order)
	return &AtomicBaseline{
		iterations: iterations,
		order:      order,
		name:       fmt.Sprintf("Atomic Baseline (%s)", order),
	}
}

func (w *AtomicBaseline) Name() string                { return w.name }
func (w *AtomicBaseline) Iterations() int             { return w.iterations }
func (w *AtomicBaseline) Ordering() memorder.Ordering { return w.order }

func (w *AtomicBaseline) RunOnThread() {
	c := new(atomicCounter)
	fetchAdd(&c.v, w.iterations, w.order)
}

// AtomicBenchmark fetch-adds one atomic counter shared by every thread:
// the cache-coherence cost of contended increments under one ordering.
type AtomicBenchmark struct {
	iterations int
	order      memorder.Ordering
	name       string
	counter    *atomicCounter
}

// NewAtomicBenchmark panics if order is not a defined ordering.
func NewAtomicBenchmark(iterations int, order memorder.Ordering) *AtomicBenchmark {
	memorder.MustValid(order)
	return &AtomicBenchmark{
		iterations: iterations,
		order:      order,
		name:       fmt.Sprintf("Atomic Benchmark (%s)", order),
		counter:    new(atomicCounter),
	}
}

func (w *AtomicBenchmark) Name() string                { return w.name }
func (w *AtomicBenchmark) Iterations() int             { return w.iterations }
func (w *AtomicBenchmark) Ordering() memorder.Ordering { return w.order }
func (w *AtomicBenchmark) Reset()                      { w.counter = new(atomicCounter) }
func (w *AtomicBenchmark) Count() int64                { return w.counter.v.Load() }

func (w *AtomicBenchmark) RunOnThread() {
	fetchAdd(&w.counter.v, w.iterations, w.order)
}

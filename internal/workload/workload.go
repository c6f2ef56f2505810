// Package workload defines the units of work the benchmark harness drives
// and the four counter families measured by ctrbench.
//
// A Workload is built once at startup and never mutated afterwards, except
// for the counter a shared workload owns, which the runner resets before
// every trial.
package workload

// Workload is a named per-thread increment loop.
type Workload interface {
	Name() string
	// RunOnThread performs the workload's fixed number of increments on
	// the calling thread. It never fails.
	RunOnThread()
}

// Shared is implemented by workloads whose counter is shared by every
// thread of a trial.
type Shared interface {
	Workload
	// Reset reconstructs the shared counter at zero.
	Reset()
	// Count returns the shared counter. Only meaningful once all threads
	// of the trial have returned.
	Count() int64
}

// Sized is implemented by workloads that know their per-thread iteration
// count.
type Sized interface {
	Iterations() int
}

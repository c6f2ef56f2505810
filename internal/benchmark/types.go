package benchmark

import "time"

// TrialResult is the outcome of one workload at one thread count.
type TrialResult struct {
	Workload string
	Threads  int
	// Iterations is the per-thread increment count, zero when the
	// workload does not report it.
	Iterations int
	Elapsed    time.Duration
}

// Milliseconds returns the elapsed time in whole milliseconds, truncated.
func (r TrialResult) Milliseconds() int64 {
	return r.Elapsed.Milliseconds()
}

// Increments returns the logical increments the trial performed.
func (r TrialResult) Increments() int64 {
	return int64(r.Threads) * int64(r.Iterations)
}

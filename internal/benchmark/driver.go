package benchmark

import "ctrbench/internal/workload"

// Driver sweeps an ordered list of workloads, one after another, streaming
// every trial to the runner's sinks as it completes.
type Driver struct {
	runner     TrialRunner
	workloads  []workload.Workload
	maxThreads int
}

func NewDriver(runner TrialRunner, workloads []workload.Workload, maxThreads int) *Driver {
	return &Driver{
		runner:     runner,
		workloads:  workloads,
		maxThreads: maxThreads,
	}
}

func (d *Driver) Run() {
	for _, w := range d.workloads {
		d.runner.Run(w, d.maxThreads)
	}
}

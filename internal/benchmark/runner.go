package benchmark

import (
	"log/slog"
	"sync"
	"time"

	"ctrbench/internal/affinity"
	"ctrbench/internal/workload"
)

// TrialRunner sweeps one workload across thread counts 1..maxThreads.
type TrialRunner interface {
	Run(w workload.Workload, maxThreads int)
}

// Runner executes and times trials. Every trial spawns fresh execution
// units, one goroutine locked to its own OS thread per unit, and joins all
// of them before the clock stops.
type Runner struct {
	sink    Sink
	barrier bool
	pin     bool
	logger  *slog.Logger

	// now and onLocked let tests observe when the clock is read relative
	// to execution units taking their thread.
	now      func() time.Time
	onLocked func(unit int)
}

type Option func(*Runner)

// WithStartBarrier starts the clock only once every execution unit is
// running and parked on a start gate, so spawn cost is left out of the
// measurement. By default spawn and join are timed.
func WithStartBarrier() Option {
	return func(r *Runner) { r.barrier = true }
}

// WithCPUPinning pins execution unit i to CPU i mod NumCPU where supported.
func WithCPUPinning() Option {
	return func(r *Runner) { r.pin = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func NewRunner(sink Sink, opts ...Option) *Runner {
	r := &Runner{
		sink:   sink,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs one trial per thread count from 1 to maxThreads inclusive.
// A non-positive maxThreads runs nothing.
func (r *Runner) Run(w workload.Workload, maxThreads int) {
	for threads := 1; threads <= maxThreads; threads++ {
		r.RunTrial(w, threads)
	}
}

// RunTrial runs w on exactly threads execution units and reports the
// elapsed time.
func (r *Runner) RunTrial(w workload.Workload, threads int) TrialResult {
	if s, ok := w.(workload.Shared); ok {
		s.Reset()
	}

	name := w.Name()
	r.sink.TrialStarted(name, threads)
	r.logger.Debug("trial started", "workload", name, "threads", threads, "start_barrier", r.barrier)

	var elapsed time.Duration
	if r.barrier {
		elapsed = r.timeGated(w, threads)
	} else {
		elapsed = r.timeSpawned(w, threads)
	}

	res := TrialResult{
		Workload: name,
		Threads:  threads,
		Elapsed:  elapsed,
	}
	if sized, ok := w.(workload.Sized); ok {
		res.Iterations = sized.Iterations()
	}

	r.logger.Debug("trial finished", "workload", name, "threads", threads, "elapsed", elapsed)
	r.sink.TrialFinished(res)
	return res
}

func (r *Runner) timeSpawned(w workload.Workload, threads int) time.Duration {
	var wg sync.WaitGroup

	start := r.now()
	for unit := range threads {
		wg.Go(func() {
			th := r.lock(unit)
			defer th.Release()
			w.RunOnThread()
		})
	}
	wg.Wait()
	return r.now().Sub(start)
}

func (r *Runner) timeGated(w workload.Workload, threads int) time.Duration {
	var ready, done sync.WaitGroup
	gate := make(chan struct{})

	ready.Add(threads)
	for unit := range threads {
		done.Go(func() {
			th := r.lock(unit)
			defer th.Release()
			ready.Done()
			<-gate
			w.RunOnThread()
		})
	}
	ready.Wait()

	start := r.now()
	close(gate)
	done.Wait()
	return r.now().Sub(start)
}

func (r *Runner) lock(unit int) affinity.Thread {
	cpu := -1
	if r.pin {
		cpu = unit
	}
	th, err := affinity.Lock(cpu)
	if err != nil {
		r.logger.Warn("cpu pinning failed", "unit", unit, "error", err)
	}
	if r.onLocked != nil {
		r.onLocked(unit)
	}
	return th
}

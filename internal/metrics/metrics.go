package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"ctrbench/internal/benchmark"
)

const (
	nsPerIncrementName  = "ctrbench_trial_ns_per_increment"
	trialsCompletedName = "ctrbench_trials_completed_total"
	incrementsName      = "ctrbench_increments_total"
)

// Metrics records every finished trial as Prometheus series. It is a
// benchmark.Sink and is meant to sit next to the text report in a
// benchmark.MultiSink.
type Metrics struct {
	TrialDuration   *prometheus.GaugeVec
	NsPerIncrement  *prometheus.GaugeVec
	TrialsCompleted *prometheus.CounterVec
	Increments      *prometheus.CounterVec
	TrialsRunning   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.TrialDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ctrbench_trial_duration_seconds",
			Help: "Wall-clock duration of the latest trial",
		},
		[]string{"workload", "threads"},
	)

	m.NsPerIncrement = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: nsPerIncrementName,
			Help: "Trial duration divided by the logical increments of the trial, threads times iterations",
		},
		[]string{"workload", "threads"},
	)

	m.TrialsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: trialsCompletedName,
			Help: "Total number of trials completed",
		},
		[]string{"workload"},
	)

	m.Increments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: incrementsName,
			Help: "Logical increments performed, threads times iterations",
		},
		[]string{"workload"},
	)

	m.TrialsRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ctrbench_trials_running",
			Help: "1 while a trial is being timed",
		},
	)

	reg.MustRegister(
		m.TrialDuration,
		m.NsPerIncrement,
		m.TrialsCompleted,
		m.Increments,
		m.TrialsRunning,
	)

	return m
}

func (m *Metrics) TrialStarted(workload string, threads int) {
	m.TrialsRunning.Set(1)
}

func (m *Metrics) TrialFinished(res benchmark.TrialResult) {
	threads := strconv.Itoa(res.Threads)

	m.TrialsRunning.Set(0)
	m.TrialDuration.WithLabelValues(res.Workload, threads).Set(res.Elapsed.Seconds())
	m.TrialsCompleted.WithLabelValues(res.Workload).Inc()

	if res.Iterations > 0 {
		m.Increments.WithLabelValues(res.Workload).Add(float64(res.Increments()))
		m.NsPerIncrement.WithLabelValues(res.Workload, threads).
			Set(float64(res.Elapsed.Nanoseconds()) / float64(res.Increments()))
	}
}

package benchmark

// Sink receives trial progress as it happens. TrialStarted is called before
// the clock starts and TrialFinished after every execution unit has joined.
type Sink interface {
	TrialStarted(workload string, threads int)
	TrialFinished(res TrialResult)
}

type multiSink struct {
	sinks []Sink
}

// MultiSink fans every event out to sinks, in order.
func MultiSink(sinks ...Sink) Sink {
	return &multiSink{sinks: sinks}
}

func (m *multiSink) TrialStarted(workload string, threads int) {
	for _, s := range m.sinks {
		s.TrialStarted(workload, threads)
	}
}

func (m *multiSink) TrialFinished(res TrialResult) {
	for _, s := range m.sinks {
		s.TrialFinished(res)
	}
}

package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Summary is what a registry holds for one workload after a sweep.
type Summary struct {
	Workload   string
	Trials     int
	Increments float64
	// NsPerIncrement is indexed by thread count minus one.
	NsPerIncrement []float64
}

// Summarize gathers g and folds the trial series into one Summary per
// workload, keyed by workload name.
func Summarize(g prometheus.Gatherer) (map[string]Summary, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	summaries := make(map[string]Summary)
	for _, mf := range families {
		switch mf.GetName() {
		case trialsCompletedName, incrementsName, nsPerIncrementName:
		default:
			continue
		}

		for _, m := range mf.GetMetric() {
			labels := labelValues(m)
			name := labels["workload"]
			s := summaries[name]
			s.Workload = name

			switch mf.GetName() {
			case trialsCompletedName:
				s.Trials = int(m.GetCounter().GetValue())
			case incrementsName:
				s.Increments = m.GetCounter().GetValue()
			case nsPerIncrementName:
				threads, err := strconv.Atoi(labels["threads"])
				if err != nil || threads < 1 {
					continue
				}
				for len(s.NsPerIncrement) < threads {
					s.NsPerIncrement = append(s.NsPerIncrement, 0)
				}
				s.NsPerIncrement[threads-1] = m.GetGauge().GetValue()
			}
			summaries[name] = s
		}
	}
	return summaries, nil
}

func labelValues(m *dto.Metric) map[string]string {
	labels := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	return labels
}

package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardOrder(t *testing.T) {
	want := []string{
		"Non-atomic Baseline",
		"Non-atomic Benchmark",
		"Atomic Baseline (relaxed)",
		"Atomic Baseline (consume)",
		"Atomic Baseline (acquire)",
		"Atomic Baseline (release)",
		"Atomic Baseline (acq_rel)",
		"Atomic Baseline (seq_cst)",
		"Atomic Benchmark (relaxed)",
		"Atomic Benchmark (consume)",
		"Atomic Benchmark (acquire)",
		"Atomic Benchmark (release)",
		"Atomic Benchmark (acq_rel)",
		"Atomic Benchmark (seq_cst)",
	}

	list := Standard(7)
	var got []string
	for _, w := range list {
		got = append(got, w.Name())
		sized, ok := w.(Sized)
		if assert.True(t, ok, w.Name()) {
			assert.Equal(t, 7, sized.Iterations())
		}
	}
	assert.Equal(t, want, got)
}

func TestStandardInstancesAreDistinct(t *testing.T) {
	a := Standard(1)
	b := Standard(1)
	for i := range a {
		assert.NotSame(t, a[i], b[i])
	}
}

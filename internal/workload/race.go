//go:build race

package workload

// RaceEnabled reports whether the binary was built with -race, under which
// NonAtomicBenchmark is reported as the data race it is.
const RaceEnabled = true

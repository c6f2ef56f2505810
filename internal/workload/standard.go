package workload

import "ctrbench/internal/memorder"

// Standard returns the fourteen workloads in report order: the non-atomic
// baseline and benchmark, then one atomic baseline per ordering, then one
// atomic benchmark per ordering.
func Standard(iterations int) []Workload {
	orders := memorder.All()
	list := make([]Workload, 0, 2+2*len(orders))

	list = append(list, NewNonAtomicBaseline(iterations))
	list = append(list, NewNonAtomicBenchmark(iterations))
	for _, o := range orders {
		list = append(list, NewAtomicBaseline(iterations, o))
	}
	for _, o := range orders {
		list = append(list, NewAtomicBenchmark(iterations, o))
	}
	return list
}

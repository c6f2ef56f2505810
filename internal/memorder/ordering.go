// Package memorder enumerates the memory orderings an atomic workload can be
// parameterized with.
package memorder

import "fmt"

// Ordering is a memory ordering, weakest first.
type Ordering uint8

const (
	Relaxed Ordering = iota
	Consume
	Acquire
	Release
	AcqRel
	SeqCst

	numOrderings
)

var names = [numOrderings]string{
	Relaxed: "relaxed",
	Consume: "consume",
	Acquire: "acquire",
	Release: "release",
	AcqRel:  "acq_rel",
	SeqCst:  "seq_cst",
}

// All returns every ordering in enumeration order.
func All() []Ordering {
	all := make([]Ordering, 0, numOrderings)
	for o := Relaxed; o < numOrderings; o++ {
		all = append(all, o)
	}
	return all
}

// Valid reports whether o is one of the six defined orderings.
func (o Ordering) Valid() bool {
	return o < numOrderings
}

func (o Ordering) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Ordering(%d)", uint8(o))
	}
	return names[o]
}

// MustValid panics if o is outside the enumeration. Constructors call it so
// that nothing downstream has to handle an unknown ordering.
func MustValid(o Ordering) Ordering {
	if !o.Valid() {
		panic(fmt.Sprintf("memorder: unknown ordering %d", uint8(o)))
	}
	return o
}

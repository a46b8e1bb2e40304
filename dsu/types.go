package dsu

import "errors"

var (
	// ErrNegativeSize indicates New was asked for a negative number of elements.
	ErrNegativeSize = errors.New("dsu: size must be non-negative")
	// ErrOutOfRange indicates a label outside [0, Len()).
	ErrOutOfRange = errors.New("dsu: label out of range")
)

// DisjointSet tracks component membership over labels 0..n-1.
// The zero value is an empty set of size 0.
type DisjointSet struct {
	parent []int // parent[i] == i for roots
	rank   []int // upper bound on tree height, meaningful for roots only
	size   []int // element count, meaningful for roots only
	count  int   // number of disjoint components
}

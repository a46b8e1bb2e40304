package dsu

import "fmt"

// New creates n singleton components labeled 0..n-1.
// Returns ErrNegativeSize if n < 0.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of labels.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint components currently tracked.
func (d *DisjointSet) Count() int {
	return d.count
}

// check validates a label.
func (d *DisjointSet) check(i int) error {
	if i < 0 || i >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(d.parent))
	}

	return nil
}

// root walks to the representative of i, halving the path on the way.
// i must already be validated.
func (d *DisjointSet) root(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Find returns the representative label of the component containing i.
// Returns ErrOutOfRange if i is not a valid label.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(i int) (int, error) {
	if err := d.check(i); err != nil {
		return -1, err
	}

	return d.root(i), nil
}

// Union merges the components containing i and j.
// It reports whether a merge happened: false means i and j were already joined.
// Returns ErrOutOfRange if either label is invalid; nothing is modified in that case.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(i, j int) (bool, error) {
	if err := d.check(i); err != nil {
		return false, err
	}
	if err := d.check(j); err != nil {
		return false, err
	}
	ri, rj := d.root(i), d.root(j)
	if ri == rj {
		return false, nil
	}
	// Attach the shallower tree under the deeper one.
	if d.rank[ri] < d.rank[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
	if d.rank[ri] == d.rank[rj] {
		d.rank[ri]++
	}
	d.count--

	return true, nil
}

// Connected reports whether i and j belong to the same component.
func (d *DisjointSet) Connected(i, j int) (bool, error) {
	ri, err := d.Find(i)
	if err != nil {
		return false, err
	}
	rj, err := d.Find(j)
	if err != nil {
		return false, err
	}

	return ri == rj, nil
}

// SizeOf returns the number of labels in the component containing i.
func (d *DisjointSet) SizeOf(i int) (int, error) {
	r, err := d.Find(i)
	if err != nil {
		return 0, err
	}

	return d.size[r], nil
}

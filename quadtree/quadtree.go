package quadtree

import (
	"fmt"
	"slices"
)

// New creates an empty index covering exactly bounds.
// Returns ErrEmptyBounds, ErrInvalidCapacity or ErrInvalidDepth on bad input.
func New[T HitBoxer](bounds Rect, opts ...Option) (*Tree[T], error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %+v", ErrEmptyBounds, bounds)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.Capacity)
	}
	if o.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, o.MaxDepth)
	}
	t := &Tree[T]{bounds: bounds, opts: o}
	t.Clear()

	return t, nil
}

// Bounds returns the extent the index was created with.
func (t *Tree[T]) Bounds() Rect {
	return t.bounds
}

// Len returns the number of inserted values.
func (t *Tree[T]) Len() int {
	return len(t.entries)
}

// NodeCount returns the number of arena nodes, root included.
func (t *Tree[T]) NodeCount() int {
	return len(t.nodes)
}

// Clear removes every value and collapses the tree back to a single root.
func (t *Tree[T]) Clear() {
	t.nodes = append(t.nodes[:0], node{bounds: t.bounds, child: -1})
	t.entries = t.entries[:0]
	t.overflow = t.overflow[:0]
}

// Insert records obj under its current hit box.
func (t *Tree[T]) Insert(obj T) {
	box := obj.HitBox()
	h := len(t.entries)
	t.entries = append(t.entries, entry[T]{box: box, obj: obj})
	if !t.bounds.Contains(box) {
		t.overflow = append(t.overflow, h)
		return
	}

	n := 0
	for {
		if t.nodes[n].child >= 0 {
			if c := t.childFor(n, box); c >= 0 {
				n = c
				continue
			}
		}
		t.nodes[n].items = append(t.nodes[n].items, h)
		if t.nodes[n].child < 0 {
			t.maybeSplit(n)
		}
		return
	}
}

// childFor returns the child of n that fully contains box, or -1.
func (t *Tree[T]) childFor(n int, box Rect) int {
	first := t.nodes[n].child
	for c := first; c < first+4; c++ {
		if t.nodes[c].bounds.Contains(box) {
			return c
		}
	}

	return -1
}

// maybeSplit subdivides leaf n once it is over capacity and pushes down
// every value that fits entirely in one quadrant.
func (t *Tree[T]) maybeSplit(n int) {
	nd := t.nodes[n]
	if len(nd.items) <= t.opts.Capacity || nd.depth >= t.opts.MaxDepth {
		return
	}
	b := nd.bounds
	hw, hh := b.W/2, b.H/2
	if hw == 0 || hh == 0 {
		return
	}

	first := len(t.nodes)
	quads := [4]Rect{
		{X: b.X, Y: b.Y, W: hw, H: hh},
		{X: b.X + hw, Y: b.Y, W: b.W - hw, H: hh},
		{X: b.X, Y: b.Y + hh, W: hw, H: b.H - hh},
		{X: b.X + hw, Y: b.Y + hh, W: b.W - hw, H: b.H - hh},
	}
	for _, q := range quads {
		t.nodes = append(t.nodes, node{bounds: q, child: -1, depth: nd.depth + 1})
	}
	t.nodes[n].child = first

	keep := make([]int, 0, len(nd.items))
	for _, h := range nd.items {
		if c := t.childFor(n, t.entries[h].box); c >= 0 {
			t.nodes[c].items = append(t.nodes[c].items, h)
		} else {
			keep = append(keep, h)
		}
	}
	t.nodes[n].items = keep

	for c := first; c < first+4; c++ {
		t.maybeSplit(c)
	}
}

// Query returns every stored value whose hit box intersects r, in insertion order.
func (t *Tree[T]) Query(r Rect) []T {
	var handles []int
	t.visit(r, func(h int) bool {
		handles = append(handles, h)
		return true
	})
	slices.Sort(handles)

	out := make([]T, 0, len(handles))
	for _, h := range handles {
		out = append(out, t.entries[h].obj)
	}

	return out
}

// Collides reports whether any stored value intersects r.
func (t *Tree[T]) Collides(r Rect) bool {
	hit := false
	t.visit(r, func(int) bool {
		hit = true
		return false
	})

	return hit
}

// QueryOverlaps returns exactly those candidates whose hit box intersects r,
// preserving candidate order. Candidates need not have been inserted.
func (t *Tree[T]) QueryOverlaps(r Rect, candidates []T) []T {
	var out []T
	for _, c := range candidates {
		if c.HitBox().Intersects(r) {
			out = append(out, c)
		}
	}

	return out
}

// visit calls fn for each entry handle intersecting r until fn returns false.
func (t *Tree[T]) visit(r Rect, fn func(h int) bool) {
	if r.Empty() {
		return
	}
	for _, h := range t.overflow {
		if t.entries[h].box.Intersects(r) && !fn(h) {
			return
		}
	}

	stack := []int{0}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[n]
		if !nd.bounds.Intersects(r) {
			continue
		}
		for _, h := range nd.items {
			if t.entries[h].box.Intersects(r) && !fn(h) {
				return
			}
		}
		if nd.child >= 0 {
			stack = append(stack, nd.child, nd.child+1, nd.child+2, nd.child+3)
		}
	}
}

package quadtree

import "errors"

// Sentinel errors for quadtree construction.
var (
	// ErrEmptyBounds indicates the index extent has no area.
	ErrEmptyBounds = errors.New("quadtree: bounds must have positive width and height")
	// ErrInvalidCapacity indicates a node capacity below 1.
	ErrInvalidCapacity = errors.New("quadtree: capacity must be at least 1")
	// ErrInvalidDepth indicates a negative maximum depth.
	ErrInvalidDepth = errors.New("quadtree: max depth must be non-negative")
)

const (
	// DefaultCapacity is the number of values a leaf holds before it splits.
	DefaultCapacity = 8
	// DefaultMaxDepth bounds the subdivision depth below the root.
	DefaultMaxDepth = 8
)

// Rect is an axis-aligned rectangle covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int // top-left cell
	W, H int // extent in cells
}

// HitBoxer is anything that exposes a single axis-aligned bounding rectangle.
type HitBoxer interface {
	HitBox() Rect
}

// HitBox lets a bare Rect be stored in a Tree.
func (r Rect) HitBox() Rect {
	return r
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o share at least one cell.
// Edge-touching rectangles do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}

	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Options holds tunables for a Tree.
type Options struct {
	// Capacity is the number of values a leaf holds before splitting.
	Capacity int
	// MaxDepth is the deepest level a split may create (root is depth 0).
	MaxDepth int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Capacity=DefaultCapacity, MaxDepth=DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		MaxDepth: DefaultMaxDepth,
	}
}

// WithCapacity sets the leaf capacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// WithMaxDepth sets the maximum subdivision depth.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// node is one arena slot. child is the handle of the first of four
// consecutive children (NW, NE, SW, SE), or -1 for a leaf.
type node struct {
	bounds Rect
	items  []int
	child  int
	depth  int
}

// entry is a stored value with its hit box captured at insertion time.
type entry[T HitBoxer] struct {
	box Rect
	obj T
}

// Tree indexes values of type T by their hit boxes.
type Tree[T HitBoxer] struct {
	bounds   Rect
	opts     Options
	nodes    []node
	entries  []entry[T]
	overflow []int
}

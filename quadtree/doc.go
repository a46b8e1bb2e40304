// Package quadtree is a region-partitioning index over axis-aligned integer rectangles.
//
// What:
//
//   - Tree[T] stores any value exposing a hit box (HitBoxer) over a bounded extent.
//   - Query returns every stored value whose hit box intersects a rectangle.
//   - QueryOverlaps filters an explicit candidate list with the same overlap test.
//
// Why:
//
//   - Room placement: reject a proposed room that overlaps an accepted one.
//   - Runtime collision: broad-phase lookups for entities and items on a tile map.
//
// Overlap convention:
//
//	Rectangles are half-open: Rect{X, Y, W, H} covers [X, X+W) × [Y, Y+H).
//	Two rectangles intersect iff both interval pairs share at least one cell,
//	so rectangles that merely touch along an edge do NOT intersect.
//	Empty rectangles (W <= 0 or H <= 0) intersect nothing.
//
// Layout:
//
//	Nodes live in a flat arena and address their four children by handle
//	(index of the first child), never by pointer. A leaf that holds more than
//	Capacity values splits into quadrants while its depth is below MaxDepth.
//	A value stays in the deepest node whose bounds fully contain its hit box.
//	Values whose hit box leaves the root bounds go to an overflow list that is
//	scanned linearly, so out-of-bounds use is slower but never wrong.
//
// Complexity:
//
//   - Insert: O(depth) amortized, plus O(Capacity) on a split.
//   - Query:  O(depth + k) for well-distributed input, O(n) worst case.
//
// Errors:
//
//   - ErrEmptyBounds:     New called with an empty bounds rectangle.
//   - ErrInvalidCapacity: Capacity < 1.
//   - ErrInvalidDepth:    MaxDepth < 0.
//
// A Tree is not safe for concurrent mutation.
package quadtree

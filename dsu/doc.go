// Package dsu provides a fixed-size disjoint-set (union-find) over integer labels.
//
// What:
//
//   - New(n) creates n singleton components labeled 0..n-1.
//   - Find returns the representative of a label's component.
//   - Union merges two components; a no-op when they are already joined.
//
// Why:
//
//   - Spanning-tree construction: decide in near O(1) whether an edge would close a cycle.
//   - Region merging: track which dungeon regions are already reachable from each other.
//
// Representation:
//
//	parent []int and rank []int, indexed by label. No pointers, no maps, no recursion.
//	Find applies path halving (every visited node is re-pointed to its grandparent);
//	Union attaches the lower-rank root under the higher-rank root.
//
// Complexity:
//
//   - New:   O(n) time, O(n) memory.
//   - Find:  O(α(n)) amortized.
//   - Union: O(α(n)) amortized.
//
// Errors:
//
//   - ErrNegativeSize: New called with n < 0.
//   - ErrOutOfRange:   a label outside [0, n).
//
// A DisjointSet is not safe for concurrent use; Find mutates parent links.
package dsu

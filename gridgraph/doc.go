// Package gridgraph treats a 2D region grid as a graph of passable cells,
// enabling component analysis, dead-end census and shortest walks.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassableThreshold.
//   - Identifies connected components of cells with value ≥ PassableThreshold.
//   - Lists dead ends: passable interior cells with three or more blocked 4-neighbors.
//   - Counts cells per region id and finds shortest 4- or 8-connected walks.
//
// Why:
//
//   - Dungeon validation: one component means every room is reachable.
//   - Layout statistics: region sizes, leftover dead ends, corridor lengths.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - DeadEnds:            O(W×H), Memory: O(k) for k results.
//   - ShortestPath:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.PassableThreshold: minimum value considered passable (default 0,
//     so region ids ≥ 0 are floor and -1 is wall).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellIndex: a cell index outside the grid.
//   - ErrBlockedCell: a walk endpoint is not passable.
//   - ErrNoPath: no passable walk exists between two cells.
package gridgraph

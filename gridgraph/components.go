package gridgraph

import "github.com/zyedidia/generic/queue"

// ConnectedComponents finds all contiguous regions of passable cells
// (CellValues[y][x] ≥ PassableThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue // wall
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			seen[i0] = true
			comps = append(comps, gg.flood(i0, seen))
		}
	}

	return comps
}

// flood collects every passable cell reachable from start, marking seen.
func (gg *GridGraph) flood(start int, seen []bool) []int {
	var comp []int
	q := queue.New[int]()
	q.Enqueue(start)
	for !q.Empty() {
		u := q.Dequeue()
		comp = append(comp, u)
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.Passable(vx, vy) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				q.Enqueue(vi)
			}
		}
	}

	return comp
}

// RegionCells counts passable cells per distinct cell value.
// Complexity: O(W·H).
func (gg *GridGraph) RegionCells() map[int]int {
	counts := make(map[int]int)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Passable(x, y) {
				counts[gg.CellValues[y][x]]++
			}
		}
	}

	return counts
}

// DeadEnds returns the row-major indices of passable interior cells that have
// three or four impassable orthogonal neighbors. Border cells are never reported.
// Complexity: O(W·H).
func (gg *GridGraph) DeadEnds() []int {
	var out []int
	for y := 1; y < gg.Height-1; y++ {
		for x := 1; x < gg.Width-1; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			walls := 0
			for _, d := range orthogonal {
				if !gg.Passable(x+d[0], y+d[1]) {
					walls++
				}
			}
			if walls >= 3 {
				out = append(out, gg.Index(x, y))
			}
		}
	}

	return out
}

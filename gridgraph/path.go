package gridgraph

import (
	"fmt"

	"github.com/zyedidia/generic/queue"
)

// ShortestPath returns a minimum-step walk over passable cells from cell index
// from to cell index to, both ends included, using gg.Conn connectivity.
//
// Behavior:
//  1. Validate both indices (ErrCellIndex) and passability (ErrBlockedCell).
//  2. BFS from the source, recording predecessors.
//  3. Stop at the target and rebuild the walk; ErrNoPath if it is never reached.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ShortestPath(from, to int) ([]int, error) {
	n := gg.Width * gg.Height
	for _, i := range []int{from, to} {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d", ErrCellIndex, i)
		}
		if x, y := gg.Coordinate(i); !gg.Passable(x, y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, x, y)
		}
	}

	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	prev[from] = from
	q := queue.New[int]()
	q.Enqueue(from)
	for !q.Empty() && prev[to] < 0 {
		u := q.Dequeue()
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.Passable(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			if prev[v] < 0 {
				prev[v] = u
				q.Enqueue(v)
			}
		}
	}
	if prev[to] < 0 {
		return nil, ErrNoPath
	}

	var path []int
	for at := to; at != from; at = prev[at] {
		path = append(path, at)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

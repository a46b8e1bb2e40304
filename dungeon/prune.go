package dungeon

import "github.com/zyedidia/generic/queue"

// pruneDeadEnds fills every passable interior cell with three or more wall
// neighbors, cascading into its neighbors until none remain.
func (b *builder) pruneDeadEnds() error {
	q := queue.New[Point]()
	for y := 1; y < b.grid.height-1; y++ {
		for x := 1; x < b.grid.width-1; x++ {
			if b.grid.get(x, y) == Wall {
				continue
			}
			q.Enqueue(Point{X: x, Y: y})
			for !q.Empty() {
				p := q.Dequeue()
				if !b.grid.interior(p) || b.grid.get(p.X, p.Y) == Wall {
					continue
				}
				if b.grid.wallsAround(p) < 3 {
					continue
				}
				b.grid.set(p.X, p.Y, Wall)
				b.stats.PrunedCells++
				for _, d := range directions {
					q.Enqueue(Point{X: p.X + d.X, Y: p.Y + d.Y})
				}
			}
		}
	}

	return nil
}

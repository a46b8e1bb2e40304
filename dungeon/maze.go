package dungeon

import (
	"slices"

	"github.com/zyedidia/generic/stack"
)

// carveMazes seeds a maze at every unassigned lattice cell, row by row.
func (b *builder) carveMazes() error {
	for y := 1; y < b.grid.height-1; y += 2 {
		for x := 1; x < b.grid.width-1; x += 2 {
			if b.grid.get(x, y) == Wall {
				b.growMaze(Point{X: x, Y: y})
				b.stats.Mazes++
			}
		}
	}
	b.stats.Regions = b.stats.Rooms + b.stats.Mazes

	return nil
}

// growMaze runs the growing-tree walk from start under a new region id.
// Moves are two cells long so passages stay on the odd lattice; the skipped
// cell between two lattice cells is carved as well.
func (b *builder) growMaze(start Point) {
	id := b.nextRegion()
	b.grid.set(start.X, start.Y, id)

	st := stack.New[Point]()
	st.Push(start)
	last := -1
	open := make([]int, 0, len(directions))

	for st.Size() > 0 {
		cur := st.Peek()
		open = open[:0]
		for dir, d := range directions {
			t := Point{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y}
			if b.grid.interior(t) && b.grid.get(t.X, t.Y) == Wall {
				open = append(open, dir)
			}
		}

		if len(open) == 0 {
			st.Pop()
			last = -1
			continue
		}

		var next int
		if last >= 0 && slices.Contains(open, last) && b.rng.Intn(100) >= b.opts.DirectionChance {
			next = last
		} else {
			next = open[b.rng.Intn(len(open))]
		}
		d := directions[next]
		b.grid.set(cur.X+d.X, cur.Y+d.Y, id)
		b.grid.set(cur.X+2*d.X, cur.Y+2*d.Y, id)
		st.Push(Point{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y})
		last = next
	}
}

package dungeon

import (
	"fmt"
	"strings"
)

// Grid is a W×H array of region ids stored row-major. Wall (-1) is impassable.
// A Grid handed out by Generate is read-only.
type Grid struct {
	width, height int
	cells         []int
	connector     int // region id of carved connectors, Wall until assigned
}

// newGrid returns a grid with every cell set to Wall.
func newGrid(w, h int) *Grid {
	g := &Grid{
		width:     w,
		height:    h,
		cells:     make([]int, w*h),
		connector: Wall,
	}
	for i := range g.cells {
		g.cells[i] = Wall
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// ConnectorRegion returns the id used for carved connectors, or Wall if none was assigned.
func (g *Grid) ConnectorRegion() int { return g.connector }

// InBounds reports whether (x,y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the region id at (x,y).
// Returns ErrOutOfRange for coordinates outside the grid; it never clamps.
func (g *Grid) At(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return Wall, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, x, y, g.width, g.height)
	}

	return g.cells[y*g.width+x], nil
}

// Passable reports whether (x,y) holds a region id.
func (g *Grid) Passable(x, y int) (bool, error) {
	v, err := g.At(x, y)
	if err != nil {
		return false, err
	}

	return v != Wall, nil
}

// Rows returns a deep copy of the grid as [y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return rows
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]int, len(g.cells))
	copy(c.cells, g.cells)

	return &c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}

	return true
}

// PassableCount returns the number of non-wall cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, v := range g.cells {
		if v != Wall {
			n++
		}
	}

	return n
}

// String renders '#' for walls, '+' for connectors and '.' for other floor,
// one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			switch v := g.get(x, y); {
			case v == Wall:
				sb.WriteByte('#')
			case v == g.connector:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// get and set skip bounds checks; callers stay inside the grid.
func (g *Grid) get(x, y int) int {
	return g.cells[y*g.width+x]
}

func (g *Grid) set(x, y, v int) {
	g.cells[y*g.width+x] = v
}

// interior reports whether p is inside the grid and off the outer border.
func (g *Grid) interior(p Point) bool {
	return p.X > 0 && p.X < g.width-1 && p.Y > 0 && p.Y < g.height-1
}

// wallsAround counts orthogonal neighbors of an interior cell that are walls.
func (g *Grid) wallsAround(p Point) int {
	n := 0
	for _, d := range directions {
		if g.get(p.X+d.X, p.Y+d.Y) == Wall {
			n++
		}
	}

	return n
}

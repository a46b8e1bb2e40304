package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlgen/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{-1, 0}, {0, -1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D: %v", err)
	}
	grid[0][0] = 5
	if gg.CellValues[0][0] != -1 {
		t.Errorf("CellValues[0][0] = %d; want -1", gg.CellValues[0][0])
	}
}

// TestInBounds checks InBounds and Passable on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{-1, 0, -1},
		{1, -1, 2},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
		if gg.Passable(xy[0], xy[1]) {
			t.Errorf("Passable(%d,%d)=true outside grid", xy[0], xy[1])
		}
	}
	if !gg.Passable(1, 0) || gg.Passable(0, 0) {
		t.Errorf("Passable mismatch: (1,0)=%v (0,0)=%v", gg.Passable(1, 0), gg.Passable(0, 0))
	}
}

// TestCoordinate_RoundTrip checks Index and Coordinate agree.
func TestCoordinate_RoundTrip(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}}, gridgraph.Conn4)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			gx, gy := gg.Coordinate(gg.Index(x, y))
			if gx != x || gy != y {
				t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// ShortestPath Tests
//----------------------------------------------------------------------------//

// TestShortestPath_Corridor walks an L-shaped corridor.
//
//	# # # # #
//	# 0 0 0 #
//	# # # 0 #
//	# 1 1 1 #
//	# # # # #
func TestShortestPath_Corridor(t *testing.T) {
	w := -1
	grid := [][]int{
		{w, w, w, w, w},
		{w, 0, 0, 0, w},
		{w, w, w, 0, w},
		{w, 1, 1, 1, w},
		{w, w, w, w, w},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	path, err := gg.ShortestPath(gg.Index(1, 1), gg.Index(1, 3))
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if len(path) != 7 {
		t.Fatalf("len(path) = %d; want 7", len(path))
	}
	if path[0] != gg.Index(1, 1) || path[6] != gg.Index(1, 3) {
		t.Errorf("path endpoints = %d..%d", path[0], path[6])
	}
}

// TestShortestPath_Errors covers index, blocked and unreachable cases.
func TestShortestPath_Errors(t *testing.T) {
	grid := [][]int{
		{0, -1, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	if _, err := gg.ShortestPath(-1, 0); !errors.Is(err, gridgraph.ErrCellIndex) {
		t.Errorf("bad index: got %v; want ErrCellIndex", err)
	}
	if _, err := gg.ShortestPath(0, 1); !errors.Is(err, gridgraph.ErrBlockedCell) {
		t.Errorf("wall target: got %v; want ErrBlockedCell", err)
	}
	if _, err := gg.ShortestPath(0, 2); !errors.Is(err, gridgraph.ErrNoPath) {
		t.Errorf("split grid: got %v; want ErrNoPath", err)
	}
	path, err := gg.ShortestPath(2, 2)
	if err != nil || len(path) != 1 {
		t.Errorf("self path = %v, %v; want single cell", path, err)
	}
}

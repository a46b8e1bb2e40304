package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellIndex indicates a requested cell index is out of range.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
	// ErrBlockedCell indicates a walk endpoint is not passable.
	ErrBlockedCell = errors.New("gridgraph: cell is not passable")
	// ErrNoPath indicates no passable walk exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// PassableThreshold specifies the minimum cell value considered passable.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=0 (region ids are passable, -1 is wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 0,
		Conn:              Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int
	neighborOffsets   [][2]int
}

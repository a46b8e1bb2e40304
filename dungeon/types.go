package dungeon

import (
	"errors"

	"github.com/katalvlaran/lvlgen/quadtree"
)

// Sentinel errors for dungeon generation.
var (
	// ErrInvalidDimensions indicates a width or height that is even, below 3, or
	// a grid larger than MaxCells.
	ErrInvalidDimensions = errors.New("dungeon: width and height must be odd and at least 3")
	// ErrInvalidAttempts indicates a negative room attempt budget.
	ErrInvalidAttempts = errors.New("dungeon: room attempts must be non-negative")
	// ErrInvalidSizeModifier indicates a size modifier below 0 or above the larger grid side.
	ErrInvalidSizeModifier = errors.New("dungeon: size modifier must be within [0, max(width, height)]")
	// ErrInvalidChance indicates a percentage outside [0, 100].
	ErrInvalidChance = errors.New("dungeon: chance must be within [0, 100]")
	// ErrOutOfRange indicates a grid coordinate outside the grid.
	ErrOutOfRange = errors.New("dungeon: coordinate out of range")
	// ErrConfig indicates a configuration file that cannot be used.
	ErrConfig = errors.New("dungeon: invalid configuration")
)

// Wall marks an impassable cell.
const Wall = -1

// Reference tunables.
const (
	DefaultWidth            = 501
	DefaultHeight           = 501
	DefaultRoomAttempts     = 500
	DefaultSizeModifier     = 0
	DefaultDirectionChance  = 0
	DefaultConnectionChance = 30
)

// MaxCells bounds width·height so grid sizes never overflow int.
const MaxCells = 1 << 30

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// directions are N, E, S, W unit steps; indices double as direction ids.
var directions = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Connector is a wall cell bordering at least two distinct regions.
// A and B are the first two distinct ids found in N, E, S, W order.
type Connector struct {
	Cell Point `json:"cell"`
	A    int   `json:"a"`
	B    int   `json:"b"`
}

// Source supplies uniform integers in [0, n) for n > 0. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Phase identifies a generation phase.
type Phase int

const (
	PhaseRooms Phase = iota
	PhaseMazes
	PhaseConnect
	PhasePrune
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRooms:
		return "rooms"
	case PhaseMazes:
		return "mazes"
	case PhaseConnect:
		return "connect"
	case PhasePrune:
		return "prune"
	default:
		return "unknown"
	}
}

// Stats summarizes a generation run. Fields are filled as phases complete.
type Stats struct {
	Rooms              int `json:"rooms"`
	RejectedRooms      int `json:"rejected_rooms"`
	Mazes              int `json:"mazes"`
	Regions            int `json:"regions"`
	Connectors         int `json:"connectors"`
	SpanningConnectors int `json:"spanning_connectors"`
	ExtraConnectors    int `json:"extra_connectors"`
	PrunedCells        int `json:"pruned_cells"`
	PassableCells      int `json:"passable_cells"`
	Components         int `json:"components"`
	DeadEnds           int `json:"dead_ends"`
}

// PhaseReport is handed to the hook after each phase.
// Grid is a private copy; the hook may keep it.
type PhaseReport struct {
	Phase Phase
	Stats Stats
	Grid  *Grid
}

// Dungeon is a finished layout. The caller owns every field.
type Dungeon struct {
	Grid *Grid
	// Rooms are the accepted room rectangles in placement order; room i has region id i.
	Rooms []quadtree.Rect
	// MainRoom is an index into Rooms chosen during connection, or -1 without rooms.
	// Reserved: generation does not consult it.
	MainRoom int
	// Connectors lists every connector discovered during connection, in scan order.
	Connectors []Connector
	// ConnectorRegion is the id written into carved connector cells.
	ConnectorRegion int
	// Seed is the seed the run used; 0 when a custom Source was supplied.
	Seed  int64
	Stats Stats
}

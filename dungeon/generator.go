package dungeon

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlgen/gridgraph"
	"github.com/katalvlaran/lvlgen/quadtree"
)

// Generator produces dungeons from a fixed, validated configuration.
type Generator struct {
	opts Options
}

// New validates the options and returns a Generator.
// Returns ErrInvalidDimensions, ErrInvalidAttempts, ErrInvalidSizeModifier or
// ErrInvalidChance when a constraint is violated.
func New(opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Generator{opts: o}, nil
}

// Options returns the generator's configuration.
func (g *Generator) Options() Options {
	return g.opts
}

// builder is the working state of one Generate call.
type builder struct {
	ctx    context.Context
	opts   Options
	rng    Source
	grid   *Grid
	index  *quadtree.Tree[quadtree.Rect]
	rooms  []quadtree.Rect
	region int // last allocated region id
	stats  Stats

	mainRoom   int
	connectors []Connector
}

// Generate runs rooms → mazes → connect → prune on a fresh grid.
// ctx is checked before every phase and periodically during room placement;
// cancellation returns the context error.
func (g *Generator) Generate(ctx context.Context) (*Dungeon, error) {
	b := &builder{
		ctx:      ctx,
		opts:     g.opts,
		grid:     newGrid(g.opts.Width, g.opts.Height),
		region:   Wall,
		mainRoom: -1,
	}
	seed := g.opts.Seed
	if g.opts.Source != nil {
		b.rng = g.opts.Source
		seed = 0
	} else {
		if seed == 0 {
			seed = defaultSeed
		}
		b.rng = rngFromSeed(seed)
	}
	index, err := quadtree.New[quadtree.Rect](quadtree.Rect{W: g.opts.Width, H: g.opts.Height})
	if err != nil {
		return nil, fmt.Errorf("dungeon: room index: %w", err)
	}
	b.index = index

	phases := []struct {
		phase Phase
		run   func() error
	}{
		{PhaseRooms, b.placeRooms},
		{PhaseMazes, b.carveMazes},
		{PhaseConnect, b.connectRegions},
		{PhasePrune, b.pruneDeadEnds},
	}
	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dungeon: before %s: %w", p.phase, err)
		}
		if err := p.run(); err != nil {
			return nil, fmt.Errorf("dungeon: %s: %w", p.phase, err)
		}
		if g.opts.Hook != nil {
			g.opts.Hook(PhaseReport{Phase: p.phase, Stats: b.stats, Grid: b.grid.Clone()})
		}
	}

	if err := b.analyze(); err != nil {
		return nil, err
	}

	return &Dungeon{
		Grid:            b.grid,
		Rooms:           b.rooms,
		MainRoom:        b.mainRoom,
		Connectors:      b.connectors,
		ConnectorRegion: b.grid.connector,
		Seed:            seed,
		Stats:           b.stats,
	}, nil
}

// nextRegion allocates a fresh region id.
func (b *builder) nextRegion() int {
	b.region++

	return b.region
}

// analyze fills the passability statistics of the finished grid.
func (b *builder) analyze() error {
	gg, err := gridgraph.NewGridGraph(b.grid.Rows(), gridgraph.DefaultGridOptions())
	if err != nil {
		return fmt.Errorf("dungeon: analyze: %w", err)
	}
	b.stats.PassableCells = b.grid.PassableCount()
	b.stats.Components = len(gg.ConnectedComponents())
	b.stats.DeadEnds = len(gg.DeadEnds())

	return nil
}

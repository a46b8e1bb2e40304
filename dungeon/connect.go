package dungeon

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/dsu"
	"github.com/zyedidia/generic/mapset"
)

// connectRegions opens a spanning set of connectors so every region is reachable,
// then opens each remaining connector with probability ConnectionChance/100.
func (b *builder) connectRegions() error {
	regions := b.region + 1
	b.grid.connector = b.nextRegion()
	b.connectors = b.findConnectors()
	b.stats.Connectors = len(b.connectors)

	if len(b.rooms) > 0 {
		b.mainRoom = b.rng.Intn(len(b.rooms))
	}

	sets, err := dsu.New(regions)
	if err != nil {
		return fmt.Errorf("region sets: %w", err)
	}
	for _, c := range b.connectors {
		joined, err := sets.Union(c.A, c.B)
		if err != nil {
			return fmt.Errorf("connector %v: %w", c.Cell, err)
		}
		if joined {
			b.grid.set(c.Cell.X, c.Cell.Y, b.grid.connector)
			b.stats.SpanningConnectors++
		}
	}

	// Carving changes neighborhoods; a connector survives only while it is
	// still a wall between two distinct regions.
	for _, c := range b.connectors {
		if b.grid.get(c.Cell.X, c.Cell.Y) != Wall {
			continue
		}
		if _, ok := b.connectorAt(c.Cell); !ok {
			continue
		}
		if b.rng.Intn(100) < b.opts.ConnectionChance {
			b.grid.set(c.Cell.X, c.Cell.Y, b.grid.connector)
			b.stats.ExtraConnectors++
		}
	}

	return nil
}

// findConnectors scans interior walls row-major and returns those bordering
// at least two distinct regions.
func (b *builder) findConnectors() []Connector {
	var out []Connector
	for y := 1; y < b.grid.height-1; y++ {
		for x := 1; x < b.grid.width-1; x++ {
			if b.grid.get(x, y) != Wall {
				continue
			}
			if c, ok := b.connectorAt(Point{X: x, Y: y}); ok {
				out = append(out, c)
			}
		}
	}

	return out
}

// connectorAt collects the distinct non-wall ids around p in N, E, S, W order.
func (b *builder) connectorAt(p Point) (Connector, bool) {
	ids := make([]int, 0, len(directions))
	for _, d := range directions {
		if v := b.grid.get(p.X+d.X, p.Y+d.Y); v != Wall {
			ids = append(ids, v)
		}
	}
	if len(ids) < 2 {
		return Connector{}, false
	}

	seen := mapset.New[int]()
	order := ids[:0]
	for _, v := range ids {
		if !seen.Has(v) {
			seen.Put(v)
			order = append(order, v)
		}
	}
	if seen.Size() < 2 {
		return Connector{}, false
	}

	return Connector{Cell: p, A: order[0], B: order[1]}, true
}

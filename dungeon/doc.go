// Package dungeon generates room-and-maze dungeon layouts over an odd-sized region grid.
//
// Pipeline (strictly ordered, each phase reads what the previous one left):
//
//  1. Rooms:   up to RoomAttempts random odd-sized, odd-aligned rectangles;
//     a proposal is kept only if the spatial index reports no overlap.
//  2. Mazes:   every still-unassigned odd/odd lattice cell seeds a growing-tree
//     maze (LIFO stack, 2-cell steps) with its own region id.
//  3. Connect: wall cells touching two distinct regions become connectors;
//     a union-find over region ids picks a spanning set in scan order, then
//     each remaining connector is opened with ConnectionChance percent.
//  4. Prune:   passable cells with three or more wall neighbors are filled,
//     cascading until no dead end remains.
//
// Output:
//
//	A *Dungeon whose Grid holds -1 (Wall) for impassable cells and a region id
//	(≥ 0) otherwise; the highest id marks carved connectors. The grid exposes no
//	mutators: regenerating means calling Generate again.
//
// Determinism:
//
//	Same seed + same options ⇒ identical grid. Seed 0 maps to a fixed default seed.
//	A custom Source (WithSource) is consumed across calls and is not goroutine-safe;
//	seed-based generators may be shared between goroutines.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrInvalidAttempts, ErrInvalidSizeModifier,
//     ErrInvalidChance: rejected options.
//   - ErrOutOfRange: grid access outside the grid.
//   - ErrConfig: a configuration file that cannot be read or parsed.
//
// Zero accepted rooms is not an error: the dungeon is then all maze. Callers that
// need a minimum room count check len(Dungeon.Rooms) and retry with another seed.
package dungeon

// Package lvlgen generates rooms-and-mazes dungeons: rectangular rooms scattered
// over an odd-sized grid, the gaps filled with winding corridors, every region
// joined through doors, and dead ends filled back in.
//
// 🚀 What is inside?
//
//	dsu/       disjoint-set (union-find) over integer labels
//	quadtree/  generic spatial index for axis-aligned rectangles
//	dungeon/   the generator: rooms → mazes → connect → prune
//	gridgraph/ region-grid analysis: components, dead ends, shortest walks
//	server/    HTTP + WebSocket API over the generator
//	mcptool/   Model Context Protocol tool "generate_dungeon"
//	cmd/lvlgen CLI: generate, serve, mcp
//
// ✨ Guarantees
//
//   - Deterministic – same seed and options, same grid
//   - Connected – every floor cell reaches every other
//   - No dead ends – no floor cell is walled on three sides
//   - No singletons – each Generate call owns its grid and index
//
// Quick ASCII example (11×9: one room, one corridor loop, '+' marks doors):
//
//	###########
//	#.........#
//	#.#######.#
//	#.#.....#.#
//	#.+.....+.#
//	#.#.....#.#
//	#.#######.#
//	#.........#
//	###########
//
// Grid.Rows() yields region ids as [][]int with -1 for walls; render it however you like.
//
//	go get github.com/katalvlaran/lvlgen
package lvlgen

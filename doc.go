// Package tilepath is a small engine for grid games: shortest paths,
// distance fields and line of sight over any tile map, without allocating.
//
// 🚀 What is tilepath?
//
//	Three algorithms that never own your map:
//		• A* shortest path (astar) over a caller workspace
//		• Multi-source flood fill / Dijkstra maps (flood)
//		• Field of view by ray casting (fov)
//
//	The map describes itself through small capability interfaces (tilemap):
//	passability, distance and score storage, route and visibility marks.
//	The engine reads and writes only through them, so the same code runs on
//	a dense array, a hash set, or a chunked world of polygon obstacles.
//
// ✨ Why choose tilepath?
//
//   - Zero allocations – every queue lives in a caller-owned Workspace
//   - Bounded – a too-small workspace is reported, never grown
//   - Pluggable – bring your own storage or use one of the backends
//
// Layout:
//
//	tilemap/   Point, Direction table, capability interfaces, Workspace
//	openset/   bounded binary heap over a Workspace
//	astar/     A* shortest path
//	flood/     multi-source flood fill, flow-field steps
//	fov/       field-of-view raycaster
//	grid/      dense array backend, regions, ASCII parsing
//	sparse/    hash-set backend for scattered open tiles
//	world/     chunked backend with R-tree indexed polygon obstacles
//	cave/      cave generator for demos and benchmarks
//	cmd/       cavewalk (terminal demo) and gridbench (batch runner)
//
// Quick ASCII example:
//
//	#######
//	#@..#.#
//	#.#.#.#
//	#.#...#
//	#######
//
//	grid.Parse + astar.ShortestPath mark the route; fov.FieldOfView marks
//	what '@' can see.
//
//	go get github.com/katalvlaran/tilepath
package tilepath

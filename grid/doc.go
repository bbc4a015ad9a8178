// Package grid is the dense array backend for the tilepath algorithms.
//
// What:
//
//   - Grid owns a rectangular W×H tile array plus every per-tile scratch
//     channel the algorithms need: distance, heuristic, gradient, path mark
//     and visibility. It implements tilemap.Map.
//   - Cells with value ≥ GridOptions.WallThreshold are walls: impassable and
//     opaque.
//   - GridOptions.Move restricts movement to 8-way, 4-way (no diagonal
//     arrivals) or bishop (diagonal arrivals only).
//   - Regions reports connected passable areas under the same movement rule.
//
// Bounds:
//
//   - Passable and MarkVisible answer false outside the grid, so searches
//     and rays may reach past the edge: the void is solid.
//   - Every other operation panics with tilemap.ErrOutOfBounds for a
//     coordinate outside the grid. The algorithms only touch scores of tiles
//     they have proven passable, so such a panic is a caller bug.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrTooLarge: a dimension does not fit a 16-bit coordinate.
//
// A Grid is not safe for concurrent use; give each goroutine its own.
package grid

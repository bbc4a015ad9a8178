// Package world is a chunked backend for large maps whose terrain is
// described by polygons rather than by a tile array.
//
// What:
//
//   - World covers an inclusive tile rectangle. Obstacles are orb.Polygons
//     in tile space, indexed by an R-tree; a tile is blocked when its centre
//     lies inside (or on the edge of) any obstacle. Blocked tiles are opaque.
//   - Per-tile scratch lives in 32×32 chunks allocated on first touch, so
//     memory follows the area the algorithms actually explore.
//   - Distances, route marks and visibility are stamped with a generation
//     counter: ClearDistance, ResetMarks and ResetVisible are O(1).
//
// Bounds:
//
//   - Passable and MarkVisible answer false outside the rectangle.
//   - Score operations outside the rectangle panic with
//     tilemap.ErrOutOfBounds.
//
// Errors:
//
//   - ErrEmptyBounds: the rectangle has no tiles.
//   - ErrBadObstacle: a polygon without an outer ring of at least 3 points.
package world

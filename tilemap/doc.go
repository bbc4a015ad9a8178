// Package tilemap defines the capability contract between the tilepath
// algorithms and a caller-owned tile grid.
//
// What:
//
//   - Point: a pair of signed 16-bit tile coordinates (negative allowed).
//   - Direction: the 8 unit steps, clockwise from north (0) to north-west (7),
//     decoded by a single packed lookup table. d.Inverse() is (d+4) mod 8.
//   - PathMap, FloodMap, SightMap: narrow capability interfaces, one method
//     per grid operation, each with its own precisely typed parameter.
//   - Workspace: caller-owned scratch of Point slots, the only memory an
//     algorithm may use besides the map itself.
//
// Why:
//
//   - The algorithms never own map data. Every tile query and every per-tile
//     score (distance, heuristic, gradient) goes through the interface, so a
//     dense array, a hashed sparse map and a chunked world all plug in alike.
//   - A fixed Workspace bounds memory. An undersized workspace is the
//     documented way to cap search cost: the algorithm reports
//     ErrOutOfWorkspace instead of expanding further.
//
// Contract notes:
//
//   - Passable receives the arrival direction: the direction pointing back to
//     the tile the mover comes from. Rejecting diagonal arrivals yields strict
//     4-way movement; rejecting orthogonal ones yields bishop movement.
//   - ClearDistance resets every tile to Unreached (-1).
//   - MarkShortest must return the gradient stored by the last SetGradient
//     for that tile. Path reconstruction walks the gradient chain through
//     this return value; an implementation that breaks it corrupts the walk
//     (the walk is bounded, see package astar).
//   - MarkVisible returns true iff the tile is transparent.
//
// Errors:
//
//   - ErrOutOfWorkspace: a heap or queue ran out of Workspace slots.
//   - ErrNoPath: the goal is unreachable.
//   - ErrCorruptRoute: a gradient chain did not lead back to its origin.
//   - ErrOutOfBounds: a backend received a coordinate outside its map.
package tilemap

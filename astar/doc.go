// Package astar finds a shortest 8-directional unit-cost route between two
// tiles of a caller-owned map.
//
// ShortestPath works entirely through tilemap.PathMap and a caller-supplied
// tilemap.Workspace. It allocates nothing: per-tile scores live in the map,
// the open set lives in the Workspace.
//
// Algorithm:
//
//  1. ClearDistance; start gets distance 0, heuristic Chebyshev(start, goal)
//     and gradient NoDirection; start is pushed.
//  2. Pop the lowest heuristic. If it is the goal, stop. Otherwise, for each
//     of the 8 directions d, ask Passable(neighbor, d.Inverse()). A passable
//     neighbor whose stored distance is Unreached or larger than the current
//     distance + 1 gets the better distance, heuristic = distance + Chebyshev
//     to goal, gradient d.Inverse(), and is pushed.
//  3. An empty open set means no path; a failed push means the Workspace is
//     exhausted.
//  4. On success the route is delivered goal-first through MarkShortest,
//     following the gradient each call returns, until start is marked.
//
// Outcomes:
//
//   - (length, nil) with length ≥ 0 on success.
//   - (NoPath, tilemap.ErrNoPath) when the goal is unreachable.
//   - (OutOfWorkspace, tilemap.ErrOutOfWorkspace) when the open set filled up.
//   - (CorruptRoute, tilemap.ErrCorruptRoute) when the gradient chain did not
//     return to start within Distance(goal) steps (a broken MarkShortest).
//
// Complexity:
//
//   - Time:  O(T log W) for T expanded tiles and W Workspace slots.
//   - Space: the Workspace; nothing else.
package astar

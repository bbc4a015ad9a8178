// Package flood builds Dijkstra maps: per-tile step distances from one or
// more seed tiles, computed by breadth-first flooding.
//
// What:
//
//   - Seed appends a seed to a tilemap.Workspace and returns the new head.
//   - Flood treats the Workspace as a circular queue holding the seeds in
//     ws[:head], sets each seed to distance 0, then expands 8-directionally,
//     giving every newly reached passable tile its parent's distance + 1.
//   - Descend and Ascend read the result back as a flow field: one step
//     toward the nearest seed, or one step away from it.
//
// Why:
//
//   - Distances alone define a navigable field: every reached non-seed tile
//     has a neighbor exactly one step closer. No back-pointers are needed,
//     but a map that also implements tilemap.Router receives them.
//   - An undersized Workspace gives a local fill: Flood stops with
//     tilemap.ErrOutOfWorkspace and every tile dequeued so far keeps a
//     correct distance.
//
// Errors:
//
//   - tilemap.ErrOutOfWorkspace: the queue would overwrite an unconsumed entry.
//   - ErrBadHead: head is negative or beyond the Workspace.
//
// Complexity: O(T) tiles visited, 8 Passable calls each; no allocation.
package flood

// Package openset implements the bounded binary min-heap used as the A*
// open set.
//
// The heap is a pure index structure: it stores Points in a caller-supplied
// tilemap.Workspace and fetches the ordering key from a tilemap.Scorer on
// every comparison. It never caches keys and never allocates.
//
// Because keys live in the map, a lowered key would break the heap order
// where the Point sits. Push therefore looks for a queued copy first and
// sifts that slot up, so a Point is never queued twice and a heap of n
// slots never holds more than n distinct tiles.
//
// Capacity is the Workspace length. Push on a full heap fails with
// tilemap.ErrOutOfWorkspace and leaves the heap untouched; this is how a
// caller imposes a hard memory ceiling on a search.
//
// Complexity:
//
//   - Push: O(n) scan for a queued copy, then O(log n) comparisons.
//   - Pop:  O(log n) comparisons, up to three Heuristic calls per level.
//   - Memory: none beyond the Workspace.
package openset

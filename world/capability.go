package world

import "github.com/katalvlaran/tilepath/tilemap"

// Passable reports whether p is inside the world and not blocked.
func (w *World) Passable(p tilemap.Point, _ tilemap.Direction) bool {
	return !w.Blocked(p)
}

// ClearDistance starts a new distance generation.
func (w *World) ClearDistance() {
	w.distEpoch++
	if w.distEpoch == 0 {
		for _, c := range w.chunks {
			clear(c.distEpoch[:])
		}
		w.distEpoch = 1
	}
}

// SetDistance stores d for p.
func (w *World) SetDistance(p tilemap.Point, d int32) {
	c, i := w.mustSlot(p)
	c.distEpoch[i] = w.distEpoch
	c.distance[i] = d
}

// Distance returns p's distance in the current generation, or Unreached.
func (w *World) Distance(p tilemap.Point) int32 {
	w.check(p)
	c, i := w.peek(p)
	if c == nil || c.distEpoch[i] != w.distEpoch {
		return tilemap.Unreached
	}
	return c.distance[i]
}

// SetHeuristic stores the heap key of p.
func (w *World) SetHeuristic(p tilemap.Point, f int32) {
	c, i := w.mustSlot(p)
	c.heuristic[i] = f
}

// Heuristic returns the heap key of p.
func (w *World) Heuristic(p tilemap.Point) int32 {
	c, i := w.mustSlot(p)
	return c.heuristic[i]
}

// SetGradient stores the back-pointer of p.
func (w *World) SetGradient(p tilemap.Point, d tilemap.Direction) {
	c, i := w.mustSlot(p)
	c.gradient[i] = d
}

// MarkShortest records p on the current route and returns its gradient.
func (w *World) MarkShortest(p tilemap.Point, fromGoal int32) tilemap.Direction {
	c, i := w.mustSlot(p)
	c.routeEpoch[i] = w.routeEpoch
	c.route[i] = fromGoal
	return c.gradient[i]
}

// MarkVisible records p as seen and reports whether it is transparent.
// Tiles outside the world are opaque and not recorded.
func (w *World) MarkVisible(p tilemap.Point) bool {
	if !w.InBounds(p) {
		return false
	}
	c, i := w.slot(p)
	c.sightEpoch[i] = w.sightEpoch
	return !w.blocked(c, i, p)
}

package tilemap

// Unreached is the distance every tile holds after ClearDistance.
// Algorithms treat it as "no value yet": infinitely far for A*,
// not yet enqueued for the flood.
const Unreached int32 = -1

// Passer answers passability queries.
type Passer interface {
	// Passable reports whether p may be entered when arriving from the
	// neighbor in direction from (relative to p). It is the only method an
	// algorithm calls on tiles it has not proven valid, so implementations
	// usually answer false outside the map instead of failing.
	Passable(p Point, from Direction) bool
}

// Scorer exposes the heap ordering key of a tile.
type Scorer interface {
	// Heuristic returns the value last stored by SetHeuristic for p.
	Heuristic(p Point) int32
}

// Distancer stores the per-tile cost-so-far.
type Distancer interface {
	// ClearDistance resets every tile's distance to Unreached.
	ClearDistance()
	// SetDistance stores d as p's distance.
	SetDistance(p Point, d int32)
	// Distance returns p's stored distance, or Unreached.
	Distance(p Point) int32
}

// Router stores gradients: back-pointers toward a route's origin.
type Router interface {
	// SetGradient stores d (or NoDirection) as p's gradient.
	SetGradient(p Point, d Direction)
}

// PathMap is everything package astar needs.
type PathMap interface {
	Passer
	Scorer
	Distancer
	Router

	// SetHeuristic stores the combined score (distance + estimate) of p.
	SetHeuristic(p Point, f int32)

	// MarkShortest records that p lies on the shortest path, fromGoal steps
	// away from the goal. It must return the gradient previously stored for p
	// by SetGradient; reconstruction follows that value to the next tile.
	MarkShortest(p Point, fromGoal int32) Direction
}

// FloodMap is everything package flood needs. A FloodMap that also
// implements Router receives gradients toward the nearest seed.
type FloodMap interface {
	Passer
	Distancer
}

// SightMap is everything package fov needs.
type SightMap interface {
	// MarkVisible flags p as visible and reports whether it is transparent.
	// An opaque tile is marked but ends the ray that reached it.
	MarkVisible(p Point) bool
}

// Map is a backend that supports every tilepath algorithm.
type Map interface {
	PathMap
	SightMap
}

package grid

import "github.com/katalvlaran/tilepath/tilemap"

var _ tilemap.Map = (*Grid)(nil)

// Passable reports whether p is an in-bounds floor tile and the movement
// rule accepts an arrival from direction from.
func (g *Grid) Passable(p tilemap.Point, from tilemap.Direction) bool {
	if !g.InBounds(p) || g.wall[g.index(int(p.X), int(p.Y))] {
		return false
	}
	return g.Move.Allows(from)
}

// ClearDistance resets every distance to tilemap.Unreached.
func (g *Grid) ClearDistance() {
	for i := range g.distance {
		g.distance[i] = tilemap.Unreached
	}
}

// SetDistance stores d for p.
func (g *Grid) SetDistance(p tilemap.Point, d int32) {
	g.distance[g.at(p)] = d
}

// Distance returns the stored distance of p.
func (g *Grid) Distance(p tilemap.Point) int32 {
	return g.distance[g.at(p)]
}

// SetHeuristic stores the heap key of p.
func (g *Grid) SetHeuristic(p tilemap.Point, f int32) {
	g.heuristic[g.at(p)] = f
}

// Heuristic returns the heap key of p.
func (g *Grid) Heuristic(p tilemap.Point) int32 {
	return g.heuristic[g.at(p)]
}

// SetGradient stores the back-pointer of p.
func (g *Grid) SetGradient(p tilemap.Point, d tilemap.Direction) {
	g.gradient[g.at(p)] = d
}

// MarkShortest flags p as lying fromGoal steps from the goal on the last
// route and returns its gradient.
func (g *Grid) MarkShortest(p tilemap.Point, fromGoal int32) tilemap.Direction {
	i := g.at(p)
	g.path[i] = fromGoal
	return g.gradient[i]
}

// MarkVisible flags p as visible and reports whether it is transparent.
// Tiles outside the grid are opaque and are not recorded.
func (g *Grid) MarkVisible(p tilemap.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	i := g.index(int(p.X), int(p.Y))
	g.visible[i] = true
	return !g.wall[i]
}

package grid

import "github.com/katalvlaran/tilepath/tilemap"

// Gradient returns the stored back-pointer of p.
func (g *Grid) Gradient(p tilemap.Point) tilemap.Direction {
	return g.gradient[g.at(p)]
}

// Visible reports whether p was marked by the last field-of-view pass.
func (g *Grid) Visible(p tilemap.Point) bool {
	return g.InBounds(p) && g.visible[g.at(p)]
}

// OnPath reports whether p lies on the last reconstructed route.
func (g *Grid) OnPath(p tilemap.Point) bool {
	return g.InBounds(p) && g.path[g.at(p)] >= 0
}

// PathIndex returns the number of steps from the goal at which p was
// marked, or -1 if p is not on the route.
func (g *Grid) PathIndex(p tilemap.Point) int32 {
	return g.path[g.at(p)]
}

// ResetMarks clears route marks. Call it before a new search when the
// previous route should not be drawn.
func (g *Grid) ResetMarks() {
	for i := range g.path {
		g.path[i] = -1
	}
}

// ResetVisible clears every visibility mark.
func (g *Grid) ResetVisible() {
	clear(g.visible)
}

// Route returns the marked route goal first: Route()[k] is the tile marked
// k steps from the goal. It returns nil when nothing is marked.
// Complexity: O(W×H).
func (g *Grid) Route() []tilemap.Point {
	n := int32(-1)
	for _, k := range g.path {
		n = max(n, k)
	}
	if n < 0 {
		return nil
	}
	route := make([]tilemap.Point, n+1)
	for i, k := range g.path {
		if k >= 0 {
			route[k] = g.Point(i)
		}
	}
	return route
}

// VisibleCount returns the number of tiles currently marked visible.
func (g *Grid) VisibleCount() int {
	n := 0
	for _, v := range g.visible {
		if v {
			n++
		}
	}
	return n
}

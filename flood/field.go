package flood

import "github.com/katalvlaran/tilepath/tilemap"

// Descend returns the direction of a passable neighbor exactly one step
// closer to a seed than p. It reports false when p is a seed, was never
// reached, or has no such neighbor. Neighbors are tried in Direction order.
func Descend(m tilemap.FloodMap, p tilemap.Point) (tilemap.Direction, bool) {
	here := m.Distance(p)
	if here <= 0 {
		return tilemap.NoDirection, false
	}
	for _, d := range tilemap.Directions {
		n, ok := p.Neighbor(d)
		if ok && m.Passable(n, d.Inverse()) && m.Distance(n) == here-1 {
			return d, true
		}
	}
	return tilemap.NoDirection, false
}

// Ascend returns the direction of the passable, reached neighbor farthest
// from every seed, provided it is farther than p. It reports false at a
// local maximum or when p was never reached.
func Ascend(m tilemap.FloodMap, p tilemap.Point) (tilemap.Direction, bool) {
	best := m.Distance(p)
	if best == tilemap.Unreached {
		return tilemap.NoDirection, false
	}
	dir := tilemap.NoDirection
	for _, d := range tilemap.Directions {
		n, ok := p.Neighbor(d)
		if !ok || !m.Passable(n, d.Inverse()) {
			continue
		}
		if dist := m.Distance(n); dist > best {
			best, dir = dist, d
		}
	}
	return dir, dir != tilemap.NoDirection
}

package grid

import "github.com/katalvlaran/tilepath/tilemap"

// Regions finds all connected areas of floor tiles under g.Move.
// Returns a slice of regions; each region lists its Points in breadth-first
// order from its lowest row-major tile. Regions appear in row-major order of
// their first tile.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]tilemap.Point {
	seen := make([]bool, g.Tiles())
	var regions [][]tilemap.Point

	for i0, w := range g.wall {
		if w || seen[i0] {
			continue
		}
		// BFS to collect region
		seen[i0] = true
		region := []tilemap.Point{g.Point(i0)}
		for qi := 0; qi < len(region); qi++ {
			u := region[qi]
			for _, d := range tilemap.Directions {
				v := u.Add(d)
				if !g.Passable(v, d.Inverse()) {
					continue
				}
				vi := g.at(v)
				if !seen[vi] {
					seen[vi] = true
					region = append(region, v)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// RegionOf returns the index into Regions() of the region containing p,
// or -1 when p is a wall or out of bounds.
func (g *Grid) RegionOf(p tilemap.Point) int {
	if g.Wall(p) {
		return -1
	}
	for i, r := range g.Regions() {
		for _, q := range r {
			if q == p {
				return i
			}
		}
	}
	return -1
}

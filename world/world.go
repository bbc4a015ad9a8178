package world

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/tilepath/tilemap"
)

var _ tilemap.Map = (*World)(nil)

// World is a chunked, polygon-obstacle tile map. Not safe for concurrent use.
type World struct {
	min, max tilemap.Point
	bound    orb.Bound
	tree     *rtreego.Rtree
	chunks   map[chunkKey]*chunk

	distEpoch  uint32
	routeEpoch uint32
	sightEpoch uint32
}

// New returns an obstacle-free World covering tiles lo..hi inclusive.
func New(lo, hi tilemap.Point) (*World, error) {
	if hi.X < lo.X || hi.Y < lo.Y {
		return nil, fmt.Errorf("%w: %v..%v", ErrEmptyBounds, lo, hi)
	}
	return &World{
		min: lo,
		max: hi,
		bound: orb.Bound{
			Min: orb.Point{float64(lo.X), float64(lo.Y)},
			Max: orb.Point{float64(hi.X) + 1, float64(hi.Y) + 1},
		},
		tree:       rtreego.NewTree(2, 25, 50),
		chunks:     make(map[chunkKey]*chunk),
		distEpoch:  1,
		routeEpoch: 1,
		sightEpoch: 1,
	}, nil
}

// AddObstacle blocks every tile whose centre lies in poly.
// Coordinates are in tile units: tile (x,y) spans [x,x+1)×[y,y+1).
func (w *World) AddObstacle(poly orb.Polygon) error {
	if len(poly) == 0 || len(poly[0]) < 3 {
		return ErrBadObstacle
	}
	b := poly.Bound()
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{b.Min[0], b.Min[1]},
		rtreego.Point{max(b.Max[0], b.Min[0]+1e-9), max(b.Max[1], b.Min[1]+1e-9)},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadObstacle, err)
	}
	w.tree.Insert(&obstacle{poly: poly, bbox: rect})
	for _, c := range w.chunks {
		clear(c.terrain[:])
	}
	return nil
}

// AddRect blocks the inclusive tile rectangle a..b.
func (w *World) AddRect(a, b tilemap.Point) error {
	r := orb.Bound{
		Min: orb.Point{float64(min(a.X, b.X)), float64(min(a.Y, b.Y))},
		Max: orb.Point{float64(max(a.X, b.X)) + 1, float64(max(a.Y, b.Y)) + 1},
	}
	return w.AddObstacle(r.ToPolygon())
}

// Obstacles returns the number of indexed polygons.
func (w *World) Obstacles() int {
	return w.tree.Size()
}

// Bound returns the world rectangle in tile units.
func (w *World) Bound() orb.Bound {
	return w.bound
}

// Chunks returns the number of allocated scratch chunks.
func (w *World) Chunks() int {
	return len(w.chunks)
}

// InBounds reports whether p lies in the world rectangle.
func (w *World) InBounds(p tilemap.Point) bool {
	return p.X >= w.min.X && p.X <= w.max.X && p.Y >= w.min.Y && p.Y <= w.max.Y
}

// Blocked reports whether p is covered by an obstacle or outside the world.
func (w *World) Blocked(p tilemap.Point) bool {
	if !w.InBounds(p) {
		return true
	}
	c, i := w.slot(p)
	return w.blocked(c, i, p)
}

// slot returns p's chunk, allocating it, and p's index inside it.
func (w *World) slot(p tilemap.Point) (*chunk, int) {
	key := chunkKey{cx: p.X >> chunkBits, cy: p.Y >> chunkBits}
	c, ok := w.chunks[key]
	if !ok {
		c = &chunk{}
		w.chunks[key] = c
	}
	return c, int(p.Y&chunkMask)*chunkSize + int(p.X&chunkMask)
}

// peek is slot without allocation; it returns nil for an untouched chunk.
func (w *World) peek(p tilemap.Point) (*chunk, int) {
	c := w.chunks[chunkKey{cx: p.X >> chunkBits, cy: p.Y >> chunkBits}]
	return c, int(p.Y&chunkMask)*chunkSize + int(p.X&chunkMask)
}

// mustSlot is slot for score operations: it panics outside the world.
func (w *World) mustSlot(p tilemap.Point) (*chunk, int) {
	w.check(p)
	return w.slot(p)
}

// check panics when p lies outside the world.
func (w *World) check(p tilemap.Point) {
	if !w.InBounds(p) {
		panic(fmt.Errorf("%w: %v outside %v..%v", tilemap.ErrOutOfBounds, p, w.min, w.max))
	}
}

// blocked resolves and memoizes the terrain of p.
func (w *World) blocked(c *chunk, i int, p tilemap.Point) bool {
	switch c.terrain[i] {
	case terrainOpen:
		return false
	case terrainBlocked:
		return true
	}

	centre := orb.Point{float64(p.X) + 0.5, float64(p.Y) + 0.5}
	state := terrainOpen
	if !w.bound.Contains(centre) {
		c.terrain[i] = terrainBlocked
		return true
	}
	for _, s := range w.tree.SearchIntersect(rtreego.Point{centre[0], centre[1]}.ToRect(0.01)) {
		if planar.PolygonContains(s.(*obstacle).poly, centre) {
			state = terrainBlocked
			break
		}
	}
	c.terrain[i] = state
	return state == terrainBlocked
}

package sparse

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/tilemap"
)

var _ tilemap.Map = (*Map)(nil)

// Map is a sparse tile map. The zero value is not usable; call New.
type Map struct {
	open    mapset.Set[tilemap.Point]
	visible mapset.Set[tilemap.Point]

	distance  map[tilemap.Point]int32
	heuristic map[tilemap.Point]int32
	gradient  map[tilemap.Point]tilemap.Direction
	path      map[tilemap.Point]int32
}

// New returns a Map with the given tiles open.
func New(open ...tilemap.Point) *Map {
	return &Map{
		open:      mapset.Of(open...),
		visible:   mapset.New[tilemap.Point](),
		distance:  make(map[tilemap.Point]int32),
		heuristic: make(map[tilemap.Point]int32),
		gradient:  make(map[tilemap.Point]tilemap.Direction),
		path:      make(map[tilemap.Point]int32),
	}
}

// Open carves p out of the rock.
func (m *Map) Open(p tilemap.Point) { m.open.Put(p) }

// Close fills p back in.
func (m *Map) Close(p tilemap.Point) { m.open.Remove(p) }

// IsOpen reports whether p is an open tile.
func (m *Map) IsOpen(p tilemap.Point) bool { return m.open.Has(p) }

// Size returns the number of open tiles.
func (m *Map) Size() int { return m.open.Size() }

// Passable reports whether p is open. Arrival direction is ignored.
func (m *Map) Passable(p tilemap.Point, _ tilemap.Direction) bool {
	return m.open.Has(p)
}

// ClearDistance forgets every stored distance.
func (m *Map) ClearDistance() { clear(m.distance) }

// SetDistance stores d for p.
func (m *Map) SetDistance(p tilemap.Point, d int32) { m.distance[p] = d }

// Distance returns p's distance or tilemap.Unreached.
func (m *Map) Distance(p tilemap.Point) int32 {
	if d, ok := m.distance[p]; ok {
		return d
	}
	return tilemap.Unreached
}

// SetHeuristic stores the heap key of p.
func (m *Map) SetHeuristic(p tilemap.Point, f int32) { m.heuristic[p] = f }

// Heuristic returns the heap key of p.
func (m *Map) Heuristic(p tilemap.Point) int32 { return m.heuristic[p] }

// SetGradient stores the back-pointer of p.
func (m *Map) SetGradient(p tilemap.Point, d tilemap.Direction) { m.gradient[p] = d }

// Gradient returns the back-pointer of p, or NoDirection.
func (m *Map) Gradient(p tilemap.Point) tilemap.Direction {
	if d, ok := m.gradient[p]; ok {
		return d
	}
	return tilemap.NoDirection
}

// MarkShortest records p on the route and returns its gradient.
func (m *Map) MarkShortest(p tilemap.Point, fromGoal int32) tilemap.Direction {
	m.path[p] = fromGoal
	return m.Gradient(p)
}

// MarkVisible records p as seen and reports whether it is open.
func (m *Map) MarkVisible(p tilemap.Point) bool {
	m.visible.Put(p)
	return m.open.Has(p)
}

// Visible reports whether p was marked visible.
func (m *Map) Visible(p tilemap.Point) bool { return m.visible.Has(p) }

// VisibleCount returns the number of tiles marked visible.
func (m *Map) VisibleCount() int { return m.visible.Size() }

// OnPath reports whether p lies on the last route.
func (m *Map) OnPath(p tilemap.Point) bool {
	_, ok := m.path[p]
	return ok
}

// Route returns the marked route goal first, or nil when nothing is marked.
func (m *Map) Route() []tilemap.Point {
	if len(m.path) == 0 {
		return nil
	}
	route := make([]tilemap.Point, len(m.path))
	for p, k := range m.path {
		if int(k) < len(route) {
			route[k] = p
		}
	}
	return route
}

// Reset clears scratch and marks, keeping the terrain.
func (m *Map) Reset() {
	m.visible.Clear()
	clear(m.distance)
	clear(m.heuristic)
	clear(m.gradient)
	clear(m.path)
}

// ResetMarks forgets the last route.
func (m *Map) ResetMarks() { clear(m.path) }

// ResetVisible forgets every visibility mark.
func (m *Map) ResetVisible() { m.visible.Clear() }

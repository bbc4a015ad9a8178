package world

import "github.com/katalvlaran/tilepath/tilemap"

// Visible reports whether p was marked since the last ResetVisible.
func (w *World) Visible(p tilemap.Point) bool {
	if !w.InBounds(p) {
		return false
	}
	c, i := w.peek(p)
	return c != nil && c.sightEpoch[i] == w.sightEpoch
}

// OnPath reports whether p was marked since the last ResetMarks.
func (w *World) OnPath(p tilemap.Point) bool {
	if !w.InBounds(p) {
		return false
	}
	c, i := w.peek(p)
	return c != nil && c.routeEpoch[i] == w.routeEpoch
}

// ResetVisible forgets every visibility mark.
func (w *World) ResetVisible() {
	w.sightEpoch++
	if w.sightEpoch == 0 {
		for _, c := range w.chunks {
			clear(c.sightEpoch[:])
		}
		w.sightEpoch = 1
	}
}

// ResetMarks forgets the last route.
func (w *World) ResetMarks() {
	w.routeEpoch++
	if w.routeEpoch == 0 {
		for _, c := range w.chunks {
			clear(c.routeEpoch[:])
		}
		w.routeEpoch = 1
	}
}

// Route returns the tiles marked since the last ResetMarks, goal first.
func (w *World) Route() []tilemap.Point {
	var route []tilemap.Point
	for key, c := range w.chunks {
		for i := range c.route {
			if c.routeEpoch[i] != w.routeEpoch {
				continue
			}
			k := int(c.route[i])
			for len(route) <= k {
				route = append(route, tilemap.Point{})
			}
			route[k] = tilemap.Point{
				X: key.cx<<chunkBits + int16(i&chunkMask),
				Y: key.cy<<chunkBits + int16(i>>chunkBits),
			}
		}
	}
	return route
}

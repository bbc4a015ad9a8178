package fov

import "github.com/katalvlaran/tilepath/tilemap"

// FieldOfView marks every tile visible from origin within radius.
// A negative radius is treated as 0, which marks only the origin.
// An opaque origin is marked and casts no rays.
func FieldOfView(m tilemap.SightMap, origin tilemap.Point, radius int) {
	if !m.MarkVisible(origin) {
		return
	}
	for r := 1; r <= radius; r++ {
		x, y := r, 0
		e := 1 - r
		for y <= x {
			castOctants(m, origin, x, y)
			y++
			if e < 0 {
				e += 2*y + 1
			} else {
				x--
				e += 2*(y-x) + 1
			}
		}
	}
}

// castOctants casts the 8 reflections of the offset (x, y).
func castOctants(m tilemap.SightMap, origin tilemap.Point, x, y int) {
	ray(m, origin, x, y)
	ray(m, origin, -x, y)
	ray(m, origin, x, -y)
	ray(m, origin, -x, -y)
	ray(m, origin, y, x)
	ray(m, origin, -y, x)
	ray(m, origin, y, -x)
	ray(m, origin, -y, -x)
}

// ray walks a Bresenham line from origin (excluded) to origin+(dx, dy)
// (included), stopping after the first opaque tile or at the edge of the
// coordinate range.
func ray(m tilemap.SightMap, origin tilemap.Point, dx, dy int) {
	adx, sx := magnitude(dx)
	ady, sy := magnitude(dy)
	e := adx - ady
	x, y := 0, 0
	for x != dx || y != dy {
		e2 := 2 * e
		if e2 > -ady {
			e -= ady
			x += sx
		}
		if e2 < adx {
			e += adx
			y += sy
		}
		p, ok := origin.Offset(x, y)
		if !ok || !m.MarkVisible(p) {
			return
		}
	}
}

// magnitude splits v into |v| and its sign.
func magnitude(v int) (int, int) {
	switch {
	case v < 0:
		return -v, -1
	case v > 0:
		return v, 1
	}
	return 0, 0
}

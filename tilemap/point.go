package tilemap

import (
	"math"
	"strconv"
)

// Point is a tile coordinate. Both components fit in 16 signed bits and may
// be negative; validity for a particular map is checked by the backend.
type Point struct {
	X, Y int16
}

// Pt is shorthand for Point{X: int16(x), Y: int16(y)}.
func Pt(x, y int) Point {
	return Point{X: int16(x), Y: int16(y)}
}

// Add returns the neighbor of p one step in direction d. It wraps at the
// edges of the int16 range; use Neighbor where p may sit on that edge.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + int16(d.DX()), Y: p.Y + int16(d.DY())}
}

// Step returns p offset by (dx, dy), wrapping like Add.
func (p Point) Step(dx, dy int) Point {
	return Point{X: p.X + int16(dx), Y: p.Y + int16(dy)}
}

// Neighbor returns the neighbor of p one step in direction d. It reports
// false when d is not Valid or the step leaves the int16 coordinate range.
func (p Point) Neighbor(d Direction) (Point, bool) {
	if !d.Valid() {
		return p, false
	}
	return p.Offset(d.DX(), d.DY())
}

// Offset returns p offset by (dx, dy). It reports false when either
// component leaves the int16 coordinate range.
func (p Point) Offset(dx, dy int) (Point, bool) {
	x, y := int(p.X)+dx, int(p.Y)+dy
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return Point{}, false
	}
	return Point{X: int16(x), Y: int16(y)}, true
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(int(p.X)) + "," + strconv.Itoa(int(p.Y)) + ")"
}

// Adjacent reports whether q is one of the 8 neighbors of p.
func (p Point) Adjacent(q Point) bool {
	dx, dy := abs(int32(q.X)-int32(p.X)), abs(int32(q.Y)-int32(p.Y))
	return dx <= 1 && dy <= 1 && dx+dy > 0
}

// Chebyshev returns max(|dx|,|dy|), the number of 8-directional unit steps
// between a and b on an open grid. It is admissible for unit-cost movement.
func Chebyshev(a, b Point) int32 {
	return max(abs(int32(a.X)-int32(b.X)), abs(int32(a.Y)-int32(b.Y)))
}

// Manhattan returns |dx|+|dy|.
func Manhattan(a, b Point) int32 {
	return abs(int32(a.X)-int32(b.X)) + abs(int32(a.Y)-int32(b.Y))
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

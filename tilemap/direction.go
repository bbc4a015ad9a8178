package tilemap

// Direction is one of the 8 unit steps, numbered clockwise from north.
// The numbering and the decoded deltas are a stable public contract:
// gradient values stored through SetGradient use it.
type Direction int8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// NoDirection marks the absence of a gradient (the origin of a route).
	NoDirection Direction = -1
)

// directionTable packs (dx+1) in bits 0-1 and (dy+1) in bits 2-3 of each
// nibble, nibble i describing direction i. Y grows southward.
const directionTable = 0x0489a621

// Directions lists all 8 directions in numeric order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// DX returns the x delta of d (-1, 0 or +1). d must be Valid.
func (d Direction) DX() int {
	return int((directionTable>>(4*uint(d)))&3) - 1
}

// DY returns the y delta of d (-1, 0 or +1). d must be Valid.
func (d Direction) DY() int {
	return int((directionTable>>(4*uint(d)+2))&3) - 1
}

// Delta decodes d into its (dx, dy) unit vector.
func (d Direction) Delta() (dx, dy int) {
	return d.DX(), d.DY()
}

// Inverse returns the opposite direction, (d+4) mod 8.
// The inverse of NoDirection is NoDirection.
func (d Direction) Inverse() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return (d + 4) & 7
}

// Valid reports whether d is one of the 8 step directions.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d.Valid() && d&1 == 1
}

// String returns the compass abbreviation, or "-" for NoDirection.
func (d Direction) String() string {
	if !d.Valid() {
		return "-"
	}
	return directionNames[d]
}

// DirectionOf returns the direction of the unit step (dx, dy),
// or NoDirection when (dx, dy) is not a unit step.
func DirectionOf(dx, dy int) Direction {
	for _, d := range Directions {
		if d.DX() == dx && d.DY() == dy {
			return d
		}
	}
	return NoDirection
}

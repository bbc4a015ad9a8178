package world

import (
	"errors"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors for world construction.
var (
	// ErrEmptyBounds indicates max lies before min on some axis.
	ErrEmptyBounds = errors.New("world: bounds contain no tiles")
	// ErrBadObstacle indicates a polygon without a usable outer ring.
	ErrBadObstacle = errors.New("world: obstacle needs an outer ring of at least 3 points")
)

const (
	chunkBits = 5
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
	chunkArea = chunkSize * chunkSize
)

// terrain memo states.
const (
	terrainUnknown uint8 = iota
	terrainOpen
	terrainBlocked
)

type chunkKey struct {
	cx, cy int16
}

// chunk holds the scratch of a 32×32 block of tiles.
type chunk struct {
	terrain [chunkArea]uint8

	distEpoch [chunkArea]uint32
	distance  [chunkArea]int32
	heuristic [chunkArea]int32
	gradient  [chunkArea]tilemap.Direction

	routeEpoch [chunkArea]uint32
	route      [chunkArea]int32

	sightEpoch [chunkArea]uint32
}

// obstacle is an R-tree entry.
type obstacle struct {
	poly orb.Polygon
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacle) Bounds() rtreego.Rect {
	return o.bbox
}

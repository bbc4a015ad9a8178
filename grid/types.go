// Package grid defines core types, options, and sentinel errors
// for the dense grid backend.
package grid

import (
	"errors"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooLarge indicates a dimension beyond the 16-bit coordinate range.
	ErrTooLarge = errors.New("grid: dimension exceeds 32767 tiles")
)

// MaxDim is the largest width or height a Grid accepts.
const MaxDim = 1<<15 - 1

// Movement selects which arrival directions make a tile enterable.
type Movement int

const (
	// Move8 allows all 8 directions.
	Move8 Movement = iota
	// Move4 allows only N, E, S, W.
	Move4
	// MoveBishop allows only the 4 diagonals.
	MoveBishop
)

// Allows reports whether arriving from direction d is permitted.
func (mv Movement) Allows(d tilemap.Direction) bool {
	switch mv {
	case Move4:
		return !d.Diagonal()
	case MoveBishop:
		return d.Diagonal() || d == tilemap.NoDirection
	default:
		return true
	}
}

// String returns "8-way", "4-way" or "bishop".
func (mv Movement) String() string {
	switch mv {
	case Move4:
		return "4-way"
	case MoveBishop:
		return "bishop"
	default:
		return "8-way"
	}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WallThreshold specifies the minimum cell value considered a wall.
	WallThreshold int
	// Move chooses the movement rule.
	Move Movement
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (values ≥1 are walls), Move=Move8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Move:          Move8,
	}
}

// Grid is a dense tile map with its own scratch storage.
// Width and Height define dimensions; tiles are stored row-major.
type Grid struct {
	Width, Height int
	Move          Movement

	wall      []bool
	distance  []int32
	heuristic []int32
	gradient  []tilemap.Direction
	path      []int32 // steps from goal, -1 when off the last route
	visible   []bool
}

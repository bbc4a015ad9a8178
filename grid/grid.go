package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/tilemap"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// values[y][x] ≥ opts.WallThreshold makes (x,y) a wall.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrTooLarge past MaxDim.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, opts.Move)
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		for x, v := range row {
			g.wall[g.index(x, y)] = v >= opts.WallThreshold
		}
	}
	return g, nil
}

// New returns an open w×h Grid with the given movement rule.
func New(w, h int, move Movement) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if w > MaxDim || h > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	n := w * h
	g := &Grid{
		Width:     w,
		Height:    h,
		Move:      move,
		wall:      make([]bool, n),
		distance:  make([]int32, n),
		heuristic: make([]int32, n),
		gradient:  make([]tilemap.Direction, n),
		path:      make([]int32, n),
		visible:   make([]bool, n),
	}
	g.ClearDistance()
	g.ResetMarks()
	for i := range g.gradient {
		g.gradient[i] = tilemap.NoDirection
	}
	return g, nil
}

// Parse builds a Grid from ASCII rows: '#' is a wall, any other byte is floor.
func Parse(move Movement, rows ...string) (*Grid, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				values[y][x] = 1
			}
		}
	}
	opts := DefaultGridOptions()
	opts.Move = move
	return NewGrid(values, opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p tilemap.Point) bool {
	return p.X >= 0 && int(p.X) < g.Width && p.Y >= 0 && int(p.Y) < g.Height
}

// Tiles returns W×H.
func (g *Grid) Tiles() int {
	return g.Width * g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// at maps p to its row-major index, panicking outside the grid.
func (g *Grid) at(p tilemap.Point) int {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v on %dx%d grid", tilemap.ErrOutOfBounds, p, g.Width, g.Height))
	}
	return g.index(int(p.X), int(p.Y))
}

// Point converts a row-major index back to a Point.
func (g *Grid) Point(idx int) tilemap.Point {
	return tilemap.Pt(idx%g.Width, idx/g.Width)
}

// Wall reports whether p is a wall. Outside the grid everything is wall.
func (g *Grid) Wall(p tilemap.Point) bool {
	return !g.InBounds(p) || g.wall[g.at(p)]
}

// SetWall turns p into a wall or into floor.
func (g *Grid) SetWall(p tilemap.Point, wall bool) {
	g.wall[g.at(p)] = wall
}

// String renders the grid: '#' wall, '*' last route, '.' floor.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.index(x, y)
			switch {
			case g.wall[i]:
				b.WriteByte('#')
			case g.path[i] >= 0:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

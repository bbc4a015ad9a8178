package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or huge inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"TooWide", [][]int{make([]int, grid.MaxDim+1)}, grid.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.values, grid.DefaultGridOptions())
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := grid.New(0, 3, grid.Move8)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestWallThreshold: values at or above the threshold are walls.
func TestWallThreshold(t *testing.T) {
	opts := grid.DefaultGridOptions()
	opts.WallThreshold = 3
	g, err := grid.NewGrid([][]int{{0, 2, 3, 9}}, opts)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, false, true, true}, []bool{
		g.Wall(tilemap.Pt(0, 0)), g.Wall(tilemap.Pt(1, 0)),
		g.Wall(tilemap.Pt(2, 0)), g.Wall(tilemap.Pt(3, 0)),
	})
}

func TestParseString(t *testing.T) {
	rows := []string{
		"#..#",
		"....",
		"##.#",
	}
	g, err := grid.Parse(grid.Move8, rows...)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 12, g.Tiles())
	assert.Equal(t, "#..#\n....\n##.#\n", g.String())

	g.SetWall(tilemap.Pt(1, 1), true)
	assert.True(t, g.Wall(tilemap.Pt(1, 1)))
	assert.True(t, g.Wall(tilemap.Pt(-1, 0)), "outside is wall")
}

func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2, grid.Move8)
	require.NoError(t, err)

	for _, p := range []tilemap.Point{tilemap.Pt(0, 0), tilemap.Pt(2, 1), tilemap.Pt(1, 1)} {
		assert.True(t, g.InBounds(p), "%v", p)
	}
	for _, p := range []tilemap.Point{tilemap.Pt(-1, 0), tilemap.Pt(3, 0), tilemap.Pt(1, 2), tilemap.Pt(2, -1)} {
		assert.False(t, g.InBounds(p), "%v", p)
	}
	assert.Equal(t, tilemap.Pt(2, 1), g.Point(5))
}

//----------------------------------------------------------------------------//
// Capability behavior
//----------------------------------------------------------------------------//

// TestMovement checks which arrival directions each rule accepts.
func TestMovement(t *testing.T) {
	cases := []struct {
		move     grid.Movement
		diagonal bool
		straight bool
		name     string
	}{
		{grid.Move8, true, true, "8-way"},
		{grid.Move4, false, true, "4-way"},
		{grid.MoveBishop, true, false, "bishop"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(3, 3, tc.move)
			require.NoError(t, err)
			p := tilemap.Pt(1, 1)
			assert.Equal(t, tc.diagonal, g.Passable(p, tilemap.NorthEast))
			assert.Equal(t, tc.straight, g.Passable(p, tilemap.West))
			assert.Equal(t, tc.name, tc.move.String())
		})
	}
}

func TestPassableOutside(t *testing.T) {
	g, err := grid.Parse(grid.Move8, ".#")
	require.NoError(t, err)
	assert.True(t, g.Passable(tilemap.Pt(0, 0), tilemap.East))
	assert.False(t, g.Passable(tilemap.Pt(1, 0), tilemap.West))
	assert.False(t, g.Passable(tilemap.Pt(2, 0), tilemap.West))
	assert.False(t, g.MarkVisible(tilemap.Pt(-1, 0)))
	assert.Equal(t, 0, g.VisibleCount())
}

// TestOutOfBoundsPanics: score access outside the grid is a caller bug.
func TestOutOfBoundsPanics(t *testing.T) {
	g, err := grid.New(2, 2, grid.Move8)
	require.NoError(t, err)
	outside := tilemap.Pt(2, 0)

	for name, f := range map[string]func(){
		"SetDistance":  func() { g.SetDistance(outside, 1) },
		"Distance":     func() { g.Distance(outside) },
		"Heuristic":    func() { g.Heuristic(outside) },
		"SetGradient":  func() { g.SetGradient(outside, tilemap.North) },
		"MarkShortest": func() { g.MarkShortest(outside, 0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, tilemap.ErrOutOfBounds)
			}()
			f()
		})
	}
}

// TestMarkShortestReturnsGradient pins the read-then-write contract.
func TestMarkShortestReturnsGradient(t *testing.T) {
	g, err := grid.New(3, 3, grid.Move8)
	require.NoError(t, err)
	p := tilemap.Pt(1, 1)

	g.SetGradient(p, tilemap.SouthWest)
	assert.Equal(t, tilemap.SouthWest, g.MarkShortest(p, 2))
	assert.True(t, g.OnPath(p))
	assert.Equal(t, int32(2), g.PathIndex(p))
	assert.Equal(t, tilemap.SouthWest, g.Gradient(p))

	g.ResetMarks()
	assert.False(t, g.OnPath(p))
	assert.Nil(t, g.Route())
}

func TestClearDistance(t *testing.T) {
	g, err := grid.New(2, 2, grid.Move8)
	require.NoError(t, err)
	g.SetDistance(tilemap.Pt(1, 1), 3)
	g.ClearDistance()
	assert.Equal(t, tilemap.Unreached, g.Distance(tilemap.Pt(1, 1)))
}

package cave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/cave"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

func TestGenerate_TooSmall(t *testing.T) {
	_, err := cave.Generate(2, 10, cave.DefaultOptions())
	require.ErrorIs(t, err, cave.ErrTooSmall)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := cave.DefaultOptions()
	opts.Seed = 42
	a, err := cave.Generate(60, 30, opts)
	require.NoError(t, err)
	b, err := cave.Generate(60, 30, opts)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	opts.Seed = 43
	c, err := cave.Generate(60, 30, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

// TestGenerate_Shape: solid border, some floor near the centre.
func TestGenerate_Shape(t *testing.T) {
	g, err := cave.Generate(80, 40, cave.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 80, g.Width)
	require.Equal(t, 40, g.Height)

	for x := 0; x < g.Width; x++ {
		assert.True(t, g.Wall(tilemap.Pt(x, 0)))
		assert.True(t, g.Wall(tilemap.Pt(x, g.Height-1)))
	}
	for y := 0; y < g.Height; y++ {
		assert.True(t, g.Wall(tilemap.Pt(0, y)))
		assert.True(t, g.Wall(tilemap.Pt(g.Width-1, y)))
	}

	floor := 0
	for i := 0; i < g.Tiles(); i++ {
		if !g.Wall(g.Point(i)) {
			floor++
		}
	}
	assert.Greater(t, floor, g.Tiles()/20)
	assert.Less(t, floor, g.Tiles())
}

func TestGenerate_NoScatter(t *testing.T) {
	opts := cave.DefaultOptions()
	opts.Scatter = 0
	g, err := cave.Generate(10, 10, opts)
	require.NoError(t, err)
	assert.Empty(t, g.Regions())
	assert.Nil(t, cave.Largest(g))
}

func TestLargest(t *testing.T) {
	g, err := grid.Parse(grid.Move8,
		"#######",
		"#.#...#",
		"###...#",
		"#######",
	)
	require.NoError(t, err)
	region := cave.Largest(g)
	assert.Len(t, region, 6)
	assert.Equal(t, tilemap.Pt(3, 1), region[0])
}

package astar_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

func TestLoggerDefault(t *testing.T) {
	astar.SetLogger(nil)
	require.NotNil(t, astar.Logger())
	assert.False(t, astar.Logger().Core().Enabled(zapcore.DebugLevel))
}

// TestLoggerExhaustion: running out of workspace leaves one debug record.
func TestLoggerExhaustion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	astar.SetLogger(zap.New(core))
	t.Cleanup(func() { astar.SetLogger(nil) })

	g := openGrid(t, 16, 16, grid.Move8)
	n, err := astar.ShortestPath(g, tilemap.Pt(0, 0), tilemap.Pt(15, 15), tilemap.NewWorkspace(3))
	require.ErrorIs(t, err, tilemap.ErrOutOfWorkspace)
	require.Equal(t, astar.OutOfWorkspace, n)

	entries := logs.FilterMessage("open set exhausted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "(0,0)", entries[0].ContextMap()["start"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["n"])
}

// TestSetLoggerConcurrent swaps the logger while searches run elsewhere.
func TestSetLoggerConcurrent(t *testing.T) {
	t.Cleanup(func() { astar.SetLogger(nil) })

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := grid.New(12, 12, grid.Move8)
			if !assert.NoError(t, err) {
				return
			}
			small := tilemap.NewWorkspace(2)
			for range 50 {
				_, err := astar.ShortestPath(g, tilemap.Pt(0, 0), tilemap.Pt(11, 11), small)
				assert.ErrorIs(t, err, tilemap.ErrOutOfWorkspace)
			}
		}()
	}
	for range 50 {
		astar.SetLogger(zap.NewNop())
		astar.SetLogger(nil)
	}
	wg.Wait()
}

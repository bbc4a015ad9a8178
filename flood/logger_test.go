package flood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tilepath/flood"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

// TestLoggerExhaustion: a full queue leaves one debug record, and a nil
// logger restores the silent default.
func TestLoggerExhaustion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	flood.SetLogger(zap.New(core))
	t.Cleanup(func() { flood.SetLogger(nil) })

	g, err := grid.New(10, 10, grid.Move8)
	require.NoError(t, err)
	ws := tilemap.NewWorkspace(4)
	head, err := flood.Seed(ws, 0, tilemap.Pt(5, 5))
	require.NoError(t, err)
	require.ErrorIs(t, flood.Flood(g, ws, head), tilemap.ErrOutOfWorkspace)

	entries := logs.FilterMessage("flood queue exhausted").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 4, entries[0].ContextMap()["slots"])

	flood.SetLogger(nil)
	assert.False(t, flood.Logger().Core().Enabled(zapcore.DebugLevel))
}
